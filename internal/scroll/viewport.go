package scroll

import "sync"

// Viewport is the surface whose vertical offset is saved and restored
type Viewport interface {
	ScrollY() int
	ScrollTo(y int)
}

// MemoryViewport is a Viewport without a screen behind it. The CLI and tests
// use it to observe what the store would have scrolled to.
type MemoryViewport struct {
	mu sync.Mutex
	y  int
}

func NewMemoryViewport(y int) *MemoryViewport {
	return &MemoryViewport{y: y}
}

func (v *MemoryViewport) ScrollY() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.y
}

func (v *MemoryViewport) ScrollTo(y int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.y = y
}
