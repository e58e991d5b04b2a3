package service

import "sync/atomic"

// NavigationToken identifies one logical navigation
type NavigationToken uint64

// NavigationTracker hands out increasing tokens. Only the latest token is
// current; results gathered under an older one are discarded.
type NavigationTracker struct {
	generation atomic.Uint64
}

func (n *NavigationTracker) Begin() NavigationToken {
	return NavigationToken(n.generation.Add(1))
}

func (n *NavigationTracker) IsCurrent(token NavigationToken) bool {
	return n.generation.Load() == uint64(token)
}
