package scroll

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"

	"morinolab/site/internal/storage"
)

const (
	DefaultStorageKey   = "scrollPositions"
	DefaultRestoreDelay = 100 * time.Millisecond

	// MaxOffset is the largest offset accepted from durable storage
	MaxOffset = math.MaxInt32
)

// Store maps navigation paths to their last known vertical offset. The whole
// map is written to durable storage on every save; storage failures are
// logged and the in-memory map stays authoritative.
//
// Each Restore schedules its own deferred scroll. Two restores issued within
// the delay window both fire; whichever timer runs last wins.
type Store struct {
	mu        sync.Mutex
	positions map[string]int
	current   string

	storage  storage.Storage
	viewport Viewport
	clock    clock.Clock
	delay    time.Duration
	key      string
}

type Option func(*Store)

func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

func WithRestoreDelay(d time.Duration) Option {
	return func(s *Store) {
		if d >= 0 {
			s.delay = d
		}
	}
}

func WithStorageKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// NewStore builds the store and loads saved positions once
func NewStore(ctx context.Context, st storage.Storage, viewport Viewport, opts ...Option) *Store {
	s := &Store{
		positions: make(map[string]int),
		storage:   st,
		viewport:  viewport,
		clock:     clock.New(),
		delay:     DefaultRestoreDelay,
		key:       DefaultStorageKey,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	raw, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Errorf("❌ [ScrollPosition] Failed to load scroll positions: %v", err)
		}
		return
	}

	positions, dropped, err := decodePositions(raw)
	if err != nil {
		log.Warnf("⚠️ [ScrollPosition] Stored scroll positions are corrupt, starting empty: %v", err)
		return
	}
	if dropped > 0 {
		log.Warnf("⚠️ [ScrollPosition] Dropped %d invalid scroll entries", dropped)
	}

	s.positions = positions
	log.Debugf("[ScrollPosition] Loaded %d scroll positions", len(positions))
}

// decodePositions keeps every entry whose value is a number in [0, MaxOffset]
func decodePositions(raw string) (map[string]int, int, error) {
	var values map[string]any
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, 0, err
	}

	positions := make(map[string]int, len(values))
	dropped := 0
	for path, v := range values {
		n, ok := v.(float64)
		if !ok || !(n >= 0 && n <= MaxOffset) {
			dropped++
			continue
		}
		positions[NormalizePath(path)] = int(n)
	}
	return positions, dropped, nil
}

// NormalizePath strips query string and fragment; an empty path is "/"
func NormalizePath(raw string) string {
	p := raw
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if u, err := url.Parse(p); err == nil && (u.Scheme != "" || u.Host != "") {
		p = u.Path
	}
	if p == "" {
		return "/"
	}
	return p
}

// Save records the viewport's current offset for path and persists the map.
// An empty path means the path currently being shown, i.e. the one being left.
func (s *Store) Save(ctx context.Context, path string) {
	offset := min(max(s.viewport.ScrollY(), 0), MaxOffset)

	s.mu.Lock()
	if path == "" {
		path = s.current
	}
	if path == "" {
		s.mu.Unlock()
		log.Debug("[ScrollPosition] No current path, nothing to save")
		return
	}
	path = NormalizePath(path)
	s.positions[path] = offset
	encoded, err := json.Marshal(s.positions)
	s.mu.Unlock()

	if err != nil {
		log.Errorf("❌ [ScrollPosition] Failed to encode scroll positions: %v", err)
		return
	}
	s.persist(ctx, encoded)
}

func (s *Store) persist(ctx context.Context, encoded []byte) {
	if err := s.storage.Set(ctx, s.key, string(encoded)); err != nil {
		log.Errorf("❌ [ScrollPosition] Failed to save scroll position: %v", err)
	}
}

// Restore schedules a scroll to the saved offset for path (0 when unknown)
// after the restore delay, and returns that offset.
func (s *Store) Restore(path string) int {
	offset := s.Get(path)
	s.clock.AfterFunc(s.delay, func() {
		s.viewport.ScrollTo(offset)
	})
	return offset
}

// Get returns the saved offset for path, 0 if it was never saved
func (s *Store) Get(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.positions[NormalizePath(path)]
}

// RouteChanged is called after the router switched to rawURL. It restores
// the saved offset of the new path unless the URL targets a fragment. The
// first route seen only records the current path.
func (s *Store) RouteChanged(rawURL string) {
	path := NormalizePath(rawURL)

	s.mu.Lock()
	previous := s.current
	s.current = path
	s.mu.Unlock()

	if previous == "" || previous == path {
		return
	}
	if hasFragment(rawURL) {
		log.Debugf("[ScrollPosition] %s targets a fragment, skipping restore", rawURL)
		return
	}
	s.Restore(path)
}

// PageHidden saves the current path's offset unconditionally
func (s *Store) PageHidden(ctx context.Context) {
	s.Save(ctx, "")
}

func (s *Store) CurrentPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Snapshot returns a copy of all saved positions
func (s *Store) Snapshot() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int, len(s.positions))
	for k, v := range s.positions {
		out[k] = v
	}
	return out
}

// Delay is the policy delay applied before a restore scrolls
func (s *Store) Delay() time.Duration {
	return s.delay
}

func hasFragment(rawURL string) bool {
	i := strings.Index(rawURL, "#")
	return i >= 0 && i < len(rawURL)-1
}
