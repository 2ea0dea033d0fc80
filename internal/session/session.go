// Package session holds per-session interactive state: the most recent raw
// plan output and the image cache. Nothing else in plateful keeps state
// between calls.
package session

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/plateful/plateful/pkg/textutil"
)

// State is the mutable state of one interactive session. A session is only
// ever mutated by its single active user turn, but the shell may serve
// concurrent requests for different sessions, so access is still guarded.
//
// The image cache maps normalized recipe titles to PNG bytes. It has no
// eviction: it grows with the number of distinct titles a user generates
// images for, and it deliberately survives plan regeneration.
type State struct {
	ID string

	mu     sync.Mutex
	raw    string
	images *gocache.Cache
}

// New creates an empty session state.
func New(id string) *State {
	return &State{
		ID:     id,
		images: gocache.New(gocache.NoExpiration, 0),
	}
}

// SetPlan replaces the raw plan output. The image cache is left untouched.
func (s *State) SetPlan(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = raw
}

// Plan returns the most recent raw plan output, or "" before any generation.
func (s *State) Plan() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

// StoreImage caches image bytes under the normalized title.
func (s *State) StoreImage(title string, data []byte) {
	s.images.Set(textutil.Normalize(title), data, gocache.NoExpiration)
}

// Image returns the cached bytes for a title, if any.
func (s *State) Image(title string) ([]byte, bool) {
	v, ok := s.images.Get(textutil.Normalize(title))
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// Images returns a snapshot of all cached images keyed by normalized title.
func (s *State) Images() map[string][]byte {
	items := s.images.Items()
	out := make(map[string][]byte, len(items))
	for title, item := range items {
		out[title] = item.Object.([]byte)
	}
	return out
}

// DefaultSessionTTL is how long an idle session survives in the manager.
const DefaultSessionTTL = 24 * time.Hour

// Manager tracks sessions by ID. Idle sessions expire; each lookup refreshes
// the session's lifetime.
type Manager struct {
	sessions *gocache.Cache
}

// NewManager creates a session manager.
func NewManager(ttl time.Duration) *Manager {
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}
	return &Manager{
		sessions: gocache.New(ttl, ttl/2),
	}
}

// GetOrCreate returns the session for id, creating it if absent.
func (m *Manager) GetOrCreate(id string) *State {
	if v, ok := m.sessions.Get(id); ok {
		s := v.(*State)
		m.sessions.SetDefault(id, s)
		return s
	}
	s := New(id)
	m.sessions.SetDefault(id, s)
	return s
}

// Get returns the session for id if it exists.
func (m *Manager) Get(id string) (*State, bool) {
	v, ok := m.sessions.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*State), true
}
