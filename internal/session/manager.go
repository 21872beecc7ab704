package session

import (
	"sync"

	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
	"github.com/hoangNguyenDev3/WanderSphere/internal/observability"
)

// Manager holds the process-wide viewer identity. Its lifecycle is
// deliberately simple: hydrated from the store at construction, replaced
// on login or profile update, cleared on logout or 401. Updates are
// last-write-wins whole-record assignments, never partial.
type Manager struct {
	mu     sync.RWMutex
	viewer *models.User

	store *Store
	log   *observability.Logger
}

// NewManager creates a manager hydrated from store.
func NewManager(store *Store) (*Manager, error) {
	viewer, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Manager{
		viewer: viewer,
		store:  store,
		log:    observability.Component("session"),
	}, nil
}

// Viewer returns the current viewer and whether one is signed in.
func (m *Manager) Viewer() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.viewer == nil {
		return models.User{}, false
	}
	return *m.viewer, true
}

// ViewerID returns the signed-in viewer's id, or 0 when signed out.
func (m *Manager) ViewerID() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.viewer == nil {
		return 0
	}
	return m.viewer.UserID
}

// SetViewer replaces the viewer after a successful login or profile
// update and persists it.
func (m *Manager) SetViewer(user models.User) error {
	m.mu.Lock()
	m.viewer = &user
	m.mu.Unlock()
	return m.store.Save(&user)
}

// Clear drops the viewer from memory and durable storage. Used on logout
// and whenever the backend answers 401.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.viewer = nil
	m.mu.Unlock()
	if err := m.store.Clear(); err != nil {
		m.log.Warn("failed to clear stored viewer", "error", err)
	}
}
