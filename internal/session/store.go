// Package session manages the authenticated viewer: a durable single-key
// store plus the process-wide in-memory identity.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

// Store persists the current viewer as a single JSON document on disk,
// the durable-storage analog of the reference client's one localStorage key.
type Store struct {
	path string
}

// NewStore creates a store rooted at path. Parent directories are created
// lazily on the first Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the stored viewer. A missing file means signed out and
// returns (nil, nil). A corrupt file is cleared rather than surfaced: the
// viewer record is a cache, not a source of truth.
func (s *Store) Load() (*models.User, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		_ = s.Clear()
		return nil, nil
	}
	return &user, nil
}

// Save writes the viewer record, replacing any previous one.
func (s *Store) Save(user *models.User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return models.NewInternalError(err)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return models.NewInternalError(err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Clear removes the stored viewer. Clearing an already-empty store is not
// an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return models.NewInternalError(err)
	}
	return nil
}
