package service

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/nomit-kasera/the-apna-gym-admin-page/internal/auth/domain"
	"github.com/nomit-kasera/the-apna-gym-admin-page/pkg/constant"
)

// FileProfileStore persists the session profile as a single JSON record
// under a well-known file name. A missing or corrupt record is treated
// the same as no session; storage failures are logged and reported as a
// boolean, never propagated.
type FileProfileStore struct {
	mu   sync.Mutex
	path string
	log  *slog.Logger
}

func NewFileProfileStore(dir string, log *slog.Logger) *FileProfileStore {
	return &FileProfileStore{
		path: filepath.Join(dir, constant.ProfileFileName),
		log:  log,
	}
}

func (fp *FileProfileStore) Save(profile *domain.Profile) bool {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	data, err := json.Marshal(profile)
	if err != nil {
		fp.log.Error("failed to serialize profile", "error", err)
		return false
	}

	if err := os.MkdirAll(filepath.Dir(fp.path), 0o700); err != nil {
		fp.log.Error("failed to create profile directory", "error", err)
		return false
	}

	if err := os.WriteFile(fp.path, data, 0o600); err != nil {
		fp.log.Error("failed to write profile", "path", fp.path, "error", err)
		return false
	}

	return true
}

func (fp *FileProfileStore) Load() *domain.Profile {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	data, err := os.ReadFile(fp.path)
	if err != nil {
		return nil
	}

	var profile domain.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		fp.log.Warn("discarding corrupt profile record", "path", fp.path, "error", err)
		return nil
	}

	return &profile
}

func (fp *FileProfileStore) Clear() bool {
	fp.mu.Lock()
	defer fp.mu.Unlock()

	if err := os.Remove(fp.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fp.log.Error("failed to clear profile", "path", fp.path, "error", err)
		return false
	}

	return true
}
