package reward

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"playbox/internal/logging"
	"playbox/internal/sticker"
)

// Store is the persistence port for the unlocked sticker sequence. Counters
// are deliberately not part of the contract: a fresh process starts with
// fresh progress toward the next reward.
type Store interface {
	// Load returns the persisted unlock sequence. Missing or corrupt state
	// loads as empty; Load never fails.
	Load() []sticker.Sticker
	Save(unlocked []sticker.Sticker) error
}

// FileStore persists the unlock sequence as a JSON array in a single file.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore creates a file-backed store. The file is created lazily on
// first Save.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logging.NewComponentLogger(logger, "reward-store"),
	}
}

// Load reads the persisted sequence. A missing file is a normal first run;
// unreadable or malformed content is logged and treated as empty.
func (s *FileStore) Load() []sticker.Sticker {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("read reward state failed, starting empty",
				logging.Args(logging.Error(err), logging.String("path", s.path))...)
		}
		return nil
	}

	var unlocked []sticker.Sticker
	if err := json.Unmarshal(data, &unlocked); err != nil {
		s.logger.Warn("reward state corrupt, starting empty",
			logging.Args(logging.Error(err), logging.String("path", s.path))...)
		return nil
	}
	return unlocked
}

// Save writes the sequence atomically via a temp file rename.
func (s *FileStore) Save(unlocked []sticker.Sticker) error {
	if unlocked == nil {
		unlocked = []sticker.Sticker{}
	}
	data, err := json.MarshalIndent(unlocked, "", "  ")
	if err != nil {
		return fmt.Errorf("encode reward state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create reward state directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".rewards-*.json")
	if err != nil {
		return fmt.Errorf("create temp reward state: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write reward state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close reward state: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace reward state: %w", err)
	}
	return nil
}
