package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const sessionTimeFormat = "2006-01-02 15:04:05"

// FileStore persists the credential in a small toml file: it survives
// restarts and is erased only by an explicit Clear.
type FileStore struct {
	path string
}

type sessionFile struct {
	Token        string `toml:"token"`
	SavedDttmUTC string `toml:"saved_dttm_utc"`
}

func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path is not specified")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to prepare session dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Token() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}

	var f sessionFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return "", false
	}
	if f.Token == "" {
		return "", false
	}

	return f.Token, true
}

func (s *FileStore) Save(token string) error {
	f := sessionFile{
		Token:        token,
		SavedDttmUTC: time.Now().UTC().Format(sessionTimeFormat),
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode session file: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to erase session file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
