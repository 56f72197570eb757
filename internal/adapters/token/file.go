package token

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"libfront/internal/core/domain/ports"
)

// Ensure FileStore implements TokenStore
var _ ports.TokenStore = (*FileStore)(nil)

// FileStore keeps the token in memory and mirrors every mutation to a
// JSON file, so CLI sessions survive process restarts.
type FileStore struct {
	filepath string
	mu       sync.RWMutex
	state    tokenState
}

type tokenState struct {
	Token string `json:"token"`
}

// NewFileStore loads an existing token file if present; a missing file
// just means no session yet.
func NewFileStore(path string) (*FileStore, error) {
	store := &FileStore{filepath: path}

	if err := store.load(); err != nil {
		return nil, fmt.Errorf("failed to load token file: %w", err)
	}
	return store, nil
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.filepath), 0700); err != nil {
		return err
	}

	f, err := os.Open(s.filepath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&s.state); err != nil {
		if err == io.EOF {
			return nil // Empty file is fine
		}
		return err
	}
	return nil
}

func (s *FileStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	return s.save()
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = ""
	return s.save()
}

// save persists atomically: write to a temp file then rename. Caller
// must hold the lock.
func (s *FileStore) save() error {
	tmpFile := s.filepath + ".tmp"
	f, err := os.OpenFile(tmpFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if err := json.NewEncoder(f).Encode(s.state); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmpFile, s.filepath)
}
