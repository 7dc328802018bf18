package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileTokenStore is a TokenStore persisted to a file, used by the CLI so a
// login survives across invocations.
type FileTokenStore struct {
	mu   sync.Mutex
	path string
}

// NewFileTokenStore creates a token store backed by the file at path
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Token returns the stored token, or "" when absent or unreadable
func (s *FileTokenStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Set writes the token to the backing file, creating parent directories
func (s *FileTokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return
	}
	_ = os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the backing file
func (s *FileTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.Remove(s.path)
}
