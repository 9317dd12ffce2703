package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"finbot-service/internal/application"
	"finbot-service/internal/domain"
)

// FileStore keeps all portfolios in one JSON file, a map from user id to
// holdings. Every save rereads the file, replaces the one record and
// rewrites the whole file through a rename. Concurrent saves for the same
// user remain last-write-wins.
type FileStore struct {
	Path string
	mu   sync.Mutex
}

var _ application.PortfolioStore = (*FileStore)(nil)

func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

func (s *FileStore) Load(_ context.Context, userID string) (domain.Holdings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.readAll()
	if err != nil {
		return domain.Holdings{}, err
	}
	h, ok := all[userID]
	if !ok {
		return domain.Holdings{}, application.ErrNotFound
	}
	return h, nil
}

func (s *FileStore) Save(_ context.Context, userID string, h domain.Holdings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.readAll()
	if err != nil {
		return err
	}
	all[userID] = h
	return s.writeAll(all)
}

func (s *FileStore) readAll() (map[string]domain.Holdings, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return map[string]domain.Holdings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: read %s: %w", s.Path, err)
	}
	all := map[string]domain.Holdings{}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("filestore: decode %s: %w", s.Path, err)
	}
	return all, nil
}

func (s *FileStore) writeAll(all map[string]domain.Holdings) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("filestore: encode: %w", err)
	}
	tmp := s.Path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("filestore: mkdir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("filestore: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("filestore: rename: %w", err)
	}
	return nil
}
