// Package diskvstore keeps slots in a diskv key/value directory.
package diskvstore

import (
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/idilsaglam/tada/internal/store"
)

// Store is a store.Slot backed by diskv. Keys map to files directly under the
// base path.
type Store struct {
	d *diskv.Diskv
}

var _ store.Slot = (*Store)(nil)

func New(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
		FilePerm:     0o644,
		PathPerm:     0o755,
	})}, nil
}

func (s *Store) Read(key string) ([]byte, error) {
	b, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("diskv read %q: %w", key, err)
	}
	return b, nil
}

func (s *Store) Write(key string, data []byte) error {
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("diskv write %q: %w", key, err)
	}
	return nil
}

// Close is a no-op; diskv holds no open handles between calls.
func (s *Store) Close() error { return nil }
