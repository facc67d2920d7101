package sidecar

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/anthanhphan/go-data-initializer/internal/initializer/domain"
	"github.com/anthanhphan/go-data-initializer/internal/initializer/port"
)

// Store keeps one checksum file per data file in a tree parallel to the data directory.
//
// For a data file <root>/<dir>/<name> the sidecar lives at
// <root>_checksum/<dir>/<name>.checksum and contains only the hex hash.
// Store assumes a single writer per sidecar; writes go through a temp file and a
// rename so readers never see partial content.
type Store struct {
	dirPerm  fs.FileMode
	filePerm fs.FileMode
}

var _ port.ChecksumStore = (*Store)(nil)

// NewStore creates a sidecar store.
func NewStore() *Store {
	return &Store{
		dirPerm:  0750,
		filePerm: 0600,
	}
}

// Path returns the sidecar location for file.
func (s *Store) Path(file string) string {
	parent := filepath.Dir(file)
	checksumDir := filepath.Dir(parent) + domain.ChecksumDirSuffix
	return filepath.Join(checksumDir, filepath.Base(parent), filepath.Base(file)) + domain.ChecksumFileSuffix
}

// Load reads the stored hash for file.
func (s *Store) Load(file string) (string, bool, error) {
	// G304: path is derived from a walked data file
	data, err := os.ReadFile(s.Path(file)) // #nosec G304
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read checksum for %s: %w", file, err)
	}
	return string(data), true, nil
}

// Save writes sum as the stored hash for file.
func (s *Store) Save(file string, sum string) error {
	path := s.Path(file)
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, s.dirPerm); err != nil {
		return fmt.Errorf("failed to create checksum directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp checksum file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.WriteString(sum); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write checksum: %w", err)
	}
	if err := tmp.Chmod(s.filePerm); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to chmod checksum: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close checksum: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("failed to move checksum into place: %w", err)
	}
	return nil
}
