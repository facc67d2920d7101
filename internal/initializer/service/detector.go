package service

import (
	"crypto/md5" // #nosec G501
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/anthanhphan/gosdk/logger"

	"github.com/anthanhphan/go-data-initializer/internal/initializer/domain"
	"github.com/anthanhphan/go-data-initializer/internal/initializer/port"
)

// ChangeDetector compares file content hashes against stored sidecars.
type ChangeDetector struct {
	store port.ChecksumStore
}

var _ port.ChangeDetector = (*ChangeDetector)(nil)

func NewChangeDetector(store port.ChecksumStore) *ChangeDetector {
	return &ChangeDetector{store: store}
}

// Check updates the sidecar when the file is new or changed. The load and save
// are not atomic together: concurrent checks of the same file may race.
func (d *ChangeDetector) Check(path string) (domain.ChecksumStatus, error) {
	sum, err := HashFile(path)
	if err != nil {
		return domain.ChecksumNew, err
	}

	old, found, err := d.store.Load(path)
	if err != nil {
		return domain.ChecksumNew, err
	}

	if found && old == sum {
		return domain.ChecksumUnchanged, nil
	}

	if err := d.store.Save(path, sum); err != nil {
		return domain.ChecksumNew, err
	}

	if found {
		logger.Debugw("Checksum changed", "file", path, "old", old, "new", sum)
		return domain.ChecksumChanged, nil
	}
	logger.Debugw("Checksum recorded", "file", path, "sidecar", d.store.Path(path))
	return domain.ChecksumNew, nil
}

func (d *ChangeDetector) AlreadyProcessed(path string) (bool, error) {
	status, err := d.Check(path)
	if err != nil {
		return false, err
	}
	return status.AlreadyProcessed(), nil
}

// HashFile returns the hex MD5 of the file, read in HashChunkSize chunks.
func HashFile(path string) (string, error) {
	// G304: path comes from the collector's directory walk
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := md5.New() // #nosec G401
	buf := make([]byte, domain.HashChunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			_, _ = h.Write(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to hash %s: %w", path, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
