package port

import (
	"context"

	"github.com/anthanhphan/go-data-initializer/internal/initializer/domain"
)

//go:generate mockgen -destination=../service/mocks/service_mock.go -package=mocks -source=service.go

// PathResolver maps data file sources to configured base paths.
type PathResolver interface {
	// Settings returns the configuration resolved at construction time.
	Settings() domain.Settings

	// ConfigPath returns the configured base path for source, or "" when unset.
	// Unknown sources are rejected with domain.ErrInvalidSource.
	ConfigPath(source string) (string, error)
}

// ChangeDetector decides whether a data file changed since it was last processed.
type ChangeDetector interface {
	// Check hashes the file, compares it to the stored sidecar and updates the sidecar when needed.
	Check(path string) (domain.ChecksumStatus, error)

	// AlreadyProcessed is Check reduced to the skip decision.
	AlreadyProcessed(path string) (bool, error)
}

// FileCollector walks a source folder and parses every new or changed data file.
type FileCollector interface {
	Collect(ctx context.Context, source, folder string, extensions []string) ([]domain.Table, error)
}
