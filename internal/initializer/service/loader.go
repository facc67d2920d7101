package service

import (
	"context"

	"github.com/anthanhphan/go-data-initializer/internal/initializer/domain"
	"github.com/anthanhphan/go-data-initializer/internal/initializer/port"
)

// LoaderImpl is the facade that wires path resolution, change detection and
// file collection. It is constructed explicitly and passed to callers.
type LoaderImpl struct {
	resolver  port.PathResolver
	detector  port.ChangeDetector
	collector port.FileCollector
}

// Ensure LoaderImpl implements port.Loader.
var _ port.Loader = (*LoaderImpl)(nil)

// NewLoader builds the loader facade and its use-case services.
func NewLoader(store port.ConfigStore, checksums port.ChecksumStore, readers port.TableReaders, workers int) *LoaderImpl {
	resolver := NewPathResolver(store)
	detector := NewChangeDetector(checksums)
	return &LoaderImpl{
		resolver:  resolver,
		detector:  detector,
		collector: NewFileCollector(resolver, detector, readers, workers),
	}
}

// Settings returns the configuration resolved when the loader was built.
func (l *LoaderImpl) Settings() domain.Settings {
	return l.resolver.Settings()
}

// ConfigPath delegates to the path resolver.
func (l *LoaderImpl) ConfigPath(source string) (string, error) {
	return l.resolver.ConfigPath(source)
}

// Check delegates to the change detector.
func (l *LoaderImpl) Check(path string) (domain.ChecksumStatus, error) {
	return l.detector.Check(path)
}

// AlreadyProcessed delegates to the change detector.
func (l *LoaderImpl) AlreadyProcessed(path string) (bool, error) {
	return l.detector.AlreadyProcessed(path)
}

// Collect delegates to the file collector.
func (l *LoaderImpl) Collect(ctx context.Context, source, folder string, extensions []string) ([]domain.Table, error) {
	return l.collector.Collect(ctx, source, folder, extensions)
}
