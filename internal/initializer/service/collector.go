package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/anthanhphan/gosdk/logger"

	"github.com/anthanhphan/go-data-initializer/internal/initializer/domain"
	"github.com/anthanhphan/go-data-initializer/internal/initializer/port"
	"github.com/anthanhphan/go-data-initializer/pkg/resilience"
)

// FileCollector walks a source folder and parses new or changed data files.
type FileCollector struct {
	resolver port.PathResolver
	detector port.ChangeDetector
	readers  port.TableReaders
	workers  int
}

var _ port.FileCollector = (*FileCollector)(nil)

// NewFileCollector builds a collector. workers <= 1 processes files sequentially.
func NewFileCollector(resolver port.PathResolver, detector port.ChangeDetector, readers port.TableReaders, workers int) *FileCollector {
	if workers < 1 {
		workers = 1
	}
	return &FileCollector{
		resolver: resolver,
		detector: detector,
		readers:  readers,
		workers:  workers,
	}
}

// Collect returns one table per matching file under <base>/<folder> that was
// not already processed, in walk order. An unset base path yields no tables.
func (c *FileCollector) Collect(ctx context.Context, source, folder string, extensions []string) ([]domain.Table, error) {
	base, err := c.resolver.ConfigPath(source)
	if err != nil {
		return nil, err
	}
	if base == "" {
		logger.Warnw("Invalid config path", "source", source)
		return []domain.Table{}, nil
	}

	root := filepath.Join(base, folder)
	logger.Infow("Collecting data files", "source", source, "path", root)

	files, err := c.matchingFiles(ctx, root, extensionSet(extensions))
	if err != nil {
		return nil, err
	}

	if c.workers == 1 {
		return c.collectSequential(ctx, files)
	}
	return c.collectParallel(ctx, files)
}

func (c *FileCollector) matchingFiles(ctx context.Context, root string, allowed map[string]struct{}) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root && errors.Is(walkErr, fs.ErrNotExist) {
				logger.Warnw("Data folder does not exist", "path", root)
				return filepath.SkipDir
			}
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := allowed[strings.ToLower(filepath.Ext(path))]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

func (c *FileCollector) collectSequential(ctx context.Context, files []string) ([]domain.Table, error) {
	tables := make([]domain.Table, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t, ok, err := c.processFile(path)
		if err != nil {
			return nil, err
		}
		if ok {
			tables = append(tables, t)
		}
	}
	return tables, nil
}

// collectParallel keeps walk order in the result. Files after a failing one
// may still have their sidecars updated.
func (c *FileCollector) collectParallel(ctx context.Context, files []string) ([]domain.Table, error) {
	type slot struct {
		table domain.Table
		ok    bool
	}
	slots := make([]slot, len(files))

	pool := resilience.NewWorkerPool(c.workers, c.workers*2)
	for i, path := range files {
		if err := pool.Submit(ctx, func() error {
			t, ok, err := c.processFile(path)
			if err != nil {
				return err
			}
			slots[i] = slot{table: t, ok: ok}
			return nil
		}); err != nil {
			pool.Close()
			_ = pool.Wait()
			return nil, err
		}
	}
	pool.Close()
	if err := pool.Wait(); err != nil {
		return nil, err
	}

	tables := make([]domain.Table, 0, len(files))
	for _, s := range slots {
		if s.ok {
			tables = append(tables, s.table)
		}
	}
	return tables, nil
}

// processFile runs the change check before parsing, so a file that fails to
// parse still has its sidecar updated.
func (c *FileCollector) processFile(path string) (domain.Table, bool, error) {
	processed, err := c.detector.AlreadyProcessed(path)
	if err != nil {
		return domain.Table{}, false, err
	}
	if processed {
		logger.Infow("Skipping already processed file", "file", filepath.Base(path))
		return domain.Table{}, false, nil
	}

	reader, err := c.readers.ReaderFor(filepath.Ext(path))
	if err != nil {
		return domain.Table{}, false, err
	}
	t, err := reader.Read(path)
	if err != nil {
		return domain.Table{}, false, err
	}
	return t, true, nil
}

func extensionSet(extensions []string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		if e = domain.NormalizeExt(e); e != "" {
			set[e] = struct{}{}
		}
	}
	return set
}
