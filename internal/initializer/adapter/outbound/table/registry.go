package table

import (
	"fmt"

	"github.com/anthanhphan/go-data-initializer/internal/initializer/domain"
	"github.com/anthanhphan/go-data-initializer/internal/initializer/port"
)

// Registry maps file extensions to table readers. Extensions without a
// dedicated reader fall back to the default (delimited text) reader.
type Registry struct {
	readers  map[string]port.TableReader
	fallback port.TableReader
}

var _ port.TableReaders = (*Registry)(nil)

// NewRegistry builds a registry that uses fallback for unregistered extensions.
// fallback may be nil, in which case unknown extensions are an error.
func NewRegistry(fallback port.TableReader) *Registry {
	return &Registry{
		readers:  make(map[string]port.TableReader),
		fallback: fallback,
	}
}

// NewDefaultRegistry registers the csv reader for ".csv" (and as fallback) and
// the xlsx reader for ".xlsx".
func NewDefaultRegistry(delimiter string) (*Registry, error) {
	csvReader, err := NewCSVReader(delimiter)
	if err != nil {
		return nil, err
	}
	r := NewRegistry(csvReader)
	r.Register(".csv", csvReader)
	r.Register(".xlsx", NewXLSXReader())
	return r, nil
}

// Register binds reader to ext. ext is matched case-insensitively, with or without the dot.
func (r *Registry) Register(ext string, reader port.TableReader) {
	r.readers[domain.NormalizeExt(ext)] = reader
}

func (r *Registry) ReaderFor(ext string) (port.TableReader, error) {
	if reader, ok := r.readers[domain.NormalizeExt(ext)]; ok {
		return reader, nil
	}
	if r.fallback != nil {
		return r.fallback, nil
	}
	return nil, fmt.Errorf("%w for %q", port.ErrNoTableReader, ext)
}
