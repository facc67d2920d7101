package port

import (
	"errors"

	"github.com/anthanhphan/go-data-initializer/internal/initializer/domain"
)

var ErrNoTableReader = errors.New("no table reader registered")

//go:generate mockgen -destination=../service/mocks/table_mock.go -package=mocks -source=table.go

// TableReader parses one data file into rows keyed by its header.
type TableReader interface {
	Read(path string) (domain.Table, error)
}

// TableReaders resolves the reader for a file extension (lower case, leading dot).
type TableReaders interface {
	ReaderFor(ext string) (TableReader, error)
}
