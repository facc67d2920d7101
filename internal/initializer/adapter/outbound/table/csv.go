package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/anthanhphan/go-data-initializer/internal/initializer/domain"
	"github.com/anthanhphan/go-data-initializer/internal/initializer/port"
)

const utf8BOM = "\ufeff"

// CSVReader parses delimited text files. The first record is the header.
type CSVReader struct {
	comma rune
}

var _ port.TableReader = (*CSVReader)(nil)

// NewCSVReader returns a reader for the given delimiter. An empty delimiter means ','.
func NewCSVReader(delimiter string) (*CSVReader, error) {
	if delimiter == "" {
		return &CSVReader{comma: ','}, nil
	}
	r, size := utf8.DecodeRuneInString(delimiter)
	if size != len(delimiter) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
		return nil, fmt.Errorf("invalid csv delimiter %q", delimiter)
	}
	return &CSVReader{comma: r}, nil
}

// Read parses the file at path. Records whose field count differs from the
// header are reported as errors.
func (c *CSVReader) Read(path string) (domain.Table, error) {
	// G304: path comes from the collector's directory walk
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return domain.Table{}, err
	}
	defer func() { _ = f.Close() }()

	rows, err := c.parse(f)
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return domain.Table{Path: path, Rows: rows}, nil
}

func (c *CSVReader) parse(r io.Reader) ([]domain.Row, error) {
	reader := csv.NewReader(r)
	reader.Comma = c.comma

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []domain.Row{}, nil
	}
	if err != nil {
		return nil, err
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	rows := []domain.Row{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, zipRow(header, record))
	}
	return rows, nil
}

func zipRow(header, record []string) domain.Row {
	row := make(domain.Row, len(header))
	for i, key := range header {
		if i < len(record) {
			row[key] = record[i]
		} else {
			row[key] = ""
		}
	}
	return row
}
