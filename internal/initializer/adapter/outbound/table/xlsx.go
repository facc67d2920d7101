package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/anthanhphan/go-data-initializer/internal/initializer/domain"
	"github.com/anthanhphan/go-data-initializer/internal/initializer/port"
)

// XLSXReader parses the first sheet of a workbook. The first row is the header.
type XLSXReader struct{}

var _ port.TableReader = (*XLSXReader)(nil)

func NewXLSXReader() *XLSXReader {
	return &XLSXReader{}
}

func (x *XLSXReader) Read(path string) (domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Table{}, err
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.Table{Path: path, Rows: []domain.Row{}}, nil
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return domain.Table{}, fmt.Errorf("failed to read sheet %q of %s: %w", sheets[0], path, err)
	}
	if len(records) == 0 {
		return domain.Table{Path: path, Rows: []domain.Row{}}, nil
	}

	// GetRows trims trailing empty cells, so short records are padded by zipRow.
	header := records[0]
	rows := make([]domain.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		rows = append(rows, zipRow(header, record))
	}
	return domain.Table{Path: path, Rows: rows}, nil
}
