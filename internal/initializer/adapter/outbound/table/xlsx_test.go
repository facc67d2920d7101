package table

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/anthanhphan/go-data-initializer/internal/initializer/domain"
)

func TestXLSXReader_Read(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := map[string]string{
		"A1": "code", "B1": "name", "C1": "price",
		"A2": "P-1", "B2": "Chair", "C2": "10",
		"A3": "P-2", "B3": "Table",
	}
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := NewXLSXReader().Read(path)
	require.NoError(t, err)
	assert.Equal(t, path, table.Path)
	assert.Equal(t, []domain.Row{
		{"code": "P-1", "name": "Chair", "price": "10"},
		{"code": "P-2", "name": "Table", "price": ""},
	}, table.Rows)
}

func TestXLSXReader_NotAWorkbook(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.xlsx", "id,name\n")

	_, err := NewXLSXReader().Read(path)
	assert.Error(t, err)
}
