package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthanhphan/go-data-initializer/internal/initializer/config"
	"github.com/anthanhphan/go-data-initializer/internal/initializer/domain"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestApp_Process(t *testing.T) {
	root := t.TempDir()
	odoo := filepath.Join(root, "odoo")
	write(t, filepath.Join(odoo, "partners", "a.csv"), "id;name\n1;Alice\n2;Bob\n")
	write(t, filepath.Join(odoo, "partners", "b.txt"), "ignored")

	cfg := config.DefaultConfig()
	cfg.Collector.Delimiter = ";"
	cfg.Options = config.Options{domain.KeyOdooPath: odoo}
	cfg.Jobs = []config.JobConfig{
		{Source: "odoo", Folder: "partners", Extensions: []string{".csv"}},
		{Source: "openmrs", Folder: "locations", Extensions: []string{".csv"}},
	}

	a, err := NewWithConfig(cfg)
	require.NoError(t, err)

	results, err := a.Process(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].Tables)
	assert.Equal(t, 2, results[0].Rows)
	assert.Equal(t, 0, results[1].Tables, "unset openmrs path is skipped")

	// A second run finds nothing new.
	results, err = a.Process(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, results[0].Tables)
}

func TestApp_ProcessInvalidSource(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Jobs = []config.JobConfig{{Source: "erpnext", Folder: "x", Extensions: []string{".csv"}}}

	a, err := NewWithConfig(cfg)
	require.NoError(t, err)

	_, err = a.Process(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidSource)
}

func TestNewWithConfig_InvalidDelimiter(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Collector.Delimiter = "::"

	_, err := NewWithConfig(cfg)
	assert.Error(t, err)
}
