package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/anthanhphan/go-data-initializer/internal/initializer/domain"
	"github.com/anthanhphan/go-data-initializer/internal/initializer/service/mocks"
)

func mockStore(ctrl *gomock.Controller, values map[string]string) *mocks.MockConfigStore {
	store := mocks.NewMockConfigStore(ctrl)
	store.EXPECT().Lookup(gomock.Any()).DoAndReturn(func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}).AnyTimes()
	return store
}

func TestPathResolver_Settings(t *testing.T) {
	tests := []struct {
		name            string
		values          map[string]string
		wantOpenMRS     domain.Setting
		wantOdoo        domain.Setting
		wantDBName      domain.Setting
		wantDiagnostics []string
	}{
		{
			name: "AllKeysPresent",
			values: map[string]string{
				domain.KeyOpenMRSPath: "/srv/openmrs",
				domain.KeyOdooPath:    "/srv/odoo",
				domain.KeyDataDir:     "/var/lib/odoo",
				domain.KeyDBName:      "prod",
			},
			wantOpenMRS: domain.Setting{Key: domain.KeyOpenMRSPath, Value: "/srv/openmrs", Set: true},
			wantOdoo:    domain.Setting{Key: domain.KeyOdooPath, Value: "/srv/odoo", Set: true},
			wantDBName:  domain.Setting{Key: domain.KeyDBName, Value: "prod", Set: true},
		},
		{
			name: "OpenMRSMissingIsLeftUnset",
			values: map[string]string{
				domain.KeyOdooPath: "/srv/odoo",
			},
			wantOpenMRS:     domain.Setting{Key: domain.KeyOpenMRSPath},
			wantOdoo:        domain.Setting{Key: domain.KeyOdooPath, Value: "/srv/odoo", Set: true},
			wantDBName:      domain.Setting{Key: domain.KeyDBName},
			wantDiagnostics: []string{domain.KeyOpenMRSPath},
		},
		{
			name: "OdooMissingFallsBackToDataDir",
			values: map[string]string{
				domain.KeyOpenMRSPath: "/srv/openmrs",
				domain.KeyDataDir:     "/var/lib/odoo",
			},
			wantOpenMRS:     domain.Setting{Key: domain.KeyOpenMRSPath, Value: "/srv/openmrs", Set: true},
			wantOdoo:        domain.Setting{Key: domain.KeyOdooPath, Value: "/var/lib/odoo", Set: true},
			wantDBName:      domain.Setting{Key: domain.KeyDBName},
			wantDiagnostics: []string{domain.KeyOdooPath},
		},
		{
			name:            "EverythingMissing",
			values:          map[string]string{},
			wantOpenMRS:     domain.Setting{Key: domain.KeyOpenMRSPath},
			wantOdoo:        domain.Setting{Key: domain.KeyOdooPath},
			wantDBName:      domain.Setting{Key: domain.KeyDBName},
			wantDiagnostics: []string{domain.KeyOpenMRSPath, domain.KeyOdooPath, domain.KeyDataDir},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := NewPathResolver(mockStore(ctrl, tt.values))
			s := r.Settings()

			assert.Equal(t, tt.wantOpenMRS, s.OpenMRSPath)
			assert.Equal(t, tt.wantOdoo, s.OdooPath)
			assert.Equal(t, tt.wantDBName, s.DBName)

			var keys []string
			for _, d := range s.Diagnostics {
				assert.NotEmpty(t, d.Message)
				keys = append(keys, d.Key)
			}
			assert.Equal(t, tt.wantDiagnostics, keys)
		})
	}
}

func TestPathResolver_DataDirOnlyReadWhenOdooMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockConfigStore(ctrl)
	store.EXPECT().Lookup(domain.KeyOpenMRSPath).Return("/srv/openmrs", true)
	store.EXPECT().Lookup(domain.KeyOdooPath).Return("/srv/odoo", true)
	store.EXPECT().Lookup(domain.KeyDBName).Return("", false)

	s := NewPathResolver(store).Settings()
	assert.Empty(t, s.Diagnostics)
}

func TestPathResolver_ConfigPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewPathResolver(mockStore(ctrl, map[string]string{
		domain.KeyOpenMRSPath: "/srv/openmrs",
		domain.KeyDataDir:     "/var/lib/odoo",
	}))

	got, err := r.ConfigPath("OpenMRS")
	require.NoError(t, err)
	assert.Equal(t, "/srv/openmrs", got)

	// The data_dir fallback only feeds Settings; the configured odoo key is unset.
	got, err = r.ConfigPath("ODOO")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = r.ConfigPath("erpnext")
	assert.ErrorIs(t, err, domain.ErrInvalidSource)
}

func TestPathResolver_NilStore(t *testing.T) {
	r := NewPathResolver(nil)

	got, err := r.ConfigPath("odoo")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Len(t, r.Settings().Diagnostics, 3)
}
