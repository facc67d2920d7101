package service

import (
	"github.com/anthanhphan/gosdk/logger"

	"github.com/anthanhphan/go-data-initializer/internal/initializer/domain"
	"github.com/anthanhphan/go-data-initializer/internal/initializer/port"
)

// PathResolver reads initializer paths from a configuration store.
type PathResolver struct {
	store    port.ConfigStore
	settings domain.Settings
}

var _ port.PathResolver = (*PathResolver)(nil)

// NewPathResolver resolves all initializer keys once. Missing keys never fail:
// they are recorded as diagnostics and logged as warnings.
func NewPathResolver(store port.ConfigStore) *PathResolver {
	r := &PathResolver{store: store}
	r.settings = r.resolve()

	for _, d := range r.settings.Diagnostics {
		logger.Warnw(d.Message, "key", d.Key)
	}
	return r
}

func (r *PathResolver) resolve() domain.Settings {
	var s domain.Settings

	s.OpenMRSPath = r.lookup(domain.KeyOpenMRSPath)
	if !s.OpenMRSPath.Set {
		s.Diagnostics = append(s.Diagnostics, domain.Diagnostic{
			Key:     domain.KeyOpenMRSPath,
			Message: "'openmrs_initializer_path' variable is not set",
		})
	}

	s.OdooPath = r.lookup(domain.KeyOdooPath)
	if !s.OdooPath.Set {
		s.Diagnostics = append(s.Diagnostics, domain.Diagnostic{
			Key:     domain.KeyOdooPath,
			Message: "'odoo_initializer_path' is not set, using 'data_dir' path as default",
		})
		fallback := r.lookup(domain.KeyDataDir)
		s.OdooPath = domain.Setting{Key: domain.KeyOdooPath, Value: fallback.Value, Set: fallback.Set}
		if !fallback.Set {
			s.Diagnostics = append(s.Diagnostics, domain.Diagnostic{
				Key:     domain.KeyDataDir,
				Message: "'data_dir' is not set, odoo path left unset",
			})
		}
	}

	s.DBName = r.lookup(domain.KeyDBName)
	return s
}

func (r *PathResolver) lookup(key string) domain.Setting {
	if r.store == nil {
		return domain.Setting{Key: key}
	}
	v, ok := r.store.Lookup(key)
	return domain.Setting{Key: key, Value: v, Set: ok}
}

func (r *PathResolver) Settings() domain.Settings {
	return r.settings
}

// ConfigPath returns the configured base path for source. The data_dir fallback
// is not applied here; an unset key yields "".
func (r *PathResolver) ConfigPath(source string) (string, error) {
	src, err := domain.ParseSource(source)
	if err != nil {
		return "", err
	}

	key := domain.KeyOdooPath
	if src == domain.SourceOpenMRS {
		key = domain.KeyOpenMRSPath
	}
	return r.lookup(key).Value, nil
}
