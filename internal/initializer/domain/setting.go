package domain

// Configuration keys read from the external configuration store.
const (
	KeyOpenMRSPath = "openmrs_initializer_path"
	KeyOdooPath    = "odoo_initializer_path"
	KeyDataDir     = "data_dir"
	KeyDBName      = "db_name"
)

// Setting is the result of looking up a single configuration key.
// Set is false when the key was missing from the store.
type Setting struct {
	Key   string
	Value string
	Set   bool
}

// Diagnostic records a configuration lookup that degraded instead of failing.
type Diagnostic struct {
	Key     string
	Message string
}

// Settings is the resolved view of the initializer configuration.
type Settings struct {
	OpenMRSPath Setting
	// OdooPath falls back to the data_dir value when odoo_initializer_path is missing.
	OdooPath Setting
	DBName   Setting

	Diagnostics []Diagnostic
}
