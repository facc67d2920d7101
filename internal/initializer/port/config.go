package port

//go:generate mockgen -destination=../service/mocks/config_mock.go -package=mocks -source=config.go

// ConfigStore is a read-only string-keyed configuration source.
type ConfigStore interface {
	// Lookup returns the value for key and whether the key is present.
	Lookup(key string) (string, bool)
}
