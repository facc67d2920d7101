package port

//go:generate mockgen -destination=../service/mocks/checksum_mock.go -package=mocks -source=checksum.go

// ChecksumStore persists the last seen content hash of a data file.
type ChecksumStore interface {
	// Path returns the sidecar location used for the given data file.
	Path(file string) string

	// Load returns the stored hash for file. found is false when no sidecar exists.
	Load(file string) (sum string, found bool, err error)

	// Save records sum as the hash of file, creating parent directories on demand.
	Save(file string, sum string) error
}
