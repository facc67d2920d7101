package domain

const (
	// ChecksumDirSuffix is appended to the grandparent directory of a data file
	// to build the parallel checksum tree.
	ChecksumDirSuffix = "_checksum"
	// ChecksumFileSuffix is appended to the data file name to build the sidecar name.
	ChecksumFileSuffix = ".checksum"
	// HashChunkSize is the read size used while hashing file content.
	HashChunkSize = 4096
)

// ChecksumStatus is the outcome of comparing a file against its sidecar.
type ChecksumStatus int

const (
	// ChecksumNew means no sidecar existed; one was created.
	ChecksumNew ChecksumStatus = iota
	// ChecksumChanged means the sidecar held a different hash and was overwritten.
	ChecksumChanged
	// ChecksumUnchanged means the sidecar matched; the file was already processed.
	ChecksumUnchanged
)

func (s ChecksumStatus) String() string {
	switch s {
	case ChecksumNew:
		return "new"
	case ChecksumChanged:
		return "changed"
	case ChecksumUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// AlreadyProcessed reports whether the file can be skipped.
func (s ChecksumStatus) AlreadyProcessed() bool {
	return s == ChecksumUnchanged
}
