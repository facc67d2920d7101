package port

// Loader is the single entry point callers use to locate and load data files.
type Loader interface {
	PathResolver
	ChangeDetector
	FileCollector
}
