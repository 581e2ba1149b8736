// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read at construction time and cached, so later calls to Fetch
// return the same data without touching the filesystem. Provider manifests and
// declarative fragment files are read this way: the aggregated configuration
// only changes when a new Fetcher is built.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/providers.yaml")()
//	if err != nil {
//	    // file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// NewOptionalFetcher treats a missing file as empty data, which suits
// manifests that only exist once a package is installed.
//
// Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors.
package file
