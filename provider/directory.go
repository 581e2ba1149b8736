package provider

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/merge"
)

// Directory lists the provider identifiers to load, in order.
type Directory interface {
	Providers() ([]string, error)
}

// DirectoryFunc adapts a function to the Directory interface.
type DirectoryFunc func() ([]string, error)

// Providers calls f.
func (f DirectoryFunc) Providers() ([]string, error) {
	return f()
}

// StaticDirectory is a fixed list of identifiers.
type StaticDirectory []string

// Providers returns a copy of the list.
func (d StaticDirectory) Providers() ([]string, error) {
	ids := make([]string, len(d))
	copy(ids, d)

	return ids, nil
}

// DefaultNamespace is the extra section providers are listed under.
const DefaultNamespace = "hjarta"

// manifest is the lock-file shape read by ManifestDirectory.
type manifest struct {
	Packages    []manifestPackage `yaml:"packages"`
	PackagesDev []manifestPackage `yaml:"packages-dev"`
}

type manifestPackage struct {
	Name  string         `yaml:"name"`
	Extra map[string]any `yaml:"extra"`
}

// ManifestDirectory lists providers declared by installed packages.
//
// The manifest has a lock-file shape: packages (then packages-dev), each with
// a name and an extra block. The extra blocks of all packages are merged in
// order and the identifiers are read from extra.<namespace>.config.
// Entries that are not strings are ignored. The manifest is read on every
// call to Providers; Config takes care of memoizing.
type ManifestDirectory struct {
	fetcher   config.DataFetcher
	parser    config.Parser
	namespace string
}

// NewManifestDirectory creates a ManifestDirectory.
// An empty namespace means DefaultNamespace.
func NewManifestDirectory(fetcher config.DataFetcher, parser config.Parser, namespace string) *ManifestDirectory {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &ManifestDirectory{
		fetcher:   fetcher,
		parser:    parser,
		namespace: namespace,
	}
}

// Extra returns the merged extra blocks of all packages in the manifest.
// Empty manifest data yields an empty map.
func (d *ManifestDirectory) Extra() (map[string]any, error) {
	data, err := d.fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	if len(data) == 0 {
		return map[string]any{}, nil
	}

	var doc manifest

	err = d.parser.Parse(data, &doc, "")
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	extras := make([]map[string]any, 0, len(doc.Packages)+len(doc.PackagesDev))

	for _, pkg := range append(doc.Packages, doc.PackagesDev...) {
		if len(pkg.Extra) > 0 {
			extras = append(extras, pkg.Extra)
		}
	}

	return merge.Maps(extras...), nil
}

// Providers implements Directory.
func (d *ManifestDirectory) Providers() ([]string, error) {
	extra, err := d.Extra()
	if err != nil {
		return nil, err
	}

	section, _ := extra[d.namespace].(map[string]any)

	return identifiers(section["config"]), nil
}

// identifiers flattens a config entry into the string identifiers it holds.
func identifiers(value any) []string {
	switch entry := merge.Normalize(value).(type) {
	case string:
		return []string{entry}
	case []any:
		return stringsOf(entry)
	case map[string]any:
		return stringsOf(sortedValues(entry))
	default:
		return []string{}
	}
}

func stringsOf(items []any) []string {
	ids := make([]string, 0, len(items))

	for _, item := range items {
		if id, ok := item.(string); ok {
			ids = append(ids, id)
		}
	}

	return ids
}

// sortedValues orders a mapping's values by key: numeric keys first in index
// order, then the remaining keys lexically.
func sortedValues(entries map[string]any) []any {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}

	slices.SortFunc(keys, func(a, b string) int {
		na, errA := strconv.Atoi(a)
		nb, errB := strconv.Atoi(b)

		switch {
		case errA == nil && errB == nil:
			return cmp.Compare(na, nb)
		case errA == nil:
			return -1
		case errB == nil:
			return 1
		default:
			return cmp.Compare(a, b)
		}
	})

	values := make([]any, 0, len(keys))
	for _, key := range keys {
		values = append(values, entries[key])
	}

	return values
}
