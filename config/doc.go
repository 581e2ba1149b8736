// Package config provides the fetch, parse, default and validate pipeline
// used to read settings and declarative provider fragments.
//
// The package uses an interface-based design with four extension points:
//   - Parser: deserializes raw data into a target, with path navigation support
//   - DataFetcher: retrieves raw data (file, static bytes, etc.)
//   - Validator: validates a section after parsing
//   - Defaulter: applies default values before validation
//
// # Path Navigation
//
// Section and Decode accept a path parameter that targets a specific part of
// the document. Paths use colon (:) as the separator:
//
//	"providers"                 -> config["providers"]
//	"extra:hjarta"              -> config["extra"]["hjarta"]
//	""                          -> entire document
//
// Parser implementations handle path navigation internally. For example, the
// YAML parser in config/parser/yaml uses goccy/go-yaml PathString to
// navigate to the target section before unmarshaling.
//
// # Example
//
//	type Settings struct {
//	    Manifest  string `yaml:"manifest"`
//	    Namespace string `yaml:"namespace"`
//	}
//
//	section := config.Section(&Settings{}, "providers")
//	fetcher, err := filefetcher.NewFetcher("app.yaml")()
//	settings, err := section(yamlparser.NewParser(), fetcher)
package config
