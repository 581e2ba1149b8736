// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for path navigation. The parser converts colon-separated
// paths (e.g., "extra:hjarta") to YAML path format (e.g., "$.extra.hjarta")
// internally. JSON documents are valid YAML, so lock files written as JSON
// parse as well.
//
// Usage:
//
//	parser := yaml.NewParser(yaml.WithStrict())
//	var settings provider.Settings
//	err := parser.Parse(data, &settings, "providers")
//
// Path Conversion:
//   - Empty path "" -> unmarshal entire document
//   - Single key "key" -> "$.key"
//   - Nested path "extra:hjarta" -> "$.extra.hjarta"
package yaml
