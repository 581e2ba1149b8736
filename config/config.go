package config

import (
	"fmt"
	"log/slog"
)

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "providers:manifest" navigates to config["providers"]["manifest"]
//   - "extra:hjarta:config" navigates three levels deep
//   - "" (empty path) means parse the entire document
//
// Parser implementations are responsible for path navigation internally.
// See config/parser/yaml for an example using goccy/go-yaml PathString.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Bytes is a DataFetcher serving fixed data.
type Bytes []byte

// Fetch returns a copy of b.
func (b Bytes) Fetch() ([]byte, error) {
	result := make([]byte, len(b))
	copy(result, b)

	return result, nil
}

// Section returns a function that reads, parses, sets defaults, and validates
// the configuration section found at path.
func Section[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		err := Decode(parser, dataSourcer, target, path)
		if err != nil {
			return nil, err
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

// Decode fetches data and parses the section at path into target,
// without defaults or validation.
func Decode(parser Parser, dataSourcer DataFetcher, target any, path string) error {
	data, err := dataSourcer.Fetch()
	if err != nil {
		return fmt.Errorf("reading data error: %w", err)
	}

	err = parser.Parse(data, target, path)
	if err != nil {
		return fmt.Errorf("parsing error: %w", err)
	}

	return nil
}
