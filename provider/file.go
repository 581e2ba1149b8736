package provider

import (
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-config/config"
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
)

// FileScheme prefixes identifiers resolved by FileResolver.
const FileScheme = "file:"

// FileProvider reads its fragment from a document.
// An empty document yields an empty fragment.
type FileProvider struct {
	fetcher config.DataFetcher
	parser  config.Parser
	path    string
}

// NewFileProvider creates a FileProvider decoding the section at path
// (colon separated, empty for the whole document).
func NewFileProvider(fetcher config.DataFetcher, parser config.Parser, path string) *FileProvider {
	return &FileProvider{
		fetcher: fetcher,
		parser:  parser,
		path:    path,
	}
}

// Config implements Provider.
func (p *FileProvider) Config() (Fragment, error) {
	data, err := p.fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading fragment: %w", err)
	}

	fragment := Fragment{}

	if len(data) == 0 {
		return fragment, nil
	}

	err = p.parser.Parse(data, &fragment, p.path)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}

	return fragment, nil
}

// FileResolver resolves "file:<path>" identifiers to YAML file providers.
// The file is read when the provider is invoked, so a missing file fails the
// load rather than being skipped.
type FileResolver struct{}

// Resolve implements Resolver.
func (FileResolver) Resolve(id string) (Factory, bool) {
	path, ok := strings.CutPrefix(id, FileScheme)
	if !ok || path == "" {
		return nil, false
	}

	return func() Provider {
		return ProviderFunc(func() (Fragment, error) {
			fetcher, err := filefetcher.NewFetcher(path)()
			if err != nil {
				return nil, err
			}

			return NewFileProvider(fetcher, yamlparser.NewParser(), "").Config()
		})
	}, true
}
