package provider_test

import (
	"errors"
	"testing"

	"github.com/0xalexb/hjarta-config/config"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	"github.com/0xalexb/hjarta-config/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingFetcher struct {
	err error
}

func (f failingFetcher) Fetch() ([]byte, error) {
	return nil, f.err
}

const lockFile = `
packages:
  - name: acme/cache
    extra:
      hjarta:
        config: acme.cache
  - name: acme/http
    extra:
      hjarta:
        config:
          - acme.http
          - 42
          - acme.http.middleware
      other-tool:
        config: ignored
  - name: acme/plain
packages-dev:
  - name: acme/debug
    extra:
      hjarta:
        config: acme.debug
`

func TestStaticDirectory(t *testing.T) {
	t.Parallel()

	directory := provider.StaticDirectory{"a", "b"}

	ids, err := directory.Providers()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	ids[0] = "changed"

	again, err := directory.Providers()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, again)
}

func TestDirectoryFunc(t *testing.T) {
	t.Parallel()

	listErr := errors.New("unavailable")
	directory := provider.DirectoryFunc(func() ([]string, error) { return nil, listErr })

	_, err := directory.Providers()
	require.ErrorIs(t, err, listErr)
}

func TestManifestDirectory_Providers(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		data      string
		namespace string
		want      []string
	}{
		{
			name:      "packages then packages-dev",
			data:      lockFile,
			namespace: "",
			want:      []string{"acme.cache", "acme.http", "acme.http.middleware", "acme.debug"},
		},
		{
			name:      "custom namespace",
			data:      lockFile,
			namespace: "other-tool",
			want:      []string{"ignored"},
		},
		{
			name:      "unknown namespace",
			data:      lockFile,
			namespace: "missing",
			want:      []string{},
		},
		{
			name:      "empty manifest",
			data:      "",
			namespace: "",
			want:      []string{},
		},
		{
			name:      "no packages",
			data:      "packages: []\n",
			namespace: "",
			want:      []string{},
		},
		{
			name: "namespace is not a mapping",
			data: `
packages:
  - name: acme/odd
    extra:
      hjarta: acme.odd
`,
			namespace: "",
			want:      []string{},
		},
		{
			name: "mapping entries in key order",
			data: `
packages:
  - name: acme/keyed
    extra:
      hjarta:
        config:
          second: acme.second
          "1": acme.one
          "0": acme.zero
          first: acme.first
`,
			namespace: "",
			want:      []string{"acme.zero", "acme.one", "acme.first", "acme.second"},
		},
		{
			name:      "json manifest",
			data:      `{"packages": [{"name": "acme/json", "extra": {"hjarta": {"config": ["acme.json"]}}}], "packages-dev": []}`,
			namespace: "",
			want:      []string{"acme.json"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			directory := provider.NewManifestDirectory(config.Bytes(tt.data), yamlparser.NewParser(), tt.namespace)

			ids, err := directory.Providers()

			require.NoError(t, err)
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestManifestDirectory_ExtraMergesPackages(t *testing.T) {
	t.Parallel()

	data := `
packages:
  - name: acme/a
    extra:
      hjarta:
        config: acme.a
        publish: [a.yaml]
  - name: acme/b
    extra:
      hjarta:
        config: acme.b
`

	directory := provider.NewManifestDirectory(config.Bytes(data), yamlparser.NewParser(), "")

	extra, err := directory.Extra()
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"hjarta": map[string]any{
			"config":  []any{"acme.a", "acme.b"},
			"publish": []any{"a.yaml"},
		},
	}, extra)
}

func TestManifestDirectory_Errors(t *testing.T) {
	t.Parallel()

	t.Run("fetch error", func(t *testing.T) {
		t.Parallel()

		fetchErr := errors.New("disk gone")
		directory := provider.NewManifestDirectory(failingFetcher{err: fetchErr}, yamlparser.NewParser(), "")

		_, err := directory.Providers()
		require.ErrorIs(t, err, fetchErr)
	})

	t.Run("malformed manifest", func(t *testing.T) {
		t.Parallel()

		directory := provider.NewManifestDirectory(config.Bytes("packages: [unclosed"), yamlparser.NewParser(), "")

		_, err := directory.Providers()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing manifest")
	})
}

func TestManifestDirectory_WithConfig(t *testing.T) {
	t.Parallel()

	registry := provider.NewRegistry()
	require.NoError(t, registry.Register("acme.cache", staticProvider(provider.Fragment{
		provider.KeyDependencies: map[string]any{"cache.Interface": "cache.Redis"},
	})))
	require.NoError(t, registry.Register("acme.debug", staticProvider(provider.Fragment{
		provider.KeyListeners: []any{"debug.Listener"},
	})))

	directory := provider.NewManifestDirectory(config.Bytes(lockFile), yamlparser.NewParser(), "")
	cfg := provider.New(directory, registry)

	merged, err := cfg.Load()

	require.NoError(t, err)
	assert.Equal(t, provider.Fragment{
		provider.KeyDependencies: map[string]any{"cache.Interface": "cache.Redis"},
		provider.KeyListeners:    []any{"debug.Listener"},
	}, merged)
}
