package provider_test

import (
	"sync"
	"testing"

	"github.com/0xalexb/hjarta-config/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticProvider(fragment provider.Fragment) provider.Factory {
	return func() provider.Provider {
		return provider.ProviderFunc(func() (provider.Fragment, error) { return fragment, nil })
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		id      string
		factory provider.Factory
		wantErr error
	}{
		{
			name:    "valid registration",
			id:      "cache",
			factory: staticProvider(nil),
			wantErr: nil,
		},
		{
			name:    "empty identifier",
			id:      "",
			factory: staticProvider(nil),
			wantErr: provider.ErrEmptyIdentifier,
		},
		{
			name:    "nil factory",
			id:      "cache",
			factory: nil,
			wantErr: provider.ErrNilFactory,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := provider.NewRegistry()

			err := registry.Register(tt.id, tt.factory)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, registry.Identifiers())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, []string{tt.id}, registry.Identifiers())
		})
	}
}

func TestRegistry_RegisterTwice(t *testing.T) {
	t.Parallel()

	registry := provider.NewRegistry()
	require.NoError(t, registry.Register("cache", staticProvider(nil)))

	err := registry.Register("cache", staticProvider(nil))

	require.ErrorIs(t, err, provider.ErrAlreadyRegistered)
	assert.Contains(t, err.Error(), "cache")
}

func TestRegistry_Replace(t *testing.T) {
	t.Parallel()

	registry := provider.NewRegistry()

	err := registry.Replace("cache", staticProvider(nil))
	require.ErrorIs(t, err, provider.ErrNotRegistered)

	require.NoError(t, registry.Register("cache", staticProvider(provider.Fragment{"version": 1})))
	require.ErrorIs(t, registry.Replace("cache", nil), provider.ErrNilFactory)
	require.NoError(t, registry.Replace("cache", staticProvider(provider.Fragment{"version": 2})))

	factory, ok := registry.Resolve("cache")
	require.True(t, ok)

	fragment, err := factory().Config()
	require.NoError(t, err)
	assert.Equal(t, provider.Fragment{"version": 2}, fragment)
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	registry := provider.NewRegistry()
	require.NoError(t, registry.Register("cache", staticProvider(nil)))

	factory, ok := registry.Resolve("cache")
	assert.True(t, ok)
	assert.NotNil(t, factory)

	factory, ok = registry.Resolve("queue")
	assert.False(t, ok)
	assert.Nil(t, factory)
}

func TestRegistry_IdentifiersSorted(t *testing.T) {
	t.Parallel()

	registry := provider.NewRegistry()
	for _, id := range []string{"queue", "cache", "http"} {
		require.NoError(t, registry.Register(id, staticProvider(nil)))
	}

	assert.Equal(t, []string{"cache", "http", "queue"}, registry.Identifiers())
}

func TestRegistry_ConcurrentRegister(t *testing.T) {
	t.Parallel()

	registry := provider.NewRegistry()
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	var wg sync.WaitGroup

	for _, id := range ids {
		wg.Add(1)

		go func() {
			defer wg.Done()

			assert.NoError(t, registry.Register(id, staticProvider(nil)))
			_, _ = registry.Resolve(id)
		}()
	}

	wg.Wait()

	assert.Equal(t, ids, registry.Identifiers())
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	const id = "provider_test.default-registry"

	require.NoError(t, provider.Register(id, staticProvider(nil)))

	_, ok := provider.DefaultRegistry().Resolve(id)
	assert.True(t, ok)
	assert.Contains(t, provider.DefaultRegistry().Identifiers(), id)
}

func TestResolvers(t *testing.T) {
	t.Parallel()

	first := provider.NewRegistry()
	second := provider.NewRegistry()

	require.NoError(t, first.Register("shared", staticProvider(provider.Fragment{"from": "first"})))
	require.NoError(t, second.Register("shared", staticProvider(provider.Fragment{"from": "second"})))
	require.NoError(t, second.Register("only-second", staticProvider(provider.Fragment{"from": "second"})))

	chain := provider.Resolvers{nil, first, second}

	testCases := []struct {
		name     string
		id       string
		wantOK   bool
		wantFrom string
	}{
		{name: "first hit wins", id: "shared", wantOK: true, wantFrom: "first"},
		{name: "falls through", id: "only-second", wantOK: true, wantFrom: "second"},
		{name: "unknown", id: "missing", wantOK: false, wantFrom: ""},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			factory, ok := chain.Resolve(tt.id)
			require.Equal(t, tt.wantOK, ok)

			if !ok {
				return
			}

			fragment, err := factory().Config()
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, fragment["from"])
		})
	}
}

func TestInvoke(t *testing.T) {
	t.Parallel()

	registry := provider.NewRegistry()
	require.NoError(t, registry.Register("a", staticProvider(provider.Fragment{"n": 1})))
	require.NoError(t, registry.Register("empty", staticProvider(nil)))
	require.NoError(t, registry.Register("b", staticProvider(provider.Fragment{"n": 2})))

	fragments, err := provider.Invoke([]string{"b", "missing", "empty", "a"}, registry)

	require.NoError(t, err)
	assert.Equal(t, []provider.Fragment{{"n": 2}, {}, {"n": 1}}, fragments)
}

func TestInvoke_NilResolver(t *testing.T) {
	t.Parallel()

	fragments, err := provider.Invoke([]string{"a", "b"}, nil)

	require.NoError(t, err)
	assert.Empty(t, fragments)
}
