package provider

import "errors"

// Sentinel errors returned by the provider package.
var (
	ErrProviderFailed    = errors.New("provider failed")
	ErrDirectory         = errors.New("listing providers failed")
	ErrMalformedFragment = errors.New("malformed fragment")
	ErrEmptyIdentifier   = errors.New("provider identifier is empty")
	ErrNilFactory        = errors.New("provider factory is nil")
	ErrAlreadyRegistered = errors.New("provider already registered")
	ErrNotRegistered     = errors.New("provider not registered")
	ErrEmptyNamespace    = errors.New("namespace must not be empty")
	ErrEmptyManifestPath = errors.New("manifest path must not be empty")
	ErrNilDirectory      = errors.New("directory must not be nil")
)
