package provider

import (
	"fmt"
	"log/slog"

	"dario.cat/mergo"
)

// DefaultManifest is the manifest path used when none is configured.
const DefaultManifest = "composer.lock"

// Settings configures where provider identifiers are discovered.
type Settings struct {
	// Manifest is the path of the package manifest.
	Manifest string `json:"manifest" yaml:"manifest"`
	// Namespace is the extra section listing providers.
	Namespace string `json:"namespace" yaml:"namespace"`
	// Optional treats a missing manifest as an empty one.
	Optional bool `json:"optional" yaml:"optional"`
}

// DefaultSettings returns the settings used for unset fields.
func DefaultSettings() Settings {
	return Settings{
		Manifest:  DefaultManifest,
		Namespace: DefaultNamespace,
		Optional:  false,
	}
}

// SetDefaults fills unset fields from DefaultSettings.
// A failure to apply them is logged and reported as no change.
func (s *Settings) SetDefaults() bool {
	changed, err := applyDefaults(s, DefaultSettings())
	if err != nil {
		slog.Error("applying provider settings defaults failed", "error", err)
	}

	return changed
}

func applyDefaults(s *Settings, defaults Settings) (bool, error) {
	var before Settings
	if s != nil {
		before = *s
	}

	err := mergo.Merge(s, defaults)
	if err != nil {
		return false, fmt.Errorf("merging defaults: %w", err)
	}

	return before != *s, nil
}

// Validate validates the Settings.
func (s *Settings) Validate() error {
	if s.Manifest == "" {
		return ErrEmptyManifestPath
	}

	if s.Namespace == "" {
		return ErrEmptyNamespace
	}

	return nil
}

// SettingsOption configures Settings.
type SettingsOption func(*Settings)

// WithManifest sets the manifest path.
func WithManifest(path string) SettingsOption {
	return func(s *Settings) {
		s.Manifest = path
	}
}

// WithNamespace sets the extra namespace.
func WithNamespace(namespace string) SettingsOption {
	return func(s *Settings) {
		s.Namespace = namespace
	}
}

// WithOptionalManifest tolerates a missing manifest.
func WithOptionalManifest() SettingsOption {
	return func(s *Settings) {
		s.Optional = true
	}
}
