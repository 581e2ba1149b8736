package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	settings := &Settings{Manifest: "lock.json"}

	changed, err := applyDefaults(settings, DefaultSettings())

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, DefaultNamespace, settings.Namespace)
}

func TestApplyDefaults_MergeError(t *testing.T) {
	t.Parallel()

	var settings *Settings

	changed, err := applyDefaults(settings, DefaultSettings())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "merging defaults")
	assert.False(t, changed)
}
