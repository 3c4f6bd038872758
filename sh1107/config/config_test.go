package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetLookup(t *testing.T) {
	m, ok := Preset("sh1107-128x128")
	require.True(t, ok)
	assert.Equal(t, 128, m.Width)
	assert.Equal(t, 128, m.Height)
	assert.Equal(t, 96, m.XOffset)
	assert.Equal(t, uint8(0x3C), m.Address)

	_, ok = Preset("no-such-model")
	assert.False(t, ok)
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
	for _, name := range PresetNames() {
		m, ok := Preset(name)
		require.True(t, ok, name)
		assert.NoError(t, m.Validate(), name)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	content := "name: custom\nx_offset: 0\naddress: 0x3d\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "custom", m.Name)
	assert.Equal(t, 0, m.XOffset)
	assert.Equal(t, uint8(0x3D), m.Address)

	// Unset fields keep the default geometry.
	assert.Equal(t, 128, m.Width)
	assert.Equal(t, 128, m.Height)
}

func TestLoadRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"width too large", "width: 256\n"},
		{"height not page aligned", "height: 100\n"},
		{"address not 7 bit", "address: 0x80\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "model.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
