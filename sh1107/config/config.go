// Package config describes the display module being emulated. The chip
// core is geometry-agnostic; the model preset carries the per-module
// facts: panel size, the panel column offset, and the bus address.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Model describes one display module variant.
type Model struct {
	// Name identifies the preset.
	Name string `yaml:"name"`

	// Width and Height are the panel size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// XOffset is the panel column offset into display RAM; it varies
	// between display models.
	XOffset int `yaml:"x_offset"`

	// Address is the 7-bit bus address the module responds at.
	Address uint8 `yaml:"address"`
}

// presets are the known module variants. The 128x128 modules map their
// leftmost panel column to RAM column 96.
var presets = []Model{
	{Name: "sh1107-128x128", Width: 128, Height: 128, XOffset: 96, Address: 0x3C},
	{Name: "sh1107-128x64", Width: 128, Height: 64, XOffset: 0, Address: 0x3C},
	{Name: "sh1107-64x128", Width: 64, Height: 128, XOffset: 0, Address: 0x3C},
}

// Default returns the model used when nothing is configured.
func Default() Model {
	return presets[0]
}

// Preset looks up a built-in model by name.
func Preset(name string) (Model, bool) {
	for _, m := range presets {
		if m.Name == name {
			return m, true
		}
	}
	return Model{}, false
}

// PresetNames lists the built-in models.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, m := range presets {
		names[i] = m.Name
	}
	return names
}

// Load reads a model description from a YAML file. Fields left unset
// fall back to the default preset, so a file can override just the
// offset or the address.
func Load(path string) (Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Model{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	m := Default()
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Model{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return Model{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return m, nil
}

// Validate checks that the geometry fits the controller's display RAM.
func (m Model) Validate() error {
	if m.Width <= 0 || m.Width > 128 {
		return fmt.Errorf("width %d out of range (1..128)", m.Width)
	}
	if m.Height <= 0 || m.Height > 128 {
		return fmt.Errorf("height %d out of range (1..128)", m.Height)
	}
	if m.Height%8 != 0 {
		return fmt.Errorf("height %d is not a multiple of the 8-row page size", m.Height)
	}
	if m.Address >= 0x80 {
		return fmt.Errorf("address %#02x is not a 7-bit address", m.Address)
	}
	return nil
}
