package sh1107

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocallegari/go-sh1107/sh1107/command"
)

func TestParseScript(t *testing.T) {
	input := `
# init
00 AF 81 0x7f

# one data byte
0xC0 FF
`
	script, err := ParseScript(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, script, 2)
	assert.Equal(t, Transaction{0x00, 0xAF, 0x81, 0x7F}, script[0])
	assert.Equal(t, Transaction{0xC0, 0xFF}, script[1])
}

func TestParseScriptTrailingComment(t *testing.T) {
	script, err := ParseScript(strings.NewReader("00 AE # display off\n"))
	require.NoError(t, err)
	require.Len(t, script, 1)
	assert.Equal(t, Transaction{0x00, 0xAE}, script[0])
}

func TestParseScriptBadByte(t *testing.T) {
	tests := []string{
		"00 GG\n",
		"100\n", // out of byte range
		"00 -1\n",
	}

	for _, input := range tests {
		_, err := ParseScript(strings.NewReader(input))
		assert.Error(t, err, "input %q", input)
	}
}

func TestDemoScript(t *testing.T) {
	script := DemoScript(DefaultWidth, DefaultHeight)

	// One init transaction, then a command and a data transaction per
	// page.
	require.Len(t, script, 1+2*Pages)

	assert.Equal(t, uint8(0x00), script[0][0])
	assert.Contains(t, []uint8(script[0]), uint8(command.DisplayOn))

	for page := 0; page < Pages; page++ {
		data := script[2+2*page]
		assert.Equal(t, uint8(command.ControlDC), data[0])
		assert.Len(t, data, 1+DefaultWidth)
	}
}
