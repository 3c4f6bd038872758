package sh1107

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocallegari/go-sh1107/sh1107/command"
)

// registers is a comparable snapshot of every configuration register
// and addressing cursor.
type registers struct {
	displayOn    bool
	contrast     uint8
	invert       bool
	reverseRows  bool
	segmentRemap bool
	clockDivider uint8
	multiplex    uint8
	phase1       uint8
	phase2       uint8
	activeColumn int
	activePage   int
	memoryMode   MemoryMode
	startLine    uint8
}

func snapshot(c *Chip) registers {
	return registers{
		displayOn:    c.displayOn,
		contrast:     c.contrast,
		invert:       c.invert,
		reverseRows:  c.reverseRows,
		segmentRemap: c.segmentRemap,
		clockDivider: c.clockDivider,
		multiplex:    c.multiplexRatio,
		phase1:       c.phase1,
		phase2:       c.phase2,
		activeColumn: c.activeColumn,
		activePage:   c.activePage,
		memoryMode:   c.memoryMode,
		startLine:    c.startLine,
	}
}

func TestInterpretRegisterCommands(t *testing.T) {
	tests := []struct {
		name  string
		cmd   []uint8
		check func(t *testing.T, c *Chip)
	}{
		{"set contrast", []uint8{command.SetContrast, 0x42}, func(t *testing.T, c *Chip) {
			assert.Equal(t, uint8(0x42), c.contrast)
		}},
		{"display on", []uint8{command.DisplayOn}, func(t *testing.T, c *Chip) {
			assert.True(t, c.displayOn)
		}},
		{"invert display", []uint8{command.InvertDisplay}, func(t *testing.T, c *Chip) {
			assert.True(t, c.invert)
		}},
		{"normal display", []uint8{command.NormalDisplay}, func(t *testing.T, c *Chip) {
			assert.False(t, c.invert)
		}},
		{"vertical addressing", []uint8{command.SetVerticalAddrMode}, func(t *testing.T, c *Chip) {
			assert.Equal(t, VerticalMode, c.memoryMode)
		}},
		{"page addressing", []uint8{command.SetPageAddrMode}, func(t *testing.T, c *Chip) {
			assert.Equal(t, PageMode, c.memoryMode)
		}},
		{"clock divider", []uint8{command.SetDisplayClockDiv, 0xF3}, func(t *testing.T, c *Chip) {
			assert.Equal(t, uint8(1+3), c.clockDivider, "only the low nibble counts")
		}},
		{"precharge phases", []uint8{command.SetPrecharge, 0x42}, func(t *testing.T, c *Chip) {
			assert.Equal(t, uint8(0x2), c.phase1)
			assert.Equal(t, uint8(0x4), c.phase2)
		}},
		{"COM scan decrement", []uint8{command.ComScanDec}, func(t *testing.T, c *Chip) {
			assert.True(t, c.reverseRows)
		}},
		{"COM scan increment", []uint8{command.ComScanInc}, func(t *testing.T, c *Chip) {
			assert.False(t, c.reverseRows)
		}},
		{"segment remap on", []uint8{command.SegRemapOn}, func(t *testing.T, c *Chip) {
			assert.True(t, c.segmentRemap)
		}},
		{"start line", []uint8{command.SetDispStartLine, 0xC8}, func(t *testing.T, c *Chip) {
			assert.Equal(t, uint8(0xC8), c.startLine)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestChip()
			c.execute(tt.cmd)
			tt.check(t, c)
		})
	}
}

func TestInterpretColumnSelect(t *testing.T) {
	c, _, _ := newTestChip()

	c.execute([]uint8{0x0A}) // low nibble
	assert.Equal(t, 0x0A, c.activeColumn)

	c.execute([]uint8{0x15}) // high 3 bits
	assert.Equal(t, 0x5A, c.activeColumn)

	c.execute([]uint8{0x03})
	assert.Equal(t, 0x53, c.activeColumn, "low nibble replaced, high bits kept")
}

func TestInterpretPageSelect(t *testing.T) {
	c, _, _ := newTestChip()

	for page := 0; page < Pages; page++ {
		c.execute([]uint8{uint8(0xB0 + page)})
		assert.Equal(t, page, c.activePage)
	}
}

func TestInterpretComScanIncIsNotPageSelect(t *testing.T) {
	c, _, _ := newTestChip()
	c.activePage = 5
	c.reverseRows = true

	// 0xC0 sits at the top of the page-select range but decodes as COM
	// scan increment.
	c.execute([]uint8{0xC0})

	assert.False(t, c.reverseRows)
	assert.Equal(t, 5, c.activePage)
}

func TestInterpretColumnSelectDoesNotRedraw(t *testing.T) {
	c, sched, _ := newTestChip()
	c.displayOn = true

	c.execute([]uint8{0x0A})
	c.execute([]uint8{0x15})

	assert.Equal(t, 0, sched.Pending(), "column select changes addressing only")
}

func TestInterpretUnimplementedCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  []uint8
	}{
		{"set display offset", []uint8{command.SetDisplayOffset, 0x20}},
		{"set multiplex", []uint8{command.SetMultiplex, 0x3F}},
		{"set VCOM deselect", []uint8{command.SetVCOMDeselect, 0x35}},
		{"set COM pins", []uint8{command.SetComPins, 0x12}},
		{"display all on", []uint8{command.DisplayAllOn}},
		{"display all on resume", []uint8{command.DisplayAllOnResume}},
		{"nop", []uint8{command.NOP}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, sched, _ := newTestChip()
			c.displayOn = true
			before := snapshot(c)

			c.execute(tt.cmd)

			assert.Equal(t, before, snapshot(c), "registers must be untouched")
			assert.Equal(t, 0, sched.Pending())
		})
	}
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	for _, opcode := range []uint8{0x18, 0x7F, command.DCDC, command.ReadModifyWrite, command.End, 0xF9} {
		c, sched, _ := newTestChip()
		before := snapshot(c)

		cmd := []uint8{opcode}
		if command.ParamCount(opcode) > 0 {
			cmd = append(cmd, 0x00)
		}
		c.execute(cmd)

		assert.Equal(t, before, snapshot(c), "opcode %#02x", opcode)
		assert.Equal(t, 0, sched.Pending(), "opcode %#02x", opcode)
	}
}

func TestUnknownCommandResetsBuffer(t *testing.T) {
	c, _, _ := newTestChip()

	// DCDC declares one parameter, gets buffered as a full two-byte
	// command, is not interpreted, and the assembler is ready for the
	// next opcode.
	sendCommand(c, command.DCDC, 0x8B)
	require.Equal(t, 0, c.asm.Pending())

	sendCommand(c, command.SetContrast, 0x21)
	assert.Equal(t, uint8(0x21), c.contrast)
}
