package sh1107

import (
	"fmt"
	"log/slog"

	"github.com/ocallegari/go-sh1107/sh1107/bit"
	"github.com/ocallegari/go-sh1107/sh1107/command"
)

// execute interprets one complete command buffer. cmd[0] is the opcode,
// cmd[1] the parameter byte for parameterized opcodes.
//
// Most register changes mark the frame for redraw, which only takes
// effect while the display is on. Display on/off schedule a redraw
// unconditionally so that switching off is reflected immediately.
// Column-select commands change addressing only and never redraw.
func (c *Chip) execute(cmd []uint8) {
	opcode := cmd[0]
	redraw := false

	switch opcode {
	case command.SetContrast:
		c.contrast = cmd[1]
		redraw = true

	case command.DisplayOff:
		c.displayOn = false
		c.scheduleRedraw()

	case command.DisplayOn:
		c.displayOn = true
		c.scheduleRedraw()

	case command.NormalDisplay:
		c.invert = false
		redraw = true

	case command.InvertDisplay:
		c.invert = true
		redraw = true

	case command.NOP:

	case command.SetPageAddrMode:
		c.memoryMode = PageMode

	case command.SetVerticalAddrMode:
		c.memoryMode = VerticalMode

	case command.SetDisplayClockDiv:
		c.clockDivider = 1 + bit.LowNibble(cmd[1])

	case command.SetPrecharge:
		c.phase1 = bit.LowNibble(cmd[1])
		c.phase2 = bit.HighNibble(cmd[1])

	case command.ComScanInc:
		c.reverseRows = false
		redraw = true

	case command.ComScanDec:
		c.reverseRows = true
		redraw = true

	case command.SegRemapOff:
		c.segmentRemap = false
		redraw = true

	case command.SegRemapOn:
		c.segmentRemap = true
		redraw = true

	case command.SetDispStartLine:
		c.startLine = cmd[1]
		redraw = true

	case command.SetDisplayOffset,
		command.SetMultiplex,
		command.SetVCOMDeselect,
		command.SetComPins,
		command.DisplayAllOn,
		command.DisplayAllOnResume:
		// accepted, not implemented

	default:
		switch {
		case opcode <= 0x0F:
			// Low nibble of the column address. The register addresses
			// the controller's full 128-column RAM; panels narrower
			// than that wrap it, like the data cursor does.
			c.activeColumn = (c.activeColumn&0x70 | int(opcode)) % c.width

		case opcode >= 0x10 && opcode <= 0x17:
			// High 3 bits of the column address.
			c.activeColumn = (c.activeColumn&0x0F | int(opcode&0x07)<<4) % c.width

		case opcode >= 0xB0 && opcode <= 0xC0:
			// 0xC0 never reaches this branch: it is COM scan
			// increment, matched above.
			c.activePage = int(opcode & 0x0F)
			redraw = true

		default:
			slog.Warn("unknown SH1107 command", "opcode", fmt.Sprintf("%#02x", opcode))
		}
	}

	if redraw && c.displayOn {
		c.scheduleRedraw()
	}
}
