// Package command holds the SH1107 command set: the control byte flags,
// the opcode constants and their declared parameter counts, and the
// assembler that buffers multi-byte commands arriving over the bus.
//
// Datasheet: https://www.displayfuture.com/Display/datasheet/controller/SH1107.pdf
package command

// Control byte flags. The first byte of each bus transaction phase is a
// control byte: a clear Co bit means all following bytes keep the same
// interpretation (continuous mode), the DC bit selects data over command.
const (
	ControlCo = 0x80
	ControlDC = 0x40
)

// Command opcodes.
const (
	SetPageAddrMode     = 0x20
	SetVerticalAddrMode = 0x21
	SetContrast         = 0x81
	SegRemapOff         = 0xA0
	SegRemapOn          = 0xA1
	DisplayAllOnResume  = 0xA4
	DisplayAllOn        = 0xA5
	NormalDisplay       = 0xA6
	InvertDisplay       = 0xA7
	SetMultiplex        = 0xA8
	DCDC                = 0xAD
	DisplayOff          = 0xAE
	DisplayOn           = 0xAF
	ComScanInc          = 0xC0
	ComScanDec          = 0xC8
	SetDisplayOffset    = 0xD3
	SetDisplayClockDiv  = 0xD5
	SetPrecharge        = 0xD9
	SetComPins          = 0xDA
	SetVCOMDeselect     = 0xDB
	SetDispStartLine    = 0xDC
	ReadModifyWrite     = 0xE0
	NOP                 = 0xE3
	End                 = 0xEE
)

// Boundaries of the single-byte addressing opcodes. Low/high column
// opcodes carry the column nibble in the opcode itself, page-select
// opcodes carry the page number in the low nibble.
const (
	SetLowColumn   = 0x00 // 0x00..0x0F
	SetHighColumn  = 0x10 // 0x10..0x17
	SetPageAddress = 0xB0 // 0xB0..0xC0 as decoded, see chip interpreter
)

// MaxLength is the longest command the assembler will buffer, opcode
// included.
const MaxLength = 8

// paramCounts maps an opcode to its declared number of parameter bytes.
// Opcodes absent from the map take no parameters.
var paramCounts = map[uint8]int{
	SetContrast:        1,
	SetMultiplex:       1,
	DCDC:               1,
	SetDisplayOffset:   1,
	SetComPins:         1,
	SetDisplayClockDiv: 1,
	SetPrecharge:       1,
	SetVCOMDeselect:    1,
	SetDispStartLine:   1,
}

// ParamCount returns the declared parameter byte count for an opcode.
func ParamCount(opcode uint8) int {
	return paramCounts[opcode]
}

// Assembler buffers the bytes of an in-progress command. The first byte
// of a command fixes its total length from the opcode's declared
// parameter count; until that length is satisfied bytes are only
// buffered. There is no timeout: an incomplete command waits
// indefinitely for its remaining bytes.
type Assembler struct {
	buf    [MaxLength]uint8
	index  int
	length int
}

// Feed appends one byte to the in-progress command. It returns the full
// command once the declared length is satisfied, or nil while more
// bytes are expected. The returned slice aliases the internal buffer
// and is only valid until the next Feed or Reset.
func (a *Assembler) Feed(value uint8) []uint8 {
	if a.index == 0 {
		a.length = 1 + ParamCount(value)
	}
	a.buf[a.index] = value
	a.index++
	if a.index < a.length {
		return nil
	}
	return a.buf[:a.index]
}

// Reset discards the in-progress command, ready for the next opcode.
func (a *Assembler) Reset() {
	a.index = 0
}

// Pending reports how many bytes of an in-progress command are buffered.
func (a *Assembler) Pending() int {
	return a.index
}
