// Package sh1107 emulates the SH1107 monochrome OLED display
// controller: the I2C command/data protocol, the page-organized display
// RAM, and the transform that turns RAM plus configuration into a
// rendered frame.
//
// The package models the digital behavior only. Analog timing values
// (clock divider, precharge phases) are stored but have no effect, bus
// read-back is not implemented, and output pixels are strictly binary.
package sh1107

import (
	"github.com/ocallegari/go-sh1107/sh1107/command"
	"github.com/ocallegari/go-sh1107/sh1107/timing"
	"github.com/ocallegari/go-sh1107/sh1107/video"
)

// MemoryMode selects how the address cursors advance after a data write.
type MemoryMode uint8

const (
	// PageMode advances the column only; the page changes solely
	// through explicit page-select commands.
	PageMode MemoryMode = iota
	// VerticalMode advances the page first and steps the column when
	// the page wraps past the last one.
	VerticalMode
)

const (
	// Pages is the number of 8-row bands in display RAM.
	Pages = 16

	// DefaultWidth and DefaultHeight are the geometry of the common
	// 128x128 modules.
	DefaultWidth  = 128
	DefaultHeight = 128

	// DefaultXOffset is the panel column offset of those modules; it
	// varies between display models.
	DefaultXOffset = 96

	// DefaultAddress is the 7-bit bus address the chip listens at.
	DefaultAddress = 0x3C
)

// Config fixes the chip geometry at construction.
type Config struct {
	Width   int
	Height  int
	XOffset int
}

// Chip is the emulated SH1107. It implements bus.Device; the host
// injects the render scheduler and the pixel sink at construction and
// must serialize all callbacks (bus traffic and timer fire), since the
// chip performs no locking of its own.
type Chip struct {
	width   int
	height  int
	xOffset int

	// Display RAM: Pages * width bytes, 8 vertically stacked pixels
	// per byte. Fixed size, never reallocated.
	pixels []uint8

	// Display settings.
	displayOn    bool
	contrast     uint8
	invert       bool
	reverseRows  bool
	segmentRemap bool

	// Speed and timing settings, stored but not emulated.
	clockDivider   uint8
	multiplexRatio uint8
	phase1         uint8
	phase2         uint8

	// Memory and addressing settings.
	activeColumn int
	activePage   int
	memoryMode   MemoryMode
	startLine    uint8

	// Command parsing state machine.
	controlByte    bool
	continuousMode bool
	commandMode    bool
	asm            command.Assembler

	// Redraw coalescing flag: set by the first request since the last
	// completed render, cleared when the render fires.
	updated bool

	sched timing.Scheduler
	sink  video.PixelSink
}

// New creates a chip with the given geometry, render scheduler and
// pixel sink. Zero geometry fields take the 128x128 module defaults.
func New(cfg Config, sched timing.Scheduler, sink video.PixelSink) *Chip {
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}

	c := &Chip{
		width:   cfg.Width,
		height:  cfg.Height,
		xOffset: cfg.XOffset,
		pixels:  make([]uint8, Pages*cfg.Width),
		sched:   sched,
		sink:    sink,
	}
	c.reset()

	return c
}

// reset applies the power-on register defaults.
func (c *Chip) reset() {
	c.memoryMode = PageMode
	c.contrast = 0x7F
	c.clockDivider = 1
	c.multiplexRatio = 63
	c.phase1 = 2
	c.phase2 = 2
	c.activeColumn = 0
	c.activePage = 0
	c.startLine = 0
	c.reverseRows = false
	c.invert = false
	c.updated = false
	c.asm.Reset()
}

// Connect begins a bus transaction: the next byte is a control byte.
// An in-progress command deliberately survives reconnects; only the
// control-byte expectation is reset, matching the real controller's
// state machine.
func (c *Chip) Connect() {
	c.controlByte = true
}

// Read is not modeled and returns a fixed placeholder.
func (c *Chip) Read() uint8 {
	return 0xFF
}

// Write consumes one bus byte and always acks.
//
// A pending control byte is decoded and consumed here: bit 6 selects
// data over command for the following bytes, a clear bit 7 keeps that
// selection for the whole transaction (continuous mode). Any other
// byte is routed to command assembly or display RAM; once it is fully
// processed, a non-continuous transaction expects a fresh control byte.
func (c *Chip) Write(value uint8) bool {
	if c.controlByte {
		c.commandMode = value&command.ControlDC == 0
		c.continuousMode = value&command.ControlCo == 0
		c.controlByte = false
		return true
	}

	if c.commandMode {
		cmd := c.asm.Feed(value)
		if cmd == nil {
			// Wait for the next command byte. The mode byte is not
			// re-armed: a command spans control phases if it must.
			return true
		}
		c.execute(cmd)
		c.asm.Reset()
	} else {
		c.writeData(value)
	}

	if !c.continuousMode {
		c.controlByte = true
	}

	return true
}

// writeData stores one byte of display RAM at the current address and
// advances the cursors per the active memory mode.
func (c *Chip) writeData(value uint8) {
	column := c.activeColumn
	if c.segmentRemap {
		column = c.width - 1 - c.activeColumn
	}
	c.pixels[c.activePage*c.width+column] = value

	switch c.memoryMode {
	case PageMode:
		c.activeColumn++
		if c.activeColumn >= c.width {
			c.activeColumn = 0
		}

	default: // vertical
		c.activePage++
		if c.activePage >= Pages {
			c.activePage = 0
			c.activeColumn++
			if c.activeColumn >= c.width {
				c.activeColumn = 0
			}
		}
	}

	c.scheduleRedraw()
}

// scheduleRedraw arms a one-shot render unless one is already pending.
// Requests are coalesced: only the device state at fire time is ever
// rendered.
func (c *Chip) scheduleRedraw() {
	if c.updated {
		return
	}
	c.updated = true
	c.sched.Schedule(timing.RenderDelay, c.renderFrame)
}

// renderFrame runs the frame transform against the sink and clears the
// pending-redraw flag.
func (c *Chip) renderFrame() {
	video.Render(c.pixels, video.Params{
		Width:       c.width,
		Height:      c.height,
		XOffset:     c.xOffset,
		StartLine:   c.startLine,
		ReverseRows: c.reverseRows,
		Invert:      c.invert,
		DisplayOn:   c.displayOn,
	}, c.sink)
	c.updated = false
}

// DisplayOn reports whether the panel is switched on.
func (c *Chip) DisplayOn() bool {
	return c.displayOn
}

// Size returns the panel geometry.
func (c *Chip) Size() (width, height int) {
	return c.width, c.height
}
