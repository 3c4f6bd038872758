package sh1107

import (
	"fmt"
	"log/slog"

	"github.com/ocallegari/go-sh1107/sh1107/backend"
	"github.com/ocallegari/go-sh1107/sh1107/bus"
	"github.com/ocallegari/go-sh1107/sh1107/config"
	"github.com/ocallegari/go-sh1107/sh1107/timing"
	"github.com/ocallegari/go-sh1107/sh1107/video"
)

// Emulator wires the chip, the bus adapter, the render scheduler and a
// backend into a frame loop driven by scripted bus traffic. All device
// callbacks run on the loop's goroutine, which keeps the chip's
// single-writer contract without locking.
type Emulator struct {
	chip    *Chip
	bus     *bus.I2C
	addr    uint16
	frame   *video.FrameBuffer
	sched   *timing.Manual
	backend backend.Backend
	limiter timing.Limiter
	script  []Transaction
	quit    bool
}

// Options configure a new emulator.
type Options struct {
	Model   config.Model
	Backend backend.Backend
	Limiter timing.Limiter
	Script  []Transaction
}

// NewEmulator builds the full device: chip core, framebuffer sink,
// manual scheduler, and the I2C adapter the script is fed through.
func NewEmulator(opts Options) *Emulator {
	frame := video.NewFrameBuffer(opts.Model.Width, opts.Model.Height)
	sched := timing.NewManual()
	chip := New(Config{
		Width:   opts.Model.Width,
		Height:  opts.Model.Height,
		XOffset: opts.Model.XOffset,
	}, sched, frame)

	limiter := opts.Limiter
	if limiter == nil {
		limiter = timing.NewNoOpLimiter()
	}

	addr := uint16(opts.Model.Address)
	return &Emulator{
		chip:    chip,
		bus:     bus.NewI2C(addr, chip),
		addr:    addr,
		frame:   frame,
		sched:   sched,
		backend: opts.Backend,
		limiter: limiter,
		script:  opts.Script,
	}
}

// Chip exposes the emulated device, e.g. for driving it directly
// instead of through a script.
func (e *Emulator) Chip() *Chip {
	return e.chip
}

// Frame exposes the pixel sink the renderer writes to.
func (e *Emulator) Frame() *video.FrameBuffer {
	return e.frame
}

// Run executes the frame loop: one scripted transaction per frame,
// then any armed render callbacks, then a backend update. It stops
// after maxFrames frames (0 = run until the backend requests quit).
func (e *Emulator) Run(maxFrames int) error {
	if err := e.backend.Init(backend.Config{
		Title:  fmt.Sprintf("SH1107 %dx%d", e.frame.Width(), e.frame.Height()),
		OnQuit: func() { e.quit = true },
	}); err != nil {
		return err
	}
	defer e.backend.Cleanup()
	defer e.limiter.Stop()

	slog.Info("starting emulation",
		"transactions", len(e.script),
		"max_frames", maxFrames)

	for frame := 0; !e.quit && (maxFrames == 0 || frame < maxFrames); frame++ {
		if frame < len(e.script) {
			if err := e.bus.Tx(e.addr, e.script[frame], nil); err != nil {
				return fmt.Errorf("emulator: frame %d: %w", frame, err)
			}
		}

		e.sched.Fire()

		if err := e.backend.Update(e.frame); err != nil {
			return fmt.Errorf("emulator: frame %d: %w", frame, err)
		}

		e.limiter.WaitForNextFrame()
	}

	return nil
}
