// Package backend defines how rendered frames reach the host surface.
package backend

import (
	"github.com/ocallegari/go-sh1107/sh1107/video"
)

// Backend renders emulated frames to a host-specific output.
type Backend interface {
	// Init configures the backend. Required before calling Update.
	Init(config Config) error

	// Update polls backend events and renders the provided frame.
	Update(frame *video.FrameBuffer) error

	// Cleanup releases resources when shutting down.
	Cleanup() error
}

// Config holds configuration shared by all backends.
type Config struct {
	Title string

	// OnQuit is invoked when the backend requests shutdown (e.g. a
	// quit key).
	OnQuit func()
}
