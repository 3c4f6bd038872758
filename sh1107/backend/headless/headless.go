// Package headless is a backend for automated runs: it renders nothing
// interactively and optionally writes text snapshots of frames.
package headless

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ocallegari/go-sh1107/sh1107/backend"
	"github.com/ocallegari/go-sh1107/sh1107/video"
)

// SnapshotConfig controls periodic frame snapshots.
type SnapshotConfig struct {
	Interval  int    // Save a snapshot every N frames; 0 disables.
	Directory string // Target directory for snapshot files.
}

// Backend implements backend.Backend without a display surface.
type Backend struct {
	config     backend.Config
	snapshots  SnapshotConfig
	frameCount int
}

func New(snapshots SnapshotConfig) *Backend {
	return &Backend{snapshots: snapshots}
}

func (h *Backend) Init(config backend.Config) error {
	h.config = config

	if h.snapshots.Interval > 0 {
		if err := os.MkdirAll(h.snapshots.Directory, 0o755); err != nil {
			return fmt.Errorf("headless: creating snapshot directory: %w", err)
		}
	}

	slog.Info("headless backend initialized",
		"snapshot_interval", h.snapshots.Interval,
		"snapshot_dir", h.snapshots.Directory)
	return nil
}

func (h *Backend) Update(frame *video.FrameBuffer) error {
	h.frameCount++

	if h.snapshots.Interval > 0 && h.frameCount%h.snapshots.Interval == 0 {
		path := filepath.Join(h.snapshots.Directory, fmt.Sprintf("frame_%06d.txt", h.frameCount))
		if err := WriteSnapshot(frame, path); err != nil {
			slog.Error("failed to save snapshot", "frame", h.frameCount, "path", path, "error", err)
			return err
		}
		slog.Debug("saved frame snapshot", "frame", h.frameCount, "path", path)
	}

	return nil
}

func (h *Backend) Cleanup() error {
	slog.Info("headless run completed", "frames", h.frameCount)
	return nil
}

// WriteSnapshot saves a frame as text, one character per pixel.
func WriteSnapshot(frame *video.FrameBuffer, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "# SH1107 frame snapshot\n")
	fmt.Fprintf(file, "# Resolution: %dx%d pixels\n", frame.Width(), frame.Height())
	fmt.Fprintf(file, "# Legend: #=lit .=dark\n")

	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			ch := byte('.')
			if frame.Pixel(x, y) == video.Lit {
				ch = '#'
			}
			if _, err := file.Write([]byte{ch}); err != nil {
				return err
			}
		}
		if _, err := file.Write([]byte{'\n'}); err != nil {
			return err
		}
	}

	return nil
}
