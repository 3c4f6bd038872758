// Package terminal renders the emulated panel in a terminal using
// tcell, two vertical pixels per character cell.
package terminal

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/ocallegari/go-sh1107/sh1107/backend"
	"github.com/ocallegari/go-sh1107/sh1107/video"
)

// Backend implements backend.Backend on a tcell screen.
type Backend struct {
	screen tcell.Screen
	config backend.Config
}

func New() *Backend {
	return &Backend{}
}

func (t *Backend) Init(config backend.Config) error {
	t.config = config

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()
	t.screen = screen

	slog.Info("terminal backend initialized")
	return nil
}

func (t *Backend) Update(frame *video.FrameBuffer) error {
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if isQuitKey(ev) && t.config.OnQuit != nil {
				t.config.OnQuit()
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	t.drawTitle()
	t.drawPanel(frame)
	t.screen.Show()

	return nil
}

func (t *Backend) Cleanup() error {
	if t.screen != nil {
		t.screen.Fini()
		t.screen = nil
	}
	return nil
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func (t *Backend) drawTitle() {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	title := t.config.Title + "  (q to quit)"
	for i, ch := range title {
		t.screen.SetContent(1+i, 0, ch, nil, style)
	}
}

// drawPanel draws two pixel rows per terminal row using half blocks:
// the foreground carries the top pixel, the background the bottom one.
func (t *Backend) drawPanel(frame *video.FrameBuffer) {
	width, height := frame.Width(), frame.Height()

	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			top := frame.Pixel(x, y) == video.Lit
			bottom := false
			if y+1 < height {
				bottom = frame.Pixel(x, y+1) == video.Lit
			}

			ch, style := halfBlock(top, bottom)
			t.screen.SetContent(x, y/2+1, ch, nil, style)
		}
	}
}

func halfBlock(top, bottom bool) (rune, tcell.Style) {
	style := tcell.StyleDefault
	switch {
	case top && bottom:
		return '█', style.Foreground(tcell.ColorWhite)
	case top:
		return '▀', style.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	case bottom:
		return '▄', style.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	default:
		return ' ', style.Background(tcell.ColorBlack)
	}
}
