package video

import "github.com/ocallegari/go-sh1107/sh1107/bit"

// Params capture the slice of device state the frame transform depends
// on. Contrast is deliberately absent: the emulated output has no gray
// levels.
type Params struct {
	Width   int
	Height  int
	XOffset int

	StartLine   uint8
	ReverseRows bool
	Invert      bool
	DisplayOn   bool
}

// Render transforms page-packed pixel memory into a full frame on the
// sink. Pixel memory stores 8 vertically stacked pixels per byte, one
// column of one page; the transform applies the start-line scroll, the
// COM scan direction, the panel column offset and the invert setting.
//
// The vertical wrap is mod Width, not Height. That matches the
// controller's addressing geometry (128 rows of RAM regardless of panel
// height) and must not be "fixed": panels rely on it for scrolling.
func Render(pixels []uint8, p Params, sink PixelSink) {
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			scrollY := y + int(p.StartLine)
			virtualY := scrollY
			if p.ReverseRows {
				virtualY = p.Height - 1 - scrollY
			}
			virtualY = bit.Mod(virtualY, p.Width)

			src := (virtualY/8)*p.Width + bit.Mod(x+p.XOffset, p.Width)
			lit := bit.IsSet(uint8(virtualY%8), pixels[src]) != p.Invert

			value := Dark
			if lit && p.DisplayOn {
				value = Lit
			}
			sink.WritePixel((y*p.Width+x)*4, value)
		}
	}
}
