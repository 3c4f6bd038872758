package video

import "encoding/binary"

// Pixel values written to the sink. The output is strictly binary, one
// 32-bit value per pixel.
const (
	Lit  uint32 = 0xFFFFFFFF
	Dark uint32 = 0x00000000
)

// PixelSink receives rendered pixels as 4-byte little-endian values at
// byte offsets. This mirrors the shared framebuffer a simulation host
// hands to the device: width*height*4 bytes, pixel (x, y) at offset
// (y*width+x)*4.
type PixelSink interface {
	WritePixel(offset int, value uint32)
}

// FrameBuffer is an in-memory PixelSink backed by a fixed-size byte
// buffer. The size is fixed at construction and never reallocated.
type FrameBuffer struct {
	width  int
	height int
	data   []byte
}

// NewFrameBuffer creates a frame buffer of width*height*4 bytes.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		data:   make([]byte, width*height*4),
	}
}

func (fb *FrameBuffer) Width() int  { return fb.width }
func (fb *FrameBuffer) Height() int { return fb.height }

// WritePixel stores a 4-byte pixel value at the given byte offset.
func (fb *FrameBuffer) WritePixel(offset int, value uint32) {
	binary.LittleEndian.PutUint32(fb.data[offset:offset+4], value)
}

// Pixel returns the pixel value at the given coordinate.
func (fb *FrameBuffer) Pixel(x, y int) uint32 {
	offset := (y*fb.width + x) * 4
	return binary.LittleEndian.Uint32(fb.data[offset : offset+4])
}

// Bytes exposes the raw frame data, little-endian, 4 bytes per pixel.
func (fb *FrameBuffer) Bytes() []byte {
	return fb.data
}
