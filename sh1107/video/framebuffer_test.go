package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameBufferWritePixel(t *testing.T) {
	fb := NewFrameBuffer(4, 2)

	assert.Len(t, fb.Bytes(), 4*2*4)

	fb.WritePixel((1*4+2)*4, Lit)

	assert.Equal(t, Lit, fb.Pixel(2, 1))
	assert.Equal(t, Dark, fb.Pixel(1, 1))

	// 4-byte little-endian at the byte offset, per the sink contract.
	offset := (1*4 + 2) * 4
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, fb.Bytes()[offset:offset+4])
}
