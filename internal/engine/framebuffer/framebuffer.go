// Package framebuffer provides the CPU pixel buffer that the rasterizer
// draws into and presenters read from.
//
// Pixels are stored row-major as packed ARGB8888 values (see Color.Pack),
// which is also the layout SDL's PIXELFORMAT_ARGB8888 textures expect.
package framebuffer

import (
	"image"
	"image/color"
)

// Buffer is a fixed-size packed-color render target.
type Buffer struct {
	width     int
	height    int
	pixels    []uint32
	drawColor Color
}

// New allocates a zeroed width×height buffer.
// Negative dimensions are treated as zero.
func New(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)
	return &Buffer{
		width:  width,
		height: height,
		pixels: make([]uint32, width*height),
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Pixels returns the packed pixel slice (row-major, stride = Width).
// The slice aliases the buffer.
func (b *Buffer) Pixels() []uint32 {
	return b.pixels
}

// Row returns row y of the packed pixel slice.
func (b *Buffer) Row(y int) []uint32 {
	return b.pixels[y*b.width : (y+1)*b.width]
}

// Clear sets every pixel to c.
func (b *Buffer) Clear(c Color) {
	p := c.Pack()
	for i := range b.pixels {
		b.pixels[i] = p
	}
}

// Put writes one pixel. Writes outside the buffer are silently dropped;
// this is the only clipping the pipeline performs.
func (b *Buffer) Put(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.pixels[y*b.width+x] = c.Pack()
}

// Pixel returns the packed value at (x, y), or 0 outside the buffer.
func (b *Buffer) Pixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0
	}
	return b.pixels[y*b.width+x]
}

// SetDrawColor sets the current draw color.
func (b *Buffer) SetDrawColor(c Color) {
	b.drawColor = c
}

// DrawColor returns the current draw color.
func (b *Buffer) DrawColor() Color {
	return b.drawColor
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image.
func (b *Buffer) At(x, y int) color.Color {
	return Unpack(b.Pixel(x, y))
}

// CopyRGBA writes the buffer into dst as R, G, B, A bytes per pixel
// (the layout of image.NRGBA.Pix). dst must hold Width*Height*4 bytes.
func (b *Buffer) CopyRGBA(dst []byte) {
	for i, p := range b.pixels {
		j := i * 4
		dst[j+0] = uint8(p >> 16)
		dst[j+1] = uint8(p >> 8)
		dst[j+2] = uint8(p)
		dst[j+3] = uint8(p >> 24)
	}
}
