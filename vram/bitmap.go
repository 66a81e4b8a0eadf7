// Package vram provides bounds-checked pixel addressing over a linear
// framebuffer. Exactly one place computes buffer addresses; everything
// else is layered on top of it.
package vram

import "unsafe"

// Bitmap is the minimal capability set a pixel-addressable surface must
// expose. PixelsPerLine is the row stride in pixels: it may exceed Width
// when the buffer carries alignment padding, and all row arithmetic keys
// off it, never off Width.
type Bitmap interface {
	BytesPerPixel() uint32
	PixelsPerLine() uint32
	Width() uint32
	Height() uint32
	Buf() unsafe.Pointer
}

// uncheckedPixelAt computes base + (y*stride + x)*bpp and reinterprets
// it as a pixel cell. No range validation: callers must have already
// established x < min(Width, PixelsPerLine) and y < Height. Rectangle
// fills use this directly so the bounds cost is paid once per call, not
// once per pixel.
func uncheckedPixelAt(b Bitmap, x, y uint32) *uint32 {
	off := uintptr((y*b.PixelsPerLine() + x) * b.BytesPerPixel())
	return (*uint32)(unsafe.Pointer(uintptr(b.Buf()) + off))
}

// PixelAt is the checked accessor. The drawable x range is
// [0, min(Width, PixelsPerLine)): padding columns are never valid
// drawable pixels, and if the stride ever came back shorter than the
// width it must still cap the row.
func PixelAt(b Bitmap, x, y uint32) (*uint32, bool) {
	if !inXRange(b, x) || !inYRange(b, y) {
		return nil, false
	}
	return uncheckedPixelAt(b, x, y), true
}

func inXRange(b Bitmap, x uint32) bool {
	limit := b.Width()
	if ppl := b.PixelsPerLine(); ppl < limit {
		limit = ppl
	}
	return x < limit
}

func inYRange(b Bitmap, y uint32) bool {
	return y < b.Height()
}
