package vram

import (
	"unsafe"

	"gopboot/efi"
)

// VRAM is the program's view of the display buffer: raw base pointer
// plus geometry, fixed 4 bytes per pixel. The buffer itself is owned by
// firmware for the life of the image; the view is built once at startup
// and never resized, reallocated or freed.
type VRAM struct {
	buf           unsafe.Pointer
	width         uint32
	height        uint32
	pixelsPerLine uint32
}

// New wraps an existing pixel buffer. Geometry is taken on trust here;
// out-of-range coordinates are rejected per drawing call instead.
func New(buf unsafe.Pointer, width, height, pixelsPerLine uint32) VRAM {
	return VRAM{
		buf:           buf,
		width:         width,
		height:        height,
		pixelsPerLine: pixelsPerLine,
	}
}

// FromGraphicsOutput copies the base address and geometry out of the
// located protocol. Buffer contents are not copied and the descriptor is
// not retained.
func FromGraphicsOutput(gp *efi.GraphicsOutput) VRAM {
	return VRAM{
		buf:           unsafe.Pointer(gp.Mode.FrameBufferBase),
		width:         gp.Mode.Info.HorizontalResolution,
		height:        gp.Mode.Info.VerticalResolution,
		pixelsPerLine: gp.Mode.Info.PixelsPerScanLine,
	}
}

func (v VRAM) BytesPerPixel() uint32 { return 4 }
func (v VRAM) PixelsPerLine() uint32 { return v.pixelsPerLine }
func (v VRAM) Width() uint32         { return v.width }
func (v VRAM) Height() uint32        { return v.height }
func (v VRAM) Buf() unsafe.Pointer   { return v.buf }
