package vram

import "errors"

// ErrOutOfBounds reports a pixel or rectangle outside the buffer
// geometry. It carries no further context: a rejected draw indicates a
// programming error upstream, not a condition to recover from.
var ErrOutOfBounds = errors.New("vram: out of bounds")

// DrawPoint writes one pixel through the checked accessor. Nothing is
// written when the coordinate is rejected.
func DrawPoint(b Bitmap, color, x, y uint32) error {
	p, ok := PixelAt(b, x, y)
	if !ok {
		return ErrOutOfBounds
	}
	*p = color
	return nil
}

// FillRect fills the w by h rectangle whose top-left corner is (x, y).
// All four corners are validated before anything is written, so the fill
// is all-or-nothing; the interior then goes row-major through the
// unchecked accessor. An empty rectangle is a no-op, decided before the
// far-corner computation so x+w-1 can never underflow at w == 0; the
// corner coordinates themselves are widened to 64 bits so an oversized w
// or h cannot wrap back into range.
func FillRect(b Bitmap, color, x, y, w, h uint32) error {
	if w == 0 || h == 0 {
		return nil
	}
	right := uint64(x) + uint64(w) - 1
	bottom := uint64(y) + uint64(h) - 1
	if right > maxCoord || bottom > maxCoord {
		return ErrOutOfBounds
	}
	for _, c := range [4][2]uint32{
		{x, y},
		{uint32(right), y},
		{x, uint32(bottom)},
		{uint32(right), uint32(bottom)},
	} {
		if _, ok := PixelAt(b, c[0], c[1]); !ok {
			return ErrOutOfBounds
		}
	}
	for dy := uint32(0); dy < h; dy++ {
		for dx := uint32(0); dx < w; dx++ {
			*uncheckedPixelAt(b, x+dx, y+dy) = color
		}
	}
	return nil
}

const maxCoord = uint64(^uint32(0))
