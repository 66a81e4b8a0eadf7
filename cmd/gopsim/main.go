// gopsim replays the boot drawing sequence against an SDL window so the
// addressing layer can be eyeballed on a hosted build. The window
// surface's own pixel memory stands in for the firmware framebuffer and
// its pitch becomes the row stride, padding included, which exercises
// the stride/width split against a buffer this program did not lay out.
package main

import (
	"log"
	"unsafe"

	"github.com/go-errors/errors"
	"github.com/veandco/go-sdl2/sdl"

	"gopboot/vram"
)

const (
	winWidth  = 800
	winHeight = 600

	backgroundColor = 0x191B70
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.WrapPrefix(err, "sdl init", 0)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("gopboot", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		winWidth, winHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		return errors.WrapPrefix(err, "create window", 0)
	}
	defer window.Destroy()

	surface, err := window.GetSurface()
	if err != nil {
		return errors.WrapPrefix(err, "window surface", 0)
	}
	if surface.BytesPerPixel() != 4 {
		return errors.Errorf("need a 32bpp surface, got %d bytes per pixel", surface.BytesPerPixel())
	}

	pixels := surface.Pixels()
	v := vram.New(
		unsafe.Pointer(&pixels[0]),
		uint32(surface.W),
		uint32(surface.H),
		uint32(surface.Pitch)/4,
	)
	log.Printf("surface %dx%d, stride %d pixels", v.Width(), v.Height(), v.PixelsPerLine())

	if err := draw(v); err != nil {
		return err
	}
	if err := window.UpdateSurface(); err != nil {
		return errors.WrapPrefix(err, "present", 0)
	}

	for {
		switch event := sdl.WaitEvent().(type) {
		case *sdl.QuitEvent:
			return nil
		case *sdl.KeyboardEvent:
			if event.Keysym.Sym == sdl.K_ESCAPE {
				return nil
			}
		}
	}
}

// draw paints the boot background plus two disjoint rectangles and a
// corner point, the same shapes the drawing tests assert on.
func draw(v vram.VRAM) error {
	if err := vram.FillRect(v, backgroundColor, 0, 0, v.Width(), v.Height()); err != nil {
		return errors.WrapPrefix(err, "clear", 0)
	}
	if err := vram.FillRect(v, 0xFF0000, 32, 32, 32, 32); err != nil {
		return errors.WrapPrefix(err, "red rect", 0)
	}
	if err := vram.FillRect(v, 0x00FF00, 64, 64, 64, 64); err != nil {
		return errors.WrapPrefix(err, "green rect", 0)
	}
	if err := vram.DrawPoint(v, 0xFFFFFF, v.Width()-1, v.Height()-1); err != nil {
		return errors.WrapPrefix(err, "corner point", 0)
	}
	return nil
}
