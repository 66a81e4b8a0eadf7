package boot

import (
	"gopboot/efi"
	"gopboot/vram"
)

// Boot screen background, XRGB8888.
const bootFillColor = 0xFF0000

// initVRAM is a seam so tests can stand in for firmware discovery.
var initVRAM = InitVRAM

// InitVRAM locates the graphics capability and builds the pixel view
// from its descriptor.
func InitVRAM(st *efi.SystemTable) (vram.VRAM, error) {
	gp, err := efi.LocateGraphicsOutput(st)
	if err != nil {
		return vram.VRAM{}, err
	}
	return vram.FromGraphicsOutput(gp), nil
}

// Run is the reference startup sequence, called exactly once by the
// image entry glue: discover the framebuffer, paint the whole visible
// screen, halt. A locate failure aborts the boot; a drawing failure at
// this stage means broken geometry upstream and is treated the same way.
// Run does not return.
func Run(_ efi.Handle, st *efi.SystemTable) {
	v, err := initVRAM(st)
	if err != nil {
		Fatal(err.Error())
	}
	if err := vram.FillRect(v, bootFillColor, 0, 0, v.Width(), v.Height()); err != nil {
		Fatal(err.Error())
	}
	Halt()
}
