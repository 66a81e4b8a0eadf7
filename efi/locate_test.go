package efi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapCallService installs a hosted stand-in for the firmware trampoline
// and restores the real one when the test finishes.
func swapCallService(t *testing.T, fake func(fn, a1, a2, a3 uintptr) Status) {
	t.Helper()
	prev := callService
	callService = fake
	t.Cleanup(func() { callService = prev })
}

func fakeSystemTable() (*SystemTable, *BootServices) {
	bs := &BootServices{locateProtocol: 0xb007}
	return &SystemTable{BootServices: bs}, bs
}

func TestLocateGraphicsOutputSuccess(t *testing.T) {
	info := ModeInfo{
		HorizontalResolution: 800,
		VerticalResolution:   600,
		PixelsPerScanLine:    832,
	}
	mode := GraphicsOutputMode{
		Info:            &info,
		FrameBufferBase: 0x8000_0000,
		FrameBufferSize: 832 * 600 * 4,
	}
	gp := GraphicsOutput{Mode: &mode}

	st, bs := fakeSystemTable()
	var gotFn, gotGUID, gotReg uintptr
	swapCallService(t, func(fn, a1, a2, a3 uintptr) Status {
		gotFn, gotGUID, gotReg = fn, a1, a2
		*(*unsafe.Pointer)(unsafe.Pointer(a3)) = unsafe.Pointer(&gp)
		return Success
	})

	got, err := LocateGraphicsOutput(st)
	require.NoError(t, err)
	require.Equal(t, &gp, got)
	assert.Equal(t, uint32(800), got.Mode.Info.HorizontalResolution)

	assert.Equal(t, bs.locateProtocol, gotFn, "must dispatch through the table's function pointer")
	assert.Equal(t, uintptr(unsafe.Pointer(&GraphicsOutputGUID)), gotGUID)
	assert.Zero(t, gotReg, "registration token must be null")
}

func TestLocateGraphicsOutputNotFound(t *testing.T) {
	st, _ := fakeSystemTable()
	swapCallService(t, func(fn, a1, a2, a3 uintptr) Status {
		return NotFound
	})

	gp, err := LocateGraphicsOutput(st)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, gp)
}

func TestLocateGraphicsOutputUnsupported(t *testing.T) {
	st, _ := fakeSystemTable()
	swapCallService(t, func(fn, a1, a2, a3 uintptr) Status {
		return Unsupported
	})

	gp, err := LocateGraphicsOutput(st)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Nil(t, gp)
}

func TestLocateGraphicsOutputUnknownStatus(t *testing.T) {
	st, _ := fakeSystemTable()
	swapCallService(t, func(fn, a1, a2, a3 uintptr) Status {
		return errBit | 8 // any other failure collapses to ErrLocate
	})

	gp, err := LocateGraphicsOutput(st)
	assert.ErrorIs(t, err, ErrLocate)
	assert.Nil(t, gp)
}

func TestStatusErr(t *testing.T) {
	assert.NoError(t, Success.Err())
	assert.True(t, Success.OK())
	assert.ErrorIs(t, NotFound.Err(), ErrNotFound)
	assert.ErrorIs(t, Unsupported.Err(), ErrUnsupported)
	assert.False(t, NotFound.OK())
}
