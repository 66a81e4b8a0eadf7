package efi

import "unsafe"

// ModeInfo is the graphics mode descriptor, mapped down to the fields
// this program reads. The record is exactly 36 bytes: version,
// horizontal and vertical resolution, 20 reserved bytes, then the row
// stride in pixels. PixelsPerScanLine may exceed HorizontalResolution
// when firmware pads rows for alignment; the two are never
// interchangeable.
type ModeInfo struct {
	Version              uint32
	HorizontalResolution uint32
	VerticalResolution   uint32
	_                    [5]uint32
	PixelsPerScanLine    uint32
}

var (
	_ [unsafe.Sizeof(ModeInfo{}) - 36]byte
	_ [36 - unsafe.Sizeof(ModeInfo{})]byte
)

// GraphicsOutputMode describes the active mode: the info record, the
// framebuffer base address (still an integer here, not yet a typed
// pointer) and its size in bytes.
type GraphicsOutputMode struct {
	MaxMode         uint32
	Mode            uint32
	Info            *ModeInfo
	SizeOfInfo      uint64
	FrameBufferBase uintptr
	FrameBufferSize uintptr
}

// GraphicsOutput is the located protocol record. The three leading
// function pointers (query mode, set mode, blt) go unused: the mode is
// taken exactly as firmware left it.
type GraphicsOutput struct {
	_    [3]uintptr
	Mode *GraphicsOutputMode
}

var (
	_ [unsafe.Offsetof(GraphicsOutput{}.Mode) - 24]byte
	_ [24 - unsafe.Offsetof(GraphicsOutput{}.Mode)]byte
)

// LocateGraphicsOutput finds the graphics output protocol and returns a
// borrowed view of it. Failure means the platform has no usable display.
func LocateGraphicsOutput(st *SystemTable) (*GraphicsOutput, error) {
	iface, err := LocateProtocol(st, &GraphicsOutputGUID)
	if err != nil {
		return nil, err
	}
	return (*GraphicsOutput)(iface), nil
}
