package efi

import "unsafe"

// GUID is the 128-bit identifier firmware uses to name a capability.
// The field layout (4 + 2 + 2 + 8 bytes) is the platform's wire format;
// identifiers are compared by raw value.
type GUID struct {
	Data0 uint32
	Data1 uint16
	Data2 uint16
	Data3 [8]uint8
}

// GraphicsOutputGUID names the graphics output protocol,
// {9042A9DE-23DC-4A38-96FB-7ADED080516A}.
var GraphicsOutputGUID = GUID{
	0x9042a9de, 0x23dc, 0x4a38,
	[8]uint8{0x96, 0xfb, 0x7a, 0xde, 0xd0, 0x80, 0x51, 0x6a},
}

// GUID must stay exactly 16 bytes with no padding.
var (
	_ [unsafe.Sizeof(GUID{}) - 16]byte
	_ [16 - unsafe.Sizeof(GUID{})]byte
)
