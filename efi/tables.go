// Package efi locates the firmware-provided graphics capability.
//
// The firmware hands the image entry point a pointer to its system
// table. The tables below map only the fields this program touches;
// everything in front of them is opaque padding sized so each mapped
// field lands on its ABI-mandated byte offset. The zero-length array
// pairs refuse to compile if a struct ever drifts off those offsets.
package efi

import "unsafe"

// Handle is an opaque reference to a firmware object.
type Handle uintptr

// ABI-mandated byte offsets inside the firmware tables.
const (
	systemTableBootServicesOffset    = 96
	bootServicesLocateProtocolOffset = 320
)

// BootServices is the firmware's boot services table. The one service
// this program calls is a function pointer at byte offset 320.
type BootServices struct {
	_              [40]uint64
	locateProtocol uintptr
}

// SystemTable is the root services table. It is caller-owned firmware
// memory that outlives the image; this program never mutates it.
type SystemTable struct {
	_            [12]uint64
	BootServices *BootServices
}

var (
	_ [unsafe.Offsetof(BootServices{}.locateProtocol) - bootServicesLocateProtocolOffset]byte
	_ [bootServicesLocateProtocolOffset - unsafe.Offsetof(BootServices{}.locateProtocol)]byte

	_ [unsafe.Offsetof(SystemTable{}.BootServices) - systemTableBootServicesOffset]byte
	_ [systemTableBootServicesOffset - unsafe.Offsetof(SystemTable{}.BootServices)]byte
)
