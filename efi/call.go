package efi

import "unsafe"

// efiCall3 jumps to a firmware function pointer with three arguments,
// following the platform calling convention. Implemented per arch in
// call_*.s.
func efiCall3(fn, a1, a2, a3 uintptr) uintptr

// callService is the dispatch seam between this package and firmware.
// Tests substitute a hosted stand-in for the trampoline.
var callService = func(fn, a1, a2, a3 uintptr) Status {
	return Status(efiCall3(fn, a1, a2, a3))
}

// LocateProtocol asks the firmware for the capability named by guid,
// passing a null registration token. On success the firmware has written
// the interface pointer into the output slot; the returned memory is
// firmware-owned and stays valid for the life of the image. Any
// non-success status is fatal at startup: the capability either exists
// once or the platform is unusable, so there is nothing to retry.
func LocateProtocol(st *SystemTable, guid *GUID) (unsafe.Pointer, error) {
	var iface unsafe.Pointer
	status := callService(
		st.BootServices.locateProtocol,
		uintptr(unsafe.Pointer(guid)),
		0,
		uintptr(unsafe.Pointer(&iface)),
	)
	if err := status.Err(); err != nil {
		return nil, err
	}
	return iface, nil
}
