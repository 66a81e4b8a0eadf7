package efi

import "errors"

// Status is the UINTN status word every boot service returns. Error
// statuses have the high bit set.
type Status uintptr

const (
	Success Status = 0

	errBit Status = 1 << 63

	Unsupported = errBit | 3
	NotFound    = errBit | 14
)

// The locator runs before any allocator exists, so failures are static
// sentinel values rather than constructed errors.
var (
	ErrLocate      = errors.New("efi: locate protocol failed")
	ErrUnsupported = errors.New("efi: protocol unsupported")
	ErrNotFound    = errors.New("efi: protocol not found")
)

// OK reports whether s is a success status.
func (s Status) OK() bool { return s == Success }

// Err maps a status word to an error, nil on success. Only the statuses
// the boot path can actually see are discriminated; everything else is a
// generic locate failure, which the caller must treat as fatal anyway.
func (s Status) Err() error {
	switch s {
	case Success:
		return nil
	case NotFound:
		return ErrNotFound
	case Unsupported:
		return ErrUnsupported
	default:
		return ErrLocate
	}
}
