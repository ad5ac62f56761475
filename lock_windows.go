//go:build windows

package coldb

import (
	"syscall"
	"unsafe"
)

var (
	modkernel32      = syscall.NewLazyDLL("kernel32.dll")
	procLockFileEx   = modkernel32.NewProc("LockFileEx")
	procUnlockFileEx = modkernel32.NewProc("UnlockFileEx")
)

const lockfileExclusiveLock = 0x00000002

// lock covers the whole addressable range so it applies regardless of
// the file's current length.
func (l *fileLock) lock(mode LockMode) error {
	var flags uintptr
	if mode == LockExclusive {
		flags = lockfileExclusiveLock
	}
	var ol syscall.Overlapped
	r1, _, err := procLockFileEx.Call(
		l.f.Fd(), flags, 0,
		0xFFFFFFFF, 0xFFFFFFFF,
		uintptr(unsafe.Pointer(&ol)),
	)
	if r1 == 0 {
		return err
	}
	return nil
}

func (l *fileLock) unlock() error {
	var ol syscall.Overlapped
	r1, _, err := procUnlockFileEx.Call(
		l.f.Fd(), 0,
		0xFFFFFFFF, 0xFFFFFFFF,
		uintptr(unsafe.Pointer(&ol)),
	)
	if r1 == 0 {
		return err
	}
	return nil
}
