package ioctl

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Do executes the ioctl call with a pointer argument.
func Do(fd uintptr, command Command, ptr unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(command), uintptr(ptr))
	if errno != 0 {
		return fmt.Errorf("%s failed: %w", command, os.NewSyscallError("ioctl", errno))
	}
	return nil
}

// Call does a plain ioctl system call with an integer argument.
func Call(fd uintptr, command Command, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(command), arg)
	if errno != 0 {
		return fmt.Errorf("%s failed: %w", command, os.NewSyscallError("ioctl", errno))
	}
	return nil
}
