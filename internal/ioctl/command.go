// Package ioctl encodes and issues Linux ioctl requests.
package ioctl

import (
	"fmt"
	"reflect"
)

// Mode is the IOCTL data direction.
type Mode uint8

// Modes
const (
	None Mode = iota
	Write
	Read
)

// Command to be sent over ioctl.
type Command uintptr

// Mode of the data transfer.
func (c Command) Mode() Mode {
	return Mode(c >> 30 & 0x03)
}

// Size of the argument in bytes.
func (c Command) Size() int {
	return int(c >> 16 & 0x3fff)
}

// Type is the driver type character.
func (c Command) Type() byte {
	return byte(c >> 8)
}

// Number within the driver type.
func (c Command) Number() uint8 {
	return uint8(c)
}

func (c Command) String() string {
	var str string
	if c.Mode()&Write > 0 {
		str += " write"
	}
	if c.Mode()&Read > 0 {
		str += " read"
	}
	if c.Mode() == None && c.Size() == 0 {
		return fmt.Sprintf("ioctl 0x%04x", uintptr(c))
	}
	return fmt.Sprintf("ioctl%s (%d bytes) %q 0x%02x", str, c.Size(), c.Type(), c.Number())
}

// Encode an ioctl command.
func Encode(mode Mode, size uint16, cmd uintptr) Command {
	return Command(mode)<<30 | Command(size)<<16 | Command(cmd)
}

// Pointer encodes a command whose argument is a pointer to ref's element type.
func Pointer(mode Mode, ref any, cmd uintptr) Command {
	size := uint16(reflect.TypeOf(ref).Elem().Size())
	return Encode(mode, size, cmd)
}

// Code combines a driver type character and number into a command code.
func Code(typ byte, nr uint8) uintptr {
	return uintptr(typ)<<8 | uintptr(nr)
}
