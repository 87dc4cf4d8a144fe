// Package ioctl encodes and issues Linux ioctl requests.
package ioctl

import (
	"fmt"
	"reflect"
	"syscall"
)

// Mode is the direction of the data transfer, as seen from user space.
type Mode uint8

// Modes
const (
	None  Mode = iota
	Write      // _IOC_WRITE
	Read       // _IOC_READ
)

// ReadWrite is used by _IOWR requests.
const ReadWrite = Read | Write

// Command to be sent over ioctl.
type Command uintptr

// Mode of the command.
func (c Command) Mode() Mode {
	return Mode(c >> 30 & 0x03)
}

// Size of the argument in bytes.
func (c Command) Size() int {
	return int(c >> 16 & 0x3fff)
}

func (c Command) String() string {
	var dir string
	switch c.Mode() {
	case Write:
		dir = " write"
	case Read:
		dir = " read"
	case ReadWrite:
		dir = " read/write"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) 0x%04x", dir, c.Size(), uintptr(c&0xffff))
}

// Do executes the ioctl call with a pointer argument.
func Do(fd uintptr, command Command, ptr any) error {
	var p uintptr
	if ptr != nil {
		p = reflect.ValueOf(ptr).Pointer()
	}

	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), p)
	if errno != 0 {
		return fmt.Errorf("%s failed: %w", command, errno)
	}
	return nil
}

// Encode an ioctl command, cmd holds the type in the high and the number in
// the low byte.
func Encode(mode Mode, size uint16, cmd uintptr) Command {
	return Command(mode)<<30 | Command(size&0x3fff)<<16 | Command(cmd&0xffff)
}

// Pointer encodes a command for an argument of the type ref points to.
func Pointer(mode Mode, ref any, cmd uintptr) Command {
	size := uint16(reflect.TypeOf(ref).Elem().Size())
	return Encode(mode, size, cmd)
}
