// Package conn implements 16-bit write-only 8080-style parallel ports.
//
// A port latches one 16-bit word per write strobe, with the data/command (DC)
// line selecting whether the word is a command or data. Chip select, read and
// reset lines are handled by the caller.
package conn

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
)

// Port errors.
var (
	ErrPin          = errors.New("conn: GPIO pin is invalid")
	ErrNotSupported = errors.New("conn: not supported")
)

// Width is the number of data lines of a port.
const Width = 16

// Port is a write-only 16-bit parallel port.
type Port interface {
	String() string

	// Close the port.
	Close() error

	// Tx writes the words with the DC line at the given level.
	Tx(dc gpio.Level, words []uint16) error
}

func validPin(p gpio.PinOut) bool {
	return p != nil && p != gpio.INVALID
}
