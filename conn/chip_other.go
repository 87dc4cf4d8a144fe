//go:build !linux

package conn

import "periph.io/x/conn/v3/gpio"

// Chip is a parallel port on the lines of a Linux GPIO character device.
type Chip struct{}

// OpenChip is only supported on Linux.
func OpenChip(_ string, _ [Width]int, _, _ int) (*Chip, error) {
	return nil, ErrNotSupported
}

func (c *Chip) String() string { return "GPIO chip" }

func (c *Chip) Close() error { return nil }

func (c *Chip) Tx(_ gpio.Level, _ []uint16) error { return ErrNotSupported }
