package conn

import "periph.io/x/conn/v3/gpio"

// Line layout of a Chip request: D0-D15, then DC, then WR.
const (
	chipDCLine  = Width
	chipWRLine  = Width + 1
	chipDCBit   = uint64(1) << chipDCLine
	chipWRBit   = uint64(1) << chipWRLine
	chipAllBits = chipWRBit<<1 - 1
)

// chipBits returns the line values for a word with WR low.
func chipBits(dc gpio.Level, word uint16) uint64 {
	bits := uint64(word)
	if dc == gpio.High {
		bits |= chipDCBit
	}
	return bits
}
