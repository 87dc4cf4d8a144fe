package conn

import (
	"fmt"
	"os"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/rm68120/internal/ioctl"
)

// Definitions from <uapi/linux/gpio.h>
const (
	gpioV2LinesMax           = 64
	gpioMaxNameSize          = 32
	gpioV2LineNumAttrsMax    = 10
	gpioV2LineFlagOutput     = 1 << 3
	gpioV2LineAttrIDValues   = 2
	gpioV2GetLineIOCTL       = 0xb407
	gpioV2LineSetValuesIOCTL = 0xb40f
)

type gpioV2LineAttribute struct {
	ID      uint32
	Padding uint32
	Value   uint64
}

type gpioV2LineConfigAttribute struct {
	Attr gpioV2LineAttribute
	Mask uint64
}

type gpioV2LineConfig struct {
	Flags    uint64
	NumAttrs uint32
	Padding  [5]uint32
	Attrs    [gpioV2LineNumAttrsMax]gpioV2LineConfigAttribute
}

type gpioV2LineRequest struct {
	Offsets         [gpioV2LinesMax]uint32
	Consumer        [gpioMaxNameSize]byte
	Config          gpioV2LineConfig
	NumLines        uint32
	EventBufferSize uint32
	Padding         [5]uint32
	Fd              int32
}

type gpioV2LineValues struct {
	Bits uint64
	Mask uint64
}

// Chip is a parallel port on the lines of a Linux GPIO character device.
//
// All data lines and DC are set with a single ioctl per word, WR is toggled
// with a second one.
type Chip struct {
	name  string
	line  *os.File
	fd    uintptr
	value gpioV2LineValues
	set   ioctl.Command
}

// OpenChip requests the lines from the GPIO character device, typically
// /dev/gpiochip[0..x]. data[0] is the line offset of D0.
func OpenChip(name string, data [Width]int, wr, dc int) (*Chip, error) {
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var req gpioV2LineRequest
	for i, offset := range data {
		req.Offsets[i] = uint32(offset)
	}
	req.Offsets[chipDCLine] = uint32(dc)
	req.Offsets[chipWRLine] = uint32(wr)
	req.NumLines = Width + 2
	copy(req.Consumer[:], "rm68120")
	req.Config.Flags = gpioV2LineFlagOutput
	req.Config.NumAttrs = 1
	req.Config.Attrs[0] = gpioV2LineConfigAttribute{
		Attr: gpioV2LineAttribute{ID: gpioV2LineAttrIDValues, Value: chipWRBit | chipDCBit},
		Mask: chipAllBits,
	}

	if err = ioctl.Do(f.Fd(), ioctl.Pointer(ioctl.ReadWrite, &req, gpioV2GetLineIOCTL), &req); err != nil {
		return nil, fmt.Errorf("conn: %s line request: %w", name, err)
	}

	c := &Chip{
		name: name,
		line: os.NewFile(uintptr(req.Fd), name+" lines"),
		fd:   uintptr(req.Fd),
	}
	c.set = ioctl.Pointer(ioctl.ReadWrite, &c.value, gpioV2LineSetValuesIOCTL)
	return c, nil
}

func (c *Chip) String() string {
	return fmt.Sprintf("GPIO chip %s", c.name)
}

func (c *Chip) Close() error {
	return c.line.Close()
}

func (c *Chip) Tx(dc gpio.Level, words []uint16) (err error) {
	for _, word := range words {
		c.value.Bits, c.value.Mask = chipBits(dc, word), chipAllBits
		if err = ioctl.Do(c.fd, c.set, &c.value); err != nil {
			return
		}
		c.value.Bits, c.value.Mask = chipWRBit, chipWRBit
		if err = ioctl.Do(c.fd, c.set, &c.value); err != nil {
			return
		}
	}
	return
}
