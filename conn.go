package rm68120

import (
	"errors"
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/rm68120/conn"
)

// Conn errors.
var (
	ErrResetPin     = errors.New("rm68120: reset GPIO pin is invalid")
	ErrBacklightPin = errors.New("rm68120: backlight GPIO pin is invalid")
)

// Conn is the connection interface for communicating with the controller.
type Conn interface {
	// Command sends one command word with the DC line selecting command.
	Command(uint16) error

	// Data sends data words with the DC line selecting data.
	Data(...uint16) error
}

// Resetter is implemented by connections that control the reset line.
type Resetter interface {
	// Reset sets the reset pin to the provided level.
	Reset(gpio.Level) error
}

// Delayer blocks for controller settle times.
type Delayer interface {
	Delay(time.Duration)
}

// DelayFunc adapts a function to a Delayer.
type DelayFunc func(time.Duration)

func (f DelayFunc) Delay(d time.Duration) {
	f(d)
}

// SystemDelay sleeps.
var SystemDelay Delayer = DelayFunc(time.Sleep)

// ParallelConfig describes a 16-bit 8080 parallel bus on GPIO pins.
type ParallelConfig struct {
	// Data lines, Data[0] is D0.
	Data [conn.Width]gpio.PinOut

	// WR is the write strobe.
	WR gpio.PinOut

	// DC is the data/command select (RS) line.
	DC gpio.PinOut

	// CS is the chip select, optional.
	CS gpio.PinOut

	// RD is the read strobe, optional, held high.
	RD gpio.PinOut

	// Reset pin, optional.
	Reset gpio.PinOut

	// Backlight pin, optional.
	Backlight gpio.PinOut
}

// ParallelChipConfig describes a 16-bit 8080 parallel bus on the lines of a
// Linux GPIO character device. Control pins other than WR and DC are GPIO pins.
type ParallelChipConfig struct {
	// Chip device, typically /dev/gpiochip0.
	Chip string

	// Data line offsets, Data[0] is D0.
	Data [conn.Width]int

	// WR and DC line offsets.
	WR, DC int

	CS        gpio.PinOut
	RD        gpio.PinOut
	Reset     gpio.PinOut
	Backlight gpio.PinOut
}

// Default pin names, Raspberry Pi header numbering.
var (
	DefaultDataPins = [conn.Width]string{
		"GPIO4", "GPIO5", "GPIO6", "GPIO7", "GPIO8", "GPIO9", "GPIO10", "GPIO11",
		"GPIO12", "GPIO13", "GPIO14", "GPIO15", "GPIO16", "GPIO17", "GPIO18", "GPIO19",
	}
	DefaultWRPin        = "GPIO20"
	DefaultRDPin        = "GPIO21"
	DefaultCSPin        = "GPIO22"
	DefaultDCPin        = "GPIO24"
	DefaultResetPin     = "GPIO25"
	DefaultBacklightPin = "GPIO26"
)

// DefaultParallelConfig looks up the default pins. The host drivers must be
// initialized first.
func DefaultParallelConfig() *ParallelConfig {
	config := &ParallelConfig{
		WR:        gpioreg.ByName(DefaultWRPin),
		DC:        gpioreg.ByName(DefaultDCPin),
		CS:        gpioreg.ByName(DefaultCSPin),
		RD:        gpioreg.ByName(DefaultRDPin),
		Reset:     gpioreg.ByName(DefaultResetPin),
		Backlight: gpioreg.ByName(DefaultBacklightPin),
	}
	for i, name := range DefaultDataPins {
		config.Data[i] = gpioreg.ByName(name)
	}
	return config
}

// ParallelConn is a Conn on a parallel port with optional chip select,
// reset and backlight pins.
type ParallelConn struct {
	port      conn.Port
	cs        gpio.PinOut
	rd        gpio.PinOut
	reset     gpio.PinOut
	backlight gpio.PinOut
}

// OpenParallel opens a parallel bus on GPIO pins.
func OpenParallel(config *ParallelConfig) (*ParallelConn, error) {
	if config == nil {
		config = DefaultParallelConfig()
	}

	port, err := conn.NewGPIO16(config.Data, config.WR, config.DC)
	if err != nil {
		return nil, err
	}
	return NewParallelConn(port, config.CS, config.RD, config.Reset, config.Backlight)
}

// OpenParallelChip opens a parallel bus on GPIO character device lines.
func OpenParallelChip(config *ParallelChipConfig) (*ParallelConn, error) {
	if config == nil {
		return nil, errors.New("rm68120: missing GPIO chip configuration")
	}

	port, err := conn.OpenChip(config.Chip, config.Data, config.WR, config.DC)
	if err != nil {
		return nil, err
	}
	c, err := NewParallelConn(port, config.CS, config.RD, config.Reset, config.Backlight)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	return c, nil
}

// NewParallelConn wraps a parallel port. The control pins may be nil.
func NewParallelConn(port conn.Port, cs, rd, reset, backlight gpio.PinOut) (*ParallelConn, error) {
	if port == nil {
		return nil, errors.New("rm68120: missing parallel port")
	}

	c := &ParallelConn{
		port:      port,
		cs:        pinOut(cs),
		rd:        pinOut(rd),
		reset:     pinOut(reset),
		backlight: pinOut(backlight),
	}
	if c.rd != nil {
		if err := c.rd.Out(gpio.High); err != nil {
			return nil, err
		}
	}
	if c.cs != nil {
		if err := c.cs.Out(gpio.High); err != nil {
			return nil, err
		}
	}
	if c.backlight == nil {
		log.Println("rm68120: no backlight control")
	}
	return c, nil
}

func pinOut(p gpio.PinOut) gpio.PinOut {
	if p == nil || p == gpio.INVALID {
		return nil
	}
	return p
}

func (c *ParallelConn) String() string {
	return fmt.Sprintf("parallel bus %s", c.port)
}

// Close deselects the controller and closes the port.
func (c *ParallelConn) Close() error {
	if err := c.updateCS(gpio.High); err != nil {
		_ = c.port.Close()
		return err
	}
	return c.port.Close()
}

func (c *ParallelConn) Reset(level gpio.Level) error {
	if c.reset == nil {
		return ErrResetPin
	}
	return c.reset.Out(level)
}

// SetBacklight sets the backlight level, 0 is off and 0xff is fully on.
// Intermediate levels need a pin with PWM support.
func (c *ParallelConn) SetBacklight(level uint8) error {
	if c.backlight == nil {
		return ErrBacklightPin
	}
	switch level {
	case 0x00:
		return c.backlight.Out(gpio.Low)
	case 0xff:
		return c.backlight.Out(gpio.High)
	}
	const (
		step = gpio.DutyMax / 0xff
		rate = 2 * physic.KiloHertz
	)
	if debug {
		log.Printf("rm68120: backlight duty cycle to %s at %s", step*gpio.Duty(level), rate)
	}
	return c.backlight.PWM(step*gpio.Duty(level), rate)
}

func (c *ParallelConn) updateCS(level gpio.Level) error {
	if c.cs == nil {
		return nil
	}
	return c.cs.Out(level)
}

func (c *ParallelConn) Command(cmnd uint16) error {
	return c.tx(gpio.Low, []uint16{cmnd})
}

func (c *ParallelConn) Data(data ...uint16) error {
	if len(data) == 0 {
		return nil
	}
	return c.tx(gpio.High, data)
}

func (c *ParallelConn) tx(dc gpio.Level, words []uint16) (err error) {
	if debug {
		if dc == gpio.Low {
			log.Printf("rm68120: command %#04x", words[0])
		} else {
			log.Printf("rm68120: data %d words", len(words))
		}
	}
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	if err = c.port.Tx(dc, words); err != nil {
		_ = c.updateCS(gpio.High)
		return
	}
	return c.updateCS(gpio.High)
}
