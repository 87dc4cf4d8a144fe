package rm68120

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"tinygo.org/x/drivers"
)

// Settle times.
const (
	resetPulse    = 10 * time.Millisecond
	resetSettle   = 120 * time.Millisecond
	sleepOutDelay = 120 * time.Millisecond
	sleepInDelay  = 5 * time.Millisecond
	displayOnWait = 20 * time.Millisecond
)

// Interface pixel format: 16 bits per pixel (RGB 5-6-5-bit input) on both the
// RGB and the MCU interface.
const pixelFormat16 = 0x55

// Init resets the controller and brings the panel up in the configured
// orientation, with the display on.
func (d *Display) Init() (err error) {
	if err = d.Reset(); err != nil {
		return
	}
	return d.commands([]instruction{
		{cmd: ExitSleepMode, delay: sleepOutDelay},
		{cmd: SetPixelFormat, params: []uint16{pixelFormat16}},
		{cmd: SetAddressMode, params: []uint16{d.addressMode(d.orientation)}},
		{cmd: EnterNormalMode},
		{cmd: SetDisplayOn, delay: displayOnWait},
	})
}

// Reset the controller. The reset line is pulsed if the connection controls
// it, otherwise a software reset is issued. The address window is lost.
func (d *Display) Reset() error {
	d.invalidate()

	if r, ok := d.c.(Resetter); ok {
		err := d.hardReset(r)
		if !errors.Is(err, ErrResetPin) {
			return err
		}
	}
	return d.commands([]instruction{{cmd: SoftReset, delay: resetSettle}})
}

func (d *Display) hardReset(r Resetter) error {
	for _, step := range []struct {
		level gpio.Level
		delay time.Duration
	}{
		{gpio.High, resetPulse},
		{gpio.Low, resetPulse},
		{gpio.High, resetSettle},
	} {
		if err := r.Reset(step.level); err != nil {
			if errors.Is(err, ErrResetPin) {
				return err
			}
			return &TransportError{Op: "reset", Err: err}
		}
		d.delay.Delay(step.delay)
	}
	return nil
}

// PowerOn turns the display on.
func (d *Display) PowerOn() error {
	return d.command(SetDisplayOn)
}

// PowerOff turns the display off, the frame memory is retained.
func (d *Display) PowerOff() error {
	return d.command(SetDisplayOff)
}

// Sleep enters sleep mode.
func (d *Display) Sleep() error {
	return d.commands([]instruction{{cmd: EnterSleepMode, delay: sleepInDelay}})
}

// Wake exits sleep mode.
func (d *Display) Wake() error {
	return d.commands([]instruction{{cmd: ExitSleepMode, delay: sleepOutDelay}})
}

// SetInverted toggles color inversion.
func (d *Display) SetInverted(invert bool) error {
	if invert {
		return d.command(EnterInvertMode)
	}
	return d.command(ExitInvertMode)
}

// SetIdle toggles idle mode, with reduced colors.
func (d *Display) SetIdle(idle bool) error {
	if idle {
		return d.command(EnterIdleMode)
	}
	return d.command(ExitIdleMode)
}

// SetTearing toggles the tearing effect output line (V-blanking only).
func (d *Display) SetTearing(on bool) error {
	if on {
		return d.command(SetTearOn, 0x00)
	}
	return d.command(SetTearOff)
}

// SetBrightness sets the display brightness.
func (d *Display) SetBrightness(level uint8) error {
	return d.command(SetDisplayBrightness, uint16(level))
}

// SetOrientation changes the orientation. Width and height are exchanged when
// switching between landscape and portrait. The address window is always lost.
func (d *Display) SetOrientation(orientation Orientation) error {
	if !orientation.valid() {
		return fmt.Errorf("%w: %s", ErrOrientation, orientation)
	}

	d.invalidate()
	if err := d.command(SetAddressMode, d.addressMode(orientation)); err != nil {
		return err
	}

	if orientation.IsLandscape() != d.orientation.IsLandscape() {
		d.width, d.height = d.height, d.width
	}
	d.orientation = orientation
	return nil
}

// SetRotation sets the orientation from a TinyGo drivers rotation.
func (d *Display) SetRotation(rotation drivers.Rotation) error {
	return d.SetOrientation(OrientationFromRotation(rotation))
}

// Rotation is the current orientation as a TinyGo drivers rotation.
func (d *Display) Rotation() drivers.Rotation {
	return d.orientation.Rotation()
}

func (d *Display) addressMode(orientation Orientation) uint16 {
	mode := orientation.addressMode()
	if d.bgr {
		mode |= addrBGROrder
	}
	return uint16(mode)
}
