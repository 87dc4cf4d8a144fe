// Package rm68120 drives RM68120 TFT display controllers over a 16-bit 8080
// parallel bus.
//
// A Display translates display level operations into the controller's
// command/data protocol. Every command is one 16-bit word sent with the
// data/command line low, followed by zero or more 16-bit parameter or pixel
// words sent with the line high. Pixel data lands in the address window that
// was last set with SetWindow.
package rm68120

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"time"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

// Errors
var (
	ErrInvalidGeometry = errors.New("rm68120: invalid geometry")
	ErrNoActiveWindow  = errors.New("rm68120: no active address window")
	ErrOrientation     = errors.New("rm68120: invalid orientation")
)

// TransportError is returned when the connection fails to send a command or
// its data. The state of the controller is unknown after a transport error.
type TransportError struct {
	// Op is the failed transaction: "command", "data" or "reset".
	Op string

	// Command that was being sent.
	Command Command

	// Err is the connection error.
	Err error
}

func (e *TransportError) Error() string {
	if e.Op == "reset" {
		return fmt.Sprintf("rm68120: reset failed: %v", e.Err)
	}
	return fmt.Sprintf("rm68120: %s %s failed: %v", e.Op, e.Command, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Default dimensions in landscape orientation.
const (
	DefaultWidth  = 800
	DefaultHeight = 480
)

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels, in the configured orientation.
	Width int

	// Height of the display in pixels, in the configured orientation.
	Height int

	// Orientation of the display.
	Orientation Orientation

	// BGR selects blue-green-red subpixel order.
	BGR bool

	// ColumnOffset and RowOffset are the panel offsets into controller RAM,
	// in the native portrait orientation.
	ColumnOffset int
	RowOffset    int
}

// DefaultConfig is a 800x480 landscape panel.
var DefaultConfig = Config{
	Width:       DefaultWidth,
	Height:      DefaultHeight,
	Orientation: Landscape,
}

// Display is a RM68120 display session. It is not safe for concurrent use.
type Display struct {
	c           Conn
	delay       Delayer
	width       int
	height      int
	orientation Orientation
	bgr         bool
	colOffset   int
	rowOffset   int

	// Address window latched in the controller.
	window      Window
	windowValid bool
	writing     bool
}

// New returns a display on an initialized connection. No commands are sent;
// call Init to bring up the panel. A nil delay sleeps, a nil config uses
// DefaultConfig.
func New(c Conn, delay Delayer, config *Config) *Display {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}
	if delay == nil {
		delay = SystemDelay
	}

	orientation := config.Orientation
	if !orientation.valid() {
		orientation = DefaultConfig.Orientation
	}

	width, height := config.Width, config.Height
	if width <= 0 {
		width = DefaultWidth
		if orientation.IsPortrait() {
			width = DefaultHeight
		}
	}
	if height <= 0 {
		height = DefaultHeight
		if orientation.IsPortrait() {
			height = DefaultWidth
		}
	}

	return &Display{
		c:           c,
		delay:       delay,
		width:       width,
		height:      height,
		orientation: orientation,
		bgr:         config.BGR,
		colOffset:   config.ColumnOffset,
		rowOffset:   config.RowOffset,
	}
}

func (d *Display) String() string {
	return fmt.Sprintf("RM68120 %dx%d %s", d.width, d.height, d.orientation)
}

// Width of the display in the current orientation.
func (d *Display) Width() int {
	return d.width
}

// Height of the display in the current orientation.
func (d *Display) Height() int {
	return d.height
}

// Orientation is the current orientation.
func (d *Display) Orientation() Orientation {
	return d.orientation
}

// Bounds is the display bounding box.
func (d *Display) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Close turns the display off and closes the connection if it can be closed.
func (d *Display) Close() error {
	err := d.PowerOff()
	if c, ok := d.c.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// instruction is a command with its parameters and the settle time after it.
type instruction struct {
	cmd    Command
	params []uint16
	delay  time.Duration
}

func (d *Display) command(cmd Command, params ...uint16) error {
	if debug {
		log.Printf("rm68120: %s with %d parameters", cmd, len(params))
	}
	if err := d.c.Command(cmd.Code()); err != nil {
		return &TransportError{Op: "command", Command: cmd, Err: err}
	}
	if len(params) == 0 {
		return nil
	}
	if err := d.c.Data(params...); err != nil {
		return &TransportError{Op: "data", Command: cmd, Err: err}
	}
	return nil
}

func (d *Display) commands(instructions []instruction) (err error) {
	for _, in := range instructions {
		if err = d.command(in.cmd, in.params...); err != nil {
			return
		}
		if in.delay > 0 {
			d.delay.Delay(in.delay)
		}
	}
	return
}

// invalidate forgets the latched address window.
func (d *Display) invalidate() {
	d.windowValid = false
	d.writing = false
}
