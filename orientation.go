package rm68120

import (
	"fmt"
	"strings"

	"tinygo.org/x/drivers"
)

// Orientation of the logical display relative to the panel. The panel is
// natively portrait.
type Orientation uint8

// Supported orientations.
const (
	Landscape        Orientation = iota // Rotated 90° clock wise
	LandscapeFlipped                    // Rotated 270° clock wise
	Portrait                            // Native scan direction
	PortraitFlipped                     // Rotated 180°
)

// Address mode (SetAddressMode) bit fields.
const (
	_                         byte = 1 << iota // D0: reserved
	_                                          // D1: reserved
	addrDisplayDataLatchOrder                  // D2: MH
	addrBGROrder                               // D3: RGB/BGR
	addrLineAddressOrder                       // D4: ML
	addrPageColumnOrder                        // D5: MV
	addrColumnAddressOrder                     // D6: MX
	addrPageAddressOrder                       // D7: MY
)

// IsLandscape reports if the display is wider than it is tall.
func (o Orientation) IsLandscape() bool {
	return o == Landscape || o == LandscapeFlipped
}

// IsPortrait reports if the display is taller than it is wide.
func (o Orientation) IsPortrait() bool {
	return !o.IsLandscape()
}

func (o Orientation) valid() bool {
	return o <= PortraitFlipped
}

// addressMode returns the row/column order and exchange bits.
func (o Orientation) addressMode() byte {
	switch o {
	case Landscape:
		return addrPageColumnOrder | addrColumnAddressOrder
	case LandscapeFlipped:
		return addrPageColumnOrder | addrPageAddressOrder
	case PortraitFlipped:
		return addrColumnAddressOrder | addrPageAddressOrder
	default:
		return 0
	}
}

// Rotation is the TinyGo drivers rotation equivalent to the orientation.
func (o Orientation) Rotation() drivers.Rotation {
	switch o {
	case Landscape:
		return drivers.Rotation90
	case LandscapeFlipped:
		return drivers.Rotation270
	case PortraitFlipped:
		return drivers.Rotation180
	default:
		return drivers.Rotation0
	}
}

// OrientationFromRotation maps a TinyGo drivers rotation to an orientation.
func OrientationFromRotation(r drivers.Rotation) Orientation {
	switch r % 4 {
	case drivers.Rotation90:
		return Landscape
	case drivers.Rotation180:
		return PortraitFlipped
	case drivers.Rotation270:
		return LandscapeFlipped
	default:
		return Portrait
	}
}

// ParseOrientation parses the orientation name, as returned by String.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "", "landscape", "90":
		return Landscape, nil
	case "landscape-flipped", "flipped-landscape", "270":
		return LandscapeFlipped, nil
	case "portrait", "0":
		return Portrait, nil
	case "portrait-flipped", "flipped-portrait", "180":
		return PortraitFlipped, nil
	default:
		return Landscape, fmt.Errorf("%w: %q", ErrOrientation, s)
	}
}

func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	case LandscapeFlipped:
		return "landscape-flipped"
	case Portrait:
		return "portrait"
	case PortraitFlipped:
		return "portrait-flipped"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}
