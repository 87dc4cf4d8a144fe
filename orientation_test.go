package rm68120

import (
	"errors"
	"testing"

	"tinygo.org/x/drivers"
)

func TestOrientation(t *testing.T) {
	for _, o := range []Orientation{Landscape, LandscapeFlipped, Portrait, PortraitFlipped} {
		if o.IsLandscape() == o.IsPortrait() {
			t.Errorf("%s: expected exactly one of landscape or portrait", o)
		}
		if got := OrientationFromRotation(o.Rotation()); got != o {
			t.Errorf("%s: expected rotation round trip, got %s", o, got)
		}
		parsed, err := ParseOrientation(o.String())
		if err != nil {
			t.Errorf("%s: %v", o, err)
		} else if parsed != o {
			t.Errorf("%s: expected parse round trip, got %s", o, parsed)
		}
	}
	if !Landscape.IsLandscape() || !LandscapeFlipped.IsLandscape() {
		t.Error("expected landscape orientations to be landscape")
	}
	if !Portrait.IsPortrait() || !PortraitFlipped.IsPortrait() {
		t.Error("expected portrait orientations to be portrait")
	}
	if s := Orientation(7).String(); s != "Orientation(7)" {
		t.Errorf("expected Orientation(7), got %q", s)
	}
}

func TestOrientationAddressMode(t *testing.T) {
	tests := []struct {
		Orientation Orientation
		Want        byte
	}{
		{Portrait, 0x00},
		{PortraitFlipped, 0xc0},
		{Landscape, 0x60},
		{LandscapeFlipped, 0xa0},
	}
	for _, test := range tests {
		if got := test.Orientation.addressMode(); got != test.Want {
			t.Errorf("%s: expected %#02x, got %#02x", test.Orientation, test.Want, got)
		}
	}
}

func TestOrientationFromRotation(t *testing.T) {
	tests := []struct {
		Rotation drivers.Rotation
		Want     Orientation
	}{
		{drivers.Rotation0, Portrait},
		{drivers.Rotation90, Landscape},
		{drivers.Rotation180, PortraitFlipped},
		{drivers.Rotation270, LandscapeFlipped},
		{drivers.Rotation90 + 4, Landscape},
	}
	for _, test := range tests {
		if got := OrientationFromRotation(test.Rotation); got != test.Want {
			t.Errorf("rotation %d: expected %s, got %s", test.Rotation, test.Want, got)
		}
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		Value string
		Want  Orientation
	}{
		{"", Landscape},
		{"Landscape", Landscape},
		{"90", Landscape},
		{"flipped-landscape", LandscapeFlipped},
		{"270", LandscapeFlipped},
		{"0", Portrait},
		{"PORTRAIT", Portrait},
		{"flipped-portrait", PortraitFlipped},
		{"180", PortraitFlipped},
	}
	for _, test := range tests {
		got, err := ParseOrientation(test.Value)
		if err != nil {
			t.Errorf("%q: %v", test.Value, err)
			continue
		}
		if got != test.Want {
			t.Errorf("%q: expected %s, got %s", test.Value, test.Want, got)
		}
	}

	if _, err := ParseOrientation("sideways"); !errors.Is(err, ErrOrientation) {
		t.Errorf("expected ErrOrientation for sideways, got %v", err)
	}
}
