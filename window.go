package rm68120

import (
	"fmt"
	"image"
	"log"
)

// Window is a rectangular address window with inclusive bounds, in logical
// coordinates of the current orientation.
type Window struct {
	X0, X1 int // Start and end column
	Y0, Y1 int // Start and end row
}

// WindowFromRect converts a half-open rectangle to a window.
func WindowFromRect(r image.Rectangle) Window {
	return Window{X0: r.Min.X, X1: r.Max.X - 1, Y0: r.Min.Y, Y1: r.Max.Y - 1}
}

// Dx is the window width.
func (w Window) Dx() int {
	return w.X1 - w.X0 + 1
}

// Dy is the window height.
func (w Window) Dy() int {
	return w.Y1 - w.Y0 + 1
}

// Len is the number of pixels that fill the window exactly once.
func (w Window) Len() int {
	return w.Dx() * w.Dy()
}

// Rectangle converts the window to a half-open rectangle.
func (w Window) Rectangle() image.Rectangle {
	return image.Rect(w.X0, w.Y0, w.X1+1, w.Y1+1)
}

func (w Window) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", w.X0, w.Y0, w.X1, w.Y1)
}

// Window returns the active address window, ok is false if there is none.
func (d *Display) Window() (w Window, ok bool) {
	return d.window, d.windowValid
}

// SetWindow sets the address window that subsequent pixel writes fill, left to
// right and top to bottom. Bounds are inclusive and must lie within the display.
func (d *Display) SetWindow(x0, x1, y0, y1 int) error {
	w := Window{X0: x0, X1: x1, Y0: y0, Y1: y1}
	if x0 < 0 || x0 > x1 || x1 >= d.width {
		return fmt.Errorf("%w: columns %d-%d outside 0-%d", ErrInvalidGeometry, x0, x1, d.width-1)
	}
	if y0 < 0 || y0 > y1 || y1 >= d.height {
		return fmt.Errorf("%w: rows %d-%d outside 0-%d", ErrInvalidGeometry, y0, y1, d.height-1)
	}

	cols, pages, err := d.physical(w)
	if err != nil {
		return err
	}

	// The controller may be left with a partial window.
	d.invalidate()

	// Column window must be latched before the page window.
	if err = d.command(SetColumnAddress, cols[0], cols[1]); err != nil {
		return err
	}
	if err = d.command(SetPageAddress, pages[0], pages[1]); err != nil {
		return err
	}

	d.window = w
	d.windowValid = true
	if debug {
		log.Printf("rm68120: window %s %s -> columns %d-%d pages %d-%d", d.orientation, w, cols[0], cols[1], pages[0], pages[1])
	}
	return nil
}

// physical maps a logical window to controller column and page ranges. The
// address mode exchanges and mirrors the axes, only the panel offsets follow
// the orientation.
func (d *Display) physical(w Window) (cols, pages [2]uint16, err error) {
	colOffset, rowOffset := d.colOffset, d.rowOffset
	if d.orientation.IsLandscape() {
		colOffset, rowOffset = d.rowOffset, d.colOffset
	}
	x0, x1 := w.X0+colOffset, w.X1+colOffset
	y0, y1 := w.Y0+rowOffset, w.Y1+rowOffset
	if x0 < 0 || x1 > 0xffff {
		err = fmt.Errorf("%w: columns %d-%d with offset %d outside controller range", ErrInvalidGeometry, w.X0, w.X1, colOffset)
		return
	}
	if y0 < 0 || y1 > 0xffff {
		err = fmt.Errorf("%w: rows %d-%d with offset %d outside controller range", ErrInvalidGeometry, w.Y0, w.Y1, rowOffset)
		return
	}
	cols = [2]uint16{uint16(x0), uint16(x1)}
	pages = [2]uint16{uint16(y0), uint16(y1)}
	return
}

// WritePixels streams RGB565 pixel words into the active window. The first
// write after SetWindow starts at the window origin, later writes continue
// where the previous one stopped. The controller wraps to the window origin
// after the last pixel; pix is neither truncated nor padded.
func (d *Display) WritePixels(pix []uint16) error {
	if !d.windowValid {
		return ErrNoActiveWindow
	}
	if len(pix) == 0 {
		return nil
	}

	cmd := WriteMemoryStart
	if d.writing {
		cmd = WriteMemoryContinue
	}
	if err := d.command(cmd, pix...); err != nil {
		d.invalidate()
		return err
	}
	d.writing = true
	return nil
}

// FillRect fills the rectangle with a single RGB565 color.
func (d *Display) FillRect(r image.Rectangle, c uint16) error {
	if r.Empty() {
		return fmt.Errorf("%w: empty rectangle %s", ErrInvalidGeometry, r)
	}
	w := WindowFromRect(r)
	if err := d.SetWindow(w.X0, w.X1, w.Y0, w.Y1); err != nil {
		return err
	}
	pix := make([]uint16, w.Len())
	for i := range pix {
		pix[i] = c
	}
	return d.WritePixels(pix)
}

// Clear fills the display with black.
func (d *Display) Clear() error {
	return d.FillRect(d.Bounds(), 0x0000)
}
