package rm68120

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"tinygo.org/x/drivers"

	"github.com/BeatGlow/rm68120/pixel"
)

// Framebuffer is an RGB565 image the size of the display, flushed to the
// controller through an address window. It implements draw.Image and the
// TinyGo drivers.Displayer interface.
type Framebuffer struct {
	*pixel.CRGB16Image
	d *Display
}

// NewFramebuffer allocates a frame buffer for the display.
func NewFramebuffer(d *Display) *Framebuffer {
	return &Framebuffer{
		CRGB16Image: pixel.NewCRGB16Image(d.Width(), d.Height()),
		d:           d,
	}
}

// Resize reallocates the buffer if the display dimensions changed, for
// example after switching between landscape and portrait.
func (fb *Framebuffer) Resize() {
	if fb.Bounds() != fb.d.Bounds() {
		fb.CRGB16Image = pixel.NewCRGB16Image(fb.d.Width(), fb.d.Height())
	}
}

// Size is the buffer size in pixels.
func (fb *Framebuffer) Size() (x, y int16) {
	size := fb.Bounds().Size()
	return int16(size.X), int16(size.Y)
}

// SetPixel sets a single pixel.
func (fb *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	fb.SetRGB565(int(x), int(y), pixel.RGBATo565(c))
}

// Display flushes the buffer.
func (fb *Framebuffer) Display() error {
	return fb.Flush()
}

// Flush writes the whole buffer to the display.
func (fb *Framebuffer) Flush() error {
	return fb.FlushRect(fb.Bounds())
}

// FlushRect writes the part of the buffer inside r to the same area of the
// display.
func (fb *Framebuffer) FlushRect(r image.Rectangle) error {
	r = r.Intersect(fb.Bounds())
	if r.Empty() {
		return nil
	}
	w := WindowFromRect(r)
	if err := fb.d.SetWindow(w.X0, w.X1, w.Y0, w.Y1); err != nil {
		return err
	}
	return fb.d.WritePixels(fb.Words(r))
}

// DrawImage draws the image over the whole buffer, scaling it if the sizes
// differ.
func (fb *Framebuffer) DrawImage(img image.Image) {
	src := img.Bounds()
	if src.Size() == fb.Bounds().Size() {
		xdraw.Draw(fb, fb.Bounds(), img, src.Min, xdraw.Src)
		return
	}
	xdraw.ApproxBiLinear.Scale(fb, fb.Bounds(), img, src, xdraw.Src, nil)
}

// Interface checks.
var (
	_ drivers.Displayer = (*Framebuffer)(nil)
	_ pixel.Image       = (*Framebuffer)(nil)
)
