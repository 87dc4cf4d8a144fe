package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a draw.Image that can be cleared and filled.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// CRGB16Image is a 16-bits per pixel 5-6-5-bit RGB image.
type CRGB16Image struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels as bus words.
	Pix []uint16

	// Stride is the Pix stride (in words) between vertically adjacent pixels.
	Stride int
}

func NewCRGB16Image(w, h int) *CRGB16Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &CRGB16Image{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]uint16, w*h),
		Stride: w,
	}
}

func (p *CRGB16Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *CRGB16Image) ColorModel() color.Model {
	return CRGB16Model
}

// PixOffset is the index of the pixel at (x, y) in Pix.
func (p *CRGB16Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

func (p *CRGB16Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return CRGB16{p.Pix[p.PixOffset(x, y)]}
}

func (p *CRGB16Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, RGB565(c))
}

// SetRGB565 sets the pixel at (x, y) to a packed color.
func (p *CRGB16Image) SetRGB565(x, y int, v uint16) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = v
}

func (p *CRGB16Image) Fill(c color.Color) {
	v := RGB565(c)
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

func (p *CRGB16Image) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x0000
	}
}

// Words returns the pixels inside r in row order. The result shares storage
// with Pix when the rows of r are contiguous.
func (p *CRGB16Image) Words(r image.Rectangle) []uint16 {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return nil
	}

	i, j := p.PixOffset(r.Min.X, r.Min.Y), p.PixOffset(r.Max.X-1, r.Max.Y-1)+1
	if r.Dx() == p.Stride {
		return p.Pix[i:j:j]
	}

	words := make([]uint16, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i = p.PixOffset(r.Min.X, y)
		words = append(words, p.Pix[i:i+r.Dx()]...)
	}
	return words
}

// Interface checks.
var (
	_ Image = (*CRGB16Image)(nil)
)
