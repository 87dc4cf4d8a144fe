// Package draw has simple shape primitives for frame buffers.
package draw

import (
	"image"
	"image/color"
	"image/draw"
)

// Line draws a line from a to b, both end points included.
func Line(dst draw.Image, a, b image.Point, c color.Color) {
	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	e := dx + dy
	for {
		dst.Set(a.X, a.Y, c)
		if a == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			a.X += sx
		}
		if e2 <= dx {
			e += dx
			a.Y += sy
		}
	}
}

// Rectangle draws the outline of r, one pixel wide, inside r.
func Rectangle(dst draw.Image, r image.Rectangle, c color.Color) {
	r = r.Canon()
	if r.Empty() {
		return
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	Line(dst, image.Pt(x0, y0), image.Pt(x1, y0), c)
	Line(dst, image.Pt(x0, y1), image.Pt(x1, y1), c)
	Line(dst, image.Pt(x0, y0), image.Pt(x0, y1), c)
	Line(dst, image.Pt(x1, y0), image.Pt(x1, y1), c)
}

// Box fills r.
func Box(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
