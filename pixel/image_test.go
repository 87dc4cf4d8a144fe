package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestCRGB16Image(t *testing.T) {
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(80, 48),
		image.Pt(48, 80),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := NewCRGB16Image(test.X, test.Y)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}
			if v := i.ColorModel(); v != CRGB16Model {
				it.Errorf("expected color model %T, got %T", CRGB16Model, v)
			}
			if len(i.Pix) != test.X*test.Y {
				it.Errorf("expected %d words, got %d", test.X*test.Y, len(i.Pix))
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 || x >= test.X || y >= test.Y {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				for j, v := range i.Pix {
					if v != 0 {
						itt.Fatalf("word %d is %#04x, expected black", j, v)
					}
				}
			})
		})
	}
}

func TestCRGB16ImageWords(t *testing.T) {
	i := NewCRGB16Image(4, 3)
	for j := range i.Pix {
		i.Pix[j] = uint16(j)
	}

	t.Run("full", func(t *testing.T) {
		words := i.Words(i.Bounds())
		if len(words) != 12 {
			t.Fatalf("expected 12 words, got %d", len(words))
		}
		if &words[0] != &i.Pix[0] {
			t.Error("expected full rows to share storage")
		}
	})

	t.Run("rows", func(t *testing.T) {
		words := i.Words(image.Rect(0, 1, 4, 3))
		want := []uint16{4, 5, 6, 7, 8, 9, 10, 11}
		testWords(t, words, want)
	})

	t.Run("sub-rectangle", func(t *testing.T) {
		words := i.Words(image.Rect(1, 1, 3, 3))
		want := []uint16{5, 6, 9, 10}
		testWords(t, words, want)
	})

	t.Run("clipped", func(t *testing.T) {
		words := i.Words(image.Rect(2, -5, 10, 1))
		want := []uint16{2, 3}
		testWords(t, words, want)
	})

	t.Run("outside", func(t *testing.T) {
		if words := i.Words(image.Rect(10, 10, 20, 20)); words != nil {
			t.Errorf("expected no words, got %v", words)
		}
	})
}

func testWords(t *testing.T, got, want []uint16) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d words, got %d", len(want), len(got))
	}
	for j := range want {
		if got[j] != want[j] {
			t.Errorf("word %d: expected %d, got %d", j, want[j], got[j])
		}
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
