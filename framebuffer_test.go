package rm68120

import (
	"image"
	"image/color"
	"reflect"
	"testing"
)

func TestFramebuffer(t *testing.T) {
	d, c, _ := newTestDisplay(&Config{Width: 8, Height: 4})
	fb := NewFramebuffer(d)

	if x, y := fb.Size(); x != 8 || y != 4 {
		t.Fatalf("expected size 8x4, got %dx%d", x, y)
	}

	fb.SetPixel(1, 2, color.RGBA{R: 0xff, A: 0xff})
	if v := fb.Pix[fb.PixOffset(1, 2)]; v != 0xf800 {
		t.Errorf("expected 0xf800, got %#04x", v)
	}

	t.Run("flush", func(t *testing.T) {
		c.reset()
		if err := fb.Display(); err != nil {
			t.Fatal(err)
		}
		if len(c.tx) != 6 {
			t.Fatalf("expected 6 transactions, got %d", len(c.tx))
		}
		if want := []uint16{0, 7}; !reflect.DeepEqual(c.tx[1].words, want) {
			t.Errorf("expected columns %v, got %v", want, c.tx[1].words)
		}
		if want := []uint16{0, 3}; !reflect.DeepEqual(c.tx[3].words, want) {
			t.Errorf("expected pages %v, got %v", want, c.tx[3].words)
		}
		if c.tx[4].words[0] != WriteMemoryStart.Code() {
			t.Errorf("expected WriteMemoryStart, got %#04x", c.tx[4].words[0])
		}
		if !reflect.DeepEqual(c.tx[5].words, fb.Pix) {
			t.Errorf("expected frame buffer pixels, got %v", c.tx[5].words)
		}
	})

	t.Run("flush rect", func(t *testing.T) {
		c.reset()
		if err := fb.FlushRect(image.Rect(1, 2, 3, 10)); err != nil {
			t.Fatal(err)
		}
		if want := []uint16{1, 2}; !reflect.DeepEqual(c.tx[1].words, want) {
			t.Errorf("expected columns %v, got %v", want, c.tx[1].words)
		}
		if want := []uint16{2, 3}; !reflect.DeepEqual(c.tx[3].words, want) {
			t.Errorf("expected pages %v, got %v", want, c.tx[3].words)
		}
		if want := []uint16{0xf800, 0, 0, 0}; !reflect.DeepEqual(c.tx[5].words, want) {
			t.Errorf("expected pixels %v, got %v", want, c.tx[5].words)
		}

		c.reset()
		if err := fb.FlushRect(image.Rect(10, 10, 20, 20)); err != nil {
			t.Fatal(err)
		}
		if len(c.tx) != 0 {
			t.Errorf("expected no transactions, got %v", c.tx)
		}
	})

	t.Run("draw image", func(t *testing.T) {
		src := image.NewUniform(color.RGBA{B: 0xff, A: 0xff})
		img := image.NewRGBA(image.Rect(0, 0, 8, 4))
		for i := range img.Pix {
			img.Pix[i] = 0xff
		}
		fb.DrawImage(img)
		for i, v := range fb.Pix {
			if v != 0xffff {
				t.Fatalf("pixel %d: expected 0xffff, got %#04x", i, v)
			}
		}

		scaled := image.NewRGBA(image.Rect(0, 0, 2, 2))
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				scaled.Set(x, y, src.C)
			}
		}
		fb.DrawImage(scaled)
		for i, v := range fb.Pix {
			if v != 0x001f {
				t.Fatalf("pixel %d: expected 0x001f, got %#04x", i, v)
			}
		}
	})

	t.Run("resize", func(t *testing.T) {
		if err := d.SetOrientation(Portrait); err != nil {
			t.Fatal(err)
		}
		fb.Resize()
		if want := image.Rect(0, 0, 4, 8); fb.Bounds() != want {
			t.Errorf("expected bounds %s, got %s", want, fb.Bounds())
		}
	})
}
