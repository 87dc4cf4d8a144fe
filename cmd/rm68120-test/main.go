package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/BeatGlow/rm68120"
	"github.com/BeatGlow/rm68120/conn"
	"github.com/BeatGlow/rm68120/draw"
)

func main() {
	widthFlag := flag.Int("width", 0, "Display width")
	heightFlag := flag.Int("height", 0, "Display height")
	orientationFlag := flag.String("orientation", "landscape", "Display orientation")
	bgrFlag := flag.Bool("bgr", false, "Panel uses BGR subpixel order")
	colOffsetFlag := flag.Int("col-offset", 0, "Panel column offset")
	rowOffsetFlag := flag.Int("row-offset", 0, "Panel row offset")
	dataFlag := flag.String("data", strings.Join(rm68120.DefaultDataPins[:], ","), "Data GPIO pins D0-D15 (or line offsets with gpiochip)")
	wrFlag := flag.String("wr", rm68120.DefaultWRPin, "Write strobe GPIO pin (or line offset with gpiochip)")
	dcFlag := flag.String("dc", rm68120.DefaultDCPin, "Data/Command GPIO pin (or line offset with gpiochip)")
	csFlag := flag.String("cs", rm68120.DefaultCSPin, "Chip select GPIO pin")
	rdFlag := flag.String("rd", rm68120.DefaultRDPin, "Read strobe GPIO pin")
	resetFlag := flag.String("reset", rm68120.DefaultResetPin, "Reset GPIO pin")
	blFlag := flag.String("bl", rm68120.DefaultBacklightPin, "Backlight GPIO pin")
	chipFlag := flag.String("chip", "/dev/gpiochip0", "GPIO character device (gpiochip bus)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s <gpio|gpiochip>\n", os.Args[0])
		os.Exit(1)
	}

	orientation, err := rm68120.ParseOrientation(*orientationFlag)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using orientation: %s\n", orientation)

	if _, err = host.Init(); err != nil {
		fatal(err)
	}

	dataPins := strings.Split(*dataFlag, ",")
	if len(dataPins) != conn.Width {
		fatal(fmt.Errorf("expected %d data pins, got %d", conn.Width, len(dataPins)))
	}

	var c *rm68120.ParallelConn
	switch busType := flag.Arg(0); busType {
	case "gpio":
		config := &rm68120.ParallelConfig{
			WR:        gpioreg.ByName(*wrFlag),
			DC:        gpioreg.ByName(*dcFlag),
			CS:        gpioreg.ByName(*csFlag),
			RD:        gpioreg.ByName(*rdFlag),
			Reset:     gpioreg.ByName(*resetFlag),
			Backlight: gpioreg.ByName(*blFlag),
		}
		for i, name := range dataPins {
			config.Data[i] = gpioreg.ByName(strings.TrimSpace(name))
		}
		c, err = rm68120.OpenParallel(config)
	case "gpiochip":
		config := &rm68120.ParallelChipConfig{
			Chip:      *chipFlag,
			CS:        gpioreg.ByName(*csFlag),
			RD:        gpioreg.ByName(*rdFlag),
			Reset:     gpioreg.ByName(*resetFlag),
			Backlight: gpioreg.ByName(*blFlag),
		}
		for i, name := range dataPins {
			if config.Data[i], err = lineOffset(name); err != nil {
				fatal(err)
			}
		}
		if config.WR, err = lineOffset(*wrFlag); err != nil {
			fatal(err)
		}
		if config.DC, err = lineOffset(*dcFlag); err != nil {
			fatal(err)
		}
		c, err = rm68120.OpenParallelChip(config)
	default:
		err = fmt.Errorf("unsupported bus type %q", busType)
	}
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using connection: %s\n", c)

	output := rm68120.New(c, rm68120.SystemDelay, &rm68120.Config{
		Width:        *widthFlag,
		Height:       *heightFlag,
		Orientation:  orientation,
		BGR:          *bgrFlag,
		ColumnOffset: *colOffsetFlag,
		RowOffset:    *rowOffsetFlag,
	})
	defer output.Close()

	if err = output.Init(); err != nil {
		fatal(err)
	}
	if err = c.SetBacklight(0xff); err != nil && !errors.Is(err, rm68120.ErrBacklightPin) {
		fatal(err)
	}
	fmt.Printf("using driver: %s\n", output)

	fb := rm68120.NewFramebuffer(output)
	title, err := newTitle(fb, 48)
	if err != nil {
		fatal(err)
	}

	var (
		offset int
		frames int
		start  = time.Now()
		ticker = time.NewTicker(50 * time.Millisecond)
		r      = fb.Bounds()
		stop   = make(chan os.Signal, 1)
	)
	defer ticker.Stop()
	signal.Notify(stop, os.Interrupt)

	fmt.Println("hit control-c to stop...")
	for {
		// Draw gradient
		for y := 0; y < r.Max.Y; y++ {
			for x := 0; x < r.Max.X; x++ {
				fb.Set(x, y, color.RGBA{
					R: uint8(x + y + offset),
					G: uint8(x - y + offset),
					B: uint8(x + y - offset),
					A: 0xff,
				})
			}
		}

		draw.Rectangle(fb, r, color.White)
		draw.Box(fb, image.Rect(1, r.Max.Y-20, r.Max.X-1, r.Max.Y-1), color.Black)

		if _, err = title.DrawString("RM68120", freetype.Pt(16, 16+48)); err != nil {
			fatal(err)
		}

		var fps float64
		if elapsed := time.Since(start).Seconds(); elapsed > 0 {
			fps = float64(frames) / elapsed
		}
		status := fmt.Sprintf("%s frame %d %.1f fps", output, frames, fps)
		tinyfont.WriteLine(fb, &proggy.TinySZ8pt7b, 8, int16(r.Max.Y-8), status, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

		if err = fb.Flush(); err != nil {
			fatal(err)
		}

		offset++
		frames++
		select {
		case <-ticker.C:
		case <-stop:
			fmt.Println("stopping...")
			return
		}
	}
}

// newTitle prepares a freetype context drawing white Go Regular text.
func newTitle(dst *rm68120.Framebuffer, size float64) (*freetype.Context, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, err
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.White)
	return ctx, nil
}

func lineOffset(s string) (int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "GPIO")
	offset, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid line offset %q", s)
	}
	return offset, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
