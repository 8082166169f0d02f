package draw

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

func TestFillRectScales(t *testing.T) {
	c := NewScaledCanvas(120, 80, 1200, 800)
	c.Clear(black)
	c.FillRect(100, 100, 200, 100, red)

	if got := c.img.RGBAAt(15, 15); got.R != 255 || got.B != 0 {
		t.Fatalf("inside pixel = %v, want red", got)
	}
	if got := c.img.RGBAAt(31, 15); got.R != 0 {
		t.Fatalf("outside pixel = %v, want black", got)
	}
}

func TestFillRectBlends(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(blue)
	c.FillRect(0, 0, 10, 10, WithAlpha(red, 0.5))

	got := c.img.RGBAAt(5, 5)
	if got.R < 120 || got.R > 135 || got.B < 120 || got.B > 135 {
		t.Fatalf("half red over blue = %v", got)
	}
}

func TestFillCircleCoversCentreOnly(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Clear(black)
	c.FillCircle(50, 50, 20, red)

	if got := c.img.RGBAAt(50, 50); got.R != 255 {
		t.Fatalf("centre = %v, want red", got)
	}
	if got := c.img.RGBAAt(50, 80); got.R != 0 {
		t.Fatalf("outside = %v, want black", got)
	}
}

func TestStrokeCircleLeavesHole(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Clear(black)
	c.StrokeCircle(50, 50, 30, 4, red)

	if got := c.img.RGBAAt(50, 50); got.R != 0 {
		t.Fatalf("ring centre = %v, want black", got)
	}
	if got := c.img.RGBAAt(80, 50); got.R < 200 {
		t.Fatalf("ring edge = %v, want red", got)
	}
}

func TestVerticalGradient(t *testing.T) {
	c := NewCanvas(4, 100)
	c.VerticalGradient(0, 0, 4, 100, red, blue)

	top, bottom := c.img.RGBAAt(1, 0), c.img.RGBAAt(1, 99)
	if top.R <= top.B || bottom.B <= bottom.R {
		t.Fatalf("gradient top %v bottom %v", top, bottom)
	}
}

func TestCompositeDrawsLabels(t *testing.T) {
	c := NewScaledCanvas(240, 160, 1200, 800)
	c.Clear(black)
	c.Text(20, 60, 40, "KILLS: 3", red)

	img := c.Composite()
	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 80; x++ {
			if img.RGBAAt(x, y).R > 128 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("label not drawn on the composite")
	}
	if c.img.RGBAAt(5, 10).R != 0 {
		t.Fatal("label leaked into the raster")
	}

	c.BeginFrame()
	if len(c.Labels()) != 0 {
		t.Fatal("BeginFrame kept the labels")
	}
}

func TestTerminalToLogicalRoundTrip(t *testing.T) {
	c := NewScaledCanvas(120, 80, 1200, 800)
	c.SetOffset(5, 2)

	x, y := c.TerminalToLogical(6, 3)
	if x != 5 || y != 10 {
		t.Fatalf("first cell centre = (%v, %v), want (5, 10)", x, y)
	}
	x, y = c.TerminalToLogical(65, 23)
	if x != 595 || y != 410 {
		t.Fatalf("middle cell centre = (%v, %v), want (595, 410)", x, y)
	}
}

func TestRenderProfiles(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(red)
	c.Text(0, 2, 2, "HI", blue)

	var color256 bytes.Buffer
	c.Render(&color256, termenv.ANSI256)
	out := color256.String()
	if strings.Count(out, string(BlockUpperHalf)) != 8 {
		t.Fatalf("want 8 half blocks in %q", out)
	}
	if !strings.Contains(out, "HI") {
		t.Fatal("label missing from terminal output")
	}

	var ascii bytes.Buffer
	c.Render(&ascii, termenv.Ascii)
	if strings.ContainsRune(ascii.String(), BlockUpperHalf) {
		t.Fatal("ascii profile used half blocks")
	}
}

func TestChunkWriterSplitsFrames(t *testing.T) {
	var sizes []int
	var all bytes.Buffer
	w := writerFunc(func(p []byte) (int, error) {
		sizes = append(sizes, len(p))
		return all.Write(p)
	})

	cw := NewChunkWriter(w)
	frame := strings.Repeat("x", 3*maxChunkSize+10)
	cw.Write([]byte(frame))
	cw.WriteAt(3, 4, "ok", true)
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if len(sizes) != 4 {
		t.Fatalf("writes = %v, want 4 chunks", sizes)
	}
	for _, n := range sizes {
		if n > maxChunkSize {
			t.Fatalf("chunk of %d bytes exceeds %d", n, maxChunkSize)
		}
	}
	if want := frame + "\033[4;3H\033[2Kok"; all.String() != want {
		t.Fatalf("output tail = %q", all.String()[len(frame):])
	}

	if err := cw.Flush(); err != nil || len(sizes) != 4 {
		t.Fatal("empty flush wrote something")
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

func TestHexAndHSLA(t *testing.T) {
	if got := Hex("#ff0000"); got != red {
		t.Fatalf("Hex = %v", got)
	}
	if got := Hex("nope"); got != black {
		t.Fatalf("bad hex = %v, want opaque black", got)
	}
	if a, b := HSLA(-120, 1, 0.5, 1), HSLA(240, 1, 0.5, 1); a != b {
		t.Fatalf("hue did not wrap: %v vs %v", a, b)
	}
}
