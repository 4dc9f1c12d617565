package main

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/example/paintbox/internal/config"
)

func nrgbaAt(t *testing.T, path string, x, y int) color.NRGBA {
	t.Helper()
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func runDraw(t *testing.T, args ...string) {
	t.Helper()
	cmd, err := parseDrawCmd(args, &root{config: config.New()})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestDrawRectOnBlankCanvas(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rect.png")
	runDraw(t, "-width", "20", "-height", "16", "-brush", "1", "-color", "red", "-output", out, "rect", "2", "2", "8", "8")

	img, err := imaging.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != image.Pt(20, 16) {
		t.Fatalf("expected 20x16 canvas, got %v", got)
	}
	red := color.NRGBA{R: 0xff, A: 0xff}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if got := nrgbaAt(t, out, 2, 2); got != red {
		t.Fatalf("corner: expected red, got %v", got)
	}
	if got := nrgbaAt(t, out, 5, 5); got != white {
		t.Fatalf("interior: expected white, got %v", got)
	}
}

func TestDrawFillEditsInputInPlace(t *testing.T) {
	in := filepath.Join(t.TempDir(), "wall.png")
	src := imaging.New(10, 10, color.White)
	for y := 0; y < 10; y++ {
		src.Set(5, y, color.Black)
	}
	if err := imaging.Save(src, in); err != nil {
		t.Fatal(err)
	}

	runDraw(t, "-file", in, "-color", "#0000FF", "fill", "1", "1")

	if got := nrgbaAt(t, in, 0, 9); got != (color.NRGBA{B: 0xff, A: 0xff}) {
		t.Fatalf("left side: expected blue, got %v", got)
	}
	if got := nrgbaAt(t, in, 8, 0); got != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("right side: expected white, got %v", got)
	}
}

func TestDrawTextToPDF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "note.pdf")
	runDraw(t, "-width", "80", "-height", "40", "-output", out, "text", "2", "2", `hi\nyo`)
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected a PDF document, got %q", data[:8])
	}
}

func TestDrawPencilThroughPoints(t *testing.T) {
	out := filepath.Join(t.TempDir(), "zigzag.png")
	runDraw(t, "-width", "12", "-height", "12", "-brush", "1", "-output", out, "pencil", "0", "0", "5", "0", "5", "5")
	black := color.NRGBA{A: 0xff}
	for _, p := range []image.Point{{0, 0}, {3, 0}, {5, 0}, {5, 3}, {5, 5}} {
		if got := nrgbaAt(t, out, p.X, p.Y); got != black {
			t.Fatalf("%v: expected black, got %v", p, got)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"red", color.NRGBA{R: 0xff, A: 0xff}},
		{" Orange ", color.NRGBA{R: 0xff, G: 0x80, B: 0x40, A: 0xff}},
		{"cornflowerblue", color.NRGBA{R: 100, G: 149, B: 237, A: 0xff}},
		{"#11223344", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
	for _, bad := range []string{"", "#12", "nope"} {
		if _, err := parseColor(bad); err == nil {
			t.Fatalf("%q: expected error", bad)
		}
	}
}
