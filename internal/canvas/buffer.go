// Package canvas implements the editor's pixel buffer together with the
// raster operations that run directly on it: pen strokes, shape outlines,
// flood fill and whole-image transforms.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/disintegration/imaging"

	"github.com/example/paintbox/internal/export"
)

// White is the backfill color for new canvases and grown areas.
var White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Buffer is an owned, mutable 8-bit RGBA framebuffer whose origin is
// always (0, 0). It is never smaller than 1x1.
type Buffer struct {
	img *image.NRGBA
}

// New returns a white buffer. Non-positive dimensions are raised to 1.
func New(width, height int) *Buffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Buffer{img: imaging.New(width, height, White)}
}

// FromImage copies src into a new buffer.
func FromImage(src image.Image) *Buffer {
	if src == nil || src.Bounds().Empty() {
		return New(1, 1)
	}
	return &Buffer{img: imaging.Clone(src)}
}

func (b *Buffer) Width() int  { return b.img.Rect.Dx() }
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

func (b *Buffer) Bounds() image.Rectangle { return b.img.Rect }

// Image exposes the committed pixels. Callers may draw into it with the
// raster primitives of this package but must not retain it across
// Resize, Restore or a transform, all of which swap the backing image.
func (b *Buffer) Image() *image.NRGBA { return b.img }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.img.Rect.Dx() && y < b.img.Rect.Dy()
}

// At returns the pixel at (x, y), or white outside the buffer.
func (b *Buffer) At(x, y int) color.NRGBA {
	if !b.inBounds(x, y) {
		return White
	}
	return b.img.NRGBAAt(x, y)
}

// Set writes one pixel; writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, c color.NRGBA) {
	if !b.inBounds(x, y) {
		return
	}
	b.img.SetNRGBA(x, y, c)
}

// Clear paints the whole buffer with c.
func (b *Buffer) Clear(c color.NRGBA) {
	draw.Draw(b.img, b.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Resize changes the buffer dimensions. Existing pixels keep their
// coordinates, newly exposed area is white and nothing is scaled. It
// reports whether the buffer changed; non-positive or unchanged
// dimensions are ignored.
func (b *Buffer) Resize(width, height int) bool {
	if width < 1 || height < 1 {
		return false
	}
	if width == b.Width() && height == b.Height() {
		return false
	}
	b.img = imaging.Paste(imaging.New(width, height, White), b.img, image.Point{})
	return true
}

// Snapshot returns an independent copy of the current pixels.
func (b *Buffer) Snapshot() *image.NRGBA {
	return imaging.Clone(b.img)
}

// Restore replaces the buffer contents, dimensions included, with snap.
// A nil snapshot is ignored.
func (b *Buffer) Restore(snap *image.NRGBA) {
	if snap == nil {
		return
	}
	if snap.Rect.Dx() == b.Width() && snap.Rect.Dy() == b.Height() && snap.Stride == b.img.Stride && snap.Rect.Min == (image.Point{}) {
		copy(b.img.Pix, snap.Pix)
		return
	}
	b.img = imaging.Clone(snap)
}

// Encode writes the buffer in the given raster format.
func (b *Buffer) Encode(w io.Writer, format export.Format) error {
	return export.Encode(w, b.img, format)
}

func (b *Buffer) swap(img *image.NRGBA) {
	b.img = img
}
