package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/example/paintbox/internal/mathutil"
)

// setPixel writes c at (x, y) when the point lies inside dst.
func setPixel(dst *image.NRGBA, x, y int, c color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(dst.Rect) {
		return
	}
	dst.SetNRGBA(x, y, c)
}

// Stamp paints a round pen tip exactly width pixels across at (x, y).
// Even widths extend one pixel further up and left than down and right.
func Stamp(dst *image.NRGBA, x, y int, c color.NRGBA, width int) {
	if width <= 1 {
		setPixel(dst, x, y, c)
		return
	}
	lo := -width / 2
	hi := lo + width - 1
	// Distances are doubled so the disc centre, which sits between
	// pixels for even widths, stays an integer.
	centre := lo + hi
	r2 := width * width
	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			ex, ey := 2*dx-centre, 2*dy-centre
			if ex*ex+ey*ey <= r2 {
				setPixel(dst, x+dx, y+dy, c)
			}
		}
	}
}

// StrokeLine draws a Bresenham line from p0 to p1 with a round pen. With
// width 1 exactly the Bresenham pixels are touched; p0 == p1 paints a dot.
func StrokeLine(dst *image.NRGBA, p0, p1 image.Point, c color.NRGBA, width int) {
	x0, y0, x1, y1 := p0.X, p0.Y, p1.X, p1.Y
	dx := mathutil.Abs(x1 - x0)
	dy := -mathutil.Abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		Stamp(dst, x0, y0, c, width)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// StrokeRect outlines the rectangle spanned by the corners p0 and p1,
// both inclusive, in either order.
func StrokeRect(dst *image.NRGBA, p0, p1 image.Point, c color.NRGBA, width int) {
	tr := image.Pt(p1.X, p0.Y)
	bl := image.Pt(p0.X, p1.Y)
	StrokeLine(dst, p0, tr, c, width)
	StrokeLine(dst, tr, p1, c, width)
	StrokeLine(dst, p1, bl, c, width)
	StrokeLine(dst, bl, p0, c, width)
}

// StrokeEllipse outlines the axis-aligned ellipse with the given centre
// and radii by joining points sampled along its perimeter.
func StrokeEllipse(dst *image.NRGBA, cx, cy, rx, ry float64, c color.NRGBA, width int) {
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx < 0.5 && ry < 0.5 {
		Stamp(dst, int(math.Floor(cx)), int(math.Floor(cy)), c, width)
		return
	}
	steps := mathutil.Max(int(math.Ceil(2*math.Pi*math.Max(rx, ry))), 16)
	point := func(i int) image.Point {
		t := 2 * math.Pi * float64(i) / float64(steps)
		return image.Pt(
			int(math.Round(cx+rx*math.Cos(t))),
			int(math.Round(cy+ry*math.Sin(t))),
		)
	}
	prev := point(0)
	for i := 1; i <= steps; i++ {
		p := point(i)
		StrokeLine(dst, prev, p, c, width)
		prev = p
	}
}

// StrokeLine draws into the buffer; see the package-level StrokeLine.
func (b *Buffer) StrokeLine(p0, p1 image.Point, c color.NRGBA, width int) {
	StrokeLine(b.img, p0, p1, c, width)
}

func (b *Buffer) StrokeRect(p0, p1 image.Point, c color.NRGBA, width int) {
	StrokeRect(b.img, p0, p1, c, width)
}

func (b *Buffer) StrokeEllipse(cx, cy, rx, ry float64, c color.NRGBA, width int) {
	StrokeEllipse(b.img, cx, cy, rx, ry, c, width)
}
