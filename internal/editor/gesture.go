package editor

import (
	"image"
	"image/color"
	"math"

	"github.com/example/paintbox/internal/canvas"
)

// drawColor picks the stroke color for the active tool and button.
func (e *Editor) drawColor(b Button) color.NRGBA {
	if e.tool == Eraser || b == Secondary {
		return e.bg
	}
	return e.fg
}

func (e *Editor) strokeWidth() int {
	if e.tool == Eraser {
		return e.brush * EraserScale
	}
	return e.brush
}

// Hover updates the status readout without touching the canvas.
func (e *Editor) Hover(p Point) {
	e.cursor = p.Pixel()
}

// PointerDown starts a gesture with the active tool.
func (e *Editor) PointerDown(p Point, b Button) {
	e.cursor = p.Pixel()
	switch e.tool {
	case Pencil, Eraser:
		e.beginMutation()
		e.gesture = gesture{active: true, button: b, start: p, last: p}
		e.buf.StrokeLine(p.Pixel(), p.Pixel(), e.drawColor(b), e.strokeWidth())
	case Fill:
		e.beginMutation()
		px := p.Pixel()
		n := e.buf.FloodFill(px.X, px.Y, e.drawColor(b), e.fill)
		e.log.Debug("fill", "x", px.X, "y", px.Y, "changed", n)
	case ColorPicker:
		c := e.buf.At(e.cursor.X, e.cursor.Y)
		if b == Secondary {
			e.bg = c
		} else {
			e.fg = c
		}
	case Text:
		if e.text != nil {
			e.CommitText()
		}
		e.text = &TextEntry{Anchor: p}
	case Line, Rectangle, Ellipse:
		e.beginMutation()
		e.gesture = gesture{active: true, button: b, start: p, last: p}
		e.clearOverlay()
	}
}

// PointerMove continues the current gesture. Without one it only updates
// the status readout.
func (e *Editor) PointerMove(p Point) {
	e.cursor = p.Pixel()
	if !e.gesture.active {
		return
	}
	switch {
	case e.tool == Pencil || e.tool == Eraser:
		e.buf.StrokeLine(e.gesture.last.Pixel(), p.Pixel(), e.drawColor(e.gesture.button), e.strokeWidth())
	case e.tool.shape():
		e.drawPreview(p)
	}
	e.gesture.last = p
}

// PointerUp ends the current gesture. Shape tools commit the geometry
// from the start point to p and clear the overlay.
func (e *Editor) PointerUp(p Point) {
	e.cursor = p.Pixel()
	if !e.gesture.active {
		return
	}
	g := e.gesture
	e.gesture = gesture{}
	if e.tool.shape() {
		e.clearOverlay()
		e.drawShape(e.buf.Image(), g.start, p, e.drawColor(g.button))
		e.log.Debug("shape", "tool", e.tool.String(), "from", g.start, "to", p)
	}
}

func (e *Editor) drawPreview(p Point) {
	e.clearOverlay()
	e.drawShape(e.overlay, e.gesture.start, p, e.drawColor(e.gesture.button))
}

// drawShape renders the active shape tool's geometry into dst. The same
// routine serves the overlay preview and the final commit.
func (e *Editor) drawShape(dst *image.NRGBA, start, end Point, c color.NRGBA) {
	w := e.strokeWidth()
	switch e.tool {
	case Line:
		canvas.StrokeLine(dst, start.Pixel(), end.Pixel(), c, w)
	case Rectangle:
		canvas.StrokeRect(dst, start.Pixel(), end.Pixel(), c, w)
	case Ellipse:
		cx := (start.X + end.X) / 2
		cy := (start.Y + end.Y) / 2
		rx := math.Abs(end.X-start.X) / 2
		ry := math.Abs(end.Y-start.Y) / 2
		canvas.StrokeEllipse(dst, math.Floor(cx), math.Floor(cy), rx, ry, c, w)
	}
}

func (e *Editor) clearOverlay() {
	clear(e.overlay.Pix)
}

// syncOverlay keeps the overlay the same size as the canvas.
func (e *Editor) syncOverlay() {
	if e.overlay.Rect != e.buf.Bounds() {
		e.overlay = image.NewNRGBA(e.buf.Bounds())
	}
}
