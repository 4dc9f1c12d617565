package appstate

import (
	"image"

	"github.com/example/paintbox/internal/editor"
	"github.com/example/paintbox/internal/mathutil"
)

const (
	titleHeight   = 22
	toolHeight    = 24
	brushHeight   = 18
	toolbarGap    = 8
	swatchSize    = 16
	swatchGap     = 2
	paletteHeight = 2*swatchSize + 3*swatchGap
	statusHeight  = 18
	colorsWidth   = 40
)

// layout holds the screen rectangles of the window regions. The canvas
// region is where the editor's image is shown at 1:1.
type layout struct {
	title   image.Rectangle
	toolbar image.Rectangle
	canvas  image.Rectangle
	palette image.Rectangle
	colors  image.Rectangle
	status  image.Rectangle
}

func toolLabel(t editor.Tool) string {
	return string(shortcutRune(t)) + ":" + shortLabel(t)
}

func shortLabel(t editor.Tool) string {
	switch t {
	case editor.Rectangle:
		return "Rect"
	case editor.ColorPicker:
		return "Picker"
	}
	return t.Label()
}

// toolbarWidth fits the widest tool label.
func toolbarWidth() int {
	w := 0
	for _, t := range editor.Tools() {
		w = mathutil.Max(w, labelWidth(toolLabel(t)))
	}
	return w + 12
}

func toolbarHeight() int {
	return len(editor.Tools())*toolHeight + toolbarGap + len(editor.BrushSizes())*brushHeight
}

func computeLayout(width, height int) layout {
	tw := toolbarWidth()
	bottom := paletteHeight + statusHeight
	canvasBottom := mathutil.Max(titleHeight, height-bottom)
	l := layout{
		title:   image.Rect(0, 0, width, titleHeight),
		toolbar: image.Rect(0, titleHeight, tw, canvasBottom),
		canvas:  image.Rect(tw, titleHeight, mathutil.Max(tw, width), canvasBottom),
		palette: image.Rect(0, canvasBottom, width, canvasBottom+paletteHeight),
		status:  image.Rect(0, canvasBottom+paletteHeight, width, canvasBottom+bottom),
	}
	l.colors = image.Rect(swatchGap, l.palette.Min.Y+swatchGap, swatchGap+colorsWidth, l.palette.Max.Y-swatchGap)
	return l
}

// windowSize is the window needed to show a canvas of the given size.
func windowSize(canvasWidth, canvasHeight int) (int, int) {
	w := toolbarWidth() + canvasWidth
	h := titleHeight + mathutil.Max(canvasHeight, toolbarHeight()) + paletteHeight + statusHeight
	return w, h
}

// canvasSize is the editor size that fills the canvas region.
func (l layout) canvasSize() (int, int) {
	return mathutil.Max(1, l.canvas.Dx()), mathutil.Max(1, l.canvas.Dy())
}

func (l layout) toolRect(i int) image.Rectangle {
	y := l.toolbar.Min.Y + i*toolHeight
	return image.Rect(l.toolbar.Min.X, y, l.toolbar.Max.X, y+toolHeight)
}

func (l layout) brushRect(i int) image.Rectangle {
	y := l.toolbar.Min.Y + len(editor.Tools())*toolHeight + toolbarGap + i*brushHeight
	return image.Rect(l.toolbar.Min.X, y, l.toolbar.Max.X, y+brushHeight)
}

func (l layout) swatchRect(i int) image.Rectangle {
	col := i % editor.PaletteColumns
	row := i / editor.PaletteColumns
	x := l.colors.Max.X + 2*swatchGap + col*(swatchSize+swatchGap)
	y := l.palette.Min.Y + swatchGap + row*(swatchSize+swatchGap)
	return image.Rect(x, y, x+swatchSize, y+swatchSize)
}

// foregroundRect and backgroundRect are the overlapping squares of the
// current colour indicator.
func (l layout) foregroundRect() image.Rectangle {
	return image.Rect(l.colors.Min.X, l.colors.Min.Y, l.colors.Min.X+22, l.colors.Min.Y+22)
}

func (l layout) backgroundRect() image.Rectangle {
	return image.Rect(l.colors.Max.X-22, l.colors.Max.Y-22, l.colors.Max.X, l.colors.Max.Y)
}

// toCanvas converts window coordinates into canvas coordinates.
func (l layout) toCanvas(x, y float32) editor.Point {
	return editor.Pt(float64(x)-float64(l.canvas.Min.X), float64(y)-float64(l.canvas.Min.Y))
}
