// Package editor is the paint editor core: the tool state machine that
// turns pointer and key input into edits of a canvas, with undo history,
// a preview overlay for shape tools and pending text entry.
//
// An Editor is not safe for concurrent use. Hosts call it from a single
// event loop.
package editor

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"math"

	"golang.org/x/image/font"

	"github.com/example/paintbox/internal/canvas"
	"github.com/example/paintbox/internal/export"
	"github.com/example/paintbox/internal/history"
)

// Point is a position in canvas coordinates. Pixel addressing floors
// both components.
type Point struct {
	X, Y float64
}

// Pixel returns the integer pixel containing p.
func (p Point) Pixel() image.Point {
	return image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// gesture tracks a pointer drag between down and up.
type gesture struct {
	active bool
	button Button
	start  Point
	last   Point
}

// FaceFunc returns a font face for the given pixel size.
type FaceFunc func(px float64) (font.Face, error)

// Editor owns the committed canvas and applies tool input to it.
type Editor struct {
	buf     *canvas.Buffer
	overlay *image.NRGBA
	history *history.Stack

	tool  Tool
	brush int
	fg    color.NRGBA
	bg    color.NRGBA

	gesture gesture
	cursor  image.Point
	text    *TextEntry

	fill     canvas.FillOptions
	faceFunc FaceFunc
	faces    map[float64]font.Face
	log      *slog.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithBrushSize selects the initial brush. Sizes outside BrushSizes are
// ignored.
func WithBrushSize(n int) Option {
	return func(e *Editor) {
		if ValidBrushSize(n) {
			e.brush = n
		}
	}
}

func WithForeground(c color.NRGBA) Option {
	return func(e *Editor) { e.fg = c }
}

func WithBackground(c color.NRGBA) Option {
	return func(e *Editor) { e.bg = c }
}

// WithImage starts the editor with a copy of img instead of a blank
// canvas. The width and height passed to New are ignored.
func WithImage(img image.Image) Option {
	return func(e *Editor) {
		if img == nil {
			return
		}
		e.buf = canvas.FromImage(img)
		e.overlay = image.NewNRGBA(e.buf.Bounds())
	}
}

// WithTool selects the initial tool.
func WithTool(t Tool) Option {
	return func(e *Editor) {
		if t.valid() {
			e.tool = t
		}
	}
}

// WithHistoryLimit changes how many undo snapshots are kept.
func WithHistoryLimit(n int) Option {
	return func(e *Editor) { e.history = history.New(n) }
}

// WithFillOptions tunes the flood fill tool.
func WithFillOptions(o canvas.FillOptions) Option {
	return func(e *Editor) { e.fill = o }
}

// WithLogger sends debug records about edits to l. By default nothing is
// logged.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithTextFace replaces the Go Regular face used for committed text.
func WithTextFace(fn FaceFunc) Option {
	return func(e *Editor) {
		if fn != nil {
			e.faceFunc = fn
		}
	}
}

// New returns an editor over a white canvas of the given size.
func New(width, height int, opts ...Option) *Editor {
	buf := canvas.New(width, height)
	e := &Editor{
		buf:      buf,
		overlay:  image.NewNRGBA(buf.Bounds()),
		history:  history.New(history.DefaultLimit),
		tool:     Pencil,
		brush:    DefaultBrushSize,
		fg:       defaultForeground,
		bg:       defaultBackground,
		faceFunc: goRegularFace,
		faces:    map[float64]font.Face{},
		log:      newNopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) Tool() Tool              { return e.tool }
func (e *Editor) BrushSize() int          { return e.brush }
func (e *Editor) Foreground() color.NRGBA { return e.fg }
func (e *Editor) Background() color.NRGBA { return e.bg }
func (e *Editor) Width() int              { return e.buf.Width() }
func (e *Editor) Height() int             { return e.buf.Height() }

// CanUndo reports whether Undo would change anything.
func (e *Editor) CanUndo() bool { return e.history.Len() > 0 }

// UndoDepth is the number of snapshots currently held.
func (e *Editor) UndoDepth() int { return e.history.Len() }

// Drawing reports whether a pointer gesture is in progress.
func (e *Editor) Drawing() bool { return e.gesture.active }

// At samples the committed canvas; positions outside it read as white.
func (e *Editor) At(x, y int) color.NRGBA { return e.buf.At(x, y) }

func (e *Editor) SetForeground(c color.NRGBA) { e.fg = c }

func (e *Editor) SetBackground(c color.NRGBA) { e.bg = c }

// Image returns the committed canvas. The result must be treated as
// read-only and is invalidated by the next edit that changes dimensions.
func (e *Editor) Image() *image.NRGBA { return e.buf.Image() }

// Overlay returns the transparent preview layer, the same size as the
// canvas. It holds the in-progress shape and nothing else.
func (e *Editor) Overlay() *image.NRGBA { return e.overlay }

// SetTool switches tools. A pending text entry is committed when leaving
// the text tool, and an in-progress shape preview is abandoned.
func (e *Editor) SetTool(t Tool) {
	if !t.valid() || t == e.tool {
		return
	}
	if e.text != nil && t != Text {
		e.CommitText()
	}
	if e.gesture.active {
		e.gesture = gesture{}
		e.clearOverlay()
	}
	e.log.Debug("tool", "from", e.tool.String(), "to", t.String())
	e.tool = t
}

// SetBrushSize selects a brush. Sizes outside BrushSizes are ignored.
func (e *Editor) SetBrushSize(n int) bool {
	if !ValidBrushSize(n) {
		return false
	}
	e.brush = n
	return true
}

// SwapColors exchanges the foreground and background colors.
func (e *Editor) SwapColors() {
	e.fg, e.bg = e.bg, e.fg
}

// beginMutation records the canvas for undo. It runs once per discrete
// edit, before any pixel changes.
func (e *Editor) beginMutation() {
	e.history.Push(e.buf.Image())
	e.log.Debug("snapshot", "depth", e.history.Len())
}

// Undo restores the canvas to the most recent snapshot. With an empty
// history or during a gesture it does nothing and returns false.
func (e *Editor) Undo() bool {
	if e.gesture.active {
		return false
	}
	snap, ok := e.history.Pop()
	if !ok {
		return false
	}
	e.buf.Restore(snap)
	e.syncOverlay()
	e.log.Debug("undo", "depth", e.history.Len())
	return true
}

// NewCanvas clears the canvas to white as one undoable edit. It does
// nothing while a gesture is in progress.
func (e *Editor) NewCanvas() {
	if e.gesture.active {
		return
	}
	e.beginMutation()
	e.buf.Clear(canvas.White)
	e.log.Debug("new canvas", "width", e.buf.Width(), "height", e.buf.Height())
}

// Resize follows the host container. Content keeps its coordinates, new
// area is white, and neither the gesture nor pending text is interrupted.
// Resizing is not recorded in the undo history.
func (e *Editor) Resize(width, height int) bool {
	if !e.buf.Resize(width, height) {
		return false
	}
	e.syncOverlay()
	if e.gesture.active && e.tool.shape() {
		e.drawPreview(e.gesture.last)
	}
	e.log.Debug("resize", "width", width, "height", height)
	return true
}

// transform applies op as one undoable edit. It does nothing while a
// gesture is in progress.
func (e *Editor) transform(name string, op func(*canvas.Buffer)) {
	if e.gesture.active {
		e.log.Debug("transform skipped during gesture", "op", name)
		return
	}
	e.beginMutation()
	op(e.buf)
	e.syncOverlay()
	e.log.Debug("transform", "op", name)
}

func (e *Editor) FlipHorizontal() { e.transform("flip-h", (*canvas.Buffer).FlipHorizontal) }
func (e *Editor) FlipVertical()   { e.transform("flip-v", (*canvas.Buffer).FlipVertical) }
func (e *Editor) Rotate90()       { e.transform("rotate-90", (*canvas.Buffer).Rotate90) }
func (e *Editor) Rotate180()      { e.transform("rotate-180", (*canvas.Buffer).Rotate180) }
func (e *Editor) InvertColors()   { e.transform("invert", (*canvas.Buffer).InvertColors) }

// Export writes the committed canvas. The overlay and pending text are
// not included.
func (e *Editor) Export(w io.Writer, format export.Format) error {
	return e.buf.Encode(w, format)
}

// Status describes the active tool and the last pointer position.
type Status struct {
	Tool Tool
	X, Y int
}

func (s Status) String() string {
	return fmt.Sprintf("%s %d, %d", s.Tool.Label(), s.X, s.Y)
}

func (e *Editor) Status() Status {
	return Status{Tool: e.tool, X: e.cursor.X, Y: e.cursor.Y}
}
