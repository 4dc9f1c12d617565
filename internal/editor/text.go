package editor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextEntry is text typed with the text tool that has not yet been
// committed to the canvas.
type TextEntry struct {
	Anchor Point
	Text   string
}

var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

func goRegularFace(px float64) (font.Face, error) {
	f, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: px, DPI: 72, Hinting: font.HintingFull})
}

// fontSize is the text height in pixels for the current brush.
func (e *Editor) fontSize() float64 {
	return float64(e.brush * TextScale)
}

func (e *Editor) face() (font.Face, error) {
	size := e.fontSize()
	if face, ok := e.faces[size]; ok {
		return face, nil
	}
	face, err := e.faceFunc(size)
	if err != nil {
		return nil, err
	}
	e.faces[size] = face
	return face, nil
}

// PendingText returns the uncommitted text entry, if any.
func (e *Editor) PendingText() (TextEntry, bool) {
	if e.text == nil {
		return TextEntry{}, false
	}
	return *e.text, true
}

// InsertText appends s to the pending entry. It is ignored when no entry
// is open.
func (e *Editor) InsertText(s string) {
	if e.text == nil {
		return
	}
	e.text.Text += s
}

// Backspace removes the last character of the pending entry.
func (e *Editor) Backspace() {
	if e.text == nil || e.text.Text == "" {
		return
	}
	_, n := utf8.DecodeLastRuneInString(e.text.Text)
	e.text.Text = e.text.Text[:len(e.text.Text)-n]
}

// CancelText discards the pending entry.
func (e *Editor) CancelText() {
	e.text = nil
}

// Blur is called when the host loses input focus. Pending text commits.
func (e *Editor) Blur() {
	if e.text != nil {
		e.CommitText()
	}
}

// CommitText rasterizes the pending entry into the canvas as one undoable
// edit and closes it. Entries that are blank after trimming close without
// touching the canvas or the history. It reports whether pixels were
// written.
func (e *Editor) CommitText() bool {
	entry := e.text
	e.text = nil
	if entry == nil || strings.TrimSpace(entry.Text) == "" {
		return false
	}
	face, err := e.face()
	if err != nil {
		e.log.Error("text face", "size", e.fontSize(), "err", err)
		return false
	}
	e.beginMutation()
	e.drawLines(e.buf.Image(), image.Point{}, *entry, face, e.fg)
	e.log.Debug("text", "x", entry.Anchor.X, "y", entry.Anchor.Y, "lines", strings.Count(entry.Text, "\n")+1)
	return true
}

// drawLines renders each line of entry with its top edge at the anchor,
// advancing by the line height. offset translates canvas coordinates into
// dst coordinates.
func (e *Editor) drawLines(dst draw.Image, offset image.Point, entry TextEntry, face font.Face, c color.Color) {
	ascent := face.Metrics().Ascent.Ceil()
	lineHeight := e.fontSize() * LineSpacing
	x := int(math.Floor(entry.Anchor.X)) + offset.X
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face}
	for i, line := range strings.Split(entry.Text, "\n") {
		top := int(math.Floor(entry.Anchor.Y + float64(i)*lineHeight))
		d.Dot = fixed.P(x, top+ascent+offset.Y)
		d.DrawString(line)
	}
}

// DrawPendingText previews the open text entry, with a caret, into dst.
// origin is where the canvas's top-left corner sits in dst.
func (e *Editor) DrawPendingText(dst draw.Image, origin image.Point) {
	if e.text == nil {
		return
	}
	face, err := e.face()
	if err != nil {
		return
	}
	e.drawLines(dst, origin, *e.text, face, e.fg)

	lines := strings.Split(e.text.Text, "\n")
	last := lines[len(lines)-1]
	d := &font.Drawer{Face: face}
	lineHeight := e.fontSize() * LineSpacing
	cx := int(math.Floor(e.text.Anchor.X)) + d.MeasureString(last).Ceil() + origin.X
	top := int(math.Floor(e.text.Anchor.Y+float64(len(lines)-1)*lineHeight)) + origin.Y
	caret := image.Rect(cx, top, cx+1, top+int(e.fontSize()))
	draw.Draw(dst, caret.Intersect(dst.Bounds()), image.NewUniform(e.fg), image.Point{}, draw.Src)
}
