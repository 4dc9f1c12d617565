package editor

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func rowsTouched(img *image.NRGBA) []int {
	var rows []int
	for y := 0; y < img.Rect.Dy(); y++ {
		for x := 0; x < img.Rect.Dx(); x++ {
			if img.NRGBAAt(x, y) != white {
				rows = append(rows, y)
				break
			}
		}
	}
	return rows
}

func TestTextTwoLinesOneUndoEntry(t *testing.T) {
	e := New(80, 60)
	require.Equal(t, 2, e.BrushSize())
	e.SetTool(Text)
	e.PointerDown(Pt(10, 10), Primary)
	e.InsertText("hi\nyo")

	assert.Empty(t, rowsTouched(e.Image()), "pending text is not committed")
	assert.Equal(t, 0, e.UndoDepth())

	require.True(t, e.CommitText())
	assert.Equal(t, 1, e.UndoDepth())
	_, pending := e.PendingText()
	assert.False(t, pending)

	// 12px font, 14.4px line height: line one starts at y=10, line two at y=24.
	var first, second bool
	for _, y := range rowsTouched(e.Image()) {
		assert.GreaterOrEqual(t, y, 10)
		switch {
		case y < 24:
			first = true
		default:
			second = true
		}
	}
	assert.True(t, first, "first line rendered")
	assert.True(t, second, "second line rendered below the first")
}

func TestTextBlankIsDiscarded(t *testing.T) {
	e := New(40, 40)
	e.SetTool(Text)
	e.PointerDown(Pt(5, 5), Primary)
	e.InsertText("  \n ")
	assert.False(t, e.CommitText())
	assert.Equal(t, 0, e.UndoDepth())
	assert.Empty(t, rowsTouched(e.Image()))
}

func TestTextCommitTriggers(t *testing.T) {
	t.Run("tool switch", func(t *testing.T) {
		e := New(40, 40)
		e.SetTool(Text)
		e.PointerDown(Pt(2, 2), Primary)
		e.InsertText("A")
		e.SetTool(Pencil)
		assert.Equal(t, 1, e.UndoDepth())
		assert.NotEmpty(t, rowsTouched(e.Image()))
	})
	t.Run("new entry", func(t *testing.T) {
		e := New(40, 40)
		e.SetTool(Text)
		e.PointerDown(Pt(2, 2), Primary)
		e.InsertText("A")
		e.PointerDown(Pt(20, 20), Primary)
		assert.Equal(t, 1, e.UndoDepth())
		entry, ok := e.PendingText()
		require.True(t, ok)
		assert.Equal(t, Pt(20, 20), entry.Anchor)
		assert.Empty(t, entry.Text)
	})
	t.Run("blur", func(t *testing.T) {
		e := New(40, 40)
		e.SetTool(Text)
		e.PointerDown(Pt(2, 2), Primary)
		e.InsertText("A")
		e.Blur()
		assert.Equal(t, 1, e.UndoDepth())
	})
	t.Run("escape", func(t *testing.T) {
		e := New(40, 40)
		e.SetTool(Text)
		e.PointerDown(Pt(2, 2), Primary)
		e.InsertText("A")
		e.CancelText()
		e.Blur()
		assert.Equal(t, 0, e.UndoDepth())
		assert.Empty(t, rowsTouched(e.Image()))
	})
}

func TestBackspace(t *testing.T) {
	e := New(10, 10)
	e.InsertText("ignored")
	_, ok := e.PendingText()
	assert.False(t, ok)

	e.SetTool(Text)
	e.PointerDown(Pt(0, 0), Primary)
	e.InsertText("né")
	e.Backspace()
	entry, _ := e.PendingText()
	assert.Equal(t, "n", entry.Text)
	e.Backspace()
	e.Backspace()
	entry, _ = e.PendingText()
	assert.Equal(t, "", entry.Text)
}

func TestTextFaceError(t *testing.T) {
	failing := func(float64) (font.Face, error) { return nil, errors.New("no font") }
	e := New(20, 20, WithTextFace(failing))
	e.SetTool(Text)
	e.PointerDown(Pt(1, 1), Primary)
	e.InsertText("A")
	assert.False(t, e.CommitText())
	assert.Equal(t, 0, e.UndoDepth())
}

func TestDrawPendingText(t *testing.T) {
	e := New(40, 40)
	e.SetTool(Text)
	e.PointerDown(Pt(4, 4), Primary)
	e.InsertText("A")

	dst := image.NewNRGBA(image.Rect(0, 0, 60, 60))
	e.DrawPendingText(dst, image.Pt(10, 10))
	var touched bool
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			touched = true
			break
		}
	}
	assert.True(t, touched)
	assert.Empty(t, rowsTouched(e.Image()))
}
