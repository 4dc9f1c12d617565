package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeString(e *Editor, s string) {
	for _, r := range s {
		e.Key(Key{Rune: r})
	}
}

func TestKeyUndo(t *testing.T) {
	e := New(6, 6, WithForeground(red))
	e.SetTool(Fill)
	e.PointerDown(Pt(0, 0), Primary)

	assert.True(t, e.Key(Key{Rune: 'Z', Ctrl: true}))
	assert.Equal(t, white, e.At(0, 0))
	assert.True(t, e.Key(Key{Rune: 'z', Ctrl: true}), "undo on an empty stack is still consumed")
}

func TestKeysIgnoredWithoutText(t *testing.T) {
	e := New(6, 6)
	assert.False(t, e.Key(Key{Rune: 'p'}))
	assert.False(t, e.Key(Key{Code: KeyEnter}))
}

func TestKeysEditText(t *testing.T) {
	e := New(60, 60)
	e.SetTool(Text)
	e.PointerDown(Pt(2, 2), Primary)

	typeString(e, "ab")
	require.True(t, e.Key(Key{Code: KeyEnter, Shift: true}))
	typeString(e, "cd")
	require.True(t, e.Key(Key{Code: KeyBackspace}))

	entry, ok := e.PendingText()
	require.True(t, ok)
	assert.Equal(t, "ab\nc", entry.Text)

	require.True(t, e.Key(Key{Code: KeyEnter}))
	_, ok = e.PendingText()
	assert.False(t, ok)
	assert.Equal(t, 1, e.UndoDepth())
}

func TestKeyEscapeDiscards(t *testing.T) {
	e := New(20, 20)
	e.SetTool(Text)
	e.PointerDown(Pt(2, 2), Primary)
	typeString(e, "x")
	require.True(t, e.Key(Key{Code: KeyEscape}))
	_, ok := e.PendingText()
	assert.False(t, ok)
	assert.Equal(t, 0, e.UndoDepth())
}

func TestParseTool(t *testing.T) {
	for _, tool := range Tools() {
		got, err := ParseTool(tool.String())
		require.NoError(t, err)
		assert.Equal(t, tool, got)
		got, err = ParseTool(tool.Label())
		require.NoError(t, err)
		assert.Equal(t, tool, got)
	}
	_, err := ParseTool("lasso")
	assert.Error(t, err)
}

func TestPalette(t *testing.T) {
	p := Palette()
	assert.Len(t, p, 2*PaletteColumns)
	c, ok := LookupPaletteColor("red")
	require.True(t, ok)
	assert.Equal(t, red, c)
	p[0].Name = "changed"
	assert.Equal(t, "black", Palette()[0].Name)
}

func TestKeyUndoDuringShapeKeepsEarlierEdit(t *testing.T) {
	e := New(20, 20, WithBrushSize(1), WithForeground(red))
	e.SetTool(Fill)
	e.PointerDown(Pt(0, 0), Primary)
	e.SetForeground(black)

	e.SetTool(Rectangle)
	e.PointerDown(Pt(2, 2), Primary)
	e.PointerMove(Pt(8, 8))
	assert.True(t, e.Key(Key{Rune: 'z', Ctrl: true}))
	e.PointerUp(Pt(8, 8))
	require.Equal(t, 2, e.UndoDepth())
	require.Equal(t, black, e.At(2, 2))

	require.True(t, e.Undo())
	assert.Equal(t, red, e.At(2, 2))
	assert.Equal(t, red, e.At(15, 15))
	assert.Equal(t, 1, e.UndoDepth())
}
