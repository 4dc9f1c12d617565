package canvas

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func countColor(b *Buffer) map[image.Point]bool {
	out := map[image.Point]bool{}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) != White {
				out[image.Pt(x, y)] = true
			}
		}
	}
	return out
}

func TestStrokeLineWidthOne(t *testing.T) {
	b := New(10, 10)
	b.StrokeLine(image.Pt(1, 1), image.Pt(6, 1), black, 1)
	got := countColor(b)
	assert.Len(t, got, 6)
	for x := 1; x <= 6; x++ {
		assert.True(t, got[image.Pt(x, 1)])
	}
}

func TestStrokeLineDiagonal(t *testing.T) {
	b := New(10, 10)
	b.StrokeLine(image.Pt(0, 0), image.Pt(4, 4), black, 1)
	got := countColor(b)
	assert.Len(t, got, 5)
	for i := 0; i <= 4; i++ {
		assert.True(t, got[image.Pt(i, i)])
	}
}

func TestStrokeLineDot(t *testing.T) {
	b := New(10, 10)
	b.StrokeLine(image.Pt(5, 5), image.Pt(5, 5), black, 3)
	got := countColor(b)
	assert.Len(t, got, 9)
	assert.True(t, got[image.Pt(4, 4)])
	assert.True(t, got[image.Pt(6, 6)])
}

func TestStrokeThicknessMatchesWidth(t *testing.T) {
	// Brush sizes and their eraser multiples.
	for _, width := range []int{1, 2, 3, 5, 6, 8, 9, 15, 24} {
		across := New(64, 64)
		across.StrokeLine(image.Pt(10, 32), image.Pt(50, 32), black, width)
		down := New(64, 64)
		down.StrokeLine(image.Pt(32, 10), image.Pt(32, 50), black, width)
		gotAcross, gotDown := countColor(across), countColor(down)

		column, row := 0, 0
		for i := 0; i < 64; i++ {
			if gotAcross[image.Pt(30, i)] {
				column++
			}
			if gotDown[image.Pt(i, 30)] {
				row++
			}
		}
		assert.Equal(t, width, column, "horizontal stroke width %d", width)
		assert.Equal(t, width, row, "vertical stroke width %d", width)
	}
}

func TestStampBoundsMatchWidth(t *testing.T) {
	for _, width := range []int{1, 2, 3, 4, 5, 8} {
		b := New(20, 20)
		Stamp(b.Image(), 10, 10, black, width)
		var box image.Rectangle
		for p := range countColor(b) {
			box = box.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
		}
		assert.Equal(t, width, box.Dx(), "width %d", width)
		assert.Equal(t, width, box.Dy(), "width %d", width)
		assert.Equal(t, image.Pt(10-width/2, 10-width/2), box.Min, "width %d", width)
	}
}

func TestStrokeClipsToBuffer(t *testing.T) {
	b := New(4, 4)
	b.StrokeLine(image.Pt(-5, 1), image.Pt(10, 1), black, 1)
	assert.Len(t, countColor(b), 4)
}

func TestStrokeRectOutline(t *testing.T) {
	b := New(12, 12)
	b.StrokeRect(image.Pt(8, 8), image.Pt(2, 2), black, 1)
	got := countColor(b)
	assert.Len(t, got, 24)
	assert.True(t, got[image.Pt(2, 2)])
	assert.True(t, got[image.Pt(8, 2)])
	assert.True(t, got[image.Pt(8, 8)])
	assert.False(t, got[image.Pt(5, 5)])
}

func TestStrokeEllipseStaysOnOutline(t *testing.T) {
	b := New(30, 30)
	b.StrokeEllipse(15, 15, 10, 6, black, 1)
	got := countColor(b)
	assert.True(t, got[image.Pt(25, 15)])
	assert.True(t, got[image.Pt(5, 15)])
	assert.True(t, got[image.Pt(15, 9)])
	assert.True(t, got[image.Pt(15, 21)])
	assert.False(t, got[image.Pt(15, 15)])
}
