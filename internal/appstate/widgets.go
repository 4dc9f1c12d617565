package appstate

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/paintbox/internal/editor"
	"github.com/example/paintbox/internal/mathutil"
	"github.com/example/paintbox/internal/theme"
)

// ButtonState describes the visual state of a button.
type ButtonState int

const (
	StateDefault ButtonState = iota
	StateHover
	StatePressed
)

// Button represents an interactive UI element.
// Activate performs the button's action when clicked.
type Button interface {
	Draw(dst *image.RGBA, state ButtonState)
	Rect() image.Rectangle
	SetRect(r image.Rectangle)
	Activate()
}

// CacheButton wraps another Button and caches its rendered states.
type CacheButton struct {
	Button
	cache [3]*image.RGBA
}

var _ Button = (*CacheButton)(nil)

func (cb *CacheButton) Draw(dst *image.RGBA, state ButtonState) {
	if cb.cache[state] == nil {
		rect := cb.Button.Rect()
		img := image.NewRGBA(rect)
		cb.Button.Draw(img, state)
		cb.cache[state] = img
	}
	draw.Draw(dst, cb.Button.Rect(), cb.cache[state], cb.Button.Rect().Min, draw.Src)
}

func (cb *CacheButton) SetRect(r image.Rectangle) {
	if r != cb.Button.Rect() {
		cb.Button.SetRect(r)
		cb.cache = [3]*image.RGBA{}
	}
}

// labelButton is the shared look of every text button in the chrome.
type labelButton struct {
	label    string
	rect     image.Rectangle
	theme    *theme.Theme
	onSelect func()
}

func (lb *labelButton) Draw(dst *image.RGBA, state ButtonState) {
	c := lb.theme.ButtonBackground
	switch state {
	case StateHover:
		c = lb.theme.ButtonBackgroundHover
	case StatePressed:
		c = lb.theme.ButtonBackgroundActive
	}
	fillRect(dst, lb.rect, c)
	outline(dst, lb.rect, lb.theme.ButtonBorder)
	baseline := lb.rect.Min.Y + (lb.rect.Dy()+basicfont.Face7x13.Ascent-basicfont.Face7x13.Descent)/2
	drawLabel(dst, lb.rect.Min.X+4, baseline, lb.label, lb.theme.ButtonText)
}

func (lb *labelButton) Rect() image.Rectangle { return lb.rect }

func (lb *labelButton) SetRect(r image.Rectangle) { lb.rect = r }

func (lb *labelButton) Activate() {
	if lb.onSelect != nil {
		lb.onSelect()
	}
}

// hinter is implemented by controls that describe themselves in the
// status bar while hovered.
type hinter interface {
	Hint() string
}

// ToolButton selects a drawing tool.
type ToolButton struct {
	labelButton
	tool editor.Tool
}

func (tb *ToolButton) Hint() string { return tb.tool.String() }

// BrushButton selects a brush size and previews its stroke.
type BrushButton struct {
	labelButton
	size int
	ink  color.Color
}

func (bb *BrushButton) Draw(dst *image.RGBA, state ButtonState) {
	bb.labelButton.Draw(dst, state)
	y := bb.rect.Min.Y + bb.rect.Dy()/2
	x0 := bb.rect.Min.X + 22
	x1 := bb.rect.Max.X - 6
	if x1 <= x0 {
		return
	}
	thick := mathutil.Clamp(bb.size, 1, mathutil.Max(1, bb.rect.Dy()-4))
	half := thick / 2
	fillRect(dst, image.Rect(x0, y-half, x1, y-half+thick), bb.ink)
}

// Shortcut is a clickable hint in the title bar.
type Shortcut struct {
	labelButton
	action string
}

func (s *Shortcut) Hint() string { return s.action }

// Swatch is one palette color. Primary clicks set the foreground,
// secondary clicks the background.
type Swatch struct {
	rect  image.Rectangle
	color color.NRGBA
	name  string
}

func (s *Swatch) Hint() string { return s.name }

func (s *Swatch) Draw(dst *image.RGBA, border color.Color, hover bool) {
	fillRect(dst, s.rect, s.color)
	outline(dst, s.rect, border)
	if hover {
		outline(dst, s.rect.Inset(1), color.White)
	}
}

func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// outline draws a one pixel border just inside r.
func outline(dst draw.Image, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	u := image.NewUniform(c)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}

func drawLabel(dst draw.Image, x, baseline int, s string, c color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: basicfont.Face7x13, Dot: fixed.P(x, baseline)}
	d.DrawString(s)
}

func labelWidth(s string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(s).Ceil()
}
