package editor

import "image/color"

// PaletteColor is a named swatch of the fixed palette.
type PaletteColor struct {
	Name  string
	Color color.NRGBA
}

func rgb(r, g, b uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: 0xff} }

// The classic two-row palette: dark shades first, light shades below.
var palette = []PaletteColor{
	{"black", rgb(0x00, 0x00, 0x00)},
	{"gray", rgb(0x80, 0x80, 0x80)},
	{"maroon", rgb(0x80, 0x00, 0x00)},
	{"olive", rgb(0x80, 0x80, 0x00)},
	{"green", rgb(0x00, 0x80, 0x00)},
	{"teal", rgb(0x00, 0x80, 0x80)},
	{"navy", rgb(0x00, 0x00, 0x80)},
	{"purple", rgb(0x80, 0x00, 0x80)},
	{"khaki", rgb(0x80, 0x80, 0x40)},
	{"darkslate", rgb(0x00, 0x40, 0x40)},
	{"azure", rgb(0x00, 0x80, 0xff)},
	{"denim", rgb(0x00, 0x40, 0x80)},
	{"violet", rgb(0x80, 0x00, 0xff)},
	{"brown", rgb(0x80, 0x40, 0x00)},

	{"white", rgb(0xff, 0xff, 0xff)},
	{"silver", rgb(0xc0, 0xc0, 0xc0)},
	{"red", rgb(0xff, 0x00, 0x00)},
	{"yellow", rgb(0xff, 0xff, 0x00)},
	{"lime", rgb(0x00, 0xff, 0x00)},
	{"cyan", rgb(0x00, 0xff, 0xff)},
	{"blue", rgb(0x00, 0x00, 0xff)},
	{"magenta", rgb(0xff, 0x00, 0xff)},
	{"lightyellow", rgb(0xff, 0xff, 0x80)},
	{"springgreen", rgb(0x00, 0xff, 0x80)},
	{"lightcyan", rgb(0x80, 0xff, 0xff)},
	{"periwinkle", rgb(0x80, 0x80, 0xff)},
	{"rose", rgb(0xff, 0x00, 0x80)},
	{"orange", rgb(0xff, 0x80, 0x40)},
}

// PaletteColumns is the number of swatches per palette row.
const PaletteColumns = 14

// Palette returns a copy of the fixed color palette.
func Palette() []PaletteColor {
	return append([]PaletteColor(nil), palette...)
}

// LookupPaletteColor finds a swatch by name.
func LookupPaletteColor(name string) (color.NRGBA, bool) {
	for _, p := range palette {
		if p.Name == name {
			return p.Color, true
		}
	}
	return color.NRGBA{}, false
}

var brushSizes = []int{1, 2, 3, 5, 8}

const (
	// DefaultBrushSize is the brush selected in a new editor.
	DefaultBrushSize = 2
	// EraserScale multiplies the brush size for eraser strokes.
	EraserScale = 3
	// TextScale converts a brush size into a font size in pixels.
	TextScale = 6
	// LineSpacing is the text line height relative to the font size.
	LineSpacing = 1.2
)

// BrushSizes returns the selectable brush sizes in ascending order.
func BrushSizes() []int {
	return append([]int(nil), brushSizes...)
}

// ValidBrushSize reports whether n is one of BrushSizes.
func ValidBrushSize(n int) bool {
	for _, s := range brushSizes {
		if s == n {
			return true
		}
	}
	return false
}

var (
	defaultForeground = rgb(0x00, 0x00, 0x00)
	defaultBackground = rgb(0xff, 0xff, 0xff)
)
