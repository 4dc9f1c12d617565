package theme

import (
	"image/color"
	"reflect"
)

// Theme defines the colors of the window chrome around the canvas. The
// canvas itself is never themed.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background behind the toolbars
	Foreground color.RGBA // Label text
	Workspace  color.RGBA // Area around the canvas

	// Toolbar
	ToolbarBackground      color.RGBA
	ButtonBackground       color.RGBA
	ButtonBackgroundHover  color.RGBA
	ButtonBackgroundActive color.RGBA // Selected tool or brush
	ButtonText             color.RGBA
	ButtonBorder           color.RGBA

	// Palette and status bar
	SwatchBorder     color.RGBA
	StatusBackground color.RGBA
	StatusText       color.RGBA

	CanvasShadow color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:                   "Default",
		Background:             color.RGBA{212, 208, 200, 255},
		Foreground:             color.RGBA{0, 0, 0, 255},
		Workspace:              color.RGBA{128, 128, 128, 255},
		ToolbarBackground:      color.RGBA{212, 208, 200, 255},
		ButtonBackground:       color.RGBA{212, 208, 200, 255},
		ButtonBackgroundHover:  color.RGBA{228, 225, 218, 255},
		ButtonBackgroundActive: color.RGBA{255, 255, 255, 255},
		ButtonText:             color.RGBA{0, 0, 0, 255},
		ButtonBorder:           color.RGBA{64, 64, 64, 255},
		SwatchBorder:           color.RGBA{64, 64, 64, 255},
		StatusBackground:       color.RGBA{212, 208, 200, 255},
		StatusText:             color.RGBA{0, 0, 0, 255},
		CanvasShadow:           color.RGBA{64, 64, 64, 255},
	}
}

// ColorFields lists the color field names in declaration order.
func ColorFields() []string {
	typ := reflect.TypeOf(Theme{})
	var out []string
	for i := 0; i < typ.NumField(); i++ {
		if typ.Field(i).Type == reflect.TypeOf(color.RGBA{}) {
			out = append(out, typ.Field(i).Name)
		}
	}
	return out
}
