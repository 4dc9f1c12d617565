package editor

import (
	"fmt"
	"strings"
)

// Tool selects how pointer input edits the canvas.
type Tool int

const (
	Pencil Tool = iota
	Eraser
	Fill
	Line
	Rectangle
	Ellipse
	ColorPicker
	Text
)

var toolInfo = []struct {
	name  string
	label string
}{
	Pencil:      {"pencil", "Pencil"},
	Eraser:      {"eraser", "Eraser"},
	Fill:        {"fill", "Fill"},
	Line:        {"line", "Line"},
	Rectangle:   {"rect", "Rectangle"},
	Ellipse:     {"ellipse", "Ellipse"},
	ColorPicker: {"picker", "Color Picker"},
	Text:        {"text", "Text"},
}

// Tools lists every tool in toolbar order.
func Tools() []Tool {
	out := make([]Tool, len(toolInfo))
	for i := range toolInfo {
		out[i] = Tool(i)
	}
	return out
}

func (t Tool) valid() bool { return t >= 0 && int(t) < len(toolInfo) }

// String returns the short name used on the command line.
func (t Tool) String() string {
	if !t.valid() {
		return fmt.Sprintf("tool(%d)", int(t))
	}
	return toolInfo[t].name
}

// Label returns the display name shown in the status readout.
func (t Tool) Label() string {
	if !t.valid() {
		return t.String()
	}
	return toolInfo[t].label
}

// shape reports whether the tool previews on the overlay before commit.
func (t Tool) shape() bool {
	return t == Line || t == Rectangle || t == Ellipse
}

// ParseTool accepts a tool name or label, case-insensitively.
func ParseTool(s string) (Tool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, info := range toolInfo {
		if s == info.name || s == strings.ToLower(info.label) {
			return Tool(i), nil
		}
	}
	switch s {
	case "rectangle":
		return Rectangle, nil
	case "colorpicker", "pick", "eyedropper":
		return ColorPicker, nil
	}
	return 0, fmt.Errorf("unknown tool %q", s)
}

// Button identifies which pointer button started a gesture.
type Button int

const (
	Primary Button = iota
	Secondary
)

func (b Button) String() string {
	if b == Secondary {
		return "secondary"
	}
	return "primary"
}
