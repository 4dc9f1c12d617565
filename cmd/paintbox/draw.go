package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/term"

	"github.com/example/paintbox/internal/clipboard"
	"github.com/example/paintbox/internal/editor"
	"github.com/example/paintbox/internal/export"
)

// drawCmd applies one drawing action to a canvas without opening a window.
type drawCmd struct {
	file        string
	output      string
	toClipboard bool
	width       int
	height      int
	brush       int
	colorSpec   string
	background  string
	action      string
	coords      []float64
	text        string
	*root
	fs *flag.FlagSet
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func (d *drawCmd) Program() string {
	return d.root.Program() + " draw"
}

var drawActions = map[string]editor.Tool{
	"line":    editor.Line,
	"rect":    editor.Rectangle,
	"ellipse": editor.Ellipse,
	"pencil":  editor.Pencil,
	"fill":    editor.Fill,
	"text":    editor.Text,
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	fs.StringVar(&d.file, "file", "", "input image file (defaults to a blank canvas)")
	fs.StringVar(&d.output, "output", "", "output file path, or - for PNG on stdout (defaults to the input file)")
	fs.BoolVar(&d.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&d.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")
	fs.IntVar(&d.width, "width", 0, "canvas width when no input file is given")
	fs.IntVar(&d.height, "height", 0, "canvas height when no input file is given")
	fs.IntVar(&d.brush, "brush", 0, "brush size ("+brushList()+")")
	fs.StringVar(&d.colorSpec, "color", "", "drawing color name or hex value")
	fs.StringVar(&d.background, "background", "", "background color used by the canvas")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	positionals := fs.Args()
	if len(positionals) < 1 {
		return nil, &UsageError{of: d}
	}
	d.action = strings.ToLower(positionals[0])
	remaining := positionals[1:]
	if _, ok := drawActions[d.action]; !ok {
		return nil, fmt.Errorf("unsupported action %q", d.action)
	}
	var err error
	switch d.action {
	case "line", "rect", "ellipse":
		d.coords, err = expectFloats(remaining, 4, d.action)
	case "fill":
		d.coords, err = expectFloats(remaining, 2, d.action)
	case "pencil":
		if len(remaining) < 2 || len(remaining)%2 != 0 {
			return nil, fmt.Errorf("pencil requires pairs of x y coordinates")
		}
		d.coords, err = expectFloats(remaining, len(remaining), d.action)
	case "text":
		if len(remaining) < 3 {
			return nil, fmt.Errorf("text requires x y and content")
		}
		d.coords, err = expectFloats(remaining[:2], 2, d.action)
		d.text = unescapeText(strings.Join(remaining[2:], " "))
		if strings.TrimSpace(d.text) == "" {
			return nil, fmt.Errorf("text content cannot be empty")
		}
	}
	if err != nil {
		return nil, err
	}
	if d.output == "" {
		if d.file == "" {
			return nil, fmt.Errorf("output file is required when drawing on a blank canvas")
		}
		d.output = d.file
	}
	if d.colorSpec != "" {
		if _, err := parseColor(d.colorSpec); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func expectFloats(args []string, n int, name string) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d numeric arguments", name, n)
	}
	out := make([]float64, n)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid number %q", name, a)
		}
		out[i] = v
	}
	return out, nil
}

// unescapeText turns the two character sequence \n into a line break.
func unescapeText(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

func (d *drawCmd) newEditor() (*editor.Editor, error) {
	opts, err := d.root.editorOptions(d.brush, d.colorSpec, d.background)
	if err != nil {
		return nil, err
	}
	if d.file != "" {
		img, err := imaging.Open(d.file)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", d.file, err)
		}
		opts = append(opts, editor.WithImage(img))
	}
	w, h := d.root.canvasSize(d.width, d.height)
	return editor.New(w, h, opts...), nil
}

func (d *drawCmd) Run() error {
	ed, err := d.newEditor()
	if err != nil {
		return err
	}
	if err := applyDraw(ed, d.action, d.coords, d.text); err != nil {
		return err
	}
	if err := d.write(ed); err != nil {
		return err
	}
	if d.toClipboard {
		if err := clipboard.WriteImage(ed.Image()); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		d.root.notifyCopy(d.output, ed.Image())
	}
	return nil
}

func (d *drawCmd) write(ed *editor.Editor) error {
	if d.output == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("refusing to write image data to a terminal")
		}
		return ed.Export(os.Stdout, export.PNG)
	}
	if err := export.Save(d.output, ed.Image()); err != nil {
		return err
	}
	d.root.notifySave(d.output)
	return nil
}

// applyDraw replays an action through the editor's pointer interface, so
// the result matches what the same gesture produces in the window.
func applyDraw(ed *editor.Editor, action string, coords []float64, text string) error {
	tool, ok := drawActions[action]
	if !ok {
		return fmt.Errorf("unsupported action %q", action)
	}
	ed.SetTool(tool)
	at := func(i int) editor.Point { return editor.Pt(coords[2*i], coords[2*i+1]) }
	n := len(coords) / 2
	if n == 0 {
		return fmt.Errorf("%s requires coordinates", action)
	}
	ed.PointerDown(at(0), editor.Primary)
	switch tool {
	case editor.Fill:
		return nil
	case editor.Text:
		ed.InsertText(text)
		if !ed.CommitText() {
			return fmt.Errorf("text was not drawn")
		}
		return nil
	}
	end := at(0)
	for i := 1; i < n; i++ {
		end = at(i)
		ed.PointerMove(end)
	}
	ed.PointerUp(end)
	return nil
}
