package main

import (
	"flag"
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/example/paintbox/internal/appstate"
	"github.com/example/paintbox/internal/editor"
)

// openCmd shows the paint window.
type openCmd struct {
	*root
	fs         *flag.FlagSet
	file       string
	output     string
	width      int
	height     int
	brush      int
	foreground string
	background string
}

func parseOpenCmd(args []string, r *root) (*openCmd, error) {
	fs := flag.NewFlagSet("open", flag.ExitOnError)
	o := &openCmd{root: r, fs: fs}
	fs.Usage = usageFunc(o)
	fs.StringVar(&o.file, "file", "", "image to edit instead of a blank canvas")
	fs.StringVar(&o.output, "output", "", "file written by Ctrl+S (defaults to the input file or "+r.defaultOutput()+")")
	fs.IntVar(&o.width, "width", 0, "initial canvas width")
	fs.IntVar(&o.height, "height", 0, "initial canvas height")
	fs.IntVar(&o.brush, "brush", 0, "initial brush size ("+brushList()+")")
	fs.StringVar(&o.foreground, "fg", "", "initial foreground color")
	fs.StringVar(&o.background, "bg", "", "initial background color")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: o}
	}
	if o.output == "" {
		o.output = o.file
	}
	if o.output == "" {
		o.output = r.defaultOutput()
	}
	return o, nil
}

func (o *openCmd) Program() string {
	return o.root.Program() + " open"
}

func (o *openCmd) FlagSet() *flag.FlagSet {
	return o.fs
}

func (o *openCmd) Run() error {
	opts, err := o.root.editorOptions(o.brush, o.foreground, o.background)
	if err != nil {
		return err
	}
	if o.file != "" {
		img, err := imaging.Open(o.file)
		if err != nil {
			return fmt.Errorf("open %s: %w", o.file, err)
		}
		opts = append(opts, editor.WithImage(img))
	}
	w, h := o.root.canvasSize(o.width, o.height)
	st := appstate.New(
		appstate.WithEditor(editor.New(w, h, opts...)),
		appstate.WithOutput(o.output),
		appstate.WithTheme(o.root.activeTheme),
		appstate.WithNotifier(o.root.notifier),
	)
	st.Run()
	return nil
}
