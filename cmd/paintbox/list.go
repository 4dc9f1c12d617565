package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/paintbox/internal/editor"
)

type colorsCmd struct {
	*root
	fs     *flag.FlagSet
	stdout io.Writer
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r, fs: fs, stdout: os.Stdout}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	fg := editor.New(1, 1).Foreground()
	fmt.Fprintln(c.stdout, "palette colors (* marks the default foreground):")
	for idx, entry := range editor.Palette() {
		marker := " "
		if entry.Color == fg {
			marker = "*"
		}
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", entry.Color.R, entry.Color.G, entry.Color.B)
		fmt.Fprintf(c.stdout, "%s %2d: %-12s %s %s\n", marker, idx, entry.Name, formatColor(entry.Color), block)
	}
	return nil
}

func (c *colorsCmd) Program() string {
	return c.root.Program() + " colors"
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type brushesCmd struct {
	*root
	fs     *flag.FlagSet
	stdout io.Writer
}

func parseBrushesCmd(args []string, r *root) (*brushesCmd, error) {
	fs := flag.NewFlagSet("brushes", flag.ExitOnError)
	cmd := &brushesCmd{root: r, fs: fs, stdout: os.Stdout}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *brushesCmd) Run() error {
	fmt.Fprintln(c.stdout, "brush sizes (* marks the default):")
	for idx, size := range editor.BrushSizes() {
		marker := " "
		if size == editor.DefaultBrushSize {
			marker = "*"
		}
		fmt.Fprintf(c.stdout, "%s %d: %3dpx  eraser %3dpx  text %3dpx\n", marker, idx+1, size, size*editor.EraserScale, size*editor.TextScale)
	}
	return nil
}

func (c *brushesCmd) Program() string {
	return c.root.Program() + " brushes"
}

func (c *brushesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
