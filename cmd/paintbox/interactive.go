package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/example/paintbox/internal/appstate"
	"github.com/example/paintbox/internal/clipboard"
	"github.com/example/paintbox/internal/editor"
	"github.com/example/paintbox/internal/export"
)

type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, ";")
}

func (c *commandList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

// interactiveCmd drives an editor from typed commands.
type interactiveCmd struct {
	r      *root
	fs     *flag.FlagSet
	execs  commandList
	script string
	width  int
	height int

	ed     *editor.Editor
	output string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	fs := flag.NewFlagSet("interactive", flag.ExitOnError)
	i := newInteractiveCmd(r)
	i.fs = fs
	fs.Usage = usageFunc(i)
	fs.Var(&i.execs, "e", "execute a command and exit (may be specified multiple times)")
	fs.StringVar(&i.script, "f", "", "read commands from a script file")
	fs.IntVar(&i.width, "width", 0, "canvas width")
	fs.IntVar(&i.height, "height", 0, "canvas height")
	fs.StringVar(&i.output, "output", i.output, "file written by export without an argument")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: i}
	}
	return i, nil
}

func newInteractiveCmd(r *root) *interactiveCmd {
	return &interactiveCmd{
		r:      r,
		output: r.defaultOutput(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

func (i *interactiveCmd) Program() string {
	return i.r.Program() + " interactive"
}

func (i *interactiveCmd) FlagSet() *flag.FlagSet {
	return i.fs
}

func (i *interactiveCmd) Run() error {
	if i.ed == nil {
		opts, err := i.r.editorOptions(0, "", "")
		if err != nil {
			return err
		}
		w, h := i.r.canvasSize(i.width, i.height)
		i.ed = editor.New(w, h, opts...)
	}
	if len(i.execs) > 0 {
		for _, cmd := range i.execs {
			done, err := i.executeLine(cmd)
			if err != nil {
				return err
			}
			if done {
				break
			}
		}
		return nil
	}
	if i.script != "" {
		f, err := os.Open(i.script)
		if err != nil {
			return err
		}
		defer f.Close()
		return i.runScript(f)
	}
	return i.repl()
}

// runScript executes every line of r and stops at the first error.
func (i *interactiveCmd) runScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		done, err := i.executeLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if done {
			return nil
		}
	}
	return scanner.Err()
}

func (i *interactiveCmd) repl() error {
	prompt := false
	if f, ok := i.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		prompt = true
		fmt.Fprintln(i.stdout, "Enter commands (type 'help' for a list, 'exit' to quit)")
	}
	scanner := bufio.NewScanner(i.stdin)
	for {
		if prompt {
			fmt.Fprint(i.stdout, "> ")
		}
		if !scanner.Scan() {
			break
		}
		done, err := i.executeLine(scanner.Text())
		if err != nil {
			fmt.Fprintln(i.stderr, err)
		}
		if done {
			break
		}
	}
	return scanner.Err()
}

// executeLine runs a single command and reports whether the session
// should end.
func (i *interactiveCmd) executeLine(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	name, rest, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)
	ed := i.ed

	switch name {
	case "exit", "quit":
		return true, nil
	case "help":
		return false, (&UsageError{of: i}).writeHelp(i.stdout)
	case "tool":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: tool NAME")
		}
		t, err := editor.ParseTool(args[0])
		if err != nil {
			return false, err
		}
		ed.SetTool(t)
	case "brush":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: brush N")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || !ed.SetBrushSize(n) {
			return false, fmt.Errorf("invalid brush size %q (valid: %s)", args[0], brushList())
		}
	case "fg", "bg":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: %s COLOR", name)
		}
		c, err := parseColor(args[0])
		if err != nil {
			return false, err
		}
		if name == "fg" {
			ed.SetForeground(c)
		} else {
			ed.SetBackground(c)
		}
	case "swap":
		ed.SwapColors()
	case "down":
		if len(args) != 2 && len(args) != 3 {
			return false, fmt.Errorf("usage: down X Y [secondary]")
		}
		p, err := parsePoint(args[:2])
		if err != nil {
			return false, err
		}
		button := editor.Primary
		if len(args) == 3 {
			switch strings.ToLower(args[2]) {
			case "primary", "left":
			case "secondary", "right":
				button = editor.Secondary
			default:
				return false, fmt.Errorf("unknown button %q", args[2])
			}
		}
		ed.PointerDown(p, button)
	case "move", "up", "hover":
		p, err := parsePoint(args)
		if err != nil {
			return false, fmt.Errorf("usage: %s X Y", name)
		}
		switch name {
		case "move":
			ed.PointerMove(p)
		case "up":
			ed.PointerUp(p)
		default:
			ed.Hover(p)
		}
	case "type":
		if _, ok := ed.PendingText(); !ok {
			return false, fmt.Errorf("no text entry is open; select the text tool and press down first")
		}
		ed.InsertText(unescapeText(rest))
	case "enter":
		ed.CommitText()
	case "escape":
		ed.CancelText()
	case "undo":
		if !ed.Undo() {
			fmt.Fprintln(i.stdout, "nothing to undo")
		}
	case "new":
		ed.NewCanvas()
	case "resize":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: resize W H")
		}
		w, errW := strconv.Atoi(args[0])
		h, errH := strconv.Atoi(args[1])
		if errW != nil || errH != nil || w <= 0 || h <= 0 {
			return false, fmt.Errorf("invalid size %s x %s", args[0], args[1])
		}
		ed.Resize(w, h)
	case "flip":
		switch strings.Join(args, " ") {
		case "h", "horizontal":
			ed.FlipHorizontal()
		case "v", "vertical":
			ed.FlipVertical()
		default:
			return false, fmt.Errorf("usage: flip h|v")
		}
	case "rotate":
		switch strings.Join(args, " ") {
		case "90":
			ed.Rotate90()
		case "180":
			ed.Rotate180()
		default:
			return false, fmt.Errorf("usage: rotate 90|180")
		}
	case "invert":
		ed.InvertColors()
	case "export", "save":
		path := i.output
		if rest != "" {
			path = rest
		}
		if err := export.Save(path, ed.Image()); err != nil {
			return false, err
		}
		fmt.Fprintf(i.stdout, "saved %s\n", path)
		i.r.notifySave(path)
	case "copy":
		if err := clipboard.WriteImage(ed.Image()); err != nil {
			return false, fmt.Errorf("copy: %w", err)
		}
		fmt.Fprintln(i.stdout, "image copied to clipboard")
		i.r.notifyCopy("canvas", ed.Image())
	case "window":
		opts := []appstate.Option{appstate.WithEditor(ed), appstate.WithOutput(i.output)}
		if i.r != nil {
			opts = append(opts, appstate.WithTheme(i.r.activeTheme), appstate.WithNotifier(i.r.notifier))
		}
		appstate.New(opts...).Run()
	case "status":
		i.printStatus()
	default:
		return false, fmt.Errorf("unknown command %q", name)
	}
	return false, nil
}

func parsePoint(args []string) (editor.Point, error) {
	if len(args) != 2 {
		return editor.Point{}, fmt.Errorf("expected X Y")
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return editor.Point{}, fmt.Errorf("invalid x %q", args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return editor.Point{}, fmt.Errorf("invalid y %q", args[1])
	}
	return editor.Pt(x, y), nil
}

func (i *interactiveCmd) printStatus() {
	ed := i.ed
	fmt.Fprintf(i.stdout, "%s  brush %d  fg %s  bg %s  canvas %dx%d  undo %d\n",
		ed.Status(), ed.BrushSize(), formatColor(ed.Foreground()), formatColor(ed.Background()),
		ed.Width(), ed.Height(), ed.UndoDepth())
	if entry, ok := ed.PendingText(); ok {
		fmt.Fprintf(i.stdout, "text at %g, %g: %q\n", entry.Anchor.X, entry.Anchor.Y, entry.Text)
	}
}
