package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/paintbox/internal/config"
	"github.com/example/paintbox/internal/editor"
	"github.com/example/paintbox/internal/export"
	"github.com/example/paintbox/internal/notify"
	"github.com/example/paintbox/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

const (
	defaultWidth  = 640
	defaultHeight = 480
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	saveAlerts  bool
	copyAlerts  bool
	themeName   string
	activeTheme *theme.Theme
}

func (r *root) Program() string {
	if r == nil || r.program == "" {
		return "paintbox"
	}
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("paintbox", flag.ExitOnError),
		program:  "paintbox",
		notifier: notify.New(prefs),
		config:   cfg,
	}
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving an image")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme for the window (default, dark, classic)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}
	r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "open":
		cmd, err = parseOpenCmd(subArgs, r)
	case "draw":
		cmd, err = parseDrawCmd(subArgs, r)
	case "interactive":
		cmd, err = parseInteractiveCmd(subArgs, r)
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r)
	case "brushes":
		cmd, err = parseBrushesCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// resolveTheme picks the window theme from the flag, PAINTBOX_THEME, the
// config file and finally the built-in default.
func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("PAINTBOX_THEME")
	}
	if name == "" && r.config != nil {
		name = r.config.Theme
	}
	if r != nil && r.config != nil {
		if t, ok := r.config.Themes[name]; ok {
			return t
		}
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		if name != "" && name != "default" {
			fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		}
		return theme.Default()
	}
	return t
}

// canvasSize returns the configured canvas size, letting explicit flag
// values win.
func (r *root) canvasSize(width, height int) (int, int) {
	if width <= 0 && r != nil && r.config != nil {
		width = r.config.Width
	}
	if height <= 0 && r != nil && r.config != nil {
		height = r.config.Height
	}
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// defaultOutput is the export path used when no -output is given.
func (r *root) defaultOutput() string {
	name := export.DefaultFilename
	dir := ""
	if r != nil && r.config != nil {
		if r.config.Output != "" {
			name = r.config.Output
		}
		dir = r.config.SaveDir
	}
	if dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// editorOptions turns the configured brush and colors into editor options.
// Explicit values passed by a subcommand override the config.
func (r *root) editorOptions(brush int, fg, bg string) ([]editor.Option, error) {
	if r != nil && r.config != nil {
		if brush <= 0 {
			brush = r.config.Brush
		}
		if fg == "" {
			fg = r.config.Foreground
		}
		if bg == "" {
			bg = r.config.Background
		}
	}
	var opts []editor.Option
	if brush > 0 {
		if !editor.ValidBrushSize(brush) {
			return nil, fmt.Errorf("invalid brush size %d (valid: %s)", brush, brushList())
		}
		opts = append(opts, editor.WithBrushSize(brush))
	}
	if fg != "" {
		c, err := parseColor(fg)
		if err != nil {
			return nil, fmt.Errorf("foreground: %w", err)
		}
		opts = append(opts, editor.WithForeground(c))
	}
	if bg != "" {
		c, err := parseColor(bg)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		opts = append(opts, editor.WithBackground(c))
	}
	return opts, nil
}

func brushList() string {
	var parts []string
	for _, n := range editor.BrushSizes() {
		parts = append(parts, fmt.Sprint(n))
	}
	return strings.Join(parts, ", ")
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func (r *root) notifySave(path string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Save(path)
}

func (r *root) notifyCopy(detail string, img image.Image) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Copy(detail, img)
}
