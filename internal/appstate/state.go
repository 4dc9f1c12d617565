// Package appstate hosts the editor in a shiny window: it draws the tool
// and palette chrome and feeds pointer, key and focus events to the
// editor core.
package appstate

import (
	"image"
	"log"
	"sync"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/paintbox/internal/editor"
	"github.com/example/paintbox/internal/export"
	"github.com/example/paintbox/internal/notify"
	"github.com/example/paintbox/internal/theme"
)

// DefaultTitle is the window title used when none is configured.
const DefaultTitle = "Paintbox"

// AppState holds application configuration for the UI.
type AppState struct {
	editor   *editor.Editor
	output   string
	theme    *theme.Theme
	title    string
	notifier *notify.Notifier

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithEditor sets the editor shown in the window.
func WithEditor(e *editor.Editor) Option { return func(a *AppState) { a.editor = e } }

// WithOutput sets the file path used when saving. The extension picks the
// format.
func WithOutput(out string) Option { return func(a *AppState) { a.output = out } }

// WithTheme sets the chrome colours.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.theme = t } }

// WithTitle sets the window title.
func WithTitle(title string) Option { return func(a *AppState) { a.title = title } }

// WithNotifier enables desktop notifications after save and copy.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.notifier = n } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		output: export.DefaultFilename,
		title:  DefaultTitle,
	}
	for _, o := range opts {
		o(a)
	}
	if a.editor == nil {
		a.editor = editor.New(640, 480)
	}
	if a.theme == nil {
		a.theme = theme.Default()
	}
	return a
}

// Editor returns the editor shown by the window.
func (a *AppState) Editor() *editor.Editor { return a.editor }

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main runs the event loop on an existing screen until the window closes
// or the user quits.
func (a *AppState) Main(s screen.Screen) {
	h := newHost(a)
	width, height := windowSize(a.editor.Width(), a.editor.Height())
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: a.title})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer w.Release()
	defer a.notifyClose()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			repaint, quit := h.lifecycle(e)
			if quit {
				return
			}
			if repaint {
				w.Send(paint.Event{})
			}
		case size.Event:
			h.resize(e.WidthPx, e.HeightPx)
			w.Send(paint.Event{})
		case paint.Event:
			h.paint(s, w)
		case mouse.Event:
			if h.mouse(e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			repaint := h.key(e)
			if h.quit {
				return
			}
			if repaint {
				w.Send(paint.Event{})
			}
		case error:
			log.Print(e)
		}
	}
}

func (h *host) paint(s screen.Screen, w screen.Window) {
	if h.width <= 0 || h.height <= 0 {
		return
	}
	b, err := s.NewBuffer(image.Pt(h.width, h.height))
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	h.render(b.RGBA())
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
