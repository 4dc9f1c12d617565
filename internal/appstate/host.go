package appstate

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"time"
	"unicode"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/paintbox/internal/clipboard"
	"github.com/example/paintbox/internal/editor"
	"github.com/example/paintbox/internal/export"
)

const messageDuration = 2 * time.Second

// chromeButton is a toolbar or title bar button. active buttons are drawn
// pressed, like the selected tool.
type chromeButton struct {
	*CacheButton
	active func() bool
}

// host translates window events into editor calls and renders frames. It
// owns no window so it can be driven directly.
type host struct {
	app    *AppState
	ed     *editor.Editor
	layout layout
	width  int
	height int

	buttons     []chromeButton
	swatches    []*Swatch
	hover       Button
	hoverSwatch int
	capture     bool

	actions        map[string]func()
	keyboardAction map[KeyShortcut]string

	message      string
	messageUntil time.Time
	now          func() time.Time
	quit         bool
}

func newHost(a *AppState) *host {
	h := &host{
		app:            a,
		ed:             a.editor,
		hoverSwatch:    -1,
		actions:        map[string]func(){},
		keyboardAction: map[KeyShortcut]string{},
		now:            time.Now,
	}
	h.registerActions()
	h.createButtons()
	return h
}

func (h *host) register(name string, keys KeyboardShortcuts, fn func()) {
	h.actions[name] = fn
	if keys != nil {
		for _, sc := range keys.KeyboardShortcuts() {
			h.keyboardAction[sc] = name
		}
	}
}

func ctrl(r rune) shortcutList {
	return shortcutList{{Rune: r, Modifiers: key.ModControl}}
}

func (h *host) registerActions() {
	for _, t := range editor.Tools() {
		h.register(t.String(), shortcutList{{Rune: unicode.ToLower(shortcutRune(t))}}, func() {
			h.ed.SetTool(t)
		})
	}
	for i, size := range editor.BrushSizes() {
		h.register(fmt.Sprintf("brush%d", size), shortcutList{{Rune: rune('1' + i)}}, func() {
			h.ed.SetBrushSize(size)
		})
	}
	h.register("swap", shortcutList{{Rune: 'x'}}, h.ed.SwapColors)
	h.register("undo", ctrl('z'), func() { h.ed.Undo() })
	h.register("new", ctrl('n'), h.ed.NewCanvas)
	h.register("save", ctrl('s'), h.save)
	h.register("copy", ctrl('c'), h.copy)
	h.register("flip-h", ctrl('h'), h.ed.FlipHorizontal)
	h.register("flip-v", ctrl('j'), h.ed.FlipVertical)
	h.register("rotate90", ctrl('r'), h.ed.Rotate90)
	h.register("rotate180", ctrl('t'), h.ed.Rotate180)
	h.register("invert", ctrl('i'), h.ed.InvertColors)
	h.register("quit", shortcutList{{Rune: 'q'}}, func() { h.quit = true })
}

var titleShortcuts = []struct {
	label  string
	action string
}{
	{"^N:New", "new"},
	{"^S:Save", "save"},
	{"^C:Copy", "copy"},
	{"^Z:Undo", "undo"},
	{"^H:Flip H", "flip-h"},
	{"^J:Flip V", "flip-v"},
	{"^R:Rot 90", "rotate90"},
	{"^T:Rot 180", "rotate180"},
	{"^I:Invert", "invert"},
	{"Q:Quit", "quit"},
}

func (h *host) createButtons() {
	th := h.app.theme
	never := func() bool { return false }
	for _, t := range editor.Tools() {
		tb := &ToolButton{tool: t}
		tb.labelButton = labelButton{label: toolLabel(t), theme: th, onSelect: h.actions[t.String()]}
		h.buttons = append(h.buttons, chromeButton{
			CacheButton: &CacheButton{Button: tb},
			active:      func() bool { return h.ed.Tool() == tb.tool },
		})
	}
	for _, size := range editor.BrushSizes() {
		bb := &BrushButton{size: size, ink: th.ButtonText}
		bb.labelButton = labelButton{label: fmt.Sprint(size), theme: th, onSelect: h.actions[fmt.Sprintf("brush%d", size)]}
		h.buttons = append(h.buttons, chromeButton{
			CacheButton: &CacheButton{Button: bb},
			active:      func() bool { return h.ed.BrushSize() == size },
		})
	}
	for _, sc := range titleShortcuts {
		s := &Shortcut{action: sc.action}
		s.labelButton = labelButton{label: sc.label, theme: th, onSelect: h.actions[s.action]}
		h.buttons = append(h.buttons, chromeButton{CacheButton: &CacheButton{Button: s}, active: never})
	}
	for _, pc := range editor.Palette() {
		h.swatches = append(h.swatches, &Swatch{color: pc.Color, name: pc.Name})
	}
}

// resize lays the window out again and fits the canvas to its region.
func (h *host) resize(width, height int) {
	h.width, h.height = width, height
	h.layout = computeLayout(width, height)
	h.ed.Resize(h.layout.canvasSize())

	tools, brushes := len(editor.Tools()), len(editor.BrushSizes())
	x := h.layout.title.Min.X
	for i, b := range h.buttons {
		switch {
		case i < tools:
			b.SetRect(h.layout.toolRect(i))
		case i < tools+brushes:
			b.SetRect(h.layout.brushRect(i - tools))
		default:
			sc := b.Button.(*Shortcut)
			w := labelWidth(sc.label) + 8
			b.SetRect(image.Rect(x, h.layout.title.Min.Y, x+w, h.layout.title.Max.Y))
			x += w
		}
	}
	for i, s := range h.swatches {
		s.rect = h.layout.swatchRect(i)
	}
}

func (h *host) flash(msg string) {
	log.Print(msg)
	h.message = msg
	h.messageUntil = h.now().Add(messageDuration)
}

func (h *host) save() {
	path := h.app.output
	if err := export.Save(path, h.ed.Image()); err != nil {
		log.Printf("save: %v", err)
		h.flash("save failed")
		return
	}
	h.flash("saved " + path)
	if h.app.notifier != nil {
		h.app.notifier.Save(path)
	}
}

func (h *host) copy() {
	img := h.ed.Image()
	if err := clipboard.WriteImage(img); err != nil {
		log.Printf("copy: %v", err)
		h.flash("copy failed")
		return
	}
	h.flash("image copied to clipboard")
	if h.app.notifier != nil {
		h.app.notifier.Copy("canvas", img)
	}
}

func pointerButton(b mouse.Button) (editor.Button, bool) {
	switch b {
	case mouse.ButtonLeft:
		return editor.Primary, true
	case mouse.ButtonRight:
		return editor.Secondary, true
	}
	return 0, false
}

// mouse handles a pointer event and reports whether a repaint is needed.
// Once a gesture starts on the canvas every pointer event goes to the
// editor until the button is released, even outside the canvas.
func (h *host) mouse(e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y))
	cp := h.layout.toCanvas(e.X, e.Y)
	if h.capture {
		switch e.Direction {
		case mouse.DirRelease:
			h.ed.PointerUp(cp)
			h.capture = false
		case mouse.DirNone:
			h.ed.PointerMove(cp)
		}
		return true
	}
	if p.In(h.layout.canvas) {
		h.hover, h.hoverSwatch = nil, -1
		switch e.Direction {
		case mouse.DirPress:
			b, ok := pointerButton(e.Button)
			if !ok {
				return false
			}
			h.ed.PointerDown(cp, b)
			h.capture = h.ed.Drawing()
		case mouse.DirNone:
			h.ed.Hover(cp)
		}
		return true
	}
	return h.chromeMouse(p, e)
}

func (h *host) chromeMouse(p image.Point, e mouse.Event) bool {
	hover := h.buttonAt(p)
	swatch := h.swatchAt(p)
	changed := hover != h.hover || swatch != h.hoverSwatch
	h.hover, h.hoverSwatch = hover, swatch
	if e.Direction != mouse.DirPress {
		return changed
	}
	switch {
	case hover != nil:
		if e.Button != mouse.ButtonLeft {
			return changed
		}
		hover.Activate()
	case swatch >= 0:
		c := h.swatches[swatch].color
		switch e.Button {
		case mouse.ButtonLeft:
			h.ed.SetForeground(c)
		case mouse.ButtonRight:
			h.ed.SetBackground(c)
		default:
			return changed
		}
	case p.In(h.layout.colors):
		h.ed.SwapColors()
	default:
		return changed
	}
	return true
}

// hint describes the hovered control, or returns "" when the pointer is
// not over one.
func (h *host) hint() string {
	var target any
	switch {
	case h.hover != nil:
		target = h.hover
		if cb, ok := h.hover.(*CacheButton); ok {
			target = cb.Button
		}
	case h.hoverSwatch >= 0 && h.hoverSwatch < len(h.swatches):
		target = h.swatches[h.hoverSwatch]
	}
	if hn, ok := target.(hinter); ok {
		return hn.Hint()
	}
	return ""
}

func (h *host) buttonAt(p image.Point) Button {
	for _, b := range h.buttons {
		if p.In(b.Rect()) {
			return b.CacheButton
		}
	}
	return nil
}

func (h *host) swatchAt(p image.Point) int {
	for i, s := range h.swatches {
		if p.In(s.rect) {
			return i
		}
	}
	return -1
}

// key handles a key press. The editor sees it first so typing into a
// text entry never triggers shortcuts.
func (h *host) key(e key.Event) bool {
	if e.Direction == key.DirRelease {
		return false
	}
	handled := h.ed.Key(editorKey(e))
	if !handled {
		action, ok := h.keyboardAction[shortcutFor(e)]
		if !ok {
			return false
		}
		h.actions[action]()
	}
	h.capture = h.capture && h.ed.Drawing()
	return true
}

// lifecycle reports whether a repaint is needed and whether the window is
// going away.
func (h *host) lifecycle(e lifecycle.Event) (repaint, quit bool) {
	if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
		h.ed.Blur()
		h.capture = false
		repaint = true
	}
	if e.To == lifecycle.StageDead {
		h.ed.Blur()
		quit = true
	}
	return repaint, quit
}

func (h *host) stateOf(b chromeButton) ButtonState {
	switch {
	case b.active():
		return StatePressed
	case Button(b.CacheButton) == h.hover:
		return StateHover
	}
	return StateDefault
}

// render draws a complete frame into dst.
func (h *host) render(dst *image.RGBA) {
	th := h.app.theme
	l := h.layout
	fillRect(dst, dst.Bounds(), th.Background)
	fillRect(dst, l.canvas, th.Workspace)

	img := h.ed.Image()
	r := image.Rectangle{Min: l.canvas.Min, Max: l.canvas.Min.Add(img.Rect.Size())}.Intersect(l.canvas)
	draw.Draw(dst, r, img, image.Point{}, draw.Src)
	draw.Draw(dst, r, h.ed.Overlay(), image.Point{}, draw.Over)
	if sub, ok := dst.SubImage(l.canvas).(*image.RGBA); ok {
		h.ed.DrawPendingText(sub, l.canvas.Min)
	}

	fillRect(dst, l.title, th.ToolbarBackground)
	fillRect(dst, l.toolbar, th.ToolbarBackground)
	fillRect(dst, image.Rect(l.toolbar.Max.X-1, l.toolbar.Min.Y, l.toolbar.Max.X, l.toolbar.Max.Y), th.CanvasShadow)
	fillRect(dst, image.Rect(l.title.Min.X, l.title.Max.Y-1, l.title.Max.X, l.title.Max.Y), th.CanvasShadow)
	for _, b := range h.buttons {
		b.Draw(dst, h.stateOf(b))
	}

	fillRect(dst, l.palette, th.ToolbarBackground)
	bg, fg := l.backgroundRect(), l.foregroundRect()
	fillRect(dst, bg, h.ed.Background())
	outline(dst, bg, th.SwatchBorder)
	fillRect(dst, fg, h.ed.Foreground())
	outline(dst, fg, th.SwatchBorder)
	for i, s := range h.swatches {
		s.Draw(dst, th.SwatchBorder, i == h.hoverSwatch)
	}

	fillRect(dst, l.status, th.StatusBackground)
	baseline := l.status.Min.Y + (l.status.Dy()+basicfont.Face7x13.Ascent-basicfont.Face7x13.Descent)/2
	drawLabel(dst, l.status.Min.X+4, baseline, h.ed.Status().String(), th.StatusText)
	right := h.hint()
	if h.message != "" && h.now().Before(h.messageUntil) {
		right = h.message
	}
	if right != "" {
		drawLabel(dst, l.status.Max.X-labelWidth(right)-4, baseline, right, th.StatusText)
	}
}
