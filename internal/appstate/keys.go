package appstate

import (
	"unicode"

	"golang.org/x/mobile/event/key"

	"github.com/example/paintbox/internal/editor"
)

// KeyShortcut describes a keyboard combination that triggers an action.
// Printable keys match on Rune, the rest on Code.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// commandModifiers are the modifiers that take part in shortcut matching.
// Meta is folded into Control so Command works on macOS keyboards.
func commandModifiers(m key.Modifiers) key.Modifiers {
	if m&key.ModMeta != 0 {
		m |= key.ModControl
	}
	return m & key.ModControl
}

// shortcutFor normalises a key event into the form used by the
// keyboard map.
func shortcutFor(e key.Event) KeyShortcut {
	mods := commandModifiers(e.Modifiers)
	if e.Rune > 0 && unicode.IsPrint(e.Rune) {
		return KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: mods}
	}
	return KeyShortcut{Code: e.Code, Modifiers: mods}
}

// editorKey translates a key event for the editor core.
func editorKey(e key.Event) editor.Key {
	k := editor.Key{
		Rune:  e.Rune,
		Shift: e.Modifiers&key.ModShift != 0,
		Ctrl:  commandModifiers(e.Modifiers) != 0,
	}
	switch e.Code {
	case key.CodeReturnEnter, key.CodeKeypadEnter:
		k.Code = editor.KeyEnter
	case key.CodeEscape:
		k.Code = editor.KeyEscape
	case key.CodeDeleteBackspace:
		k.Code = editor.KeyBackspace
	}
	if k.Code != editor.KeyNone {
		k.Rune = 0
	}
	return k
}

func shortcutRune(t editor.Tool) rune {
	switch t {
	case editor.Pencil:
		return 'P'
	case editor.Eraser:
		return 'E'
	case editor.Fill:
		return 'F'
	case editor.Line:
		return 'L'
	case editor.Rectangle:
		return 'R'
	case editor.Ellipse:
		return 'O'
	case editor.ColorPicker:
		return 'I'
	case editor.Text:
		return 'T'
	}
	return '?'
}
