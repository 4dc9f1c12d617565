package editor

import "unicode"

// KeyCode names the non-printing keys the editor reacts to.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
)

// Key is a key press translated by the host.
type Key struct {
	Code  KeyCode
	Rune  rune
	Shift bool
	// Ctrl is set for Control, and for Command on hosts that use it.
	Ctrl bool
}

// Key handles a key press and reports whether the editor consumed it.
// Ctrl+Z undoes. While text entry is open every other key edits the
// entry: Enter commits, Shift+Enter inserts a newline, Escape discards.
func (e *Editor) Key(k Key) bool {
	if k.Ctrl && unicode.ToLower(k.Rune) == 'z' {
		e.Undo()
		return true
	}
	if e.text == nil {
		return false
	}
	switch k.Code {
	case KeyEnter:
		if k.Shift {
			e.InsertText("\n")
		} else {
			e.CommitText()
		}
		return true
	case KeyEscape:
		e.CancelText()
		return true
	case KeyBackspace:
		e.Backspace()
		return true
	}
	if k.Ctrl || k.Rune <= 0 || !unicode.IsPrint(k.Rune) {
		return false
	}
	e.InsertText(string(k.Rune))
	return true
}
