// Package clipboard publishes the canvas to the system clipboard.
package clipboard

import "errors"

var (
	// ErrNoDisplay means no X11 or Wayland session is reachable.
	ErrNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
	// ErrUnsupported means this build has no clipboard backend.
	ErrUnsupported = errors.New("clipboard image operations are not supported in this build")
)
