//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && cgo

package clipboard

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"sync"

	"golang.design/x/clipboard"

	"github.com/example/paintbox/internal/export"
)

var (
	initOnce sync.Once
	initErr  error
)

func ensureInit() error {
	initOnce.Do(func() {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			initErr = ErrNoDisplay
			return
		}
		initErr = clipboard.Init()
	})
	return initErr
}

// WriteImage publishes img to the clipboard as PNG.
func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.Encode(&buf, img, export.PNG); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	return nil
}
