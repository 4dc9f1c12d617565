// Package export serializes a finished canvas into a standard image file
// or a single-page PDF.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
)

// DefaultFilename is used when the user gives no output path.
const DefaultFilename = "masterpiece.png"

// ErrUnsupportedFormat is returned for file extensions with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported export format")

type Format int

const (
	PNG Format = iota
	JPEG
	BMP
	GIF
	TIFF
	PDF
)

var formatNames = map[Format]string{
	PNG:  "png",
	JPEG: "jpeg",
	BMP:  "bmp",
	GIF:  "gif",
	TIFF: "tiff",
	PDF:  "pdf",
}

func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// FormatFromFilename picks a format from the extension of name. A name
// without an extension is treated as PNG.
func FormatFromFilename(name string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return PNG, nil
	}
	if ext == "pdf" {
		return PDF, nil
	}
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedFormat)
	}
	switch f {
	case imaging.PNG:
		return PNG, nil
	case imaging.JPEG:
		return JPEG, nil
	case imaging.BMP:
		return BMP, nil
	case imaging.GIF:
		return GIF, nil
	case imaging.TIFF:
		return TIFF, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedFormat)
}

func (f Format) imaging() (imaging.Format, bool) {
	switch f {
	case PNG:
		return imaging.PNG, true
	case JPEG:
		return imaging.JPEG, true
	case BMP:
		return imaging.BMP, true
	case GIF:
		return imaging.GIF, true
	case TIFF:
		return imaging.TIFF, true
	}
	return 0, false
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	if f == PDF {
		return encodePDF(w, img)
	}
	imgFmt, ok := f.imaging()
	if !ok {
		return fmt.Errorf("export %s: %w", f, ErrUnsupportedFormat)
	}
	if err := imaging.Encode(w, img, imgFmt, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("export %s: %w", f, err)
	}
	return nil
}

// encodePDF wraps the image in a one-page document measured at one
// point per pixel.
func encodePDF(w io.Writer, img image.Image) error {
	var raw bytes.Buffer
	if err := png.Encode(&raw, img); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	b := img.Bounds()
	wd, ht := float64(b.Dx()), float64(b.Dy())

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: wd, Ht: ht},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", opts, &raw)
	pdf.ImageOptions("canvas", 0, 0, wd, ht, false, opts, 0, "")
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	return nil
}

// Save encodes img into path, choosing the format from its extension.
func Save(path string, img image.Image) (err error) {
	f, err := FormatFromFilename(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()
	return Encode(out, img, f)
}
