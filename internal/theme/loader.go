package theme

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EmbeddedThemes holds the themes shipped with the binary.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Loader finds themes by name or path.
type Loader struct {
	ConfigDir string
	SystemDir string
}

// NewLoader creates a Loader with the standard per-user and system paths.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "paintbox", "themes"),
		SystemDir: "/usr/share/paintbox/themes",
	}
}

// Load resolves name in this order: an existing file path, the embedded
// defaults, ConfigDir, then SystemDir. An empty name returns Default.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	filename := name
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}
	sources := []func() (fs.File, error){
		func() (fs.File, error) { return os.Open(name) },
		func() (fs.File, error) { return EmbeddedThemes.Open("defaults/" + filename) },
		func() (fs.File, error) { return os.Open(filepath.Join(l.ConfigDir, filename)) },
		func() (fs.File, error) { return os.Open(filepath.Join(l.SystemDir, filename)) },
	}
	for _, open := range sources {
		f, err := open()
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		t, err := parseFile(f)
		if err == nil {
			return t, nil
		}
		return nil, fmt.Errorf("theme %s: %w", name, err)
	}
	return nil, fmt.Errorf("theme '%s' not found", name)
}

func parseFile(f fs.File) (*Theme, error) {
	defer f.Close()
	if st, err := f.Stat(); err == nil && st.IsDir() {
		return nil, fmt.Errorf("is a directory")
	}
	return Parse(f)
}

// Embedded returns the names of the built-in themes.
func Embedded() []string {
	entries, _ := fs.ReadDir(EmbeddedThemes, "defaults")
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".theme"))
	}
	sort.Strings(names)
	return names
}
