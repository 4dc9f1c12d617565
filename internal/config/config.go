package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/paintbox/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Config holds the application configuration. Zero values mean "not set"
// so that flags and environment variables can take precedence.
type Config struct {
	Theme      string
	SaveDir    string
	Output     string
	Width      int
	Height     int
	Brush      int
	Foreground string
	Background string
	Notify     Notify
	Themes     map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	root := []struct {
		key   string
		value string
	}{
		{"theme", c.Theme},
		{"save_dir", c.SaveDir},
		{"output", c.Output},
		{"foreground", c.Foreground},
		{"background", c.Background},
	}
	for _, kv := range root {
		if kv.value != "" {
			fmt.Fprintf(&sb, "%s = %s\n", kv.key, kv.value)
		}
	}
	for _, kv := range []struct {
		key   string
		value int
	}{{"width", c.Width}, {"height", c.Height}, {"brush", c.Brush}} {
		if kv.value > 0 {
			fmt.Fprintf(&sb, "%s = %d\n", kv.key, kv.value)
		}
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		_, _ = c.Themes[name].WriteTo(&sb)
		sb.WriteString("\n")
	}

	return sb.String()
}
