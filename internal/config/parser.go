package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/paintbox/internal/theme"
)

// Parse reads configuration from an io.Reader. Lines are "key = value"
// or "key: value"; "[notify]" and "[theme.<name>]" open sections.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var section string
	var current *theme.Theme

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			current = nil
			if name, ok := strings.CutPrefix(section, "theme."); ok {
				current = theme.Default()
				current.Name = name
				cfg.Themes[name] = current
			}
			continue
		}

		sep := strings.IndexAny(line, "=:")
		if sep < 0 {
			continue
		}
		key := strings.TrimSpace(line[:sep])
		value := strings.Trim(strings.TrimSpace(line[sep+1:]), `"`)

		var err error
		switch {
		case current != nil:
			err = current.Set(key, value)
		case section == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		case section == "":
			err = setRootField(cfg, key, value)
		}
		if err != nil {
			name := section
			if name == "" {
				name = "root"
			}
			return nil, fmt.Errorf("line %d: error in section [%s]: %w", lineNo, name, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "save_dir":
		cfg.SaveDir = value
	case "output":
		cfg.Output = value
	case "foreground":
		cfg.Foreground = value
	case "background":
		cfg.Background = value
	case "width":
		return setPositive(&cfg.Width, key, value)
	case "height":
		return setPositive(&cfg.Height, key, value)
	case "brush":
		return setPositive(&cfg.Brush, key, value)
	}
	return nil
}

func setPositive(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid number for key %s: %w", key, err)
	}
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", key, n)
	}
	*dst = n
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}
