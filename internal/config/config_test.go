package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/art
output: "sketch.png"
width = 800
height = 600
brush = 5
foreground = navy
background = #FFEEDD

[notify]
save = true
copy = false

[theme.my_custom_theme]
Workspace = #111111
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/art" {
		t.Errorf("Expected save_dir '/tmp/art', got '%s'", cfg.SaveDir)
	}
	if cfg.Output != "sketch.png" {
		t.Errorf("Expected output 'sketch.png', got %q", cfg.Output)
	}
	if cfg.Width != 800 || cfg.Height != 600 || cfg.Brush != 5 {
		t.Errorf("Unexpected size/brush: %d x %d brush %d", cfg.Width, cfg.Height, cfg.Brush)
	}
	if cfg.Foreground != "navy" || cfg.Background != "#FFEEDD" {
		t.Errorf("Unexpected colors: %q %q", cfg.Foreground, cfg.Background)
	}
	if !cfg.Notify.Save {
		t.Error("Expected notify.save to be true")
	}
	if cfg.Notify.Copy {
		t.Error("Expected notify.copy to be false")
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Workspace.R != 0x11 || th.Workspace.G != 0x11 || th.Workspace.B != 0x11 {
		t.Errorf("Unexpected Workspace color: %+v", th.Workspace)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bad bool", "[notify]\nsave = maybe\n", "[notify]"},
		{"bad width", "width = wide\n", "[root]"},
		{"negative brush", "brush = -2\n", "must be positive"},
		{"bad theme color", "[theme.x]\nWorkspace = red\n", "[theme.x]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/art
width = 640
brush = 3

[notify]
save = true
copy = false

[theme.custom]
Name = custom
Workspace = #000000
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	generated := cfg.String()

	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.SaveDir != cfg2.SaveDir {
		t.Errorf("SaveDir mismatch: %q vs %q", cfg.SaveDir, cfg2.SaveDir)
	}
	if cfg.Width != cfg2.Width || cfg.Brush != cfg2.Brush || cfg2.Height != 0 {
		t.Errorf("numeric mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderOverrideAndSave(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "paintbox.rc")
	l := NewLoader("v1.0.0", path)

	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load without file: %v", err)
	}
	if cfg.Theme != "" {
		t.Errorf("expected defaults, got theme %q", cfg.Theme)
	}

	cfg.Theme = "classic"
	cfg.Brush = 8
	written, err := l.Save(cfg)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if written != path {
		t.Errorf("Save wrote %q, want %q", written, path)
	}

	loaded, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Theme != "classic" || loaded.Brush != 8 {
		t.Errorf("unexpected config after reload: %+v", loaded)
	}
}

func TestLoaderDevRC(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".paintboxrc"), []byte("theme = dark\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := NewLoader("dev", "").GetConfigPath(); got != filepath.Join(dir, ".paintboxrc") {
		t.Errorf("dev build should read ./.paintboxrc, got %q", got)
	}
	if got := NewLoader("v1.0.0", "").GetConfigPath(); got != "" {
		t.Errorf("release build should ignore ./.paintboxrc, got %q", got)
	}
}
