package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/example/paintbox/internal/config"
)

func newTestRoot() *root {
	r := newRoot()
	r.config = config.New()
	r.notifier = nil
	return r
}

func TestRunWithoutCommandIsUsageError(t *testing.T) {
	r := newTestRoot()
	err := r.Run(nil)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if want := "Usage: paintbox"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected help to contain %q, got %q", want, err.Error())
	}
	if want := "-theme"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected help to list flags, got %q", err.Error())
	}
}

func TestUnknownCommandIsUsageError(t *testing.T) {
	r := newTestRoot()
	var uerr *UsageError
	if err := r.Run([]string{"paint"}); !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestParseDrawRequiresOutputForBlankCanvas(t *testing.T) {
	_, err := parseDrawCmd([]string{"line", "0", "0", "1", "1"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "output file is required"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestParseDrawWithoutActionShowsHelp(t *testing.T) {
	_, err := parseDrawCmd(nil, nil)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if want := "Usage: paintbox draw"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected help to contain %q, got %q", want, err.Error())
	}
}

func TestParseDrawArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown action", []string{"-output", "x.png", "arrow", "0", "0", "1", "1"}, "unsupported action"},
		{"missing coordinate", []string{"-output", "x.png", "rect", "0", "0", "1"}, "requires 4 numeric arguments"},
		{"bad number", []string{"-output", "x.png", "fill", "a", "0"}, "invalid number"},
		{"odd pencil points", []string{"-output", "x.png", "pencil", "0", "0", "1"}, "pairs"},
		{"empty text", []string{"-output", "x.png", "text", "1", "1", " "}, "cannot be empty"},
		{"bad color", []string{"-output", "x.png", "-color", "notacolor", "fill", "0", "0"}, "invalid color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDrawCmd(tt.args, nil)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error to mention %q, got %v", tt.want, err)
			}
		})
	}
}

func TestDrawRejectsInvalidBrush(t *testing.T) {
	cmd, err := parseDrawCmd([]string{"-brush", "4", "-output", t.TempDir() + "/out.png", "fill", "0", "0"}, nil)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err == nil || !strings.Contains(err.Error(), "invalid brush size") {
		t.Fatalf("expected brush error, got %v", err)
	}
}

func TestDrawMissingInputFile(t *testing.T) {
	cmd, err := parseDrawCmd([]string{"-file", t.TempDir() + "/missing.png", "fill", "0", "0"}, nil)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err == nil || !strings.Contains(err.Error(), "open ") {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestConfigUnknownSubcommand(t *testing.T) {
	cmd, err := parseConfigCmd([]string{"dump"}, newTestRoot())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if err := cmd.Run(); err == nil || !strings.Contains(err.Error(), "unknown config command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}
