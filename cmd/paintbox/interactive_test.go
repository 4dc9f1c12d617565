package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/paintbox/internal/config"
	"github.com/example/paintbox/internal/editor"
)

func newTestSession(t *testing.T) (*interactiveCmd, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	i := newInteractiveCmd(&root{config: config.New()})
	i.stdout = &out
	i.stderr = &out
	i.ed = editor.New(30, 30, editor.WithBrushSize(1))
	return i, &out
}

func TestInteractiveScript(t *testing.T) {
	i, out := newTestSession(t)
	path := filepath.Join(t.TempDir(), "out.png")
	script := strings.Join([]string{
		"# draw a box and a label",
		"tool rect",
		"down 2 2",
		"move 10 10",
		"up 10 10",
		"tool text",
		"down 12 12",
		"type hi",
		"status",
		"enter",
		"export " + path,
		"undo",
		"undo",
		"undo",
	}, "\n")
	if err := i.runScript(strings.NewReader(script)); err != nil {
		t.Fatalf("script: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected export: %v", err)
	}
	for _, want := range []string{`"hi"`, "saved " + path, "nothing to undo"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected output to contain %q, got %q", want, out.String())
		}
	}
	if d := i.ed.UndoDepth(); d != 0 {
		t.Fatalf("expected empty history, got %d", d)
	}
}

func TestInteractiveSecondaryButtonUsesBackground(t *testing.T) {
	i, _ := newTestSession(t)
	for _, line := range []string{"fg red", "bg blue", "tool pencil", "down 3 3 secondary", "up 3 3"} {
		if _, err := i.executeLine(line); err != nil {
			t.Fatalf("%s: %v", line, err)
		}
	}
	if got := i.ed.At(3, 3); got != i.ed.Background() {
		t.Fatalf("expected background color, got %v", got)
	}
}

func TestInteractiveScriptReportsLine(t *testing.T) {
	i, _ := newTestSession(t)
	err := i.runScript(strings.NewReader("swap\nbogus 1 2\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 error, got %v", err)
	}
}

func TestInteractiveExecStopsAtExit(t *testing.T) {
	i, _ := newTestSession(t)
	i.execs = commandList{"brush 5", "exit", "brush 8"}
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if got := i.ed.BrushSize(); got != 5 {
		t.Fatalf("expected brush 5, got %d", got)
	}
}

func TestInteractiveCommandErrors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"type hello", "no text entry is open"},
		{"tool lasso", "lasso"},
		{"brush 4", "invalid brush size"},
		{"resize 0 10", "invalid size"},
		{"rotate 45", "rotate 90|180"},
		{"down 1", "usage: down"},
		{"draw", "unknown command"},
	}
	for _, tt := range tests {
		i, _ := newTestSession(t)
		if _, err := i.executeLine(tt.line); err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("%q: expected error containing %q, got %v", tt.line, tt.want, err)
		}
	}
}

func TestInteractiveREPLKeepsGoingAfterErrors(t *testing.T) {
	i, out := newTestSession(t)
	i.stdin = strings.NewReader("bogus\nbrush 8\nexit\nbrush 1\n")
	if err := i.Run(); err != nil {
		t.Fatal(err)
	}
	if got := i.ed.BrushSize(); got != 8 {
		t.Fatalf("expected brush 8, got %d", got)
	}
	if strings.Contains(out.String(), "> ") {
		t.Fatalf("prompt printed for non-terminal input: %q", out.String())
	}
}
