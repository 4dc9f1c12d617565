package main

import (
	"bytes"
	"embed"
	"flag"
	"io"
	"log"
	"sync"
	"text/template"
)

//go:embed templates/*.txt
var helpFS embed.FS

var (
	helpOnce sync.Once
	helpTmpl *template.Template
)

func parseHelpTemplates() {
	helpTmpl = template.Must(template.New("").Funcs(map[string]any{
		"flags": func(fs *flag.FlagSet) []flagInfo {
			result := []flagInfo{}
			if fs == nil {
				return result
			}
			fs.VisitAll(func(f *flag.Flag) {
				result = append(result, flagInfo{f.Name, f.DefValue, f.Usage})
			})
			return result
		},
	}).ParseFS(helpFS, "templates/*.txt"))
}

type flagInfo struct {
	Name     string
	DefValue string
	Usage    string
}

type HelpData interface {
	Program() string
	Template() string
	FlagSet() *flag.FlagSet
}

type UsageError struct {
	of HelpData
}

func (e *UsageError) Error() string {
	help, err := e.renderHelp()
	if err != nil {
		return err.Error()
	}
	return help
}

func (e *UsageError) renderHelp() (string, error) {
	helpOnce.Do(parseHelpTemplates)
	var buf bytes.Buffer
	err := helpTmpl.ExecuteTemplate(&buf, e.of.Template(), e.of)
	if err != nil {
		log.Printf("error rendering help template: %v", err)
		return "", err
	}
	return buf.String(), nil
}

func (e *UsageError) writeHelp(w io.Writer) error {
	help, err := e.renderHelp()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, help)
	return err
}

// usageFunc renders the command's help template to the flag set's output.
func usageFunc(h HelpData) func() {
	return func() {
		_ = (&UsageError{of: h}).writeHelp(h.FlagSet().Output())
	}
}

func (r *root) Template() string {
	return "root.txt"
}

func (o *openCmd) Template() string {
	return "open.txt"
}

func (d *drawCmd) Template() string {
	return "draw.txt"
}

func (i *interactiveCmd) Template() string {
	return "interactive.txt"
}

func (c *colorsCmd) Template() string {
	return "colors.txt"
}

func (b *brushesCmd) Template() string {
	return "brushes.txt"
}

func (c *configCmd) Template() string {
	return "config.txt"
}

func (v *versionCmd) Template() string {
	return "version.txt"
}
