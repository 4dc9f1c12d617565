package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/paintbox/internal/config"
)

type configCmd struct {
	*root
	fs     *flag.FlagSet
	stdout io.Writer
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	c := &configCmd{root: r, fs: fs, stdout: os.Stdout}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c}
	}

	switch args[0] {
	case "print":
		return c.runPrint()
	case "save":
		return c.runSave()
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

func (c *configCmd) runPrint() error {
	_, err := io.WriteString(c.stdout, c.root.config.String())
	return err
}

func (c *configCmd) runSave() error {
	loader := config.NewLoader(version, configPathOverride)
	path, err := loader.Save(c.root.config)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", path)
	return nil
}

func (c *configCmd) Program() string {
	return c.root.Program() + " config"
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
