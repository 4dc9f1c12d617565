package main

import (
	"flag"
	"fmt"
	"strings"
)

type versionCmd struct{ r *root }

func (v *versionCmd) Run() error {
	parts := []string{fmt.Sprintf("%s version %s", v.r.Program(), version)}
	if commit != "" {
		parts = append(parts, "commit "+commit)
	}
	if date != "" {
		parts = append(parts, "built "+date)
	}
	fmt.Println(strings.Join(parts, ", "))
	return nil
}

func (v *versionCmd) Program() string {
	return v.r.Program() + " version"
}

func (v *versionCmd) FlagSet() *flag.FlagSet {
	return nil
}
