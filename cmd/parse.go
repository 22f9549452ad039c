// Package cmd provides command-line interface implementations for docparse.
// This file contains the parse command: run a doc comment body through the
// parser and report diagnostics, optionally dumping the resulting tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/connerohnesorge/docparser/internal/config"
	"github.com/connerohnesorge/docparser/internal/docparser"
)

// ParseCmd parses one or more files as doc-comment bodies and reports the
// diagnostics produced. Each file is parsed independently, starting at
// line 1 — a higher layer that extracts comment blocks from source files
// is expected to set StartLine accordingly when embedding this package.
type ParseCmd struct {
	Files []string `arg:"" help:"Doc comment files to parse" type:"path" predictor:"docfile"`
	Tree  bool     `help:"Print the parsed tree for each file" name:"tree"`

	// fs backs file access so tests can substitute an in-memory afero.Fs
	// instead of touching the real filesystem; unset (the Kong-constructed
	// default) falls back to the OS filesystem, matching internal/config's
	// Load/LoadFS split.
	fs afero.Fs
}

// filesystem returns the afero.Fs file reads go through, defaulting to the
// real OS filesystem the first time it's needed.
func (c *ParseCmd) filesystem() afero.Fs {
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}

	return c.fs
}

// Run executes the parse command.
func (c *ParseCmd) Run() error {
	cfg, err := loadProjectConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "docparse: %v\n", err)
		cfg = &config.Config{}
	}

	failed := false
	for _, path := range c.Files {
		if !c.parseOne(path, cfg) {
			failed = true
		}
	}

	if failed {
		return fmt.Errorf("one or more files had errors")
	}

	return nil
}

func (c *ParseCmd) parseOne(path string, cfg *config.Config) bool {
	data, err := afero.ReadFile(c.filesystem(), path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)

		return false
	}

	tree, diags := docparser.ParseDoc(path, 1, string(data), docparser.WithRegistry(seededRegistry(cfg)))

	ok := true
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.String())
		if d.Severity == docparser.SeverityError {
			ok = false
		}
	}

	if c.Tree || os.Getenv("DOCPARSER_DEBUG") == "tree" {
		docparser.Dump(os.Stdout, tree, tree.Root())
	}

	return ok
}
