package cmd

import (
	kongcompletion "github.com/jotaen/kong-completion"
)

// CLI represents the root command structure for Kong.
type CLI struct {
	Parse      ParseCmd                  `cmd:"" help:"Parse doc comment files and print diagnostics"`
	Inspect    InspectCmd                `cmd:"" help:"Browse a parsed doc comment tree interactively"`
	Watch      WatchCmd                  `cmd:"" help:"Re-parse doc comment files on save"`
	Version    VersionCmd                `cmd:"" help:"Show version info"`
	Completion kongcompletion.Completion `cmd:"" help:"Generate shell completions"`
}
