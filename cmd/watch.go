package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/connerohnesorge/docparser/internal/config"
	"github.com/connerohnesorge/docparser/internal/docparser"
	"github.com/connerohnesorge/docparser/internal/watch"
)

// WatchCmd re-parses doc comment files under a directory tree whenever
// they change on disk, printing fresh diagnostics after each save.
type WatchCmd struct {
	Dir string `arg:"" help:"Directory to watch" type:"path" default:"."`
	Ext string `help:"File extension to watch" default:".dox"`

	// fs backs the re-parse file read so tests can substitute an in-memory
	// afero.Fs; unset falls back to the OS filesystem. fsnotify itself still
	// watches the real filesystem — only the post-event read is mockable.
	fs afero.Fs
}

// filesystem returns the afero.Fs reparse reads go through, defaulting to
// the real OS filesystem the first time it's needed.
func (c *WatchCmd) filesystem() afero.Fs {
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}

	return c.fs
}

// Run executes the watch command. It blocks until interrupted.
func (c *WatchCmd) Run() error {
	cfg, err := loadProjectConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "docparse: %v\n", err)
		cfg = &config.Config{}
	}

	w, err := watch.New([]string{c.Dir}, c.Ext)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	fmt.Fprintf(os.Stdout, "watching %s for *%s changes (ctrl-c to stop)\n", c.Dir, c.Ext)

	for {
		select {
		case path := <-w.Events():
			c.reparse(path, cfg)

		case err := <-w.Errors():
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)

		case <-sigCh:
			return nil
		}
	}
}

func (c *WatchCmd) reparse(path string, cfg *config.Config) {
	data, err := afero.ReadFile(c.filesystem(), path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)

		return
	}

	_, diags := docparser.ParseDoc(path, 1, string(data), docparser.WithRegistry(seededRegistry(cfg)))

	fmt.Fprintf(os.Stdout, "--- %s ---\n", path)
	if len(diags) == 0 {
		fmt.Fprintln(os.Stdout, "ok")

		return
	}
	for _, d := range diags {
		fmt.Fprintln(os.Stdout, d.String())
	}
}
