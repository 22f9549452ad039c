package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func writeDocFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}

	return path
}

func TestParseCmdRun_CleanFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDocFile(t, dir, "clean.dox", "A simple paragraph with no markup.\n")

	cmd := &ParseCmd{Files: []string{path}}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil for a clean file", err)
	}
}

func TestParseCmdRun_MissingFile(t *testing.T) {
	cmd := &ParseCmd{Files: []string{filepath.Join(t.TempDir(), "missing.dox")}}
	if err := cmd.Run(); err == nil {
		t.Fatal("Run() error = nil, want error for a missing file")
	}
}

func TestParseCmdRun_MultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeDocFile(t, dir, "a.dox", "First file.\n")
	b := writeDocFile(t, dir, "b.dox", "Second file.\n")

	cmd := &ParseCmd{Files: []string{a, b}}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestParseCmdRun_MemMapFilesystem(t *testing.T) {
	memFs := afero.NewMemMapFs()
	if err := afero.WriteFile(memFs, "/doc/widget.dox", []byte("A simple paragraph.\n"), 0o644); err != nil {
		t.Fatalf("failed to seed mem-fs: %v", err)
	}

	cmd := &ParseCmd{Files: []string{"/doc/widget.dox"}, fs: memFs}
	if err := cmd.Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil for a file that only exists on the mem-fs", err)
	}
}
