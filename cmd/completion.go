// Package cmd provides command-line interface implementations for docparse.
// This file contains shell completion predictors, providing context-aware
// suggestions for tab completion in supported shells (bash, zsh, fish).
package cmd

import (
	"os"
	"path/filepath"

	"github.com/posener/complete"
)

// PredictDocFiles returns a predictor that suggests doc comment files
// (matching docExtension) found under the current working directory.
func PredictDocFiles(docExtension string) complete.Predictor {
	return complete.PredictFunc(func(_ complete.Args) []string {
		wd, err := os.Getwd()
		if err != nil {
			return nil
		}

		var matches []string
		_ = filepath.Walk(wd, func(path string, info os.FileInfo, walkErr error) error {
			if walkErr != nil || info.IsDir() {
				return nil
			}
			if filepath.Ext(path) == docExtension {
				if rel, relErr := filepath.Rel(wd, path); relErr == nil {
					matches = append(matches, rel)
				}
			}

			return nil
		})

		return matches
	})
}
