package cmd

import (
	"os"
	"sync"

	"github.com/connerohnesorge/docparser/internal/config"
	"github.com/connerohnesorge/docparser/internal/docparser"
)

var applyAliasesOnce sync.Once

// loadProjectConfig loads docparser.yaml from the current directory
// upward (internal/config's walk-up search) and wires its extra_commands
// and tag_aliases into the docparser package's alias tables. Alias
// registration only needs to happen once per process.
func loadProjectConfig() (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(wd)
	if err != nil {
		return cfg, err
	}

	applyAliasesOnce.Do(func() {
		for alias, canonical := range cfg.ExtraCommands {
			docparser.RegisterCommandAlias(alias, canonical)
		}
		for alias, canonical := range cfg.TagAliases {
			docparser.RegisterTagAlias(alias, canonical)
		}
	})

	return cfg, nil
}

// seededRegistry builds a SectionRegistry from a config's declared
// sections map, so \section/\subsection ids used only by forward
// reference still classify correctly on a single-pass parse.
func seededRegistry(cfg *config.Config) docparser.SectionRegistry {
	seed := make(map[string]docparser.SectionType, len(cfg.Sections))
	for id, kind := range cfg.Sections {
		if kind == config.SectionKindSubsection {
			seed[id] = docparser.SectionTypeSubsection
		} else {
			seed[id] = docparser.SectionTypeSection
		}
	}

	return docparser.NewRegistryWithSeed(seed)
}
