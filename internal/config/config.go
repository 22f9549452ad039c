// Package config loads the optional docparser.yaml project configuration:
// extra command aliases, HTML tag aliases, and section-registry seeds a
// project can declare once instead of repeating per parse call.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the name of the docparser configuration file.
	ConfigFileName = "docparser.yaml"
)

// SectionKind names a registered section id's nesting classification, as
// written in docparser.yaml ("section" or "subsection").
type SectionKind string

const (
	SectionKindSection    SectionKind = "section"
	SectionKindSubsection SectionKind = "subsection"
)

// Config holds a project's docparser.yaml settings.
type Config struct {
	// ExtraCommands maps an additional command name (without its leading
	// backslash/at) to the name of an existing command it behaves like,
	// letting a project define house aliases (e.g. "todo2: todo").
	ExtraCommands map[string]string `yaml:"extra_commands"`

	// TagAliases maps an additional HTML tag spelling to a recognized one
	// (e.g. "ital: em" for projects whose source predates the <em> tag).
	TagAliases map[string]string `yaml:"tag_aliases"`

	// Sections seeds the section registry so \section/\subsection ids
	// used only by forward reference still classify correctly on a
	// single-pass parse.
	Sections map[string]SectionKind `yaml:"sections"`

	// ConfigPath is the absolute path the configuration was loaded from,
	// or "" if no docparser.yaml was found (defaults were used).
	ConfigPath string `yaml:"-"`

	// ProjectRoot is the directory docparser.yaml was found in, or the
	// starting path if none was found.
	ProjectRoot string `yaml:"-"`
}

// Load searches for docparser.yaml starting from startPath, walking up the
// directory tree, using the real OS filesystem. If none is found, it
// returns an empty Config rooted at startPath.
func Load(startPath string) (*Config, error) {
	return LoadFS(afero.NewOsFs(), startPath)
}

// LoadFS is Load generalized over an afero.Fs, so callers (and tests) can
// supply an in-memory filesystem instead of touching disk.
func LoadFS(fs afero.Fs, startPath string) (*Config, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for %q: %w", startPath, err)
	}

	currentPath := absPath
	for {
		configPath := filepath.Join(currentPath, ConfigFileName)

		if exists, _ := afero.Exists(fs, configPath); exists {
			cfg, err := parseConfigFile(fs, configPath)
			if err != nil {
				return nil, err
			}
			cfg.ConfigPath = configPath
			cfg.ProjectRoot = currentPath

			return cfg, nil
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}

	return &Config{
		ExtraCommands: map[string]string{},
		TagAliases:    map[string]string{},
		Sections:      map[string]SectionKind{},
		ProjectRoot:   absPath,
	}, nil
}

func parseConfigFile(fs afero.Fs, configPath string) (*Config, error) {
	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var yamlErr *yaml.TypeError
		if errors.As(err, &yamlErr) {
			return nil, fmt.Errorf("invalid YAML syntax: %v", yamlErr.Errors)
		}

		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.ExtraCommands == nil {
		cfg.ExtraCommands = map[string]string{}
	}
	if cfg.TagAliases == nil {
		cfg.TagAliases = map[string]string{}
	}
	if cfg.Sections == nil {
		cfg.Sections = map[string]SectionKind{}
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	for id, kind := range c.Sections {
		if kind != SectionKindSection && kind != SectionKindSubsection {
			return fmt.Errorf("section %q: kind must be %q or %q, got %q",
				id, SectionKindSection, SectionKindSubsection, kind)
		}
	}

	return nil
}
