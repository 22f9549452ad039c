package cmd

import (
	"testing"

	"github.com/connerohnesorge/docparser/internal/config"
	"github.com/connerohnesorge/docparser/internal/docparser"
)

func TestSeededRegistry_ClassifiesConfiguredSections(t *testing.T) {
	cfg := &config.Config{
		Sections: map[string]config.SectionKind{
			"overview": config.SectionKindSection,
			"details":  config.SectionKindSubsection,
		},
	}

	reg := seededRegistry(cfg)

	level, known := reg.Level("overview")
	if !known || level != 1 {
		t.Errorf("overview: level=%d known=%v, want 1/true", level, known)
	}

	level, known = reg.Level("details")
	if !known || level != 2 {
		t.Errorf("details: level=%d known=%v, want 2/true", level, known)
	}

	if _, known := reg.Level("unregistered"); known {
		t.Error("unregistered id reported known=true")
	}
}

func TestSeededRegistry_EmptyConfig(t *testing.T) {
	reg := seededRegistry(&config.Config{})

	level, known := reg.Level("anything")
	if known || level != 1 {
		t.Errorf("level=%d known=%v, want 1/false", level, known)
	}

	var _ docparser.SectionRegistry = reg
}
