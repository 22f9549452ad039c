package docparser

import "testing"

func TestSectionTypeSectionLevel(t *testing.T) {
	if got := SectionTypeSection.SectionLevel(); got != 1 {
		t.Errorf("SectionTypeSection.SectionLevel() = %d, want 1", got)
	}
	if got := SectionTypeSubsection.SectionLevel(); got != 2 {
		t.Errorf("SectionTypeSubsection.SectionLevel() = %d, want 2", got)
	}
}

func TestMapRegistryUnregisteredDefaultsToLevelOne(t *testing.T) {
	r := newRegistry()

	level, known := r.Level("nope")
	if known {
		t.Error("unregistered id reported known=true")
	}
	if level != 1 {
		t.Errorf("level = %d, want 1", level)
	}
}

func TestMapRegistryRegisterThenLevel(t *testing.T) {
	r := newRegistry()
	r.Register("overview", SectionTypeSection)
	r.Register("details", SectionTypeSubsection)

	if level, known := r.Level("overview"); !known || level != 1 {
		t.Errorf("overview: level=%d known=%v, want 1/true", level, known)
	}
	if level, known := r.Level("details"); !known || level != 2 {
		t.Errorf("details: level=%d known=%v, want 2/true", level, known)
	}
}

func TestMapRegistryRegisterOverwritesPriorClassification(t *testing.T) {
	r := newRegistry()
	r.Register("widgets", SectionTypeSubsection)
	r.Register("widgets", SectionTypeSection)

	if level, known := r.Level("widgets"); !known || level != 1 {
		t.Errorf("widgets: level=%d known=%v, want 1/true after re-registration", level, known)
	}
}

func TestNewRegistryWithSeed(t *testing.T) {
	seed := map[string]SectionType{
		"overview": SectionTypeSection,
		"details":  SectionTypeSubsection,
	}
	reg := NewRegistryWithSeed(seed)

	if level, known := reg.Level("overview"); !known || level != 1 {
		t.Errorf("overview: level=%d known=%v, want 1/true", level, known)
	}
	if level, known := reg.Level("details"); !known || level != 2 {
		t.Errorf("details: level=%d known=%v, want 2/true", level, known)
	}
	if _, known := reg.Level("unseeded"); known {
		t.Error("unseeded id reported known=true")
	}

	// Mutating the seed map after construction must not affect the registry.
	seed["overview"] = SectionTypeSubsection
	if level, _ := reg.Level("overview"); level != 1 {
		t.Errorf("registry aliased the seed map: level = %d, want 1", level)
	}
}
