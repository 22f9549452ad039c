package docparser

import "testing"

func TestSeverityString(t *testing.T) {
	if got := SeverityWarning.String(); got != "warning" {
		t.Errorf("SeverityWarning.String() = %q, want %q", got, "warning")
	}
	if got := SeverityError.String(); got != "error" {
		t.Errorf("SeverityError.String() = %q, want %q", got, "error")
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		File:     "widget.h",
		Line:     42,
		Severity: SeverityError,
		Kind:     DiagUnknownName,
		Message:  "unknown command \\bogus",
	}
	want := "widget.h:42: error: unknown command \\bogus"
	if got := d.String(); got != want {
		t.Errorf("Diagnostic.String() = %q, want %q", got, want)
	}
}

func TestDiscardSinkIgnoresDiagnostics(t *testing.T) {
	var sink discardSink
	sink.Emit(Diagnostic{Message: "ignored"})
}

func TestCollectingSinkAccumulates(t *testing.T) {
	sink := &CollectingSink{}
	sink.Emit(Diagnostic{Message: "first"})
	sink.Emit(Diagnostic{Message: "second"})

	if len(sink.Diagnostics) != 2 {
		t.Fatalf("len(Diagnostics) = %d, want 2", len(sink.Diagnostics))
	}
	if sink.Diagnostics[0].Message != "first" || sink.Diagnostics[1].Message != "second" {
		t.Errorf("Diagnostics = %v, want [first second] in order", sink.Diagnostics)
	}
}
