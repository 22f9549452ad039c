package docparser

import "testing"

// panicOnceSource is a scripted TokenSource (token.go's doc comment on
// TokenSource explicitly allows one) that returns a couple of ordinary
// tokens and then panics, standing in for an internal invariant violation
// such as context.go's popNode stack-underflow guard: from ParseDoc's
// caller's point of view the two look identical, a panic partway through
// parsing rather than malformed-input handling.
type panicOnceSource struct {
	n       int
	scratch TokenScratch
}

func (s *panicOnceSource) Next() TokenKind {
	s.n++
	if s.n > 2 {
		panic("docparser: node stack underflow")
	}
	s.scratch = TokenScratch{Chars: "x"}

	return TokenWord
}

func (s *panicOnceSource) SetState(LexerState)    {}
func (s *panicOnceSource) State() LexerState      { return StatePara }
func (s *panicOnceSource) Line() int              { return 1 }
func (s *panicOnceSource) Scratch() *TokenScratch { return &s.scratch }

// TestPopNodeUnderflowPanics documents the exact condition runRecovered
// exists to guard against: popping past an empty node stack is an
// internal bug, not a malformed-input case, so it panics rather than
// producing a Diagnostic on its own.
func TestPopNodeUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("popNode on an empty stack did not panic")
		}
	}()

	pc := &parseContext{}
	pc.popNode()
}

// TestParseDocRecoversInternalPanic exercises ParseDoc's runRecovered
// boundary end to end: a TokenSource that panics mid-parse must not
// escape ParseDoc, and must surface as a DiagInternal/SeverityError
// diagnostic instead.
func TestParseDocRecoversInternalPanic(t *testing.T) {
	cfg := parseConfig{registry: newRegistry(), sink: discardSink{}}

	tree := newTree()
	pc := acquireParseContext()
	defer releaseParseContext(pc)

	pc.tree = tree
	pc.lex = &panicOnceSource{}
	pc.registry = cfg.registry
	pc.sink = cfg.sink
	pc.fileName = "doc.h"

	pc.runRecovered() // must not panic out of this call

	if len(tree.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want exactly 1", len(tree.Diagnostics))
	}
	d := tree.Diagnostics[0]
	if d.Kind != DiagInternal {
		t.Errorf("diagnostic Kind = %v, want DiagInternal", d.Kind)
	}
	if d.Severity != SeverityError {
		t.Errorf("diagnostic Severity = %v, want SeverityError", d.Severity)
	}
	if d.File != "doc.h" {
		t.Errorf("diagnostic File = %q, want %q", d.File, "doc.h")
	}
}
