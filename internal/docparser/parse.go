package docparser

import "fmt"

// ParseOption configures a ParseDoc call (spec §1's "external collaborator"
// design note: the section registry and diagnostic sink are both supplied
// by the caller, never owned globally).
type ParseOption func(*parseConfig)

type parseConfig struct {
	registry  SectionRegistry
	sink      DiagnosticSink
	maxErrors int
}

// WithRegistry supplies a SectionRegistry other than the package default
// in-memory one, e.g. one pre-seeded with a project's known section ids.
func WithRegistry(r SectionRegistry) ParseOption {
	return func(c *parseConfig) { c.registry = r }
}

// WithDiagnosticSink streams diagnostics to sink as they are produced, in
// addition to their accumulation on the returned Tree.
func WithDiagnosticSink(sink DiagnosticSink) ParseOption {
	return func(c *parseConfig) { c.sink = sink }
}

// WithMaxErrors bounds the number of diagnostics collected before ParseDoc
// gives up on best-effort recovery and returns early. Zero (the default)
// means unbounded.
func WithMaxErrors(n int) ParseOption {
	return func(c *parseConfig) { c.maxErrors = n }
}

// ParseDoc parses a single doc-comment body into a Tree (spec §1's entry
// point). fileName is recorded on every Diagnostic; startLine lets a
// caller report accurate line numbers for a comment that doesn't begin at
// the top of its source file.
func ParseDoc(fileName string, startLine int, input string, opts ...ParseOption) (*Tree, []Diagnostic) {
	cfg := parseConfig{registry: newRegistry(), sink: discardSink{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	tree := newTree()
	lex := newLexer(input, startLine)

	pc := acquireParseContext()
	defer releaseParseContext(pc)

	pc.tree = tree
	pc.lex = lex
	pc.registry = cfg.registry
	pc.sink = cfg.sink
	pc.fileName = fileName
	pc.maxErrors = cfg.maxErrors

	pc.runRecovered()

	tree.LexerState = lex.State()

	return tree, tree.Diagnostics
}

// runRecovered runs the Root production, converting a panic at this
// boundary (spec §7: a fatal condition such as context.go's popNode
// stack-underflow guard) into a DiagInternal diagnostic instead of letting
// it escape to ParseDoc's caller. Everything the parser otherwise
// recognizes as malformed input is handled as an ordinary diagnostic
// without ever reaching a panic; this boundary exists for the conditions
// that indicate a bug in the parser itself, not in the input.
func (pc *parseContext) runRecovered() {
	defer func() {
		if r := recover(); r != nil {
			pc.diag(SeverityError, DiagInternal, pc.line(), fmt.Sprintf("internal parser error: %v", r))
		}
	}()

	if pc.advance() == TokenEOF {
		return
	}
	pc.parseSectionBody(pc.tree.Root(), 0)
}
