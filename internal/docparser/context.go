package docparser

import "sync"

// styleFrame records one open inline style span (spec §4.1).
type styleFrame struct {
	style      Style
	depthAtOpen int
}

// parseContext bundles everything that was process-wide global state in
// the spec's original design (node stack, style stack, the lexer's
// scratch record, a one-deep pushback slot) into one per-invocation
// struct, per spec §9's "global parse state" design note. Two concurrent
// ParseDoc calls each get their own parseContext and never share any of
// this, unlike the original shared-global design described in spec §5.
type parseContext struct {
	tree     *Tree
	lex      TokenSource
	registry SectionRegistry
	sink     DiagnosticSink
	fileName string

	nodeStack  []NodeID
	styleStack []styleFrame

	// pushback is the one-deep "unput" slot spec §4.3/§9 describes: the
	// paragraph loop stashes a command name here when a nested production
	// returns StatusSimpleSec, then re-enters dispatch as if that command
	// had just been read.
	pushback    string
	hasPushback bool

	curKind TokenKind
	maxErrors int
	errCount  int

	// pendingText carries a payload alongside a returned Status across the
	// one level of the call chain that needs it, rather than round-tripping
	// through TokenScratch (which the lexer clears on every Next() call):
	// a classified section id for StatusSection, or a language tag for
	// StatusSwitchLang.
	pendingText string
}

var parseContextPool = sync.Pool{
	New: func() any { return &parseContext{} },
}

func acquireParseContext() *parseContext {
	pc, _ := parseContextPool.Get().(*parseContext)

	return pc
}

func releaseParseContext(pc *parseContext) {
	pc.tree = nil
	pc.lex = nil
	pc.registry = nil
	pc.sink = nil
	pc.fileName = ""
	pc.nodeStack = pc.nodeStack[:0]
	pc.styleStack = pc.styleStack[:0]
	pc.pushback = ""
	pc.hasPushback = false
	pc.errCount = 0
	pc.pendingText = ""
	parseContextPool.Put(pc)
}

// depth returns the current open-production nesting count.
func (pc *parseContext) depth() int { return len(pc.nodeStack) }

// pushNode records that a new block production has opened on id.
func (pc *parseContext) pushNode(id NodeID) { pc.nodeStack = append(pc.nodeStack, id) }

// popNode pops the most recently pushed production. Callers pop exactly
// once per push, on every exit path (normal return or diagnostic).
func (pc *parseContext) popNode() {
	n := len(pc.nodeStack)
	if n == 0 {
		panic("docparser: node stack underflow")
	}
	pc.nodeStack = pc.nodeStack[:n-1]
}

// openStyle pushes a style-open record at the current depth.
func (pc *parseContext) openStyle(s Style) {
	pc.styleStack = append(pc.styleStack, styleFrame{style: s, depthAtOpen: pc.depth()})
}

// closeStyle attempts to pop a matching style-close record (spec §4.1: the
// stack is non-empty, the top matches the requested style, and its
// depthAtOpen equals the current depth). Returns false (no pop performed)
// on any mismatch, which callers turn into a diagnostic.
func (pc *parseContext) closeStyle(s Style) bool {
	n := len(pc.styleStack)
	if n == 0 {
		return false
	}
	top := pc.styleStack[n-1]
	if top.style != s || top.depthAtOpen != pc.depth() {
		return false
	}
	pc.styleStack = pc.styleStack[:n-1]

	return true
}

// openStylesAtOrAbove returns the open style frames that were opened at
// depth >= d, used when closing a production to decide which frames it
// must auto-close.
func (pc *parseContext) openStylesAtOrAbove(d int) []styleFrame {
	var out []styleFrame
	for _, f := range pc.styleStack {
		if f.depthAtOpen >= d {
			out = append(out, f)
		}
	}

	return out
}

// popStylesAtOrAbove drops every style frame opened at depth >= d from the
// stack (used alongside openStylesAtOrAbove when auto-closing at paragraph
// end, see closeParagraphStyles in inline.go).
func (pc *parseContext) popStylesAtOrAbove(d int) {
	kept := pc.styleStack[:0]
	for _, f := range pc.styleStack {
		if f.depthAtOpen < d {
			kept = append(kept, f)
		}
	}
	pc.styleStack = kept
}

// setPushback stashes a command name for re-entry into dispatch.
func (pc *parseContext) setPushback(name string) {
	pc.pushback = name
	pc.hasPushback = true
}

// takePushback consumes and clears the pushback slot.
func (pc *parseContext) takePushback() (string, bool) {
	if !pc.hasPushback {
		return "", false
	}
	name := pc.pushback
	pc.pushback = ""
	pc.hasPushback = false

	return name, true
}

// diag records a diagnostic both on the tree and to the injected sink.
func (pc *parseContext) diag(sev Severity, kind DiagKind, line int, msg string) {
	d := Diagnostic{File: pc.fileName, Line: line, Severity: sev, Kind: kind, Message: msg}
	pc.tree.Diagnostics = append(pc.tree.Diagnostics, d)
	pc.sink.Emit(d)
	pc.errCount++
}

// advance fetches the next token and records its kind.
func (pc *parseContext) advance() TokenKind {
	if pc.maxErrors > 0 && pc.errCount >= pc.maxErrors {
		// Error budget spent: end the token stream here.
		pc.curKind = TokenEOF

		return pc.curKind
	}
	pc.curKind = pc.lex.Next()

	return pc.curKind
}

// scratch is shorthand for pc.lex.Scratch().
func (pc *parseContext) scratch() *TokenScratch { return pc.lex.Scratch() }

// line is shorthand for pc.lex.Line().
func (pc *parseContext) line() int { return pc.lex.Line() }

// withState switches the lexer into s and returns a restore func that sets
// it back to StatePara. Spec §9's "goto-based unwinding" note: every
// production that changes the scanning mode gets a single defer instead of
// manual restores on each exit path.
//
//	restore := pc.withState(StateTitle)
//	defer restore()
func (pc *parseContext) withState(s LexerState) func() {
	pc.lex.SetState(s)

	return func() { pc.lex.SetState(StatePara) }
}
