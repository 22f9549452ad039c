package docparser

import "strconv"

// inlineOpts carries the one caller flag the inline handler needs (spec
// §4.2): link-target parsing disables WORD handling so the caller can
// itself inspect the word for an embedded closing brace.
type inlineOpts struct {
	suppressWord bool
}

// handleInline consumes one token as inline content (spec §4.2). It
// returns handled=true if it appended a node (or deliberately suppressed
// one, e.g. leading whitespace) and the caller should keep looping;
// handled=false means the caller must apply production-specific logic.
// newPara is true only when handling a style command's argument ran into
// the paragraph-ending NEWPARA token, so the caller can fold that into its
// own paragraph-end handling (spec §4.2's style-argument note).
func (pc *parseContext) handleInline(owner NodeID, opts inlineOpts) (handled, newPara bool) {
	switch pc.curKind {
	case TokenWord:
		if opts.suppressWord {
			return false, false
		}
		pc.appendText(owner, KindWord, pc.scratch().Chars)

		return true, false

	case TokenWhitespace:
		pc.appendWhitespace(owner)

		return true, false

	case TokenNewPara:
		if !pc.tree.insidePRE(owner) {
			return false, false
		}
		pc.appendWhitespace(owner)

		return true, false

	case TokenURL:
		pc.appendText(owner, KindURL, pc.scratch().Chars)

		return true, false

	case TokenSymbol:
		kind, letter, ok := decodeSymbol(pc.scratch().Name)
		if !ok {
			return false, false
		}
		pc.appendSymbol(owner, kind, letter)

		return true, false

	case TokenCommand:
		return pc.handleInlineCommand(owner)

	case TokenHTMLTag:
		return pc.handleInlineTag(owner)

	default:
		return false, false
	}
}

// appendWhitespace appends a WhiteSpace leaf unless doing so would produce
// leading whitespace or two adjacent WhiteSpace children (spec §4.2,
// tested by §8's "idempotence of whitespace collapse" property), except
// inside a preformatted ancestor where every whitespace run is preserved.
func (pc *parseContext) appendWhitespace(owner NodeID) {
	if pc.tree.insidePRE(owner) {
		pc.appendText(owner, KindWhiteSpace, pc.scratch().Chars)

		return
	}

	children := pc.tree.Children(owner)
	if len(children) == 0 {
		return
	}
	last := children[len(children)-1]
	switch pc.tree.Kind(last) {
	case KindWhiteSpace:
		return
	default:
		pc.appendText(owner, KindWhiteSpace, " ")
	}
}

func (pc *parseContext) handleInlineCommand(owner NodeID) (handled, newPara bool) {
	cmd := lookupCommand(pc.scratch().Name)
	switch cmd {
	case CmdBSlash:
		pc.appendSymbol(owner, SymEscBSlash, 0)

		return true, false
	case CmdAt:
		pc.appendSymbol(owner, SymEscAt, 0)

		return true, false
	case CmdLessThan:
		pc.appendSymbol(owner, SymEscLess, 0)

		return true, false
	case CmdGreaterThan:
		pc.appendSymbol(owner, SymEscGreater, 0)

		return true, false
	case CmdAmpersand:
		pc.appendSymbol(owner, SymEscAmp, 0)

		return true, false
	case CmdDollar:
		pc.appendSymbol(owner, SymEscDollar, 0)

		return true, false
	case CmdHashChar:
		pc.appendSymbol(owner, SymEscHash, 0)

		return true, false
	case CmdPercent:
		pc.appendSymbol(owner, SymEscPercent, 0)

		return true, false

	case CmdEmphasis:
		return true, pc.styledCommand(owner, StyleItalic)
	case CmdBold:
		return true, pc.styledCommand(owner, StyleBold)
	case CmdCode:
		return true, pc.styledCommand(owner, StyleCode)

	case CmdHTMLOnly:
		pc.captureVerbatim(owner, StateHTMLOnly, VerbatimHTMLOnly)

		return true, false
	case CmdLatexOnly:
		pc.captureVerbatim(owner, StateLatexOnly, VerbatimLatexOnly)

		return true, false

	case CmdFormula:
		id := pc.scratch().ID
		fid := pc.tree.newNode(KindFormula, owner, pc.line())
		pc.tree.nodes[fid].text = strconv.Itoa(id)

		return true, false

	default:
		return false, false
	}
}

func (pc *parseContext) handleInlineTag(owner NodeID) (handled, newPara bool) {
	tagID := lookupHTMLTag(pc.scratch().Name)
	style, ok := isInlineStyleTag(tagID)
	if !ok {
		return false, false
	}
	if pc.scratch().EndTag {
		pc.closeStyleNode(owner, style)
	} else {
		pc.openStyleNode(owner, style)
	}

	return true, false
}

// styledCommand implements \em/\b/\code's style-argument consumption
// (spec §4.2): expect a WHITESPACE (diagnostic otherwise), then feed
// tokens through handleInline until a WHITESPACE or NEWPARA terminates the
// argument, wrapped in matching StyleChange open/close nodes.
//
// Open question (spec §9, preserved rather than silently resolved): this
// treats a single run of whitespace after the command as the boundary, so
// "\b foo bar" only bolds "foo" — the existing behavior being specified,
// not a redesign.
func (pc *parseContext) styledCommand(owner NodeID, style Style) (newPara bool) {
	pc.openStyleNode(owner, style)

	if pc.advance() != TokenWhitespace {
		pc.diag(SeverityWarning, DiagUnexpectedToken, pc.line(),
			"expected whitespace after style command")
	} else {
		pc.advance()
	}

	for {
		if pc.curKind == TokenWhitespace || pc.curKind == TokenNewPara {
			break
		}
		if pc.curKind == TokenEOF {
			break
		}
		handled, _ := pc.handleInline(owner, inlineOpts{})
		if !handled {
			pc.diag(SeverityWarning, DiagUnexpectedToken, pc.line(),
				"unexpected token as argument of style command")
		}
		pc.advance()
	}

	pc.closeStyleNode(owner, style)

	return pc.curKind == TokenNewPara
}

func (pc *parseContext) captureVerbatim(owner NodeID, state LexerState, kind VerbatimKind) {
	restore := pc.withState(state)
	defer restore()

	if pc.advance() == TokenEOF {
		pc.diag(SeverityError, DiagUnterminatedBlock, pc.line(),
			"unexpected end of comment inside verbatim block")

		return
	}
	vid := pc.tree.newNode(KindVerbatim, owner, pc.line())
	pc.tree.nodes[vid].text = pc.scratch().VerbatimPayload
	pc.tree.nodes[vid].sub = uint8(kind)
}

// --- leaf/style append helpers ---

func (pc *parseContext) appendText(owner NodeID, kind NodeKind, text string) NodeID {
	id := pc.tree.newNode(kind, owner, pc.line())
	pc.tree.nodes[id].text = text

	return id
}

func (pc *parseContext) appendSymbol(owner NodeID, kind SymbolKind, letter byte) NodeID {
	id := pc.tree.newNode(KindSymbol, owner, pc.line())
	pc.tree.nodes[id].sub = uint8(kind)
	pc.tree.nodes[id].letter = letter

	return id
}

func (pc *parseContext) openStyleNode(owner NodeID, style Style) NodeID {
	depth := pc.depth()
	pc.openStyle(style)
	id := pc.tree.newNode(KindStyleChange, owner, pc.line())
	pc.tree.nodes[id].sub = uint8(style)
	pc.tree.nodes[id].intVal = depth
	pc.tree.nodes[id].boolVal = true

	return id
}

func (pc *parseContext) closeStyleNode(owner NodeID, style Style) (NodeID, bool) {
	if !pc.closeStyle(style) {
		pc.diag(SeverityWarning, DiagStyleUnbalanced, pc.line(),
			"found closing style without matching open in the same paragraph")

		return 0, false
	}
	id := pc.tree.newNode(KindStyleChange, owner, pc.line())
	pc.tree.nodes[id].sub = uint8(style)
	pc.tree.nodes[id].boolVal = false

	return id, true
}

// closeParagraphStyles auto-closes every style span still open at depth
// >= paraDepth when a Para production ends, synthesizing a close node and
// a diagnostic for each (spec §3 invariant, §7's balance-violation kind).
func (pc *parseContext) closeParagraphStyles(owner NodeID, paraDepth int) {
	open := pc.openStylesAtOrAbove(paraDepth)
	for i := len(open) - 1; i >= 0; i-- {
		f := open[i]
		pc.diag(SeverityError, DiagStyleUnbalanced, pc.line(),
			"end of paragraph without end of style")
		id := pc.tree.newNode(KindStyleChange, owner, pc.line())
		pc.tree.nodes[id].sub = uint8(f.style)
		pc.tree.nodes[id].boolVal = false
	}
	pc.popStylesAtOrAbove(paraDepth)
}
