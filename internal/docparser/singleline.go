package docparser

import "strings"

// scanLineTarget switches the lexer into state, consumes WORD/WHITESPACE
// tokens until the state-scoped end-of-line boundary, and restores
// StatePara — but does not advance past that boundary; every caller must
// fetch one more token afterward to resume normal paragraph scanning
// (spec §4.6's "Title/Ref/DotFile/..." single-line productions).
func (pc *parseContext) scanLineTarget(state LexerState) string {
	restore := pc.withState(state)
	pc.advance()

	var sb strings.Builder
	for pc.curKind != TokenEOF {
		switch pc.curKind {
		case TokenWord:
			sb.WriteString(pc.scratch().Chars)
		case TokenWhitespace:
			sb.WriteByte(' ')
		}
		pc.advance()
	}
	restore()

	return sb.String()
}

// expectWhitespace checks that the token the caller fetched after a
// command is its mandatory trailing whitespace, diagnosing (but
// continuing) if absent; the caller's next advance moves past it.
func (pc *parseContext) expectWhitespace(what string) {
	if pc.curKind != TokenWhitespace {
		pc.diag(SeverityWarning, DiagUnexpectedToken, pc.line(), "expected whitespace after "+what)
	}
}

// parseTitleInto captures a single title line (spec §4.4's "par" flavor)
// as a Title child of owner, under StateTitle, via the inline handler.
func (pc *parseContext) parseTitleInto(owner NodeID) {
	titleID := pc.tree.newNode(KindTitle, owner, pc.line())
	restore := pc.withState(StateTitle)
	pc.advance()
	for pc.curKind != TokenEOF {
		pc.handleInline(titleID, inlineOpts{})
		pc.advance()
	}
	restore()
}

// parseDotFile implements the \dotfile directive (spec §4.6): a file name
// scanned under the title-lexer-state, ending at end-of-stream.
func (pc *parseContext) parseDotFile(owner NodeID) Status {
	pc.advance() // past the command token
	pc.expectWhitespace("\\dotfile")
	name := pc.scanLineTarget(StateTitle)
	id := pc.tree.newNode(KindDotFile, owner, pc.line())
	pc.tree.nodes[id].text = name
	pc.advance()

	return StatusOK
}

// parseImage implements the \image directive: file name scanned under the
// title-lexer-state. The renderer is always recorded as HTML; no
// renderer-selector argument is parsed.
func (pc *parseContext) parseImage(owner NodeID) Status {
	pc.advance()
	pc.expectWhitespace("\\image")
	name := pc.scanLineTarget(StateTitle)
	id := pc.tree.newNode(KindImage, owner, pc.line())
	pc.tree.nodes[id].text = name
	pc.tree.nodes[id].sub = uint8(RendererHTML)
	pc.advance()

	return StatusOK
}

// parseSecRefItem implements a bare \secrefitem target scanned under the
// title-lexer-state, used outside a \secreflist (the in-list form is
// handled directly by parseSecRefList).
func (pc *parseContext) parseSecRefItem(owner NodeID) Status {
	pc.advance()
	pc.expectWhitespace("\\secrefitem")
	target := pc.scanLineTarget(StateTitle)
	id := pc.tree.newNode(KindSecRefItem, owner, pc.line())
	pc.tree.nodes[id].text = target
	pc.advance()

	return StatusOK
}

// parseIndexEntry implements \addindex: a mandatory leading whitespace
// then inline content terminated by WHITESPACE or NEWPARA (spec §4.6).
func (pc *parseContext) parseIndexEntry(owner NodeID) Status {
	pc.advance()
	if pc.curKind != TokenWhitespace {
		pc.diag(SeverityWarning, DiagUnexpectedToken, pc.line(), "expected whitespace after \\addindex")
	} else {
		pc.advance()
	}

	id := pc.tree.newNode(KindIndexEntry, owner, pc.line())
	for pc.curKind != TokenWhitespace && pc.curKind != TokenNewPara && pc.curKind != TokenEOF {
		handled, _ := pc.handleInline(id, inlineOpts{})
		if !handled {
			break
		}
		pc.advance()
	}

	return StatusOK
}

// parseRef implements \ref (spec §4.6): a target scanned under the
// ref-lexer-state, followed by inline display text that (per spec, taken
// literally) runs to the true end of the token stream rather than any
// paragraph boundary.
func (pc *parseContext) parseRef(owner NodeID) Status {
	pc.advance()
	pc.expectWhitespace("\\ref")

	restore := pc.withState(StateRef)
	pc.advance()
	target := ""
	if pc.curKind == TokenWord {
		target = pc.scratch().Chars
	}
	restore()

	id := pc.tree.newNode(KindRef, owner, pc.line())
	pc.tree.nodes[id].text = target
	pc.pushNode(id)
	defer pc.popNode()

	pc.advance()
	for pc.curKind != TokenEOF {
		handled, _ := pc.handleInline(id, inlineOpts{})
		if !handled {
			break
		}
		pc.advance()
	}

	return StatusEOS
}

// parseLink implements \link/\javalink (spec §4.6): like Ref, but a
// Java-style link additionally watches every WORD for an embedded '}'
// that closes the block; a mid-word '}' splits into a trailing Word plus
// leftover content the caller is left holding (reported here simply by
// stopping at the boundary, since our lexer already splits a word at '}'
// into its own token, see lexer.go's isWordBreak).
func (pc *parseContext) parseLink(owner NodeID, javaStyle bool) Status {
	pc.advance()
	pc.expectWhitespace("\\link")

	restore := pc.withState(StateLink)
	pc.advance()
	target := ""
	if pc.curKind == TokenWord {
		target = pc.scratch().Chars
	}
	restore()

	id := pc.tree.newNode(KindLink, owner, pc.line())
	pc.tree.nodes[id].text = target
	pc.pushNode(id)
	defer pc.popNode()

	pc.advance()
	for pc.curKind != TokenEOF {
		if javaStyle && pc.curKind == TokenWord && pc.scratch().Chars == "}" {
			pc.advance()

			return StatusOK
		}
		if pc.curKind == TokenCommand && lookupCommand(pc.scratch().Name) == CmdEndLink {
			if javaStyle {
				pc.diag(SeverityWarning, DiagIllegalCommand, pc.line(), "\\endlink outside a Java-style link")
			}
			pc.advance()

			return StatusOK
		}
		handled, _ := pc.handleInline(id, inlineOpts{})
		if !handled {
			break
		}
		pc.advance()
	}

	return StatusEOS
}

// parseHRef implements the <a href="..."> block (spec §4.5/§4.6): inline
// content terminated by a matching </a>.
func (pc *parseContext) parseHRef(owner NodeID, url string) Status {
	id := pc.tree.newNode(KindHRef, owner, pc.line())
	pc.tree.nodes[id].text = url
	pc.pushNode(id)
	defer pc.popNode()

	pc.advance()
	for {
		if pc.curKind == TokenHTMLTag && pc.scratch().EndTag && lookupHTMLTag(pc.scratch().Name) == TagA {
			pc.advance()

			return StatusOK
		}
		if pc.curKind == TokenEOF {
			pc.diag(SeverityError, DiagUnterminatedBlock, pc.line(), "unexpected end of comment inside <a>")

			return StatusEOS
		}
		pc.handleInline(id, inlineOpts{})
		pc.advance()
	}
}

// parseHtmlCaption implements <caption>...</caption> (spec §4.6):
// terminated by a matching end tag.
func (pc *parseContext) parseHtmlCaption(owner NodeID) Status {
	id := pc.tree.newNode(KindHtmlCaption, owner, pc.line())
	pc.pushNode(id)
	defer pc.popNode()

	pc.advance()
	for {
		if pc.curKind == TokenHTMLTag && pc.scratch().EndTag && lookupHTMLTag(pc.scratch().Name) == TagCaption {
			pc.advance()

			return StatusOK
		}
		if pc.curKind == TokenEOF {
			pc.diag(SeverityError, DiagUnterminatedBlock, pc.line(), "unexpected end of comment inside <caption>")

			return StatusEOS
		}
		pc.handleInline(id, inlineOpts{})
		pc.advance()
	}
}

// parseHtmlHeader implements <h1>/<h2>/<h3> (spec §4.6): terminated by a
// matching end tag; a level mismatch is a diagnostic but still closes.
func (pc *parseContext) parseHtmlHeader(owner NodeID, level int) Status {
	id := pc.tree.newNode(KindHtmlHeader, owner, pc.line())
	pc.tree.nodes[id].intVal = level
	pc.pushNode(id)
	defer pc.popNode()

	pc.advance()
	for {
		if pc.curKind == TokenHTMLTag && pc.scratch().EndTag {
			switch lookupHTMLTag(pc.scratch().Name) {
			case TagH1, TagH2, TagH3:
				if headerLevel(lookupHTMLTag(pc.scratch().Name)) != level {
					pc.diag(SeverityWarning, DiagUnexpectedToken, pc.line(), "mismatched header end tag")
				}
				pc.advance()

				return StatusOK
			}
		}
		if pc.curKind == TokenEOF {
			pc.diag(SeverityError, DiagUnterminatedBlock, pc.line(), "unexpected end of comment inside header")

			return StatusEOS
		}
		pc.handleInline(id, inlineOpts{})
		pc.advance()
	}
}

func headerLevel(t TagID) int {
	switch t {
	case TagH1:
		return 1
	case TagH2:
		return 2
	case TagH3:
		return 3
	default:
		return 0
	}
}

// parseHtmlDescTitle implements <dt>...(dd|</dt>) (spec §4.6): terminated
// by a <dd> start (requests the data body) or a </dt> end (ignored).
func (pc *parseContext) parseHtmlDescTitle(owner NodeID) Status {
	id := pc.tree.newNode(KindHtmlDescTitle, owner, pc.line())
	pc.pushNode(id)
	defer pc.popNode()

	pc.advance()
	for {
		if pc.curKind == TokenHTMLTag {
			tag := lookupHTMLTag(pc.scratch().Name)
			if tag == TagDD && !pc.scratch().EndTag {
				return StatusDescData
			}
			if tag == TagDT && pc.scratch().EndTag {
				pc.advance()

				continue
			}
		}
		if pc.curKind == TokenEOF {
			return StatusEOS
		}
		pc.handleInline(id, inlineOpts{})
		pc.advance()
	}
}
