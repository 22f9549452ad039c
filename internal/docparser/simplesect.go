package docparser

// parseSimpleSect implements the SimpleSect production (spec §4.4): owns
// exactly one Para; the "par" flavor additionally parses a one-line Title
// first. Entry convention: pc.curKind is still the triggering command
// token (not yet consumed).
func (pc *parseContext) parseSimpleSect(owner NodeID, kind SimpleSectKind) Status {
	id := pc.tree.newNode(KindSimpleSect, owner, pc.line())
	pc.tree.nodes[id].sub = uint8(kind)
	pc.pushNode(id)
	defer pc.popNode()

	pc.advance() // past the command token

	if kind == SimpleUser {
		pc.parseTitleInto(id)
		pc.advance() // past the scoped line-end boundary, into StatePara content
	}

	st := pc.parsePara(id)
	if st == StatusNewPara {
		if pc.afterNewPara() == StatusEOS {
			return StatusEOS
		}

		return StatusOK
	}

	return st
}

// parseParamSection implements the Param/RetVal/Exception production (spec
// §4.4): expects a WHITESPACE, collects zero or more parameter-name WORDs
// under the lexer's parameter state, then parses a body Para.
func (pc *parseContext) parseParamSection(owner NodeID, kind SimpleSectKind) Status {
	id := pc.tree.newNode(KindSimpleSect, owner, pc.line())
	pc.tree.nodes[id].sub = uint8(kind)
	pc.pushNode(id)
	defer pc.popNode()

	if pc.advance() != TokenWhitespace {
		pc.diag(SeverityWarning, DiagUnexpectedToken, pc.line(),
			"expected whitespace after parameter section command")
	} else {
		restore := pc.withState(StateParam)
		pc.advance()
		for pc.curKind == TokenWord {
			pc.tree.nodes[id].params = append(pc.tree.nodes[id].params, pc.scratch().Chars)
			pc.advance()
			if pc.curKind == TokenWhitespace {
				pc.advance()
			}
		}
		restore()
	}

	st := pc.parsePara(id)
	if st == StatusNewPara {
		if pc.afterNewPara() == StatusEOS {
			return StatusEOS
		}

		return StatusOK
	}

	return st
}

// parseXRefSection implements the xref-starter helper (spec §4.4): expects
// a WHITESPACE, then one token read under the xref-item state identifying
// the entry, appended as an XRefItem leaf.
func (pc *parseContext) parseXRefSection(owner NodeID, kind XRefKind) Status {
	if pc.advance() != TokenWhitespace {
		pc.diag(SeverityWarning, DiagUnexpectedToken, pc.line(),
			"expected whitespace after cross-reference command")
	} else {
		restore := pc.withState(StateXRefItem)
		pc.advance()
		if pc.curKind == TokenWord {
			id := pc.tree.newNode(KindXRefItem, owner, pc.line())
			pc.tree.nodes[id].sub = uint8(kind)
			pc.tree.nodes[id].text = pc.scratch().Chars
		}
		restore()
		pc.advance()
	}

	return StatusOK
}
