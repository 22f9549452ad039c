package docparser

// dispatchCommand implements the COMMAND production table (spec §4.7): the
// single place a command name not already resolved by the inline handler
// (spec §4.2's escapes/styles/formula/htmlonly/latexonly) gets routed to
// its production. Entry convention matches every other production: the
// command token itself is still pc.curKind, not yet consumed.
func (pc *parseContext) dispatchCommand(owner NodeID, name string) Status {
	cmd := lookupCommand(name)

	if kind, ok := isSimpleSectionCmd(cmd); ok {
		return pc.parseSimpleSect(owner, kind)
	}

	switch cmd {
	case CmdParam:
		return pc.parseParamSection(owner, SimpleParam)
	case CmdRetVal:
		return pc.parseParamSection(owner, SimpleRetVal)
	case CmdException:
		return pc.parseParamSection(owner, SimpleException)

	case CmdBug:
		return pc.parseXRefSection(owner, XRefBug)
	case CmdTodo:
		return pc.parseXRefSection(owner, XRefTodo)
	case CmdTest:
		return pc.parseXRefSection(owner, XRefTest)
	case CmdDeprecated:
		return pc.parseXRefSection(owner, XRefDeprecated)

	case CmdLi:
		return pc.parseSimpleList(owner)

	case CmdSection:
		return pc.parseSectionHeading(owner, SectionTypeSection)
	case CmdSubsection:
		return pc.parseSectionHeading(owner, SectionTypeSubsection)

	case CmdStartCode:
		pc.captureVerbatimBlock(owner, StateCode, VerbatimCode)

		return StatusOK
	case CmdVerbatim:
		pc.captureVerbatimBlock(owner, StateVerbatim, VerbatimPlain)

		return StatusOK

	case CmdEndCode, CmdEndHTMLOnly, CmdEndLatexOnly, CmdEndLink, CmdEndVerbatim:
		pc.diag(SeverityWarning, DiagIllegalCommand, pc.line(), "\\"+name+" without a matching start")
		pc.advance()

		return StatusOK

	case CmdLineBreak:
		pc.appendText(owner, KindLineBreak, "")
		pc.advance()

		return StatusOK

	case CmdAnchor:
		pc.advance()
		pc.expectWhitespace("\\anchor")
		id := pc.scanLineTarget(StateTitle)
		pc.appendText(owner, KindAnchor, id)
		pc.advance()

		return StatusOK

	case CmdAddIndex:
		return pc.parseIndexEntry(owner)

	case CmdInternal:
		pc.advance()

		return StatusInternal

	case CmdCopyDoc:
		pc.advance()
		pc.expectWhitespace("\\copydoc")
		target := pc.scanLineTarget(StateTitle)
		pc.appendText(owner, KindCopy, target)
		pc.advance()

		return StatusOK

	case CmdInclude:
		return pc.parseIncludeDirective(owner, IncludeFile)
	case CmdDontInclude:
		return pc.parseIncludeDirective(owner, IncludeDontInclude)
	case CmdHTMLInclude:
		return pc.parseIncludeDirective(owner, IncludeHTMLInclude)
	case CmdVerbInclude:
		return pc.parseIncludeDirective(owner, IncludeVerbInclude)

	case CmdSkip:
		return pc.parseIncOperator(owner, IncOpSkip)
	case CmdUntil:
		return pc.parseIncOperator(owner, IncOpUntil)
	case CmdSkipLine:
		return pc.parseIncOperator(owner, IncOpSkipLine)
	case CmdLine:
		return pc.parseIncOperator(owner, IncOpLine)

	case CmdImage:
		return pc.parseImage(owner)
	case CmdDotFile:
		return pc.parseDotFile(owner)

	case CmdLink:
		return pc.parseLink(owner, false)
	case CmdJavaLink:
		return pc.parseLink(owner, true)
	case CmdRef:
		return pc.parseRef(owner)

	case CmdSecRefList:
		return pc.parseSecRefList(owner)
	case CmdEndSecRefList:
		pc.diag(SeverityWarning, DiagIllegalCommand, pc.line(), "\\endsecreflist outside \\secreflist")
		pc.advance()

		return StatusOK
	case CmdSecRefItem:
		return pc.parseSecRefItem(owner)

	case CmdLangSwitch:
		pc.pendingText = pc.scratch().Chars
		pc.advance()

		return StatusSwitchLang

	default:
		pc.diag(SeverityWarning, DiagUnknownName, pc.line(), "unknown command \\"+name)
		pc.advance()

		return StatusOK
	}
}

// parseSectionHeading implements the \section/\subsection id+title reader
// (spec §4.7/§6): the id is registered with its SectionType unless the
// registry already knows it, stashed via pendingText, and StatusSection is
// returned for the caller to act on (it owns creating the Section node,
// since it alone knows the resulting nesting level). The title text after
// the id is not captured here; it becomes ordinary words of the Section's
// first Para.
func (pc *parseContext) parseSectionHeading(owner NodeID, t SectionType) Status {
	_ = owner
	pc.advance()
	pc.expectWhitespace("\\section")

	restore := pc.withState(StateTitle)
	pc.advance()
	id := ""
	if pc.curKind == TokenWord {
		id = pc.scratch().Chars
	}
	restore()
	pc.advance()

	if _, known := pc.registry.Level(id); !known {
		pc.registry.Register(id, t)
	}
	pc.pendingText = id

	return StatusSection
}

// captureVerbatimBlock implements the block-level verbatim-family starters
// (\startcode, \verbatim — distinct from the inline \htmlonly/\latexonly
// forms already handled by inline.go's captureVerbatim, but sharing its
// same capture-until-matching-end mechanic).
func (pc *parseContext) captureVerbatimBlock(owner NodeID, state LexerState, kind VerbatimKind) {
	restore := pc.withState(state)

	if pc.advance() == TokenEOF {
		restore()
		pc.diag(SeverityError, DiagUnterminatedBlock, pc.line(), "unterminated verbatim block")

		return
	}
	vid := pc.tree.newNode(KindVerbatim, owner, pc.line())
	pc.tree.nodes[vid].text = pc.scratch().VerbatimPayload
	pc.tree.nodes[vid].sub = uint8(kind)
	restore()
	pc.advance()
}

// parseIncludeDirective implements the \include-family directives (spec
// §4.7): a file pattern scanned under the pattern-lexer-state.
func (pc *parseContext) parseIncludeDirective(owner NodeID, kind IncludeKind) Status {
	pc.advance()
	pc.expectWhitespace("include directive")
	pattern := pc.scanLineTarget(StatePattern)
	id := pc.tree.newNode(KindInclude, owner, pc.line())
	pc.tree.nodes[id].text = pattern
	pc.tree.nodes[id].sub = uint8(kind)
	pc.advance()

	return StatusOK
}

// parseIncOperator implements the \skip/\until/\skipline/\line family
// (spec §4.7): a pattern scanned under the pattern-lexer-state, paired
// with the preceding \include by file-processing code outside this
// package — the parser only records the operator and its argument.
func (pc *parseContext) parseIncOperator(owner NodeID, kind IncOpKind) Status {
	pc.advance()
	pc.expectWhitespace("include-operator directive")
	pattern := pc.scanLineTarget(StatePattern)
	id := pc.tree.newNode(KindIncOperator, owner, pc.line())
	pc.tree.nodes[id].text2 = pattern
	pc.tree.nodes[id].sub = uint8(kind)
	pc.advance()

	return StatusOK
}

// parseSecRefList implements \secreflist ... \endsecreflist (spec §4.7):
// a SecRefList container collecting \secrefitem children, each scanned
// under the title-lexer-state, until a matching \endsecreflist or
// end-of-stream (diagnosed as unterminated).
func (pc *parseContext) parseSecRefList(owner NodeID) Status {
	id := pc.tree.newNode(KindSecRefList, owner, pc.line())
	pc.pushNode(id)
	defer pc.popNode()

	pc.advance()

	for {
		for pc.curKind == TokenWhitespace || pc.curKind == TokenNewPara {
			pc.advance()
		}

		switch {
		case pc.curKind == TokenCommand && lookupCommand(pc.scratch().Name) == CmdEndSecRefList:
			pc.advance()

			return StatusOK

		case pc.curKind == TokenCommand && lookupCommand(pc.scratch().Name) == CmdSecRefItem:
			pc.parseSecRefItem(id)

		case pc.curKind == TokenEOF:
			pc.diag(SeverityError, DiagUnterminatedBlock, pc.line(), "unterminated \\secreflist")

			return StatusEOS

		default:
			pc.diag(SeverityWarning, DiagUnexpectedToken, pc.line(),
				"expected \\secrefitem or \\endsecreflist")
			pc.advance()
		}
	}
}
