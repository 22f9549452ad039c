package docparser

// parsePara implements the paragraph production (spec §4.3): the single
// busiest production, consumed by every block container that "creates a
// Para child". It assumes pc.curKind already holds the first token to
// process and leaves pc.curKind holding the token immediately following
// whatever boundary it returned on, ready for the caller to inspect.
func (pc *parseContext) parsePara(owner NodeID) Status {
	id := pc.tree.newNode(KindPara, owner, pc.line())
	paraDepth := pc.depth()
	pc.pushNode(id)
	defer pc.popNode()

	for {
		if name, ok := pc.takePushback(); ok {
			st := pc.dispatchCommand(id, name)
			switch st {
			case StatusOK:
			case StatusSimpleSec:
				// A deeper restart already re-stashed the next command name;
				// this level is exactly the one that should retry it.
			default:
				pc.closeParagraphStyles(id, paraDepth)

				return st
			}

			continue
		}

		switch pc.curKind {
		case TokenEOF:
			pc.closeParagraphStyles(id, paraDepth)

			return StatusEOS

		case TokenNewPara:
			pc.closeParagraphStyles(id, paraDepth)

			return StatusNewPara

		case TokenListItem:
			st := pc.paraListItem(id)
			switch st {
			case StatusListItemTok:
				pc.closeParagraphStyles(id, paraDepth)

				return StatusListItemTok
			case StatusSimpleSec:
				// The production that detected the restart already stashed
				// the command name via setPushback before returning.
				continue
			case StatusEOS:
				pc.closeParagraphStyles(id, paraDepth)

				return StatusEOS
			default:
				continue // nested sub-list consumed; pc.curKind already fresh
			}

		case TokenEndList:
			if listID, ok := pc.tree.findAncestor(id, KindAutoList); ok {
				li, _ := pc.tree.AutoListInfo(listID)
				if li >= pc.scratch().Indent {
					pc.closeParagraphStyles(id, paraDepth)

					return StatusEndListTok
				}
			}
			pc.diag(SeverityWarning, DiagListIndentMismatch, pc.line(),
				"end of list marker has invalid indent")
			pc.advance()

		default:
			handled, newPara := pc.handleInline(id, inlineOpts{})
			if handled {
				if newPara {
					pc.closeParagraphStyles(id, paraDepth)

					return StatusNewPara
				}
				pc.advance()

				continue
			}

			st := pc.paraUnhandled(id, paraDepth)
			if st != StatusOK {
				return st
			}
		}
	}
}

// paraUnhandled applies the production-specific logic for a token the
// inline handler declined (spec §4.3's COMMAND/HTMLTAG bullets). Returning
// StatusOK means "continue the loop"; anything else has already had
// closeParagraphStyles applied and must propagate immediately.
func (pc *parseContext) paraUnhandled(id NodeID, paraDepth int) Status {
	switch pc.curKind {
	case TokenCommand:
		cmd := lookupCommand(pc.scratch().Name)

		if _, ok := isSimpleSectionCmd(cmd); ok && pc.tree.hasAncestorKind(id, KindSimpleSect) {
			name := pc.scratch().Name
			pc.closeParagraphStyles(id, paraDepth)
			pc.setPushback(name)

			return StatusSimpleSec
		}

		if cmd == CmdLi && pc.tree.hasAncestorKind(id, KindSimpleListItem) {
			pc.closeParagraphStyles(id, paraDepth)

			return StatusListItem
		}

		name := pc.scratch().Name
		st := pc.dispatchCommand(id, name)
		switch st {
		case StatusOK, StatusSimpleSec:
			// StatusSimpleSec here means a descendant already stashed a
			// restart command; this Para is the one that should retry it.
			return StatusOK
		default:
			pc.closeParagraphStyles(id, paraDepth)

			return st
		}

	case TokenHTMLTag:
		st := pc.handleBlockHTMLTag(id)
		if st != StatusOK {
			pc.closeParagraphStyles(id, paraDepth)

			return st
		}

		return StatusOK

	default:
		pc.advance()

		return StatusOK
	}
}

// paraListItem implements the LISTITEM bullet of spec §4.3: a list marker
// either continues/ends an enclosing AutoList (bubbled up unconsumed as
// StatusListItemTok) or starts a new nested AutoList rooted at this Para.
func (pc *parseContext) paraListItem(owner NodeID) Status {
	indent := pc.scratch().Indent
	isEnum := pc.scratch().IsEnumList

	if listID, ok := pc.tree.findAncestor(owner, KindAutoList); ok {
		li, enum := pc.tree.AutoListInfo(listID)
		if indent <= li && enum == isEnum {
			return StatusListItemTok
		}
		if indent <= li {
			return StatusListItemTok
		}
	}

	return pc.parseAutoList(owner, indent, isEnum)
}
