package docparser

// afterNewPara advances past a just-returned NEWPARA token and reports
// whether the stream ended right there, so every driving loop shares one
// definition of "start another Para" (spec §4.6's recurring "builds
// children while NEWPARA" shape).
func (pc *parseContext) afterNewPara() Status {
	pc.advance()
	if pc.curKind == TokenEOF {
		return StatusEOS
	}

	return StatusOK
}

// parseSectionBody implements the shared Root/Section production (spec
// §4.6): repeatedly parse a Para child of owner until it signals a
// section boundary, \internal, or a language switch, recursing into a
// nested Section when the classified level is owner's level + 1 and
// bubbling a same-or-shallower-level section back to the caller (which
// terminates the current container, per the "siblings terminate it" rule).
func (pc *parseContext) parseSectionBody(owner NodeID, level int) Status {
	st := StatusOK
	for {
		// A Section or SwitchLang status left by the previous round still
		// has its payload in pendingText and is handled before a new Para.
		if st != StatusSection && st != StatusSwitchLang {
			st = pc.parsePara(owner)
		}

		switch st {
		case StatusEOS:
			return StatusEOS

		case StatusNewPara:
			if pc.afterNewPara() == StatusEOS {
				return StatusEOS
			}

		case StatusInternal:
			if level != 0 {
				pc.diag(SeverityWarning, DiagIllegalCommand, pc.line(),
					"\\internal is only meaningful at the top level")

				continue
			}
			pc.parseInternalSection(owner)

		case StatusSwitchLang:
			if st = pc.parseLanguageSection(owner); st == StatusEOS {
				return StatusEOS
			}

		case StatusSection:
			id := pc.pendingText
			newLevel, _ := pc.registry.Level(id)

			if newLevel <= level {
				return StatusSection // sibling/ancestor-level section: caller's concern
			}
			if newLevel != level+1 {
				pc.diag(SeverityError, DiagSectionLevelMismatch, pc.line(),
					"expected level section mismatch in nesting")
				newLevel = level + 1
			}

			secID := pc.tree.newNode(KindSection, owner, pc.line())
			pc.tree.nodes[secID].intVal = newLevel
			pc.tree.nodes[secID].text = id
			pc.pushNode(secID)
			childSt := pc.parseSectionBody(secID, newLevel)
			pc.popNode()

			if childSt == StatusSection {
				continue // reprocess the still-pending section id at this level
			}

			return childSt

		default:
			return st
		}
	}
}

// parseInternalSection consumes the body of an \internal block as a run
// of Paras under a new Internal child of owner. parseSectionBody calls it
// for every \internal reached at the top level, so a Root is not limited
// to a single Internal child.
func (pc *parseContext) parseInternalSection(owner NodeID) {
	id := pc.tree.newNode(KindInternal, owner, pc.line())
	pc.pushNode(id)
	defer pc.popNode()

	for {
		st := pc.parsePara(id)
		switch st {
		case StatusEOS:
			return
		case StatusNewPara:
			if pc.afterNewPara() == StatusEOS {
				return
			}
		default:
			pc.diag(SeverityWarning, DiagIllegalCommand, pc.line(),
				"unexpected structural command inside \\internal")

			return
		}
	}
}

// parseLanguageSection implements the Language production (spec §4.6):
// builds Para children while each returns NEWPARA, otherwise propagates
// whatever status ended it.
func (pc *parseContext) parseLanguageSection(owner NodeID) Status {
	lang := pc.pendingText
	id := pc.tree.newNode(KindLanguage, owner, pc.line())
	pc.tree.nodes[id].text = lang
	pc.pushNode(id)
	defer pc.popNode()

	for {
		st := pc.parsePara(id)
		if st != StatusNewPara {
			return st
		}
		if pc.afterNewPara() == StatusEOS {
			return StatusEOS
		}
	}
}

// parseAutoList implements the AutoList production (spec §4.6): builds
// AutoListItem children, each wrapping one Para, until a LISTITEM token at
// a different (indent, isEnumerated) stops matching — at which point that
// token is left unconsumed for the caller (the Para that detected the
// first marker) to reprocess.
func (pc *parseContext) parseAutoList(owner NodeID, indent int, isEnum bool) Status {
	listID := pc.tree.newNode(KindAutoList, owner, pc.line())
	pc.tree.nodes[listID].intVal = indent
	pc.tree.nodes[listID].boolVal = isEnum
	pc.pushNode(listID)
	defer pc.popNode()

	for pc.curKind == TokenListItem && pc.scratch().Indent == indent && pc.scratch().IsEnumList == isEnum {
		itemID := pc.tree.newNode(KindAutoListItem, listID, pc.line())
		pc.pushNode(itemID)
		pc.advance() // move past the marker into the item's content
		st := pc.parsePara(itemID)
		pc.popNode()

		switch st {
		case StatusNewPara:
			if pc.afterNewPara() == StatusEOS {
				return StatusEOS
			}
		case StatusListItemTok:
			// loop condition re-examines the still-current LISTITEM token
		case StatusEOS:
			return StatusEOS
		default:
			return st
		}
	}

	return StatusOK
}

// parseSimpleList implements the SimpleList production (spec §4.6): builds
// SimpleListItem children, each wrapping one Para, while the item's Para
// keeps returning ListItem (a nested \li seen while already inside one).
func (pc *parseContext) parseSimpleList(owner NodeID) Status {
	listID := pc.tree.newNode(KindSimpleList, owner, pc.line())
	pc.pushNode(listID)
	defer pc.popNode()

	pc.advance() // move past the \li command token that opened the list
	for {
		itemID := pc.tree.newNode(KindSimpleListItem, listID, pc.line())
		pc.pushNode(itemID)
		st := pc.parsePara(itemID)
		pc.popNode()

		switch st {
		case StatusListItem:
			pc.advance() // move past the \li command token that ended this item

			continue
		case StatusNewPara:
			if pc.afterNewPara() == StatusEOS {
				return StatusEOS
			}

			return StatusOK
		default:
			return st
		}
	}
}
