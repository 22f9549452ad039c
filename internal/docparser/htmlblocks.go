package docparser

// optionValue looks up an HTML tag option by name, returning "" if absent.
func optionValue(opts []Option, name string) string {
	for _, o := range opts {
		if o.Name == name {
			return o.Value
		}
	}

	return ""
}

// handleBlockHTMLTag implements the block-level half of HTML tag handling
// (spec §4.5) — everything the inline handler's {b,em,code,sub,sup,center,
// small} whitelist didn't already resolve. Entry convention: pc.curKind is
// the tag token, not yet consumed.
func (pc *parseContext) handleBlockHTMLTag(owner NodeID) Status {
	tag := lookupHTMLTag(pc.scratch().Name)

	if pc.scratch().EndTag {
		return pc.handleBlockHTMLEndTag(tag)
	}

	switch tag {
	case TagUL:
		return pc.parseHtmlList(owner, ListUnordered)
	case TagOL:
		return pc.parseHtmlList(owner, ListOrdered)
	case TagLI:
		if !pc.tree.insideUL(owner) && !pc.tree.insideOL(owner) {
			pc.diag(SeverityWarning, DiagIllegalCommand, pc.line(), "<li> outside <ul>/<ol>")
			pc.advance()

			return StatusOK
		}

		return StatusListItem
	case TagPre:
		return pc.parseHtmlPre(owner)
	case TagP:
		pc.advance()

		return StatusNewPara
	case TagDL:
		return pc.parseHtmlDescList(owner)
	case TagDT:
		return StatusDescTitle
	case TagDD:
		pc.diag(SeverityWarning, DiagIllegalCommand, pc.line(), "<dd> without a preceding <dt>")
		pc.advance()

		return StatusOK
	case TagTable:
		return pc.parseHtmlTable(owner)
	case TagTR:
		return StatusTableRow
	case TagTD:
		return StatusTableCell
	case TagTH:
		return StatusTableHCell
	case TagCaption:
		pc.diag(SeverityWarning, DiagIllegalCommand, pc.line(), "<caption> outside <table>")
		pc.advance()

		return StatusOK
	case TagBR:
		pc.appendText(owner, KindLineBreak, "")
		pc.advance()

		return StatusOK
	case TagHR:
		pc.appendText(owner, KindHorRuler, "")
		pc.advance()

		return StatusOK
	case TagA:
		return pc.handleAnchorOrHRef(owner)
	case TagH1:
		return pc.parseHtmlHeader(owner, 1)
	case TagH2:
		return pc.parseHtmlHeader(owner, 2)
	case TagH3:
		return pc.parseHtmlHeader(owner, 3)
	case TagImg:
		return pc.handleImageTag(owner)
	default:
		pc.diag(SeverityWarning, DiagUnknownName, pc.line(), "unknown HTML tag <"+pc.scratch().Name+">")
		pc.advance()

		return StatusOK
	}
}

// handleBlockHTMLEndTag implements the symmetric half of spec §4.5: ul/ol,
// pre, dl and table end tags signal their matching status; a handful of
// end tags that can never legally appear (br, hr, h1-3, img, caption) are
// diagnosed; everything else (li, dd, dt, a seen outside their owning
// production) is silently ignored, matching a well-formed-by-default
// recovery posture.
func (pc *parseContext) handleBlockHTMLEndTag(tag TagID) Status {
	switch tag {
	case TagUL, TagOL:
		pc.advance()

		return StatusEndList
	case TagPre:
		pc.advance()

		return StatusEndPre
	case TagDL:
		pc.advance()

		return StatusEndDesc
	case TagTable:
		pc.advance()

		return StatusEndTable
	case TagBR, TagHR, TagH1, TagH2, TagH3, TagImg, TagCaption:
		pc.diag(SeverityWarning, DiagIllegalCommand, pc.line(), "unexpected closing tag </"+htmlTagName(tag)+">")
		pc.advance()

		return StatusOK
	default:
		pc.advance()

		return StatusOK
	}
}

func htmlTagName(tag TagID) string {
	for name, id := range htmlTagTable {
		if id == tag {
			return name
		}
	}

	return "unknown"
}

// handleAnchorOrHRef implements the <a> start-tag branch (spec §4.5): a
// non-empty name attribute appends an Anchor leaf; a non-empty href opens
// an HRef container.
func (pc *parseContext) handleAnchorOrHRef(owner NodeID) Status {
	opts := pc.scratch().Options
	name := optionValue(opts, "name")
	href := optionValue(opts, "href")

	if name != "" {
		id := pc.tree.newNode(KindAnchor, owner, pc.line())
		pc.tree.nodes[id].text = name
		pc.advance()

		return StatusOK
	}
	if href != "" {
		return pc.parseHRef(owner, href)
	}

	pc.diag(SeverityWarning, DiagUnexpectedToken, pc.line(), "<a> without name or href")
	pc.advance()

	return StatusOK
}

func (pc *parseContext) handleImageTag(owner NodeID) Status {
	src := optionValue(pc.scratch().Options, "src")
	if src == "" {
		pc.diag(SeverityWarning, DiagUnexpectedToken, pc.line(), "<img> missing src attribute")
		pc.advance()

		return StatusOK
	}

	id := pc.tree.newNode(KindImage, owner, pc.line())
	pc.tree.nodes[id].text = src
	pc.tree.nodes[id].sub = uint8(RendererHTML)
	pc.advance()

	return StatusOK
}

// skipBlank advances past any whitespace/blank-line tokens separating
// sibling HTML block markers.
func (pc *parseContext) skipBlank() {
	for pc.curKind == TokenWhitespace || pc.curKind == TokenNewPara {
		pc.advance()
	}
}

// parseHtmlList implements the HtmlList production (spec §4.6): the first
// non-whitespace tag must be a <li>; otherwise diagnostic and exit. Builds
// HtmlListItem children while items keep returning ListItem. Normalizes
// EndList to OK; end-of-stream without a matching end tag is a diagnostic.
func (pc *parseContext) parseHtmlList(owner NodeID, kind ListKind) Status {
	listID := pc.tree.newNode(KindHtmlList, owner, pc.line())
	pc.tree.nodes[listID].sub = uint8(kind)
	pc.pushNode(listID)
	defer pc.popNode()

	pc.advance()
	pc.skipBlank()

	if !(pc.curKind == TokenHTMLTag && !pc.scratch().EndTag && lookupHTMLTag(pc.scratch().Name) == TagLI) {
		pc.diag(SeverityError, DiagUnexpectedToken, pc.line(), "expected <li> at start of list")

		return StatusOK
	}

	for pc.curKind == TokenHTMLTag && !pc.scratch().EndTag && lookupHTMLTag(pc.scratch().Name) == TagLI {
		itemID := pc.tree.newNode(KindHtmlListItem, listID, pc.line())
		pc.pushNode(itemID)
		pc.advance()
		st := pc.parsePara(itemID)
		pc.popNode()

		switch st {
		case StatusListItem:
			// loop condition rechecks the still-current <li> token
		case StatusNewPara:
			if pc.afterNewPara() == StatusEOS {
				pc.diag(SeverityError, DiagUnterminatedBlock, pc.line(), "unterminated <ul>/<ol>")

				return StatusEOS
			}
		case StatusEndList:
			return StatusOK
		case StatusEOS:
			pc.diag(SeverityError, DiagUnterminatedBlock, pc.line(), "unterminated <ul>/<ol>")

			return StatusEOS
		default:
			return st
		}
		pc.skipBlank()
	}

	return StatusOK
}

// parseHtmlPre implements the HtmlPre production: builds Para children
// while each returns NEWPARA; terminates on EndPre (normalized to OK).
func (pc *parseContext) parseHtmlPre(owner NodeID) Status {
	id := pc.tree.newNode(KindHtmlPre, owner, pc.line())
	pc.pushNode(id)
	defer pc.popNode()

	pc.advance()

	for {
		st := pc.parsePara(id)
		switch st {
		case StatusNewPara:
			if pc.afterNewPara() == StatusEOS {
				return StatusEOS
			}
		case StatusEndPre:
			return StatusOK
		case StatusEOS:
			pc.diag(SeverityError, DiagUnterminatedBlock, pc.line(), "unterminated <pre>")

			return StatusEOS
		default:
			return st
		}
	}
}

// parseDescData implements an HtmlDescData body: like HtmlPre, a run of
// Paras while NEWPARA, but terminated by whatever the caller's dispatch
// surfaces (EndDesc, a following DescTitle, or a structural bubble).
func (pc *parseContext) parseDescData(owner NodeID) Status {
	id := pc.tree.newNode(KindHtmlDescData, owner, pc.line())
	pc.pushNode(id)
	defer pc.popNode()

	for {
		st := pc.parsePara(id)
		switch st {
		case StatusNewPara:
			if pc.afterNewPara() == StatusEOS {
				return StatusEOS
			}
		default:
			return st
		}
	}
}

// parseHtmlDescList implements the HtmlDescList production (spec §4.6):
// expects a leading <dt>, then loops a DescTitle/DescData pair while the
// cycle keeps returning DescTitle. Normalizes EndDesc to OK.
func (pc *parseContext) parseHtmlDescList(owner NodeID) Status {
	id := pc.tree.newNode(KindHtmlDescList, owner, pc.line())
	pc.pushNode(id)
	defer pc.popNode()

	pc.advance()
	pc.skipBlank()

	if !(pc.curKind == TokenHTMLTag && !pc.scratch().EndTag && lookupHTMLTag(pc.scratch().Name) == TagDT) {
		pc.diag(SeverityError, DiagUnexpectedToken, pc.line(), "expected <dt> at start of description list")

		return StatusOK
	}

	for pc.curKind == TokenHTMLTag && !pc.scratch().EndTag && lookupHTMLTag(pc.scratch().Name) == TagDT {
		st := pc.parseHtmlDescTitle(id)
		if st != StatusDescData {
			switch st {
			case StatusEndDesc:
				return StatusOK
			case StatusEOS:
				return StatusEOS
			default:
				return st
			}
		}

		pc.advance() // past the <dd> start tag that ended the title
		st = pc.parseDescData(id)
		switch st {
		case StatusDescTitle:
			continue // curKind is already at the next <dt>
		case StatusEndDesc:
			return StatusOK
		case StatusEOS:
			return StatusEOS
		default:
			return st
		}
	}

	return StatusOK
}

// parseHtmlTable implements the HtmlTable production's `getrow` loop
// (spec §4.6): a <tr> begins a row; a <caption> (at most one, must be
// first) is parsed and the loop resumes; anything else is a diagnostic.
// Normalizes EndTable to OK.
func (pc *parseContext) parseHtmlTable(owner NodeID) Status {
	tableID := pc.tree.newNode(KindHtmlTable, owner, pc.line())
	pc.pushNode(tableID)
	defer pc.popNode()

	pc.advance()
	haveCaption := false

	for {
		pc.skipBlank()

		switch {
		case pc.curKind == TokenHTMLTag && pc.scratch().EndTag && lookupHTMLTag(pc.scratch().Name) == TagTable:
			pc.advance()

			return StatusOK

		case pc.curKind == TokenEOF:
			pc.diag(SeverityError, DiagUnterminatedBlock, pc.line(), "unterminated <table>")

			return StatusEOS

		case pc.curKind == TokenHTMLTag && !pc.scratch().EndTag && lookupHTMLTag(pc.scratch().Name) == TagCaption:
			if haveCaption {
				pc.diag(SeverityWarning, DiagUnexpectedToken, pc.line(), "<table> already has a caption")
			}
			haveCaption = true
			if st := pc.parseHtmlCaption(tableID); st != StatusOK {
				return st
			}

		case pc.curKind == TokenHTMLTag && !pc.scratch().EndTag && lookupHTMLTag(pc.scratch().Name) == TagTR:
			switch st := pc.parseHtmlRow(tableID); st {
			case StatusEndTable:
				return StatusOK
			case StatusTableRow:
				// a new <tr> bubbled up implying the previous row ended
				// implicitly; curKind is already at it.
			case StatusEOS:
				return StatusEOS
			case StatusOK:
			default:
				return st
			}

		default:
			pc.diag(SeverityError, DiagUnexpectedToken, pc.line(), "expected <tr> or <caption>")
			pc.advance()
		}
	}
}

// parseHtmlRow implements the HtmlRow production: first expects <td> or
// <th> (the latter setting the current "heading" flag), then builds
// HtmlCell children while the cell's Para keeps returning TableCell or
// TableHCell (each updating the heading flag for the next cell).
func (pc *parseContext) parseHtmlRow(owner NodeID) Status {
	rowID := pc.tree.newNode(KindHtmlRow, owner, pc.line())
	pc.pushNode(rowID)
	defer pc.popNode()

	pc.advance()
	pc.skipBlank()

	heading := false
	switch {
	case pc.curKind == TokenHTMLTag && !pc.scratch().EndTag && lookupHTMLTag(pc.scratch().Name) == TagTH:
		heading = true
	case pc.curKind == TokenHTMLTag && !pc.scratch().EndTag && lookupHTMLTag(pc.scratch().Name) == TagTD:
		heading = false
	default:
		pc.diag(SeverityError, DiagUnexpectedToken, pc.line(), "expected <td> or <th>")

		return StatusOK
	}

	for pc.curKind == TokenHTMLTag && !pc.scratch().EndTag &&
		(lookupHTMLTag(pc.scratch().Name) == TagTD || lookupHTMLTag(pc.scratch().Name) == TagTH) {
		cellID := pc.tree.newNode(KindHtmlCell, rowID, pc.line())
		pc.tree.nodes[cellID].boolVal = heading
		pc.pushNode(cellID)
		pc.advance()
		st := pc.parsePara(cellID)
		pc.popNode()

		switch st {
		case StatusTableCell:
			heading = false
		case StatusTableHCell:
			heading = true
		case StatusNewPara:
			if pc.afterNewPara() == StatusEOS {
				return StatusEOS
			}

			continue
		case StatusEOS:
			return StatusEOS
		default:
			return st
		}
		pc.skipBlank()
	}

	return StatusOK
}
