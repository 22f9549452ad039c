package docparser

// Status is the single closed alphabet of production return values
// (spec §4.8). Every production declares, in its doc comment, which
// subset it may return; callers normalize values they don't propagate
// before returning to their own caller (e.g. parseHtmlList normalizes
// StatusEndList to StatusOK).
type Status uint8

const (
	// StatusEOS signals end of stream.
	StatusEOS Status = iota
	// StatusOK signals "continue, nothing structural happened".
	StatusOK
	// StatusNewPara signals a blank-line paragraph boundary.
	StatusNewPara
	// StatusListItemTok signals an unconsumed auto-list item token bubbling up.
	StatusListItemTok
	// StatusEndListTok signals an unconsumed auto-list end token bubbling up.
	StatusEndListTok
	// StatusListItem signals "the enclosing list/dl/table wants another item".
	StatusListItem
	// StatusEndList signals an HTML </ul>/</ol> end tag.
	StatusEndList
	// StatusEndPre signals an HTML </pre> end tag.
	StatusEndPre
	// StatusEndDesc signals an HTML </dl> end tag.
	StatusEndDesc
	// StatusEndTable signals an HTML </table> end tag.
	StatusEndTable
	// StatusDescTitle signals "start another <dt>".
	StatusDescTitle
	// StatusDescData signals "a <dd> was seen, parse its body".
	StatusDescData
	// StatusTableRow signals "a <tr> was seen".
	StatusTableRow
	// StatusTableCell signals "a <td> was seen".
	StatusTableCell
	// StatusTableHCell signals "a <th> was seen".
	StatusTableHCell
	// StatusSection signals a \section/\subsection command was read.
	StatusSection
	// StatusInternal signals an \internal command was read.
	StatusInternal
	// StatusSimpleSec signals a new simple-section command while already
	// inside one; the outer level restarts dispatch on it.
	StatusSimpleSec
	// StatusSwitchLang signals a \~lang command was read.
	StatusSwitchLang
)

//nolint:revive // cyclomatic - switch cases are simple string returns
func (s Status) String() string {
	switch s {
	case StatusEOS:
		return "EOS"
	case StatusOK:
		return "OK"
	case StatusNewPara:
		return "NEWPARA"
	case StatusListItemTok:
		return "LISTITEM"
	case StatusEndListTok:
		return "ENDLIST"
	case StatusListItem:
		return "ListItem"
	case StatusEndList:
		return "EndList"
	case StatusEndPre:
		return "EndPre"
	case StatusEndDesc:
		return "EndDesc"
	case StatusEndTable:
		return "EndTable"
	case StatusDescTitle:
		return "DescTitle"
	case StatusDescData:
		return "DescData"
	case StatusTableRow:
		return "TableRow"
	case StatusTableCell:
		return "TableCell"
	case StatusTableHCell:
		return "TableHCell"
	case StatusSection:
		return "Section"
	case StatusInternal:
		return "Internal"
	case StatusSimpleSec:
		return "SimpleSec"
	case StatusSwitchLang:
		return "SwitchLang"
	default:
		return "Unknown"
	}
}
