package docparser

// TagID enumerates every recognized HTML tag name (spec §6's HTML tag
// name table), plus TagUnknown for anything not in the whitelist.
type TagID uint8

const (
	TagUnknown TagID = iota
	TagB
	TagEm
	TagCode
	TagSub
	TagSup
	TagCenter
	TagSmall
	TagUL
	TagOL
	TagLI
	TagPre
	TagP
	TagDL
	TagDT
	TagDD
	TagTable
	TagTR
	TagTD
	TagTH
	TagCaption
	TagBR
	TagHR
	TagA
	TagH1
	TagH2
	TagH3
	TagImg
)

// htmlTagTable maps a lowercase tag name to its id.
var htmlTagTable = map[string]TagID{
	"b": TagB, "em": TagEm, "code": TagCode, "sub": TagSub, "sup": TagSup,
	"center": TagCenter, "small": TagSmall,
	"ul": TagUL, "ol": TagOL, "li": TagLI,
	"pre": TagPre, "p": TagP,
	"dl": TagDL, "dt": TagDT, "dd": TagDD,
	"table": TagTable, "tr": TagTR, "td": TagTD, "th": TagTH, "caption": TagCaption,
	"br": TagBR, "hr": TagHR, "a": TagA,
	"h1": TagH1, "h2": TagH2, "h3": TagH3,
	"img": TagImg,
}

// tagAliases holds project-defined extra tag spellings (docparser.yaml's
// tag_aliases), consulted after htmlTagTable. Populated once via
// RegisterTagAlias during CLI startup, before any ParseDoc call.
var tagAliases = map[string]TagID{}

// RegisterTagAlias makes alias resolve to the same TagID as canonical, the
// wiring point for docparser.yaml's tag_aliases. An unknown canonical is a
// no-op.
func RegisterTagAlias(alias, canonical string) {
	if id, ok := htmlTagTable[canonical]; ok {
		tagAliases[alias] = id
	}
}

// lookupHTMLTag resolves a lowercase tag name to its id, or TagUnknown.
func lookupHTMLTag(name string) TagID {
	if id, ok := htmlTagTable[name]; ok {
		return id
	}
	if id, ok := tagAliases[name]; ok {
		return id
	}

	return TagUnknown
}

// isInlineStyleTag reports whether id is one of the inline style tags
// {b, em, code, sub, sup, center, small} and returns the matching Style.
func isInlineStyleTag(id TagID) (Style, bool) {
	switch id {
	case TagB:
		return StyleBold, true
	case TagEm:
		return StyleItalic, true
	case TagCode:
		return StyleCode, true
	case TagSub:
		return StyleSubscript, true
	case TagSup:
		return StyleSuperscript, true
	case TagCenter:
		return StyleCenter, true
	case TagSmall:
		return StyleSmall, true
	default:
		return 0, false
	}
}

// HTMLTagCount returns the number of built-in HTML tag names the package
// recognizes, not counting aliases registered at runtime via
// RegisterTagAlias. Exposed alongside CommandCount for the CLI's version
// command.
func HTMLTagCount() int { return len(htmlTagTable) }
