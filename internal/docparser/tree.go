package docparser

// NodeKind is the closed set of AST node variants (spec §3). It collapses
// the spec's polymorphic node hierarchy into a single tagged-variant type,
// per the "tagged variants instead of virtual dispatch" design note: one
// sum type whose cases carry only the fields that kind actually uses.
type NodeKind uint8

const (
	// KindRoot is the tree root; every node's parent chain terminates here.
	KindRoot NodeKind = iota

	// Leaf kinds.
	KindWord
	KindWhiteSpace
	KindURL
	KindSymbol
	KindLineBreak
	KindHorRuler
	KindAnchor
	KindFormula
	KindXRefItem
	KindInclude
	KindIncOperator
	KindVerbatim
	KindCopy
	KindStyleChange

	// Inline container kinds.
	KindHRef
	KindRef
	KindLink
	KindImage
	KindDotFile
	KindIndexEntry
	KindSecRefItem
	KindHtmlCaption
	KindHtmlHeader
	KindHtmlDescTitle
	KindTitle

	// Block container kinds.
	KindPara
	KindAutoListItem
	KindAutoList
	KindSimpleListItem
	KindSimpleList
	KindHtmlListItem
	KindHtmlList
	KindHtmlDescData
	KindHtmlDescList
	KindHtmlCell
	KindHtmlRow
	KindHtmlTable
	KindHtmlPre
	KindSecRefList
	KindInternal
	KindLanguage
	KindSimpleSect
	KindSection
)

//nolint:revive // cyclomatic - switch cases are simple string returns
func (k NodeKind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindWord:
		return "Word"
	case KindWhiteSpace:
		return "WhiteSpace"
	case KindURL:
		return "URL"
	case KindSymbol:
		return "Symbol"
	case KindLineBreak:
		return "LineBreak"
	case KindHorRuler:
		return "HorRuler"
	case KindAnchor:
		return "Anchor"
	case KindFormula:
		return "Formula"
	case KindXRefItem:
		return "XRefItem"
	case KindInclude:
		return "Include"
	case KindIncOperator:
		return "IncOperator"
	case KindVerbatim:
		return "Verbatim"
	case KindCopy:
		return "Copy"
	case KindStyleChange:
		return "StyleChange"
	case KindHRef:
		return "HRef"
	case KindRef:
		return "Ref"
	case KindLink:
		return "Link"
	case KindImage:
		return "Image"
	case KindDotFile:
		return "DotFile"
	case KindIndexEntry:
		return "IndexEntry"
	case KindSecRefItem:
		return "SecRefItem"
	case KindHtmlCaption:
		return "HtmlCaption"
	case KindHtmlHeader:
		return "HtmlHeader"
	case KindHtmlDescTitle:
		return "HtmlDescTitle"
	case KindTitle:
		return "Title"
	case KindPara:
		return "Para"
	case KindAutoListItem:
		return "AutoListItem"
	case KindAutoList:
		return "AutoList"
	case KindSimpleListItem:
		return "SimpleListItem"
	case KindSimpleList:
		return "SimpleList"
	case KindHtmlListItem:
		return "HtmlListItem"
	case KindHtmlList:
		return "HtmlList"
	case KindHtmlDescData:
		return "HtmlDescData"
	case KindHtmlDescList:
		return "HtmlDescList"
	case KindHtmlCell:
		return "HtmlCell"
	case KindHtmlRow:
		return "HtmlRow"
	case KindHtmlTable:
		return "HtmlTable"
	case KindHtmlPre:
		return "HtmlPre"
	case KindSecRefList:
		return "SecRefList"
	case KindInternal:
		return "Internal"
	case KindLanguage:
		return "Language"
	case KindSimpleSect:
		return "SimpleSect"
	case KindSection:
		return "Section"
	default:
		return "Unknown"
	}
}

// SymbolKind discriminates a decoded HTML character entity (spec §6).
type SymbolKind uint8

const (
	SymCopy SymbolKind = iota
	SymLess
	SymGreater
	SymAmp
	SymApos
	SymQuot
	SymSzlig
	SymNbsp
	SymUml
	SymAcute
	SymGrave
	SymCirc
	SymTilde
	SymCedil
	SymRing

	// Character-escape commands (\\, \@, \<, \>, \&, \$, \#, \%) decode to
	// a Symbol leaf too, carrying the literal escaped character in place
	// of an accent letter.
	SymEscBSlash
	SymEscAt
	SymEscLess
	SymEscGreater
	SymEscAmp
	SymEscDollar
	SymEscHash
	SymEscPercent
)

// XRefKind discriminates a cross-reference item's category.
type XRefKind uint8

const (
	XRefBug XRefKind = iota
	XRefTodo
	XRefTest
	XRefDeprecated
)

// IncludeKind discriminates an \include-family directive.
type IncludeKind uint8

const (
	IncludeFile IncludeKind = iota
	IncludeDontInclude
	IncludeHTMLInclude
	IncludeVerbInclude
)

// IncOpKind discriminates an \include-operator (\skip, \until, ...) directive.
type IncOpKind uint8

const (
	IncOpSkip IncOpKind = iota
	IncOpUntil
	IncOpSkipLine
	IncOpLine
)

// VerbatimKind discriminates a captured verbatim-family block.
type VerbatimKind uint8

const (
	VerbatimCode VerbatimKind = iota
	VerbatimHTMLOnly
	VerbatimLatexOnly
	VerbatimPlain
)

// Style discriminates an inline style span.
type Style uint8

const (
	StyleBold Style = iota
	StyleItalic
	StyleCode
	StyleCenter
	StyleSmall
	StyleSubscript
	StyleSuperscript
)

// ImageRenderer discriminates an \image directive's target renderer.
type ImageRenderer uint8

const (
	RendererHTML ImageRenderer = iota
	RendererLatex
	RendererRTF
)

// ListKind discriminates an HTML list's ordered/unordered flavor.
type ListKind uint8

const (
	ListUnordered ListKind = iota
	ListOrdered
)

// SimpleSectKind discriminates the kind of a \sa/\note/\param/... section.
type SimpleSectKind uint8

const (
	SimpleSee SimpleSectKind = iota
	SimpleReturn
	SimpleAuthor
	SimpleVersion
	SimpleSince
	SimpleDate
	SimpleNote
	SimpleWarning
	SimplePre
	SimplePost
	SimpleInvar
	SimpleRemark
	SimpleAttention
	SimpleUser
	SimpleParam
	SimpleRetVal
	SimpleException
)

// NodeID addresses a node inside a Tree's arena. NodeID(0) is always Root.
// Using an index instead of a pointer gives every node a non-owning,
// always-valid "parent back-reference" (spec §3/§9) without any cycle:
// the arena slice is the single owner, and a NodeID is just an integer.
type NodeID int

// noParent marks the root's own (absent) parent.
const noParent NodeID = -1

// docNode is the single tagged-variant node struct. Only the fields
// relevant to Kind are meaningful; see the per-kind accessor methods on
// Tree for the documented subset each kind uses.
type docNode struct {
	kind     NodeKind
	parent   NodeID
	children []NodeID
	line     int

	text   string // Word/WhiteSpace/URL text, Anchor/Formula id, link targets, file paths, section id, language name
	text2  string // secondary text (IncOperator pattern)
	letter byte   // accent letter for Uml/Acute/Grave/Circ/Tilde/Cedil/Ring

	intVal  int  // Section/HtmlHeader level, AutoList indent, StyleChange depth
	boolVal bool // AutoList.isEnumerated, StyleChange.isOpen, HtmlCell.isHeading, Include present-flag reuse
	sub     uint8 // SymbolKind/XRefKind/IncludeKind/IncOpKind/VerbatimKind/Style/ImageRenderer/ListKind/SimpleSectKind

	params []string // Param/RetVal/Exception parameter name list
}

// Tree is the parsed AST plus the diagnostics collected while parsing it.
type Tree struct {
	nodes       []docNode
	Diagnostics []Diagnostic
	LexerState  LexerState // state the lexer was left in after ParseDoc returned
}

func newTree() *Tree {
	t := &Tree{nodes: make([]docNode, 0, 64)}
	t.nodes = append(t.nodes, docNode{kind: KindRoot, parent: noParent})

	return t
}

// Root returns the id of the tree's root node.
func (t *Tree) Root() NodeID { return NodeID(0) }

// Kind returns a node's NodeKind.
func (t *Tree) Kind(id NodeID) NodeKind { return t.nodes[id].kind }

// Parent returns a node's parent id, or noParent for Root.
func (t *Tree) Parent(id NodeID) NodeID { return t.nodes[id].parent }

// Children returns a copy of a node's ordered child id slice.
func (t *Tree) Children(id NodeID) []NodeID {
	src := t.nodes[id].children
	if len(src) == 0 {
		return nil
	}
	out := make([]NodeID, len(src))
	copy(out, src)

	return out
}

// Line returns the source line a node was created on.
func (t *Tree) Line(id NodeID) int { return t.nodes[id].line }

// newNode allocates a node of the given kind as a child of parent and
// returns its id. The parent's child list is updated immediately, so
// ownership (the arena slice) is established at creation time.
func (t *Tree) newNode(kind NodeKind, parent NodeID, line int) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, docNode{kind: kind, parent: parent, line: line})
	t.nodes[parent].children = append(t.nodes[parent].children, id)

	return id
}

// --- Ancestor predicates (spec §4.1). These walk the parent chain and
// must not allocate. ---

func (t *Tree) hasAncestorKind(id NodeID, kind NodeKind) bool {
	for p := t.nodes[id].parent; p != noParent; p = t.nodes[p].parent {
		if t.nodes[p].kind == kind {
			return true
		}
	}

	return false
}

func (t *Tree) insidePRE(id NodeID) bool { return t.hasAncestorKind(id, KindHtmlPre) }

func (t *Tree) insideLI(id NodeID) bool {
	return t.hasAncestorKind(id, KindHtmlListItem) || t.hasAncestorKind(id, KindAutoListItem) ||
		t.hasAncestorKind(id, KindSimpleListItem)
}

func (t *Tree) insideUL(id NodeID) bool {
	for p := t.nodes[id].parent; p != noParent; p = t.nodes[p].parent {
		if t.nodes[p].kind == KindHtmlList && ListKind(t.nodes[p].sub) == ListUnordered {
			return true
		}
	}

	return false
}

func (t *Tree) insideOL(id NodeID) bool {
	for p := t.nodes[id].parent; p != noParent; p = t.nodes[p].parent {
		if t.nodes[p].kind == KindHtmlList && ListKind(t.nodes[p].sub) == ListOrdered {
			return true
		}
	}

	return false
}

func (t *Tree) insideLang(id NodeID) bool { return t.hasAncestorKind(id, KindLanguage) }

// findAncestor returns the nearest ancestor (or id itself) of the given
// kind, and whether one was found.
func (t *Tree) findAncestor(id NodeID, kind NodeKind) (NodeID, bool) {
	for p := id; p != noParent; p = t.nodes[p].parent {
		if t.nodes[p].kind == kind {
			return p, true
		}
	}

	return noParent, false
}

// --- Typed read-only accessors, constructed on demand for the Visitor
// (spec §9's "tagged variants" note: per-kind views instead of virtual
// dispatch, without materializing a wrapper struct for every node). ---

// Word returns the text of a Word/WhiteSpace/URL leaf.
func (t *Tree) Word(id NodeID) string { return t.nodes[id].text }

// Symbol returns a Symbol leaf's kind and (if applicable) accent letter.
func (t *Tree) Symbol(id NodeID) (SymbolKind, byte) {
	n := &t.nodes[id]

	return SymbolKind(n.sub), n.letter
}

// AnchorID returns an Anchor leaf's id.
func (t *Tree) AnchorID(id NodeID) string { return t.nodes[id].text }

// FormulaID returns a Formula leaf's id.
func (t *Tree) FormulaID(id NodeID) string { return t.nodes[id].text }

// XRefItem returns an XRefItem leaf's kind and id.
func (t *Tree) XRefItem(id NodeID) (XRefKind, string) {
	n := &t.nodes[id]

	return XRefKind(n.sub), n.text
}

// IncludeDirective returns an Include leaf's file path and kind.
func (t *Tree) IncludeDirective(id NodeID) (string, IncludeKind) {
	n := &t.nodes[id]

	return n.text, IncludeKind(n.sub)
}

// IncOperator returns an IncOperator leaf's kind and pattern.
func (t *Tree) IncOperator(id NodeID) (IncOpKind, string) {
	n := &t.nodes[id]

	return IncOpKind(n.sub), n.text2
}

// VerbatimText returns a Verbatim leaf's captured text and kind.
func (t *Tree) VerbatimText(id NodeID) (string, VerbatimKind) {
	n := &t.nodes[id]

	return n.text, VerbatimKind(n.sub)
}

// CopyTarget returns a Copy leaf's link target.
func (t *Tree) CopyTarget(id NodeID) string { return t.nodes[id].text }

// StyleChangeInfo returns a StyleChange leaf's style, depth, and open/close flag.
func (t *Tree) StyleChangeInfo(id NodeID) (Style, int, bool) {
	n := &t.nodes[id]

	return Style(n.sub), n.intVal, n.boolVal
}

// HRefURL returns an HRef container's url.
func (t *Tree) HRefURL(id NodeID) string { return t.nodes[id].text }

// RefTarget returns a Ref container's target.
func (t *Tree) RefTarget(id NodeID) string { return t.nodes[id].text }

// LinkTarget returns a Link container's target.
func (t *Tree) LinkTarget(id NodeID) string { return t.nodes[id].text }

// ImageInfo returns an Image container's file and renderer.
func (t *Tree) ImageInfo(id NodeID) (string, ImageRenderer) {
	n := &t.nodes[id]

	return n.text, ImageRenderer(n.sub)
}

// DotFileName returns a DotFile container's file name.
func (t *Tree) DotFileName(id NodeID) string { return t.nodes[id].text }

// SecRefTarget returns a SecRefItem container's target.
func (t *Tree) SecRefTarget(id NodeID) string { return t.nodes[id].text }

// HeaderLevel returns an HtmlHeader container's level (1-3).
func (t *Tree) HeaderLevel(id NodeID) int { return t.nodes[id].intVal }

// AutoListInfo returns an AutoList's indent and enumerated flag.
func (t *Tree) AutoListInfo(id NodeID) (int, bool) {
	n := &t.nodes[id]

	return n.intVal, n.boolVal
}

// HtmlListKind returns an HtmlList's ordered/unordered kind.
func (t *Tree) HtmlListKind(id NodeID) ListKind { return ListKind(t.nodes[id].sub) }

// HtmlCellIsHeading returns whether an HtmlCell is a heading (<th>) cell.
func (t *Tree) HtmlCellIsHeading(id NodeID) bool { return t.nodes[id].boolVal }

// LanguageName returns a Language section's language tag.
func (t *Tree) LanguageName(id NodeID) string { return t.nodes[id].text }

// SimpleSectInfo returns a SimpleSect's kind and (for Param/RetVal/Exception)
// parameter name list.
func (t *Tree) SimpleSectInfo(id NodeID) (SimpleSectKind, []string) {
	n := &t.nodes[id]

	return SimpleSectKind(n.sub), n.params
}

// SectionInfo returns a Section's level and id.
func (t *Tree) SectionInfo(id NodeID) (int, string) {
	n := &t.nodes[id]

	return n.intVal, n.text
}

// Title returns the accumulated title text beneath a Title/HtmlCaption/
// HtmlDescTitle container (its Word children concatenated with single
// spaces; callers wanting structure should walk Children instead).
func (t *Tree) Title(id NodeID) string {
	var out []byte
	for _, c := range t.nodes[id].children {
		if t.nodes[c].kind == KindWord || t.nodes[c].kind == KindWhiteSpace {
			out = append(out, t.nodes[c].text...)
		}
	}

	return string(out)
}
