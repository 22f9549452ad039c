package docparser

import "errors"

// ErrSkipChildren is a sentinel a Visitor method can return to skip the
// current node's children while continuing with its siblings; it is not
// treated as a real traversal failure.
var ErrSkipChildren = errors.New("docparser: skip children")

// Visitor defines one method per NodeKind (spec §3's tagged-variant node
// model means there is no typed hierarchy to switch on by pointer type, as
// a conventional AST visitor would — each method instead receives the
// Tree and the node's NodeID). Return nil to continue traversal,
// ErrSkipChildren to skip the node's children, or any other error to
// abort the walk immediately.
type Visitor interface {
	VisitRoot(t *Tree, id NodeID) error
	VisitWord(t *Tree, id NodeID) error
	VisitWhiteSpace(t *Tree, id NodeID) error
	VisitURL(t *Tree, id NodeID) error
	VisitSymbol(t *Tree, id NodeID) error
	VisitLineBreak(t *Tree, id NodeID) error
	VisitHorRuler(t *Tree, id NodeID) error
	VisitAnchor(t *Tree, id NodeID) error
	VisitFormula(t *Tree, id NodeID) error
	VisitXRefItem(t *Tree, id NodeID) error
	VisitInclude(t *Tree, id NodeID) error
	VisitIncOperator(t *Tree, id NodeID) error
	VisitVerbatim(t *Tree, id NodeID) error
	VisitCopy(t *Tree, id NodeID) error
	VisitStyleChange(t *Tree, id NodeID) error
	VisitHRef(t *Tree, id NodeID) error
	VisitRef(t *Tree, id NodeID) error
	VisitLink(t *Tree, id NodeID) error
	VisitImage(t *Tree, id NodeID) error
	VisitDotFile(t *Tree, id NodeID) error
	VisitIndexEntry(t *Tree, id NodeID) error
	VisitSecRefItem(t *Tree, id NodeID) error
	VisitHtmlCaption(t *Tree, id NodeID) error
	VisitHtmlHeader(t *Tree, id NodeID) error
	VisitHtmlDescTitle(t *Tree, id NodeID) error
	VisitTitle(t *Tree, id NodeID) error
	VisitPara(t *Tree, id NodeID) error
	VisitAutoListItem(t *Tree, id NodeID) error
	VisitAutoList(t *Tree, id NodeID) error
	VisitSimpleListItem(t *Tree, id NodeID) error
	VisitSimpleList(t *Tree, id NodeID) error
	VisitHtmlListItem(t *Tree, id NodeID) error
	VisitHtmlList(t *Tree, id NodeID) error
	VisitHtmlDescData(t *Tree, id NodeID) error
	VisitHtmlDescList(t *Tree, id NodeID) error
	VisitHtmlCell(t *Tree, id NodeID) error
	VisitHtmlRow(t *Tree, id NodeID) error
	VisitHtmlTable(t *Tree, id NodeID) error
	VisitHtmlPre(t *Tree, id NodeID) error
	VisitSecRefList(t *Tree, id NodeID) error
	VisitInternal(t *Tree, id NodeID) error
	VisitLanguage(t *Tree, id NodeID) error
	VisitSimpleSect(t *Tree, id NodeID) error
	VisitSection(t *Tree, id NodeID) error
}

// BaseVisitor provides no-op default implementations for every Visitor
// method. Embed it in a concrete visitor to only override what's needed.
type BaseVisitor struct{}

func (BaseVisitor) VisitRoot(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitWord(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitWhiteSpace(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitURL(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitSymbol(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitLineBreak(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitHorRuler(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitAnchor(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitFormula(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitXRefItem(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitInclude(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitIncOperator(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitVerbatim(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitCopy(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitStyleChange(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitHRef(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitRef(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitLink(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitImage(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitDotFile(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitIndexEntry(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitSecRefItem(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitHtmlCaption(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitHtmlHeader(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitHtmlDescTitle(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitTitle(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitPara(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitAutoListItem(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitAutoList(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitSimpleListItem(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitSimpleList(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitHtmlListItem(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitHtmlList(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitHtmlDescData(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitHtmlDescList(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitHtmlCell(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitHtmlRow(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitHtmlTable(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitHtmlPre(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitSecRefList(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitInternal(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitLanguage(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitSimpleSect(*Tree, NodeID) error { return nil }
func (BaseVisitor) VisitSection(*Tree, NodeID) error { return nil }

// Walk traverses the tree in pre-order depth-first order starting at id,
// dispatching to the Visitor method matching each node's Kind.
func Walk(t *Tree, id NodeID, v Visitor) error {
	var err error
	switch t.Kind(id) {
	case KindRoot:
		err = v.VisitRoot(t, id)
	case KindWord:
		err = v.VisitWord(t, id)
	case KindWhiteSpace:
		err = v.VisitWhiteSpace(t, id)
	case KindURL:
		err = v.VisitURL(t, id)
	case KindSymbol:
		err = v.VisitSymbol(t, id)
	case KindLineBreak:
		err = v.VisitLineBreak(t, id)
	case KindHorRuler:
		err = v.VisitHorRuler(t, id)
	case KindAnchor:
		err = v.VisitAnchor(t, id)
	case KindFormula:
		err = v.VisitFormula(t, id)
	case KindXRefItem:
		err = v.VisitXRefItem(t, id)
	case KindInclude:
		err = v.VisitInclude(t, id)
	case KindIncOperator:
		err = v.VisitIncOperator(t, id)
	case KindVerbatim:
		err = v.VisitVerbatim(t, id)
	case KindCopy:
		err = v.VisitCopy(t, id)
	case KindStyleChange:
		err = v.VisitStyleChange(t, id)
	case KindHRef:
		err = v.VisitHRef(t, id)
	case KindRef:
		err = v.VisitRef(t, id)
	case KindLink:
		err = v.VisitLink(t, id)
	case KindImage:
		err = v.VisitImage(t, id)
	case KindDotFile:
		err = v.VisitDotFile(t, id)
	case KindIndexEntry:
		err = v.VisitIndexEntry(t, id)
	case KindSecRefItem:
		err = v.VisitSecRefItem(t, id)
	case KindHtmlCaption:
		err = v.VisitHtmlCaption(t, id)
	case KindHtmlHeader:
		err = v.VisitHtmlHeader(t, id)
	case KindHtmlDescTitle:
		err = v.VisitHtmlDescTitle(t, id)
	case KindTitle:
		err = v.VisitTitle(t, id)
	case KindPara:
		err = v.VisitPara(t, id)
	case KindAutoListItem:
		err = v.VisitAutoListItem(t, id)
	case KindAutoList:
		err = v.VisitAutoList(t, id)
	case KindSimpleListItem:
		err = v.VisitSimpleListItem(t, id)
	case KindSimpleList:
		err = v.VisitSimpleList(t, id)
	case KindHtmlListItem:
		err = v.VisitHtmlListItem(t, id)
	case KindHtmlList:
		err = v.VisitHtmlList(t, id)
	case KindHtmlDescData:
		err = v.VisitHtmlDescData(t, id)
	case KindHtmlDescList:
		err = v.VisitHtmlDescList(t, id)
	case KindHtmlCell:
		err = v.VisitHtmlCell(t, id)
	case KindHtmlRow:
		err = v.VisitHtmlRow(t, id)
	case KindHtmlTable:
		err = v.VisitHtmlTable(t, id)
	case KindHtmlPre:
		err = v.VisitHtmlPre(t, id)
	case KindSecRefList:
		err = v.VisitSecRefList(t, id)
	case KindInternal:
		err = v.VisitInternal(t, id)
	case KindLanguage:
		err = v.VisitLanguage(t, id)
	case KindSimpleSect:
		err = v.VisitSimpleSect(t, id)
	case KindSection:
		err = v.VisitSection(t, id)
	}

	if err != nil {
		if errors.Is(err, ErrSkipChildren) {
			return nil
		}

		return err
	}

	for _, child := range t.Children(id) {
		if err := Walk(t, child, v); err != nil {
			return err
		}
	}

	return nil
}
