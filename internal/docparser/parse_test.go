package docparser

import (
	"strings"
	"testing"
)

func mustChild(t *testing.T, tree *Tree, id NodeID, n int) NodeID {
	t.Helper()
	children := tree.Children(id)
	if n >= len(children) {
		t.Fatalf("node %d has %d children, want at least %d", id, len(children), n+1)
	}

	return children[n]
}

func findKind(tree *Tree, id NodeID, kind NodeKind) (NodeID, bool) {
	if tree.Kind(id) == kind {
		return id, true
	}
	for _, c := range tree.Children(id) {
		if found, ok := findKind(tree, c, kind); ok {
			return found, true
		}
	}

	return 0, false
}

// findDescendantKind searches id's children (not id itself) for the first
// node of kind, recursively.
func findDescendantKind(tree *Tree, id NodeID, kind NodeKind) (NodeID, bool) {
	for _, c := range tree.Children(id) {
		if found, ok := findKind(tree, c, kind); ok {
			return found, true
		}
	}

	return 0, false
}

func countKind(tree *Tree, id NodeID, kind NodeKind) int {
	n := 0
	if tree.Kind(id) == kind {
		n++
	}
	for _, c := range tree.Children(id) {
		n += countKind(tree, c, kind)
	}

	return n
}

func TestParseDoc_PlainParagraph(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "A simple sentence with   several words.\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	para := mustChild(t, tree, tree.Root(), 0)
	if tree.Kind(para) != KindPara {
		t.Fatalf("child 0 kind = %s, want Para", tree.Kind(para))
	}

	// Runs of whitespace collapse to a single WhiteSpace child (idempotence
	// of whitespace collapse).
	for _, c := range tree.Children(para) {
		if tree.Kind(c) == KindWhiteSpace && tree.Word(c) != " " {
			t.Errorf("whitespace child text = %q, want single space", tree.Word(c))
		}
	}
}

func TestParseDoc_NoLeadingOrDoubleWhitespace(t *testing.T) {
	tree, _ := ParseDoc("doc.h", 1, "   leading space then a  double  gap\n")
	para := mustChild(t, tree, tree.Root(), 0)

	children := tree.Children(para)
	if len(children) == 0 {
		t.Fatal("paragraph has no children")
	}
	if tree.Kind(children[0]) == KindWhiteSpace {
		t.Error("paragraph begins with a WhiteSpace child, want leading whitespace suppressed")
	}
	for i := 1; i < len(children); i++ {
		if tree.Kind(children[i]) == KindWhiteSpace && tree.Kind(children[i-1]) == KindWhiteSpace {
			t.Error("two adjacent WhiteSpace children, want collapsed to one")
		}
	}
}

func TestParseDoc_InlineStyleCommand(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "plain \\b bold word after.\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	para := mustChild(t, tree, tree.Root(), 0)
	var opens, closes int
	var boldWord string
	insideStyle := false
	for _, c := range tree.Children(para) {
		switch tree.Kind(c) {
		case KindStyleChange:
			style, _, isOpen := tree.StyleChangeInfo(c)
			if style != StyleBold {
				t.Errorf("style = %d, want StyleBold", style)
			}
			if isOpen {
				opens++
				insideStyle = true
			} else {
				closes++
				insideStyle = false
			}
		case KindWord:
			if insideStyle {
				boldWord = tree.Word(c)
			}
		}
	}
	if opens != 1 || closes != 1 {
		t.Errorf("opens=%d closes=%d, want 1/1", opens, closes)
	}
	if boldWord != "bold" {
		t.Errorf("bold word = %q, want %q", boldWord, "bold")
	}
}

func TestParseDoc_HTMLStyleTag(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "plain <em>several words emphasized</em> after.\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	para := mustChild(t, tree, tree.Root(), 0)
	var words []string
	insideStyle := false
	for _, c := range tree.Children(para) {
		switch tree.Kind(c) {
		case KindStyleChange:
			style, _, isOpen := tree.StyleChangeInfo(c)
			if style != StyleItalic {
				t.Errorf("style = %d, want StyleItalic", style)
			}
			insideStyle = isOpen
		case KindWord:
			if insideStyle {
				words = append(words, tree.Word(c))
			}
		}
	}
	if got := strings.Join(words, " "); got != "several words emphasized" {
		t.Errorf("emphasized words = %q, want %q", got, "several words emphasized")
	}
}

func TestParseDoc_UnbalancedStyleIsAutoClosedWithDiagnostic(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "<b>never closed\n")
	if len(diags) == 0 {
		t.Fatal("expected a style-unbalanced diagnostic, got none")
	}

	found := false
	for _, d := range diags {
		if d.Kind == DiagStyleUnbalanced {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want at least one DiagStyleUnbalanced", diags)
	}

	para := mustChild(t, tree, tree.Root(), 0)
	closes := 0
	for _, c := range tree.Children(para) {
		if tree.Kind(c) == KindStyleChange {
			_, _, isOpen := tree.StyleChangeInfo(c)
			if !isOpen {
				closes++
			}
		}
	}
	if closes != 1 {
		t.Errorf("synthesized closes = %d, want 1", closes)
	}
}

func TestParseDoc_EscapeSymbols(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "literal \\@ and \\\\ and \\< chars\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	para := mustChild(t, tree, tree.Root(), 0)
	var kinds []SymbolKind
	for _, c := range tree.Children(para) {
		if tree.Kind(c) == KindSymbol {
			k, _ := tree.Symbol(c)
			kinds = append(kinds, k)
		}
	}
	want := []SymbolKind{SymEscAt, SymEscBSlash, SymEscLess}
	if len(kinds) != len(want) {
		t.Fatalf("symbols = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("symbol[%d] = %d, want %d", i, kinds[i], want[i])
		}
	}
}

func TestParseDoc_Formula(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "inline formula \\f$x^2\\f$ done\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if _, ok := findKind(tree, tree.Root(), KindFormula); !ok {
		t.Error("expected a Formula node in the tree")
	}
}

func TestParseDoc_AutoList(t *testing.T) {
	input := "- first item\n- second item\n- third item\n"
	tree, diags := ParseDoc("doc.h", 1, input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	listID, ok := findKind(tree, tree.Root(), KindAutoList)
	if !ok {
		t.Fatal("expected an AutoList node")
	}
	items := tree.Children(listID)
	if len(items) != 3 {
		t.Fatalf("AutoList has %d items, want 3", len(items))
	}
	for _, item := range items {
		if tree.Kind(item) != KindAutoListItem {
			t.Errorf("list child kind = %s, want AutoListItem", tree.Kind(item))
		}
	}

	indent, enum := tree.AutoListInfo(listID)
	if enum {
		t.Error("plain \"- \" marker classified as enumerated")
	}
	if indent != 0 {
		t.Errorf("indent = %d, want 0", indent)
	}
}

func TestParseDoc_AutoListEnumerated(t *testing.T) {
	tree, _ := ParseDoc("doc.h", 1, "-# step one\n-# step two\n")
	listID, ok := findKind(tree, tree.Root(), KindAutoList)
	if !ok {
		t.Fatal("expected an AutoList node")
	}
	_, enum := tree.AutoListInfo(listID)
	if !enum {
		t.Error("\"-# \" marker not classified as enumerated")
	}
}

func TestParseDoc_SimpleList(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "\\li first entry\n\\li second entry\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	listID, ok := findKind(tree, tree.Root(), KindSimpleList)
	if !ok {
		t.Fatal("expected a SimpleList node")
	}
	items := tree.Children(listID)
	if len(items) != 2 {
		t.Fatalf("SimpleList has %d items, want 2", len(items))
	}
}

func TestParseDoc_SimpleSectNote(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "Body text.\n\\note this is noteworthy\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	sectID, ok := findKind(tree, tree.Root(), KindSimpleSect)
	if !ok {
		t.Fatal("expected a SimpleSect node")
	}
	kind, params := tree.SimpleSectInfo(sectID)
	if kind != SimpleNote {
		t.Errorf("SimpleSect kind = %d, want SimpleNote", kind)
	}
	if params != nil {
		t.Errorf("SimpleNote carries params %v, want none", params)
	}
}

func TestParseDoc_ParamSection(t *testing.T) {
	// Parameter names are a run of identifier WORD tokens under StateParam;
	// the list only stops at a non-WORD token (a command here), so the
	// description is introduced via \ref rather than plain prose.
	tree, diags := ParseDoc("doc.h", 1, "\\param count \\ref Widget the number of widgets\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	sectID, ok := findKind(tree, tree.Root(), KindSimpleSect)
	if !ok {
		t.Fatal("expected a SimpleSect node")
	}
	kind, params := tree.SimpleSectInfo(sectID)
	if kind != SimpleParam {
		t.Errorf("SimpleSect kind = %d, want SimpleParam", kind)
	}
	if len(params) != 1 || params[0] != "count" {
		t.Errorf("params = %v, want [\"count\"]", params)
	}
}

func TestParseDoc_ParamSectionMultipleNames(t *testing.T) {
	tree, _ := ParseDoc("doc.h", 1, "\\param a b \\ref Widget the coordinates\n")
	sectID, ok := findKind(tree, tree.Root(), KindSimpleSect)
	if !ok {
		t.Fatal("expected a SimpleSect node")
	}
	_, params := tree.SimpleSectInfo(sectID)
	if len(params) != 2 || params[0] != "a" || params[1] != "b" {
		t.Errorf("params = %v, want [a b]", params)
	}
}

func TestParseDoc_XRefSections(t *testing.T) {
	cases := []struct {
		src  string
		kind XRefKind
	}{
		{"\\bug bug123\n", XRefBug},
		{"\\todo todo456\n", XRefTodo},
		{"\\test test789\n", XRefTest},
		{"\\deprecated dep000\n", XRefDeprecated},
	}
	for _, tc := range cases {
		tree, diags := ParseDoc("doc.h", 1, tc.src)
		if len(diags) != 0 {
			t.Fatalf("%q: unexpected diagnostics: %v", tc.src, diags)
		}
		id, ok := findKind(tree, tree.Root(), KindXRefItem)
		if !ok {
			t.Fatalf("%q: expected an XRefItem node", tc.src)
		}
		kind, _ := tree.XRefItem(id)
		if kind != tc.kind {
			t.Errorf("%q: xref kind = %d, want %d", tc.src, kind, tc.kind)
		}
	}
}

func TestParseDoc_SectionNesting(t *testing.T) {
	input := "\\section overview Overview\nTop text.\n\\subsection details Details\nNested text.\n"
	tree, diags := ParseDoc("doc.h", 1, input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	secID, ok := findKind(tree, tree.Root(), KindSection)
	if !ok {
		t.Fatal("expected a Section node")
	}
	level, id := tree.SectionInfo(secID)
	if level != 1 || id != "overview" {
		t.Errorf("section info = (%d, %q), want (1, \"overview\")", level, id)
	}

	subID, ok := findDescendantKind(tree, secID, KindSection)
	if !ok {
		t.Fatal("expected a nested subsection Section node")
	}
	subLevel, subName := tree.SectionInfo(subID)
	if subLevel != 2 || subName != "details" {
		t.Errorf("subsection info = (%d, %q), want (2, \"details\")", subLevel, subName)
	}
}

func TestParseDoc_SectionLevelMismatchDiagnostic(t *testing.T) {
	// A \subsection with no enclosing \section jumps straight to level 2
	// under the Root's level 0, a two-level skip the parser diagnoses and
	// clamps to level+1.
	tree, diags := ParseDoc("doc.h", 1, "\\subsection orphan Orphan\nbody\n")

	found := false
	for _, d := range diags {
		if d.Kind == DiagSectionLevelMismatch {
			found = true
		}
	}
	if !found {
		t.Fatalf("diagnostics = %v, want a DiagSectionLevelMismatch", diags)
	}

	secID, ok := findKind(tree, tree.Root(), KindSection)
	if !ok {
		t.Fatal("expected a Section node despite the mismatch")
	}
	level, _ := tree.SectionInfo(secID)
	if level != 1 {
		t.Errorf("clamped level = %d, want 1", level)
	}
}

func TestParseDoc_SiblingSectionsDoNotNest(t *testing.T) {
	input := "\\section one One\nfirst\n\\section two Two\nsecond\n"
	tree, _ := ParseDoc("doc.h", 1, input)

	var sections []NodeID
	for _, c := range tree.Children(tree.Root()) {
		if tree.Kind(c) == KindSection {
			sections = append(sections, c)
		}
	}
	if len(sections) != 2 {
		t.Fatalf("Root has %d Section children, want 2 siblings", len(sections))
	}
}

func TestParseDoc_InternalSection(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "public text.\n\\internal\nhidden text.\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if _, ok := findKind(tree, tree.Root(), KindInternal); !ok {
		t.Error("expected an Internal node")
	}
}

func TestParseDoc_InternalNestedIsDiagnosed(t *testing.T) {
	input := "\\section s S\n\\internal\nnope\n"
	_, diags := ParseDoc("doc.h", 1, input)

	found := false
	for _, d := range diags {
		if d.Kind == DiagIllegalCommand {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want a DiagIllegalCommand for nested \\internal", diags)
	}
}

func TestParseDoc_LanguageSwitch(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "\\~english\nHello.\n\\~french\nBonjour.\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	var langs []string
	for _, c := range tree.Children(tree.Root()) {
		if tree.Kind(c) == KindLanguage {
			langs = append(langs, tree.LanguageName(c))
		}
	}
	if len(langs) != 2 || langs[0] != "english" || langs[1] != "french" {
		t.Errorf("languages = %v, want [english french]", langs)
	}
}

func TestParseDoc_Ref(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "see \\ref widgets for more words after it\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	refID, ok := findKind(tree, tree.Root(), KindRef)
	if !ok {
		t.Fatal("expected a Ref node")
	}
	if target := tree.RefTarget(refID); target != "widgets" {
		t.Errorf("ref target = %q, want %q", target, "widgets")
	}

	// \ref's display text runs to the true end of the token stream, so it
	// should have swallowed every word that followed the target.
	var words []string
	for _, c := range tree.Children(refID) {
		if tree.Kind(c) == KindWord {
			words = append(words, tree.Word(c))
		}
	}
	if got := strings.Join(words, " "); got != "for more words after it" {
		t.Errorf("ref display words = %q, want %q", got, "for more words after it")
	}
}

func TestParseDoc_Link(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "\\link MyClass link text \\endlink after.\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	linkID, ok := findKind(tree, tree.Root(), KindLink)
	if !ok {
		t.Fatal("expected a Link node")
	}
	if target := tree.LinkTarget(linkID); target != "MyClass" {
		t.Errorf("link target = %q, want %q", target, "MyClass")
	}

	// \endlink properly terminates the Link, so "after." should land as a
	// sibling Word in the enclosing paragraph, not inside the Link.
	para := mustChild(t, tree, tree.Root(), 0)
	lastWord := ""
	for _, c := range tree.Children(para) {
		if tree.Kind(c) == KindWord {
			lastWord = tree.Word(c)
		}
	}
	if lastWord != "after." {
		t.Errorf("last top-level word = %q, want %q", lastWord, "after.")
	}
}

func TestParseDoc_JavaLink(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "\\javalink Target some text} after.\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	linkID, ok := findKind(tree, tree.Root(), KindLink)
	if !ok {
		t.Fatal("expected a Link node")
	}
	if target := tree.LinkTarget(linkID); target != "Target" {
		t.Errorf("javalink target = %q, want %q", target, "Target")
	}
}

func TestParseDoc_Image(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "\\image diagram.png\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	imgID, ok := findKind(tree, tree.Root(), KindImage)
	if !ok {
		t.Fatal("expected an Image node")
	}
	name, renderer := tree.ImageInfo(imgID)
	if name != "diagram.png" {
		t.Errorf("image name = %q, want %q", name, "diagram.png")
	}
	if renderer != RendererHTML {
		t.Errorf("renderer = %d, want RendererHTML", renderer)
	}
}

func TestParseDoc_DotFile(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "\\dotfile graph.dot\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	id, ok := findKind(tree, tree.Root(), KindDotFile)
	if !ok {
		t.Fatal("expected a DotFile node")
	}
	if name := tree.DotFileName(id); name != "graph.dot" {
		t.Errorf("dotfile name = %q, want %q", name, "graph.dot")
	}
}

func TestParseDoc_SecRefItemStandalone(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "\\secrefitem other_section\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	id, ok := findKind(tree, tree.Root(), KindSecRefItem)
	if !ok {
		t.Fatal("expected a SecRefItem node")
	}
	if target := tree.SecRefTarget(id); target != "other_section" {
		t.Errorf("secrefitem target = %q, want %q", target, "other_section")
	}
}

func TestParseDoc_SecRefList(t *testing.T) {
	input := "\\secreflist\n\\secrefitem one\n\\secrefitem two\n\\endsecreflist\nafter\n"
	tree, diags := ParseDoc("doc.h", 1, input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	listID, ok := findKind(tree, tree.Root(), KindSecRefList)
	if !ok {
		t.Fatal("expected a SecRefList node")
	}
	if n := countKind(tree, listID, KindSecRefItem); n != 2 {
		t.Errorf("secreflist has %d items, want 2", n)
	}
}

func TestParseDoc_AddIndex(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "\\addindex some entry text\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if _, ok := findKind(tree, tree.Root(), KindIndexEntry); !ok {
		t.Error("expected an IndexEntry node")
	}
}

func TestParseDoc_StartCodeVerbatim(t *testing.T) {
	input := "\\startcode\nfunc main() {}\n\\endcode\nafter\n"
	tree, diags := ParseDoc("doc.h", 1, input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	id, ok := findKind(tree, tree.Root(), KindVerbatim)
	if !ok {
		t.Fatal("expected a Verbatim node")
	}
	text, kind := tree.VerbatimText(id)
	if kind != VerbatimCode {
		t.Errorf("verbatim kind = %d, want VerbatimCode", kind)
	}
	if !strings.Contains(text, "func main") {
		t.Errorf("verbatim text = %q, want it to contain the code", text)
	}
}

func TestParseDoc_HTMLUnorderedList(t *testing.T) {
	input := "<ul><li>one</li><li>two</li></ul>\n"
	tree, diags := ParseDoc("doc.h", 1, input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	listID, ok := findKind(tree, tree.Root(), KindHtmlList)
	if !ok {
		t.Fatal("expected an HtmlList node")
	}
	if k := tree.HtmlListKind(listID); k != ListUnordered {
		t.Errorf("list kind = %d, want ListUnordered", k)
	}
	if n := len(tree.Children(listID)); n != 2 {
		t.Errorf("list has %d items, want 2", n)
	}
}

func TestParseDoc_HTMLTable(t *testing.T) {
	input := "<table><caption>Title</caption><tr><th>H</th><td>D</td></tr></table>\n"
	tree, diags := ParseDoc("doc.h", 1, input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	tableID, ok := findKind(tree, tree.Root(), KindHtmlTable)
	if !ok {
		t.Fatal("expected an HtmlTable node")
	}
	if _, ok := findKind(tree, tableID, KindHtmlCaption); !ok {
		t.Error("expected an HtmlCaption inside the table")
	}
	rowID, ok := findKind(tree, tableID, KindHtmlRow)
	if !ok {
		t.Fatal("expected an HtmlRow inside the table")
	}
	cells := tree.Children(rowID)
	if len(cells) != 2 {
		t.Fatalf("row has %d cells, want 2", len(cells))
	}
	if !tree.HtmlCellIsHeading(cells[0]) {
		t.Error("first cell should be a heading (<th>)")
	}
	if tree.HtmlCellIsHeading(cells[1]) {
		t.Error("second cell should not be a heading (<td>)")
	}
}

func TestParseDoc_HTMLDescriptionList(t *testing.T) {
	input := "<dl><dt>Term</dt><dd>Definition text</dd></dl>\n"
	tree, diags := ParseDoc("doc.h", 1, input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if _, ok := findKind(tree, tree.Root(), KindHtmlDescList); !ok {
		t.Error("expected an HtmlDescList node")
	}
	if _, ok := findKind(tree, tree.Root(), KindHtmlDescTitle); !ok {
		t.Error("expected an HtmlDescTitle node")
	}
	if _, ok := findKind(tree, tree.Root(), KindHtmlDescData); !ok {
		t.Error("expected an HtmlDescData node")
	}
}

func TestParseDoc_HTMLPreservesWhitespace(t *testing.T) {
	input := "<pre>two    spaces\nand a\nnewline</pre>\n"
	tree, diags := ParseDoc("doc.h", 1, input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	preID, ok := findKind(tree, tree.Root(), KindHtmlPre)
	if !ok {
		t.Fatal("expected an HtmlPre node")
	}
	if n := countKind(tree, preID, KindWhiteSpace); n == 0 {
		t.Error("expected preserved WhiteSpace nodes inside <pre>")
	}
}

func TestParseDoc_HRefAndAnchor(t *testing.T) {
	input := "<a href=\"https://example.com\">link text</a> and <a name=\"here\"></a>\n"
	tree, diags := ParseDoc("doc.h", 1, input)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	hrefID, ok := findKind(tree, tree.Root(), KindHRef)
	if !ok {
		t.Fatal("expected an HRef node")
	}
	if url := tree.HRefURL(hrefID); url != "https://example.com" {
		t.Errorf("href url = %q, want %q", url, "https://example.com")
	}

	if _, ok := findKind(tree, tree.Root(), KindAnchor); !ok {
		t.Error("expected an Anchor node")
	}
}

func TestParseDoc_Headers(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "<h1>Big</h1><h2>Medium</h2><h3>Small</h3>\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	para := mustChild(t, tree, tree.Root(), 0)
	var levels []int
	for _, c := range tree.Children(para) {
		if tree.Kind(c) == KindHtmlHeader {
			levels = append(levels, tree.HeaderLevel(c))
		}
	}
	if len(levels) != 3 || levels[0] != 1 || levels[1] != 2 || levels[2] != 3 {
		t.Errorf("header levels = %v, want [1 2 3]", levels)
	}
}

func TestParseDoc_LineBreakAndHorRuler(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "one \\linebreak two\nrow<hr>\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if n := countKind(tree, tree.Root(), KindLineBreak); n == 0 {
		t.Error("expected at least one LineBreak node")
	}
	if n := countKind(tree, tree.Root(), KindHorRuler); n == 0 {
		t.Error("expected at least one HorRuler node")
	}
}

func TestParseDoc_CopyDoc(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "\\copydoc OtherFunc\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	id, ok := findKind(tree, tree.Root(), KindCopy)
	if !ok {
		t.Fatal("expected a Copy node")
	}
	if target := tree.CopyTarget(id); target != "OtherFunc" {
		t.Errorf("copydoc target = %q, want %q", target, "OtherFunc")
	}
}

func TestParseDoc_IncludeDirectives(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "\\include example.cpp\n\\skip foo(\n\\until bar)\n")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	incID, ok := findKind(tree, tree.Root(), KindInclude)
	if !ok {
		t.Fatal("expected an Include node")
	}
	path, kind := tree.IncludeDirective(incID)
	if path != "example.cpp" || kind != IncludeFile {
		t.Errorf("include = (%q, %d), want (\"example.cpp\", IncludeFile)", path, kind)
	}

	opID, ok := findKind(tree, tree.Root(), KindIncOperator)
	if !ok {
		t.Fatal("expected an IncOperator node")
	}
	opKind, pattern := tree.IncOperator(opID)
	if opKind != IncOpSkip || pattern != "foo(" {
		t.Errorf("incop = (%d, %q), want (IncOpSkip, \"foo(\")", opKind, pattern)
	}
}

func TestParseDoc_UnknownCommandDiagnostic(t *testing.T) {
	_, diags := ParseDoc("doc.h", 1, "\\nosuchcommand oops\n")

	found := false
	for _, d := range diags {
		if d.Kind == DiagUnknownName {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want a DiagUnknownName", diags)
	}
}

func TestParseDoc_PrematureEndMarkerDiagnostic(t *testing.T) {
	_, diags := ParseDoc("doc.h", 1, "\\endcode stray\n")

	found := false
	for _, d := range diags {
		if d.Kind == DiagIllegalCommand {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want a DiagIllegalCommand for stray \\endcode", diags)
	}
}

func TestParseDoc_UnterminatedVerbatimBlock(t *testing.T) {
	_, diags := ParseDoc("doc.h", 1, "\\startcode\nno terminator here")

	found := false
	for _, d := range diags {
		if d.Kind == DiagUnterminatedBlock {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %v, want a DiagUnterminatedBlock", diags)
	}
}

func TestParseDoc_DiagnosticSinkReceivesEveryDiagnostic(t *testing.T) {
	sink := &CollectingSink{}
	tree, diags := ParseDoc("doc.h", 1, "\\nosuchcommand oops\n", WithDiagnosticSink(sink))

	if len(sink.Diagnostics) != len(tree.Diagnostics) {
		t.Fatalf("sink got %d diagnostics, tree has %d", len(sink.Diagnostics), len(tree.Diagnostics))
	}
	if len(diags) != len(tree.Diagnostics) {
		t.Fatalf("ParseDoc returned %d diagnostics, tree has %d", len(diags), len(tree.Diagnostics))
	}
}

func TestParseDoc_WithRegistrySeedsKnownSections(t *testing.T) {
	reg := NewRegistryWithSeed(map[string]SectionType{
		"preseeded": SectionTypeSubsection,
	})

	// The seed classifies "preseeded" as a subsection even though it is
	// introduced by \section, so it nests at level 2 under "outer".
	tree, diags := ParseDoc("doc.h", 1, "\\section outer Outer\n\\section preseeded Title\nbody\n", WithRegistry(reg))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	outerID, ok := findKind(tree, tree.Root(), KindSection)
	if !ok {
		t.Fatal("expected a Section node")
	}
	secID, ok := findDescendantKind(tree, outerID, KindSection)
	if !ok {
		t.Fatal("expected the seeded Section nested in the outer one")
	}
	level, id := tree.SectionInfo(secID)
	if level != 2 || id != "preseeded" {
		t.Errorf("section info = (%d, %q), want (2, \"preseeded\")", level, id)
	}
}

func TestParseDoc_DiagnosticStringFormat(t *testing.T) {
	_, diags := ParseDoc("widget.h", 7, "\\nosuchcommand oops\n")
	if len(diags) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
	s := diags[0].String()
	if !strings.HasPrefix(s, "widget.h:") {
		t.Errorf("diagnostic string = %q, want it to start with file:line", s)
	}
}

func TestParseDoc_EmptyInputProducesNoChildren(t *testing.T) {
	tree, diags := ParseDoc("doc.h", 1, "")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if n := len(tree.Children(tree.Root())); n != 0 {
		t.Errorf("Root has %d children for empty input, want 0", n)
	}
}

func TestParseDoc_WalkVisitsEveryWord(t *testing.T) {
	tree, _ := ParseDoc("doc.h", 1, "alpha beta gamma\n")

	var visited []string
	v := &wordCollector{words: &visited}
	if err := Walk(tree, tree.Root(), v); err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}
	if got := strings.Join(visited, " "); got != "alpha beta gamma" {
		t.Errorf("visited words = %q, want %q", got, "alpha beta gamma")
	}
}

type wordCollector struct {
	BaseVisitor
	words *[]string
}

func (w *wordCollector) VisitWord(t *Tree, id NodeID) error {
	*w.words = append(*w.words, t.Word(id))

	return nil
}

func TestParseDoc_WalkSkipChildren(t *testing.T) {
	tree, _ := ParseDoc("doc.h", 1, "\\b skip me\nplain after\n")

	var visitedParas int
	v := &paraSkipper{count: &visitedParas}
	if err := Walk(tree, tree.Root(), v); err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}
	if visitedParas != 1 {
		t.Errorf("visited %d Para nodes, want exactly 1 (skip-children must not affect siblings)", visitedParas)
	}
}

type paraSkipper struct {
	BaseVisitor
	count *int
}

func (p *paraSkipper) VisitPara(*Tree, NodeID) error {
	*p.count++

	return ErrSkipChildren
}
