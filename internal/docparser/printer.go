package docparser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for tree-dump styling.
const (
	ColorKind = "6" // Cyan
	ColorText = "2" // Green
)

var (
	kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorKind)).Bold(true)
	textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText))
)

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd())
}

// Dump writes an indented, human-readable rendering of the tree rooted at
// id to w, for debugging and the inspect CLI subcommand. Node text is
// truncated so one node never spans multiple dump lines.
func Dump(w io.Writer, t *Tree, id NodeID) {
	tty := isTTY(w)
	dumpNode(w, t, id, 0, tty)
}

func dumpNode(w io.Writer, t *Tree, id NodeID, depth int, tty bool) {
	indent := strings.Repeat("  ", depth)
	kind := t.Kind(id).String()
	if tty {
		kind = kindStyle.Render(kind)
	}

	line := fmt.Sprintf("%s%s", indent, kind)
	if text := nodeSummary(t, id); text != "" {
		if tty {
			text = textStyle.Render(text)
		}
		line += " " + text
	}
	fmt.Fprintln(w, line)

	for _, child := range t.Children(id) {
		dumpNode(w, t, child, depth+1, tty)
	}
}

// nodeSummary renders the one-line payload worth showing next to a node's
// kind in a Dump — the same subset of fields the NodeKind-specific
// accessor methods on Tree expose, collapsed to a display string.
func nodeSummary(t *Tree, id NodeID) string {
	switch t.Kind(id) {
	case KindIncOperator:
		return quoteShort(t.nodes[id].text2)
	case KindWord, KindWhiteSpace, KindURL, KindAnchor, KindInclude,
		KindCopy, KindDotFile, KindImage, KindSecRefItem, KindIndexEntry, KindRef,
		KindLink, KindHRef, KindSection, KindLanguage, KindTitle, KindXRefItem:
		return quoteShort(t.nodes[id].text)
	case KindVerbatim:
		return quoteShort(t.nodes[id].text)
	case KindSymbol:
		return fmt.Sprintf("kind=%d letter=%c", t.nodes[id].sub, t.nodes[id].letter)
	case KindStyleChange:
		op := "close"
		if t.nodes[id].boolVal {
			op = "open"
		}

		return fmt.Sprintf("%s style=%d", op, t.nodes[id].sub)
	case KindHtmlCell:
		if t.nodes[id].boolVal {
			return "heading"
		}

		return ""
	default:
		return ""
	}
}

func quoteShort(s string) string {
	const maxLen = 40
	if len(s) > maxLen {
		s = s[:maxLen] + "…"
	}

	return fmt.Sprintf("%q", s)
}
