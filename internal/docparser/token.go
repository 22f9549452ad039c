// Package docparser parses the doc-comment markup dialect (backslash/at
// commands, a subset of HTML tags, auto-bulleted lists, verbatim blocks)
// into a typed abstract syntax tree.
//
// The package is split the way a hand-written recursive-descent parser
// naturally splits: a lexer contract (token.go, lexer.go), a node model
// (tree.go), per-production methods (paragraph.go, blocks.go,
// htmlblocks.go, simplesect.go, singleline.go), a shared inline handler
// (inline.go) and command dispatcher (dispatcher.go), and an entry point
// (parse.go).
package docparser

// TokenKind discriminates the lexical categories the lexer can produce.
// The zero value, TokenEOF, signals end of stream.
type TokenKind uint8

const (
	// TokenEOF signals end of input.
	TokenEOF TokenKind = iota
	// TokenWord is a run of plain text with no special meaning.
	TokenWord
	// TokenWhitespace is a run of inter-word space (including tabs).
	TokenWhitespace
	// TokenNewPara signals a blank line that ends the current paragraph.
	TokenNewPara
	// TokenListItem signals an auto-list marker ("-", "-#", ...) at some indent.
	TokenListItem
	// TokenEndList signals an explicit auto-list terminator ("\endlist"-style).
	TokenEndList
	// TokenCommand is a backslash/at-prefixed command name.
	TokenCommand
	// TokenHTMLTag is an HTML start or end tag.
	TokenHTMLTag
	// TokenSymbol is an HTML character entity (&amp; &copy; ...).
	TokenSymbol
	// TokenURL is an autodetected bare URL.
	TokenURL
)

// String returns a human-readable token kind name, for diagnostics and tests.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenWord:
		return "Word"
	case TokenWhitespace:
		return "Whitespace"
	case TokenNewPara:
		return "NewPara"
	case TokenListItem:
		return "ListItem"
	case TokenEndList:
		return "EndList"
	case TokenCommand:
		return "Command"
	case TokenHTMLTag:
		return "HTMLTag"
	case TokenSymbol:
		return "Symbol"
	case TokenURL:
		return "URL"
	default:
		return "Unknown"
	}
}

// Option is a single name/value pair from an HTML tag's attribute list
// (e.g. <a href="...">, <img src="...">), in source order.
type Option struct {
	Name  string
	Value string
}

// TokenScratch is the mutable scratch record the lexer populates on every
// Next() call. The parser treats it as a read-mostly snapshot valid only
// until the next token is fetched. The parser never writes to it: a
// command deferred across a return boundary goes through
// parseContext.pushback, and a section id through parseContext.pendingText.
type TokenScratch struct {
	// Name is the command or HTML tag name for TokenCommand/TokenHTMLTag.
	Name string
	// Chars is the literal text for TokenWord/TokenSymbol/TokenURL.
	Chars string
	// VerbatimPayload is the captured body for a verbatim/code/html-only/
	// latex-only capture token.
	VerbatimPayload string
	// ID is a numeric identifier the lexer stashes for formula/xref tokens.
	ID int
	// Indent is the column at which a TokenListItem/TokenEndList occurred.
	Indent int
	// IsEnumList is true when a TokenListItem used an enumerated marker
	// ("-#") rather than a plain bullet ("-").
	IsEnumList bool
	// EndTag is true when a TokenHTMLTag is a closing tag (</x>).
	EndTag bool
	// Options is the HTML tag's attribute list, in source order.
	Options []Option
	// SectionID and SimpleSectName are not set by the lexer nor read by
	// the parser; see parseContext.pendingText and parseContext.pushback.
	SectionID      string
	SimpleSectName string
}

// LexerState names the lexer's context-sensitive scanning mode. The parser
// switches modes on entry to certain productions and is responsible for
// restoring StatePara on every exit path (see parseContext.withState in
// context.go).
type LexerState uint8

const (
	// StatePara is the default scanning mode for paragraph content.
	StatePara LexerState = iota
	// StateTitle scans a single line as a title (\section, \page, ...).
	StateTitle
	// StateParam scans whitespace-separated parameter names.
	StateParam
	// StateXRefItem scans a single cross-reference item id.
	StateXRefItem
	// StateFile scans a bare file path argument.
	StateFile
	// StateLink scans a Java-style \link target up to a closing brace.
	StateLink
	// StateRef scans a \ref target.
	StateRef
	// StatePattern scans an \include/\skip pattern argument.
	StatePattern
	// StateCode captures a \code ... \endcode verbatim body.
	StateCode
	// StateHTMLOnly captures a \htmlonly ... \endhtmlonly verbatim body.
	StateHTMLOnly
	// StateLatexOnly captures a \latexonly ... \endlatexonly verbatim body.
	StateLatexOnly
	// StateVerbatim captures a \verbatim ... \endverbatim verbatim body.
	StateVerbatim
)

// String returns a human-readable lexer state name, for diagnostics and tests.
func (s LexerState) String() string {
	switch s {
	case StatePara:
		return "Para"
	case StateTitle:
		return "Title"
	case StateParam:
		return "Param"
	case StateXRefItem:
		return "XRefItem"
	case StateFile:
		return "File"
	case StateLink:
		return "Link"
	case StateRef:
		return "Ref"
	case StatePattern:
		return "Pattern"
	case StateCode:
		return "Code"
	case StateHTMLOnly:
		return "HtmlOnly"
	case StateLatexOnly:
		return "LatexOnly"
	case StateVerbatim:
		return "Verbatim"
	default:
		return "Unknown"
	}
}

// TokenSource is the narrow interface the core consumes from the lexer
// (spec §6). It is implemented by *lexer; tests may substitute a scripted
// fake that never allocates a real source buffer.
type TokenSource interface {
	// Next advances to the next token and updates the scratch record,
	// returning the new token's kind.
	Next() TokenKind
	// SetState switches the scanning mode. The caller must restore
	// StatePara on every exit path.
	SetState(LexerState)
	// State returns the current scanning mode.
	State() LexerState
	// Line returns the 1-based source line of the token just returned.
	Line() int
	// Scratch returns the scratch record backing the token just returned.
	// The pointer is stable for the lifetime of the lexer; callers must
	// copy out any field they need to retain past the next Next() call.
	Scratch() *TokenScratch
}
