package docparser

import "strings"

// lexer is the default TokenSource implementation: a hand-written,
// context-sensitive scanner over a doc-comment body. It is the package's
// one concrete collaborator for the "lexer" external dependency spec §1
// treats as abstract; callers needing a different scanning strategy may
// supply their own TokenSource instead.
//
// Scanning is single-pass over a string (not reused across parses), per
// spec §5's single-threaded, synchronous model.
type lexer struct {
	src   string
	pos   int
	line  int
	state LexerState

	atLineStart bool // true until a non-whitespace token is seen on this line

	scratch TokenScratch
}

// newLexer creates a lexer starting at startLine over input.
func newLexer(input string, startLine int) *lexer {
	return &lexer{src: input, pos: 0, line: startLine, state: StatePara, atLineStart: true}
}

func (l *lexer) State() LexerState    { return l.state }
func (l *lexer) SetState(s LexerState) { l.state = s }
func (l *lexer) Line() int            { return l.line }
func (l *lexer) Scratch() *TokenScratch { return &l.scratch }

func (l *lexer) eof() bool { return l.pos >= len(l.src) }

func (l *lexer) peekByte() byte {
	if l.eof() {
		return 0
	}

	return l.src[l.pos]
}

func (l *lexer) at(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}

	return l.src[l.pos+off]
}

// Next produces the next token, dispatching on the current scanning mode
// (spec §6's lexer contract). Single-line-scoped modes (Title/File/Ref/
// Pattern/XRefItem) return TokenEOF when the current line ends without
// consuming the terminating newline, so that once the caller restores
// StatePara the newline is tokenized normally.
func (l *lexer) Next() TokenKind {
	l.scratch = TokenScratch{}
	if l.eof() {
		return l.emit(TokenEOF)
	}

	switch l.state {
	case StateTitle, StateFile, StateRef, StatePattern, StateXRefItem:
		return l.nextScopedLine()
	case StateParam:
		return l.nextParam()
	case StateCode:
		return l.nextVerbatimUntil("endcode")
	case StateHTMLOnly:
		return l.nextVerbatimUntil("endhtmlonly")
	case StateLatexOnly:
		return l.nextVerbatimUntil("endlatexonly")
	case StateVerbatim:
		return l.nextVerbatimUntil("endverbatim")
	case StateLink:
		return l.nextPara(true)
	default:
		return l.nextPara(false)
	}
}

func (l *lexer) emit(k TokenKind) TokenKind { return k }

// consumeNewline consumes one \n or \r\n and advances the line counter.
func (l *lexer) consumeNewline() {
	if l.peekByte() == '\r' {
		l.pos++
	}
	if l.peekByte() == '\n' {
		l.pos++
	}
	l.line++
	l.atLineStart = true
}

// isBlankAhead reports whether, from pos, only horizontal whitespace
// remains before the next newline or EOF (used to detect NEWPARA).
func (l *lexer) isBlankAhead() bool {
	i := l.pos
	for i < len(l.src) && (l.src[i] == ' ' || l.src[i] == '\t') {
		i++
	}

	return i >= len(l.src) || l.src[i] == '\n' || l.src[i] == '\r'
}

func isSpaceTab(b byte) bool { return b == ' ' || b == '\t' }

func isIdentByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}

func isWordBreak(b byte) bool {
	switch b {
	case 0, ' ', '\t', '\n', '\r', '\\', '@', '<', '&', '}':
		return true
	default:
		return false
	}
}

// nextPara is the default-mode scanner (spec §4's "lexNormal" analogue).
// forceCloseBrace is not consulted: isWordBreak makes '}' end/begin its
// own word in every state, which is how StateLink detects a Java-style
// link's closing brace without any special-cased token kind (spec §4.6's
// Link production).
func (l *lexer) nextPara(forceCloseBrace bool) TokenKind {
	_ = forceCloseBrace // '}' always breaks words; flag documents intent only.

	b := l.peekByte()

	switch {
	case b == '\n' || b == '\r':
		if l.isBlankAheadAfterNewline() {
			return l.scanNewPara()
		}
		l.consumeNewline()
		l.scratch.Chars = " "
		l.atLineStart = true

		return TokenWhitespace

	case isSpaceTab(b):
		return l.scanWhitespace()

	case b == '-' && l.atLineStart:
		if tok, ok := l.tryListMarker(); ok {
			return tok
		}

		return l.scanWord()

	case b == '\\' || b == '@':
		return l.scanCommand()

	case b == '<':
		return l.scanHTMLTag()

	case b == '&':
		if tok, ok := l.tryScanSymbol(); ok {
			return tok
		}

		return l.scanWord()

	case l.looksLikeURL():
		return l.scanURL()

	default:
		return l.scanWord()
	}
}

// isBlankAheadAfterNewline peeks past the upcoming newline to see whether
// the line after it is also blank, which is what makes the current
// newline a paragraph break rather than ordinary inter-word whitespace.
func (l *lexer) isBlankAheadAfterNewline() bool {
	i := l.pos
	if i < len(l.src) && l.src[i] == '\r' {
		i++
	}
	if i < len(l.src) && l.src[i] == '\n' {
		i++
	}
	for i < len(l.src) && isSpaceTab(l.src[i]) {
		i++
	}

	return i >= len(l.src) || l.src[i] == '\n' || l.src[i] == '\r'
}

func (l *lexer) scanNewPara() TokenKind {
	for !l.eof() && (l.peekByte() == '\n' || l.peekByte() == '\r' || isSpaceTab(l.peekByte())) {
		if l.peekByte() == '\n' || l.peekByte() == '\r' {
			l.consumeNewline()
		} else {
			l.pos++
		}
	}

	return TokenNewPara
}

func (l *lexer) scanWhitespace() TokenKind {
	start := l.pos
	for isSpaceTab(l.peekByte()) {
		l.pos++
	}
	l.scratch.Chars = l.src[start:l.pos]

	return TokenWhitespace
}

// tryListMarker recognizes "-" or "-#" at the start of a line, followed by
// whitespace, as an auto-list item marker (spec §3's Auto-list glossary
// entry). indent is the 0-based column the marker started at.
func (l *lexer) tryListMarker() (TokenKind, bool) {
	indent := l.columnOf(l.pos)
	i := l.pos + 1
	enumList := false
	if i < len(l.src) && l.src[i] == '#' {
		enumList = true
		i++
	}
	if i >= len(l.src) || !isSpaceTab(l.src[i]) {
		return 0, false
	}
	l.pos = i
	for isSpaceTab(l.peekByte()) {
		l.pos++
	}
	l.scratch.Indent = indent
	l.scratch.IsEnumList = enumList
	l.atLineStart = false

	return TokenListItem, true
}

func (l *lexer) columnOf(pos int) int {
	col := 0
	for i := pos - 1; i >= 0 && l.src[i] != '\n'; i-- {
		col++
	}

	return col
}

// scanCommand scans a \name or @name command, including the single-
// character escapes and the "\~lang" language switch (spec §6's command
// name table; glossary's "Language section").
func (l *lexer) scanCommand() TokenKind {
	l.pos++ // consume '\' or '@'
	l.atLineStart = false

	if l.peekByte() == '~' {
		l.pos++
		start := l.pos
		for isIdentByte(l.peekByte()) {
			l.pos++
		}
		l.scratch.Name = "~"
		l.scratch.Chars = l.src[start:l.pos]

		return TokenCommand
	}

	if !isIdentByte(l.peekByte()) {
		// Single punctuation escape: \\ \@ \< \> \& \$ \# \%
		ch := l.peekByte()
		l.pos++
		l.scratch.Name = string(ch)

		return TokenCommand
	}

	start := l.pos
	for isIdentByte(l.peekByte()) {
		l.pos++
	}
	l.scratch.Name = l.src[start:l.pos]

	return TokenCommand
}

// scanHTMLTag scans <tag attr="val" ...> or </tag> (spec §6's HTML tag
// name table plus §3's Option list).
func (l *lexer) scanHTMLTag() TokenKind {
	l.pos++ // consume '<'
	l.atLineStart = false
	end := false
	if l.peekByte() == '/' {
		end = true
		l.pos++
	}
	start := l.pos
	for isIdentByte(l.peekByte()) {
		l.pos++
	}
	name := strings.ToLower(l.src[start:l.pos])
	l.scratch.Name = name
	l.scratch.EndTag = end

	var opts []Option
	for {
		for isSpaceTab(l.peekByte()) {
			l.pos++
		}
		if l.peekByte() == '>' || l.peekByte() == '/' || l.eof() {
			break
		}
		nstart := l.pos
		for isIdentByte(l.peekByte()) || l.peekByte() == '-' {
			l.pos++
		}
		if l.pos == nstart {
			l.pos++ // skip unexpected byte to avoid infinite loop

			continue
		}
		attrName := l.src[nstart:l.pos]
		for isSpaceTab(l.peekByte()) {
			l.pos++
		}
		val := ""
		if l.peekByte() == '=' {
			l.pos++
			for isSpaceTab(l.peekByte()) {
				l.pos++
			}
			if l.peekByte() == '"' || l.peekByte() == '\'' {
				quote := l.peekByte()
				l.pos++
				vstart := l.pos
				for !l.eof() && l.peekByte() != quote {
					l.pos++
				}
				val = l.src[vstart:l.pos]
				if !l.eof() {
					l.pos++
				}
			}
		}
		opts = append(opts, Option{Name: attrName, Value: val})
	}
	if l.peekByte() == '/' {
		l.pos++
	}
	if l.peekByte() == '>' {
		l.pos++
	}
	l.scratch.Options = opts

	return TokenHTMLTag
}

// tryScanSymbol recognizes &name; as a SYMBOL token (spec §6's symbol table).
func (l *lexer) tryScanSymbol() (TokenKind, bool) {
	i := l.pos + 1
	start := i
	for i < len(l.src) && isIdentByte(l.src[i]) {
		i++
	}
	if i == start || i >= len(l.src) || l.src[i] != ';' {
		return 0, false
	}
	l.scratch.Name = l.src[start:i]
	l.pos = i + 1
	l.atLineStart = false

	return TokenSymbol, true
}

func (l *lexer) looksLikeURL() bool {
	return strings.HasPrefix(l.src[l.pos:], "http://") ||
		strings.HasPrefix(l.src[l.pos:], "https://") ||
		strings.HasPrefix(l.src[l.pos:], "www.")
}

func (l *lexer) scanURL() TokenKind {
	start := l.pos
	for !l.eof() && !isSpaceTab(l.peekByte()) && l.peekByte() != '\n' && l.peekByte() != '\r' {
		l.pos++
	}
	l.scratch.Chars = l.src[start:l.pos]
	l.atLineStart = false

	return TokenURL
}

func (l *lexer) scanWord() TokenKind {
	start := l.pos
	if !l.eof() && l.peekByte() == '}' {
		l.pos++
	} else {
		for !l.eof() && !isWordBreak(l.peekByte()) {
			l.pos++
		}
		if l.pos == start { // guard against a lone break-char like '}' etc.
			l.pos++
		}
	}
	l.scratch.Chars = l.src[start:l.pos]
	l.atLineStart = false

	return TokenWord
}

// nextScopedLine implements the single-line-scoped states (Title, File,
// Ref, Pattern, XRefItem): everything up to the next newline is available
// through normal word/whitespace tokens; reaching the newline (without
// consuming it) yields TokenEOF to signal the scope's end (spec §4.6).
func (l *lexer) nextScopedLine() TokenKind {
	b := l.peekByte()
	if b == '\n' || b == '\r' || l.eof() {
		return TokenEOF
	}
	if isSpaceTab(b) {
		return l.scanWhitespace()
	}
	if l.state == StateXRefItem {
		start := l.pos
		for !l.eof() && !isSpaceTab(l.peekByte()) && l.peekByte() != '\n' && l.peekByte() != '\r' {
			l.pos++
		}
		l.scratch.Chars = l.src[start:l.pos]
		l.scratch.ID = simpleHash(l.scratch.Chars)

		return TokenWord
	}

	return l.scanWord()
}

// nextParam scans zero-or-more WORD tokens for \param/\retval/\exception
// (spec §4.4); any non-identifier content ends the list, leaving that
// token for the caller to reprocess after restoring StatePara.
func (l *lexer) nextParam() TokenKind {
	b := l.peekByte()
	if isSpaceTab(b) {
		return l.scanWhitespace()
	}
	if b == '\n' || b == '\r' {
		if l.isBlankAheadAfterNewline() {
			return l.scanNewPara()
		}
		l.consumeNewline()
		l.scratch.Chars = " "

		return TokenWhitespace
	}
	if isIdentByte(b) {
		start := l.pos
		for isIdentByte(l.peekByte()) {
			l.pos++
		}
		l.scratch.Chars = l.src[start:l.pos]

		return TokenWord
	}

	return l.nextPara(false)
}

// nextVerbatimUntil captures everything up to (not including) the matching
// \endXxx marker as a single VerbatimPayload token (spec §4.2/§4.7's
// verbatim-family handling). Reaching EOF without finding the marker
// leaves the payload as everything remaining; the caller diagnoses the
// missing end marker itself.
func (l *lexer) nextVerbatimUntil(endCmd string) TokenKind {
	start := l.pos
	marker1 := "\\" + endCmd
	marker2 := "@" + endCmd
	for !l.eof() {
		rest := l.src[l.pos:]
		if strings.HasPrefix(rest, marker1) || strings.HasPrefix(rest, marker2) {
			l.scratch.VerbatimPayload = l.src[start:l.pos]
			l.pos += len(endCmd) + 1

			return TokenWord
		}
		if l.peekByte() == '\n' {
			l.line++
		}
		l.pos++
	}
	l.scratch.VerbatimPayload = l.src[start:l.pos]

	return TokenEOF
}

// simpleHash derives a stable small int id from text, used where the
// original design stashes a lexer-assigned numeric id (spec §3's
// TokenScratch.id) for cross-reference items.
func simpleHash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = h*31 + int(s[i])
	}
	if h < 0 {
		h = -h
	}

	return h
}
