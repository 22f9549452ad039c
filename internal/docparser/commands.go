package docparser

// CmdID enumerates every recognized command name (spec §4.7, §6's command
// name table). isSimpleSection is tracked separately via simpleSectionCmds
// so the paragraph loop can test membership without a second lookup, per
// spec §6 ("each id may carry a simple-section flag bit").
type CmdID uint8

const (
	CmdUnknown CmdID = iota

	// Character escapes.
	CmdBSlash
	CmdAt
	CmdLessThan
	CmdGreaterThan
	CmdAmpersand
	CmdDollar
	CmdHashChar
	CmdPercent

	// Inline style commands.
	CmdEmphasis
	CmdBold
	CmdCode

	// Inline captures.
	CmdHTMLOnly
	CmdLatexOnly
	CmdFormula

	// Simple-section starters.
	CmdSa
	CmdReturn
	CmdAuthor
	CmdVersion
	CmdSince
	CmdDate
	CmdNote
	CmdWarning
	CmdPre
	CmdPost
	CmdInvariant
	CmdRemark
	CmdAttention
	CmdPar

	// Parameter-list sections.
	CmdParam
	CmdRetVal
	CmdException

	// Cross-reference starters.
	CmdBug
	CmdTodo
	CmdTest
	CmdDeprecated

	// Lists and sections.
	CmdLi
	CmdSection
	CmdSubsection

	// Verbatim-family starters.
	CmdStartCode
	CmdVerbatim

	// Premature end markers (always a diagnostic).
	CmdEndCode
	CmdEndHTMLOnly
	CmdEndLatexOnly
	CmdEndLink
	CmdEndVerbatim

	// Single-leaf / single-production commands.
	CmdLineBreak
	CmdAnchor
	CmdAddIndex
	CmdInternal
	CmdCopyDoc
	CmdInclude
	CmdDontInclude
	CmdHTMLInclude
	CmdVerbInclude
	CmdSkip
	CmdUntil
	CmdSkipLine
	CmdLine
	CmdImage
	CmdDotFile
	CmdLink
	CmdJavaLink
	CmdRef
	CmdSecRefList
	CmdEndSecRefList
	CmdSecRefItem
	CmdLangSwitch
)

// commandTable maps a command name (without its backslash/at prefix) to
// its id (spec §6). Generalizes the teacher's TokenType.String() switch
// idiom (internal/markdown/token.go) into a data table, since here the
// mapping is name -> id rather than id -> name.
var commandTable = map[string]CmdID{
	"\\": CmdBSlash, "@": CmdAt, "<": CmdLessThan, ">": CmdGreaterThan,
	"&": CmdAmpersand, "$": CmdDollar, "#": CmdHashChar, "%": CmdPercent,

	"em": CmdEmphasis, "b": CmdBold, "code": CmdCode,

	"htmlonly":  CmdHTMLOnly,
	"latexonly": CmdLatexOnly,
	"f":         CmdFormula,

	"sa": CmdSa, "return": CmdReturn, "author": CmdAuthor,
	"version": CmdVersion, "since": CmdSince, "date": CmdDate,
	"note": CmdNote, "warning": CmdWarning, "pre": CmdPre,
	"post": CmdPost, "invariant": CmdInvariant, "remark": CmdRemark,
	"attention": CmdAttention, "par": CmdPar,

	"param": CmdParam, "retval": CmdRetVal, "exception": CmdException,

	"bug": CmdBug, "todo": CmdTodo, "test": CmdTest, "deprecated": CmdDeprecated,

	"li": CmdLi, "section": CmdSection, "subsection": CmdSubsection,

	"startcode": CmdStartCode, "verbatim": CmdVerbatim,

	"endcode": CmdEndCode, "endhtmlonly": CmdEndHTMLOnly,
	"endlatexonly": CmdEndLatexOnly, "endlink": CmdEndLink,
	"endverbatim": CmdEndVerbatim,

	"linebreak": CmdLineBreak, "anchor": CmdAnchor, "addindex": CmdAddIndex,
	"internal": CmdInternal, "copydoc": CmdCopyDoc,
	"include": CmdInclude, "dontinclude": CmdDontInclude,
	"htmlinclude": CmdHTMLInclude, "verbinclude": CmdVerbInclude,
	"skip": CmdSkip, "until": CmdUntil, "skipline": CmdSkipLine, "line": CmdLine,
	"image": CmdImage, "dotfile": CmdDotFile,
	"link": CmdLink, "javalink": CmdJavaLink, "ref": CmdRef,
	"secreflist": CmdSecRefList, "endsecreflist": CmdEndSecRefList,
	"secrefitem": CmdSecRefItem,
	"~":          CmdLangSwitch,
}

// simpleSectionCmds is the "simple-section flag bit" set: command ids that
// start a SimpleSect production directly from paragraph/dispatcher context.
var simpleSectionCmds = map[CmdID]SimpleSectKind{
	CmdSa:        SimpleSee,
	CmdReturn:    SimpleReturn,
	CmdAuthor:    SimpleAuthor,
	CmdVersion:   SimpleVersion,
	CmdSince:     SimpleSince,
	CmdDate:      SimpleDate,
	CmdNote:      SimpleNote,
	CmdWarning:   SimpleWarning,
	CmdPre:       SimplePre,
	CmdPost:      SimplePost,
	CmdInvariant: SimpleInvar,
	CmdRemark:    SimpleRemark,
	CmdAttention: SimpleAttention,
	CmdPar:       SimpleUser,
}

// commandAliases holds project-defined extra command names (docparser.yaml's
// extra_commands), consulted after commandTable so a house alias behaves
// exactly like the command it names. Populated once via RegisterCommandAlias
// during CLI startup, before any ParseDoc call.
var commandAliases = map[string]CmdID{}

// RegisterCommandAlias makes alias resolve to the same CmdID as canonical,
// the wiring point for docparser.yaml's extra_commands. canonical must
// already be a known command name; an unknown canonical is a no-op.
func RegisterCommandAlias(alias, canonical string) {
	if id, ok := commandTable[canonical]; ok {
		commandAliases[alias] = id
	}
}

// lookupCommand resolves a bare command name to its id, or CmdUnknown.
func lookupCommand(name string) CmdID {
	if id, ok := commandTable[name]; ok {
		return id
	}
	if id, ok := commandAliases[name]; ok {
		return id
	}

	return CmdUnknown
}

// isSimpleSectionCmd reports whether id starts a simple section, and which kind.
func isSimpleSectionCmd(id CmdID) (SimpleSectKind, bool) {
	k, ok := simpleSectionCmds[id]

	return k, ok
}

// CommandCount returns the number of built-in command names the package
// recognizes, not counting aliases registered at runtime via
// RegisterCommandAlias. Exposed so the CLI's version command can report
// which built-in grammar a binary was compiled with.
func CommandCount() int { return len(commandTable) }
