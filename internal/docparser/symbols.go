package docparser

import "strings"

// fixedSymbols are the exact entity names with no accent letter.
var fixedSymbols = map[string]SymbolKind{
	"copy": SymCopy, "lt": SymLess, "gt": SymGreater, "amp": SymAmp,
	"apos": SymApos, "quot": SymQuot, "szlig": SymSzlig, "nbsp": SymNbsp,
}

// accentSuffixes maps an entity suffix to its SymbolKind, for the
// "X" + suffix accented-letter pattern (&auml; &Ouml; &ncedil; ...).
var accentSuffixes = map[string]SymbolKind{
	"uml": SymUml, "acute": SymAcute, "grave": SymGrave,
	"circ": SymCirc, "tilde": SymTilde, "cedil": SymCedil, "ring": SymRing,
}

// decodeSymbol resolves an entity name (without & or ;) to its SymbolKind
// and, for accented-letter forms, the letter it decorates (spec §4.2/§6).
// ok is false for anything not matching the fixed or accent-pattern tables.
func decodeSymbol(name string) (kind SymbolKind, letter byte, ok bool) {
	if k, found := fixedSymbols[name]; found {
		return k, 0, true
	}

	if len(name) < 2 {
		return 0, 0, false
	}

	first := name[0]
	if !isASCIILetter(first) {
		return 0, 0, false
	}

	suffix := strings.ToLower(name[1:])
	if k, found := accentSuffixes[suffix]; found {
		return k, first, true
	}

	return 0, 0, false
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
