package lexing

import (
	"slices"
	"sync"

	"github.com/samber/lo"
)

// TableEntry is one fixed lexeme of the language and its kind.
type TableEntry struct {
	Lexeme string
	Kind   TokenKind
}

var tokenTable = map[string]TokenKind{}

func defineTokens(kind TokenKind, lexemes ...string) {
	for _, lexeme := range lexemes {
		tokenTable[lexeme] = kind
	}
}

func init() {
	defineTokens(TokenUnary, "!", "++", "--")
	defineTokens(TokenBinary, "=", "+", "-", "*", "/", "%", "&&", "||", "<", ">")
	defineTokens(TokenControlFlow, "if", "elif", "else", "while", "for", "do")
	defineTokens(TokenKeyword, "print")
	defineTokens(TokenSymbol, ":", "=>")
	defineTokens(TokenGrouping, "(", ")", "{", "}", ";")
	defineTokens(TokenSeparator, " ", ",")
}

// FixedLexemes returns every fixed lexeme with its kind, ordered by
// descending lexeme length. Lexemes of equal length cannot be prefixes of
// one another so their relative order does not matter. The ordering is
// computed once per process.
var FixedLexemes = sync.OnceValue(func() []TableEntry {
	entries := make([]TableEntry, 0, len(tokenTable))
	for lexeme, kind := range tokenTable {
		entries = append(entries, TableEntry{
			Lexeme: lexeme,
			Kind:   kind,
		})
	}
	groups := lo.GroupBy(entries, func(entry TableEntry) int {
		return len(entry.Lexeme)
	})
	lengths := lo.Keys(groups)
	slices.Sort(lengths)
	slices.Reverse(lengths)
	var ret []TableEntry
	for _, length := range lengths {
		ret = append(ret, groups[length]...)
	}
	return ret
})

func isIdentifierChar(r rune) bool {
	return r == '_' ||
		r >= '0' && r <= '9' ||
		r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
