package patterns

import "github.com/reusee/toklex/lexing"

// Expectation is one element of an ExactSequence pattern: either a
// concrete token (kind and value) or any token of a kind.
type Expectation struct {
	kind  lexing.TokenKind
	value string
	exact bool
}

// Exact expects a token with this kind and value.
func Exact(kind lexing.TokenKind, value string) Expectation {
	return Expectation{
		kind:  kind,
		value: value,
		exact: true,
	}
}

// OfKind expects any token of this kind.
func OfKind(kind lexing.TokenKind) Expectation {
	return Expectation{
		kind: kind,
	}
}

func (e Expectation) matches(tok *lexing.Token) bool {
	if tok == nil || tok.Kind == lexing.TokenEOF {
		return false
	}
	if e.exact {
		return tok.Kind == e.kind && tok.Value == e.value
	}
	return tok.Kind == e.kind
}
