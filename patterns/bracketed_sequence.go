package patterns

import (
	"errors"

	"github.com/reusee/toklex/lexing"
)

var ErrUnbalancedBrackets = errors.New("unbalanced bracketed expression")

// BracketedSequence consumes a balanced bracket span. The nesting level
// goes up on tokens equal to the open bracket and down on tokens whose
// value equals closeValue; the span ends when the level returns to zero.
// Captured tokens are the interior, outer brackets stripped.
type BracketedSequence struct {
	open       *lexing.Token
	closeValue string
}

func NewBracketedSequence(open *lexing.Token, closeValue string) *BracketedSequence {
	return &BracketedSequence{
		open:       open,
		closeValue: closeValue,
	}
}

func (p *BracketedSequence) Match(stream lexing.TokenStream) (Match, error) {
	var buffer []*lexing.Token
	level := 0
	for {
		tok, ok := stream.Next()
		if !ok {
			return Match{}, ErrUnbalancedBrackets
		}
		if tok.Equal(p.open) {
			level++
		} else if tok.Value == p.closeValue {
			level--
		}
		buffer = append(buffer, tok)
		if level == 0 {
			break
		}
	}
	if len(buffer) < 2 {
		return Match{Matched: true}, nil
	}
	return Match{
		Matched: true,
		Groups:  buffer[1 : len(buffer)-1],
	}, nil
}
