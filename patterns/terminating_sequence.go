package patterns

import (
	"errors"
	"fmt"

	"github.com/reusee/toklex/lexing"
)

var ErrMissingTerminator = errors.New("token stream ended before terminator")

// TerminatingSequence consumes tokens up to and including a terminator.
// A stream that ends first is structurally broken, not a non-match.
type TerminatingSequence struct {
	terminator *lexing.Token
}

// NewTerminatingSequence returns a pattern consuming up to the given
// terminator. A nil terminator means the grouping semicolon.
func NewTerminatingSequence(terminator *lexing.Token) *TerminatingSequence {
	if terminator == nil {
		terminator = &lexing.Token{
			Kind:  lexing.TokenGrouping,
			Value: ";",
		}
	}
	return &TerminatingSequence{
		terminator: terminator,
	}
}

func (p *TerminatingSequence) Match(stream lexing.TokenStream) (Match, error) {
	for {
		tok, ok := stream.Next()
		if !ok {
			return Match{}, fmt.Errorf("%w: expected %v", ErrMissingTerminator, p.terminator)
		}
		if tok.Equal(p.terminator) {
			return Match{Matched: true}, nil
		}
	}
}
