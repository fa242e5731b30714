package patterns

import "github.com/reusee/toklex/lexing"

// Pattern recognizes a token-level shape against a stream. A non-matching
// stream yields Match.Matched == false with a nil error; a structurally
// broken stream yields a non-nil error.
type Pattern interface {
	Match(stream lexing.TokenStream) (Match, error)
}

// Match is the result of one Match call. Groups holds captured tokens;
// its meaning differs per pattern.
type Match struct {
	Matched bool
	Groups  []*lexing.Token
}
