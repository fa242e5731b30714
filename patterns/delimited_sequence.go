package patterns

import "github.com/reusee/toklex/lexing"

// DelimitedSequence captures delimiter-separated elements. It never
// fails: zero elements is a valid empty result and a trailing delimiter
// is consumed and tolerated.
type DelimitedSequence struct {
	filter    func(*lexing.Token) bool
	delimiter *lexing.Token
}

// NewDelimitedSequence returns a pattern capturing elements accepted by
// filter, separated by delimiter. A nil filter accepts any token; a nil
// delimiter means the separator comma.
func NewDelimitedSequence(
	filter func(*lexing.Token) bool,
	delimiter *lexing.Token,
) *DelimitedSequence {
	if filter == nil {
		filter = func(*lexing.Token) bool {
			return true
		}
	}
	if delimiter == nil {
		delimiter = &lexing.Token{
			Kind:  lexing.TokenSeparator,
			Value: ",",
		}
	}
	return &DelimitedSequence{
		filter:    filter,
		delimiter: delimiter,
	}
}

func (p *DelimitedSequence) Match(stream lexing.TokenStream) (Match, error) {
	var groups []*lexing.Token
	for {
		elem := stream.Peek()
		if elem.Kind == lexing.TokenEOF || !p.filter(elem) {
			break
		}
		groups = append(groups, elem)
		stream.Next()

		if !stream.Peek().Equal(p.delimiter) {
			break
		}
		stream.Next()
	}
	return Match{
		Matched: true,
		Groups:  groups,
	}, nil
}
