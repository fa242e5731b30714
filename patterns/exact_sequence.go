package patterns

import "github.com/reusee/toklex/lexing"

// ExactSequence matches an ordered list of expectations. Matching looks
// ahead without committing; only a full match consumes the stream, so a
// failed attempt leaves the stream where it was.
type ExactSequence struct {
	pattern []Expectation
}

func NewExactSequence(pattern ...Expectation) *ExactSequence {
	return &ExactSequence{
		pattern: pattern,
	}
}

func (p *ExactSequence) Match(stream lexing.TokenStream) (Match, error) {
	if len(p.pattern) == 0 {
		return Match{Matched: true}, nil
	}
	i := 0
	for tok := range stream.Stream() {
		if !p.pattern[i].matches(tok) {
			return Match{}, nil
		}
		i++
		if i == len(p.pattern) {
			stream.Consume(len(p.pattern))
			return Match{Matched: true}, nil
		}
	}
	// stream ended mid-pattern
	return Match{}, nil
}
