package lexing

import "iter"

// TokenStream is a cursor over a token sequence. Next and Consume commit
// the position; Stream iterates from the current position without
// committing, so a caller can look ahead and then Consume what it matched.
type TokenStream interface {
	Next() (*Token, bool)
	Peek() *Token
	Consume(n int)
	Stream() iter.Seq[*Token]
}

type SliceTokenStream struct {
	tokens []*Token
	idx    int
}

func NewSliceTokenStream(tokens []*Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Next() (*Token, bool) {
	if s.idx >= len(s.tokens) {
		return nil, false
	}
	tok := s.tokens[s.idx]
	s.idx++
	return tok, true
}

func (s *SliceTokenStream) Peek() *Token {
	if s.idx >= len(s.tokens) {
		return &Token{Kind: TokenEOF}
	}
	return s.tokens[s.idx]
}

func (s *SliceTokenStream) Consume(n int) {
	s.idx += n
	if s.idx > len(s.tokens) {
		s.idx = len(s.tokens)
	}
}

func (s *SliceTokenStream) Stream() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for i := s.idx; i < len(s.tokens); i++ {
			if !yield(s.tokens[i]) {
				break
			}
		}
	}
}
