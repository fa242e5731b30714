package lexing

import "bytes"

// Scanner owns a read position over a source text. All operations are
// total: past the end of input they degrade to empty results instead of
// erroring.
type Scanner struct {
	source []rune
	pos    int
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: []rune(source),
	}
}

// Peek returns up to n characters starting at the current position,
// without advancing.
func (s *Scanner) Peek(n int) string {
	end := s.pos + n
	if end > len(s.source) {
		end = len(s.source)
	}
	if s.pos >= end {
		return ""
	}
	return string(s.source[s.pos:end])
}

// PeekAt returns the character at pos + offset, without advancing.
func (s *Scanner) PeekAt(offset int) (rune, bool) {
	idx := s.pos + offset
	if idx < 0 || idx >= len(s.source) {
		return 0, false
	}
	return s.source[idx], true
}

// Step returns the character at the current position and advances by one.
func (s *Scanner) Step() (rune, bool) {
	if s.pos >= len(s.source) {
		return 0, false
	}
	r := s.source[s.pos]
	s.pos++
	return r, true
}

// Advance steps n times and returns the concatenated characters.
func (s *Scanner) Advance(n int) string {
	var buf bytes.Buffer
	for range n {
		r, ok := s.Step()
		if !ok {
			break
		}
		buf.WriteRune(r)
	}
	return buf.String()
}
