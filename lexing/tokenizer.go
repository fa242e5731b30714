package lexing

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
)

var (
	ErrImproperToken      = errors.New("improper token")
	ErrUnterminatedString = errors.New("unterminated string literal")
)

// Tokenizer lazily converts source text into tokens. The scanner position
// is its only mutable state; it never moves backwards.
type Tokenizer struct {
	scanner *Scanner
	current *Token
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{
		scanner: NewScanner(source),
	}
}

// Current returns the next token without consuming it. At end of input it
// returns a TokenEOF token.
func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.parseNext()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	t.current = nil
}

func (t *Tokenizer) parseNext() (*Token, error) {
	t.skipWhitespace()

	r, ok := t.scanner.PeekAt(0)
	if !ok {
		return &Token{Kind: TokenEOF}, nil
	}

	// fixed lexemes, longest first
	for _, entry := range FixedLexemes() {
		length := len(entry.Lexeme)
		if t.scanner.Peek(length) != entry.Lexeme {
			continue
		}
		if entry.Kind == TokenKeyword {
			// a keyword must not be the prefix of a longer identifier
			if next, ok := t.scanner.PeekAt(length); ok && isIdentifierChar(next) {
				continue
			}
		}
		t.scanner.Advance(length)
		return &Token{
			Kind:  entry.Kind,
			Value: entry.Lexeme,
		}, nil
	}

	switch {
	case r == '"' || r == '\'':
		return t.parseString(r)
	case isDigit(r):
		return t.parseNumber()
	case isIdentifierChar(r):
		return t.parseIdentifier()
	}

	return nil, fmt.Errorf("%w: %q", ErrImproperToken, r)
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, ok := t.scanner.PeekAt(0)
		if !ok || r != ' ' && r != '\n' {
			return
		}
		t.scanner.Step()
	}
}

func (t *Tokenizer) parseString(quote rune) (*Token, error) {
	t.scanner.Step()
	var buf bytes.Buffer
	var prev rune
	for {
		r, ok := t.scanner.Step()
		if !ok {
			return nil, fmt.Errorf("%w: missing closing %q", ErrUnterminatedString, quote)
		}
		if r == quote && prev != '\\' {
			break
		}
		buf.WriteRune(r)
		prev = r
	}
	return &Token{
		Kind:    TokenValue,
		Value:   buf.String(),
		Literal: LiteralString,
	}, nil
}

func (t *Tokenizer) parseNumber() (*Token, error) {
	var buf bytes.Buffer
	isFloat := false
	for {
		r, ok := t.scanner.PeekAt(0)
		if !ok {
			break
		}
		if isDigit(r) {
			buf.WriteRune(r)
		} else if r == '.' && !isFloat {
			buf.WriteRune(r)
			isFloat = true
		} else {
			break
		}
		t.scanner.Step()
	}
	literal := LiteralInteger
	if isFloat {
		literal = LiteralFloat
	}
	return &Token{
		Kind:    TokenValue,
		Value:   buf.String(),
		Literal: literal,
	}, nil
}

func (t *Tokenizer) parseIdentifier() (*Token, error) {
	var buf bytes.Buffer
	for {
		r, ok := t.scanner.PeekAt(0)
		if !ok || !isIdentifierChar(r) {
			break
		}
		buf.WriteRune(r)
		t.scanner.Step()
	}
	return &Token{
		Kind:  TokenIdentifier,
		Value: buf.String(),
	}, nil
}

// Tokens iterates the remaining tokens. The sequence is finite and ends
// before the EOF token; it is not restartable without a new Tokenizer.
func (t *Tokenizer) Tokens() iter.Seq2[*Token, error] {
	return func(yield func(*Token, error) bool) {
		for {
			tok, err := t.Current()
			if err != nil {
				yield(nil, err)
				return
			}
			if tok.Kind == TokenEOF {
				return
			}
			t.Consume()
			if !yield(tok, nil) {
				return
			}
		}
	}
}

func TokenizeAll(source string) ([]*Token, error) {
	tokenizer := NewTokenizer(source)
	var tokens []*Token
	for tok, err := range tokenizer.Tokens() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
