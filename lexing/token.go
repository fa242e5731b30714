package lexing

import "fmt"

type Token struct {
	Kind    TokenKind
	Value   string
	Literal LiteralType
}

func (t *Token) Equal(other *Token) bool {
	if t == nil || other == nil {
		return t == other
	}
	return *t == *other
}

func (t *Token) String() string {
	if t.Literal != LiteralNone {
		return fmt.Sprintf("%v: %q, %v", t.Kind, t.Value, t.Literal)
	}
	return fmt.Sprintf("%v: %q", t.Kind, t.Value)
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF
	TokenUnary
	TokenBinary
	TokenIdentifier
	TokenValue
	TokenControlFlow
	TokenKeyword
	TokenSymbol
	TokenGrouping
	TokenSeparator
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenUnary:
		return "UNARY"
	case TokenBinary:
		return "BINARY"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenValue:
		return "VALUE"
	case TokenControlFlow:
		return "CONTROL_FLOW"
	case TokenKeyword:
		return "KEYWORD"
	case TokenSymbol:
		return "SYMBOL"
	case TokenGrouping:
		return "GROUPING"
	case TokenSeparator:
		return "SEPARATOR"
	}
	return "INVALID"
}

// LiteralType distinguishes parsed literal values carried by VALUE tokens.
type LiteralType uint8

const (
	LiteralNone LiteralType = iota
	LiteralInteger
	LiteralFloat
	LiteralString
)

func (l LiteralType) String() string {
	switch l {
	case LiteralInteger:
		return "Integer"
	case LiteralFloat:
		return "Float"
	case LiteralString:
		return "String"
	}
	return "None"
}
