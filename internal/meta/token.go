package meta

import (
	"accessor-generator/internal/common"
	"accessor-generator/internal/diagnostic"
)

// TokenKind classifies a Token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenLifetime
	TokenStr
	TokenByteStr
	TokenChar
	TokenByte
	TokenInt
	TokenFloat
	TokenPunct
)

// String returns a human-readable token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenLifetime:
		return "lifetime"
	case TokenStr:
		return "string"
	case TokenByteStr:
		return "byte string"
	case TokenChar:
		return "char"
	case TokenByte:
		return "byte"
	case TokenInt:
		return "integer"
	case TokenFloat:
		return "float"
	case TokenPunct:
		return "punctuation"
	default:
		return common.UnknownStr
	}
}

// Token is one lexical unit of attribute or type text.
type Token struct {
	Kind TokenKind
	// Text is the token exactly as written.
	Text string
	// Value is the decoded content of string and char literals, and the
	// name of raw identifiers without their `r#` prefix.
	Value string
	// Start and End are byte offsets into the lexed text.
	Start int
	End   int
	Span  diagnostic.Span
}

// Is reports whether the token is the punctuation or identifier text.
func (t Token) Is(text string) bool {
	return (t.Kind == TokenPunct || t.Kind == TokenIdent) && t.Text == text
}

// IsLiteral reports whether the token is a literal of any kind.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case TokenStr, TokenByteStr, TokenChar, TokenByte, TokenInt, TokenFloat:
		return true
	default:
		return false
	}
}

func (t Token) describe() string {
	if t.Kind == TokenEOF {
		return t.Kind.String()
	}

	return "`" + t.Text + "`"
}
