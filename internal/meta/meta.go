package meta

import (
	"strings"

	"accessor-generator/internal/common"
	"accessor-generator/internal/diagnostic"
)

// MetaKind is the form of a meta item.
type MetaKind int

const (
	MetaPath MetaKind = iota
	MetaList
	MetaNameValue
)

// String returns the form name used in diagnostics.
func (k MetaKind) String() string {
	switch k {
	case MetaPath:
		return "Path"
	case MetaList:
		return "List"
	case MetaNameValue:
		return "NameValue"
	default:
		return common.UnknownStr
	}
}

// LitKind is the kind of a literal.
type LitKind int

const (
	LitStr LitKind = iota
	LitByteStr
	LitChar
	LitByte
	LitInt
	LitFloat
	LitBool
	LitVerbatim
)

// String returns the literal kind name used in diagnostics.
func (k LitKind) String() string {
	switch k {
	case LitStr:
		return "string"
	case LitByteStr:
		return "byte string"
	case LitChar:
		return "char"
	case LitByte:
		return "byte"
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitBool:
		return "bool"
	case LitVerbatim:
		return "verbatim"
	default:
		return common.UnknownStr
	}
}

// Path is a `::`-separated name such as `inline` or `std::fmt::Debug`.
type Path struct {
	Leading  bool
	Segments []string
	Span     diagnostic.Span
}

// Ident returns the single segment of a plain one-word path, or "".
func (p Path) Ident() string {
	if p.Leading || len(p.Segments) != 1 {
		return ""
	}

	return p.Segments[0]
}

// IsIdent reports whether the path is exactly the one word name.
func (p Path) IsIdent(name string) bool {
	return p.Ident() == name
}

func (p Path) String() string {
	s := strings.Join(p.Segments, "::")
	if p.Leading {
		return "::" + s
	}

	return s
}

// Lit is a literal appearing in a meta item.
type Lit struct {
	Kind LitKind
	// Text is the literal as written.
	Text string
	// Value is the decoded content of string, byte string and char literals.
	Value string
	Span  diagnostic.Span
}

// Bool returns the value of a bool literal.
func (l Lit) Bool() bool {
	return l.Kind == LitBool && l.Text == "true"
}

// Meta is one parsed meta item.
type Meta struct {
	Kind MetaKind
	Path Path
	// Nested holds the items of a MetaList.
	Nested []NestedMeta
	// Lit holds the value of a MetaNameValue.
	Lit  Lit
	Span diagnostic.Span
}

// NestedMeta is an item of a meta list: either a meta item or a literal.
type NestedMeta struct {
	Meta *Meta
	Lit  *Lit
}

// IsLit reports whether the item is a literal.
func (n NestedMeta) IsLit() bool {
	return n.Lit != nil
}

// Span returns the location of the item.
func (n NestedMeta) Span() diagnostic.Span {
	if n.Lit != nil {
		return n.Lit.Span
	}

	return n.Meta.Span
}

// ParseMeta parses text holding exactly one meta item.
func ParseMeta(text string, base diagnostic.Span) (*Meta, error) {
	toks, err := Lex(text, base)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}

	m, err := p.meta()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, p.unexpected(tok, "end of input")
	}

	return m, nil
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	tok := p.toks[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}

	return tok
}

func (p *parser) unexpected(tok Token, expected string) error {
	return diagnostic.Custom("expected %s, found %s", expected, tok.describe()).WithSpan(tok.Span)
}

func (p *parser) path() (Path, error) {
	start := p.peek()
	path := Path{Span: start.Span}

	if start.Is("::") {
		path.Leading = true

		p.next()
	}

	for {
		tok := p.next()
		if tok.Kind != TokenIdent {
			return Path{}, p.unexpected(tok, "identifier")
		}

		path.Segments = append(path.Segments, tok.Value)

		if !p.peek().Is("::") {
			return path, nil
		}

		p.next()
	}
}

func (p *parser) meta() (*Meta, error) {
	path, err := p.path()
	if err != nil {
		return nil, err
	}

	m := &Meta{Kind: MetaPath, Path: path, Span: path.Span}

	switch tok := p.peek(); {
	case tok.Is("("):
		p.next()

		m.Kind = MetaList
		m.Nested = []NestedMeta{}

		for !p.peek().Is(")") {
			item, err := p.nested()
			if err != nil {
				return nil, err
			}

			m.Nested = append(m.Nested, item)

			if sep := p.peek(); sep.Is(",") {
				p.next()
			} else if !sep.Is(")") {
				return nil, p.unexpected(sep, "`,` or `)`")
			}
		}

		p.next()
	case tok.Is("="):
		p.next()

		lit, ok := litFromToken(p.peek())
		if !ok {
			return nil, p.unexpected(p.peek(), "literal")
		}

		p.next()

		m.Kind = MetaNameValue
		m.Lit = lit
	}

	return m, nil
}

func (p *parser) nested() (NestedMeta, error) {
	tok := p.peek()

	if lit, ok := litFromToken(tok); ok {
		p.next()

		return NestedMeta{Lit: &lit}, nil
	}

	if tok.Kind != TokenIdent && !tok.Is("::") {
		return NestedMeta{}, p.unexpected(tok, "meta item or literal")
	}

	m, err := p.meta()
	if err != nil {
		return NestedMeta{}, err
	}

	return NestedMeta{Meta: m}, nil
}

var numericSuffixes = map[string]bool{
	"": true, "i8": true, "i16": true, "i32": true, "i64": true, "i128": true, "isize": true,
	"u8": true, "u16": true, "u32": true, "u64": true, "u128": true, "usize": true,
	"f32": true, "f64": true,
}

func litFromToken(tok Token) (Lit, bool) {
	lit := Lit{Text: tok.Text, Value: tok.Value, Span: tok.Span}

	switch tok.Kind {
	case TokenStr:
		lit.Kind = LitStr
	case TokenByteStr:
		lit.Kind = LitByteStr
	case TokenChar:
		lit.Kind = LitChar
	case TokenByte:
		lit.Kind = LitByte
	case TokenInt, TokenFloat:
		lit.Kind = LitInt
		if tok.Kind == TokenFloat {
			lit.Kind = LitFloat
		}

		if !numericSuffixes[numericSuffix(tok.Text)] {
			lit.Kind = LitVerbatim
		}
	case TokenIdent:
		if tok.Text != "true" && tok.Text != "false" {
			return Lit{}, false
		}

		lit.Kind = LitBool
	default:
		return Lit{}, false
	}

	return lit, true
}

func numericSuffix(text string) string {
	body := text
	if len(body) > 2 && body[0] == '0' && strings.IndexByte("xob", body[1]) >= 0 {
		// hex digits overlap with suffix letters; only i/u suffixes apply
		if i := strings.IndexAny(body, "iu"); i >= 0 {
			return body[i:]
		}

		return ""
	}

	i := strings.IndexFunc(body, func(r rune) bool {
		return r != '_' && r != '.' && (r < '0' || r > '9') && r != 'e' && r != 'E' && r != '+' && r != '-'
	})
	if i < 0 {
		return ""
	}

	return body[i:]
}
