package shape

import (
	"strings"

	"accessor-generator/internal/common"
	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/meta"
)

// ParamKind is the kind of a generic parameter.
type ParamKind int

const (
	ParamLifetime ParamKind = iota
	ParamType
	ParamConst
)

// String returns a human-readable representation of the ParamKind.
func (k ParamKind) String() string {
	switch k {
	case ParamLifetime:
		return "lifetime"
	case ParamType:
		return "type"
	case ParamConst:
		return "const"
	default:
		return common.UnknownStr
	}
}

// Param is one generic parameter of a record.
type Param struct {
	Kind ParamKind `json:"kind" yaml:"kind" msgpack:"kind"`
	// Name includes the quote of a lifetime.
	Name string `json:"name" yaml:"name" msgpack:"name"`
	// Bounds is the text after the colon, or the type of a const parameter.
	Bounds  string `json:"bounds,omitempty" yaml:"bounds,omitempty" msgpack:"bounds,omitempty"`
	Default string `json:"default,omitempty" yaml:"default,omitempty" msgpack:"default,omitempty"`
}

func (p Param) declaration() string {
	var b strings.Builder

	if p.Kind == ParamConst {
		b.WriteString("const ")
	}

	b.WriteString(p.Name)

	if p.Bounds != "" {
		b.WriteString(": ")
		b.WriteString(p.Bounds)
	}

	return b.String()
}

// Generics is a record's generic parameter list and where clause.
type Generics struct {
	Params []Param `json:"params,omitempty" yaml:"params,omitempty" msgpack:"params,omitempty"`
	// Where holds the where-clause predicates without the keyword.
	Where string `json:"where,omitempty" yaml:"where,omitempty" msgpack:"where,omitempty"`
}

// ParseGenerics parses a parameter list, with or without its angle
// brackets, and a where clause, with or without its keyword.
func ParseGenerics(params, where string) (Generics, error) {
	return ParseGenericsAt(params, diagnostic.Span{}, where, diagnostic.Span{})
}

// ParseGenericsAt is ParseGenerics with the source locations of both parts.
func ParseGenericsAt(params string, paramsSpan diagnostic.Span, where string, whereSpan diagnostic.Span) (Generics, error) {
	var g Generics

	toks, err := meta.Lex(params, paramsSpan)
	if err != nil {
		return Generics{}, err
	}

	p := &typeParser{src: params, toks: toks}

	bracketed := p.peek().Is("<")
	if bracketed {
		p.next()
	}

	for p.peek().Kind != meta.TokenEOF && !(bracketed && p.peek().Is(">")) {
		param, err := p.param()
		if err != nil {
			return Generics{}, err
		}

		g.Params = append(g.Params, param)

		if p.peek().Is(",") {
			p.next()

			continue
		}

		break
	}

	if bracketed {
		if err := p.expect(">"); err != nil {
			return Generics{}, err
		}
	}

	if tok := p.peek(); tok.Kind != meta.TokenEOF {
		return Generics{}, p.unexpected(tok, "`,` or end of generics")
	}

	g.Where, err = parseWhere(where, whereSpan)
	if err != nil {
		return Generics{}, err
	}

	return g, nil
}

func (p *typeParser) param() (Param, error) {
	tok := p.next()

	var param Param

	switch {
	case tok.Kind == meta.TokenLifetime:
		param = Param{Kind: ParamLifetime, Name: tok.Text}
	case tok.Is("const"):
		name := p.next()
		if name.Kind != meta.TokenIdent {
			return Param{}, p.unexpected(name, "identifier")
		}

		param = Param{Kind: ParamConst, Name: name.Value}
	case tok.Kind == meta.TokenIdent:
		param = Param{Kind: ParamType, Name: tok.Value}
	default:
		return Param{}, p.unexpected(tok, "generic parameter")
	}

	if p.peek().Is(":") {
		p.next()

		start := p.peek()

		end, err := p.skipUntil(",", ">", "=")
		if err != nil {
			return Param{}, err
		}

		param.Bounds = strings.TrimSpace(p.src[start.Start:end.Start])
	}

	if param.Kind == ParamConst && param.Bounds == "" {
		return Param{}, p.unexpected(p.peek(), "`:` and the const type")
	}

	if p.peek().Is("=") {
		p.next()

		start := p.peek()

		end, err := p.skipUntil(",", ">")
		if err != nil {
			return Param{}, err
		}

		param.Default = strings.TrimSpace(p.src[start.Start:end.Start])
	}

	return param, nil
}

func parseWhere(where string, span diagnostic.Span) (string, error) {
	toks, err := meta.Lex(where, span)
	if err != nil {
		return "", err
	}

	start := 0
	if toks[0].Is("where") {
		start = toks[0].End
	}

	return strings.TrimSuffix(strings.TrimSpace(where[start:]), ","), nil
}

// IsEmpty reports whether there are no parameters and no where clause.
func (g Generics) IsEmpty() bool {
	return len(g.Params) == 0 && g.Where == ""
}

// Declaration renders the parameters for an impl header, bounds kept and
// defaults dropped: `<'a, T: Clone, const N: usize>`.
func (g Generics) Declaration() string {
	if len(g.Params) == 0 {
		return ""
	}

	parts := make([]string, len(g.Params))
	for i, p := range g.Params {
		parts[i] = p.declaration()
	}

	return "<" + strings.Join(parts, ", ") + ">"
}

// Arguments renders the parameters as type arguments: `<'a, T, N>`.
func (g Generics) Arguments() string {
	if len(g.Params) == 0 {
		return ""
	}

	parts := make([]string, len(g.Params))
	for i, p := range g.Params {
		parts[i] = p.Name
	}

	return "<" + strings.Join(parts, ", ") + ">"
}

// WhereClause renders the where clause with extra predicates appended, or
// "" when there are none.
func (g Generics) WhereClause(extra ...string) string {
	var preds []string
	if g.Where != "" {
		preds = append(preds, g.Where)
	}

	preds = append(preds, extra...)
	if len(preds) == 0 {
		return ""
	}

	return "where " + strings.Join(preds, ", ")
}

// Lifetimes returns the lifetime parameters in declaration order.
func (g Generics) Lifetimes() []Param {
	return g.ofKind(ParamLifetime)
}

// TypeParams returns the type parameters in declaration order.
func (g Generics) TypeParams() []Param {
	return g.ofKind(ParamType)
}

func (g Generics) ofKind(kind ParamKind) []Param {
	var out []Param

	for _, p := range g.Params {
		if p.Kind == kind {
			out = append(out, p)
		}
	}

	return out
}

// Contains reports whether text occurs anywhere in the rendered
// declaration or where clause, including inside longer identifiers.
func (g Generics) Contains(text string) bool {
	return strings.Contains(g.Declaration()+" "+g.WhereClause(), text)
}
