package shape

import (
	"strings"

	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/meta"
)

// Parse parses a type expression.
func Parse(text string) (*Type, error) {
	return ParseAt(text, diagnostic.Span{})
}

// ParseAt parses a type expression located at span.
func ParseAt(text string, span diagnostic.Span) (*Type, error) {
	toks, err := meta.Lex(text, span)
	if err != nil {
		return nil, err
	}

	p := &typeParser{src: text, toks: toks}

	t, err := p.typ()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Kind != meta.TokenEOF {
		return nil, p.unexpected(tok, "end of type")
	}

	return t, nil
}

// MustParse is Parse for fixed type text; it panics on error.
func MustParse(text string) *Type {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return t
}

type typeParser struct {
	src  string
	toks []meta.Token
	pos  int
}

func (p *typeParser) peek() meta.Token {
	return p.toks[p.pos]
}

func (p *typeParser) peekAt(n int) meta.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}

	return p.toks[p.pos+n]
}

func (p *typeParser) next() meta.Token {
	tok := p.toks[p.pos]
	if tok.Kind != meta.TokenEOF {
		p.pos++
	}

	return tok
}

func (p *typeParser) expect(text string) error {
	if tok := p.next(); !tok.Is(text) {
		return p.unexpected(tok, "`"+text+"`")
	}

	return nil
}

func (p *typeParser) unexpected(tok meta.Token, expected string) error {
	found := "end of input"
	if tok.Kind != meta.TokenEOF {
		found = "`" + tok.Text + "`"
	}

	return diagnostic.Custom("expected %s, found %s", expected, found).WithSpan(tok.Span)
}

func (p *typeParser) typ() (*Type, error) {
	tok := p.peek()

	switch {
	case tok.Is("!"):
		p.next()

		return &Type{Kind: KindNever}, nil
	case tok.Is("&"):
		return p.reference()
	case tok.Is("*"):
		return p.pointer()
	case tok.Is("("):
		return p.tuple()
	case tok.Is("["):
		return p.array()
	case tok.Is("<"):
		return p.verbatim()
	case tok.Is("::"):
		return p.path()
	case tok.Kind == meta.TokenIdent:
		switch tok.Text {
		case "_":
			p.next()

			return &Type{Kind: KindInfer}, nil
		case "dyn", "impl", "fn", "unsafe", "extern", "for":
			return p.verbatim()
		default:
			return p.path()
		}
	default:
		return nil, p.unexpected(tok, "type")
	}
}

func (p *typeParser) reference() (*Type, error) {
	p.next()

	t := &Type{Kind: KindReference}
	if p.peek().Kind == meta.TokenLifetime {
		t.Lifetime = p.next().Text
	}

	if p.peek().Is("mut") {
		p.next()

		t.Mutable = true
	}

	elem, err := p.typ()
	if err != nil {
		return nil, err
	}

	t.Elem = elem

	return t, nil
}

func (p *typeParser) pointer() (*Type, error) {
	p.next()

	t := &Type{Kind: KindPtr}

	switch tok := p.next(); {
	case tok.Is("mut"):
		t.Mutable = true
	case tok.Is("const"):
	default:
		return nil, p.unexpected(tok, "`const` or `mut`")
	}

	elem, err := p.typ()
	if err != nil {
		return nil, err
	}

	t.Elem = elem

	return t, nil
}

func (p *typeParser) tuple() (*Type, error) {
	p.next()

	if p.peek().Is(")") {
		p.next()

		return &Type{Kind: KindTuple}, nil
	}

	first, err := p.typ()
	if err != nil {
		return nil, err
	}

	if p.peek().Is(")") {
		p.next()

		return &Type{Kind: KindParen, Elem: first}, nil
	}

	t := &Type{Kind: KindTuple, Elems: []*Type{first}}

	for {
		if err := p.expect(","); err != nil {
			return nil, err
		}

		if p.peek().Is(")") {
			p.next()

			return t, nil
		}

		elem, err := p.typ()
		if err != nil {
			return nil, err
		}

		t.Elems = append(t.Elems, elem)

		if p.peek().Is(")") {
			p.next()

			return t, nil
		}
	}
}

func (p *typeParser) array() (*Type, error) {
	p.next()

	elem, err := p.typ()
	if err != nil {
		return nil, err
	}

	if !p.peek().Is(";") {
		if err := p.expect("]"); err != nil {
			return nil, err
		}

		return &Type{Kind: KindSlice, Elem: elem}, nil
	}

	p.next()

	start := p.peek()

	end, err := p.skipUntil("]")
	if err != nil {
		return nil, err
	}

	if end.Start == start.Start {
		return nil, p.unexpected(end, "array length")
	}

	if err := p.expect("]"); err != nil {
		return nil, err
	}

	return &Type{Kind: KindArray, Elem: elem, Len: strings.TrimSpace(p.src[start.Start:end.Start])}, nil
}

func (p *typeParser) path() (*Type, error) {
	t := &Type{Kind: KindPath}

	if p.peek().Is("::") {
		p.next()

		t.Leading = true
	}

	for {
		tok := p.next()
		if tok.Kind != meta.TokenIdent {
			return nil, p.unexpected(tok, "identifier")
		}

		seg := Segment{Ident: tok.Value}

		// turbofish: Vec::<T>
		if p.peek().Is("::") && p.peekAt(1).Is("<") {
			p.next()
		}

		switch {
		case p.peek().Is("<"):
			args, err := p.angleArgs()
			if err != nil {
				return nil, err
			}

			seg.Args = args
		case p.peek().Is("("):
			if err := p.parenArgs(&seg); err != nil {
				return nil, err
			}
		}

		t.Segments = append(t.Segments, seg)

		if !p.peek().Is("::") {
			return t, nil
		}

		p.next()
	}
}

func (p *typeParser) angleArgs() ([]GenericArg, error) {
	p.next()

	args := []GenericArg{}

	for !p.peek().Is(">") {
		arg, err := p.genericArg()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)

		if sep := p.peek(); sep.Is(",") {
			p.next()
		} else if !sep.Is(">") {
			return nil, p.unexpected(sep, "`,` or `>`")
		}
	}

	p.next()

	return args, nil
}

func (p *typeParser) genericArg() (GenericArg, error) {
	tok := p.peek()

	switch {
	case tok.Kind == meta.TokenLifetime:
		p.next()

		return GenericArg{Lifetime: tok.Text}, nil
	case tok.Kind == meta.TokenIdent && p.peekAt(1).Is("="):
		p.next()
		p.next()

		t, err := p.typ()
		if err != nil {
			return GenericArg{}, err
		}

		return GenericArg{Name: tok.Value, Type: t}, nil
	case tok.IsLiteral() || tok.Is("{") || tok.Is("-"):
		end, err := p.skipUntil(",", ">")
		if err != nil {
			return GenericArg{}, err
		}

		return GenericArg{Const: strings.TrimSpace(p.src[tok.Start:end.Start])}, nil
	default:
		t, err := p.typ()
		if err != nil {
			return GenericArg{}, err
		}

		return GenericArg{Type: t}, nil
	}
}

func (p *typeParser) parenArgs(seg *Segment) error {
	p.next()

	seg.Parenthesized = true
	seg.Args = []GenericArg{}

	for !p.peek().Is(")") {
		t, err := p.typ()
		if err != nil {
			return err
		}

		seg.Args = append(seg.Args, GenericArg{Type: t})

		if sep := p.peek(); sep.Is(",") {
			p.next()
		} else if !sep.Is(")") {
			return p.unexpected(sep, "`,` or `)`")
		}
	}

	p.next()

	if p.peek().Is("->") {
		p.next()

		out, err := p.typ()
		if err != nil {
			return err
		}

		seg.Output = out
	}

	return nil
}

// verbatim captures a type the generator never looks inside.
func (p *typeParser) verbatim() (*Type, error) {
	start := p.peek()

	end, err := p.skipUntil(",", ">", ")", "]", ";", "=")
	if err != nil {
		return nil, err
	}

	if end.Start == start.Start {
		return nil, p.unexpected(end, "type")
	}

	return &Type{Kind: KindVerbatim, Text: strings.TrimSpace(p.src[start.Start:end.Start])}, nil
}

// skipUntil advances to the first stop token at nesting depth zero, or to
// the end of input, and returns it without consuming it.
func (p *typeParser) skipUntil(stops ...string) (meta.Token, error) {
	var stack []string

	for {
		tok := p.peek()
		if tok.Kind == meta.TokenEOF {
			return tok, nil
		}

		if len(stack) == 0 {
			for _, s := range stops {
				if tok.Is(s) {
					return tok, nil
				}
			}
		}

		switch {
		case tok.Is("("):
			stack = append(stack, ")")
		case tok.Is("["):
			stack = append(stack, "]")
		case tok.Is("{"):
			stack = append(stack, "}")
		case tok.Is("<"):
			stack = append(stack, ">")
		case tok.Is(")") || tok.Is("]") || tok.Is("}") || tok.Is(">"):
			if len(stack) == 0 || stack[len(stack)-1] != tok.Text {
				return meta.Token{}, p.unexpected(tok, "balanced delimiters")
			}

			stack = stack[:len(stack)-1]
		}

		p.next()
	}
}
