package meta

import (
	"strings"

	"accessor-generator/internal/diagnostic"
)

// Attribute is one `#[...]` annotation. Only its path is parsed eagerly;
// the body is parsed on demand because non-configuration attributes may
// hold arbitrary tokens.
type Attribute struct {
	// Inner is set for `#![...]`.
	Inner bool
	Path  Path
	// Raw is the attribute exactly as written, shell included.
	Raw  string
	Span diagnostic.Span

	body     string
	bodySpan diagnostic.Span
}

// ParseAttribute parses the `#[path ...]` shell of an attribute.
func ParseAttribute(text string, span diagnostic.Span) (Attribute, error) {
	toks, err := Lex(text, span)
	if err != nil {
		return Attribute{}, err
	}

	p := &parser{toks: toks}
	attr := Attribute{Raw: strings.TrimSpace(text), Span: p.peek().Span}

	if tok := p.next(); !tok.Is("#") {
		return Attribute{}, p.unexpected(tok, "`#`")
	}

	if p.peek().Is("!") {
		attr.Inner = true

		p.next()
	}

	if tok := p.next(); !tok.Is("[") {
		return Attribute{}, p.unexpected(tok, "`[`")
	}

	bodyStart := p.peek()

	attr.Path, err = p.path()
	if err != nil {
		return Attribute{}, err
	}

	closing, err := p.skipBalanced("]")
	if err != nil {
		return Attribute{}, err
	}

	if tok := p.peek(); tok.Kind != TokenEOF {
		return Attribute{}, p.unexpected(tok, "end of attribute")
	}

	attr.body = text[bodyStart.Start:closing.Start]
	attr.bodySpan = bodyStart.Span

	return attr, nil
}

// MustParseAttribute is ParseAttribute for fixed attribute text; it panics
// on error.
func MustParseAttribute(text string) Attribute {
	attr, err := ParseAttribute(text, diagnostic.Span{})
	if err != nil {
		panic(err)
	}

	return attr
}

// Is reports whether the attribute path is the one word name.
func (a Attribute) Is(name string) bool {
	return a.Path.IsIdent(name)
}

// Meta parses the attribute body as a meta item.
func (a Attribute) Meta() (*Meta, error) {
	return ParseMeta(a.body, a.bodySpan)
}

func (a Attribute) String() string {
	return a.Raw
}

// skipBalanced consumes tokens up to and including the closing delimiter
// at depth zero and returns it.
func (p *parser) skipBalanced(closing string) (Token, error) {
	var stack []string

	for {
		tok := p.next()

		switch {
		case tok.Kind == TokenEOF:
			return Token{}, p.unexpected(tok, "`"+closing+"`")
		case tok.Is("(") || tok.Is("[") || tok.Is("{"):
			stack = append(stack, closingOf(tok.Text))
		case tok.Is(")") || tok.Is("]") || tok.Is("}"):
			if len(stack) == 0 {
				if tok.Text == closing {
					return tok, nil
				}

				return Token{}, p.unexpected(tok, "`"+closing+"`")
			}

			if want := stack[len(stack)-1]; tok.Text != want {
				return Token{}, p.unexpected(tok, "`"+want+"`")
			}

			stack = stack[:len(stack)-1]
		}
	}
}

func closingOf(open string) string {
	switch open {
	case "(":
		return ")"
	case "[":
		return "]"
	default:
		return "}"
	}
}
