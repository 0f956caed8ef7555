package config

import (
	"strings"

	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/meta"
)

const (
	visibilityWord = "visibility"
	inheritWord    = "inherit"
)

// VisibilityAlternatives are the accepted visibility spellings.
var VisibilityAlternatives = []string{
	"pub",
	"pub(crate)",
	"pub(self)",
	"pub(super)",
	"pub(in ::path::to::mod)",
	inheritWord,
}

// Visibility is either a concrete visibility or the record's own.
type Visibility struct {
	Inherit bool `json:"inherit,omitempty" yaml:"inherit,omitempty" msgpack:"inherit,omitempty"`
	// Level is the canonical spelling, "" for private.
	Level string `json:"level,omitempty" yaml:"level,omitempty" msgpack:"level,omitempty"`
}

// DefaultVisibility is `pub`.
func DefaultVisibility() Visibility {
	return Visibility{Level: "pub"}
}

// Resolve returns the visibility to emit, given the record's own.
func (v Visibility) Resolve(record string) string {
	if v.Inherit {
		return record
	}

	return v.Level
}

func (v Visibility) String() string {
	if v.Inherit {
		return inheritWord
	}

	return v.Level
}

// ParseVisibility parses a `visibility(...)` item holding exactly one
// string literal or the word `inherit`.
func ParseVisibility(m *meta.Meta) (Visibility, error) {
	item, err := singleItem(m, visibilityWord, diagnostic.Custom("too few items, expected 1"))
	if err != nil {
		return Visibility{}, err
	}

	switch {
	case item.IsLit() && item.Lit.Kind == meta.LitStr:
		level, ok := CanonicalVisibility(item.Lit.Value)
		if !ok {
			return Visibility{}, diagnostic.UnknownKey(item.Lit.Value, VisibilityAlternatives).WithSpan(item.Lit.Span).At(visibilityWord)
		}

		return Visibility{Level: level}, nil
	case item.IsLit():
		return Visibility{}, diagnostic.UnexpectedLit(item.Lit.Kind.String(), meta.LitStr.String()).WithSpan(item.Lit.Span).At(visibilityWord)
	case item.Meta.Kind == meta.MetaPath && item.Meta.Path.IsIdent(inheritWord):
		return Visibility{Inherit: true}, nil
	default:
		return Visibility{}, diagnostic.UnexpectedShape(item.Meta.Path.String(), "string literal", inheritWord).
			WithSpan(item.Meta.Span).At(visibilityWord)
	}
}

// CanonicalVisibility normalizes a visibility spelling such as
// `pub( crate )` to `pub(crate)`. The empty string is private.
func CanonicalVisibility(text string) (string, bool) {
	toks, err := meta.Lex(text, diagnostic.Span{})
	if err != nil {
		return "", false
	}

	if toks[0].Kind == meta.TokenEOF {
		return "", true
	}

	if !toks[0].Is("pub") {
		return "", false
	}

	if toks[1].Kind == meta.TokenEOF {
		return "pub", true
	}

	if !toks[1].Is("(") || len(toks) < 4 {
		return "", false
	}

	inner := toks[2 : len(toks)-2]
	if !toks[len(toks)-2].Is(")") || len(inner) == 0 {
		return "", false
	}

	if len(inner) == 1 {
		switch inner[0].Text {
		case "crate", "self", "super":
			return "pub(" + inner[0].Text + ")", true
		default:
			return "", false
		}
	}

	if !inner[0].Is("in") {
		return "", false
	}

	path, ok := modPath(inner[1:])
	if !ok {
		return "", false
	}

	return "pub(in " + path + ")", true
}

// modPath renders tokens forming `a::b::c` (optionally with a leading
// `::`) and reports whether they form such a path.
func modPath(toks []meta.Token) (string, bool) {
	var b strings.Builder

	expectIdent := true

	for i, t := range toks {
		switch {
		case i == 0 && t.Is("::"):
			b.WriteString("::")
		case expectIdent && t.Kind == meta.TokenIdent:
			b.WriteString(t.Text)

			expectIdent = false
		case !expectIdent && t.Is("::"):
			b.WriteString("::")

			expectIdent = true
		default:
			return "", false
		}
	}

	if expectIdent {
		return "", false
	}

	return b.String(), true
}
