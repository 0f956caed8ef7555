package config

import (
	"strings"
	"unicode"

	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/meta"
)

// Marker is replaced by the field identifier in a rename template.
const Marker = "{}"

// RawPrefix marks a raw identifier such as `r#type`.
const RawPrefix = "r#"

const renameWord = "rename"

// reservedIdents are the strict and reserved keywords of the 2018 edition,
// which cannot name a function.
var reservedIdents = map[string]bool{
	"_": true, "abstract": true, "as": true, "async": true, "await": true, "become": true,
	"box": true, "break": true, "const": true, "continue": true, "crate": true, "do": true,
	"dyn": true, "else": true, "enum": true, "extern": true, "false": true, "final": true,
	"fn": true, "for": true, "if": true, "impl": true, "in": true, "let": true, "loop": true,
	"macro": true, "match": true, "mod": true, "move": true, "mut": true, "override": true,
	"priv": true, "pub": true, "ref": true, "return": true, "Self": true, "self": true,
	"static": true, "struct": true, "super": true, "trait": true, "true": true, "try": true,
	"type": true, "typeof": true, "unsafe": true, "unsized": true, "use": true,
	"virtual": true, "where": true, "while": true, "yield": true,
}

// pathKeywords cannot be written as raw identifiers.
var pathKeywords = map[string]bool{"_": true, "crate": true, "self": true, "Self": true, "super": true}

// Unraw strips the raw prefix from ident.
func Unraw(ident string) string {
	return strings.TrimPrefix(ident, RawPrefix)
}

// CanBeRaw reports whether name may be written as `r#name`.
func CanBeRaw(name string) bool {
	return !pathKeywords[name]
}

// IsReserved reports whether ident is a keyword.
func IsReserved(ident string) bool {
	return reservedIdents[ident]
}

// Format is a validated rename template such as `get_{}`.
type Format struct {
	template string
	span     diagnostic.Span
}

// NewFormat validates template. Every character must be legal in an
// identifier at its position, `{` and `}` only as the marker pair, and the
// marker must occur exactly once. Each invalid character is reported.
func NewFormat(template string, span diagnostic.Span) (Format, error) {
	var diag diagnostic.Diagnostics

	runes := []rune(template)
	for i, c := range runes {
		if !validTemplateChar(runes, i) {
			diag.Add(diagnostic.InvalidTemplateChar(c, i+1).WithSpan(span))
		}
	}

	switch n := strings.Count(template, Marker); {
	case n == 0:
		diag.Add(diagnostic.InvalidTemplate(template, diagnostic.TemplateMissingMarker).WithSpan(span))
	case n > 1:
		diag.Add(diagnostic.InvalidTemplate(template, diagnostic.TemplateTooManyMarkers).WithSpan(span))
	}

	if err := diag.Err(); err != nil {
		return Format{}, err
	}

	return Format{template: template, span: span}, nil
}

// MustFormat is NewFormat for fixed templates; it panics on error.
func MustFormat(template string) Format {
	f, err := NewFormat(template, diagnostic.Span{})
	if err != nil {
		panic(err)
	}

	return f
}

func validTemplateChar(runes []rune, i int) bool {
	c := runes[i]

	switch {
	case c == '{' && i+1 < len(runes) && runes[i+1] == '}':
		return true
	case c == '}' && i > 0 && runes[i-1] == '{':
		return true
	case i == 0 && c == '_':
		return len(runes) > 1
	case i == 0:
		return c < unicode.MaxASCII && unicode.IsLetter(c)
	default:
		return c < unicode.MaxASCII && (unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_')
	}
}

// Apply substitutes ident, without its raw prefix, for the marker. A
// keyword result is only accepted for a raw ident, and stays raw.
func (f Format) Apply(ident string) (string, error) {
	name := Unraw(ident)

	out := strings.Replace(f.template, Marker, name, 1)
	if !IsReserved(out) {
		return out, nil
	}

	if name != ident && CanBeRaw(out) {
		return RawPrefix + out, nil
	}

	return "", diagnostic.ReservedIdent(out).WithSpan(f.span)
}

// Map derives a new template from f, e.g. `set_` + f.
func (f Format) Map(fn func(string) string) Format {
	return Format{template: fn(f.template), span: f.span}
}

func (f Format) String() string {
	return f.template
}

// MarshalText lets snapshots serialize templates as plain strings.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.template), nil
}

// Rename holds the four naming templates.
type Rename struct {
	Get    Format `json:"get" yaml:"get" msgpack:"get"`
	Set    Format `json:"set" yaml:"set" msgpack:"set"`
	TrySet Format `json:"try_set" yaml:"try_set" msgpack:"try_set"`
	GetMut Format `json:"get_mut" yaml:"get_mut" msgpack:"get_mut"`
}

// DefaultRename returns `{}`, `set_{}`, `try_{}` and `{}_mut`.
func DefaultRename() Rename {
	return FromFormat(MustFormat(Marker))
}

// FromFormat derives all four templates from the getter template.
func FromFormat(f Format) Rename {
	return Rename{
		Get:    f,
		Set:    f.Map(func(s string) string { return "set_" + s }),
		TrySet: f.Map(func(s string) string { return "try_" + s }),
		GetMut: f.Map(func(s string) string { return s + "_mut" }),
	}
}

var renameKeys = []string{"format", "get", "set", "try_set", "get_mut"}

// Merge applies a `rename(...)` item to r. A positional string sets all
// four templates; `key = "template"` pairs set one (`format` sets all).
func (r Rename) Merge(m *meta.Meta) (Rename, error) {
	if m.Kind != meta.MetaList {
		return r, diagnostic.UnexpectedShape(m.Kind.String(), meta.MetaList.String()).WithSpan(m.Span).At(renameWord)
	}

	var diag diagnostic.Diagnostics

	out := r

	for _, item := range m.Nested {
		if item.IsLit() {
			f, err := formatFromLit(*item.Lit)
			if err != nil {
				diag.Add(diagnostic.Wrap(err).At(renameWord))

				continue
			}

			out = FromFormat(f)

			continue
		}

		inner := item.Meta
		if inner.Kind != meta.MetaNameValue {
			diag.Add(diagnostic.UnexpectedShape(inner.Kind.String(), meta.MetaNameValue.String()).WithSpan(inner.Span).At(renameWord))

			continue
		}

		name := inner.Path.String()

		f, err := formatFromLit(inner.Lit)
		if err != nil {
			diag.Add(diagnostic.Wrap(err).At(name).At(renameWord))

			continue
		}

		switch name {
		case "format":
			out = FromFormat(f)
		case "get":
			out.Get = f
		case "set":
			out.Set = f
		case "try_set":
			out.TrySet = f
		case "get_mut":
			out.GetMut = f
		default:
			diag.Add(diagnostic.UnknownKey(name, renameKeys).WithSpan(inner.Span).At(renameWord))
		}
	}

	if err := diag.Err(); err != nil {
		return r, err
	}

	return out, nil
}

func formatFromLit(lit meta.Lit) (Format, error) {
	if lit.Kind != meta.LitStr {
		return Format{}, diagnostic.UnexpectedLit(lit.Kind.String(), meta.LitStr.String()).WithSpan(lit.Span)
	}

	return NewFormat(lit.Value, lit.Span)
}
