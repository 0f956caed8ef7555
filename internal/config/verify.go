package config

import (
	"fmt"

	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/meta"
)

const (
	verifyWord = "verify"
	fnWord     = "fn"
)

// Verify names a function called with `&self` at the end of every setter.
type Verify struct {
	// Path is empty when no hook is configured.
	Path string `json:"path,omitempty" yaml:"path,omitempty" msgpack:"path,omitempty"`
}

// IsSet reports whether a hook is configured.
func (v Verify) IsSet() bool {
	return v.Path != ""
}

// Call renders the hook invocation statement.
func (v Verify) Call() string {
	if !v.IsSet() {
		return ""
	}

	return fmt.Sprintf("%s(&self);", v.Path)
}

// ParseVerify parses a `verify(fn = "path")` item.
func ParseVerify(m *meta.Meta) (Verify, error) {
	item, err := singleItem(m, verifyWord, diagnostic.MissingField(fnWord))
	if err != nil {
		return Verify{}, err
	}

	if item.IsLit() {
		return Verify{}, diagnostic.UnexpectedLit(item.Lit.Kind.String()).WithSpan(item.Lit.Span).At(verifyWord)
	}

	inner := item.Meta
	if inner.Kind != meta.MetaNameValue {
		return Verify{}, diagnostic.UnexpectedShape(inner.Kind.String(), meta.MetaNameValue.String()).WithSpan(inner.Span).At(verifyWord)
	}

	if name := inner.Path.String(); name != fnWord {
		return Verify{}, diagnostic.UnknownKey(name, []string{fnWord}).WithSpan(inner.Span).At(verifyWord)
	}

	if inner.Lit.Kind != meta.LitStr {
		return Verify{}, diagnostic.UnexpectedLit(inner.Lit.Kind.String(), meta.LitStr.String()).WithSpan(inner.Lit.Span).At(fnWord).At(verifyWord)
	}

	toks, err := meta.Lex(inner.Lit.Value, inner.Lit.Span)
	if err != nil {
		return Verify{}, diagnostic.Wrap(err).At(verifyWord)
	}

	path, ok := modPath(toks[:len(toks)-1])
	if !ok {
		return Verify{}, diagnostic.Custom("`%s` is not a valid function path", inner.Lit.Value).WithSpan(inner.Lit.Span).At(fnWord).At(verifyWord)
	}

	return Verify{Path: path}, nil
}
