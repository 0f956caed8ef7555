package config

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/meta"
)

const (
	enableWord  = "enable"
	disableWord = "disable"
	forwardWord = "forward"
)

type setting struct {
	value bool
	word  string
	span  diagnostic.Span
}

// Builder collects the enable and disable fragments of one record or one
// field. A key may be set once per target; Apply then merges the settings
// onto the values inherited from the enclosing level.
type Builder struct {
	settings *linkedhashmap.Map // Key -> setting, in source order
	diag     diagnostic.Diagnostics
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{settings: linkedhashmap.New()}
}

// Push records an `enable(...)` or `disable(...)` item. Nested
// `forward(...)` items are left to ParseForward.
func (b *Builder) Push(m *meta.Meta) {
	word := m.Path.Ident()
	state := word == enableWord

	if m.Kind != meta.MetaList {
		b.diag.Add(diagnostic.UnexpectedShape(m.Kind.String(), meta.MetaList.String()).WithSpan(m.Span).At(word))

		return
	}

	for _, item := range m.Nested {
		if item.IsLit() {
			b.diag.Add(diagnostic.UnexpectedLit(item.Lit.Kind.String()).WithSpan(item.Lit.Span).At(word))

			continue
		}

		inner := item.Meta
		if inner.Path.IsIdent(forwardWord) {
			continue
		}

		name := inner.Path.String()

		if inner.Kind != meta.MetaPath {
			b.diag.Add(diagnostic.UnexpectedShape(inner.Kind.String(), meta.MetaPath.String()).WithSpan(inner.Span).At(word))

			continue
		}

		key, ok := ParseKey(name)
		if !ok {
			b.diag.Add(diagnostic.UnknownKey(name, KeyNames()).WithSpan(inner.Span).At(word))

			continue
		}

		if key == KeyRename && state {
			b.diag.Add(diagnostic.Custom("unexpected field `rename`, it can only be disabled").WithSpan(inner.Span).At(word))

			continue
		}

		if _, seen := b.settings.Get(key); seen && !key.IsLegacyForward() {
			b.diag.Add(diagnostic.DuplicateKey(name).WithSpan(inner.Span).At(word))

			continue
		}

		b.settings.Put(key, setting{value: state, word: word, span: inner.Span})
	}
}

// Apply returns base with every recorded setting applied. A setting equal
// to the inherited value is reported as redundant. Any error from Push or
// from the merge is returned together with base unchanged, ordered by
// source position.
func (b *Builder) Apply(base Attributes) (Attributes, error) {
	var diag diagnostic.Diagnostics

	diag.Merge(b.diag)
	out := base

	it := b.settings.Iterator()
	for it.Next() {
		key := it.Key().(Key)
		s := it.Value().(setting)

		if base.Value(key) == s.value && !key.IsLegacyForward() {
			diag.Add(diagnostic.RedundantKey(key.String(), s.value).WithSpan(s.span).At(s.word))

			continue
		}

		out.Assign(key, s.value)
	}

	if diag.HasErrors() {
		diag.Sort()

		return base, diag.Err()
	}

	return out, nil
}
