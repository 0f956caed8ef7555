package config

import (
	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/meta"
)

// singleItem returns the only item of the list m. The empty error is
// reported at the list when it holds nothing.
func singleItem(m *meta.Meta, word string, empty *diagnostic.Error) (meta.NestedMeta, error) {
	if m.Kind != meta.MetaList {
		return meta.NestedMeta{}, diagnostic.UnexpectedShape(m.Kind.String(), meta.MetaList.String()).WithSpan(m.Span).At(word)
	}

	switch len(m.Nested) {
	case 0:
		return meta.NestedMeta{}, empty.WithSpan(m.Span).At(word)
	case 1:
		return m.Nested[0], nil
	default:
		return meta.NestedMeta{}, diagnostic.Custom("too many items, expected 1").WithSpan(m.Nested[1].Span()).At(word)
	}
}
