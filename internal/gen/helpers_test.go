package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"accessor-generator/internal/meta"
	"accessor-generator/internal/plan"
	"accessor-generator/internal/shape"
)

type fieldSpec struct {
	name  string
	typ   string
	attrs []string
}

func attrs(texts ...string) []meta.Attribute {
	out := make([]meta.Attribute, len(texts))
	for i, text := range texts {
		out[i] = meta.MustParseAttribute(text)
	}

	return out
}

func newRecord(t *testing.T, generics string, recordAttrs []string, fields ...fieldSpec) *plan.Record {
	t.Helper()

	g, err := shape.ParseGenerics(generics, "")
	require.NoError(t, err)

	r := &plan.Record{
		Ident:      "Example",
		Visibility: "pub(crate)",
		Generics:   g,
		Attrs:      attrs(recordAttrs...),
	}

	for _, f := range fields {
		r.Fields = append(r.Fields, plan.Field{
			Ident: f.name,
			Type:  shape.MustParse(f.typ),
			Attrs: attrs(f.attrs...),
		})
	}

	return r
}

func expand(t *testing.T, r *plan.Record) *Impl {
	t.Helper()

	impl, err := NewGenerator(DefaultGeneratorConfig(), nil).Expand(r)
	require.NoError(t, err)

	return impl
}

// single expands a record holding one field and returns its functions.
func single(t *testing.T, typ string, fieldAttrs ...string) []Function {
	t.Helper()

	return expand(t, newRecord(t, "", nil, fieldSpec{name: "value", typ: typ, attrs: fieldAttrs})).Functions
}

func byKind(fns []Function, kind FunctionKind) (Function, bool) {
	for _, f := range fns {
		if f.Kind == kind {
			return f, true
		}
	}

	return Function{}, false
}
