package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessor-generator/internal/diagnostic"
)

func TestParseMeta(t *testing.T) {
	m, err := ParseMeta(`shorthand(enable(get, set), rename("prefix_{}"), verify(fn = "Self::check"), visibility(inherit), 1)`, diagnostic.Span{})
	require.NoError(t, err)

	assert.Equal(t, MetaList, m.Kind)
	assert.True(t, m.Path.IsIdent("shorthand"))
	require.Len(t, m.Nested, 5)

	enable := m.Nested[0].Meta
	require.NotNil(t, enable)
	assert.Equal(t, MetaList, enable.Kind)
	assert.Equal(t, "enable", enable.Path.String())
	require.Len(t, enable.Nested, 2)
	assert.Equal(t, MetaPath, enable.Nested[1].Meta.Kind)
	assert.Equal(t, "set", enable.Nested[1].Meta.Path.Ident())

	rename := m.Nested[1].Meta
	require.Len(t, rename.Nested, 1)
	require.True(t, rename.Nested[0].IsLit())
	assert.Equal(t, LitStr, rename.Nested[0].Lit.Kind)
	assert.Equal(t, "prefix_{}", rename.Nested[0].Lit.Value)

	verify := m.Nested[2].Meta.Nested[0].Meta
	assert.Equal(t, MetaNameValue, verify.Kind)
	assert.Equal(t, "fn", verify.Path.Ident())
	assert.Equal(t, "Self::check", verify.Lit.Value)

	lit := m.Nested[4]
	require.True(t, lit.IsLit())
	assert.Equal(t, LitInt, lit.Lit.Kind)
}

func TestParseMetaLiteralKinds(t *testing.T) {
	m, err := ParseMeta(`x("s", b"b", 'c', b'd', 1, 1.5, true, 1foo)`, diagnostic.Span{})
	require.NoError(t, err)

	var got []LitKind
	for _, n := range m.Nested {
		require.True(t, n.IsLit())
		got = append(got, n.Lit.Kind)
	}

	assert.Equal(t, []LitKind{LitStr, LitByteStr, LitChar, LitByte, LitInt, LitFloat, LitBool, LitVerbatim}, got)
	assert.True(t, m.Nested[6].Lit.Bool())
}

func TestParseMetaShapes(t *testing.T) {
	path, err := ParseMeta(`::std::inline`, diagnostic.Span{})
	require.NoError(t, err)
	assert.Equal(t, MetaPath, path.Kind)
	assert.Equal(t, "::std::inline", path.Path.String())
	assert.Empty(t, path.Path.Ident())

	nv, err := ParseMeta(`doc = " text"`, diagnostic.Span{})
	require.NoError(t, err)
	assert.Equal(t, MetaNameValue, nv.Kind)
	assert.Equal(t, " text", nv.Lit.Value)

	empty, err := ParseMeta(`forward()`, diagnostic.Span{})
	require.NoError(t, err)
	assert.Equal(t, MetaList, empty.Kind)
	assert.Empty(t, empty.Nested)

	trailing, err := ParseMeta(`enable(get,)`, diagnostic.Span{})
	require.NoError(t, err)
	assert.Len(t, trailing.Nested, 1)
}

func TestParseMetaErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{`enable(get set)`, "expected `,` or `)`, found `set`"},
		{`doc = ident`, "expected literal, found `ident`"},
		{`x(-1)`, "expected meta item or literal, found `-`"},
		{`x(a) y`, "expected end of input, found `y`"},
		{`x(`, "expected meta item or literal, found end of input"},
		{`a::`, "expected identifier, found end of input"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseMeta(tt.input, diagnostic.Span{})
			require.Error(t, err)

			var e *diagnostic.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.message, e.Text())
		})
	}
}

func TestParseAttribute(t *testing.T) {
	span := diagnostic.Span{File: "r.yaml", Line: 7, Column: 11}

	attr, err := ParseAttribute(`#[shorthand(enable(get))]`, span)
	require.NoError(t, err)
	assert.True(t, attr.Is("shorthand"))
	assert.False(t, attr.Inner)
	assert.Equal(t, span, attr.Span)
	assert.Equal(t, `#[shorthand(enable(get))]`, attr.String())

	m, err := attr.Meta()
	require.NoError(t, err)
	assert.Equal(t, MetaList, m.Kind)
	assert.Equal(t, diagnostic.Span{File: "r.yaml", Line: 7, Column: 13}, m.Span)
	assert.Equal(t, diagnostic.Span{File: "r.yaml", Line: 7, Column: 30}, m.Nested[0].Meta.Nested[0].Span())
}

func TestParseAttributeOpaqueBody(t *testing.T) {
	attr, err := ParseAttribute(`#[cfg_attr(feature = "x", doc = concat!("a", "b"))]`, diagnostic.Span{})
	require.NoError(t, err)
	assert.Equal(t, "cfg_attr", attr.Path.String())

	_, err = attr.Meta()
	require.Error(t, err)

	inner, err := ParseAttribute(`#![allow(dead_code)]`, diagnostic.Span{})
	require.NoError(t, err)
	assert.True(t, inner.Inner)
	assert.True(t, inner.Is("allow"))

	tool := MustParseAttribute(`#[rustfmt::skip]`)
	assert.Equal(t, []string{"rustfmt", "skip"}, tool.Path.Segments)
}

func TestParseAttributeErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{`shorthand`, "expected `#`, found `shorthand`"},
		{`#shorthand`, "expected `[`, found `shorthand`"},
		{`#[]`, "expected identifier, found `]`"},
		{`#[a(b]`, "expected `)`, found `]`"},
		{`#[a(b)`, "expected `]`, found end of input"},
		{`#[a] b`, "expected end of attribute, found `b`"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseAttribute(tt.input, diagnostic.Span{})
			require.Error(t, err)

			var e *diagnostic.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.message, e.Text())
		})
	}
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "NameValue", MetaNameValue.String())
	assert.Equal(t, "byte string", LitByteStr.String())
	assert.Equal(t, "identifier", TokenIdent.String())
}
