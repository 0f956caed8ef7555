package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessor-generator/internal/diagnostic"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		input    string
		kind     Kind
		expected string
	}{
		{"usize", KindPath, "usize"},
		{"String", KindPath, "String"},
		{"std::string::String", KindPath, "std::string::String"},
		{"::std::vec::Vec<u8>", KindPath, "::std::vec::Vec<u8>"},
		{"Vec<Vec<u8>>", KindPath, "Vec<Vec<u8>>"},
		{"HashMap<String,  Vec<i32>>", KindPath, "HashMap<String, Vec<i32>>"},
		{"Option<&'a str>", KindPath, "Option<&'a str>"},
		{"&'a mut T", KindReference, "&'a mut T"},
		{"&T", KindReference, "&T"},
		{"&&T", KindReference, "&&T"},
		{"*const u8", KindPtr, "*const u8"},
		{"*mut u8", KindPtr, "*mut u8"},
		{"()", KindTuple, "()"},
		{"(u8,)", KindTuple, "(u8,)"},
		{"(u8, String)", KindTuple, "(u8, String)"},
		{"(u8)", KindParen, "(u8)"},
		{"[u8; 4]", KindArray, "[u8; 4]"},
		{"[u8; N * 2]", KindArray, "[u8; N * 2]"},
		{"[T]", KindSlice, "[T]"},
		{"!", KindNever, "!"},
		{"_", KindInfer, "_"},
		{"PhantomData<fn() -> T>", KindPath, "PhantomData<fn() -> T>"},
		{"Box<dyn Fn(u8) -> u8 + Send>", KindPath, "Box<dyn Fn(u8) -> u8 + Send>"},
		{"Box<dyn Iterator<Item = u8>>", KindPath, "Box<dyn Iterator<Item = u8>>"},
		{"impl Iterator<Item = u8>", KindVerbatim, "impl Iterator<Item = u8>"},
		{"<T as Trait>::Output", KindVerbatim, "<T as Trait>::Output"},
		{"Vec::<u8>", KindPath, "Vec<u8>"},
		{"Cow<'static, str>", KindPath, "Cow<'static, str>"},
		{"ArrayVec<u8, 16>", KindPath, "ArrayVec<u8, 16>"},
		{"Foo<{ N + 1 }>", KindPath, "Foo<{ N + 1 }>"},
		{"Iter<Item = T>", KindPath, "Iter<Item = T>"},
		{"Fn(u8, u16) -> bool", KindPath, "Fn(u8, u16) -> bool"},
		{"r#type", KindPath, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			typ, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, typ.Kind)
			assert.Equal(t, tt.expected, typ.String())
		})
	}
}

func TestParseStructure(t *testing.T) {
	typ := MustParse("std::collections::HashMap<K, Vec<V>>")

	require.Len(t, typ.Segments, 3)
	assert.Equal(t, "std::collections::HashMap", typ.PathString())
	assert.True(t, typ.IsIdent("HashMap"))

	args := typ.TypeArgs()
	require.Len(t, args, 2)
	assert.Equal(t, "K", args[0].String())
	assert.Equal(t, "Vec<V>", args[1].String())

	ref := MustParse("&'a mut Option<T>")
	assert.Equal(t, "'a", ref.Lifetime)
	assert.True(t, ref.Mutable)
	assert.True(t, ref.Elem.IsIdent("Option"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"", "expected type, found end of input"},
		{"Vec<u8", "expected `,` or `>`, found end of input"},
		{"(u8 u16)", "expected `,`, found `u16`"},
		{"*u8", "expected `const` or `mut`, found `u8`"},
		{"[u8; ]", "expected array length, found `]`"},
		{"[u8; 4", "expected `]`, found end of input"},
		{"u8 u16", "expected end of type, found `u16`"},
		{"a::", "expected identifier, found end of input"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var e *diagnostic.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.message, e.Text())
		})
	}
}

func TestParseAtCarriesSpan(t *testing.T) {
	_, err := ParseAt("Vec<u8 u16>", diagnostic.Span{File: "r.yaml", Line: 3, Column: 13})
	require.Error(t, err)

	var e *diagnostic.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, diagnostic.Span{File: "r.yaml", Line: 3, Column: 20}, e.Span)
}

func TestClone(t *testing.T) {
	orig := MustParse("HashMap<K, (u8, [V; 2])>")
	clone := orig.Clone()

	clone.Segments[0].Args[0].Type.Segments[0].Ident = "Changed"
	clone.Segments[0].Args[1].Type.Elems[1].Len = "9"

	assert.Equal(t, "HashMap<K, (u8, [V; 2])>", orig.String())
	assert.Equal(t, "HashMap<Changed, (u8, [V; 9])>", clone.String())
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, "Option<&T>", Generic("Option", Ref(Path("T"), false)).String())
	assert.Equal(t, "std::option::Option<&String>",
		MustParse("std::option::Option<String>").WithLastArgs(Ref(Path("String"), false)).String())
	assert.Equal(t, "&mut u8", Ref(Path("u8"), true).String())
}
