package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessor-generator/internal/shape"
)

func TestGetter(t *testing.T) {
	tests := []struct {
		name       string
		typ        string
		attrs      []string
		body       Body
		returns    string
		statement  string
		assertions []string
	}{
		{
			name:       "primitive copy",
			typ:        "u64",
			body:       BodyCopy,
			returns:    "u64",
			statement:  "self.value",
			assertions: []string{"struct _AssertCopy where u64: ::std::marker::Copy {}"},
		},
		{
			name:      "shared reference is copied without assertion",
			typ:       "&'static str",
			body:      BodyCopy,
			returns:   "&'static str",
			statement: "self.value",
		},
		{
			name:      "mutable reference is borrowed",
			typ:       "&'static mut u8",
			body:      BodyReference,
			returns:   "&&'static mut u8",
			statement: "&self.value",
		},
		{
			name:      "primitive copy disabled",
			typ:       "u64",
			attrs:     []string{`#[shorthand(disable(primitive_copy))]`},
			body:      BodyReference,
			returns:   "&u64",
			statement: "&self.value",
		},
		{
			name:       "copy",
			typ:        "Rgb",
			attrs:      []string{`#[shorthand(enable(copy))]`},
			body:       BodyCopy,
			returns:    "Rgb",
			statement:  "self.value",
			assertions: []string{"struct _AssertCopy where Rgb: ::std::marker::Copy {}"},
		},
		{
			name:      "option as ref",
			typ:       "Option<String>",
			body:      BodyAsRef,
			returns:   "Option<&String>",
			statement: "self.value.as_ref()",
		},
		{
			name:      "option as ref disabled",
			typ:       "Option<String>",
			attrs:     []string{`#[shorthand(disable(option_as_ref))]`},
			body:      BodyReference,
			returns:   "&Option<String>",
			statement: "&self.value",
		},
		{
			name:       "option as ref wins over clone",
			typ:        "Option<String>",
			attrs:      []string{`#[shorthand(enable(clone))]`},
			body:       BodyAsRef,
			returns:    "Option<&String>",
			statement:  "self.value.as_ref()",
			assertions: nil,
		},
		{
			name:       "clone",
			typ:        "String",
			attrs:      []string{`#[shorthand(enable(clone))]`},
			body:       BodyClone,
			returns:    "String",
			statement:  "self.value.clone()",
			assertions: []string{"struct _AssertClone where String: ::std::clone::Clone {}"},
		},
		{
			name:      "reference",
			typ:       "Vec<String>",
			body:      BodyReference,
			returns:   "&Vec<String>",
			statement: "&self.value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := byKind(single(t, tt.typ, tt.attrs...), KindGetter)
			require.True(t, ok)

			assert.Equal(t, "value", f.Name)
			assert.Equal(t, "&self", f.Receiver)
			assert.Equal(t, tt.body, f.Body)
			assert.Equal(t, tt.returns, f.Returns)
			assert.Equal(t, []string{tt.statement}, f.Statements)
			assert.Equal(t, tt.assertions, f.Assertions)
		})
	}
}

func TestGetterMarkers(t *testing.T) {
	f, ok := byKind(single(t, "String", `#[shorthand(enable(const_fn, must_use), disable(inline))]`), KindGetter)
	require.True(t, ok)

	assert.True(t, f.Const)
	assert.Equal(t, []string{attrMustUse}, f.Attrs)
	assert.Equal(t, "pub const fn value(&self) -> &String", f.Signature())

	s, ok := byKind(single(t, "String", `#[shorthand(enable(const_fn, must_use))]`), KindSetter)
	require.True(t, ok)
	assert.False(t, s.Const)
	assert.Equal(t, []string{attrInline}, s.Attrs)
}

func TestSetter(t *testing.T) {
	tests := []struct {
		name      string
		typ       string
		attrs     []string
		body      Body
		param     string
		bound     string
		statement string
	}{
		{
			name:      "plain",
			typ:       "String",
			body:      BodyAssign,
			param:     "String",
			statement: "self.value = value;",
		},
		{
			name:      "optional",
			typ:       "Option<String>",
			body:      BodyAssign,
			param:     "Option<String>",
			statement: "self.value = value;",
		},
		{
			name:      "strip option",
			typ:       "Option<String>",
			attrs:     []string{`#[shorthand(enable(strip_option))]`},
			body:      BodyWrapSome,
			param:     "String",
			statement: "self.value = Some(value);",
		},
		{
			name:      "into",
			typ:       "String",
			attrs:     []string{`#[shorthand(enable(into))]`},
			body:      BodyInto,
			param:     "VALUE",
			bound:     "::std::convert::Into<String>",
			statement: "self.value = value.into();",
		},
		{
			name:      "into optional",
			typ:       "Option<String>",
			attrs:     []string{`#[shorthand(enable(into))]`},
			body:      BodyIntoOption,
			param:     "::std::option::Option<VALUE>",
			bound:     "::std::convert::Into<String>",
			statement: "self.value = value.map(|v| v.into());",
		},
		{
			name:      "into strip option",
			typ:       "Option<String>",
			attrs:     []string{`#[shorthand(enable(into, strip_option))]`},
			body:      BodyIntoSome,
			param:     "VALUE",
			bound:     "::std::convert::Into<String>",
			statement: "self.value = Some(value.into());",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := byKind(single(t, tt.typ, tt.attrs...), KindSetter)
			require.True(t, ok)

			assert.Equal(t, "set_value", f.Name)
			assert.Equal(t, "&mut self", f.Receiver)
			assert.Equal(t, "&mut Self", f.Returns)
			assert.Equal(t, tt.body, f.Body)
			assert.Equal(t, []Param{{Name: "value", Type: tt.param}}, f.Params)
			assert.Equal(t, tt.bound, f.Bound)
			assert.Equal(t, []string{tt.statement, "self"}, f.Statements)
			assert.False(t, f.BoundInWhere)

			if tt.bound != "" {
				assert.Equal(t, "VALUE", f.Generic)
				assert.Equal(t, "<VALUE: "+tt.bound+">", f.GenericList())
			}
		})
	}
}

func TestTrySetter(t *testing.T) {
	tests := []struct {
		name      string
		typ       string
		attrs     []string
		body      Body
		param     string
		bound     string
		statement string
	}{
		{
			name:      "plain",
			typ:       "u8",
			body:      BodyTryInto,
			param:     "VALUE",
			bound:     "::std::convert::TryInto<u8>",
			statement: "self.value = value.try_into()?;",
		},
		{
			name:      "optional",
			typ:       "Option<u8>",
			body:      BodyTryIntoOption,
			param:     "::std::option::Option<VALUE>",
			bound:     "::std::convert::TryInto<u8>",
			statement: "self.value = value.map(|v| v.try_into()).transpose()?;",
		},
		{
			name:      "strip option",
			typ:       "Option<u8>",
			attrs:     []string{`#[shorthand(enable(strip_option))]`},
			body:      BodyTryIntoSome,
			param:     "VALUE",
			bound:     "::std::convert::TryInto<u8>",
			statement: "self.value = Some(value.try_into()?);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldAttrs := append([]string{`#[shorthand(enable(try_into))]`}, tt.attrs...)

			f, ok := byKind(single(t, tt.typ, fieldAttrs...), KindTrySetter)
			require.True(t, ok)

			assert.Equal(t, "try_value", f.Name)
			assert.Equal(t, tt.body, f.Body)
			assert.Equal(t, []Param{{Name: "value", Type: tt.param}}, f.Params)
			assert.Equal(t, tt.bound, f.Bound)
			assert.Equal(t, []string{tt.statement, "Ok(self)"}, f.Statements)
			assert.Equal(t, "Result<&mut Self, VALUE::Error>", f.Returns)
			assert.Equal(t, "<VALUE>", f.GenericList())
			assert.Equal(t, "where VALUE: "+tt.bound, f.WhereClause())
		})
	}
}

func TestVerifyHook(t *testing.T) {
	fns := single(t, "Option<u8>", `#[shorthand(enable(try_into, get_mut, collection_magic), verify(fn = "Self::check"))]`)

	set, ok := byKind(fns, KindSetter)
	require.True(t, ok)
	assert.Equal(t, []string{"self.value = value;", "Self::check(&self);", "self"}, set.Statements)
	assert.Equal(t, "Self::check(&self);", set.Verify)

	try, ok := byKind(fns, KindTrySetter)
	require.True(t, ok)
	assert.Equal(t, []string{
		"self.value = value.map(|v| v.try_into()).transpose()?;",
		"Self::check(&self);",
		"Ok(self)",
	}, try.Statements)

	get, ok := byKind(fns, KindGetter)
	require.True(t, ok)
	assert.Empty(t, get.Verify)
}

func TestGetMut(t *testing.T) {
	f, ok := byKind(single(t, "Vec<u8>", `#[shorthand(enable(get_mut, must_use))]`), KindGetMut)
	require.True(t, ok)

	assert.Equal(t, "value_mut", f.Name)
	assert.Equal(t, "&mut self", f.Receiver)
	assert.Equal(t, "&mut Vec<u8>", f.Returns)
	assert.Equal(t, BodyMutReference, f.Body)
	assert.Equal(t, []string{"&mut self.value"}, f.Statements)
	assert.Equal(t, []string{attrInline, attrMustUse}, f.Attrs)
	assert.Empty(t, f.Assertions)
}

func TestCollection(t *testing.T) {
	tests := []struct {
		typ        string
		name       string
		body       Body
		params     []Param
		statement  string
		assertions []string
	}{
		{
			typ:       "Vec<u8>",
			name:      "push_value",
			body:      BodyPush,
			params:    []Param{{Name: "value", Type: "u8"}},
			statement: "self.value.push(value);",
			assertions: []string{
				"struct __AssertVec(::std::vec::Vec<()>);",
				"__AssertVec(Vec::new());",
			},
		},
		{
			typ:       "HashMap<String, u32>",
			name:      "insert_value",
			body:      BodyInsert,
			params:    []Param{{Name: "key", Type: "String"}, {Name: "value", Type: "u32"}},
			statement: "self.value.insert(key, value);",
			assertions: []string{
				"struct __AssertCollection(::std::collections::HashMap<(), ()>);",
				"__AssertCollection(HashMap::new());",
			},
		},
		{
			typ:       "std::collections::BTreeSet<u8>",
			name:      "insert_value",
			body:      BodyInsert,
			params:    []Param{{Name: "value", Type: "u8"}},
			statement: "self.value.insert(value);",
			assertions: []string{
				"struct __AssertCollection(::std::collections::BTreeSet<()>);",
				"__AssertCollection(std::collections::BTreeSet::new());",
			},
		},
		{
			typ:       "BTreeMap<u8, Vec<u8>>",
			name:      "insert_value",
			body:      BodyInsert,
			params:    []Param{{Name: "key", Type: "u8"}, {Name: "value", Type: "Vec<u8>"}},
			statement: "self.value.insert(key, value);",
			assertions: []string{
				"struct __AssertCollection(::std::collections::BTreeMap<(), ()>);",
				"__AssertCollection(BTreeMap::new());",
			},
		},
		{
			typ:       "HashSet<String>",
			name:      "insert_value",
			body:      BodyInsert,
			params:    []Param{{Name: "value", Type: "String"}},
			statement: "self.value.insert(value);",
			assertions: []string{
				"struct __AssertCollection(::std::collections::HashSet<()>);",
				"__AssertCollection(HashSet::new());",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			fns := single(t, tt.typ, `#[shorthand(enable(collection_magic))]`)
			require.Len(t, fns, 3)

			f := fns[2]
			assert.Equal(t, KindCollection, f.Kind)
			assert.Equal(t, tt.name, f.Name)
			assert.Equal(t, tt.body, f.Body)
			assert.Equal(t, tt.params, f.Params)
			assert.Equal(t, "&mut Self", f.Returns)
			assert.Equal(t, []string{tt.statement, "self"}, f.Statements)
			assert.Equal(t, tt.assertions, f.Assertions)
		})
	}
}

func TestCollectionRequiresShape(t *testing.T) {
	for _, typ := range []string{"Vec<u8, A, B>", "HashMap<String>", "Option<Vec<u8>>", "MyVec<u8>"} {
		t.Run(typ, func(t *testing.T) {
			assert.Len(t, single(t, typ, `#[shorthand(enable(collection_magic))]`), 2)
		})
	}
}

func TestAssertion(t *testing.T) {
	g, err := shape.ParseGenerics("<'a, 'b, T: Clone, const N: usize>", "T: Default")
	require.NoError(t, err)

	assert.Equal(t,
		"struct _AssertCopy<'a, 'b, T: Clone, const N: usize> where T: Default, &'a T: ::std::marker::Copy "+
			"{ __field_0: ::std::marker::PhantomData<&'a ()>, __field_1: ::std::marker::PhantomData<&'b ()>, "+
			"__field_2: ::std::marker::PhantomData<T> }",
		Assertion("_AssertCopy", g, shape.MustParse("&'a T"), copyBound))
}

func TestForwardedAttributesComeFirst(t *testing.T) {
	fns := single(t, "String", `#[doc = " The value."]`, `#[shorthand(enable(must_use))]`, `#[derive(Debug)]`)

	get, ok := byKind(fns, KindGetter)
	require.True(t, ok)
	assert.Equal(t, []string{`#[doc = " The value."]`, attrInline, attrMustUse}, get.Attrs)

	set, ok := byKind(fns, KindSetter)
	require.True(t, ok)
	assert.Equal(t, []string{`#[doc = " The value."]`, attrInline}, set.Attrs)
}
