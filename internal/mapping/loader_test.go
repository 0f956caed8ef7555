package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/plan"
)

const exampleFile = "example.yaml"

const example = `records:
  - ident: Example
    generics: "<'a, T: Clone>"
    where: "T: Default"
    attrs:
      - '#[shorthand(enable(into))]'
      - '#[doc = " An example."]'
    fields:
      - ident: value
        type: Option<String>
        attrs: '#[shorthand(disable(get))]'
      - ident: count
        type: u32
`

func span(line, column int) diagnostic.Span {
	return diagnostic.Span{File: exampleFile, Line: line, Column: column}
}

func build(t *testing.T, text string) ([]plan.Record, error) {
	t.Helper()

	f, err := Parse([]byte(text), exampleFile)
	require.NoError(t, err)

	return f.Build()
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(example), exampleFile)
	require.NoError(t, err)
	require.Len(t, f.Records, 1)

	r := f.Records[0]
	assert.Equal(t, Fragment{Text: "Example", Line: 2, Column: 12}, r.Ident)
	assert.Equal(t, Fragment{Text: "<'a, T: Clone>", Line: 3, Column: 16}, r.Generics)
	assert.Equal(t, "struct", r.Kind.Text)
	assert.False(t, r.Visibility.IsSet())

	require.Len(t, r.Attrs, 2)
	assert.Equal(t, Fragment{Text: "#[shorthand(enable(into))]", Line: 6, Column: 10}, r.Attrs[0])

	require.Len(t, r.Fields, 2)
	assert.Equal(t, Fragment{Text: "Option<String>", Line: 10, Column: 15}, r.Fields[0].Type)
	assert.Equal(t, Fragments{{Text: "#[shorthand(disable(get))]", Line: 11, Column: 17}}, r.Fields[0].Attrs)
	assert.Empty(t, r.Fields[1].Attrs)
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse(nil, exampleFile)
	require.NoError(t, err)
	assert.Empty(t, f.Records)

	records, err := f.Build()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("records:\n  - ident: A\n    feilds: []\n"), exampleFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feilds")
}

func TestParseRejectsNonScalarFragments(t *testing.T) {
	_, err := Parse([]byte("records:\n  - ident: [A]\n"), exampleFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a string, got array")

	_, err = Parse([]byte("records:\n  - ident: A\n    attrs: {a: b}\n"), exampleFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected string or array, got mapping")
}

func TestFragmentStyles(t *testing.T) {
	text := "records:\n  - ident: A\n    generics: |\n      <T>\n    where: 'T: Clone'\n"

	f, err := Parse([]byte(text), exampleFile)
	require.NoError(t, err)

	r := f.Records[0]
	assert.Equal(t, "<T>\n", r.Generics.Text)
	assert.Equal(t, 4, r.Generics.Line)
	assert.Equal(t, Fragment{Text: "T: Clone", Line: 5, Column: 13}, r.Where)
}

func TestBuild(t *testing.T) {
	records, err := build(t, example)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "Example", r.Ident)
	assert.Equal(t, plan.RecordStruct, r.Kind)
	assert.Equal(t, "", r.Visibility)
	assert.Equal(t, span(2, 12), r.Span)
	assert.Equal(t, "<'a, T: Clone>", r.Generics.Declaration())
	assert.Equal(t, "<'a, T>", r.Generics.Arguments())
	assert.Equal(t, "where T: Default", r.Generics.WhereClause())

	require.Len(t, r.Attrs, 2)
	assert.True(t, r.Attrs[0].Is(plan.ConfigAttribute))
	assert.True(t, r.Attrs[1].Is("doc"))
	assert.Equal(t, span(6, 10), r.Attrs[0].Span)

	require.Len(t, r.Fields, 2)
	assert.Equal(t, "value", r.Fields[0].Ident)
	assert.Equal(t, "Option<String>", r.Fields[0].Type.String())
	assert.Equal(t, span(9, 16), r.Fields[0].Span)
	assert.Equal(t, "u32", r.Fields[1].Type.String())
}

func TestBuildRawIdents(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		record string
		field  string
	}{
		{
			name:   "raw keyword field",
			text:   "records:\n  - ident: Token\n    fields:\n      - {ident: r#type, type: String}\n",
			record: "Token",
			field:  "r#type",
		},
		{
			name:   "raw record",
			text:   "records:\n  - ident: r#Match\n    fields:\n      - {ident: r#value, type: u8}\n",
			record: "r#Match",
			field:  "r#value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := build(t, tt.text)
			require.NoError(t, err)
			require.Len(t, records, 1)

			assert.Equal(t, tt.record, records[0].Ident)
			require.Len(t, records[0].Fields, 1)
			assert.Equal(t, tt.field, records[0].Fields[0].Ident)
		})
	}
}

func TestBuildRecordAttributes(t *testing.T) {
	records, err := build(t, "records:\n  - ident: Tup\n    kind: tuple\n    visibility: pub( crate )\n")
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, plan.RecordTuple, records[0].Kind)
	assert.Equal(t, "pub(crate)", records[0].Visibility)
	assert.Empty(t, records[0].Fields)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind diagnostic.Kind
		path []string
		msg  string
		line int
	}{
		{
			name: "missing record ident",
			text: "records:\n  - kind: struct\n",
			kind: diagnostic.KindMissingField,
			path: []string{"records[0]"},
			msg:  "missing field `ident`",
		},
		{
			name: "invalid record ident",
			text: "records:\n  - ident: 1abc\n",
			kind: diagnostic.KindCustom,
			path: []string{"records[0]"},
			msg:  "`1abc` is not a valid identifier",
			line: 2,
		},
		{
			name: "raw path keyword",
			text: "records:\n  - ident: r#self\n",
			kind: diagnostic.KindCustom,
			path: []string{"records[0]"},
			msg:  "`self` cannot be a raw identifier",
			line: 2,
		},
		{
			name: "raw and plain field",
			text: "records:\n  - ident: A\n    fields:\n      - {ident: r#value, type: u8}\n      - {ident: value, type: u16}\n",
			kind: diagnostic.KindDuplicateKey,
			path: []string{"records[0]", "fields", "value"},
			msg:  "duplicate field `value`",
			line: 5,
		},
		{
			name: "unknown kind",
			text: "records:\n  - ident: A\n    kind: trait\n",
			kind: diagnostic.KindUnknownKey,
			path: []string{"records[0]", "kind"},
			line: 3,
		},
		{
			name: "invalid visibility",
			text: "records:\n  - ident: A\n    visibility: public\n",
			kind: diagnostic.KindCustom,
			path: []string{"records[0]", "visibility"},
			msg:  "`public` is not a valid visibility",
			line: 3,
		},
		{
			name: "invalid generics",
			text: "records:\n  - ident: A\n    generics: \"<T\"\n",
			kind: diagnostic.KindCustom,
			path: []string{"records[0]", "generics"},
			line: 3,
		},
		{
			name: "invalid attribute",
			text: "records:\n  - ident: A\n    attrs: 'derive(Debug)'\n",
			kind: diagnostic.KindCustom,
			path: []string{"records[0]", "attrs"},
			line: 3,
		},
		{
			name: "reserved field ident",
			text: "records:\n  - ident: A\n    fields:\n      - ident: type\n        type: u8\n",
			kind: diagnostic.KindCustom,
			path: []string{"records[0]", "fields", "type"},
			msg:  "`type` is a reserved keyword",
			line: 4,
		},
		{
			name: "missing field type",
			text: "records:\n  - ident: A\n    fields:\n      - ident: a\n",
			kind: diagnostic.KindMissingField,
			path: []string{"records[0]", "fields", "a"},
			msg:  "missing field `type`",
			line: 4,
		},
		{
			name: "invalid field type",
			text: "records:\n  - ident: A\n    fields:\n      - ident: a\n        type: Vec<u8\n",
			kind: diagnostic.KindCustom,
			path: []string{"records[0]", "fields", "a", "type"},
			line: 5,
		},
		{
			name: "unnamed field",
			text: "records:\n  - ident: A\n    fields:\n      - type: u8\n",
			kind: diagnostic.KindMissingField,
			path: []string{"records[0]", "fields", "[0]"},
			msg:  "missing field `ident`",
			line: 2,
		},
		{
			name: "duplicate field",
			text: "records:\n  - ident: A\n    fields:\n      - {ident: a, type: u8}\n      - {ident: a, type: u16}\n",
			kind: diagnostic.KindDuplicateKey,
			path: []string{"records[0]", "fields", "a"},
			msg:  "duplicate field `a`",
			line: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := build(t, tt.text)
			require.Error(t, err)
			assert.Empty(t, records)

			errs := diagnostic.Flatten(err)
			require.Len(t, errs, 1)

			e := errs[0]
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, tt.path, e.Path)
			assert.Equal(t, exampleFile, e.Span.File)
			assert.Equal(t, tt.line, e.Span.Line)

			if tt.msg != "" {
				assert.Equal(t, tt.msg, e.Text())
			}
		})
	}
}

func TestBuildCollectsAndKeepsValidRecords(t *testing.T) {
	text := `records:
  - ident: Good
    fields:
      - {ident: a, type: u8}
  - ident: Bad
    kind: trait
    fields:
      - {ident: a}
  - ident: Good
`

	records, err := build(t, text)
	require.Error(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Good", records[0].Ident)

	errs := diagnostic.Flatten(err)
	require.Len(t, errs, 3)
	assert.Equal(t, diagnostic.KindUnknownKey, errs[0].Kind)
	assert.Equal(t, diagnostic.KindMissingField, errs[1].Kind)
	assert.Equal(t, diagnostic.KindDuplicateKey, errs[2].Kind)
	assert.Equal(t, []string{"records[2]"}, errs[2].Path)
	assert.Equal(t, span(9, 12), errs[2].Span)
}

func TestSpansReachAttributeBodies(t *testing.T) {
	text := `records:
  - ident: A
    fields:
      - ident: a
        type: u8
        attrs: '#[shorthand(enable(cpy))]'
`

	records, err := build(t, text)
	require.NoError(t, err)

	options, err := plan.Resolve(&records[0])
	require.NoError(t, err)

	_, err = options.WithField(&records[0].Fields[0])
	require.Error(t, err)

	errs := diagnostic.Flatten(err)
	require.Len(t, errs, 1)
	assert.Equal(t, diagnostic.KindUnknownKey, errs[0].Kind)
	assert.Equal(t, span(6, 36), errs[0].Span)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte(example), 0o600))

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, path, records[0].Span.File)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read description file")

	require.NoError(t, os.WriteFile(path, []byte("records: [\n"), 0o600))

	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse description YAML")
}
