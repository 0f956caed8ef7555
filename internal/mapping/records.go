package mapping

import (
	"fmt"

	"accessor-generator/internal/config"
	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/meta"
	"accessor-generator/internal/plan"
	"accessor-generator/internal/shape"
)

// Build converts the descriptions into records. Every record is checked and
// all errors are returned together, next to the records that were valid.
func (f *File) Build() ([]plan.Record, error) {
	var diag diagnostic.Diagnostics

	records := make([]plan.Record, 0, len(f.Records))
	seen := make(map[string]bool, len(f.Records))

	for i := range f.Records {
		spec := &f.Records[i]
		at := fmt.Sprintf("records[%d]", i)

		r, d := f.record(spec)
		key := config.Unraw(spec.Ident.Text)

		if spec.Ident.IsSet() && seen[key] {
			d.AddAt(diagnostic.DuplicateKey(spec.Ident.Text), f.span(spec.Ident))
		}

		seen[key] = true

		if d.HasErrors() {
			diag.AddAt(d.Err(), diagnostic.Span{File: f.Name}, at)

			continue
		}

		records = append(records, r)
	}

	return records, diag.Err()
}

func (f *File) record(spec *RecordSpec) (plan.Record, diagnostic.Diagnostics) {
	var diag diagnostic.Diagnostics

	r := plan.Record{
		Ident: spec.Ident.Text,
		Span:  f.span(spec.Ident),
	}

	if err := f.ident(spec.Ident); err != nil {
		diag.AddAt(err, r.Span)
	}

	kind, ok := plan.ParseRecordKind(spec.Kind.Text)
	if !ok {
		diag.AddAt(diagnostic.UnknownKey(spec.Kind.Text, plan.RecordKindNames()), f.span(spec.Kind), "kind")
	}

	r.Kind = kind

	vis, ok := config.CanonicalVisibility(spec.Visibility.Text)
	if !ok {
		diag.AddAt(diagnostic.Custom("`%s` is not a valid visibility", spec.Visibility.Text),
			f.span(spec.Visibility), "visibility")
	}

	r.Visibility = vis

	generics, err := shape.ParseGenericsAt(spec.Generics.Text, f.span(spec.Generics), spec.Where.Text, f.span(spec.Where))
	if err != nil {
		diag.AddAt(err, f.span(spec.Generics), "generics")
	}

	r.Generics = generics

	attrs, err := f.attributes(spec.Attrs)
	if err != nil {
		diag.AddAt(err, r.Span, "attrs")
	}

	r.Attrs = attrs

	seen := make(map[string]bool, len(spec.Fields))

	for i := range spec.Fields {
		name := spec.Fields[i].Ident.Text
		if name == "" {
			name = fmt.Sprintf("[%d]", i)
		}

		field, err := f.field(&spec.Fields[i], r.Span)
		if err == nil && seen[config.Unraw(field.Ident)] {
			err = diagnostic.DuplicateKey(field.Ident).WithSpan(field.Span)
		}

		if err != nil {
			diag.AddAt(err, r.Span, "fields", name)

			continue
		}

		seen[config.Unraw(field.Ident)] = true
		r.Fields = append(r.Fields, field)
	}

	return r, diag
}

func (f *File) field(spec *FieldSpec, record diagnostic.Span) (plan.Field, error) {
	var diag diagnostic.Diagnostics

	field := plan.Field{
		Ident: spec.Ident.Text,
		Span:  f.span(spec.Ident),
	}

	if !field.Span.IsValid() {
		field.Span = record
	}

	if err := f.ident(spec.Ident); err != nil {
		diag.AddAt(err, field.Span)
	}

	if !spec.Type.IsSet() {
		diag.AddAt(diagnostic.MissingField("type"), field.Span)
	} else {
		typ, err := shape.ParseAt(spec.Type.Text, f.span(spec.Type))
		if err != nil {
			diag.AddAt(err, f.span(spec.Type), "type")
		}

		field.Type = typ
	}

	attrs, err := f.attributes(spec.Attrs)
	if err != nil {
		diag.AddAt(err, field.Span, "attrs")
	}

	field.Attrs = attrs

	return field, diag.Err()
}

func (f *File) attributes(specs Fragments) ([]meta.Attribute, error) {
	var diag diagnostic.Diagnostics

	out := make([]meta.Attribute, 0, len(specs))

	for _, spec := range specs {
		attr, err := meta.ParseAttribute(spec.Text, f.span(spec))
		if err != nil {
			diag.AddAt(err, f.span(spec))

			continue
		}

		out = append(out, attr)
	}

	return out, diag.Err()
}

// ident checks that the fragment is a single identifier usable as a record
// or field name. Keywords must be written raw, e.g. `r#type`.
func (f *File) ident(frag Fragment) error {
	if !frag.IsSet() {
		return diagnostic.MissingField("ident")
	}

	toks, err := meta.Lex(frag.Text, f.span(frag))
	if err != nil || len(toks) != 2 || toks[0].Kind != meta.TokenIdent {
		return diagnostic.Custom("`%s` is not a valid identifier", frag.Text).WithSpan(f.span(frag))
	}

	tok := toks[0]

	switch {
	case tok.Text != tok.Value && !config.CanBeRaw(tok.Value):
		return diagnostic.Custom("`%s` cannot be a raw identifier", tok.Value).WithSpan(f.span(frag))
	case tok.Text == tok.Value && config.IsReserved(tok.Value):
		return diagnostic.Custom("`%s` is a reserved keyword", frag.Text).WithSpan(f.span(frag))
	}

	return nil
}

func (f *File) span(frag Fragment) diagnostic.Span {
	return frag.Span(f.Name)
}
