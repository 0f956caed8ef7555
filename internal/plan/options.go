package plan

import (
	"accessor-generator/internal/config"
	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/meta"
	"accessor-generator/internal/shape"
)

const (
	// ConfigAttribute is the path of configuration attributes.
	ConfigAttribute = "shorthand"
	// ReservedGeneric is the type parameter conversion setters declare.
	ReservedGeneric = "VALUE"
)

const (
	enableWord     = "enable"
	disableWord    = "disable"
	visibilityWord = "visibility"
	renameWord     = "rename"
	verifyWord     = "verify"
	forwardWord    = "forward"
)

var itemKeys = []string{enableWord, disableWord, visibilityWord, renameWord, verifyWord, forwardWord}

// Options is the configuration in effect for a record or one of its
// fields. Values are snapshots: every derivation returns a new Options
// that shares no mutable state with its origin.
type Options struct {
	// Record is the name of the record.
	Record string
	// RecordVisibility is the record's own visibility.
	RecordVisibility string
	// Generics are the record's generic parameters.
	Generics shape.Generics
	// Field is the field name, empty at record level.
	Field string
	// Type is the field type, nil at record level.
	Type *shape.Type

	Attributes config.Attributes
	Rename     config.Rename
	Visibility config.Visibility
	Forward    config.Forward
	Verify     config.Verify

	// Forwarded are the non-configuration attributes copied onto every
	// generated function, record attributes first.
	Forwarded []meta.Attribute

	candidates []candidate
}

// DefaultOptions returns the snapshot of r before any attribute is applied.
func DefaultOptions(r *Record) Options {
	return Options{
		Record:           r.Ident,
		RecordVisibility: r.Visibility,
		Generics:         r.Generics,
		Attributes:       config.DefaultAttributes(),
		Rename:           config.DefaultRename(),
		Visibility:       config.DefaultVisibility(),
		Forward:          config.DefaultForward(),
	}
}

// Resolve applies the record's attributes to the defaults. Every attribute
// is processed, so the returned error reports all problems at once.
func Resolve(r *Record) (Options, error) {
	o := DefaultOptions(r)

	var diag diagnostic.Diagnostics

	diag.Add(o.apply(r.Attrs))

	if o.convertsValues() && r.Generics.Contains(ReservedGeneric) {
		diag.Add(diagnostic.ReservedGenericName(ReservedGeneric).WithSpan(r.Span))
	}

	if diag.HasErrors() {
		return Options{}, diag.Err()
	}

	return o, nil
}

// WithField returns the snapshot for f: a copy of o with the field's
// attributes applied on top.
func (o Options) WithField(f *Field) (Options, error) {
	out := o.Clone()
	out.Field = f.Ident
	out.Type = f.Type.Clone()

	var diag diagnostic.Diagnostics

	diag.Add(out.apply(f.Attrs))

	if out.convertsValues() && !o.convertsValues() && o.Generics.Contains(ReservedGeneric) {
		diag.Add(diagnostic.ReservedGenericName(ReservedGeneric).WithSpan(f.Span))
	}

	if diag.HasErrors() {
		return Options{}, diag.Err()
	}

	return out, nil
}

// Clone returns a deep copy of o.
func (o Options) Clone() Options {
	out := o
	out.Generics.Params = append([]shape.Param(nil), o.Generics.Params...)
	out.Type = o.Type.Clone()
	out.Forward = o.Forward.Clone()
	out.Forwarded = append([]meta.Attribute(nil), o.Forwarded...)
	out.candidates = append([]candidate(nil), o.candidates...)

	return out
}

// FunctionVisibility is the visibility generated functions are declared with.
func (o Options) FunctionVisibility() string {
	return o.Visibility.Resolve(o.RecordVisibility)
}

func (o Options) convertsValues() bool {
	return o.Attributes.Into || o.Attributes.TryInto
}

// candidate is a non-configuration attribute and whether the forward
// policy in effect at its position allowed it.
type candidate struct {
	attr    meta.Attribute
	allowed bool
}

// apply processes attrs in source order. Forward directives take effect
// for the attributes that follow them; enable and disable settings are
// merged once all attributes were seen, so the legacy forwarding switches
// are decided last, for inherited candidates too.
func (o *Options) apply(attrs []meta.Attribute) error {
	var diag diagnostic.Diagnostics

	b := config.NewBuilder()
	seen := make(map[string]bool)

	for _, attr := range attrs {
		if !attr.Is(ConfigAttribute) {
			o.candidates = append(o.candidates, candidate{attr: attr, allowed: o.Forward.Is(attr.Path.String())})

			continue
		}

		m, err := attr.Meta()
		if err != nil {
			diag.Add(err)

			continue
		}

		if m.Kind != meta.MetaList {
			diag.Add(diagnostic.UnexpectedShape(m.Kind.String(), meta.MetaList.String()).WithSpan(attr.Span).At(ConfigAttribute))

			continue
		}

		for _, item := range m.Nested {
			if item.IsLit() {
				diag.Add(diagnostic.UnexpectedLit(item.Lit.Kind.String()).WithSpan(item.Lit.Span).At(ConfigAttribute))

				continue
			}

			o.applyItem(item.Meta, b, seen, &diag)
		}
	}

	attributes, err := b.Apply(o.Attributes)
	diag.Add(err)

	o.Attributes = attributes
	o.Forwarded = nil

	for _, c := range o.candidates {
		if o.forwards(c) {
			o.Forwarded = append(o.Forwarded, c.attr)
		}
	}

	return diag.Err()
}

func (o *Options) applyItem(item *meta.Meta, b *config.Builder, seen map[string]bool, diag *diagnostic.Diagnostics) {
	word := item.Path.String()

	if config.IsForward(item) {
		f, err := o.Forward.Merge(item)
		if err != nil {
			diag.Add(err)
		} else {
			o.Forward = f
		}

		if word == forwardWord {
			return
		}
	}

	switch word {
	case enableWord, disableWord:
		b.Push(item)
	case renameWord:
		r, err := o.Rename.Merge(item)
		if err != nil {
			diag.Add(err)

			return
		}

		o.Rename = r
	case visibilityWord:
		if seen[word] {
			diag.Add(diagnostic.DuplicateKey(word).WithSpan(item.Span))

			return
		}

		seen[word] = true

		v, err := config.ParseVisibility(item)
		if err != nil {
			diag.Add(err)

			return
		}

		o.Visibility = v
	case verifyWord:
		if seen[word] {
			diag.Add(diagnostic.DuplicateKey(word).WithSpan(item.Span))

			return
		}

		seen[word] = true

		v, err := config.ParseVerify(item)
		if err != nil {
			diag.Add(err)

			return
		}

		o.Verify = v
	default:
		diag.Add(diagnostic.UnknownKey(word, itemKeys).WithSpan(item.Span))
	}
}

func (o *Options) forwards(c candidate) bool {
	switch {
	case !o.Attributes.ForwardAttributes:
		return false
	case o.Attributes.ForwardEverything:
		return true
	default:
		return c.allowed
	}
}
