package shape

import (
	"strings"

	"accessor-generator/internal/common"
)

// Kind is the syntactic form of a Type.
type Kind int

const (
	KindUnknown   Kind = iota
	KindPath           // a::b::C<T>
	KindReference      // &'a mut T
	KindPtr            // *const T, *mut T
	KindTuple          // (A, B), ()
	KindArray          // [T; N]
	KindSlice          // [T]
	KindParen          // (T)
	KindNever          // !
	KindInfer          // _
	KindVerbatim       // dyn/impl trait objects, fn pointers, qualified paths
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindReference:
		return "reference"
	case KindPtr:
		return "pointer"
	case KindTuple:
		return "tuple"
	case KindArray:
		return "array"
	case KindSlice:
		return "slice"
	case KindParen:
		return "paren"
	case KindNever:
		return "never"
	case KindInfer:
		return "infer"
	case KindVerbatim:
		return "verbatim"
	default:
		return common.UnknownStr
	}
}

// Type is a parsed type expression.
type Type struct {
	Kind Kind `json:"kind" yaml:"kind" msgpack:"kind"`
	// Leading marks a path written with a leading `::`.
	Leading  bool      `json:"leading,omitempty" yaml:"leading,omitempty" msgpack:"leading,omitempty"`
	Segments []Segment `json:"segments,omitempty" yaml:"segments,omitempty" msgpack:"segments,omitempty"`
	// Lifetime of a reference, quote included.
	Lifetime string `json:"lifetime,omitempty" yaml:"lifetime,omitempty" msgpack:"lifetime,omitempty"`
	// Mutable marks `&mut T` and `*mut T`.
	Mutable bool `json:"mutable,omitempty" yaml:"mutable,omitempty" msgpack:"mutable,omitempty"`
	// Elem is the target of references and pointers and the element of
	// arrays, slices and parens.
	Elem *Type `json:"elem,omitempty" yaml:"elem,omitempty" msgpack:"elem,omitempty"`
	// Elems holds tuple members.
	Elems []*Type `json:"elems,omitempty" yaml:"elems,omitempty" msgpack:"elems,omitempty"`
	// Len is the array length expression as written.
	Len string `json:"len,omitempty" yaml:"len,omitempty" msgpack:"len,omitempty"`
	// Text is the source of a verbatim type.
	Text string `json:"text,omitempty" yaml:"text,omitempty" msgpack:"text,omitempty"`
}

// Segment is one `::`-separated part of a path type.
type Segment struct {
	Ident string `json:"ident" yaml:"ident" msgpack:"ident"`
	// Args are the angle-bracketed arguments, or the inputs of
	// parenthesized `Fn(A) -> B` sugar.
	Args          []GenericArg `json:"args,omitempty" yaml:"args,omitempty" msgpack:"args,omitempty"`
	Parenthesized bool         `json:"parenthesized,omitempty" yaml:"parenthesized,omitempty" msgpack:"parenthesized,omitempty"`
	Output        *Type        `json:"output,omitempty" yaml:"output,omitempty" msgpack:"output,omitempty"`
}

// GenericArg is one argument of a path segment: a lifetime, a type, an
// associated type binding or a const expression.
type GenericArg struct {
	Lifetime string `json:"lifetime,omitempty" yaml:"lifetime,omitempty" msgpack:"lifetime,omitempty"`
	// Name is set for bindings such as `Item = T`.
	Name  string `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Type  *Type  `json:"type,omitempty" yaml:"type,omitempty" msgpack:"type,omitempty"`
	Const string `json:"const,omitempty" yaml:"const,omitempty" msgpack:"const,omitempty"`
}

// Path builds a path type from segment names.
func Path(segments ...string) *Type {
	t := &Type{Kind: KindPath}
	for _, s := range segments {
		t.Segments = append(t.Segments, Segment{Ident: s})
	}

	return t
}

// Ref builds `&T` or `&mut T`.
func Ref(elem *Type, mutable bool) *Type {
	return &Type{Kind: KindReference, Elem: elem, Mutable: mutable}
}

// Generic builds a single-segment path with type arguments, e.g. Option<T>.
func Generic(ident string, args ...*Type) *Type {
	seg := Segment{Ident: ident}
	for _, a := range args {
		seg.Args = append(seg.Args, GenericArg{Type: a})
	}

	return &Type{Kind: KindPath, Segments: []Segment{seg}}
}

// Last returns the final path segment, or nil when t is not a path.
func (t *Type) Last() *Segment {
	if t == nil || t.Kind != KindPath || len(t.Segments) == 0 {
		return nil
	}

	return &t.Segments[len(t.Segments)-1]
}

// IsIdent reports whether t is a path whose last segment is ident.
func (t *Type) IsIdent(ident string) bool {
	last := t.Last()

	return last != nil && last.Ident == ident
}

// TypeArgs returns the type arguments of the last path segment, skipping
// lifetimes, bindings and consts.
func (t *Type) TypeArgs() []*Type {
	last := t.Last()
	if last == nil || last.Parenthesized {
		return nil
	}

	var out []*Type

	for _, a := range last.Args {
		if a.Type != nil && a.Name == "" {
			out = append(out, a.Type)
		}
	}

	return out
}

// PathString renders the segment names of a path type without arguments.
func (t *Type) PathString() string {
	if t == nil || t.Kind != KindPath {
		return ""
	}

	names := make([]string, len(t.Segments))
	for i, s := range t.Segments {
		names[i] = s.Ident
	}

	s := strings.Join(names, "::")
	if t.Leading {
		return "::" + s
	}

	return s
}

// WithLastArgs returns a copy of the path t whose last segment carries args.
func (t *Type) WithLastArgs(args ...*Type) *Type {
	out := t.Clone()

	last := out.Last()
	if last == nil {
		return out
	}

	last.Args = nil
	last.Parenthesized = false
	last.Output = nil

	for _, a := range args {
		last.Args = append(last.Args, GenericArg{Type: a})
	}

	return out
}

// Clone returns a deep copy of t.
func (t *Type) Clone() *Type {
	if t == nil {
		return nil
	}

	out := *t
	out.Elem = t.Elem.Clone()

	if t.Elems != nil {
		out.Elems = make([]*Type, len(t.Elems))
		for i, e := range t.Elems {
			out.Elems[i] = e.Clone()
		}
	}

	if t.Segments != nil {
		out.Segments = make([]Segment, len(t.Segments))
		for i, s := range t.Segments {
			out.Segments[i] = s.clone()
		}
	}

	return &out
}

func (s Segment) clone() Segment {
	out := s
	out.Output = s.Output.Clone()

	if s.Args != nil {
		out.Args = make([]GenericArg, len(s.Args))
		for i, a := range s.Args {
			a.Type = a.Type.Clone()
			out.Args[i] = a
		}
	}

	return out
}

// String renders t in canonical form.
func (t *Type) String() string {
	var b strings.Builder

	t.write(&b)

	return b.String()
}

func (t *Type) write(b *strings.Builder) {
	if t == nil {
		return
	}

	switch t.Kind {
	case KindPath:
		if t.Leading {
			b.WriteString("::")
		}

		for i, s := range t.Segments {
			if i > 0 {
				b.WriteString("::")
			}

			s.write(b)
		}
	case KindReference:
		b.WriteByte('&')

		if t.Lifetime != "" {
			b.WriteString(t.Lifetime)
			b.WriteByte(' ')
		}

		if t.Mutable {
			b.WriteString("mut ")
		}

		t.Elem.write(b)
	case KindPtr:
		if t.Mutable {
			b.WriteString("*mut ")
		} else {
			b.WriteString("*const ")
		}

		t.Elem.write(b)
	case KindTuple:
		b.WriteByte('(')

		for i, e := range t.Elems {
			if i > 0 {
				b.WriteString(", ")
			}

			e.write(b)
		}

		if len(t.Elems) == 1 {
			b.WriteByte(',')
		}

		b.WriteByte(')')
	case KindArray:
		b.WriteByte('[')
		t.Elem.write(b)
		b.WriteString("; ")
		b.WriteString(t.Len)
		b.WriteByte(']')
	case KindSlice:
		b.WriteByte('[')
		t.Elem.write(b)
		b.WriteByte(']')
	case KindParen:
		b.WriteByte('(')
		t.Elem.write(b)
		b.WriteByte(')')
	case KindNever:
		b.WriteByte('!')
	case KindInfer:
		b.WriteByte('_')
	default:
		b.WriteString(t.Text)
	}
}

func (s Segment) write(b *strings.Builder) {
	b.WriteString(s.Ident)

	if s.Parenthesized {
		b.WriteByte('(')

		for i, a := range s.Args {
			if i > 0 {
				b.WriteString(", ")
			}

			a.write(b)
		}

		b.WriteByte(')')

		if s.Output != nil {
			b.WriteString(" -> ")
			s.Output.write(b)
		}

		return
	}

	if len(s.Args) == 0 {
		return
	}

	b.WriteByte('<')

	for i, a := range s.Args {
		if i > 0 {
			b.WriteString(", ")
		}

		a.write(b)
	}

	b.WriteByte('>')
}

func (a GenericArg) write(b *strings.Builder) {
	switch {
	case a.Lifetime != "":
		b.WriteString(a.Lifetime)
	case a.Name != "":
		b.WriteString(a.Name)
		b.WriteString(" = ")
		a.Type.write(b)
	case a.Type != nil:
		a.Type.write(b)
	default:
		b.WriteString(a.Const)
	}
}
