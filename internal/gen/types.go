package gen

import (
	"strings"

	"accessor-generator/internal/common"
)

// FunctionKind identifies which accessor a Function is.
type FunctionKind int

const (
	// KindGetter returns the field value or a reference to it.
	KindGetter FunctionKind = iota
	// KindSetter assigns the field.
	KindSetter
	// KindTrySetter assigns the field through a fallible conversion.
	KindTrySetter
	// KindGetMut returns a mutable reference to the field.
	KindGetMut
	// KindCollection pushes or inserts into a collection field.
	KindCollection
)

// String returns a human-readable representation of the FunctionKind.
func (k FunctionKind) String() string {
	switch k {
	case KindGetter:
		return "getter"
	case KindSetter:
		return "setter"
	case KindTrySetter:
		return "try_setter"
	case KindGetMut:
		return "get_mut"
	case KindCollection:
		return "collection"
	default:
		return common.UnknownStr
	}
}

// MarshalText encodes the kind by name.
func (k FunctionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Body is the shape of a function body.
type Body int

const (
	// BodyCopy returns the field by value.
	BodyCopy Body = iota
	// BodyReference returns a shared reference to the field.
	BodyReference
	// BodyClone returns a clone of the field.
	BodyClone
	// BodyAsRef returns the optional field as an optional reference.
	BodyAsRef
	// BodyMutReference returns a mutable reference to the field.
	BodyMutReference
	// BodyAssign assigns the argument.
	BodyAssign
	// BodyWrapSome assigns the argument wrapped in Some.
	BodyWrapSome
	// BodyInto assigns the converted argument.
	BodyInto
	// BodyIntoSome assigns the converted argument wrapped in Some.
	BodyIntoSome
	// BodyIntoOption maps the conversion over an optional argument.
	BodyIntoOption
	// BodyTryInto assigns the fallibly converted argument.
	BodyTryInto
	// BodyTryIntoSome assigns the fallibly converted argument wrapped in Some.
	BodyTryIntoSome
	// BodyTryIntoOption maps the fallible conversion over an optional argument.
	BodyTryIntoOption
	// BodyPush appends to a sequence.
	BodyPush
	// BodyInsert inserts into a map or set.
	BodyInsert
)

var bodyNames = [...]string{
	BodyCopy:          "copy",
	BodyReference:     "reference",
	BodyClone:         "clone",
	BodyAsRef:         "as_ref",
	BodyMutReference:  "mut_reference",
	BodyAssign:        "assign",
	BodyWrapSome:      "wrap_some",
	BodyInto:          "into",
	BodyIntoSome:      "into_some",
	BodyIntoOption:    "into_option",
	BodyTryInto:       "try_into",
	BodyTryIntoSome:   "try_into_some",
	BodyTryIntoOption: "try_into_option",
	BodyPush:          "push",
	BodyInsert:        "insert",
}

// String returns a human-readable representation of the Body.
func (b Body) String() string {
	if b < 0 || int(b) >= len(bodyNames) {
		return common.UnknownStr
	}

	return bodyNames[b]
}

// MarshalText encodes the body shape by name.
func (b Body) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Param is one function parameter after the receiver.
type Param struct {
	Name string `json:"name" yaml:"name" msgpack:"name"`
	Type string `json:"type" yaml:"type" msgpack:"type"`
}

// Function describes one generated accessor.
type Function struct {
	Kind FunctionKind `json:"kind" yaml:"kind" msgpack:"kind"`
	// Field is the name of the field the accessor serves.
	Field      string `json:"field" yaml:"field" msgpack:"field"`
	Name       string `json:"name" yaml:"name" msgpack:"name"`
	Visibility string `json:"visibility,omitempty" yaml:"visibility,omitempty" msgpack:"visibility,omitempty"`
	Const      bool   `json:"const,omitempty" yaml:"const,omitempty" msgpack:"const,omitempty"`
	// Generic is the conversion type parameter, with Bound its trait bound.
	Generic string `json:"generic,omitempty" yaml:"generic,omitempty" msgpack:"generic,omitempty"`
	Bound   string `json:"bound,omitempty" yaml:"bound,omitempty" msgpack:"bound,omitempty"`
	// BoundInWhere places the bound in a where clause instead of the
	// parameter list.
	BoundInWhere bool    `json:"bound_in_where,omitempty" yaml:"bound_in_where,omitempty" msgpack:"bound_in_where,omitempty"`
	Receiver     string  `json:"receiver" yaml:"receiver" msgpack:"receiver"`
	Params       []Param `json:"params,omitempty" yaml:"params,omitempty" msgpack:"params,omitempty"`
	Returns      string  `json:"returns" yaml:"returns" msgpack:"returns"`
	// Attrs are forwarded attributes followed by derived ones.
	Attrs []string `json:"attrs,omitempty" yaml:"attrs,omitempty" msgpack:"attrs,omitempty"`
	// Assertions are compile-time checks placed before the body.
	Assertions []string `json:"assertions,omitempty" yaml:"assertions,omitempty" msgpack:"assertions,omitempty"`
	Body       Body     `json:"body" yaml:"body" msgpack:"body"`
	// Statements are the body lines, verify call and return value included.
	Statements []string `json:"statements" yaml:"statements" msgpack:"statements"`
	// Verify is the verify hook call, empty when none runs.
	Verify string `json:"verify,omitempty" yaml:"verify,omitempty" msgpack:"verify,omitempty"`
}

// GenericList renders the function's generic parameter list.
func (f Function) GenericList() string {
	switch {
	case f.Generic == "":
		return ""
	case f.BoundInWhere || f.Bound == "":
		return "<" + f.Generic + ">"
	default:
		return "<" + f.Generic + ": " + f.Bound + ">"
	}
}

// WhereClause renders the function's where clause, if any.
func (f Function) WhereClause() string {
	if !f.BoundInWhere || f.Generic == "" || f.Bound == "" {
		return ""
	}

	return "where " + f.Generic + ": " + f.Bound
}

// Arguments renders the receiver and parameters.
func (f Function) Arguments() string {
	parts := []string{f.Receiver}
	for _, p := range f.Params {
		parts = append(parts, p.Name+": "+p.Type)
	}

	return strings.Join(parts, ", ")
}

// Signature renders the function header up to the opening brace.
func (f Function) Signature() string {
	var b strings.Builder

	if f.Visibility != "" {
		b.WriteString(f.Visibility)
		b.WriteString(" ")
	}

	if f.Const {
		b.WriteString("const ")
	}

	b.WriteString("fn ")
	b.WriteString(f.Name)
	b.WriteString(f.GenericList())
	b.WriteString("(")
	b.WriteString(f.Arguments())
	b.WriteString(") -> ")
	b.WriteString(f.Returns)

	if w := f.WhereClause(); w != "" {
		b.WriteString(" ")
		b.WriteString(w)
	}

	return b.String()
}

// Impl is the implementation block generated for one record.
type Impl struct {
	Record string `json:"record" yaml:"record" msgpack:"record"`
	// Generics is the parameter declaration, e.g. `<'a, T: Clone>`.
	Generics string `json:"generics,omitempty" yaml:"generics,omitempty" msgpack:"generics,omitempty"`
	// Arguments are the record's type arguments, e.g. `<'a, T>`.
	Arguments string     `json:"arguments,omitempty" yaml:"arguments,omitempty" msgpack:"arguments,omitempty"`
	Where     string     `json:"where,omitempty" yaml:"where,omitempty" msgpack:"where,omitempty"`
	Attrs     []string   `json:"attrs" yaml:"attrs" msgpack:"attrs"`
	Functions []Function `json:"functions" yaml:"functions" msgpack:"functions"`
}

// Names lists the function names in emission order.
func (i *Impl) Names() []string {
	out := make([]string, len(i.Functions))
	for n, f := range i.Functions {
		out[n] = f.Name
	}

	return out
}
