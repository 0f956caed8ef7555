package plan

import (
	"accessor-generator/internal/common"
	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/meta"
	"accessor-generator/internal/shape"
)

// RecordKind is the declaration form of a record.
type RecordKind int

const (
	// RecordStruct is a struct with named fields.
	RecordStruct RecordKind = iota
	// RecordTuple is a struct with positional fields.
	RecordTuple
	// RecordUnit is a struct without fields.
	RecordUnit
	// RecordEnum is an enumeration.
	RecordEnum
	// RecordUnion is an untagged union.
	RecordUnion
)

var recordKindNames = []string{"struct", "tuple", "unit", "enum", "union"}

// RecordKindNames lists the accepted spellings of RecordKind.
func RecordKindNames() []string {
	return append([]string(nil), recordKindNames...)
}

// ParseRecordKind returns the RecordKind spelled name.
func ParseRecordKind(name string) (RecordKind, bool) {
	for i, n := range recordKindNames {
		if n == name {
			return RecordKind(i), true
		}
	}

	return 0, false
}

// String returns a human-readable representation of the RecordKind.
func (k RecordKind) String() string {
	if k >= 0 && int(k) < len(recordKindNames) {
		return recordKindNames[k]
	}

	return common.UnknownStr
}

// Unsupported returns the error for records accessors cannot be generated
// for, or nil.
func (k RecordKind) Unsupported() *diagnostic.Error {
	switch k {
	case RecordStruct:
		return nil
	case RecordTuple:
		return diagnostic.Custom("tuple structs are not supported.")
	case RecordUnit:
		return diagnostic.Custom("unit structs are not supported.")
	case RecordEnum:
		return diagnostic.Custom("enum are not supported.")
	case RecordUnion:
		return diagnostic.Custom("union structs are not supported.")
	default:
		return diagnostic.Custom("unsupported record kind `%d`", int(k))
	}
}

// Record describes one record as delivered by the source parser.
type Record struct {
	// Ident is the record's name.
	Ident string
	// Kind is the declaration form.
	Kind RecordKind
	// Visibility is the record's own visibility, used by `inherit`.
	Visibility string
	// Generics are the record's generic parameters and where clause.
	Generics shape.Generics
	// Attrs are the attributes on the record, in source order.
	Attrs []meta.Attribute
	// Fields are the named fields, in declaration order.
	Fields []Field
	// Span locates the record declaration.
	Span diagnostic.Span
}

// Field describes one named field of a record.
type Field struct {
	// Ident is the field's name.
	Ident string
	// Type is the declared field type.
	Type *shape.Type
	// Attrs are the attributes on the field, in source order.
	Attrs []meta.Attribute
	// Span locates the field declaration.
	Span diagnostic.Span
}
