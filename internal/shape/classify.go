package shape

import (
	"strings"

	"accessor-generator/internal/common"
)

// Class is the generation-relevant category of a type. When a type fits
// several categories the first one in declaration order below wins.
type Class int

const (
	ClassOther Class = iota
	ClassNever
	ClassEmptyTuple
	ClassMarker
	ClassReference
	ClassOptional
	ClassCollection
	ClassPrimitive
)

// String returns a human-readable representation of the Class.
func (c Class) String() string {
	switch c {
	case ClassOther:
		return "other"
	case ClassNever:
		return "never"
	case ClassEmptyTuple:
		return "empty_tuple"
	case ClassMarker:
		return "marker"
	case ClassReference:
		return "reference"
	case ClassOptional:
		return "optional"
	case ClassCollection:
		return "collection"
	case ClassPrimitive:
		return "primitive"
	default:
		return common.UnknownStr
	}
}

// Collection is one of the standard collections that get insertion helpers.
type Collection int

const (
	CollectionNone Collection = iota
	CollectionVec
	CollectionBTreeMap
	CollectionBTreeSet
	CollectionHashMap
	CollectionHashSet
)

var collectionNames = [...]string{
	CollectionNone:     "",
	CollectionVec:      "Vec",
	CollectionBTreeMap: "BTreeMap",
	CollectionBTreeSet: "BTreeSet",
	CollectionHashMap:  "HashMap",
	CollectionHashSet:  "HashSet",
}

// LookupCollection returns the collection whose type constructor is ident.
func LookupCollection(ident string) (Collection, bool) {
	for c := CollectionVec; int(c) < len(collectionNames); c++ {
		if collectionNames[c] == ident {
			return c, true
		}
	}

	return CollectionNone, false
}

// String returns the type constructor name.
func (c Collection) String() string {
	if c < 0 || int(c) >= len(collectionNames) {
		return common.UnknownStr
	}

	return collectionNames[c]
}

// Arity is the number of type arguments of the collection.
func (c Collection) Arity() int {
	switch c {
	case CollectionVec, CollectionBTreeSet, CollectionHashSet:
		return 1
	case CollectionBTreeMap, CollectionHashMap:
		return 2
	default:
		return 0
	}
}

// IsSequence reports whether elements are appended rather than inserted.
func (c Collection) IsSequence() bool {
	return c == CollectionVec
}

// Method is the collection's insertion method.
func (c Collection) Method() string {
	if c.IsSequence() {
		return "push"
	}

	return "insert"
}

// StdPath is the fully qualified path of the standard collection.
func (c Collection) StdPath() string {
	if c.IsSequence() {
		return "::std::vec::Vec"
	}

	return "::std::collections::" + c.String()
}

// Shape is the classification of a type.
type Shape struct {
	Class Class `json:"class" yaml:"class" msgpack:"class"`
	// Copyable marks primitive-copy-eligible types, which includes shared
	// references.
	Copyable bool `json:"copyable,omitempty" yaml:"copyable,omitempty" msgpack:"copyable,omitempty"`
	// Inner is the wrapped type of an optional.
	Inner      *Type      `json:"inner,omitempty" yaml:"inner,omitempty" msgpack:"inner,omitempty"`
	Collection Collection `json:"collection,omitempty" yaml:"collection,omitempty" msgpack:"collection,omitempty"`
	// Args are the collection's type arguments.
	Args []*Type `json:"args,omitempty" yaml:"args,omitempty" msgpack:"args,omitempty"`
}

// Classify computes the Shape of t.
func Classify(t *Type) Shape {
	s := Shape{Copyable: IsPrimitive(t)}

	switch {
	case IsNever(t):
		s.Class = ClassNever
	case IsEmptyTuple(t):
		s.Class = ClassEmptyTuple
	case IsMarker(t):
		s.Class = ClassMarker
	case IsReference(t):
		s.Class = ClassReference
	case IsOptional(t):
		s.Class = ClassOptional
		s.Inner = InnerOfOptional(t)
	default:
		if c, args := CollectionOf(t); c != CollectionNone {
			s.Class = ClassCollection
			s.Collection = c
			s.Args = args
		} else if s.Copyable {
			s.Class = ClassPrimitive
		}
	}

	return s
}

// IsPrimitive reports whether t is copied by value: a primitive scalar, a
// shared reference, or an array, tuple or parenthesized group of such.
// Mutable references are never copyable.
func IsPrimitive(t *Type) bool {
	if t == nil {
		return false
	}

	switch t.Kind {
	case KindArray, KindParen:
		return IsPrimitive(t.Elem)
	case KindReference:
		return !t.Mutable
	case KindTuple:
		for _, e := range t.Elems {
			if !IsPrimitive(e) {
				return false
			}
		}

		return true
	case KindPath:
		last := t.Last()
		if last == nil || len(last.Args) > 0 {
			return false
		}

		_, ok := LookupPrimitive(last.Ident)

		return ok
	default:
		return false
	}
}

// IsOptional reports whether t is Option with exactly one type argument.
func IsOptional(t *Type) bool {
	return InnerOfOptional(t) != nil
}

// InnerOfOptional returns T for Option<T>, or nil.
func InnerOfOptional(t *Type) *Type {
	last := t.Last()
	if last == nil || last.Ident != "Option" || last.Parenthesized || len(last.Args) != 1 {
		return nil
	}

	arg := last.Args[0]
	if arg.Type == nil || arg.Name != "" {
		return nil
	}

	return arg.Type
}

// CollectionOf matches t against the standard collections by the name of
// its last path segment and its number of type arguments.
func CollectionOf(t *Type) (Collection, []*Type) {
	last := t.Last()
	if last == nil {
		return CollectionNone, nil
	}

	c, ok := LookupCollection(last.Ident)
	if !ok {
		return CollectionNone, nil
	}

	args := t.TypeArgs()
	if len(args) != c.Arity() || len(args) != len(last.Args) {
		return CollectionNone, nil
	}

	return c, args
}

// IsReference reports whether t is `&T` or `&mut T`.
func IsReference(t *Type) bool {
	return t != nil && t.Kind == KindReference
}

// IsMarker reports whether t is the zero-sized PhantomData marker.
func IsMarker(t *Type) bool {
	return t.IsIdent("PhantomData")
}

// IsEmptyTuple reports whether t is `()`.
func IsEmptyTuple(t *Type) bool {
	return t != nil && t.Kind == KindTuple && len(t.Elems) == 0
}

// IsNever reports whether t is `!`.
func IsNever(t *Type) bool {
	return t != nil && t.Kind == KindNever
}

// HasUnderscorePath reports whether t is a path starting with `_`.
func HasUnderscorePath(t *Type) bool {
	return strings.HasPrefix(t.PathString(), "_")
}
