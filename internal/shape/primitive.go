package shape

//go:generate go tool stringer -type=Primitive -linecomment -output=primitive_string.go

// Primitive is a built-in scalar type of the host language. Every
// primitive is a plain value type that is copied on assignment.
type Primitive int

const (
	_ Primitive = iota // zero value marks "not a primitive"

	PrimitiveBool // bool
	PrimitiveChar // char
	PrimitiveF32 // f32
	PrimitiveF64 // f64
	PrimitiveI8 // i8
	PrimitiveI16 // i16
	PrimitiveI32 // i32
	PrimitiveI64 // i64
	PrimitiveI128 // i128
	PrimitiveIsize // isize
	PrimitiveU8 // u8
	PrimitiveU16 // u16
	PrimitiveU32 // u32
	PrimitiveU64 // u64
	PrimitiveU128 // u128
	PrimitiveUsize // usize

	// PrimitiveTotal is the number of primitives plus the invalid zero value.
	PrimitiveTotal = int(iota)
)

var primitiveByName = func() map[string]Primitive {
	m := make(map[string]Primitive, PrimitiveTotal-1)
	for p := PrimitiveBool; int(p) < PrimitiveTotal; p++ {
		m[p.String()] = p
	}

	return m
}()

// LookupPrimitive returns the primitive spelled name.
func LookupPrimitive(name string) (Primitive, bool) {
	p, ok := primitiveByName[name]

	return p, ok
}

// IsInteger reports whether p is a signed or unsigned integer.
func (p Primitive) IsInteger() bool {
	switch p {
	case PrimitiveI8, PrimitiveI16, PrimitiveI32, PrimitiveI64, PrimitiveI128, PrimitiveIsize,
		PrimitiveU8, PrimitiveU16, PrimitiveU32, PrimitiveU64, PrimitiveU128, PrimitiveUsize:
		return true
	default:
		return false
	}
}

// IsFloat reports whether p is an IEEE float.
func (p Primitive) IsFloat() bool {
	return p == PrimitiveF32 || p == PrimitiveF64
}
