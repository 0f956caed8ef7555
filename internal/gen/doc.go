// Package gen expands resolved records into accessor function descriptors
// and renders them.
//
// For every field that is not skipped the generator emits, in order:
//   - a getter returning by value, as an optional reference, as a clone or
//     by reference
//   - a setter, optionally converting its argument with Into
//   - a fallible setter converting with TryInto
//   - a mutable getter
//   - a push or insert helper for standard collections
//
// Descriptors are rendered as source text through text/template, or
// exported as JSON, YAML or msgpack for external renderers.
package gen
