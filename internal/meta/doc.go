// Package meta parses the attribute text attached to records and fields.
//
// The grammar is the host language's attribute syntax: an attribute is
// `#[path]`, `#[path = literal]` or `#[path(nested, ...)]`, where each
// nested item is again a meta item or a literal. Lex turns text into
// tokens with spans, ParseAttribute recognizes the `#[...]` shell and
// Attribute.Meta parses its contents into a Meta tree.
package meta
