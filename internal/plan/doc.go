// Package plan resolves the configuration attributes of a record and its
// fields into immutable Options snapshots consumed by code generation.
//
// Resolution pipeline:
//  1. Start from the defaults of a record without configuration
//  2. Apply the record's attributes in source order, collecting every error
//  3. Reject records that declare the reserved `VALUE` generic while
//     conversion setters are enabled
//  4. For each field, clone the record snapshot and apply the field's
//     attributes on top
//
// Attributes that are not configuration are forwarded onto the generated
// functions when the forwarding policy in effect at their position allows it.
package plan
