// Package diagnostic defines the error model shared by every stage of the
// accessor generator.
//
// Errors are values of *Error. Each carries a Kind, an optional Span
// pointing into the configuration source, and the chain of configuration
// keys that led to it. Independent failures are combined with Multiple,
// which flattens nested groups so callers always see a flat list.
//
// Diagnostics accumulates errors while a stage keeps going, so that one
// run reports every problem instead of stopping at the first.
package diagnostic
