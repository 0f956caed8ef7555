// Package config holds the typed values that configuration fragments parse
// into and the parsers for each fragment kind.
//
// A record or field is configured through `#[shorthand(...)]` attributes
// whose items are `enable(...)`, `disable(...)`, `rename(...)`,
// `visibility(...)` and `verify(...)`. Enable and disable toggle the
// boolean Attributes through a Builder, which detects duplicate and
// redundant settings. Rename, Visibility, Verify and Forward each have
// their own parser.
package config
