package config

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/meta"
)

// ForwardWhitelist lists the attributes forwarded unless disabled.
var ForwardWhitelist = []string{
	"doc", "cfg", "cfg_attr", "allow", "warn", "deny", "forbid",
	"deprecated", "inline", "cold", "target_feature",
}

// ForwardEntry is one explicit per-attribute override.
type ForwardEntry struct {
	Path  string `json:"path" yaml:"path" msgpack:"path"`
	State bool   `json:"state" yaml:"state" msgpack:"state"`
}

// Forward decides which non-configuration attributes are copied onto the
// generated functions. Overrides win over Default.
type Forward struct {
	Default bool
	fields  *linkedhashmap.Map // attribute path -> bool, in first-seen order
}

// DefaultForward returns the policy that forwards only ForwardWhitelist.
func DefaultForward() Forward {
	f := Forward{fields: linkedhashmap.New()}
	for _, name := range ForwardWhitelist {
		f.fields.Put(name, true)
	}

	return f
}

// Is reports whether an attribute with the given path is forwarded.
func (f Forward) Is(path string) bool {
	if f.fields != nil {
		if v, ok := f.fields.Get(path); ok {
			return v.(bool)
		}
	}

	return f.Default
}

// Clone returns a copy that shares no state with f.
func (f Forward) Clone() Forward {
	out := Forward{Default: f.Default, fields: linkedhashmap.New()}

	for _, e := range f.Entries() {
		out.fields.Put(e.Path, e.State)
	}

	return out
}

// Entries returns the explicit overrides in first-seen order.
func (f Forward) Entries() []ForwardEntry {
	if f.fields == nil {
		return nil
	}

	out := make([]ForwardEntry, 0, f.fields.Size())

	it := f.fields.Iterator()
	for it.Next() {
		out = append(out, ForwardEntry{Path: it.Key().(string), State: it.Value().(bool)})
	}

	return out
}

// Equal reports whether both policies forward the same attributes.
func (f Forward) Equal(o Forward) bool {
	if f.Default != o.Default {
		return false
	}

	a, b := f.Entries(), o.Entries()
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// IsForward reports whether a configuration item is, or contains, a
// forward directive: `forward`, `forward(...)`, or an `enable(...)` or
// `disable(...)` list naming one.
func IsForward(item *meta.Meta) bool {
	if item.Path.IsIdent(forwardWord) {
		return true
	}

	if item.Kind != meta.MetaList || !(item.Path.IsIdent(enableWord) || item.Path.IsIdent(disableWord)) {
		return false
	}

	for _, n := range item.Nested {
		if !n.IsLit() && n.Meta.Path.IsIdent(forwardWord) {
			return true
		}
	}

	return false
}

// Merge applies the forward directives of one configuration item. A bare
// `forward` replaces the default and clears every override; a list
// `forward(a, b)` records overrides and keeps the default. A top-level
// `forward` item enables.
func (f Forward) Merge(item *meta.Meta) (Forward, error) {
	out := f.Clone()

	if item.Path.IsIdent(forwardWord) {
		err := out.apply(true, item)

		return out, err
	}

	state := item.Path.IsIdent(enableWord)
	word := item.Path.Ident()

	var diag diagnostic.Diagnostics

	for _, n := range item.Nested {
		if n.IsLit() || !n.Meta.Path.IsIdent(forwardWord) {
			continue
		}

		if err := out.apply(state, n.Meta); err != nil {
			diag.Add(diagnostic.Wrap(err).At(word))
		}
	}

	if diag.HasErrors() {
		return f, diag.Err()
	}

	return out, nil
}

func (f *Forward) apply(state bool, m *meta.Meta) error {
	switch m.Kind {
	case meta.MetaPath:
		f.Default = state
		f.fields.Clear()

		return nil
	case meta.MetaList:
	default:
		return diagnostic.UnexpectedShape(m.Kind.String(), meta.MetaPath.String(), meta.MetaList.String()).
			WithSpan(m.Span).At(forwardWord)
	}

	var diag diagnostic.Diagnostics

	for _, n := range m.Nested {
		if n.IsLit() {
			diag.Add(diagnostic.UnexpectedLit(n.Lit.Kind.String()).WithSpan(n.Lit.Span).At(forwardWord))

			continue
		}

		if n.Meta.Kind != meta.MetaPath {
			diag.Add(diagnostic.UnexpectedShape(n.Meta.Kind.String(), meta.MetaPath.String()).WithSpan(n.Meta.Span).At(forwardWord))

			continue
		}

		f.fields.Put(n.Meta.Path.String(), state)
	}

	return diag.Err()
}
