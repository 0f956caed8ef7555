package diagnostic

import "slices"

// Multiple combines errors into one. Nil entries are dropped and nested
// groups are flattened; a single survivor is returned as itself and no
// survivors yield nil.
func Multiple(errs ...error) error {
	flat := flatten(errs)

	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return &Error{Kind: KindMultiple, errs: flat}
	}
}

// Flatten lists the individual errors err stands for.
func Flatten(err error) []*Error {
	return flatten([]error{err})
}

// Equal reports whether a and b describe the same errors in the same order.
// A group of one compares equal to its member.
func Equal(a, b error) bool {
	fa, fb := Flatten(a), Flatten(b)

	return slices.EqualFunc(fa, fb, func(x, y *Error) bool {
		return x.Kind == y.Kind && x.Span == y.Span && x.Text() == y.Text() && slices.Equal(x.Path, y.Path)
	})
}

func flatten(errs []error) []*Error {
	var out []*Error

	for _, err := range errs {
		if err == nil {
			continue
		}

		e := Wrap(err)
		if e == nil {
			continue
		}

		if e.Kind == KindMultiple {
			out = append(out, flatten(e.Unwrap())...)

			continue
		}

		out = append(out, e)
	}

	return out
}

// Diagnostics collects errors from a stage that keeps going after failures.
type Diagnostics struct {
	Errors []*Error
}

// Add records err, flattening groups. Nil is ignored.
func (d *Diagnostics) Add(err error) {
	d.Errors = append(d.Errors, Flatten(err)...)
}

// AddAt records err located at span and prefixed with the key path.
func (d *Diagnostics) AddAt(err error, span Span, path ...string) {
	for _, e := range Flatten(err) {
		if !e.Span.IsValid() {
			e = e.WithSpan(span)
		}

		for i := len(path) - 1; i >= 0; i-- {
			e = e.At(path[i])
		}

		d.Errors = append(d.Errors, e)
	}
}

// HasErrors returns true if any error was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends the errors of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
}

// Sort orders the recorded errors by span, keeping the recording order of
// errors at the same position.
func (d *Diagnostics) Sort() {
	slices.SortStableFunc(d.Errors, func(a, b *Error) int {
		return a.Span.Compare(b.Span)
	})
}

// Err returns the recorded errors as one error, or nil.
func (d *Diagnostics) Err() error {
	errs := make([]error, len(d.Errors))
	for i, e := range d.Errors {
		errs[i] = e
	}

	return Multiple(errs...)
}
