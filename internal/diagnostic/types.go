package diagnostic

import (
	"fmt"
	"strings"

	"accessor-generator/internal/match"
)

// Error is a single structured failure, or a flat group of them when Kind
// is KindMultiple.
type Error struct {
	Kind Kind
	// Span points at the configuration fragment that caused the error.
	Span Span
	// Path is the chain of configuration keys that led here, outermost first.
	Path []string
	// Found is the offending text: an unknown key, a literal kind, a meta
	// shape, a template or a template character.
	Found string
	// Expected lists the alternatives that would have been accepted.
	Expected []string
	// Key names the configuration key a duplicate, redundant or missing
	// error is about.
	Key string
	// Enabled is the state a redundant key already had.
	Enabled bool
	// Reason refines KindInvalidTemplate.
	Reason TemplateReason
	// Position is the 1-based character position of an invalid template char.
	Position int
	// Message is the text of a custom error.
	Message string

	errs  []*Error
	cause error
}

// UnknownKey reports a configuration key outside the recognized vocabulary.
func UnknownKey(found string, alternatives []string) *Error {
	return &Error{Kind: KindUnknownKey, Found: found, Expected: alternatives}
}

// UnexpectedLit reports a literal where another literal kind, or an
// identifier, was expected.
func UnexpectedLit(found string, expected ...string) *Error {
	return &Error{Kind: KindUnexpectedLit, Found: found, Expected: expected}
}

// UnexpectedShape reports a meta item of the wrong form.
func UnexpectedShape(found string, expected ...string) *Error {
	return &Error{Kind: KindUnexpectedShape, Found: found, Expected: expected}
}

// MissingField reports a required key that was not given.
func MissingField(key string) *Error {
	return &Error{Kind: KindMissingField, Key: key}
}

// DuplicateKey reports a key set twice for the same target.
func DuplicateKey(key string) *Error {
	return &Error{Kind: KindDuplicateKey, Key: key}
}

// RedundantKey reports a key set to the value it already had.
func RedundantKey(key string, enabled bool) *Error {
	return &Error{Kind: KindRedundantKey, Key: key, Enabled: enabled}
}

// ReservedGenericName reports a record generic that collides with the
// generic parameter used by conversion setters.
func ReservedGenericName(name string) *Error {
	return &Error{Kind: KindReservedGenericName, Found: name}
}

// InvalidTemplate reports a rename template without exactly one marker.
func InvalidTemplate(template string, reason TemplateReason) *Error {
	return &Error{Kind: KindInvalidTemplate, Found: template, Reason: reason}
}

// InvalidTemplateChar reports one illegal character of a rename template.
func InvalidTemplateChar(c rune, position int) *Error {
	return &Error{Kind: KindInvalidTemplate, Reason: TemplateInvalidChar, Found: string(c), Position: position}
}

// ReservedIdent reports a rename template that produces a keyword.
func ReservedIdent(ident string) *Error {
	return &Error{Kind: KindInvalidTemplate, Reason: TemplateReservedIdent, Found: ident}
}

// Custom builds an error from a formatted message.
func Custom(format string, args ...any) *Error {
	return &Error{Kind: KindCustom, Message: fmt.Sprintf(format, args...)}
}

// Wrap turns an arbitrary error into a custom one, keeping it reachable
// through errors.Is and errors.As. Errors that already are *Error are
// returned unchanged.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		return e
	}

	return &Error{Kind: KindCustom, Message: err.Error(), cause: err}
}

// WithSpan returns a copy located at span. Children of a group that have
// no location of their own inherit it.
func (e *Error) WithSpan(span Span) *Error {
	out := e.clone()
	if out.Kind == KindMultiple {
		for i, child := range out.errs {
			if !child.Span.IsValid() {
				out.errs[i] = child.WithSpan(span)
			}
		}

		return out
	}

	out.Span = span

	return out
}

// At returns a copy whose key path starts with segment.
func (e *Error) At(segment string) *Error {
	out := e.clone()
	if out.Kind == KindMultiple {
		for i, child := range out.errs {
			out.errs[i] = child.At(segment)
		}

		return out
	}

	out.Path = append([]string{segment}, out.Path...)

	return out
}

// Unwrap exposes group members and wrapped causes to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	switch {
	case e.Kind == KindMultiple:
		out := make([]error, len(e.errs))
		for i, child := range e.errs {
			out[i] = child
		}

		return out
	case e.cause != nil:
		return []error{e.cause}
	default:
		return nil
	}
}

// Is matches another *Error of the same kind and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind == KindMultiple || e.Kind == KindMultiple {
		return false
	}

	return t.Kind == e.Kind && t.Text() == e.Text()
}

// Text is the bare message, without location or key path.
func (e *Error) Text() string {
	switch e.Kind {
	case KindUnknownKey:
		return unknownKeyText(e.Found, e.Expected)
	case KindUnexpectedLit:
		return withExpected(fmt.Sprintf("unexpected literal type `%s`", e.Found), e.Expected)
	case KindUnexpectedShape:
		return withExpected(fmt.Sprintf("unexpected meta-item format `%s`", e.Found), e.Expected)
	case KindMissingField:
		return fmt.Sprintf("missing field `%s`", e.Key)
	case KindDuplicateKey:
		return fmt.Sprintf("duplicate field `%s`", e.Key)
	case KindRedundantKey:
		return fmt.Sprintf("redundant field `%s`, it is already %s", e.Key, stateName(e.Enabled))
	case KindReservedGenericName:
		return fmt.Sprintf("a generic called `%s` is not supported, please rename it.", e.Found)
	case KindInvalidTemplate:
		return templateText(e)
	case KindMultiple:
		parts := make([]string, len(e.errs))
		for i, child := range e.errs {
			parts[i] = child.Text()
		}

		return strings.Join(parts, "\n")
	default:
		return e.Message
	}
}

// Error renders the error as "location: key.path: message", one line per
// member for a group.
func (e *Error) Error() string {
	if e.Kind == KindMultiple {
		lines := make([]string, len(e.errs))
		for i, child := range e.errs {
			lines[i] = child.Error()
		}

		return strings.Join(lines, "\n")
	}

	var prefix []string
	if s := e.Span.String(); s != "" {
		prefix = append(prefix, s)
	}

	if len(e.Path) > 0 {
		prefix = append(prefix, strings.Join(e.Path, "."))
	}

	if len(prefix) == 0 {
		return e.Text()
	}

	return strings.Join(prefix, ": ") + ": " + e.Text()
}

func (e *Error) clone() *Error {
	out := *e
	out.Path = append([]string(nil), e.Path...)
	out.errs = append([]*Error(nil), e.errs...)

	return &out
}

func unknownKeyText(found string, alternatives []string) string {
	text := fmt.Sprintf("unknown field `%s`", found)
	if hint := match.Suggest(found, alternatives); hint != "" && hint != found {
		text += fmt.Sprintf(", did you mean `%s`?", hint)
	}

	return withExpected(text, alternatives)
}

func withExpected(text string, expected []string) string {
	switch len(expected) {
	case 0:
		return text
	case 1:
		return fmt.Sprintf("%s, expected `%s`", text, expected[0])
	default:
		return fmt.Sprintf("%s, expected one of `%s`", text, strings.Join(expected, "`, `"))
	}
}

func templateText(e *Error) string {
	switch e.Reason {
	case TemplateMissingMarker:
		return fmt.Sprintf("missing `{}` in format string `%s`", e.Found)
	case TemplateTooManyMarkers:
		return fmt.Sprintf("too many `{}` in format string `%s`, expected exactly one", e.Found)
	case TemplateInvalidChar:
		return fmt.Sprintf("invalid character in format string `%s` at position %d", e.Found, e.Position)
	case TemplateReservedIdent:
		return fmt.Sprintf("`%s` is a reserved keyword and cannot be used as a function name", e.Found)
	default:
		return fmt.Sprintf("invalid format string `%s`", e.Found)
	}
}

func stateName(enabled bool) string {
	if enabled {
		return "enabled"
	}

	return "disabled"
}
