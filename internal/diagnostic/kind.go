package diagnostic

import "accessor-generator/internal/common"

// Kind classifies an Error.
type Kind int

const (
	KindCustom Kind = iota
	KindUnknownKey
	KindUnexpectedLit
	KindUnexpectedShape
	KindMissingField
	KindDuplicateKey
	KindRedundantKey
	KindReservedGenericName
	KindInvalidTemplate
	KindMultiple
)

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "custom"
	case KindUnknownKey:
		return "unknown_key"
	case KindUnexpectedLit:
		return "unexpected_lit"
	case KindUnexpectedShape:
		return "unexpected_shape"
	case KindMissingField:
		return "missing_field"
	case KindDuplicateKey:
		return "duplicate_key"
	case KindRedundantKey:
		return "redundant_key"
	case KindReservedGenericName:
		return "reserved_generic_name"
	case KindInvalidTemplate:
		return "invalid_template"
	case KindMultiple:
		return "multiple"
	default:
		return common.UnknownStr
	}
}

// TemplateReason says why a rename template was rejected.
type TemplateReason int

const (
	TemplateMissingMarker TemplateReason = iota
	TemplateTooManyMarkers
	TemplateInvalidChar
	TemplateReservedIdent
)

// String returns the snake_case name of the reason.
func (r TemplateReason) String() string {
	switch r {
	case TemplateMissingMarker:
		return "missing_marker"
	case TemplateTooManyMarkers:
		return "too_many_markers"
	case TemplateInvalidChar:
		return "invalid_char"
	case TemplateReservedIdent:
		return "reserved_ident"
	default:
		return common.UnknownStr
	}
}
