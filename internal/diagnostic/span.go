package diagnostic

import (
	"cmp"
	"fmt"
	"strings"
)

// Span locates a fragment of configuration text. Line and Column are
// 1-based; a zero Line means the location is unknown.
type Span struct {
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	Line   int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column int    `json:"column,omitempty" yaml:"column,omitempty"`
}

// IsValid reports whether the span points at a line.
func (s Span) IsValid() bool {
	return s.Line > 0
}

// Offset returns the span moved by a position inside the fragment it points
// at. Only single-line fragments are tracked, so the line never changes.
func (s Span) Offset(columns int) Span {
	if !s.IsValid() {
		return s
	}

	s.Column += columns

	return s
}

// Compare orders spans by position. Unknown spans sort after known ones.
func (s Span) Compare(other Span) int {
	switch {
	case s.IsValid() && !other.IsValid():
		return -1
	case !s.IsValid() && other.IsValid():
		return 1
	case !s.IsValid():
		return 0
	}

	return cmp.Or(
		strings.Compare(s.File, other.File),
		cmp.Compare(s.Line, other.Line),
		cmp.Compare(s.Column, other.Column),
	)
}

func (s Span) String() string {
	switch {
	case !s.IsValid():
		return s.File
	case s.File == "":
		return fmt.Sprintf("%d:%d", s.Line, s.Column)
	default:
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
	}
}
