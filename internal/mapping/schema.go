package mapping

// File is the top-level structure of a description file.
type File struct {
	// Name is the path the file was loaded from, used in spans.
	Name    string       `yaml:"-"`
	Records []RecordSpec `yaml:"records"`
}

// RecordSpec describes one record.
type RecordSpec struct {
	Ident Fragment `yaml:"ident"`
	// Kind is one of plan.RecordKindNames; empty means struct.
	Kind Fragment `yaml:"kind,omitempty"`
	// Visibility is the record's own visibility, used by `inherit`.
	Visibility Fragment `yaml:"visibility,omitempty"`
	// Generics is the parameter list, with or without angle brackets.
	Generics Fragment `yaml:"generics,omitempty"`
	// Where holds the where-clause predicates, with or without the keyword.
	Where  Fragment    `yaml:"where,omitempty"`
	Attrs  Fragments   `yaml:"attrs,omitempty"`
	Fields []FieldSpec `yaml:"fields,omitempty"`
}

// FieldSpec describes one named field.
type FieldSpec struct {
	Ident Fragment  `yaml:"ident"`
	Type  Fragment  `yaml:"type"`
	Attrs Fragments `yaml:"attrs,omitempty"`
}
