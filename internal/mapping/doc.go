// Package mapping loads record descriptions from YAML.
//
// A description file lists the records to generate accessors for, with
// each record's generics, attributes and fields written the way they
// appear in source:
//
//	records:
//	  - ident: Example
//	    kind: struct            # default struct
//	    visibility: pub         # the record's own visibility
//	    generics: "<'a, T: Clone>"
//	    where: "T: Default"
//	    attrs:
//	      - '#[shorthand(enable(into), rename("prefix_{}"))]'
//	      - '#[doc = " An example."]'
//	    fields:
//	      - ident: value
//	        type: Option<String>
//	        attrs: ['#[shorthand(disable(get))]']
//
// Every text fragment keeps its line and column, so diagnostics reported
// while parsing attributes, types and generics point into the file.
//
// A single attribute may be written as a plain string instead of a
// one-element list.
package mapping
