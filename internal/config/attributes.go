package config

import "github.com/creasty/defaults"

// Attributes is the effective value of every Key.
type Attributes struct {
	OptionAsRef       bool `default:"true" json:"option_as_ref" yaml:"option_as_ref" msgpack:"option_as_ref"`
	ConstFn           bool `json:"const_fn" yaml:"const_fn" msgpack:"const_fn"`
	PrimitiveCopy     bool `default:"true" json:"primitive_copy" yaml:"primitive_copy" msgpack:"primitive_copy"`
	Inline            bool `default:"true" json:"inline" yaml:"inline" msgpack:"inline"`
	MustUse           bool `json:"must_use" yaml:"must_use" msgpack:"must_use"`
	Copy              bool `json:"copy" yaml:"copy" msgpack:"copy"`
	Get               bool `default:"true" json:"get" yaml:"get" msgpack:"get"`
	Set               bool `default:"true" json:"set" yaml:"set" msgpack:"set"`
	IgnorePhantomData bool `default:"true" json:"ignore_phantomdata" yaml:"ignore_phantomdata" msgpack:"ignore_phantomdata"`
	Skip              bool `json:"skip" yaml:"skip" msgpack:"skip"`
	Rename            bool `default:"true" json:"rename" yaml:"rename" msgpack:"rename"`
	Into              bool `json:"into" yaml:"into" msgpack:"into"`
	ForwardAttributes bool `default:"true" json:"forward_attributes" yaml:"forward_attributes" msgpack:"forward_attributes"`
	ForwardEverything bool `json:"forward_everything" yaml:"forward_everything" msgpack:"forward_everything"`
	IgnoreUnderscore  bool `json:"ignore_underscore" yaml:"ignore_underscore" msgpack:"ignore_underscore"`
	TryInto           bool `json:"try_into" yaml:"try_into" msgpack:"try_into"`
	GetMut            bool `json:"get_mut" yaml:"get_mut" msgpack:"get_mut"`
	CollectionMagic   bool `json:"collection_magic" yaml:"collection_magic" msgpack:"collection_magic"`
	StripOption       bool `json:"strip_option" yaml:"strip_option" msgpack:"strip_option"`
	Clone             bool `json:"clone" yaml:"clone" msgpack:"clone"`
}

// DefaultAttributes returns the record-level starting values.
func DefaultAttributes() Attributes {
	var a Attributes

	defaults.MustSet(&a)

	return a
}

// Value returns the value of k. Unknown keys read as false.
func (a Attributes) Value(k Key) bool {
	if p := a.field(k); p != nil {
		return *p
	}

	return false
}

// Assign sets the value of k. Unknown keys are ignored.
func (a *Attributes) Assign(k Key, v bool) {
	if p := a.field(k); p != nil {
		*p = v
	}
}

func (a *Attributes) field(k Key) *bool {
	switch k {
	case KeyOptionAsRef:
		return &a.OptionAsRef
	case KeyConstFn:
		return &a.ConstFn
	case KeyPrimitiveCopy:
		return &a.PrimitiveCopy
	case KeyInline:
		return &a.Inline
	case KeyMustUse:
		return &a.MustUse
	case KeyCopy:
		return &a.Copy
	case KeyGet:
		return &a.Get
	case KeySet:
		return &a.Set
	case KeyIgnorePhantomData:
		return &a.IgnorePhantomData
	case KeySkip:
		return &a.Skip
	case KeyRename:
		return &a.Rename
	case KeyInto:
		return &a.Into
	case KeyForwardAttributes:
		return &a.ForwardAttributes
	case KeyForwardEverything:
		return &a.ForwardEverything
	case KeyIgnoreUnderscore:
		return &a.IgnoreUnderscore
	case KeyTryInto:
		return &a.TryInto
	case KeyGetMut:
		return &a.GetMut
	case KeyCollectionMagic:
		return &a.CollectionMagic
	case KeyStripOption:
		return &a.StripOption
	case KeyClone:
		return &a.Clone
	default:
		return nil
	}
}
