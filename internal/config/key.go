package config

//go:generate go tool stringer -type=Key -linecomment -output=key_string.go

// Key is a boolean configuration flag toggled by enable(...) and disable(...).
type Key int

const (
	_ Key = iota // zero value marks an unknown key

	KeyOptionAsRef       // option_as_ref
	KeyConstFn           // const_fn
	KeyPrimitiveCopy     // primitive_copy
	KeyInline            // inline
	KeyMustUse           // must_use
	KeyCopy              // copy
	KeyGet               // get
	KeySet               // set
	KeyIgnorePhantomData // ignore_phantomdata
	KeySkip              // skip
	KeyRename            // rename
	KeyInto              // into
	KeyForwardAttributes // forward_attributes
	KeyForwardEverything // forward_everything
	KeyIgnoreUnderscore  // ignore_underscore
	KeyTryInto           // try_into
	KeyGetMut            // get_mut
	KeyCollectionMagic   // collection_magic
	KeyStripOption       // strip_option
	KeyClone             // clone

	// KeyTotal is the number of keys plus the invalid zero value.
	KeyTotal = int(iota)
)

var (
	keyNames  []string
	keyByName map[string]Key
)

func init() {
	keyByName = make(map[string]Key, KeyTotal-1)
	for k := KeyOptionAsRef; int(k) < KeyTotal; k++ {
		keyNames = append(keyNames, k.String())
		keyByName[k.String()] = k
	}
}

// ParseKey returns the key spelled name. Matching is case-sensitive.
func ParseKey(name string) (Key, bool) {
	k, ok := keyByName[name]

	return k, ok
}

// KeyNames lists every key name in declaration order.
func KeyNames() []string {
	return append([]string(nil), keyNames...)
}

// IsLegacyForward reports whether k is one of the attribute-forwarding
// switches that predate forward(...). They may be set any number of times.
func (k Key) IsLegacyForward() bool {
	return k == KeyForwardAttributes || k == KeyForwardEverything
}
