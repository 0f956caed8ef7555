package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessor-generator/internal/diagnostic"
)

func TestDefaultForward(t *testing.T) {
	f := DefaultForward()

	for _, name := range ForwardWhitelist {
		assert.True(t, f.Is(name), name)
	}

	assert.False(t, f.Is("derive"))
	assert.False(t, f.Is("serde"))
}

func TestIsForward(t *testing.T) {
	tests := []struct {
		fragment string
		expected bool
	}{
		{fragment: "enable(forward)", expected: true},
		{fragment: "disable(forward(doc))", expected: true},
		{fragment: "enable(into, forward(doc))", expected: true},
		{fragment: "forward(serde)", expected: true},
		{fragment: "enable(into)"},
		{fragment: `rename("forward_{}")`},
		{fragment: "visibility(inherit)"},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsForward(mustMeta(t, tt.fragment)))
		})
	}
}

func TestForwardMerge(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		forwarded []string
		blocked   []string
	}{
		{
			name:      "disable one whitelisted attribute",
			fragments: []string{"disable(forward(doc))"},
			forwarded: []string{"allow", "cfg"},
			blocked:   []string{"doc", "derive"},
		},
		{
			name:      "enable a custom attribute",
			fragments: []string{"enable(forward(serde, clippy::x))"},
			forwarded: []string{"serde", "clippy::x", "doc"},
			blocked:   []string{"derive"},
		},
		{
			name:      "enable everything",
			fragments: []string{"enable(forward)"},
			forwarded: []string{"derive", "doc"},
		},
		{
			name:      "disable everything clears the whitelist",
			fragments: []string{"disable(forward)"},
			blocked:   []string{"doc", "allow"},
		},
		{
			name:      "later overrides win",
			fragments: []string{"disable(forward(doc))", "enable(forward(doc))"},
			forwarded: []string{"doc"},
		},
		{
			name:      "override after a new default",
			fragments: []string{"disable(forward)", "enable(forward(doc))"},
			forwarded: []string{"doc"},
			blocked:   []string{"allow"},
		},
		{
			name:      "top-level forward enables",
			fragments: []string{"forward(serde)"},
			forwarded: []string{"serde"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := DefaultForward()

			for _, fragment := range tt.fragments {
				var err error

				f, err = f.Merge(mustMeta(t, fragment))
				require.NoError(t, err)
			}

			for _, name := range tt.forwarded {
				assert.True(t, f.Is(name), name)
			}

			for _, name := range tt.blocked {
				assert.False(t, f.Is(name), name)
			}
		})
	}
}

func TestForwardMergeDoesNotMutate(t *testing.T) {
	base := DefaultForward()

	out, err := base.Merge(mustMeta(t, "disable(forward(doc))"))
	require.NoError(t, err)

	assert.True(t, base.Is("doc"))
	assert.False(t, out.Is("doc"))
	assert.False(t, base.Equal(out))
	assert.True(t, base.Equal(DefaultForward()))
}

func TestForwardMergeErrors(t *testing.T) {
	base := DefaultForward()

	out, err := base.Merge(mustMeta(t, `enable(forward("doc", x = 1))`))
	assert.Equal(t, []diagnostic.Kind{diagnostic.KindUnexpectedLit, diagnostic.KindUnexpectedShape}, kinds(err))
	assert.True(t, out.Equal(base))

	errs := diagnostic.Flatten(err)
	require.Len(t, errs, 2)
	assert.Equal(t, []string{"enable", "forward"}, errs[0].Path)
}

func TestForwardEntries(t *testing.T) {
	f, err := DefaultForward().Merge(mustMeta(t, "disable(forward(doc, serde))"))
	require.NoError(t, err)

	entries := f.Entries()
	assert.Equal(t, ForwardEntry{Path: "doc", State: false}, entries[0])
	assert.Equal(t, ForwardEntry{Path: "serde", State: false}, entries[len(entries)-1])
	assert.Len(t, entries, len(ForwardWhitelist)+1)
}
