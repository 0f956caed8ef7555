package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/meta"
)

func mustMeta(t *testing.T, text string) *meta.Meta {
	t.Helper()

	m, err := meta.ParseMeta(text, diagnostic.Span{})
	require.NoError(t, err, text)

	return m
}

func kinds(err error) []diagnostic.Kind {
	var out []diagnostic.Kind
	for _, e := range diagnostic.Flatten(err) {
		out = append(out, e.Kind)
	}

	return out
}
