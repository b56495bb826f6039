package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemLabels(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantLabel string
	}{
		{"plain value", "jenkins-job", "jenkins-job"},
		{"url path", "https://github.com/acme/widgets", "widgets"},
		{"trailing slash", "https://github.com/acme/widgets/", "widgets"},
		{"multiple trailing slashes", "https://example.com/a/b//", "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := ParseItem(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, item.Label)
			assert.Equal(t, tt.raw, item.Value, "value must be kept verbatim")
		})
	}
}

func TestParseItemEmptyValue(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := ParseItem(raw)
		require.ErrorIs(t, err, ErrEmptyValue)
	}
}

func TestNewItemEmptyValue(t *testing.T) {
	_, err := NewItem("label", "  ", "label")
	require.ErrorIs(t, err, ErrEmptyValue)
}

func TestNormalizeHaystack(t *testing.T) {
	item, err := ParseItem("https://github.com/Acme_Corp/My_Widgets")
	require.NoError(t, err)

	assert.Equal(t, "https:  github.com acme corp my widgets", item.Haystack)

	// The haystack never contains uppercase ASCII, slashes or underscores.
	assert.Equal(t, strings.ToLower(item.Haystack), item.Haystack)
	assert.NotContains(t, item.Haystack, "/")
	assert.NotContains(t, item.Haystack, "_")
}

func TestNewItemUsesSearchableForHaystack(t *testing.T) {
	item, err := NewItem("build-all", "https://ci.example.com/job/build-all/", "Build_All")
	require.NoError(t, err)

	assert.Equal(t, "build all", item.Haystack)
	assert.Equal(t, "build-all", item.Label)
}

func TestSameComparesByValue(t *testing.T) {
	a := Item{Label: "x", Value: "https://example.com/x", Haystack: "x"}
	b := Item{Label: "renamed", Value: "https://example.com/x", Haystack: "renamed"}
	c := Item{Label: "x", Value: "https://example.com/y", Haystack: "x"}

	assert.True(t, a.Same(b))
	assert.False(t, a.Same(c))
}
