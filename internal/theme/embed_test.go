package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEmbeddedTheme_Default(t *testing.T) {
	css, found := GetEmbeddedTheme("default")
	require.True(t, found, "default theme should be found")
	assert.Contains(t, css, "label.hint")
	assert.Contains(t, css, "label.hint.focused")
	assert.Contains(t, css, "@"+ColorLabelBackground)
	assert.Contains(t, css, "@"+ColorFocusedBackground)
}

func TestGetEmbeddedTheme_Outline(t *testing.T) {
	css, found := GetEmbeddedTheme("outline")
	require.True(t, found, "outline theme should be found")
	assert.Contains(t, css, "border")
	assert.Contains(t, css, "@"+ColorLabelText)
}

func TestGetEmbeddedTheme_NotFound(t *testing.T) {
	_, found := GetEmbeddedTheme("nonexistent")
	assert.False(t, found)
}

func TestGetEmbeddedPartial(t *testing.T) {
	for _, name := range []string{"_base.css", "_base", "base"} {
		css, found := GetEmbeddedPartial(name)
		require.True(t, found, name)
		assert.Contains(t, css, "label.hint")
	}
}

func TestListEmbeddedThemes(t *testing.T) {
	themes := ListEmbeddedThemes()
	assert.ElementsMatch(t, BundledThemes, themes)
	assert.NotContains(t, themes, "_base")
}

func TestIsEmbeddedTheme(t *testing.T) {
	assert.True(t, IsEmbeddedTheme("default"))
	assert.True(t, IsEmbeddedTheme("outline"))
	assert.False(t, IsEmbeddedTheme("_base"))
	assert.False(t, IsEmbeddedTheme("custom"))
}
