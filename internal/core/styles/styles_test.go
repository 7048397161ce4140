package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"gruvbox", "tokyo-night"}, ThemeNames())
}

func TestApply(t *testing.T) {
	t.Cleanup(func() { Apply(DefaultTheme) })

	Apply("gruvbox")
	gruvbox, ok := GetPalette("gruvbox")
	require.True(t, ok)
	assert.Equal(t, gruvbox, CurrentPalette)

	Apply("does-not-exist")
	tokyo, _ := GetPalette(DefaultTheme)
	assert.Equal(t, tokyo, CurrentPalette)
}

func TestGlamourStyle_UsesPalette(t *testing.T) {
	t.Cleanup(func() { Apply(DefaultTheme) })
	Apply("gruvbox")

	cfg := GlamourStyle()
	require.NotNil(t, cfg.H2.Color)
	assert.Equal(t, "#83a598", *cfg.H2.Color)
}
