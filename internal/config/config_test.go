package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmce/tabglide/internal/anim"
	"github.com/calebmce/tabglide/internal/render"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tabglide.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[bar]
animated = false
fps = 60

[theme]
bar = "#222436"
backdrop = "#1a1b26"
muted = "#565f89"

[[tabs]]
id = "home"
icon = "H"
tint = "#7aa2f7"

[[tabs]]
id = "mail"
icon = "M"
tint = "#e0af68"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Animated())
	assert.Equal(t, 60, cfg.Bar.FPS)

	tabSet := cfg.TabSet()
	require.Len(t, tabSet, 2)
	assert.Equal(t, "home", tabSet[0].ID)
	assert.Equal(t, anim.MustHex("#7aa2f7"), tabSet[0].Tint)

	theme := cfg.RenderTheme()
	assert.Equal(t, anim.MustHex("#222436"), theme.Bar)
	assert.Equal(t, anim.MustHex("#1a1b26"), theme.Backdrop)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[[tabs]]
id = "only"
icon = "O"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Animated(), "animation defaults to on")
	assert.Equal(t, DefaultFPS, cfg.Bar.FPS)

	// A tab without a tint falls back to white.
	tabSet := cfg.TabSet()
	require.Len(t, tabSet, 1)
	assert.Equal(t, anim.White, tabSet[0].Tint)

	// Theme overrides absent: renderer defaults apply untouched.
	assert.Equal(t, render.DefaultTheme().Bar, cfg.RenderTheme().Bar)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"no tabs":       ``,
		"missing id":    "[[tabs]]\nicon = \"X\"\n",
		"duplicate ids": "[[tabs]]\nid = \"a\"\n[[tabs]]\nid = \"a\"\n",
		"bad tint":      "[[tabs]]\nid = \"a\"\ntint = \"#zzzzzz\"\n",
		"bad theme":     "[theme]\nbar = \"nope\"\n[[tabs]]\nid = \"a\"\n",
		"not toml":      "{{{{",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.validate())
	assert.True(t, cfg.Animated())
	assert.NotEmpty(t, cfg.TabSet())
}
