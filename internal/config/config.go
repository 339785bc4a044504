// Package config loads the widget's TOML configuration: the tab set, the
// color theme and the animation settings. Missing fields fall back to
// defaults; structural problems (no tabs, duplicate ids, bad colors) are
// load errors.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/calebmce/tabglide/internal/anim"
	"github.com/calebmce/tabglide/internal/render"
	"github.com/calebmce/tabglide/internal/tabs"
)

// Default animation settings.
const (
	DefaultFPS = 30
)

// Config is the decoded configuration file.
type Config struct {
	Bar   BarSettings   `toml:"bar"`
	Theme ThemeSettings `toml:"theme"`
	Tabs  []TabSettings `toml:"tabs"`
}

// BarSettings controls animation behavior.
type BarSettings struct {
	// Animated disables all timed transitions when false; every
	// selection snaps.
	Animated *bool `toml:"animated"`

	// FPS is the frame rate driving the sequencer while transitions run.
	FPS int `toml:"fps"`
}

// ThemeSettings are hex color overrides for the renderer palette.
type ThemeSettings struct {
	Bar      string `toml:"bar"`
	Backdrop string `toml:"backdrop"`
	Muted    string `toml:"muted"`
}

// TabSettings describes one tab entry.
type TabSettings struct {
	ID   string `toml:"id"`
	Icon string `toml:"icon"`
	Tint string `toml:"tint"`
}

// Default returns the built-in configuration used when no file is given.
func Default() Config {
	yes := true
	return Config{
		Bar: BarSettings{Animated: &yes, FPS: DefaultFPS},
		Tabs: []TabSettings{
			{ID: "home", Icon: "⌂", Tint: "#7aa2f7"},
			{ID: "search", Icon: "?", Tint: "#9ece6a"},
			{ID: "mail", Icon: "@", Tint: "#e0af68"},
			{ID: "alerts", Icon: "!", Tint: "#f7768e"},
			{ID: "profile", Icon: "&", Tint: "#bb9af7"},
		},
	}
}

// Load reads and validates a configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Bar.Animated == nil {
		yes := true
		c.Bar.Animated = &yes
	}
	if c.Bar.FPS <= 0 {
		c.Bar.FPS = DefaultFPS
	}
}

func (c *Config) validate() error {
	if len(c.Tabs) == 0 {
		return fmt.Errorf("no tabs configured")
	}
	seen := make(map[string]bool, len(c.Tabs))
	for i, t := range c.Tabs {
		if t.ID == "" {
			return fmt.Errorf("tab %d has no id", i)
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate tab id %q", t.ID)
		}
		seen[t.ID] = true
		if t.Tint != "" {
			if _, err := anim.ParseHex(t.Tint); err != nil {
				return fmt.Errorf("tab %q: %w", t.ID, err)
			}
		}
	}
	for name, v := range map[string]string{
		"theme.bar":      c.Theme.Bar,
		"theme.backdrop": c.Theme.Backdrop,
		"theme.muted":    c.Theme.Muted,
	} {
		if v == "" {
			continue
		}
		if _, err := anim.ParseHex(v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Animated reports whether transitions are enabled.
func (c Config) Animated() bool {
	return c.Bar.Animated == nil || *c.Bar.Animated
}

// TabSet converts the configured tabs to the widget's tab model. Tabs
// without a tint fall back to white.
func (c Config) TabSet() []tabs.Tab {
	out := make([]tabs.Tab, len(c.Tabs))
	for i, t := range c.Tabs {
		tint := anim.White
		if t.Tint != "" {
			tint = anim.MustHex(t.Tint)
		}
		out[i] = tabs.Tab{ID: t.ID, Icon: t.Icon, Tint: tint}
	}
	return out
}

// RenderTheme builds the renderer palette, starting from the defaults and
// applying any configured overrides.
func (c Config) RenderTheme() render.Theme {
	theme := render.DefaultTheme()
	if c.Theme.Bar != "" {
		theme.Bar = anim.MustHex(c.Theme.Bar)
	}
	if c.Theme.Backdrop != "" {
		theme.Backdrop = anim.MustHex(c.Theme.Backdrop)
	}
	if c.Theme.Muted != "" {
		theme.Muted = anim.MustHex(c.Theme.Muted)
	}
	return theme
}
