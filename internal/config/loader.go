package config

import (
	"bytes"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Load returns the embedded configuration.
// Falls back to DefaultSnakeConfig if the embedded YAML is unusable.
func Load() SnakeConfig {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		return DefaultSnakeConfig()
	}
	return cfg
}

// Parse decodes and validates a YAML document.
// Unknown keys are rejected so typos do not silently fall back to zero values.
func Parse(data []byte) (SnakeConfig, error) {
	var cfg SnakeConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	b := c.Board
	if b.TileSize <= 0 {
		return fmt.Errorf("config: tile_size must be positive, got %d", b.TileSize)
	}
	if b.Width <= 0 || b.Width%b.TileSize != 0 {
		return fmt.Errorf("config: width %d is not a positive multiple of tile_size %d", b.Width, b.TileSize)
	}
	if b.Height <= 0 || b.Height%b.TileSize != 0 {
		return fmt.Errorf("config: height %d is not a positive multiple of tile_size %d", b.Height, b.TileSize)
	}
	if b.BorderWeight < 0 || b.BorderWeight > b.TileSize {
		return fmt.Errorf("config: border_weight %d outside [0, %d]", b.BorderWeight, b.TileSize)
	}

	t := c.Timing
	if t.DelayMinMS <= 0 {
		return fmt.Errorf("config: delay_min_ms must be positive, got %d", t.DelayMinMS)
	}
	if t.BaseDelayMS < t.DelayMinMS {
		return fmt.Errorf("config: base_delay_ms %d below delay_min_ms %d", t.BaseDelayMS, t.DelayMinMS)
	}
	if t.SpeedIncrMS < 0 {
		return fmt.Errorf("config: speed_incr_ms must not be negative, got %d", t.SpeedIncrMS)
	}
	if t.IdlePollMS <= 0 {
		return fmt.Errorf("config: idle_poll_ms must be positive, got %d", t.IdlePollMS)
	}

	r := c.Rules
	if r.Lives < 1 {
		return fmt.Errorf("config: lives must be at least 1, got %d", r.Lives)
	}
	if r.EasyThreshold < 1 {
		return fmt.Errorf("config: easy_threshold must be at least 1, got %d", r.EasyThreshold)
	}
	if r.EasyKeyword == "" {
		return fmt.Errorf("config: easy_keyword must not be empty")
	}

	th := c.Theme
	if _, err := th.Colors(); err != nil {
		return err
	}
	if th.BodyGreen < 0 || th.BodyGreen > 255 {
		return fmt.Errorf("config: body_green %d outside [0, 255]", th.BodyGreen)
	}
	if th.BodyFadeFloor < 0 || th.BodyFadeFloor > th.BodyGreen {
		return fmt.Errorf("config: body_fade_floor %d outside [0, %d]", th.BodyFadeFloor, th.BodyGreen)
	}
	if th.BodyFadeStep < 0 {
		return fmt.Errorf("config: body_fade_step must not be negative, got %d", th.BodyFadeStep)
	}

	return nil
}

// ParseColor converts a "#rrggbb" string to a core.Color.
func ParseColor(hex string) (core.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return core.RGB(r, g, b), nil
}

// Colors holds the decoded theme colors.
type Colors struct {
	SnakeTip core.Color
	Border   core.Color
	Food     core.Color
	MainBG   core.Color
	BG       core.Color
}

// Colors decodes every hex color of the theme.
func (t ThemeConfig) Colors() (Colors, error) {
	var out Colors
	fields := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"snake_tip", t.SnakeTip, &out.SnakeTip},
		{"border", t.Border, &out.Border},
		{"food", t.Food, &out.Food},
		{"main_bg", t.MainBG, &out.MainBG},
		{"bg", t.BG, &out.BG},
	}
	for _, f := range fields {
		c, err := ParseColor(f.hex)
		if err != nil {
			return Colors{}, fmt.Errorf("config: theme %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return out, nil
}
