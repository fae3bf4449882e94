// Package config provides the snake tuning constants. They ship as an embedded
// YAML document and are decoded once at startup.
package config

import "time"

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Rules  RulesConfig  `yaml:"rules"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// BoardConfig defines the playfield geometry in pixels.
type BoardConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	TileSize     int `yaml:"tile_size"`
	BorderWeight int `yaml:"border_weight"`
}

// TimingConfig defines the tick delay curve.
type TimingConfig struct {
	BaseDelayMS int `yaml:"base_delay_ms"`
	SpeedIncrMS int `yaml:"speed_incr_ms"`
	DelayMinMS  int `yaml:"delay_min_ms"`
	IdlePollMS  int `yaml:"idle_poll_ms"`
}

// BaseDelay returns the delay at length 1.
func (t TimingConfig) BaseDelay() time.Duration {
	return time.Duration(t.BaseDelayMS) * time.Millisecond
}

// SpeedIncr returns the delay removed per additional segment.
func (t TimingConfig) SpeedIncr() time.Duration {
	return time.Duration(t.SpeedIncrMS) * time.Millisecond
}

// DelayMin returns the delay floor.
func (t TimingConfig) DelayMin() time.Duration {
	return time.Duration(t.DelayMinMS) * time.Millisecond
}

// IdlePoll returns how often input is polled while the game is paused.
func (t TimingConfig) IdlePoll() time.Duration {
	return time.Duration(t.IdlePollMS) * time.Millisecond
}

// RulesConfig defines lives and the easy-mode grace rules.
type RulesConfig struct {
	Lives         int    `yaml:"lives"`
	EasyThreshold int    `yaml:"easy_threshold"`
	EasyKeyword   string `yaml:"easy_keyword"`
}

// ThemeConfig defines frame colors as hex strings and the body fade.
type ThemeConfig struct {
	SnakeTip      string `yaml:"snake_tip"`
	Border        string `yaml:"border"`
	Food          string `yaml:"food"`
	MainBG        string `yaml:"main_bg"`
	BG            string `yaml:"bg"`
	BodyGreen     int    `yaml:"body_green"`
	BodyFadeStep  int    `yaml:"body_fade_step"`
	BodyFadeFloor int    `yaml:"body_fade_floor"`
}
