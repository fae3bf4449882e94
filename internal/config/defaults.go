package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded configuration.
// It mirrors defaults/snake.yaml and is used if the embedded copy cannot be decoded.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:        640,
			Height:       480,
			TileSize:     16,
			BorderWeight: 4,
		},
		Timing: TimingConfig{
			BaseDelayMS: 100,
			SpeedIncrMS: 1,
			DelayMinMS:  10,
			IdlePollMS:  10,
		},
		Rules: RulesConfig{
			Lives:         2,
			EasyThreshold: 64,
			EasyKeyword:   "easy",
		},
		Theme: ThemeConfig{
			SnakeTip:      "#ffffff",
			Border:        "#808080",
			Food:          "#ff0000",
			MainBG:        "#202020",
			BG:            "#101010",
			BodyGreen:     255,
			BodyFadeStep:  10,
			BodyFadeFloor: 32,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
