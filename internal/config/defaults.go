package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/f2b.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings, used when the embedded
// file cannot be parsed.
func DefaultSettings() Settings {
	return Settings{
		DataPath: ".",
		SavePath: ".",
		Language: "EN",
		Voice:    "EN",
		Display:  "windowed",
		Screen: ScreenSettings{
			Width:    80,
			Height:   24,
			TickRate: 60,
		},
		Render: RenderSettings{
			TextureFilter: "linear",
			TextureScaler: "scale2x",
		},
		Cutscenes: CutsceneSettings{
			Table: [][]int{
				{47, 39, 13, 37, 53},
				{48, 44, 13},
			},
			Completion:  []int{48},
			DemoClosing: 43,
		},
		Server: ServerSettings{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
