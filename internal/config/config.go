// Package config provides YAML-based settings loading and the option
// tables (languages, level aliases, display modes) shared by the CLI.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/f2b/internal/core"
	"github.com/vovakirdan/f2b/internal/cutscene"
)

// Settings is the on-disk configuration file.
type Settings struct {
	DataPath  string           `yaml:"data_path"`
	SavePath  string           `yaml:"save_path"`
	Language  string           `yaml:"language"`
	Voice     string           `yaml:"voice"`
	Display   string           `yaml:"display"`
	Screen    ScreenSettings   `yaml:"screen"`
	Render    RenderSettings   `yaml:"render"`
	Game      GameSettings     `yaml:"game"`
	Cutscenes CutsceneSettings `yaml:"cutscenes"`
	Server    ServerSettings   `yaml:"server"`
}

// ScreenSettings defines the character grid and tick rate.
type ScreenSettings struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// RenderSettings are passed through to the renderer.
type RenderSettings struct {
	Fog           bool   `yaml:"fog"`
	TextureFilter string `yaml:"texture_filter"`
	TextureScaler string `yaml:"texture_scaler"`
}

// GameSettings are passed through to the simulation engine.
type GameSettings struct {
	PlayDemo  bool   `yaml:"play_demo"`
	Subtitles bool   `yaml:"subtitles"`
	Level     int    `yaml:"level"`
	SoundFont string `yaml:"soundfont"`
	Mouse     bool   `yaml:"mouse"`
	Touch     bool   `yaml:"touch"`
}

// CutsceneSettings overrides the fallback table and completion clips.
type CutsceneSettings struct {
	Table       [][]int `yaml:"table"`
	Completion  []int   `yaml:"completion"`
	DemoClosing int     `yaml:"demo_closing"`
}

// ServerSettings configures the SSH server.
type ServerSettings struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Runtime converts the settings into the value handed to the run loop.
// Unknown languages fall back to English, "auto" follows the system locale
// and the voice is resolved against the text language.
func (s Settings) Runtime() (core.RuntimeConfig, error) {
	cfg := core.DefaultConfig()

	if s.DataPath != "" {
		cfg.DataPath = s.DataPath
	}
	if s.SavePath != "" {
		cfg.SavePath = s.SavePath
	}
	if strings.EqualFold(s.Language, "auto") {
		cfg.Language = LanguageFromLocale(SystemLocale())
	} else {
		cfg.Language = ParseLanguage(s.Language)
	}
	cfg.Voice = ParseVoice(s.Voice, cfg.Language)

	display, err := ParseDisplayMode(s.Display)
	if err != nil {
		return cfg, err
	}
	cfg.Display = display

	if s.Screen.Width > 0 {
		cfg.ScreenW = s.Screen.Width
	}
	if s.Screen.Height > 0 {
		cfg.ScreenH = s.Screen.Height
	}
	if s.Screen.TickRate > 0 {
		cfg.TickRate = s.Screen.TickRate
	}

	cfg.Render.Fog = s.Render.Fog
	if s.Render.TextureFilter != "" {
		cfg.Render.TextureFilter = s.Render.TextureFilter
	}
	if s.Render.TextureScaler != "" {
		cfg.Render.TextureScaler = s.Render.TextureScaler
	}

	if s.Game.Level < 0 || s.Game.Level >= len(LevelAliases) {
		return cfg, fmt.Errorf("config: level %d out of range [0,%d)", s.Game.Level, len(LevelAliases))
	}
	cfg.Game = core.GameParams{
		PlayDemo:  s.Game.PlayDemo,
		Subtitles: s.Game.Subtitles,
		LevelNum:  s.Game.Level,
		SoundFont: s.Game.SoundFont,
		MouseMode: s.Game.Mouse,
		TouchMode: s.Game.Touch,
	}
	return cfg, nil
}

// CutsceneTable builds the fallback table. An empty table section selects
// the built-in chains.
func (s Settings) CutsceneTable() (*cutscene.Table, error) {
	if len(s.Cutscenes.Table) == 0 {
		return cutscene.DefaultTable(), nil
	}
	chains := make([][]cutscene.ClipID, len(s.Cutscenes.Table))
	for i, chain := range s.Cutscenes.Table {
		chains[i] = clipIDs(chain)
	}
	t, err := cutscene.NewTable(chains)
	if err != nil {
		return nil, fmt.Errorf("config: cutscene table: %w", err)
	}
	return t, nil
}

// CutsceneOptions returns the sequencer options. demo enables the demo
// closing clip as a completion clip.
func (s Settings) CutsceneOptions(demo bool) cutscene.Options {
	opts := cutscene.DefaultOptions()
	if len(s.Cutscenes.Completion) > 0 {
		opts.CompletionClips = clipIDs(s.Cutscenes.Completion)
	}
	if s.Cutscenes.DemoClosing > 0 {
		opts.DemoClosingClip = cutscene.ClipID(s.Cutscenes.DemoClosing)
	}
	opts.Demo = demo
	return opts
}

func clipIDs(ids []int) []cutscene.ClipID {
	out := make([]cutscene.ClipID, len(ids))
	for i, id := range ids {
		out[i] = cutscene.ClipID(id)
	}
	return out
}
