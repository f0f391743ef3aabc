package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/vovakirdan/f2b/internal/config"
	"github.com/vovakirdan/f2b/internal/core"
)

// runOptions holds the flags of the root command. Only flags set on the
// command line override the settings file.
type runOptions struct {
	dataPath      string
	savePath      string
	language      string
	voice         string
	level         string
	altLevel      string
	initState     string
	soundFont     string
	textureFilter string
	textureScaler string
	fps           int
	playDemo      bool
	subtitles     bool
	fullscreen    bool
	fullscreenAR  bool
	fog           bool
	mouse         bool
	touch         bool
}

func (o *runOptions) bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.dataPath, "datapath", ".", "Directory holding the data files")
	fs.StringVar(&o.savePath, "savepath", ".", "Directory for saves and screenshots")
	fs.StringVar(&o.language, "language", "EN", "Text language (EN, FR, GR, SP, IT, or auto for the system locale)")
	fs.StringVar(&o.voice, "voice", "EN", "Voice language for SP and IT text (EN, FR, GR)")
	fs.StringVar(&o.level, "level", "0", "Start level, by index or alias")
	fs.StringVar(&o.altLevel, "alt-level", "", "Start level by alias (1, 2a .. 6b)")
	fs.StringVar(&o.initState, "init-state", "", "Start mode override: game, menu or installer")
	fs.StringVar(&o.soundFont, "soundfont", "", "Sound font file for music")
	fs.StringVar(&o.textureFilter, "texturefilter", "linear", "Texture filter name")
	fs.StringVar(&o.textureScaler, "texturescaler", "scale2x", "Texture scaler name")
	fs.IntVar(&o.fps, "fps", 60, "Tick rate (ticks per second)")
	fs.BoolVar(&o.playDemo, "playdemo", false, "Run the attract demo")
	fs.BoolVar(&o.subtitles, "subtitles", false, "Show cutscene subtitles")
	fs.BoolVar(&o.fullscreen, "fullscreen", false, "Fullscreen, stretched")
	fs.BoolVar(&o.fullscreenAR, "fullscreen-ar", false, "Fullscreen, keep aspect ratio")
	fs.BoolVar(&o.fog, "fog", false, "Enable fog")
	fs.BoolVar(&o.mouse, "mouse", false, "Pointer-driven movement")
	fs.BoolVar(&o.touch, "touch", false, "Touch-driven movement")
}

// runtime applies the changed flags to settings and returns the runtime
// configuration. Malformed values are errors.
func (o *runOptions) runtime(fs *pflag.FlagSet, s *config.Settings) (core.RuntimeConfig, error) {
	changed := fs.Changed

	if changed("datapath") {
		s.DataPath = o.dataPath
	}
	if changed("savepath") {
		s.SavePath = o.savePath
	}
	if changed("language") {
		s.Language = o.language
	}
	if changed("voice") {
		s.Voice = o.voice
	}
	if changed("level") {
		n, err := config.ParseLevel(o.level)
		if err != nil {
			return core.RuntimeConfig{}, err
		}
		s.Game.Level = n
	}
	if changed("alt-level") {
		n, err := config.ParseLevelAlias(o.altLevel)
		if err != nil {
			return core.RuntimeConfig{}, err
		}
		s.Game.Level = n
	}
	switch {
	case o.fullscreen && o.fullscreenAR:
		return core.RuntimeConfig{}, fmt.Errorf("--fullscreen and --fullscreen-ar are exclusive")
	case o.fullscreen:
		s.Display = core.DisplayFullscreenStretch.String()
	case o.fullscreenAR:
		s.Display = core.DisplayFullscreenAspect.String()
	}
	if changed("fps") {
		if o.fps <= 0 {
			return core.RuntimeConfig{}, fmt.Errorf("invalid --fps %d", o.fps)
		}
		s.Screen.TickRate = o.fps
	}
	if changed("soundfont") {
		s.Game.SoundFont = o.soundFont
	}
	if changed("texturefilter") {
		s.Render.TextureFilter = o.textureFilter
	}
	if changed("texturescaler") {
		s.Render.TextureScaler = o.textureScaler
	}
	if changed("playdemo") {
		s.Game.PlayDemo = o.playDemo
	}
	if changed("subtitles") {
		s.Game.Subtitles = o.subtitles
	}
	if changed("fog") {
		s.Render.Fog = o.fog
	}
	if changed("mouse") {
		s.Game.Mouse = o.mouse
	}
	if changed("touch") {
		s.Game.Touch = o.touch
	}

	cfg, err := s.Runtime()
	if err != nil {
		return cfg, err
	}
	if changed("init-state") {
		mode, err := core.ParseStartMode(o.initState)
		if err != nil {
			return cfg, err
		}
		cfg.StartMode = mode
	}
	return cfg, nil
}
