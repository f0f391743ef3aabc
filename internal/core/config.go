package core

// Language identifies a text or voice language of the data files.
type Language int

const (
	LangEN Language = iota
	LangFR
	LangGR
	LangSP
	LangIT
)

// String returns the two-letter code used in data file names and flags.
func (l Language) String() string {
	switch l {
	case LangEN:
		return "EN"
	case LangFR:
		return "FR"
	case LangGR:
		return "GR"
	case LangSP:
		return "SP"
	case LangIT:
		return "IT"
	default:
		return "EN"
	}
}

// DisplayMode selects how the host presents the screen.
type DisplayMode int

const (
	DisplayWindowed DisplayMode = iota
	DisplayFullscreenStretch
	DisplayFullscreenAspect
)

// String returns a human-readable name for the display mode.
func (d DisplayMode) String() string {
	switch d {
	case DisplayWindowed:
		return "windowed"
	case DisplayFullscreenStretch:
		return "fullscreen"
	case DisplayFullscreenAspect:
		return "fullscreen-ar"
	default:
		return "windowed"
	}
}

// RenderParams are passed through to the rendering collaborator untouched.
type RenderParams struct {
	Fog           bool
	TextureFilter string
	TextureScaler string
}

// GameParams are passed through to the simulation engine.
type GameParams struct {
	PlayDemo  bool
	Subtitles bool
	LevelNum  int
	SoundFont string
	MouseMode bool
	TouchMode bool
}

// RuntimeConfig is the configuration value constructed once at startup and
// handed to the run loop. It replaces process-wide data and save paths.
type RuntimeConfig struct {
	DataPath string
	SavePath string

	Language Language
	Voice    Language

	Display   DisplayMode
	StartMode Mode
	Debug     bool

	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)

	Render RenderParams
	Game   GameParams
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		DataPath:  ".",
		SavePath:  ".",
		Language:  LangEN,
		Voice:     LangEN,
		Display:   DisplayWindowed,
		StartMode: ModeCutscene,
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		Render: RenderParams{
			TextureFilter: "linear",
			TextureScaler: "scale2x",
		},
	}
}

// HasCursor reports whether the host should show a pointer cursor.
func (c RuntimeConfig) HasCursor() bool {
	return c.Game.MouseMode || c.Game.TouchMode
}
