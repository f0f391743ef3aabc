// Package app bootstraps the run loop: it acquires the data files, the
// save store, the engine and the cutscene sequencer once, wires them into
// the mode machine, and releases them on Close.
package app

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/f2b/internal/audio"
	"github.com/vovakirdan/f2b/internal/config"
	"github.com/vovakirdan/f2b/internal/core"
	"github.com/vovakirdan/f2b/internal/cutscene"
	"github.com/vovakirdan/f2b/internal/game"
	"github.com/vovakirdan/f2b/internal/modes"
	"github.com/vovakirdan/f2b/internal/persist"
	"github.com/vovakirdan/f2b/internal/storage"
)

// ManifestFile is the optional clip manifest in the data directory.
const ManifestFile = "cutscenes.yaml"

// Renderer is the render surface the app draws into.
type Renderer interface {
	modes.Renderer
	Base() *core.Screen
	Overlay() *core.Screen
}

// App is one run loop with its collaborators.
type App struct {
	cfg    core.RuntimeConfig
	logger *log.Logger

	files    *storage.Files
	store    *storage.Store
	render   Renderer
	input    *core.Snapshot
	keys     *core.Translator
	engine   *game.Engine
	player   *cutscene.ManifestPlayer
	seq      *cutscene.Sequencer
	machine  *modes.Machine
	sched    *persist.Scheduler
	mixer    *audio.Mixer
	buttons  modes.ButtonMap
	shownCut cutscene.ClipID
	quit     bool
}

// New acquires every collaborator and enters the start mode. Missing data
// files are fatal. A nil logger discards output.
func New(cfg core.RuntimeConfig, settings config.Settings, r Renderer, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	files, err := storage.ResolveFiles(cfg.DataPath, cfg.SavePath, cfg.Language, cfg.Voice)
	if err != nil {
		return nil, err
	}

	manifest, err := loadManifest(files)
	if err != nil {
		return nil, err
	}
	table, err := settings.CutsceneTable()
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(files.SavePath(storage.DefaultFile))
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:      cfg,
		logger:   logger,
		files:    files,
		store:    store,
		render:   r,
		input:    core.NewSnapshot(),
		mixer:    audio.NewMixer(),
		shownCut: cutscene.None,
	}

	a.player = cutscene.NewManifestPlayer(manifest)
	a.seq = cutscene.NewSequencer(table, a.player, settings.CutsceneOptions(cfg.Game.PlayDemo))
	a.engine = game.New(game.Params{
		Level:    cfg.Game.LevelNum,
		PlayDemo: cfg.Game.PlayDemo,
		Pointer:  cfg.HasCursor(),
	}, a.seq, r, logger)
	a.engine.SetStore(store)
	a.engine.SetActions(a)

	a.keys = core.NewTranslator(a.input, a.engine)
	a.sched = persist.NewScheduler(a.engine, logger)
	a.machine = modes.NewMachine(modes.NewSet(a.engine, a.seq, r, logger), a.input, logger)

	a.engine.UpdatePalette()
	if cfg.StartMode == core.ModeCutscene {
		a.seq.Play(cutscene.ClipLogoEA, 0)
	}
	a.machine.Start(cfg.StartMode)

	logger.Info("run loop ready",
		"data", files.DataDir,
		"saves", files.SaveDir,
		"language", cfg.Language,
		"voice", cfg.Voice,
		"mode", a.machine.Current(),
	)
	return a, nil
}

func loadManifest(files *storage.Files) (*cutscene.Manifest, error) {
	path, ok := files.DataPath(ManifestFile)
	if !ok {
		return cutscene.DefaultManifest(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("app: cannot open %s: %w", path, err)
	}
	defer f.Close()

	m, err := cutscene.ParseManifest(f)
	if err != nil {
		return nil, fmt.Errorf("app: %s: %w", path, err)
	}
	return m, nil
}

// Close releases the collaborators.
func (a *App) Close() error {
	a.mixer.Close()
	if err := a.store.Close(); err != nil {
		return err
	}
	a.logger.Debug("run loop closed")
	return nil
}

// Mode returns the active mode.
func (a *App) Mode() core.Mode {
	return a.machine.Current()
}

// Engine returns the simulation engine.
func (a *App) Engine() *game.Engine {
	return a.engine
}

// Sequencer returns the cutscene sequencer.
func (a *App) Sequencer() *cutscene.Sequencer {
	return a.seq
}

// Store returns the save slot store.
func (a *App) Store() *storage.Store {
	return a.store
}

// Buttons returns the gamepad mapping installed by the active mode.
func (a *App) Buttons() modes.ButtonMap {
	return a.buttons
}

// Tick runs one frame of the mode machine.
func (a *App) Tick(elapsed time.Duration) {
	a.machine.Tick(elapsed, &a.buttons)
}

// Draw draws the active mode, presents the overlay, then services pending
// save and load requests.
func (a *App) Draw() {
	if a.machine.Current() == core.ModeCutscene {
		a.drawCutscene()
	} else {
		a.shownCut = cutscene.None
		a.engine.Draw(a.render.Base(), a.machine.Current())
	}
	a.render.DrawOverlay()
	a.sched.Drain(a.machine.Current())
}

// KeyEvent forwards a key transition to the input translator.
func (a *App) KeyEvent(code core.KeyCode, pressed bool) {
	a.keys.KeyEvent(code, pressed)
}

// PointerEvent forwards a pointer reading to the input translator.
func (a *App) PointerEvent(slot, x, y int, pressed bool) {
	a.keys.PointerEvent(slot, x, y, pressed)
}

// ResizeScreen resizes the render surface, keeping the configured aspect.
func (a *App) ResizeScreen(w, h int) {
	a.render.ResizeScreen(w, h, config.AspectRatio(a.cfg.Display))
}

// RequestSave schedules a save to slot.
func (a *App) RequestSave(slot int) {
	a.sched.RequestSave(slot)
}

// RequestLoad schedules a load from slot.
func (a *App) RequestLoad(slot int) {
	a.sched.RequestLoad(slot)
}

// Quit asks the host to stop the run loop.
func (a *App) Quit() {
	a.quit = true
}

// Quitting reports whether the menu asked to quit.
func (a *App) Quitting() bool {
	return a.quit
}

// MixProc sets the output format and returns the pull callback for the
// platform audio thread. lock guards each pull. Setting up the callback
// starts the title music.
func (a *App) MixProc(rate int, lock sync.Locker) func(buf [][2]float64) {
	a.mixer.SetFormat(rate, lock)
	a.mixer.PlayMusic(audio.MusicTitle)
	return a.mixer.Mix
}
