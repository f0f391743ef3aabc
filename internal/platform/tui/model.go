package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/f2b/internal/app"
	"github.com/vovakirdan/f2b/internal/config"
	"github.com/vovakirdan/f2b/internal/core"
)

// Model is the Bubble Tea model hosting one run loop.
type Model struct {
	app      *app.App
	canvas   *core.Canvas
	styles   *styleCache
	keys     KeyMap
	tickRate int
	shotDir  string
	logger   *log.Logger

	// Terminals report presses only. Keys pressed since the last tick are
	// released after it runs.
	held     []core.KeyCode
	last     time.Time
	quitting bool
}

// NewModel wraps a run loop drawing into canvas.
func NewModel(a *app.App, canvas *core.Canvas, cfg core.RuntimeConfig, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Model{
		app:      a,
		canvas:   canvas,
		styles:   newStyleCache(),
		keys:     DefaultKeyMap(),
		tickRate: cfg.TickRate,
		shotDir:  filepath.Join(cfg.SavePath, "screenshots"),
		logger:   logger,
	}
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.app.ResizeScreen(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	for _, code := range m.keys.Lookup(msg) {
		m.app.KeyEvent(code, true)
		m.held = append(m.held, code)
	}
	return m, nil
}

// handleMouse forwards the left button as pointer slot 0.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionMotion {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		m.app.PointerEvent(0, msg.X, msg.Y, true)
	case tea.MouseActionRelease:
		m.app.PointerEvent(0, msg.X, msg.Y, false)
	case tea.MouseActionMotion:
		m.app.PointerEvent(0, msg.X, msg.Y, msg.Button == tea.MouseButtonLeft)
	}
}

// handleTick runs one frame.
func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := time.Second / time.Duration(max(m.tickRate, 1))
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last)
	}
	m.last = now

	m.app.Tick(elapsed)
	for _, code := range m.held {
		m.app.KeyEvent(code, false)
	}
	m.held = m.held[:0]
	m.app.Draw()

	if m.app.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current frame as text under the save directory.
func (m *Model) saveScreenshot() {
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}
	name := fmt.Sprintf("f2b_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.canvas.Frame().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the composed frame.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.styles.render(m.canvas.Frame(), m.canvas.Palette())
}

// Run boots the run loop and drives it in the local terminal until the
// player quits.
func Run(cfg core.RuntimeConfig, settings config.Settings, logger *log.Logger) error {
	canvas := core.NewCanvas(cfg.ScreenW, cfg.ScreenH)
	a, err := app.New(cfg, settings, canvas, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			logger.Warn("shutdown failed", "error", closeErr)
		}
	}()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.HasCursor() {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	_, err = tea.NewProgram(NewModel(a, canvas, cfg, logger), opts...).Run()
	return err
}
