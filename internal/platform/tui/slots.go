package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/f2b/internal/config"
	"github.com/vovakirdan/f2b/internal/storage"
)

// Slot browser layout constants
const (
	minWidthForPreview = 80 // Minimum width to show the screenshot preview
)

// SlotsKeyMap defines the key bindings for the slot browser.
type SlotsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SlotsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SlotsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Delete},
		{k.Back, k.Quit},
	}
}

// DefaultSlotsKeyMap returns default key bindings.
func DefaultSlotsKeyMap() SlotsKeyMap {
	return SlotsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous slot"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next slot"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete slot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SlotsModel is the Bubble Tea model for browsing save slots.
type SlotsModel struct {
	store       *storage.Store
	logger      *log.Logger
	slots       []storage.SlotInfo
	preview     string
	table       table.Model
	help        help.Model
	keys        SlotsKeyMap
	width       int
	height      int
	quitting    bool
	showPreview bool
}

// NewSlotsModel creates a new slot browser over store.
func NewSlotsModel(store *storage.Store, width, height int, logger *log.Logger) SlotsModel {
	h := help.New()
	h.ShowAll = false

	m := SlotsModel{
		store:       store,
		logger:      logger,
		keys:        DefaultSlotsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showPreview: width >= minWidthForPreview,
	}
	m.table = m.createTable()
	m.loadSlots()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *SlotsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Slot", Width: 5},
		{Title: "Level", Width: 6},
		{Title: "Size", Width: 7},
		{Title: "Saved", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("94")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSlots reloads the slot list and the preview of the selected slot.
func (m *SlotsModel) loadSlots() {
	slots, err := m.store.ListSlots()
	if err != nil {
		m.logger.Warn("cannot list save slots", "error", err)
		slots = nil
	}
	m.slots = slots

	rows := make([]table.Row, len(m.slots))
	for i, s := range m.slots {
		rows[i] = table.Row{
			fmt.Sprintf("%d", s.Slot),
			levelLabel(s.Level),
			fmt.Sprintf("%d", s.Size),
			s.SavedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.GotoTop()
	}
	m.loadPreview()
}

// loadPreview loads the screenshot of the selected slot.
func (m *SlotsModel) loadPreview() {
	m.preview = ""
	slot, ok := m.selected()
	if !ok || !slot.HasScreenshot {
		return
	}
	img, _, _, err := m.store.Screenshot(slot.Slot)
	if err != nil {
		m.logger.Warn("cannot load screenshot", "slot", slot.Slot, "error", err)
		return
	}
	m.preview = string(img)
}

func (m *SlotsModel) selected() (storage.SlotInfo, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.slots) {
		return storage.SlotInfo{}, false
	}
	return m.slots[i], true
}

func levelLabel(level int) string {
	if level >= 0 && level < len(config.LevelAliases) {
		return config.LevelAliases[level]
	}
	return "?"
}

// Init initializes the slot browser.
func (m SlotsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the slot browser.
func (m SlotsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Delete):
			if slot, ok := m.selected(); ok {
				if err := m.store.DeleteSlot(slot.Slot); err != nil {
					m.logger.Warn("cannot delete slot", "slot", slot.Slot, "error", err)
				}
				m.loadSlots()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			m.loadPreview()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showPreview = m.width >= minWidthForPreview
		m.table = m.createTable()
		m.loadSlots()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the slot browser.
func (m SlotsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("SAVED GAMES"))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := boxStyle.Render(m.renderTableContent())
	if m.showPreview && m.preview != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", boxStyle.Render(m.preview))
	}
	b.WriteString(content)

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m SlotsModel) renderTableContent() string {
	if len(m.slots) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No saved games yet.\nOpen the menu in game to save.")
	}
	return m.table.View()
}

// RunSlots runs the slot browser.
func RunSlots(store *storage.Store, width, height int, logger *log.Logger) error {
	_, err := tea.NewProgram(
		NewSlotsModel(store, width, height, logger),
		tea.WithAltScreen(),
	).Run()
	return err
}
