package modes

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/f2b/internal/core"
	"github.com/vovakirdan/f2b/internal/cutscene"
)

// NewSet builds the standard mode implementations over the collaborators.
func NewSet(eng Engine, seq *cutscene.Sequencer, r Renderer, logger *log.Logger) Set {
	return Set{
		core.ModeCutscene:   &cutsceneMode{seq: seq, sim: eng, render: r, logger: logger},
		core.ModeSimulation: &simulationMode{sim: eng, seq: seq},
		core.ModeInventory:  &inventoryMode{inv: eng},
		core.ModeCabinet:    &cabinetMode{cab: eng},
		core.ModeMenu:       &menuMode{menu: eng},
		core.ModeInstaller:  &installerMode{inst: eng},
	}
}

// cutsceneMode plays clips until the sequencer runs out.
type cutsceneMode struct {
	seq    *cutscene.Sequencer
	sim    Simulation
	render Renderer
	logger *log.Logger
}

func (c *cutsceneMode) Enter() bool {
	if !c.seq.Load() && c.logger != nil {
		c.logger.Warn("cutscene failed to load", "clip", c.seq.Current())
	}
	return true
}

func (c *cutsceneMode) Exit() {
	c.render.ResizeOverlay(0, 0)
	c.render.SetPalette(c.sim.ScreenPalette(), 0, core.PaletteSize)
}

func (c *cutsceneMode) Update(f *Frame) core.Mode {
	in := f.Input
	switch {
	case in.Escape:
		in.Escape = false
		c.seq.Skip(true)
	case in.Space, in.Enter:
		in.Space = false
		in.Enter = false
		c.seq.Skip(false)
	}

	if c.seq.Update(f.Elapsed) {
		return core.ModeCutscene
	}

	c.seq.Unload()
	res := c.seq.Advance()
	if res.Next != cutscene.None {
		return core.ModeCutscene
	}
	if res.Completed || c.sim.GameOver() {
		c.sim.ResetProgress()
	}
	return core.ModeSimulation
}

// simulationMode runs the game and routes to the overlay modes.
type simulationMode struct {
	sim Simulation
	seq *cutscene.Sequencer
}

func (s *simulationMode) Enter() bool {
	s.sim.UpdatePalette()
	return true
}

func (s *simulationMode) Exit() {}

func (s *simulationMode) Update(f *Frame) core.Mode {
	install(f.Buttons, GameButtons)

	if s.sim.TakeChangeLevel() {
		s.sim.InitLevel(true)
	} else if s.sim.TakeEndGame() {
		s.sim.InitLevel(false)
	}
	s.sim.UpdateInput(f.Input)
	s.sim.Tick()
	s.seq.CountDown()

	in := f.Input
	switch {
	case in.Inventory:
		in.Inventory = false
		return core.ModeInventory
	case in.Escape:
		in.Escape = false
		return core.ModeMenu
	case s.seq.Ready():
		return core.ModeCutscene
	case s.sim.CabinetItems() != 0:
		return core.ModeCabinet
	}
	return core.ModeSimulation
}

// inventoryMode shows the inventory overlay.
type inventoryMode struct {
	inv Inventory
}

func (m *inventoryMode) Enter() bool {
	return m.inv.OpenInventory()
}

func (m *inventoryMode) Exit() {}

func (m *inventoryMode) Update(f *Frame) core.Mode {
	m.inv.UpdateInventory(f.Input)
	in := f.Input
	if in.Inventory || in.Escape {
		in.Inventory = false
		in.Escape = false
		m.inv.CloseInventory()
		return core.ModeSimulation
	}
	return core.ModeInventory
}

// cabinetMode runs the vending mini-mode until its items are gone.
type cabinetMode struct {
	cab Cabinet
}

func (m *cabinetMode) Enter() bool {
	m.cab.OpenCabinet()
	return true
}

func (m *cabinetMode) Exit() {
	m.cab.CloseCabinet()
}

func (m *cabinetMode) Update(f *Frame) core.Mode {
	m.cab.UpdateCabinet(f.Input)
	if m.cab.CabinetItems() == 0 {
		return core.ModeSimulation
	}
	return core.ModeCabinet
}

// menuMode runs the in-game menu.
type menuMode struct {
	menu Menu
}

func (m *menuMode) Enter() bool {
	m.menu.OpenMenu()
	return true
}

func (m *menuMode) Exit() {
	m.menu.CloseMenu()
}

func (m *menuMode) Update(f *Frame) core.Mode {
	install(f.Buttons, MenuButtons)

	next := core.ModeMenu
	if !m.menu.UpdateMenu(f.Input) {
		next = core.ModeSimulation
	}
	if f.Input.Escape {
		f.Input.Escape = false
		next = core.ModeSimulation
	}
	return next
}

// installerMode runs the data installer. It never leaves on its own.
type installerMode struct {
	inst Installer
}

func (m *installerMode) Enter() bool {
	m.inst.OpenInstaller()
	return true
}

func (m *installerMode) Exit() {}

func (m *installerMode) Update(f *Frame) core.Mode {
	m.inst.UpdateInstaller(f.Input)
	return core.ModeInstaller
}
