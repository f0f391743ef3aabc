package modes

import (
	"github.com/vovakirdan/f2b/internal/core"
)

// Simulation is the part of the engine driven while the game is playing.
type Simulation interface {
	// InitLevel (re)starts the current level. restart keeps the player's
	// carried state across a level change.
	InitLevel(restart bool)

	// UpdateInput copies the input snapshot into the engine's controls.
	UpdateInput(in *core.Snapshot)

	// Tick advances the simulation by one step.
	Tick()

	// TakeChangeLevel reports and clears a pending level change.
	TakeChangeLevel() bool

	// TakeEndGame reports and clears a pending end of game.
	TakeEndGame() bool

	// GameOver reports whether the player has finished or lost the game.
	GameOver() bool

	// ResetProgress drops progress and restarts from the first level.
	ResetProgress()

	// CabinetItems returns the number of items offered by an open cabinet.
	CabinetItems() int

	// UpdatePalette refreshes the screen palette from game state.
	UpdatePalette()

	// ScreenPalette returns the base palette as RGB triplets.
	ScreenPalette() []byte
}

// Inventory is the inventory overlay.
type Inventory interface {
	// OpenInventory returns false when the inventory cannot be shown.
	OpenInventory() bool
	UpdateInventory(in *core.Snapshot)
	CloseInventory()
}

// Cabinet is the vending mini-mode.
type Cabinet interface {
	OpenCabinet()
	UpdateCabinet(in *core.Snapshot)
	CloseCabinet()
	CabinetItems() int
}

// Menu is the in-game menu.
type Menu interface {
	OpenMenu()
	// UpdateMenu returns false once the menu is done.
	UpdateMenu(in *core.Snapshot) bool
	CloseMenu()
}

// Installer is the data installer.
type Installer interface {
	OpenInstaller()
	UpdateInstaller(in *core.Snapshot)
}

// Engine is the full simulation collaborator.
type Engine interface {
	Simulation
	Inventory
	Cabinet
	Menu
	Installer
}

// Renderer is the overlay/render surface collaborator.
type Renderer interface {
	ResizeOverlay(w, h int)
	SetPalette(data []byte, start, count int)
	ResizeScreen(w, h int, aspect float64)
	DrawOverlay()
}
