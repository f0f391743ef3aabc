package game

import (
	"github.com/vovakirdan/f2b/internal/core"
)

// cabinetOffer is what every cabinet sells.
var cabinetOffer = []Item{ItemMedkit, ItemShield, ItemCredits}

type cabinetState struct {
	items    []Item
	selected int
	x, y     int
}

type inventoryState struct {
	selected int
}

// Menu entries.
const (
	menuResume = iota
	menuSave
	menuLoad
	menuQuit
	menuEntries
)

var menuLabels = [menuEntries]string{"Resume", "Save game", "Load game", "Quit"}

type menuState struct {
	selected int
	slot     int
}

type installerState struct {
	progress int
	done     bool
}

// installerSteps is the number of installer updates to completion.
const installerSteps = 120

// useCabinet offers the cabinet next to the player, if any.
func (e *Engine) useCabinet() {
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		x, y := e.player.X+d[0], e.player.Y+d[1]
		if e.room.At(x, y) != CellCabinet {
			continue
		}
		e.cabinet = cabinetState{
			items: append([]Item(nil), cabinetOffer...),
			x:     x,
			y:     y,
		}
		return
	}
}

// CabinetItems returns the number of items offered by the open cabinet.
func (e *Engine) CabinetItems() int {
	return len(e.cabinet.items)
}

// OpenCabinet prepares the cabinet overlay.
func (e *Engine) OpenCabinet() {
	e.cabinet.selected = 0
}

// UpdateCabinet moves the selection and takes items. Escape empties the
// cabinet, which closes it.
func (e *Engine) UpdateCabinet(in *core.Snapshot) {
	e.input.update(readControls(in))
	c := &e.cabinet

	if in.Escape {
		in.Escape = false
		c.items = nil
		return
	}
	switch {
	case e.input.pressed(ctlLeft), e.input.pressed(ctlUp):
		c.selected--
	case e.input.pressed(ctlRight), e.input.pressed(ctlDown):
		c.selected++
	case e.input.pressed(ctlEnter), e.input.pressed(ctlUse):
		if len(c.items) > 0 {
			item := c.items[c.selected]
			c.items = append(c.items[:c.selected], c.items[c.selected+1:]...)
			e.items = append(e.items, item)
			e.notify("took " + string(item))
		}
	}
	c.selected = core.Clamp(c.selected, 0, max(len(c.items)-1, 0))
}

// CloseCabinet removes the emptied cabinet from the room.
func (e *Engine) CloseCabinet() {
	e.room.Set(e.cabinet.x, e.cabinet.y, CellWall)
	e.cabinet = cabinetState{}
}

// OpenInventory returns false when there is nothing to show.
func (e *Engine) OpenInventory() bool {
	if len(e.items) == 0 {
		e.notify("inventory is empty")
		return false
	}
	e.inventory.selected = core.Clamp(e.inventory.selected, 0, len(e.items)-1)
	return true
}

// UpdateInventory moves the selection and uses items.
func (e *Engine) UpdateInventory(in *core.Snapshot) {
	e.input.update(readControls(in))
	inv := &e.inventory

	switch {
	case e.input.pressed(ctlUp):
		inv.selected--
	case e.input.pressed(ctlDown):
		inv.selected++
	case e.input.pressed(ctlUse), e.input.pressed(ctlEnter):
		e.useItem(inv.selected)
	}
	inv.selected = core.Clamp(inv.selected, 0, max(len(e.items)-1, 0))
}

func (e *Engine) useItem(i int) {
	if i < 0 || i >= len(e.items) {
		return
	}
	switch e.items[i] {
	case ItemMedkit:
		if e.player.Health == MaxHealth {
			e.notify("health is full")
			return
		}
		e.player.Health = MaxHealth
	case ItemShield:
		if e.player.Shield {
			e.notify("shield already active")
			return
		}
		e.player.Shield = true
	default:
		e.notify("nothing happens")
		return
	}
	e.notify("used " + string(e.items[i]))
	e.items = append(e.items[:i], e.items[i+1:]...)
}

// CloseInventory closes the inventory overlay.
func (e *Engine) CloseInventory() {}

// OpenMenu opens the in-game menu on its first entry.
func (e *Engine) OpenMenu() {
	e.menu.selected = menuResume
	if e.menu.slot == 0 {
		e.menu.slot = 1
	}
}

// UpdateMenu returns false once the menu is done.
func (e *Engine) UpdateMenu(in *core.Snapshot) bool {
	e.input.update(readControls(in))
	m := &e.menu

	switch {
	case e.input.pressed(ctlUp):
		m.selected = (m.selected + menuEntries - 1) % menuEntries
	case e.input.pressed(ctlDown):
		m.selected = (m.selected + 1) % menuEntries
	case e.input.pressed(ctlLeft):
		m.slot = (m.slot+MaxSlots-2)%MaxSlots + 1
	case e.input.pressed(ctlRight):
		m.slot = m.slot%MaxSlots + 1
	case e.input.pressed(ctlEnter):
		return e.activateMenu()
	}
	return true
}

func (e *Engine) activateMenu() bool {
	m := &e.menu
	switch m.selected {
	case menuSave:
		if e.actions != nil {
			e.actions.RequestSave(m.slot)
		}
	case menuLoad:
		if e.actions != nil {
			e.actions.RequestLoad(m.slot)
		}
	case menuQuit:
		if e.actions != nil {
			e.actions.Quit()
		}
	}
	return false
}

// CloseMenu closes the in-game menu.
func (e *Engine) CloseMenu() {}

// OpenInstaller starts the installer from scratch.
func (e *Engine) OpenInstaller() {
	e.installer = installerState{}
}

// UpdateInstaller advances the installer by one step.
func (e *Engine) UpdateInstaller(in *core.Snapshot) {
	e.input.update(readControls(in))
	if e.installer.done {
		return
	}
	e.installer.progress++
	if e.installer.progress >= installerSteps {
		e.installer.done = true
		e.logger.Info("installer finished")
	}
}

// InstallerProgress returns the installer completion in [0, 1].
func (e *Engine) InstallerProgress() float64 {
	return float64(e.installer.progress) / installerSteps
}
