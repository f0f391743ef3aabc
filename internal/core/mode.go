package core

import (
	"fmt"
	"strings"
)

// Mode is one of the mutually exclusive top-level presentation states of the
// run loop. Exactly one mode is current at any time.
type Mode int

const (
	ModeCutscene Mode = iota
	ModeSimulation
	ModeInventory
	ModeCabinet
	ModeMenu
	ModeInstaller
)

// ModeCount is the number of defined modes.
const ModeCount = int(ModeInstaller) + 1

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeCutscene:
		return "cutscene"
	case ModeSimulation:
		return "game"
	case ModeInventory:
		return "inventory"
	case ModeCabinet:
		return "cabinet"
	case ModeMenu:
		return "menu"
	case ModeInstaller:
		return "installer"
	default:
		return "unknown"
	}
}

// Valid reports whether m names a defined mode.
func (m Mode) Valid() bool {
	return m >= ModeCutscene && m <= ModeInstaller
}

// ParseStartMode resolves the debug start-mode override. Only the modes that
// can be entered without a prior cutscene are accepted.
func ParseStartMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "", "cutscene":
		return ModeCutscene, nil
	case "game":
		return ModeSimulation, nil
	case "installer":
		return ModeInstaller, nil
	case "menu":
		return ModeMenu, nil
	}
	return ModeCutscene, fmt.Errorf("core: unknown start mode %q", name)
}
