// Package persist defers save and load requests to the presentation phase.
// Requests may arrive at any point in a tick; they are serviced by Drain,
// once per presented frame, and only while the simulation owns the state.
package persist

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/f2b/internal/core"
)

// StateStore is the simulation collaborator that reads and writes slots.
type StateStore interface {
	// LoadState reads slot and applies it to the running game.
	LoadState(slot int) error

	// SaveState writes the running game to slot.
	SaveState(slot int) error

	// SaveScreenshot stores a thumbnail for slot.
	SaveScreenshot(slot int) error
}

// Direction is the kind of a persistence request.
type Direction int

const (
	Load Direction = iota
	Save
)

// String returns "load" or "save".
func (d Direction) String() string {
	if d == Save {
		return "save"
	}
	return "load"
}

// Request is a pending request of one direction.
type Request struct {
	Slot    int
	Pending bool
}

// Outcome reports a serviced request.
type Outcome struct {
	Direction Direction
	Slot      int
	Err       error
}

// Scheduler holds at most one pending request per direction. A newer
// request of the same direction replaces the older one.
type Scheduler struct {
	store  StateStore
	logger *log.Logger

	load Request
	save Request
}

// NewScheduler creates a scheduler servicing requests against store.
func NewScheduler(store StateStore, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scheduler{store: store, logger: logger}
}

// RequestSave records a save to slot. Nothing is written until Drain.
func (s *Scheduler) RequestSave(slot int) {
	s.save = Request{Slot: slot, Pending: true}
}

// RequestLoad records a load from slot. Nothing is read until Drain.
func (s *Scheduler) RequestLoad(slot int) {
	s.load = Request{Slot: slot, Pending: true}
}

// PendingSave returns the outstanding save request.
func (s *Scheduler) PendingSave() Request {
	return s.save
}

// PendingLoad returns the outstanding load request.
func (s *Scheduler) PendingLoad() Request {
	return s.load
}

// Drain services pending requests when active is the simulation. Requests
// stay pending while any other mode is active. A serviced request is
// cleared whether it succeeded or not; failures are logged and returned,
// never retried.
func (s *Scheduler) Drain(active core.Mode) []Outcome {
	if active != core.ModeSimulation {
		return nil
	}

	var out []Outcome
	if s.load.Pending {
		slot := s.load.Slot
		s.load.Pending = false
		err := s.store.LoadState(slot)
		if err != nil {
			s.logger.Warn("load failed", "slot", slot, "error", err)
		} else {
			s.logger.Info("loaded game state", "slot", slot)
		}
		out = append(out, Outcome{Direction: Load, Slot: slot, Err: err})
	}

	if s.save.Pending {
		slot := s.save.Slot
		s.save.Pending = false
		err := s.store.SaveState(slot)
		if err != nil {
			s.logger.Warn("save failed", "slot", slot, "error", err)
		} else {
			if shotErr := s.store.SaveScreenshot(slot); shotErr != nil {
				s.logger.Warn("screenshot failed", "slot", slot, "error", shotErr)
			}
			s.logger.Info("saved game state", "slot", slot)
		}
		out = append(out, Outcome{Direction: Save, Slot: slot, Err: err})
	}
	return out
}
