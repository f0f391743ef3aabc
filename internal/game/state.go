package game

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/vovakirdan/f2b/internal/core"
)

// SlotStore is the save slot storage.
type SlotStore interface {
	SaveSlot(slot, level int, state []byte) error
	LoadSlot(slot int) ([]byte, error)
	SaveScreenshot(slot, width, height int, image []byte) error
}

// stateVersion is bumped when savedState changes incompatibly.
const stateVersion = 1

// Screenshot dimensions in characters.
const (
	ShotWidth  = 32
	ShotHeight = 11
)

// ErrBadState is returned when a slot does not hold a usable game state.
var ErrBadState = errors.New("game: bad saved state")

// savedState is the serialized game.
type savedState struct {
	Version int        `json:"version"`
	Level   int        `json:"level"`
	Player  Player     `json:"player"`
	Items   []Item     `json:"items,omitempty"`
	Cheats  core.Cheat `json:"cheats,omitempty"`
	Room    []string   `json:"room"`
	Tick    uint64     `json:"tick"`
}

// SetStore attaches the save slot storage.
func (e *Engine) SetStore(s SlotStore) {
	e.slots = s
}

// SaveState writes the running game to slot.
func (e *Engine) SaveState(slot int) error {
	if e.slots == nil {
		return errors.New("game: no save storage")
	}
	data, err := json.Marshal(savedState{
		Version: stateVersion,
		Level:   e.level,
		Player:  e.player,
		Items:   e.items,
		Cheats:  e.cheats,
		Room:    e.room.Rows(),
		Tick:    e.tick,
	})
	if err != nil {
		return fmt.Errorf("game: cannot encode state: %w", err)
	}
	if err := e.slots.SaveSlot(slot, e.level, data); err != nil {
		return err
	}
	e.notify(fmt.Sprintf("saved to slot %d", slot))
	return nil
}

// LoadState reads slot and applies it. The running game is left untouched
// when the slot cannot be used.
func (e *Engine) LoadState(slot int) error {
	if e.slots == nil {
		return errors.New("game: no save storage")
	}
	data, err := e.slots.LoadSlot(slot)
	if err != nil {
		return err
	}

	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: not JSON", ErrBadState)
	}
	if v := gjson.GetBytes(data, "version"); v.Int() != stateVersion {
		return fmt.Errorf("%w: version %s", ErrBadState, v.Raw)
	}
	var st savedState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: %v", ErrBadState, err)
	}
	if st.Level < 0 || st.Level >= len(e.levels) {
		return fmt.Errorf("%w: level %d", ErrBadState, st.Level)
	}
	base := e.levels[st.Level]
	room := ParseLevel(base.Name, st.Room)
	if room.Width != base.Width || room.Height != base.Height {
		return fmt.Errorf("%w: room is %dx%d", ErrBadState, room.Width, room.Height)
	}
	if room.At(st.Player.X, st.Player.Y).Blocking() {
		return fmt.Errorf("%w: player inside a wall", ErrBadState)
	}
	room.StartX, room.StartY = base.StartX, base.StartY

	e.level = st.Level
	e.room = room
	e.player = st.Player
	e.items = st.Items
	e.cheats = st.Cheats
	e.tick = st.Tick
	e.changeLevel = false
	e.endGame = false
	e.gameOver = false
	e.finished = false
	e.cooldown = 0
	e.target = nil
	e.UpdatePalette()
	e.notify(fmt.Sprintf("loaded slot %d", slot))
	return nil
}

// SaveScreenshot stores a text thumbnail of the room for slot.
func (e *Engine) SaveScreenshot(slot int) error {
	if e.slots == nil {
		return errors.New("game: no save storage")
	}
	shot := core.NewScreen(ShotWidth, ShotHeight)
	e.drawRoom(shot, 1, 1)
	return e.slots.SaveScreenshot(slot, ShotWidth, ShotHeight, []byte(shot.String()))
}
