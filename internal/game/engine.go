// Package game implements the reference simulation engine driven by the
// run loop: a sequence of rooms walked on a character grid, with the
// inventory, cabinet, menu and installer overlays the modes expect.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/f2b/internal/core"
	"github.com/vovakirdan/f2b/internal/cutscene"
)

const (
	MaxHealth = 3
	MaxLives  = 3
	MaxSlots  = 8

	walkEvery  = 8 // ticks between steps while walking
	runEvery   = 4 // ticks between steps while running
	endDelay   = 30
	levelDelay = 2
	noticeTime = 120
)

// Item is an inventory object.
type Item string

const (
	ItemMedkit  Item = "medkit"
	ItemShield  Item = "shield"
	ItemCredits Item = "credits"
)

// Cutscenes is the part of the cutscene sequencer the engine triggers.
type Cutscenes interface {
	Play(id cutscene.ClipID, delay int)
	Enqueue(ids ...cutscene.ClipID)
}

// PaletteSink receives palette updates.
type PaletteSink interface {
	SetPalette(data []byte, start, count int)
}

// Actions are the run-loop requests the in-game menu can make.
type Actions interface {
	RequestSave(slot int)
	RequestLoad(slot int)
	Quit()
}

// Params configures a new engine.
type Params struct {
	Level    int
	PlayDemo bool
	Pointer  bool // mouse or touch walking
}

// Player is the controlled character.
type Player struct {
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Health int  `json:"health"`
	Lives  int  `json:"lives"`
	Shield bool `json:"shield"`
}

// Engine is the reference simulation engine.
type Engine struct {
	params  Params
	levels  []*Level
	cuts    Cutscenes
	pal     PaletteSink
	actions Actions
	slots   SlotStore
	logger  *log.Logger

	level  int    // Current level index
	room   *Level // Working copy of the current level
	player Player
	items  []Item
	cheats core.Cheat
	input  edges
	target *[2]int // Pointer walk target in room coordinates

	tick        uint64
	cooldown    int
	changeLevel bool
	endGame     bool
	gameOver    bool
	finished    bool

	cabinet   cabinetState
	inventory inventoryState
	menu      menuState
	installer installerState

	palette core.Palette
	notice  string
	noticeT int
	origin  [2]int // Screen offset of the room, set by Draw
}

// New creates an engine at params.Level. A nil logger discards output.
func New(params Params, cuts Cutscenes, pal PaletteSink, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Engine{
		params: params,
		levels: DefaultLevels(),
		cuts:   cuts,
		pal:    pal,
		logger: logger,
	}
	e.level = core.Clamp(params.Level, 0, len(e.levels)-1)
	e.player.Lives = MaxLives
	e.InitLevel(false)
	return e
}

// SetActions connects the menu to the run loop.
func (e *Engine) SetActions(a Actions) {
	e.actions = a
}

// Level returns the current level index.
func (e *Engine) Level() int {
	return e.level
}

// LevelName returns the current level alias.
func (e *Engine) LevelName() string {
	return e.levels[e.level].Name
}

// Player returns the player state.
func (e *Engine) Player() Player {
	return e.player
}

// Items returns the inventory contents.
func (e *Engine) Items() []Item {
	return e.items
}

// Finished reports whether the last level has been completed.
func (e *Engine) Finished() bool {
	return e.finished
}

// Notice returns the status line message, if any.
func (e *Engine) Notice() string {
	return e.notice
}

// InitLevel rebuilds the current room and places the player at its start.
// restart carries health over from the previous room; otherwise health is
// restored.
func (e *Engine) InitLevel(restart bool) {
	e.room = e.levels[e.level].Clone()
	e.player.X, e.player.Y = e.room.StartX, e.room.StartY
	if !restart || e.player.Health <= 0 {
		e.player.Health = MaxHealth
	}
	e.cooldown = 0
	e.target = nil
	e.logger.Debug("level started", "level", e.room.Name, "restart", restart)
}

// UpdateInput reads the controls for the next Tick.
func (e *Engine) UpdateInput(in *core.Snapshot) {
	e.input.update(readControls(in))

	if !e.params.Pointer {
		return
	}
	p := in.Pointer(0)
	room := core.NewRect(e.origin[0], e.origin[1], e.room.Width, e.room.Height)
	if p.Pressed() && room.Contains(p.Cur.X, p.Cur.Y) {
		t := [2]int{p.Cur.X - e.origin[0], p.Cur.Y - e.origin[1]}
		e.target = &t
	}
}

// Tick advances the simulation by one step.
func (e *Engine) Tick() {
	e.tick++
	if e.noticeT > 0 {
		e.noticeT--
		if e.noticeT == 0 {
			e.notice = ""
		}
	}
	if e.gameOver || e.finished {
		return
	}

	if e.input.pressed(ctlUse) {
		e.useCabinet()
	}

	if e.cooldown > 0 {
		e.cooldown--
		return
	}
	dx, dy := e.step()
	if dx == 0 && dy == 0 {
		return
	}
	e.cooldown = walkEvery
	if e.input.held(ctlRun) {
		e.cooldown = runEvery
	}
	if e.input.held(ctlJump) && e.leap(dx, dy) {
		return
	}
	e.move(dx, dy)
}

// leap jumps over one hazard cell. Returns false when there is nothing to
// jump over or nowhere to land.
func (e *Engine) leap(dx, dy int) bool {
	if e.room.At(e.player.X+dx, e.player.Y+dy) != CellHazard {
		return false
	}
	land := e.room.At(e.player.X+2*dx, e.player.Y+2*dy)
	if land.Blocking() || land == CellHazard {
		return false
	}
	e.player.X += dx
	e.player.Y += dy
	e.move(dx, dy)
	return true
}

// step picks the direction for this tick.
func (e *Engine) step() (dx, dy int) {
	switch {
	case e.params.PlayDemo:
		return e.room.nextStep(e.player.X, e.player.Y, func(x, y int) bool {
			return e.room.At(x, y) == CellExit
		})
	case e.target != nil:
		t := *e.target
		if t[0] == e.player.X && t[1] == e.player.Y {
			e.target = nil
			return 0, 0
		}
		dx, dy = e.room.nextStep(e.player.X, e.player.Y, func(x, y int) bool {
			return x == t[0] && y == t[1]
		})
		if dx == 0 && dy == 0 {
			e.target = nil
		}
		return dx, dy
	}

	c := e.input.cur
	switch {
	case c&ctlLeft != 0:
		dx = -1
	case c&ctlRight != 0:
		dx = 1
	}
	switch {
	case c&ctlUp != 0:
		dy = -1
	case c&ctlDown != 0:
		dy = 1
	}
	if dx != 0 && dy != 0 {
		dy = 0
	}
	return dx, dy
}

func (e *Engine) move(dx, dy int) {
	nx, ny := e.player.X+dx, e.player.Y+dy
	cell := e.room.At(nx, ny)
	if cell.Blocking() {
		return
	}
	e.player.X, e.player.Y = nx, ny

	switch cell {
	case CellHazard:
		e.hurt()
	case CellMedkit:
		e.room.Set(nx, ny, CellFloor)
		e.items = append(e.items, ItemMedkit)
		e.notify("picked up a medkit")
	case CellExit:
		e.exitLevel()
	}
}

func (e *Engine) hurt() {
	if e.cheats&core.CheatLifeCounter != 0 {
		return
	}
	if e.player.Shield {
		e.player.Shield = false
		e.notify("shield absorbed the hit")
		return
	}
	e.player.Health--
	if e.player.Health > 0 {
		return
	}

	e.player.Lives--
	if e.player.Lives > 0 {
		e.endGame = true
		e.notify("you died")
		return
	}
	e.gameOver = true
	e.logger.Info("game over", "level", e.LevelName())
	e.cuts.Play(cutscene.ClipFadeToBlack, endDelay)
}

func (e *Engine) exitLevel() {
	if e.level+1 < len(e.levels) {
		e.level++
		e.changeLevel = true
		// The card replaces the fade's fallback successor.
		e.cuts.Play(cutscene.ClipFadeToBlack, levelDelay)
		e.cuts.Enqueue(cutscene.ClipLevelCard)
		return
	}
	e.finished = true
	e.logger.Info("game completed", "demo", e.params.PlayDemo)
	if e.params.PlayDemo {
		e.cuts.Play(cutscene.ClipDemoClosing, endDelay)
	} else {
		e.cuts.Play(cutscene.ClipClosingMGM, endDelay)
	}
}

// TakeChangeLevel reports and clears a pending level change.
func (e *Engine) TakeChangeLevel() bool {
	v := e.changeLevel
	e.changeLevel = false
	return v
}

// TakeEndGame reports and clears a pending restart of the level after the
// player died.
func (e *Engine) TakeEndGame() bool {
	v := e.endGame
	e.endGame = false
	return v
}

// GameOver reports whether the game has ended, lost or completed.
func (e *Engine) GameOver() bool {
	return e.gameOver || e.finished
}

// ResetProgress drops all progress and starts again at the first level.
func (e *Engine) ResetProgress() {
	e.level = 0
	e.changeLevel = false
	e.endGame = false
	e.gameOver = false
	e.finished = false
	e.items = nil
	e.player = Player{Lives: MaxLives}
	e.InitLevel(false)
	e.logger.Debug("progress reset")
}

// ToggleCheat flips a cheat.
func (e *Engine) ToggleCheat(c core.Cheat) {
	e.cheats ^= c
	e.logger.Debug("cheat toggled", "cheats", int(e.cheats))
}

// Cheats returns the active cheats.
func (e *Engine) Cheats() core.Cheat {
	return e.cheats
}

// UpdatePalette recomputes the palette for the current level and hands it
// to the palette sink.
func (e *Engine) UpdatePalette() {
	e.palette = levelPalette(e.level)
	if e.pal != nil {
		e.pal.SetPalette(e.palette[:], 0, core.PaletteSize)
	}
}

// ScreenPalette returns the base palette.
func (e *Engine) ScreenPalette() []byte {
	return e.palette[:]
}

func (e *Engine) notify(msg string) {
	e.notice = msg
	e.noticeT = noticeTime
}

// levelPalette builds a grey ramp with the UI colors tinted per level.
func levelPalette(level int) core.Palette {
	var p core.Palette
	for i := 0; i < core.PaletteSize; i++ {
		v := byte(i)
		p[i*3], p[i*3+1], p[i*3+2] = v, v, v
	}

	tint := [][3]byte{
		{0x4f, 0xc3, 0xf7},
		{0xff, 0xb7, 0x4d},
		{0xba, 0x68, 0xc8},
		{0x81, 0xc7, 0x84},
	}[level%4]

	ui := [][3]byte{
		core.ColorDefault: {0xc0, 0xc0, 0xc0},
		core.ColorDim:     {0x60, 0x60, 0x60},
		core.ColorText:    {0xff, 0xff, 0xff},
		core.ColorAccent:  tint,
		core.ColorWarn:    {0xe5, 0x39, 0x35},
		core.ColorOK:      {0x43, 0xa0, 0x47},
	}
	for i, c := range ui {
		p[i*3], p[i*3+1], p[i*3+2] = c[0], c[1], c[2]
	}
	return p
}
