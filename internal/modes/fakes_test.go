package modes

import (
	"time"

	"github.com/vovakirdan/f2b/internal/core"
	"github.com/vovakirdan/f2b/internal/cutscene"
)

type fakeEngine struct {
	initLevels     []bool
	ticks          int
	changeLevel    bool
	endGame        bool
	gameOver       bool
	resets         int
	cabinetItems   int
	paletteUpdates int
	palette        []byte

	inventoryAvailable bool
	inventoryOpens     int
	inventoryCloses    int

	cabinetOpens  int
	cabinetCloses int

	menuDone   bool
	menuCloses int

	installerUpdates int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		inventoryAvailable: true,
		palette:            make([]byte, core.PaletteSize*3),
	}
}

func (e *fakeEngine) InitLevel(restart bool)     { e.initLevels = append(e.initLevels, restart) }
func (e *fakeEngine) UpdateInput(*core.Snapshot) {}
func (e *fakeEngine) Tick()                      { e.ticks++ }

func (e *fakeEngine) TakeChangeLevel() bool {
	v := e.changeLevel
	e.changeLevel = false
	return v
}

func (e *fakeEngine) TakeEndGame() bool {
	v := e.endGame
	e.endGame = false
	return v
}

func (e *fakeEngine) GameOver() bool        { return e.gameOver }
func (e *fakeEngine) ResetProgress()        { e.resets++ }
func (e *fakeEngine) CabinetItems() int     { return e.cabinetItems }
func (e *fakeEngine) UpdatePalette()        { e.paletteUpdates++ }
func (e *fakeEngine) ScreenPalette() []byte { return e.palette }

func (e *fakeEngine) OpenInventory() bool {
	e.inventoryOpens++
	return e.inventoryAvailable
}
func (e *fakeEngine) UpdateInventory(*core.Snapshot) {}
func (e *fakeEngine) CloseInventory()                { e.inventoryCloses++ }

func (e *fakeEngine) OpenCabinet()                 { e.cabinetOpens++ }
func (e *fakeEngine) UpdateCabinet(*core.Snapshot) {}
func (e *fakeEngine) CloseCabinet()                { e.cabinetCloses++ }

func (e *fakeEngine) OpenMenu()                      {}
func (e *fakeEngine) UpdateMenu(*core.Snapshot) bool { return !e.menuDone }
func (e *fakeEngine) CloseMenu()                     { e.menuCloses++ }

func (e *fakeEngine) OpenInstaller()                 {}
func (e *fakeEngine) UpdateInstaller(*core.Snapshot) { e.installerUpdates++ }

type fakeRenderer struct {
	overlayW, overlayH int
	overlayResizes     int
	paletteCount       int
}

func (r *fakeRenderer) ResizeOverlay(w, h int) {
	r.overlayW, r.overlayH = w, h
	r.overlayResizes++
}

func (r *fakeRenderer) SetPalette(_ []byte, _, count int) { r.paletteCount = count }
func (r *fakeRenderer) ResizeScreen(int, int, float64)    {}
func (r *fakeRenderer) DrawOverlay()                      {}

// instantPlayer loads every clip. Clips end on their first update unless
// hold is set, in which case they play until skipped.
type instantPlayer struct {
	hold        bool
	skipped     bool
	interrupted bool
}

func (p *instantPlayer) Load(cutscene.ClipID) bool {
	p.skipped = false
	p.interrupted = false
	return true
}

func (p *instantPlayer) Unload() {}

func (p *instantPlayer) Update(time.Duration) bool {
	return p.hold && !p.skipped
}

func (p *instantPlayer) Skip(abandon bool) {
	p.skipped = true
	p.interrupted = p.interrupted || abandon
}

func (p *instantPlayer) IsInterrupted() bool { return p.interrupted }
