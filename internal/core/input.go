package core

// KeyCode identifies a physical key or platform button as delivered by the
// host. The host is responsible for mapping its own key representation to
// these codes.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyAlt
	KeyShift
	KeyCtrl
	KeySpace
	KeyTab
	KeyEscape
	KeyI // inventory
	KeyJ // jump
	KeyU // use
	KeyReturn
	Key1
	Key2
	Key3
	Key4
	Key5
	KeyPageUp   // footstep
	KeyPageDown // backstep
	KeyFarNear
	KeyCheatLifeCounter
)

// String returns a human-readable name for the key code.
func (k KeyCode) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyAlt:
		return "Alt"
	case KeyShift:
		return "Shift"
	case KeyCtrl:
		return "Ctrl"
	case KeySpace:
		return "Space"
	case KeyTab:
		return "Tab"
	case KeyEscape:
		return "Escape"
	case KeyI:
		return "I"
	case KeyJ:
		return "J"
	case KeyU:
		return "U"
	case KeyReturn:
		return "Return"
	case Key1, Key2, Key3, Key4, Key5:
		return string(rune('1' + int(k-Key1)))
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyFarNear:
		return "FarNear"
	case KeyCheatLifeCounter:
		return "CheatLifeCounter"
	default:
		return "Unknown"
	}
}

// Direction is a set of held directional inputs. Opposing directions are
// tracked independently; consumers decide how to resolve them.
type Direction uint8

const (
	DirLeft Direction = 1 << iota
	DirRight
	DirUp
	DirDown
)

// Has reports whether every bit of d2 is held in d.
func (d Direction) Has(d2 Direction) bool {
	return d&d2 == d2
}

// Cheat is a bitmask of toggled cheats owned by the simulation engine.
type Cheat uint32

const (
	CheatLifeCounter Cheat = 1 << iota
)

// PointerCount is the number of tracked pointer slots (mouse plus touches).
const PointerCount = 4

// NumKeyCount is the number of numbered action keys.
const NumKeyCount = 5

// PointerState is a single pointer reading.
type PointerState struct {
	X, Y int
	Down bool
}

// Pointer holds the current reading and the one before it, so consuming
// modes can detect press and release edges.
type Pointer struct {
	Cur  PointerState
	Prev PointerState

	// Edge is set when the pointer went down during the current tick and
	// cleared by EndTick.
	Edge bool
}

// Pressed reports whether the pointer went down during the current tick. A
// pointer held across ticks reports it once.
func (p Pointer) Pressed() bool {
	return p.Edge && p.Cur.Down
}

// Released reports whether the pointer went up since the previous reading.
func (p Pointer) Released() bool {
	return !p.Cur.Down && p.Prev.Down
}

// Snapshot is the input state read by whichever mode is active. It is
// allocated once and mutated in place for the lifetime of the run loop.
type Snapshot struct {
	Dir Direction

	Shift     bool
	Ctrl      bool
	Alt       bool
	Space     bool
	Tab       bool
	Escape    bool
	Enter     bool
	Inventory bool
	Jump      bool
	Use       bool
	FootStep  bool
	BackStep  bool
	FarNear   bool

	NumKeys [NumKeyCount]bool

	Pointers [PointerCount]Pointer
}

// NewSnapshot returns a released snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// NumKey reports whether numbered action key n (1-based) is held.
func (s *Snapshot) NumKey(n int) bool {
	if n < 1 || n > NumKeyCount {
		return false
	}
	return s.NumKeys[n-1]
}

// Pointer returns the pointer slot i, or a zero pointer when out of range.
func (s *Snapshot) Pointer(i int) Pointer {
	if i < 0 || i >= PointerCount {
		return Pointer{}
	}
	return s.Pointers[i]
}

// EndTick clears the transient down edge of every pointer slot. The level
// state in Cur persists until a release event arrives.
func (s *Snapshot) EndTick() {
	for i := range s.Pointers {
		s.Pointers[i].Prev.Down = false
		s.Pointers[i].Edge = false
	}
}

// Reset releases every key and pointer.
func (s *Snapshot) Reset() {
	*s = Snapshot{}
}

// CheatToggler receives cheat toggles from the translator.
type CheatToggler interface {
	ToggleCheat(c Cheat)
}

// Translator converts raw host events into Snapshot mutations. Key fields are
// level triggered: a field reflects whether its key is currently held.
type Translator struct {
	snap   *Snapshot
	cheats CheatToggler
}

// NewTranslator creates a translator writing into snap. cheats may be nil.
func NewTranslator(snap *Snapshot, cheats CheatToggler) *Translator {
	return &Translator{snap: snap, cheats: cheats}
}

// Snapshot returns the snapshot the translator writes into.
func (t *Translator) Snapshot() *Snapshot {
	return t.snap
}

// KeyEvent sets or clears the single snapshot field mapped to code.
// Unknown codes are ignored.
func (t *Translator) KeyEvent(code KeyCode, pressed bool) {
	s := t.snap
	switch code {
	case KeyLeft:
		s.setDir(DirLeft, pressed)
	case KeyRight:
		s.setDir(DirRight, pressed)
	case KeyUp:
		s.setDir(DirUp, pressed)
	case KeyDown:
		s.setDir(DirDown, pressed)
	case KeyAlt:
		s.Alt = pressed
	case KeyShift:
		s.Shift = pressed
	case KeyCtrl:
		s.Ctrl = pressed
	case KeySpace:
		s.Space = pressed
	case KeyTab:
		s.Tab = pressed
	case KeyEscape:
		s.Escape = pressed
	case KeyI:
		s.Inventory = pressed
	case KeyJ:
		s.Jump = pressed
	case KeyU:
		s.Use = pressed
	case KeyReturn:
		s.Enter = pressed
	case Key1, Key2, Key3, Key4, Key5:
		s.NumKeys[code-Key1] = pressed
	case KeyPageUp:
		s.FootStep = pressed
	case KeyPageDown:
		s.BackStep = pressed
	case KeyFarNear:
		s.FarNear = pressed
	case KeyCheatLifeCounter:
		// Toggled on press only, so a tap flips the cheat once.
		if pressed && t.cheats != nil {
			t.cheats.ToggleCheat(CheatLifeCounter)
		}
	}
}

// PointerEvent records a new reading for pointer slot i, shifting the current
// reading into the previous one. Out-of-range slots are ignored.
func (t *Translator) PointerEvent(i, x, y int, pressed bool) {
	if i < 0 || i >= PointerCount {
		return
	}
	p := &t.snap.Pointers[i]
	if pressed && !p.Cur.Down {
		p.Edge = true
	}
	p.Prev = p.Cur
	p.Cur = PointerState{X: x, Y: y, Down: pressed}
}

func (s *Snapshot) setDir(d Direction, pressed bool) {
	if pressed {
		s.Dir |= d
	} else {
		s.Dir &^= d
	}
}
