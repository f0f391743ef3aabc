package cutscene

import (
	"fmt"
	"strconv"
)

// ClipID identifies a single cutscene sequence unit.
type ClipID int

// None means no clip: the sequence is over.
const None ClipID = -1

// Well-known clips.
const (
	ClipLogoEA      ClipID = 47
	ClipLogoDSI     ClipID = 39
	ClipIntro       ClipID = 13
	ClipTitle       ClipID = 37
	ClipGenDeb      ClipID = 53
	ClipClosingMGM  ClipID = 48
	ClipFadeToBlack ClipID = 44
	ClipDemoClosing ClipID = 43
	ClipLevelCard   ClipID = 29
)

// String returns the numeric id, or "none".
func (id ClipID) String() string {
	if id < 0 {
		return "none"
	}
	return strconv.Itoa(int(id))
}

// Table is the static fallback order of clips. It is stored as chains
// rather than a flat successor map: a clip that appears in several chains
// (the intro is shared by the opening and the ending) continues along the
// chain the sequence is currently on.
type Table struct {
	chains [][]ClipID
}

// NewTable builds a table from chains. Chains are searched in order when a
// clip is started outside any chain context.
func NewTable(chains [][]ClipID) (*Table, error) {
	t := &Table{}
	for i, c := range chains {
		if len(c) == 0 {
			return nil, fmt.Errorf("cutscene: chain %d is empty", i)
		}
		for _, id := range c {
			if id < 0 {
				return nil, fmt.Errorf("cutscene: chain %d contains negative clip %d", i, id)
			}
		}
		t.chains = append(t.chains, append([]ClipID(nil), c...))
	}
	return t, nil
}

// DefaultTable returns the narrative order: the opening logos into the
// intro, title and credits, and the closing credits after the last level.
func DefaultTable() *Table {
	t, _ := NewTable([][]ClipID{
		{ClipLogoEA, ClipLogoDSI, ClipIntro, ClipTitle, ClipGenDeb},
		{ClipClosingMGM, ClipFadeToBlack, ClipIntro},
	})
	return t
}

// Chains returns a copy of the table's chains.
func (t *Table) Chains() [][]ClipID {
	out := make([][]ClipID, len(t.chains))
	for i, c := range t.chains {
		out[i] = append([]ClipID(nil), c...)
	}
	return out
}

// position is a location inside the table. chain < 0 means "not in table".
type position struct {
	chain int
	index int
}

var nowhere = position{chain: -1}

// locate finds the first chain containing id.
func (t *Table) locate(id ClipID) position {
	for ci, c := range t.chains {
		for i, cid := range c {
			if cid == id {
				return position{chain: ci, index: i}
			}
		}
	}
	return nowhere
}

// follow returns the position of id when it directly succeeds at, so a
// queued clip that happens to be the next chain entry keeps the context.
func (t *Table) follow(at position, id ClipID) position {
	if at.chain >= 0 {
		c := t.chains[at.chain]
		if at.index+1 < len(c) && c[at.index+1] == id {
			return position{chain: at.chain, index: at.index + 1}
		}
	}
	return t.locate(id)
}

// successor returns the clip after at, or None on a table miss.
func (t *Table) successor(at position) ClipID {
	if at.chain < 0 {
		return None
	}
	c := t.chains[at.chain]
	if at.index+1 >= len(c) {
		return None
	}
	return c[at.index+1]
}

// Next returns the fallback successor of id when started outside any chain
// context. Returns None on a miss.
func (t *Table) Next(id ClipID) ClipID {
	return t.successor(t.locate(id))
}
