// Package cutscene decides which clip plays next. A Sequencer holds the clip
// to play, a runtime override queue that preempts the static fallback Table,
// and the start delay used by the simulation to trigger cutscene mode.
package cutscene

import (
	"time"
)

// Player is the cutscene playback collaborator.
type Player interface {
	// Load prepares a clip for playback. Returns false if it cannot be loaded.
	Load(id ClipID) bool

	// Unload releases the current clip.
	Unload()

	// Update advances playback by elapsed. Returns false once the clip is over.
	Update(elapsed time.Duration) bool

	// Skip ends the current clip at the next Update. When abandon is set the
	// remaining sequence is abandoned as well.
	Skip(abandon bool)

	// IsInterrupted reports whether the user abandoned the sequence.
	IsInterrupted() bool
}

// Options tunes end-of-game detection.
type Options struct {
	// CompletionClips are clips that mark the end of the game. A sequence
	// started from, or ending on, one of them asks for a progress reset.
	CompletionClips []ClipID

	// Demo enables DemoClosingClip as an additional completion clip.
	Demo            bool
	DemoClosingClip ClipID
}

// DefaultOptions returns the options matching DefaultTable.
func DefaultOptions() Options {
	return Options{
		CompletionClips: []ClipID{ClipClosingMGM},
		DemoClosingClip: ClipDemoClosing,
	}
}

// Result describes the outcome of Advance.
type Result struct {
	// Finished is the clip that just ended.
	Finished ClipID

	// Next is the clip now loaded, or None when the sequence is over.
	Next ClipID

	// Completed is set when the sequence is over and it closed the game.
	// The caller resets simulation progress instead of resuming play.
	Completed bool
}

// Sequencer is the cutscene cursor.
type Sequencer struct {
	table  *Table
	player Player
	opts   Options

	current ClipID
	origin  ClipID
	at      position
	delay   int
	queue   []ClipID
}

// NewSequencer creates a sequencer with nothing to play.
func NewSequencer(table *Table, player Player, opts Options) *Sequencer {
	if table == nil {
		table = DefaultTable()
	}
	return &Sequencer{
		table:   table,
		player:  player,
		opts:    opts,
		current: None,
		origin:  None,
		at:      nowhere,
	}
}

// Play sets the clip to play once the start delay (in ticks) has elapsed.
// It starts a new sequence: id becomes the origin of the fallback chain.
func (s *Sequencer) Play(id ClipID, delay int) {
	s.current = id
	s.origin = id
	s.at = s.table.locate(id)
	s.delay = max(delay, 0)
}

// Current returns the clip to play, or None.
func (s *Sequencer) Current() ClipID {
	return s.current
}

// Active reports whether a clip is waiting to be played.
func (s *Sequencer) Active() bool {
	return s.current != None
}

// Delay returns the remaining start delay in ticks.
func (s *Sequencer) Delay() int {
	return s.delay
}

// CountDown decrements the start delay of an active clip.
func (s *Sequencer) CountDown() {
	if s.current != None && s.delay > 0 {
		s.delay--
	}
}

// Ready reports whether an active clip has reached the end of its delay.
func (s *Sequencer) Ready() bool {
	return s.current != None && s.delay == 0
}

// Enqueue appends clips to the override queue.
func (s *Sequencer) Enqueue(ids ...ClipID) {
	for _, id := range ids {
		if id >= 0 {
			s.queue = append(s.queue, id)
		}
	}
}

// Dequeue pops the head of the override queue, or returns None.
func (s *Sequencer) Dequeue() ClipID {
	if len(s.queue) == 0 {
		return None
	}
	id := s.queue[0]
	s.queue = s.queue[1:]
	return id
}

// QueueLen returns the number of queued override clips.
func (s *Sequencer) QueueLen() int {
	return len(s.queue)
}

// Load loads the current clip into the player.
func (s *Sequencer) Load() bool {
	if s.current == None {
		return false
	}
	return s.player.Load(s.current)
}

// Update advances the loaded clip. Returns false once it has finished.
func (s *Sequencer) Update(elapsed time.Duration) bool {
	return s.player.Update(elapsed)
}

// Unload releases the loaded clip.
func (s *Sequencer) Unload() {
	s.player.Unload()
}

// Skip ends the current clip; abandon also drops the rest of the sequence.
func (s *Sequencer) Skip(abandon bool) {
	s.player.Skip(abandon)
}

// Advance picks and loads the clip that follows the one that just finished.
//
// An interrupted sequence is abandoned and its override queue is dropped
// with it, so clips queued for that sequence never play. Otherwise the
// override queue is consulted first, then the fallback table. A clip that
// fails to load is passed over and its own successor tried; a table miss
// ends the sequence.
func (s *Sequencer) Advance() Result {
	res := Result{Finished: s.current, Next: None}

	if s.player.IsInterrupted() {
		s.current = None
		s.at = nowhere
		s.queue = s.queue[:0]
		res.Completed = s.completes(res.Finished) || s.completes(s.origin)
		return res
	}

	for {
		next := s.Dequeue()
		var at position
		if next != None {
			at = s.table.follow(s.at, next)
		} else {
			next = s.table.successor(s.at)
			at = position{chain: s.at.chain, index: s.at.index + 1}
		}
		if next == None {
			s.current = None
			s.at = nowhere
			break
		}
		s.current = next
		s.at = at
		if s.player.Load(next) {
			break
		}
	}

	res.Next = s.current
	if res.Next == None {
		res.Completed = s.completes(res.Finished) || s.completes(s.origin)
	}
	return res
}

func (s *Sequencer) completes(id ClipID) bool {
	if id == None {
		return false
	}
	for _, c := range s.opts.CompletionClips {
		if c == id {
			return true
		}
	}
	return s.opts.Demo && id == s.opts.DemoClosingClip
}
