// Package selection holds the two-click range state of one plate session.
//
// State is a plain value: every operation returns a new State and never
// mutates shared data, so sessions cannot interfere with each other.
package selection

import (
	"platemap-core/plate"
)

// Phase is the position in the two-click state machine.
type Phase int

const (
	Empty        Phase = iota // no wells clicked
	PartialRange              // start set
	RangeSet                  // start and end set; further clicks ignored until Reset
)

func (p Phase) String() string {
	switch p {
	case Empty:
		return "empty"
	case PartialRange:
		return "partial"
	case RangeSet:
		return "range"
	default:
		return "unknown"
	}
}

// State is the selection of one session. The zero value is Empty.
type State struct {
	phase   Phase
	start   plate.Well
	end     plate.Well
	removed plate.WellSet
}

func (s State) Phase() Phase { return s.phase }

// Start returns the first clicked well, if any.
func (s State) Start() (plate.Well, bool) { return s.start, s.phase >= PartialRange }

// End returns the second clicked well, if any.
func (s State) End() (plate.Well, bool) { return s.end, s.phase == RangeSet }

// Click records a well click. Off-plate wells and clicks after the range is
// complete leave the state unchanged.
func (s State) Click(w plate.Well) State {
	if !w.Valid() {
		return s
	}
	switch s.phase {
	case Empty:
		s.start = w
		s.phase = PartialRange
	case PartialRange:
		s.end = w
		s.phase = RangeSet
	}
	return s
}

// Exclude marks w as removed in any phase. Removal is one-way.
func (s State) Exclude(w plate.Well) State {
	s.removed = s.removed.Add(w)
	return s
}

// Reset clears the range and all removals.
func (s State) Reset() State { return State{} }

// Removed lists excluded wells in row-major order.
func (s State) Removed() []plate.Well { return s.removed.Wells() }

// Rect returns the full rectangle spanned by the range, ignoring removals.
// It is empty unless the range is complete.
func (s State) Rect() plate.WellSet {
	if s.phase != RangeSet {
		return plate.WellSet{}
	}
	return plate.Rect(s.start, s.end)
}

// ActiveSet is the rectangle minus removed wells.
func (s State) ActiveSet() plate.WellSet { return s.Rect().Minus(s.removed) }

// Active lists the active wells in row-major order.
func (s State) Active() []plate.Well { return s.ActiveSet().Wells() }

// Mark is how a well shows on the plate map.
type Mark int

const (
	Idle Mark = iota
	Selected
	StartMark
	EndMark
	RemovedMark
)

func (m Mark) String() string {
	switch m {
	case Selected:
		return "selected"
	case StartMark:
		return "start"
	case EndMark:
		return "end"
	case RemovedMark:
		return "removed"
	default:
		return "idle"
	}
}

// MarkOf classifies w. Removal wins over the start/end highlight, which wins
// over plain selection.
func (s State) MarkOf(w plate.Well) Mark {
	switch {
	case s.removed.Has(w):
		return RemovedMark
	case s.phase >= PartialRange && w == s.start:
		return StartMark
	case s.phase == RangeSet && w == s.end:
		return EndMark
	case s.Rect().Has(w):
		return Selected
	default:
		return Idle
	}
}

// Map returns the mark of every well, indexed [row][col].
func (s State) Map() [plate.Rows][plate.Cols]Mark {
	var m [plate.Rows][plate.Cols]Mark
	for _, w := range plate.All() {
		m[w.Row][w.Col] = s.MarkOf(w)
	}
	return m
}
