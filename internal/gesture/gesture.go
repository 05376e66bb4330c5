// Package gesture classifies horizontal swipes from drag deltas.
package gesture

import "math"

const (
	// SwipeThreshold is the horizontal travel a swipe must exceed.
	SwipeThreshold = 50
	// PerpendicularLimit bounds the vertical travel of a swipe.
	PerpendicularLimit = 20
)

// Direction is the outcome of a classified swipe.
type Direction int

const (
	None Direction = iota
	// Next is a left swipe: content moves towards the following page.
	Next
	// Previous is a right swipe.
	Previous
)

func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Previous:
		return "previous"
	default:
		return "none"
	}
}

// Classify maps a released gesture's displacement to a direction. Diagonal
// gestures are inert.
func Classify(dx, dy float64) Direction {
	if math.Abs(dx) <= SwipeThreshold || math.Abs(dy) >= PerpendicularLimit {
		return None
	}
	if dx < 0 {
		return Next
	}
	return Previous
}

// Tracker turns terminal mouse press and release cells into displacements in
// device-independent units.
type Tracker struct {
	columnUnits float64
	rowUnits    float64

	active bool
	startX int
	startY int
}

// NewTracker returns a tracker scaling one column to columnUnits and one row
// to rowUnits. Non-positive scales fall back to 8 and 16.
func NewTracker(columnUnits, rowUnits float64) *Tracker {
	if columnUnits <= 0 {
		columnUnits = 8
	}
	if rowUnits <= 0 {
		rowUnits = 16
	}
	return &Tracker{columnUnits: columnUnits, rowUnits: rowUnits}
}

// Press starts a gesture at the given cell.
func (t *Tracker) Press(x, y int) {
	t.active = true
	t.startX = x
	t.startY = y
}

// Active reports whether a gesture is in progress.
func (t *Tracker) Active() bool {
	return t.active
}

// Cancel abandons the gesture in progress.
func (t *Tracker) Cancel() {
	t.active = false
}

// Release ends the gesture and returns its displacement. ok is false when no
// gesture was in progress.
func (t *Tracker) Release(x, y int) (dx, dy float64, ok bool) {
	if !t.active {
		return 0, 0, false
	}
	t.active = false
	dx = float64(x-t.startX) * t.columnUnits
	dy = float64(y-t.startY) * t.rowUnits
	return dx, dy, true
}

// Delta returns the displacement so far without ending the gesture.
func (t *Tracker) Delta(x, y int) (dx, dy float64, ok bool) {
	if !t.active {
		return 0, 0, false
	}
	return float64(x-t.startX) * t.columnUnits, float64(y-t.startY) * t.rowUnits, true
}
