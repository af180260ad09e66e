// Package debounce turns raw per-tick switch readings into clean
// press/release events.
//
// Each switch commits a new state only after reading it unchanged for K
// consecutive ticks. A switch bouncing faster than that never emits.
package debounce

import (
	"iter"

	"keycore-go/types"
	"keycore-go/x/mathx"
)

// DefaultThreshold is the number of agreeing ticks needed to commit.
const DefaultThreshold = 5

type cell struct {
	stable  bool
	pending bool
	run     uint8
}

// Debouncer holds one cell per switch. Not safe for concurrent use.
type Debouncer struct {
	rows, cols int
	k          uint8
	cells      []cell
}

// New returns a debouncer with every switch stable-open. threshold is
// clamped to 1..255.
func New(rows, cols, threshold int) *Debouncer {
	return &Debouncer{
		rows:  rows,
		cols:  cols,
		k:     uint8(mathx.Clamp(threshold, 1, 255)),
		cells: make([]cell, rows*cols),
	}
}

func (d *Debouncer) Threshold() int { return int(d.k) }

// SetThreshold changes K without resetting run counters.
func (d *Debouncer) SetThreshold(k int) { d.k = uint8(mathx.Clamp(k, 1, 255)) }

// Stable reports the committed state of c.
func (d *Debouncer) Stable(c types.Coord) bool {
	r, col := int(c.Row), int(c.Col)
	if r >= d.rows || col >= d.cols {
		return false
	}
	return d.cells[r*d.cols+col].stable
}

// Events feeds one grid and yields the resulting events in row-major order.
// The sequence is single-use: cells advance as it is consumed, so stopping
// early leaves later cells unprocessed for this tick. Grid cells outside
// the debouncer's shape are ignored.
func (d *Debouncer) Events(g types.Grid) iter.Seq[types.Event] {
	return func(yield func(types.Event) bool) {
		for r := 0; r < d.rows; r++ {
			for c := 0; c < d.cols; c++ {
				ev, ok := d.step(r, c, g.Get(r, c))
				if ok && !yield(ev) {
					return
				}
			}
		}
	}
}

// Update feeds one grid and appends the events to dst.
func (d *Debouncer) Update(dst []types.Event, g types.Grid) []types.Event {
	for ev := range d.Events(g) {
		dst = append(dst, ev)
	}
	return dst
}

func (d *Debouncer) step(r, c int, raw bool) (types.Event, bool) {
	cl := &d.cells[r*d.cols+c]
	if raw == cl.pending {
		if cl.run < d.k {
			cl.run++
		}
	} else {
		cl.pending = raw
		cl.run = 1
	}
	if cl.run < d.k || cl.pending == cl.stable {
		return types.Event{}, false
	}
	cl.stable = cl.pending
	kind := types.Release
	if cl.stable {
		kind = types.Press
	}
	return types.Event{Coord: types.Coord{Row: uint8(r), Col: uint8(c)}, Kind: kind}, true
}
