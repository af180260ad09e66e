// Package report packs the active key set into boot-protocol keyboard
// reports and hands the latest one to the transport.
package report

import (
	"sync"

	"keycore-go/types"
)

// Assembler builds reports and remembers the last one to detect changes.
// It belongs to the tick goroutine.
type Assembler struct {
	last  types.KeyboardReport
	valid bool
}

// Assemble packs keys in order: modifiers into the bitmask, others into
// the six slots. More than six non-modifier keys is reported as phantom
// state (every slot ErrorRollOver). changed is true for the first report
// and whenever the output differs from the previous one.
//
// The layout engine never holds more than types.BootKeys non-modifiers, so
// in the keyboard service saturation is handled by layout.KeySet and the
// ErrorRollOver branch is only reached by callers passing longer lists.
func (a *Assembler) Assemble(keys []types.KeyCode) (r types.KeyboardReport, changed bool) {
	n := 0
	for _, k := range keys {
		switch {
		case k == types.KeyNo:
		case k.IsModifier():
			r.Modifiers |= k.ModifierBit()
		case n < types.BootKeys:
			r.Keys[n] = k
			n++
		default:
			n++
		}
	}
	if n > types.BootKeys {
		for i := range r.Keys {
			r.Keys[i] = types.KeyErrorRollOver
		}
	}
	changed = !a.valid || r != a.last
	a.last, a.valid = r, true
	return r, changed
}

// Latch is the hand-off point between the tick and transport goroutines.
// Both sides hold the lock only for a struct copy.
type Latch struct {
	mu  sync.Mutex
	r   types.KeyboardReport
	seq uint32
}

// Store publishes r and bumps the sequence number.
func (l *Latch) Store(r types.KeyboardReport) {
	l.mu.Lock()
	l.r = r
	l.seq++
	l.mu.Unlock()
}

// Load returns a copy of the latest report and its sequence number
// (0 before the first Store).
func (l *Latch) Load() (types.KeyboardReport, uint32) {
	l.mu.Lock()
	r, seq := l.r, l.seq
	l.mu.Unlock()
	return r, seq
}
