package layout

import (
	"keycore-go/types"
	"keycore-go/x/mathx"
)

type pressSlot struct {
	action   types.Action
	held     bool
	asserted bool // action's key was admitted to the key set
}

// keyMask is a set of key codes, one bit per usage.
type keyMask [4]uint64

func (m *keyMask) has(k types.KeyCode) bool { return m[k>>6]&(1<<(k&63)) != 0 }
func (m *keyMask) set(k types.KeyCode)      { m[k>>6] |= 1 << (k & 63) }
func (m *keyMask) clear(k types.KeyCode)    { m[k>>6] &^= 1 << (k & 63) }

type cursor struct {
	seq  int
	pos  int
	held keyMask // codes this macro has asserted and not yet released
}

// Engine owns the layer stack, press memory, macro playback and the active
// key set. It is driven from a single tick goroutine and is not safe for
// concurrent use.
type Engine struct {
	layers     []Layer
	macros     []types.Sequence
	rows, cols int

	memory  []pressSlot
	stack   layerStack
	keys    *KeySet
	playing []cursor
}

type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity bounds the number of non-modifier keys held at once.
// Values are clamped to 1..types.BootKeys.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = mathx.Clamp(n, 1, types.BootKeys) }
}

// New validates the tables and returns an idle engine.
func New(layers []Layer, macros []types.Sequence, opts ...Option) (*Engine, error) {
	if err := Validate(layers, macros); err != nil {
		return nil, err
	}
	o := options{capacity: types.BootKeys}
	for _, fn := range opts {
		fn(&o)
	}
	rows, cols := layers[0].Rows(), layers[0].Cols()
	return &Engine{
		layers: layers,
		macros: macros,
		rows:   rows,
		cols:   cols,
		memory: make([]pressSlot, rows*cols),
		keys:   NewKeySet(o.capacity),
	}, nil
}

func (e *Engine) Rows() int { return e.rows }
func (e *Engine) Cols() int { return e.cols }

func (e *Engine) slot(c types.Coord) *pressSlot {
	r, col := int(c.Row), int(c.Col)
	if r >= e.rows || col >= e.cols {
		return nil
	}
	return &e.memory[r*e.cols+col]
}

// Resolve returns the action a press at c would get right now: the first
// non-Transparent entry walking from the newest active layer down to base.
func (e *Engine) Resolve(c types.Coord) types.Action {
	for i := len(e.stack.entries) - 1; i >= 0; i-- {
		a := e.layers[e.stack.entries[i].layer].At(c)
		if a.Kind != types.ActionTransparent {
			return a
		}
	}
	return e.layers[0].At(c)
}

// Event applies one debounced transition. A release always undoes what the
// matching press did, whatever the layers look like now. Duplicate presses,
// releases without a press and out-of-range coordinates are ignored.
func (e *Engine) Event(ev types.Event) {
	s := e.slot(ev.Coord)
	if s == nil {
		return
	}
	switch ev.Kind {
	case types.Press:
		if s.held {
			return
		}
		a := e.Resolve(ev.Coord)
		s.action, s.held = a, true
		switch a.Kind {
		case types.ActionEmit:
			s.asserted = e.keys.Add(a.Key)
		case types.ActionMomentary:
			e.stack.push(a.Layer, ev.Coord)
		case types.ActionMacro:
			if len(e.macros[a.Macro].Steps) > 0 {
				e.playing = append(e.playing, cursor{seq: int(a.Macro)})
			}
		}
	case types.Release:
		if !s.held {
			return
		}
		switch s.action.Kind {
		case types.ActionEmit:
			if s.asserted {
				e.keys.Remove(s.action.Key)
			}
		case types.ActionMomentary:
			e.stack.pop(ev.Coord)
		}
		*s = pressSlot{}
	}
}

// Tick advances every in-flight macro by one step, oldest first, and
// retires the ones that finish. A macro only releases codes it asserted
// itself, so a key held elsewhere survives the macro's Release step.
func (e *Engine) Tick() {
	live := e.playing[:0]
	for _, cur := range e.playing {
		steps := e.macros[cur.seq].Steps
		st := steps[cur.pos]
		switch {
		case st.Kind == types.StepPress && !cur.held.has(st.Key):
			if e.keys.Add(st.Key) {
				cur.held.set(st.Key)
			}
		case st.Kind == types.StepRelease && cur.held.has(st.Key):
			e.keys.Remove(st.Key)
			cur.held.clear(st.Key)
		}
		cur.pos++
		if cur.pos < len(steps) {
			live = append(live, cur)
			continue
		}
		for k := 0; k < 256; k++ {
			if cur.held.has(types.KeyCode(k)) {
				e.keys.Remove(types.KeyCode(k))
			}
		}
	}
	e.playing = live
}

// AppendKeys appends the active key set in insertion order.
func (e *Engine) AppendKeys(dst []types.KeyCode) []types.KeyCode { return e.keys.AppendTo(dst) }

// AppendLayers appends the active layers, base first then in push order.
func (e *Engine) AppendLayers(dst []int) []int {
	dst = append(dst, 0)
	for _, en := range e.stack.entries {
		dst = append(dst, en.layer)
	}
	return dst
}

// Playing counts macros still in flight.
func (e *Engine) Playing() int { return len(e.playing) }

// Dropped counts keys refused because the active set was full.
func (e *Engine) Dropped() uint32 { return e.keys.Dropped() }

// Held reports whether c is currently pressed.
func (e *Engine) Held(c types.Coord) bool {
	s := e.slot(c)
	return s != nil && s.held
}
