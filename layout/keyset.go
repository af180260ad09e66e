package layout

import "keycore-go/types"

// KeySet is the ordered set of asserted key codes. Each code carries a count
// of the sources asserting it (held keys and in-flight macro steps); a code
// leaves the set only when its last source lets go.
//
// Modifiers are always admitted (there are only eight and they travel in
// the report's modifier byte). At most Capacity other distinct codes are
// held; when full, a new code is refused and counted.
type KeySet struct {
	keys     []types.KeyCode
	refs     []uint8
	normal   int
	capacity int
	dropped  uint32
}

func NewKeySet(capacity int) *KeySet {
	if capacity < 1 {
		capacity = 1
	}
	return &KeySet{
		keys:     make([]types.KeyCode, 0, capacity+8),
		refs:     make([]uint8, 0, capacity+8),
		capacity: capacity,
	}
}

func (s *KeySet) index(k types.KeyCode) int {
	for i, x := range s.keys {
		if x == k {
			return i
		}
	}
	return -1
}

// Add asserts k for one more source. It reports false if k was refused for
// lack of room; a refused source must not call Remove.
func (s *KeySet) Add(k types.KeyCode) bool {
	if k == types.KeyNo {
		return false
	}
	if i := s.index(k); i >= 0 {
		if s.refs[i] < 255 {
			s.refs[i]++
			return true
		}
		s.dropped++
		return false
	}
	if !k.IsModifier() {
		if s.normal >= s.capacity {
			s.dropped++
			return false
		}
		s.normal++
	}
	s.keys = append(s.keys, k)
	s.refs = append(s.refs, 1)
	return true
}

// Remove drops one source of k, deleting k once none remain. The order of
// the other keys is preserved. Absent keys are ignored.
func (s *KeySet) Remove(k types.KeyCode) {
	i := s.index(k)
	if i < 0 {
		return
	}
	if s.refs[i]--; s.refs[i] > 0 {
		return
	}
	s.keys = append(s.keys[:i], s.keys[i+1:]...)
	s.refs = append(s.refs[:i], s.refs[i+1:]...)
	if !k.IsModifier() {
		s.normal--
	}
}

func (s *KeySet) Contains(k types.KeyCode) bool { return s.index(k) >= 0 }

// Refs counts the sources currently asserting k.
func (s *KeySet) Refs(k types.KeyCode) int {
	if i := s.index(k); i >= 0 {
		return int(s.refs[i])
	}
	return 0
}

// Len counts distinct keys, modifiers included.
func (s *KeySet) Len() int      { return len(s.keys) }
func (s *KeySet) Capacity() int { return s.capacity }
func (s *KeySet) Dropped() uint32 {
	return s.dropped
}

// AppendTo appends the keys in insertion order.
func (s *KeySet) AppendTo(dst []types.KeyCode) []types.KeyCode {
	return append(dst, s.keys...)
}
