package layout

import "keycore-go/types"

type stackEntry struct {
	layer int
	owner types.Coord
}

// layerStack holds the momentary layers above the implicit base, oldest
// first. Entries are removed by owner, not by position.
type layerStack struct {
	entries []stackEntry
}

func (s *layerStack) push(layer int, owner types.Coord) {
	s.entries = append(s.entries, stackEntry{layer: layer, owner: owner})
}

// pop removes the entry pushed by owner, wherever it sits.
func (s *layerStack) pop(owner types.Coord) bool {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].owner == owner {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (s *layerStack) len() int { return len(s.entries) }
