package types

import "strconv"

// Coord addresses one physical switch.
type Coord struct {
	Row uint8
	Col uint8
}

func (c Coord) String() string {
	return "(" + strconv.Itoa(int(c.Row)) + "," + strconv.Itoa(int(c.Col)) + ")"
}

type EventKind uint8

const (
	Press EventKind = iota + 1
	Release
)

func (k EventKind) String() string {
	switch k {
	case Press:
		return "press"
	case Release:
		return "release"
	default:
		return "unknown"
	}
}

// Event is a debounced switch transition.
type Event struct {
	Coord Coord
	Kind  EventKind
}

// Grid is one tick's raw switch states, row-major. Producers may reuse the
// backing storage on the next tick; consumers must not retain it.
type Grid struct {
	rows, cols int
	cells      []bool
}

func NewGrid(rows, cols int) Grid {
	return Grid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
}

func (g Grid) Rows() int { return g.rows }
func (g Grid) Cols() int { return g.cols }

// Get reports the cell state; out-of-range cells read as open.
func (g Grid) Get(row, col int) bool {
	if row < 0 || col < 0 || row >= g.rows || col >= g.cols {
		return false
	}
	return g.cells[row*g.cols+col]
}

// Set writes a cell; out-of-range writes are dropped.
func (g Grid) Set(row, col int, closed bool) {
	if row < 0 || col < 0 || row >= g.rows || col >= g.cols {
		return
	}
	g.cells[row*g.cols+col] = closed
}

// Clear opens every cell.
func (g Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// CopyFrom overwrites g with src where the shapes overlap.
func (g Grid) CopyFrom(src Grid) {
	if g.rows == src.rows && g.cols == src.cols {
		copy(g.cells, src.cells)
		return
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.cells[r*g.cols+c] = src.Get(r, c)
		}
	}
}
