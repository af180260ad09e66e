package matrix

import (
	"keycore-go/errcode"
	"keycore-go/types"
)

// ExpanderPort is the subset of an MCP23017 the expander scanner needs.
// Port A drives rows active-low; port B senses columns with pull-ups.
type ExpanderPort interface {
	WritePortA(v uint8) error
	ReadPortB() (uint8, error)
}

// Expander scans up to 8×8 switches through an I²C port expander.
type Expander struct {
	dev    ExpanderPort
	grid   types.Grid
	next   types.Grid
	errors uint32
}

var _ Scanner = (*Expander)(nil)

// NewExpander releases every drive line and returns a scanner. The device
// must already be configured (port A output, port B input with pull-ups).
func NewExpander(dev ExpanderPort, rows, cols int) (*Expander, error) {
	if rows <= 0 || cols <= 0 || rows > 8 || cols > 8 {
		return nil, errcode.New(errcode.InvalidParams, "matrix.NewExpander", "rows and cols must be 1..8")
	}
	if err := dev.WritePortA(0xFF); err != nil {
		return nil, errcode.Wrap(errcode.BusIO, "matrix.NewExpander", err)
	}
	return &Expander{
		dev:  dev,
		grid: types.NewGrid(rows, cols),
		next: types.NewGrid(rows, cols),
	}, nil
}

func (e *Expander) Rows() int { return e.grid.Rows() }
func (e *Expander) Cols() int { return e.grid.Cols() }

// Errors counts scans abandoned on a bus error.
func (e *Expander) Errors() uint32 { return e.errors }

// Scan reads the whole matrix. On any bus error the previous grid is
// returned unchanged so a glitch cannot produce spurious releases.
func (e *Expander) Scan(uint32) types.Grid {
	if err := e.scanInto(e.next); err != nil {
		e.errors++
		_ = e.dev.WritePortA(0xFF)
		return e.grid
	}
	e.grid, e.next = e.next, e.grid
	return e.grid
}

func (e *Expander) scanInto(g types.Grid) error {
	for r := 0; r < g.Rows(); r++ {
		if err := e.dev.WritePortA(^uint8(1 << r)); err != nil {
			return err
		}
		v, err := e.dev.ReadPortB()
		if err != nil {
			return err
		}
		for c := 0; c < g.Cols(); c++ {
			g.Set(r, c, v&(1<<c) == 0)
		}
	}
	return e.dev.WritePortA(0xFF)
}
