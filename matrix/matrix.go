// Package matrix scans a switch matrix into a raw grid once per tick.
//
// A scanner asserts one drive line at a time, samples every sense line and
// restores the drive line before moving on, so no drive line is left
// asserted when Scan returns. Readings are raw: bounce and stuck lines are
// reported as seen and filtered downstream.
package matrix

import (
	"keycore-go/errcode"
	"keycore-go/hal"
	"keycore-go/types"
)

// Scanner produces one raw grid per tick. The returned grid is reused on
// the next call.
type Scanner interface {
	Scan(tick uint32) types.Grid
	Rows() int
	Cols() int
}

const maxLines = 255

type Config struct {
	Drive []hal.GPIOPin
	Sense []hal.GPIOPin
	// DriveCols maps drive lines to columns and sense lines to rows.
	DriveCols bool
	// ActiveLow drives the selected line low and reads a closed switch as low
	// (sense lines pulled up). Otherwise the polarity is inverted.
	ActiveLow bool
	// Settle runs between asserting a drive line and sampling, if set.
	Settle func()
}

// Matrix is a GPIO matrix scanner.
type Matrix struct {
	drive     []hal.GPIOPin
	sense     []hal.GPIOPin
	driveCols bool
	active    bool
	settle    func()
	grid      types.Grid
}

var _ Scanner = (*Matrix)(nil)

// New configures the lines and returns a scanner. All drive lines start
// de-asserted.
func New(cfg Config) (*Matrix, error) {
	if len(cfg.Drive) == 0 || len(cfg.Sense) == 0 {
		return nil, errcode.New(errcode.InvalidParams, "matrix.New", "no drive or sense lines")
	}
	if len(cfg.Drive) > maxLines || len(cfg.Sense) > maxLines {
		return nil, errcode.New(errcode.InvalidParams, "matrix.New", "too many lines")
	}
	m := &Matrix{
		drive:     cfg.Drive,
		sense:     cfg.Sense,
		driveCols: cfg.DriveCols,
		active:    !cfg.ActiveLow,
		settle:    cfg.Settle,
	}
	pull := hal.PullDown
	if cfg.ActiveLow {
		pull = hal.PullUp
	}
	for _, p := range cfg.Sense {
		if err := p.ConfigureInput(pull); err != nil {
			return nil, errcode.Wrap(errcode.InvalidParams, "matrix.New", err)
		}
	}
	for _, p := range cfg.Drive {
		if err := p.ConfigureOutput(!m.active); err != nil {
			return nil, errcode.Wrap(errcode.InvalidParams, "matrix.New", err)
		}
	}
	if m.driveCols {
		m.grid = types.NewGrid(len(cfg.Sense), len(cfg.Drive))
	} else {
		m.grid = types.NewGrid(len(cfg.Drive), len(cfg.Sense))
	}
	return m, nil
}

func (m *Matrix) Rows() int { return m.grid.Rows() }
func (m *Matrix) Cols() int { return m.grid.Cols() }

// Scan samples every switch. tick is unused by the GPIO scanner.
func (m *Matrix) Scan(uint32) types.Grid {
	for d, dp := range m.drive {
		dp.Set(m.active)
		if m.settle != nil {
			m.settle()
		}
		for s, sp := range m.sense {
			closed := sp.Get() == m.active
			if m.driveCols {
				m.grid.Set(s, d, closed)
			} else {
				m.grid.Set(d, s, closed)
			}
		}
		dp.Set(!m.active)
	}
	return m.grid
}
