package hal

import "sync"

// SimMatrix models a diode matrix: switch (d,s) connects drive line d to
// sense line s. A sense line reads the active level when any drive line at
// the active level has a closed switch to it, otherwise it floats to the idle
// level of its pull.
type SimMatrix struct {
	mu        sync.Mutex
	activeLow bool
	driveLvl  []bool
	closed    [][]bool // [drive][sense]
	drives    []*simDrive
	senses    []*simSense
}

func NewSimMatrix(drive, sense int, activeLow bool) *SimMatrix {
	m := &SimMatrix{
		activeLow: activeLow,
		driveLvl:  make([]bool, drive),
		closed:    make([][]bool, drive),
	}
	for d := 0; d < drive; d++ {
		m.closed[d] = make([]bool, sense)
		m.driveLvl[d] = activeLow // idle
		m.drives = append(m.drives, &simDrive{m: m, idx: d})
	}
	for s := 0; s < sense; s++ {
		m.senses = append(m.senses, &simSense{m: m, idx: s})
	}
	return m
}

// DrivePins returns the output lines in index order.
func (m *SimMatrix) DrivePins() []GPIOPin {
	out := make([]GPIOPin, len(m.drives))
	for i, p := range m.drives {
		out[i] = p
	}
	return out
}

// SensePins returns the input lines in index order.
func (m *SimMatrix) SensePins() []GPIOPin {
	out := make([]GPIOPin, len(m.senses))
	for i, p := range m.senses {
		out[i] = p
	}
	return out
}

// SetSwitch opens or closes one switch. Out-of-range indices are ignored.
func (m *SimMatrix) SetSwitch(drive, sense int, closed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if drive < 0 || drive >= len(m.closed) || sense < 0 || sense >= len(m.closed[drive]) {
		return
	}
	m.closed[drive][sense] = closed
}

// DriveLevels reports the current output levels (for asserting that a scan
// leaves every line de-asserted).
func (m *SimMatrix) DriveLevels() []bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]bool(nil), m.driveLvl...)
}

func (m *SimMatrix) senseLevel(s int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	active := !m.activeLow
	for d, lvl := range m.driveLvl {
		if lvl == active && m.closed[d][s] {
			return active
		}
	}
	return m.activeLow
}

type simDrive struct {
	m   *SimMatrix
	idx int
}

func (p *simDrive) ConfigureInput(Pull) error { return nil }
func (p *simDrive) ConfigureOutput(initial bool) error {
	p.Set(initial)
	return nil
}
func (p *simDrive) Set(level bool) {
	p.m.mu.Lock()
	p.m.driveLvl[p.idx] = level
	p.m.mu.Unlock()
}
func (p *simDrive) Get() bool {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	return p.m.driveLvl[p.idx]
}
func (p *simDrive) Number() int { return p.idx }

type simSense struct {
	m   *SimMatrix
	idx int
}

func (p *simSense) ConfigureInput(Pull) error  { return nil }
func (p *simSense) ConfigureOutput(bool) error { return nil }
func (p *simSense) Set(bool)                   {}
func (p *simSense) Get() bool                  { return p.m.senseLevel(p.idx) }
func (p *simSense) Number() int                { return 100 + p.idx }
