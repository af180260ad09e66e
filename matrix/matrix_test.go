package matrix

import (
	"errors"
	"testing"

	"keycore-go/errcode"
	"keycore-go/hal"
)

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(Config{})
	if errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("err = %v, want invalid_params", err)
	}
}

func TestScanActiveLowDriveCols(t *testing.T) {
	sim := hal.NewSimMatrix(8, 10, true)
	m, err := New(Config{Drive: sim.DrivePins(), Sense: sim.SensePins(), DriveCols: true, ActiveLow: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.Rows() != 10 || m.Cols() != 8 {
		t.Fatalf("shape = %dx%d, want 10x8", m.Rows(), m.Cols())
	}
	sim.SetSwitch(3, 7, true) // drive 3 = col 3, sense 7 = row 7
	g := m.Scan(0)
	for r := 0; r < 10; r++ {
		for c := 0; c < 8; c++ {
			want := r == 7 && c == 3
			if g.Get(r, c) != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", r, c, g.Get(r, c), want)
			}
		}
	}
	for i, lvl := range sim.DriveLevels() {
		if !lvl {
			t.Fatalf("drive line %d left asserted", i)
		}
	}
}

func TestScanActiveHighRows(t *testing.T) {
	sim := hal.NewSimMatrix(2, 3, false)
	settles := 0
	m, err := New(Config{Drive: sim.DrivePins(), Sense: sim.SensePins(), Settle: func() { settles++ }})
	if err != nil {
		t.Fatal(err)
	}
	sim.SetSwitch(1, 2, true)
	sim.SetSwitch(0, 0, true)
	g := m.Scan(1)
	if !g.Get(1, 2) || !g.Get(0, 0) || g.Get(0, 2) || g.Get(1, 0) {
		t.Fatal("unexpected grid")
	}
	if settles != 2 {
		t.Fatalf("settles = %d, want 2", settles)
	}
	sim.SetSwitch(1, 2, false)
	if m.Scan(2).Get(1, 2) {
		t.Fatal("released switch still closed")
	}
}

type fakePort struct {
	latch   uint8
	closed  [8]uint8 // [row] bitmask of closed cols
	failRd  bool
	history []uint8
}

func (p *fakePort) WritePortA(v uint8) error {
	p.latch = v
	p.history = append(p.history, v)
	return nil
}

func (p *fakePort) ReadPortB() (uint8, error) {
	if p.failRd {
		return 0, errors.New("nack")
	}
	v := uint8(0xFF)
	for r := 0; r < 8; r++ {
		if p.latch&(1<<r) == 0 {
			v &^= p.closed[r]
		}
	}
	return v, nil
}

func TestExpanderScan(t *testing.T) {
	p := &fakePort{}
	e, err := NewExpander(p, 4, 6)
	if err != nil {
		t.Fatal(err)
	}
	p.closed[2] = 1 << 5
	g := e.Scan(0)
	if !g.Get(2, 5) || g.Get(2, 4) || g.Get(1, 5) {
		t.Fatal("unexpected grid")
	}
	if p.latch != 0xFF {
		t.Fatalf("latch = %#x, want released", p.latch)
	}
}

func TestExpanderKeepsGridOnError(t *testing.T) {
	p := &fakePort{}
	e, _ := NewExpander(p, 2, 2)
	p.closed[0] = 1
	if !e.Scan(0).Get(0, 0) {
		t.Fatal("key not seen")
	}
	p.failRd = true
	p.closed[0] = 0
	if !e.Scan(1).Get(0, 0) {
		t.Fatal("grid changed on bus error")
	}
	if e.Errors() != 1 {
		t.Fatalf("Errors = %d", e.Errors())
	}
}

func TestNewExpanderBounds(t *testing.T) {
	if _, err := NewExpander(&fakePort{}, 9, 1); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("err = %v", err)
	}
}
