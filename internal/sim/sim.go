// Package sim runs the real keyboard pipeline against a simulated switch
// matrix, driven by a small line-oriented script. It backs `keytool sim`.
package sim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"keycore-go/bus"
	"keycore-go/hal"
	"keycore-go/layout"
	"keycore-go/matrix"
	"keycore-go/services/keyboard"
	"keycore-go/types"
)

// maxDrain bounds the `drain` command.
const maxDrain = 100000

type Options struct {
	Debounce int
	// Trace prints every report change with its tick number.
	Trace bool
	Out   io.Writer
	Log   *slog.Logger
}

// Sim wires a SimMatrix through the GPIO scanner into a keyboard service.
// Columns are driven active-low and rows sensed, as on the Clueboard.
type Sim struct {
	hw     *hal.SimMatrix
	svc    *keyboard.Service
	conn   *bus.Connection
	layers *bus.Subscription
	base   layout.Layer
	opts   Options

	tick   uint32
	report types.KeyboardReport
	active []int
}

// ExpectError is returned when an `expect` line does not match.
type ExpectError struct {
	Line int
	Want string
	Got  string
}

func (e *ExpectError) Error() string {
	return fmt.Sprintf("line %d: expected %q, report is %q", e.Line, e.Want, e.Got)
}

func New(layers []layout.Layer, macros []types.Sequence, opts Options) (*Sim, error) {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if len(layers) == 0 {
		return nil, layout.Validate(layers, macros)
	}
	rows, cols := layers[0].Rows(), layers[0].Cols()
	hw := hal.NewSimMatrix(cols, rows, true)
	scan, err := matrix.New(matrix.Config{
		Drive:     hw.DrivePins(),
		Sense:     hw.SensePins(),
		DriveCols: true,
		ActiveLow: true,
	})
	if err != nil {
		return nil, err
	}
	cfg := types.KeyboardConfig{Debounce: uint8(opts.Debounce)}.Normalised()
	svc, err := keyboard.New(scan, layers, macros, nil, cfg)
	if err != nil {
		return nil, err
	}
	b := bus.NewBus(16)
	conn := b.NewConnection("sim")
	return &Sim{
		hw:     hw,
		svc:    svc,
		conn:   conn,
		layers: conn.Subscribe(keyboard.TopicLayers),
		base:   layers[0],
		opts:   opts,
		active: []int{0},
	}, nil
}

// Close releases the bus connection.
func (s *Sim) Close() { s.conn.Disconnect() }

func (s *Sim) Report() types.KeyboardReport { return s.report }
func (s *Sim) Ticks() uint32                { return s.tick }

// Set opens or closes the switch at c.
func (s *Sim) Set(c types.Coord, closed bool) {
	s.hw.SetSwitch(int(c.Col), int(c.Row), closed)
}

// Tick runs n pipeline ticks.
func (s *Sim) Tick(n int) {
	for i := 0; i < n; i++ {
		s.tick++
		r, changed := s.svc.Step(s.conn)
		s.report = r
		if changed {
			s.opts.Log.Debug("report", "tick", s.tick, "bytes", fmt.Sprintf("% x", r.Bytes()))
			if s.opts.Trace {
				fmt.Fprintf(s.opts.Out, "tick %d: %s\n", s.tick, FormatReport(r))
			}
		}
	}
}

// Drain ticks until no macro is playing.
func (s *Sim) Drain() {
	for i := 0; i < maxDrain && s.svc.Engine().Playing() > 0; i++ {
		s.Tick(1)
	}
}

// Layers returns the active layers as last published on kbd/layers.
func (s *Sim) Layers() []int {
	for {
		select {
		case msg := <-s.layers.Channel():
			if st, ok := msg.Payload.(types.LayerState); ok {
				s.active = st.Active
			}
			continue
		default:
		}
		return s.active
	}
}

// Lookup resolves a script key token: "row,col", or the base-layer action
// or key name ("A", "LShift", "MO(1)"). The first match in row-major order
// wins.
func (s *Sim) Lookup(tok string) (types.Coord, error) {
	if r, c, ok := strings.Cut(tok, ","); ok {
		ri, err1 := strconv.Atoi(strings.TrimSpace(r))
		ci, err2 := strconv.Atoi(strings.TrimSpace(c))
		if err1 != nil || err2 != nil || ri < 0 || ci < 0 || ri >= s.base.Rows() || ci >= s.base.Cols() {
			return types.Coord{}, fmt.Errorf("bad coordinate %q", tok)
		}
		return types.Coord{Row: uint8(ri), Col: uint8(ci)}, nil
	}
	for r, row := range s.base {
		for c, a := range row {
			if a.String() == tok || (a.Kind == types.ActionEmit && a.Key.String() == tok) {
				return types.Coord{Row: uint8(r), Col: uint8(c)}, nil
			}
		}
	}
	return types.Coord{}, fmt.Errorf("no key %q on the base layer", tok)
}

// FormatReport renders modifiers then keys by name, or "-" when empty.
func FormatReport(r types.KeyboardReport) string {
	var parts []string
	for k := types.KeyLCtrl; k <= types.KeyRGui; k++ {
		if r.Modifiers&k.ModifierBit() != 0 {
			parts = append(parts, k.String())
		}
	}
	for _, k := range r.Keys {
		if k != types.KeyNo {
			parts = append(parts, k.String())
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

// Run executes a script. Blank lines and '#' comments are skipped.
func (s *Sim) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		args, err := shlex.Split(sc.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if len(args) == 0 {
			continue
		}
		if err := s.exec(line, args[0], args[1:]); err != nil {
			return err
		}
	}
	return sc.Err()
}

func (s *Sim) exec(line int, cmd string, args []string) error {
	lineErr := func(err error) error { return fmt.Errorf("line %d: %s: %w", line, cmd, err) }
	switch cmd {
	case "press", "release":
		if len(args) == 0 {
			return lineErr(errors.New("needs at least one key"))
		}
		for _, tok := range args {
			c, err := s.Lookup(tok)
			if err != nil {
				return lineErr(err)
			}
			s.Set(c, cmd == "press")
		}
	case "tap":
		if len(args) != 1 {
			return lineErr(errors.New("needs one key"))
		}
		c, err := s.Lookup(args[0])
		if err != nil {
			return lineErr(err)
		}
		k := s.svc.Config().Debounce
		s.Set(c, true)
		s.Tick(int(k))
		s.Set(c, false)
		s.Tick(int(k))
	case "tick":
		n := 1
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 0 {
				return lineErr(fmt.Errorf("bad count %q", args[0]))
			}
			n = v
		}
		s.Tick(n)
	case "drain":
		s.Drain()
	case "expect":
		want := strings.Join(args, " ")
		if want == "" {
			want = "-"
		}
		if got := FormatReport(s.report); got != want {
			return &ExpectError{Line: line, Want: want, Got: got}
		}
	case "report":
		fmt.Fprintf(s.opts.Out, "report: %s\n", FormatReport(s.report))
	case "layers":
		ls := s.Layers()
		parts := make([]string, len(ls))
		for i, l := range ls {
			parts[i] = strconv.Itoa(l)
		}
		fmt.Fprintf(s.opts.Out, "layers: %s\n", strings.Join(parts, " "))
	default:
		return fmt.Errorf("line %d: unknown command %q", line, cmd)
	}
	return nil
}
