// Package keyboard runs the per-tick pipeline: scan, debounce, resolve,
// play macros, assemble and latch the report.
package keyboard

import (
	"context"
	"slices"
	"time"

	"keycore-go/bus"
	"keycore-go/debounce"
	"keycore-go/errcode"
	"keycore-go/layout"
	"keycore-go/matrix"
	"keycore-go/report"
	"keycore-go/types"
	"keycore-go/x/timex"
)

var (
	topicConfigKeyboard = bus.Topic{"config", "keyboard"}

	TopicReport = bus.T("kbd", "report")
	TopicLayers = bus.T("kbd", "layers")
	TopicStats  = bus.T("kbd", "stats")
)

// errorCounter is implemented by scanners that can fail on I/O.
type errorCounter interface {
	Errors() uint32
}

// Service owns every piece of per-tick state. Step must only be called
// from one goroutine; the transport reads the latch.
type Service struct {
	scan  matrix.Scanner
	deb   *debounce.Debouncer
	eng   *layout.Engine
	asm   report.Assembler
	latch *report.Latch
	cfg   types.KeyboardConfig

	tick       uint32
	statsEvery uint32
	stats      types.KeyboardStats

	keys       []types.KeyCode
	layers     []int
	lastLayers []int
}

// New builds the pipeline. Layer tables are validated here; a bad table
// is returned as an error before any tick runs.
func New(scan matrix.Scanner, layers []layout.Layer, macros []types.Sequence, latch *report.Latch, cfg types.KeyboardConfig) (*Service, error) {
	cfg = cfg.Normalised()
	eng, err := layout.New(layers, macros, layout.WithCapacity(int(cfg.Rollover)))
	if err != nil {
		return nil, err
	}
	if eng.Rows() != scan.Rows() || eng.Cols() != scan.Cols() {
		return nil, errcode.New(errcode.InvalidParams, "keyboard.New", "scanner and layer shapes differ")
	}
	if latch == nil {
		latch = new(report.Latch)
	}
	return &Service{
		scan:       scan,
		deb:        debounce.New(scan.Rows(), scan.Cols(), int(cfg.Debounce)),
		eng:        eng,
		latch:      latch,
		cfg:        cfg,
		statsEvery: timex.TicksPer(time.Second, cfg.ScanHz),
		keys:       make([]types.KeyCode, 0, types.BootKeys+8),
		lastLayers: []int{0},
	}, nil
}

func (s *Service) Engine() *layout.Engine       { return s.eng }
func (s *Service) Latch() *report.Latch         { return s.latch }
func (s *Service) Config() types.KeyboardConfig { return s.cfg }
func (s *Service) Stats() types.KeyboardStats   { return s.stats }

// Period is the current tick period.
func (s *Service) Period() time.Duration { return timex.PeriodFromHz(s.cfg.ScanHz) }

// Apply takes a live config update. Debounce and scan rate change in place;
// rollover is fixed at construction. It reports whether the period changed.
func (s *Service) Apply(cfg types.KeyboardConfig) bool {
	cfg = cfg.Normalised()
	if cfg.Rollover != s.cfg.Rollover {
		println("[kbd] rollover change ignored until restart")
		cfg.Rollover = s.cfg.Rollover
	}
	s.deb.SetThreshold(int(cfg.Debounce))
	changed := cfg.ScanHz != s.cfg.ScanHz
	s.cfg = cfg
	s.statsEvery = timex.TicksPer(time.Second, cfg.ScanHz)
	return changed
}

// Step runs one tick. conn may be nil when nothing listens (simulator,
// tests). It returns the assembled report and whether it changed.
func (s *Service) Step(conn *bus.Connection) (types.KeyboardReport, bool) {
	s.tick++
	s.stats.Ticks++

	for ev := range s.deb.Events(s.scan.Scan(s.tick)) {
		s.eng.Event(ev)
		s.stats.Events++
	}
	s.eng.Tick()

	s.keys = s.eng.AppendKeys(s.keys[:0])
	r, changed := s.asm.Assemble(s.keys)
	if changed {
		s.latch.Store(r)
		s.stats.Reports++
		if conn != nil {
			conn.Publish(conn.NewMessage(TopicReport, r, true))
		}
	}

	s.layers = s.eng.AppendLayers(s.layers[:0])
	if !slices.Equal(s.layers, s.lastLayers) {
		s.lastLayers = append(s.lastLayers[:0], s.layers...)
		if conn != nil {
			st := types.LayerState{Active: slices.Clone(s.layers), TS: timex.NowMs()}
			conn.Publish(conn.NewMessage(TopicLayers, st, true))
		}
	}

	s.stats.Dropped = s.eng.Dropped()
	if ec, ok := s.scan.(errorCounter); ok {
		s.stats.ScanErrs = ec.Errors()
	}
	if conn != nil && s.tick%s.statsEvery == 0 {
		st := s.stats
		st.TS = timex.NowMs()
		conn.Publish(conn.NewMessage(TopicStats, st, true))
	}
	return r, changed
}

// Run ticks until ctx is cancelled, applying config/keyboard updates as
// they arrive.
func (s *Service) Run(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfigKeyboard)
	defer conn.Unsubscribe(cfgSub)

	tick := time.NewTicker(s.Period())
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			println("[kbd] stopping")
			return
		case <-tick.C:
			s.Step(conn)
		case msg := <-cfgSub.Channel():
			kc, ok := msg.Payload.(types.KeyboardConfig)
			if !ok {
				continue
			}
			if s.Apply(kc) {
				tick.Reset(s.Period())
			}
			println("[kbd] config: scan_hz", s.cfg.ScanHz, "debounce", s.cfg.Debounce)
		}
	}
}

// Start launches Run in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go s.Run(ctx, conn)
}
