// Package transport forwards the latest keyboard report to the host through
// a CH9329 UART-to-USB HID bridge.
//
// It runs on its own goroutine and shares nothing with the tick path except
// the report latch. A report is written only when the latch sequence moves.
package transport

import (
	"context"
	"time"

	"keycore-go/bus"
	"keycore-go/errcode"
	"keycore-go/hal"
	"keycore-go/report"
	"keycore-go/types"
)

var topicConfigTransport = bus.Topic{"config", "transport"}

type Stats struct {
	Sent  uint32
	Acked uint32
	Naks  uint32
	Errs  uint32
}

type Service struct {
	port  hal.SerialPort
	latch *report.Latch
	cfg   types.TransportConfig

	last  uint32
	stats Stats
}

func New(port hal.SerialPort, latch *report.Latch, cfg types.TransportConfig) (*Service, error) {
	cfg = cfg.Normalised()
	if cfg.Kind != "ch9329" {
		return nil, errcode.New(errcode.Unsupported, "transport.New", "kind "+cfg.Kind)
	}
	return &Service{port: port, latch: latch, cfg: cfg}, nil
}

func (s *Service) Stats() Stats { return s.stats }

// Poll writes the latched report if it is newer than the last one sent.
// A failed write is retried on the next poll.
func (s *Service) Poll() (bool, error) {
	r, seq := s.latch.Load()
	if seq == s.last {
		return false, nil
	}
	f := Frame(s.cfg.Address, r)
	if _, err := s.port.Write(f[:]); err != nil {
		s.stats.Errs++
		return false, errcode.Wrap(errcode.BusIO, "transport.Poll", err)
	}
	s.last = seq
	s.stats.Sent++
	return true, nil
}

// Apply takes a live config update and reports whether the poll period
// changed. Baud changes need a port that can reformat itself.
func (s *Service) Apply(cfg types.TransportConfig) bool {
	cfg = cfg.Normalised()
	if cfg.Baud != s.cfg.Baud {
		if f, ok := s.port.(hal.SerialFormatter); ok {
			if err := f.SetBaudRate(cfg.Baud); err != nil {
				println("[transport] baud:", err.Error())
				cfg.Baud = s.cfg.Baud
			}
		}
	}
	changed := cfg.PollMs != s.cfg.PollMs
	s.cfg = cfg
	return changed
}

func (s *Service) period() time.Duration { return time.Duration(s.cfg.PollMs) * time.Millisecond }

// Run polls until ctx is cancelled. If the port can receive, bridge replies
// are drained and counted on a second goroutine.
func (s *Service) Run(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfigTransport)
	defer conn.Unsubscribe(cfgSub)

	acks := make(chan bool, 8)
	if rx, ok := s.port.(hal.SerialReceiver); ok {
		go s.drain(ctx, rx, acks)
	}

	tick := time.NewTicker(s.period())
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			println("[transport] stopping")
			return
		case <-tick.C:
			if _, err := s.Poll(); err != nil && s.stats.Errs == 1 {
				println("[transport]", err.Error())
			}
		case ok := <-acks:
			if ok {
				s.stats.Acked++
			} else {
				s.stats.Naks++
			}
		case msg := <-cfgSub.Channel():
			tc, ok := msg.Payload.(types.TransportConfig)
			if !ok {
				continue
			}
			if s.Apply(tc) {
				tick.Reset(s.period())
			}
			println("[transport] config: baud", s.cfg.Baud, "poll_ms", s.cfg.PollMs)
		}
	}
}

func (s *Service) drain(ctx context.Context, rx hal.SerialReceiver, out chan<- bool) {
	var p ackParser
	buf := make([]byte, 16)
	for {
		n, err := rx.RecvSomeContext(ctx, buf)
		if err != nil {
			return
		}
		for _, c := range buf[:n] {
			if done, ok := p.feed(c); done {
				select {
				case out <- ok:
				default:
				}
			}
		}
	}
}

// Start launches Run in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go s.Run(ctx, conn)
}
