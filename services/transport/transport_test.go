package transport

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"keycore-go/bus"
	"keycore-go/errcode"
	"keycore-go/report"
	"keycore-go/types"
)

type fakePort struct {
	mu     sync.Mutex
	frames [][]byte
	fail   bool
	baud   uint32
	rx     chan []byte
}

func (p *fakePort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return 0, errors.New("tx busy")
	}
	p.frames = append(p.frames, append([]byte(nil), b...))
	return len(b), nil
}

func (p *fakePort) SetBaudRate(br uint32) error { p.baud = br; return nil }

func (p *fakePort) RecvSomeContext(ctx context.Context, buf []byte) (int, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case b := <-p.rx:
		return copy(buf, b), nil
	}
}

func (p *fakePort) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.frames)
}

func TestFrame(t *testing.T) {
	r := types.KeyboardReport{Modifiers: 0x02, Keys: [types.BootKeys]types.KeyCode{types.KeyA}}
	f := Frame(0, r)
	want := [FrameLen]byte{0x57, 0xAB, 0x00, 0x02, 0x08, 0x02, 0x00, 0x04, 0, 0, 0, 0, 0, 0x12}
	if f != want {
		t.Fatalf("frame = % x\nwant    % x", f, want)
	}
}

func TestPollSendsOnlyOnChange(t *testing.T) {
	port := &fakePort{}
	var latch report.Latch
	s, err := New(port, &latch, types.TransportConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if sent, _ := s.Poll(); sent {
		t.Fatal("sent before any report")
	}
	latch.Store(types.KeyboardReport{})
	if sent, _ := s.Poll(); !sent {
		t.Fatal("first report not sent")
	}
	if sent, _ := s.Poll(); sent {
		t.Fatal("same report sent twice")
	}

	port.fail = true
	latch.Store(types.KeyboardReport{Modifiers: 1})
	if _, err := s.Poll(); errcode.Of(err) != errcode.BusIO {
		t.Fatalf("err = %v", err)
	}
	port.fail = false
	if sent, _ := s.Poll(); !sent {
		t.Fatal("failed report not retried")
	}
	if st := s.Stats(); st.Sent != 2 || st.Errs != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestNewRejectsKind(t *testing.T) {
	if _, err := New(&fakePort{}, new(report.Latch), types.TransportConfig{Kind: "usb"}); errcode.Of(err) != errcode.Unsupported {
		t.Fatalf("err = %v", err)
	}
}

func TestApplyBaud(t *testing.T) {
	port := &fakePort{}
	s, _ := New(port, new(report.Latch), types.TransportConfig{})
	if s.Apply(types.TransportConfig{Baud: 115200}) {
		t.Fatal("poll period unchanged")
	}
	if port.baud != 115200 {
		t.Fatalf("baud = %d", port.baud)
	}
	if !s.Apply(types.TransportConfig{Baud: 115200, PollMs: 5}) {
		t.Fatal("poll period change not reported")
	}
}

func TestAckParser(t *testing.T) {
	var p ackParser
	ok := []byte{0x57, 0xAB, 0x00, 0x82, 0x01, 0x00}
	ok = append(ok, checksum(ok))
	bad := []byte{0x57, 0xAB, 0x00, 0xC2, 0x01, 0xE1}
	bad = append(bad, checksum(bad))

	var results []bool
	stream := append([]byte{0x00, 0x57, 0x57}, ok[1:]...)
	stream = append(stream, bad...)
	for _, c := range stream {
		if done, good := p.feed(c); done {
			results = append(results, good)
		}
	}
	if len(results) != 2 || !results[0] || results[1] {
		t.Fatalf("results = %v", results)
	}
}

func TestRunWritesAndCountsAcks(t *testing.T) {
	port := &fakePort{rx: make(chan []byte, 1)}
	var latch report.Latch
	s, _ := New(port, &latch, types.TransportConfig{})

	b := bus.NewBus(4)
	conn := b.NewConnection("test")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() { s.Run(ctx, conn); close(done) }()

	latch.Store(types.KeyboardReport{Keys: [types.BootKeys]types.KeyCode{types.KeyZ}})
	ack := []byte{0x57, 0xAB, 0x00, 0x82, 0x01, 0x00}
	port.rx <- append(ack, checksum(ack))

	deadline := time.Now().Add(2 * time.Second)
	for port.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(20 * time.Millisecond)
	cancel()
	<-done
	if port.count() != 1 {
		t.Fatalf("frames = %d, want 1", port.count())
	}
	if st := s.Stats(); st.Acked != 1 {
		t.Fatalf("stats = %+v", st)
	}
}
