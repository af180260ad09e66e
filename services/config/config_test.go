package config

import (
	"context"
	"testing"
	"time"

	"keycore-go/bus"
	"keycore-go/errcode"
	"keycore-go/types"
)

func TestLoadEmbeddedClueboard(t *testing.T) {
	cfg, err := Load("clueboard")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Device.VID != 0xC1ED || cfg.Device.PID != 0x2391 {
		t.Fatalf("ids = %#x:%#x", cfg.Device.VID, cfg.Device.PID)
	}
	if cfg.Device.Product != "66% HotSwap Keyboard" {
		t.Fatalf("product = %q", cfg.Device.Product)
	}
	if cfg.Keyboard.Debounce != 5 || cfg.Keyboard.ScanHz != 1000 {
		t.Fatalf("keyboard = %+v", cfg.Keyboard)
	}
	if cfg.Transport.UART != "uart1" || cfg.Transport.Kind != "ch9329" {
		t.Fatalf("transport = %+v", cfg.Transport)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	cfg, err := Load("sim")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Keyboard.ScanHz != types.DefaultScanHz || cfg.Keyboard.Rollover != types.BootKeys {
		t.Fatalf("keyboard = %+v", cfg.Keyboard)
	}
	if cfg.Transport.Baud != types.DefaultTransportBaud {
		t.Fatalf("transport = %+v", cfg.Transport)
	}
}

func TestEveryEmbeddedDeviceLoads(t *testing.T) {
	for _, dev := range []string{"clueboard", "macropad", "sim"} {
		cfg, err := Load(dev)
		if err != nil {
			t.Fatalf("%s: %v", dev, err)
		}
		if cfg.Device.Name != dev {
			t.Fatalf("%s: name = %q", dev, cfg.Device.Name)
		}
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode([]byte("keyboard:\n  debouce: 3\n"))
	if errcode.Of(err) != errcode.InvalidConfig {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("nope"); errcode.Of(err) != errcode.NoConfig {
		t.Fatalf("err = %v", err)
	}
}

func TestPublishRetainedPerSection(t *testing.T) {
	old := EmbeddedConfigLookup
	EmbeddedConfigLookup = func(device string) ([]byte, bool) {
		if device != "pico" {
			return nil, false
		}
		return []byte("keyboard:\n  debounce: 9\n"), true
	}
	t.Cleanup(func() { EmbeddedConfigLookup = old })

	b := bus.NewBus(8)
	conn := b.NewConnection("test-config")
	all := conn.Subscribe(bus.T(configPrefix, "+"))
	defer conn.Unsubscribe(all)

	ctx := context.WithValue(context.Background(), CtxDeviceKey, "pico")
	NewService().Start(ctx, conn)

	got := map[string]*bus.Message{}
	for len(got) < 3 {
		select {
		case msg := <-all.Channel():
			got[msg.Topic.At(1).(string)] = msg
		case <-time.After(time.Second):
			t.Fatalf("sections seen: %v", got)
		}
	}
	kb := got["keyboard"]
	kc, ok := kb.Payload.(types.KeyboardConfig)
	if !ok || kc.Debounce != 9 || !kb.Retained {
		t.Fatalf("keyboard message = %#v", kb)
	}

	// Late subscribers still see the retained section.
	late := conn.Subscribe(TopicTransport)
	defer conn.Unsubscribe(late)
	select {
	case msg := <-late.Channel():
		if tc := msg.Payload.(types.TransportConfig); tc.PollMs != types.DefaultPollMs {
			t.Fatalf("transport = %+v", tc)
		}
	case <-time.After(time.Second):
		t.Fatal("retained transport config missing")
	}
}

func TestPublishNeedsDevice(t *testing.T) {
	b := bus.NewBus(1)
	if _, err := NewService().Publish(context.Background(), b.NewConnection("x")); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("err = %v", err)
	}
}
