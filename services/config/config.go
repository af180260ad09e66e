package config

import (
	"bytes"
	"context"
	"embed"

	"gopkg.in/yaml.v3"

	"keycore-go/bus"
	"keycore-go/errcode"
	"keycore-go/types"
)

const (
	serviceName  = "config"
	configPrefix = "config"
	CtxDeviceKey = "device" // context key used for device ID
)

var (
	TopicDevice    = bus.T(configPrefix, "device")
	TopicKeyboard  = bus.T(configPrefix, "keyboard")
	TopicTransport = bus.T(configPrefix, "transport")
)

//go:embed devices/*.yaml
var embedded embed.FS

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, err := embedded.ReadFile("devices/" + device + ".yaml")
	return b, err == nil
}

// Decode parses one device document. Unknown keys are rejected so a typo
// does not silently fall back to defaults. Sections come back normalised.
func Decode(raw []byte) (types.DeviceConfig, error) {
	var cfg types.DeviceConfig
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return types.DeviceConfig{}, errcode.Wrap(errcode.InvalidConfig, "config.Decode", err)
	}
	cfg.Keyboard = cfg.Keyboard.Normalised()
	cfg.Transport = cfg.Transport.Normalised()
	return cfg, nil
}

// Load resolves and decodes the embedded config for device.
func Load(device string) (types.DeviceConfig, error) {
	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return types.DeviceConfig{}, errcode.New(errcode.NoConfig, "config.Load", device)
	}
	return Decode(raw)
}

type Service struct {
	Name string
}

func NewService() *Service {
	return &Service{Name: serviceName}
}

// Publish loads the config for the device named in ctx and publishes each
// section as a retained message.
func (s *Service) Publish(ctx context.Context, conn *bus.Connection) (types.DeviceConfig, error) {
	device, _ := ctx.Value(CtxDeviceKey).(string)
	if device == "" {
		return types.DeviceConfig{}, errcode.New(errcode.InvalidParams, "config.Publish", "missing device ID in context")
	}
	cfg, err := Load(device)
	if err != nil {
		return types.DeviceConfig{}, err
	}
	conn.Publish(conn.NewMessage(TopicDevice, cfg.Device, true))
	conn.Publish(conn.NewMessage(TopicKeyboard, cfg.Keyboard, true))
	conn.Publish(conn.NewMessage(TopicTransport, cfg.Transport, true))
	return cfg, nil
}

// Start launches the config publisher in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		cfg, err := s.Publish(ctx, conn)
		if err != nil {
			println("[config] publish failed:", err.Error())
			return
		}
		println("[config] device", cfg.Device.Name, "published")
	}()
}
