package types

import "keycore-go/x/mathx"

// Configuration supplied on topics "config/<section>".

type DeviceConfig struct {
	Device    DeviceInfo      `yaml:"device"`
	Keyboard  KeyboardConfig  `yaml:"keyboard"`
	Transport TransportConfig `yaml:"transport"`
}

type DeviceInfo struct {
	Name         string `yaml:"name"`
	VID          uint16 `yaml:"vid"`
	PID          uint16 `yaml:"pid"`
	Manufacturer string `yaml:"manufacturer"`
	Product      string `yaml:"product"`
}

type KeyboardConfig struct {
	ScanHz   uint32 `yaml:"scan_hz"`  // tick rate; default 1000
	Debounce uint8  `yaml:"debounce"` // consecutive agreeing scans; default 5
	Rollover uint8  `yaml:"rollover"` // non-modifier key capacity; default and max 6
}

const (
	DefaultScanHz   = 1000
	DefaultDebounce = 5
)

// Normalised fills defaults and clamps to supported ranges.
func (c KeyboardConfig) Normalised() KeyboardConfig {
	c.ScanHz = mathx.OrDefault(c.ScanHz, DefaultScanHz, 50, 8000)
	c.Debounce = mathx.OrDefault(c.Debounce, DefaultDebounce, 1, 255)
	c.Rollover = mathx.OrDefault(c.Rollover, BootKeys, 1, BootKeys)
	return c
}

type TransportConfig struct {
	Kind    string `yaml:"kind"` // "ch9329"
	UART    string `yaml:"uart"` // "uart0" | "uart1"
	Baud    uint32 `yaml:"baud"`
	Address uint8  `yaml:"address"`
	PollMs  uint16 `yaml:"poll_ms"`
}

const (
	DefaultTransportBaud = 9600
	DefaultPollMs        = 1
)

func (c TransportConfig) Normalised() TransportConfig {
	if c.Kind == "" {
		c.Kind = "ch9329"
	}
	c.Baud = mathx.OrDefault(c.Baud, DefaultTransportBaud, 1200, 115200)
	c.PollMs = mathx.OrDefault(c.PollMs, DefaultPollMs, 1, 100)
	return c
}
