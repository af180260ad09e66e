// Package hal holds the hardware seams the keyboard core talks through:
// GPIO lines for matrix scanning, an I²C bus for port expanders and a
// serial port for the report transport. Platform files supply concrete
// implementations; host builds use the simulated matrix in sim.go.
package hal

import (
	"context"

	"tinygo.org/x/drivers"
)

// ---- GPIO abstractions ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

type GPIOPin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Number() int
}

// PinFactory supplies GPIO pins by the configured number scheme.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// Pins resolves a list of pin numbers, failing on the first unknown one.
func Pins(f PinFactory, numbers ...int) ([]GPIOPin, bool) {
	out := make([]GPIOPin, 0, len(numbers))
	for _, n := range numbers {
		p, ok := f.ByNumber(n)
		if !ok {
			return nil, false
		}
		out = append(out, p)
	}
	return out, true
}

// ---- Buses ----

// I2CBusFactory injects configured I²C instances by id.
// Uses the TinyGo drivers.I2C interface to remain compatible on MCU builds.
type I2CBusFactory interface {
	I2C(id string) (drivers.I2C, bool)
}

// ---- Serial ----

// SerialPort is the transmit side the report transport needs.
type SerialPort interface {
	Write(p []byte) (int, error)
}

// SerialFormatter is optional; platforms without it keep their defaults.
type SerialFormatter interface {
	SetBaudRate(br uint32) error
}

// SerialReceiver is optional; used to drain bridge acknowledgements.
type SerialReceiver interface {
	RecvSomeContext(ctx context.Context, p []byte) (int, error)
}

type SerialFactory interface {
	Serial(id string) (SerialPort, bool)
}
