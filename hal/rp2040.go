//go:build rp2040

package hal

import (
	"context"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"
)

// Ensure the provider satisfies the contracts at compile time.
var (
	_ PinFactory    = (*RP2)(nil)
	_ I2CBusFactory = (*RP2)(nil)
	_ SerialFactory = (*RP2)(nil)
)

// -----------------------------------------------------------------------------
// GPIO handle
// -----------------------------------------------------------------------------

type rp2GPIO struct {
	p machine.Pin
	n int
}

func (r *rp2GPIO) Number() int { return r.n }

func (r *rp2GPIO) ConfigureInput(pull Pull) error {
	var mode machine.PinMode
	switch pull {
	case PullUp:
		mode = machine.PinInputPullup
	case PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2GPIO) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2GPIO) Set(b bool) { r.p.Set(b) }
func (r *rp2GPIO) Get() bool  { return r.p.Get() }

// -----------------------------------------------------------------------------
// Serial port: adapts uartx to SerialPort (+optional configurators)
// -----------------------------------------------------------------------------

type rp2SerialPort struct{ u *uartx.UART }

func (p *rp2SerialPort) Write(b []byte) (int, error) { return p.u.Write(b) }
func (p *rp2SerialPort) RecvSomeContext(ctx context.Context, buf []byte) (int, error) {
	return p.u.RecvSomeContext(ctx, buf)
}
func (p *rp2SerialPort) SetBaudRate(br uint32) error { p.u.SetBaudRate(br); return nil }

// -----------------------------------------------------------------------------
// Provider
// -----------------------------------------------------------------------------

// RP2 brings up the buses named in a Plan and hands out pins and ports.
type RP2 struct {
	gpio map[int]*rp2GPIO
	i2c  map[string]drivers.I2C
	uart map[string]*rp2SerialPort
}

func NewRP2(plan Plan) *RP2 {
	r := &RP2{
		gpio: make(map[int]*rp2GPIO),
		i2c:  make(map[string]drivers.I2C),
		uart: make(map[string]*rp2SerialPort),
	}

	for _, p := range plan.I2C {
		var hw *machine.I2C
		switch p.ID {
		case "i2c0":
			hw = machine.I2C0
		case "i2c1":
			hw = machine.I2C1
		default:
			continue
		}
		sda := machine.Pin(p.SDA)
		scl := machine.Pin(p.SCL)
		sda.Configure(machine.PinConfig{Mode: machine.PinI2C})
		scl.Configure(machine.PinConfig{Mode: machine.PinI2C})
		hw.Configure(machine.I2CConfig{
			SCL:       scl,
			SDA:       sda,
			Frequency: p.Hz,
		})
		r.i2c[p.ID] = hw
	}

	for _, u := range plan.UART {
		var hw *uartx.UART
		switch u.ID {
		case "uart0":
			hw = uartx.UART0
		case "uart1":
			hw = uartx.UART1
		default:
			continue
		}
		// Defaults inside uartx apply if zero.
		_ = hw.Configure(uartx.UARTConfig{
			BaudRate: u.Baud,
			TX:       machine.Pin(u.TX),
			RX:       machine.Pin(u.RX),
		})
		r.uart[u.ID] = &rp2SerialPort{u: hw}
	}
	return r
}

func (r *RP2) ByNumber(n int) (GPIOPin, bool) {
	if n < 0 || n > 29 {
		return nil, false
	}
	if g, ok := r.gpio[n]; ok {
		return g, true
	}
	g := &rp2GPIO{p: machine.Pin(n), n: n}
	r.gpio[n] = g
	return g, true
}

func (r *RP2) I2C(id string) (drivers.I2C, bool) {
	b, ok := r.i2c[id]
	return b, ok
}

func (r *RP2) Serial(id string) (SerialPort, bool) {
	p, ok := r.uart[id]
	return p, ok
}
