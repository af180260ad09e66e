//go:build rp2040

// Command macropad is firmware for a 4×4 pad scanned through an MCP23017
// on I2C0 (port A drives rows, port B senses columns), reporting through a
// CH9329 bridge on UART0.
package main

import (
	"context"
	"time"

	"keycore-go/bus"
	"keycore-go/drivers/mcp23017"
	"keycore-go/hal"
	"keycore-go/layout"
	"keycore-go/matrix"
	"keycore-go/report"
	"keycore-go/services/config"
	"keycore-go/services/keyboard"
	"keycore-go/services/transport"
	"keycore-go/types"
)

const (
	i2cSDA = 4
	i2cSCL = 5
	uartTX = 0
	uartRX = 1
)

func k(c types.KeyCode) types.Action { return types.K(c) }

var layers = []layout.Layer{
	{
		{k(types.Key7), k(types.Key8), k(types.Key9), k(types.KeySlash)},
		{k(types.Key4), k(types.Key5), k(types.Key6), k(types.KeyMinus)},
		{k(types.Key1), k(types.Key2), k(types.Key3), k(types.KeyEqual)},
		{types.MO(1), k(types.Key0), k(types.KeyDot), k(types.KeyEnter)},
	},
	{
		{k(types.KeyHome), k(types.KeyUp), k(types.KeyPgUp), k(types.KeyMute)},
		{k(types.KeyLeft), types.Trans, k(types.KeyRight), k(types.KeyVolDown)},
		{k(types.KeyEnd), k(types.KeyDown), k(types.KeyPgDown), k(types.KeyVolUp)},
		{types.Trans, k(types.KeyInsert), k(types.KeyDelete), k(types.KeyMediaPlayPause)},
	},
}

func halt(msg string, err error) {
	for {
		if err != nil {
			println(msg, err.Error())
		} else {
			println(msg)
		}
		time.Sleep(2 * time.Second)
	}
}

func main() {
	time.Sleep(2 * time.Second)
	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, "macropad")

	b := bus.NewBus(4)
	cfg, err := config.NewService().Publish(ctx, b.NewConnection("config"))
	if err != nil {
		halt("[main] config:", err)
	}
	println("[main]", cfg.Device.Manufacturer, cfg.Device.Product)

	board := hal.NewRP2(hal.Plan{
		I2C:  []hal.I2CPlan{{ID: "i2c0", SDA: i2cSDA, SCL: i2cSCL, Hz: 400_000}},
		UART: []hal.UARTPlan{{ID: cfg.Transport.UART, TX: uartTX, RX: uartRX, Baud: cfg.Transport.Baud}},
	})
	i2c, ok := board.I2C("i2c0")
	if !ok {
		halt("[main] no i2c0", nil)
	}
	dev := mcp23017.New(i2c)
	if err := dev.Configure(mcp23017.Config{DirA: 0x00, DirB: 0xFF, PullB: 0xFF}); err != nil {
		halt("[main] mcp23017:", err)
	}
	scan, err := matrix.NewExpander(&dev, 4, 4)
	if err != nil {
		halt("[main] matrix:", err)
	}

	latch := new(report.Latch)
	kbd, err := keyboard.New(scan, layers, nil, latch, cfg.Keyboard)
	if err != nil {
		halt("[main] keymap:", err)
	}
	port, ok := board.Serial(cfg.Transport.UART)
	if !ok {
		halt("[main] no serial port "+cfg.Transport.UART, nil)
	}
	tx, err := transport.New(port, latch, cfg.Transport)
	if err != nil {
		halt("[main] transport:", err)
	}

	kbd.Start(ctx, b.NewConnection("kbd"))
	tx.Start(ctx, b.NewConnection("transport"))

	stats := b.NewConnection("monitor").Subscribe(keyboard.TopicStats)
	for m := range stats.Channel() {
		st := m.Payload.(types.KeyboardStats)
		println("[main] ticks", st.Ticks, "reports", st.Reports, "scan errors", st.ScanErrs)
	}
}
