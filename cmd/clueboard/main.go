//go:build rp2040

// Command clueboard is the firmware for a Clueboard 66% matrix wired to an
// RP2040, reporting to the host through a CH9329 bridge on UART1.
package main

import (
	"context"
	"time"

	"keycore-go/bus"
	"keycore-go/hal"
	"keycore-go/keymaps/clueboard"
	"keycore-go/matrix"
	"keycore-go/report"
	"keycore-go/services/config"
	"keycore-go/services/keyboard"
	"keycore-go/services/transport"
	"keycore-go/types"
	"keycore-go/x/conv"
)

// Column lines are driven high in turn; rows are read with pull-downs.
var (
	colPins = []int{2, 3, 4, 5, 6, 7, 8, 9}
	rowPins = []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
)

const (
	uartTX = 20
	uartRX = 21
)

// halt never returns; a board that cannot start keeps saying why.
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
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, "clueboard")

	println("[main] bootstrapping bus …")
	b := bus.NewBus(4)

	cfg, err := config.NewService().Publish(ctx, b.NewConnection("config"))
	if err != nil {
		halt("[main] config:", err)
	}
	dev := cfg.Device
	println("[main]", dev.Manufacturer, dev.Product, "vid", conv.Hex0x(uint64(dev.VID), 4), "pid", conv.Hex0x(uint64(dev.PID), 4))

	board := hal.NewRP2(hal.Plan{
		UART: []hal.UARTPlan{{ID: cfg.Transport.UART, TX: uartTX, RX: uartRX, Baud: cfg.Transport.Baud}},
	})
	cols, ok := hal.Pins(board, colPins...)
	if !ok {
		halt("[main] bad column pin", nil)
	}
	rows, ok := hal.Pins(board, rowPins...)
	if !ok {
		halt("[main] bad row pin", nil)
	}
	scan, err := matrix.New(matrix.Config{Drive: cols, Sense: rows, DriveCols: true})
	if err != nil {
		halt("[main] matrix:", err)
	}

	latch := new(report.Latch)
	kbd, err := keyboard.New(scan, clueboard.Layers(), clueboard.Macros, latch, cfg.Keyboard)
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

	println("[main] starting services …")
	kbd.Start(ctx, b.NewConnection("kbd"))
	tx.Start(ctx, b.NewConnection("transport"))

	mon := b.NewConnection("monitor").Subscribe(keyboard.TopicLayers)
	for m := range mon.Channel() {
		print("[main] layers")
		for _, l := range m.Payload.(types.LayerState).Active {
			print(" ", l)
		}
		println()
	}
}
