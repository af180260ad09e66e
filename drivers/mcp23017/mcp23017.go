// Package mcp23017 provides a minimal driver for the MCP23017 16-bit I²C
// port expander, enough to scan a key matrix: port direction, pull-ups,
// output latches and input reads.
//
// Register addresses assume IOCON.BANK=0 (power-on default).
package mcp23017

import (
	"errors"

	"tinygo.org/x/drivers"
)

// I2C address with A2..A0 tied low.
const Address = 0x20

const (
	regIODIRA = 0x00
	regIODIRB = 0x01
	regIPOLA  = 0x02
	regIPOLB  = 0x03
	regGPPUA  = 0x0C
	regGPPUB  = 0x0D
	regGPIOA  = 0x12
	regGPIOB  = 0x13
	regOLATA  = 0x14
	regOLATB  = 0x15
)

var ErrAddress = errors.New("mcp23017: address out of range")

// Config sets direction and pull-ups per port. A set bit in Dir makes the
// pin an input; a set bit in Pull enables its 100k pull-up.
type Config struct {
	// Address defaults to 0x20 if zero; valid range 0x20..0x27.
	Address uint16
	DirA    uint8
	DirB    uint8
	PullA   uint8
	PullB   uint8
}

// Device wraps an I2C connection to an MCP23017.
type Device struct {
	bus     drivers.I2C
	Address uint16

	w [2]byte
	r [1]byte
}

// New creates a Device. The I2C bus must already be configured.
// This function does not touch the device.
func New(bus drivers.I2C) Device {
	return Device{bus: bus, Address: Address}
}

// Configure writes direction, polarity and pull-up registers.
func (d *Device) Configure(cfg Config) error {
	if cfg.Address != 0 {
		if cfg.Address < 0x20 || cfg.Address > 0x27 {
			return ErrAddress
		}
		d.Address = cfg.Address
	}
	for _, rv := range [...][2]uint8{
		{regIPOLA, 0x00},
		{regIPOLB, 0x00},
		{regGPPUA, cfg.PullA},
		{regGPPUB, cfg.PullB},
		{regIODIRA, cfg.DirA},
		{regIODIRB, cfg.DirB},
	} {
		if err := d.writeReg(rv[0], rv[1]); err != nil {
			return err
		}
	}
	return nil
}

// WritePortA sets the port A output latch.
func (d *Device) WritePortA(v uint8) error { return d.writeReg(regOLATA, v) }

// WritePortB sets the port B output latch.
func (d *Device) WritePortB(v uint8) error { return d.writeReg(regOLATB, v) }

// ReadPortA returns the port A pin levels.
func (d *Device) ReadPortA() (uint8, error) { return d.readReg(regGPIOA) }

// ReadPortB returns the port B pin levels.
func (d *Device) ReadPortB() (uint8, error) { return d.readReg(regGPIOB) }

func (d *Device) writeReg(reg, v uint8) error {
	d.w[0], d.w[1] = reg, v
	return d.bus.Tx(d.Address, d.w[:2], nil)
}

// readReg relies on Tx performing write + repeated-start read.
func (d *Device) readReg(reg uint8) (uint8, error) {
	d.w[0] = reg
	if err := d.bus.Tx(d.Address, d.w[:1], d.r[:]); err != nil {
		return 0, err
	}
	return d.r[0], nil
}
