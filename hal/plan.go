package hal

// Plan describes the buses a board brings up before the core starts.
type Plan struct {
	I2C  []I2CPlan
	UART []UARTPlan
}

type I2CPlan struct {
	ID       string // "i2c0" | "i2c1"
	SDA, SCL int
	Hz       uint32
}

type UARTPlan struct {
	ID     string // "uart0" | "uart1"
	TX, RX int
	Baud   uint32
}
