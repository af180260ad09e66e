// Package conv formats numbers without fmt, for firmware log lines.
package conv

const hexd = "0123456789ABCDEF"

// Hex writes n as exactly digits uppercase hex digits (no prefix) at the end
// of buf and returns the used slice. Higher digits are truncated.
func Hex(buf []byte, n uint64, digits int) []byte {
	if digits > len(buf) {
		digits = len(buf)
	}
	i := len(buf)
	for j := 0; j < digits; j++ {
		i--
		buf[i] = hexd[n&0xF]
		n >>= 4
	}
	return buf[i:]
}

// Hex0x returns "0x" followed by digits hex digits of n.
func Hex0x(n uint64, digits int) string {
	var buf [18]byte
	h := Hex(buf[2:], n, digits)
	return "0x" + string(h)
}
