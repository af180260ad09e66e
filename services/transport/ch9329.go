package transport

import "keycore-go/types"

// CH9329 serial-to-HID bridge framing:
//
//	0x57 0xAB addr cmd len data... sum
//
// sum is the low byte of the sum of every preceding byte. Replies echo the
// command with bit 7 set (0xC0 on error) and carry a one-byte status.
const (
	head0 = 0x57
	head1 = 0xAB

	cmdSendKbGeneralData = 0x02
	replyOK              = 0x80

	FrameLen = 5 + 8 + 1
	ackLen   = 7
)

// Frame encodes a keyboard report for the bridge at addr.
func Frame(addr uint8, r types.KeyboardReport) [FrameLen]byte {
	var f [FrameLen]byte
	f[0], f[1], f[2], f[3], f[4] = head0, head1, addr, cmdSendKbGeneralData, 8
	b := r.Bytes()
	copy(f[5:], b[:])
	f[FrameLen-1] = checksum(f[:FrameLen-1])
	return f
}

func checksum(b []byte) byte {
	var s byte
	for _, x := range b {
		s += x
	}
	return s
}

// ackParser reassembles reply frames from a byte stream, resyncing on
// the header.
type ackParser struct {
	buf [ackLen]byte
	n   int
}

// feed consumes one byte and reports a completed reply: ok is true for a
// success status with a valid checksum.
func (p *ackParser) feed(c byte) (done, ok bool) {
	switch {
	case p.n == 0 && c != head0:
		return false, false
	case p.n == 1 && c != head1:
		p.n = 0
		if c == head0 {
			p.n = 1
			p.buf[0] = c
		}
		return false, false
	}
	p.buf[p.n] = c
	p.n++
	if p.n < ackLen {
		return false, false
	}
	p.n = 0
	f := p.buf
	valid := checksum(f[:ackLen-1]) == f[ackLen-1] && f[4] == 1
	return true, valid && f[3] == cmdSendKbGeneralData|replyOK && f[5] == 0
}
