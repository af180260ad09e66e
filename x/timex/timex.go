package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// PeriodFromHz returns the tick period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) time.Duration {
	if freqHz == 0 {
		freqHz = 1
	}
	return time.Second / time.Duration(freqHz)
}

// TicksPer returns how many ticks of the given frequency fit in d (at least 1).
func TicksPer(d time.Duration, freqHz uint32) uint32 {
	n := uint32(d / PeriodFromHz(freqHz))
	if n == 0 {
		return 1
	}
	return n
}
