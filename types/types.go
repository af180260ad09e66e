package types

// BootKeys is the number of non-modifier key slots in a boot keyboard report.
const BootKeys = 6

// ---- Report (retained on kbd/report) ----

// KeyboardReport is the boot-protocol input report.
type KeyboardReport struct {
	Modifiers uint8
	Keys      [BootKeys]KeyCode
}

// Bytes renders the 8-byte wire layout: modifiers, reserved, six usages.
func (r KeyboardReport) Bytes() [8]byte {
	var b [8]byte
	b[0] = r.Modifiers
	for i, k := range r.Keys {
		b[2+i] = byte(k)
	}
	return b
}

// Empty reports whether nothing is asserted.
func (r KeyboardReport) Empty() bool { return r == KeyboardReport{} }

// ---- Engine state (retained) ----

type LayerState struct {
	Active []int `json:"active"` // base first
	TS     int64 `json:"ts_ms"`
}

type KeyboardStats struct {
	Ticks    uint32 `json:"ticks"`
	Events   uint32 `json:"events"`
	Reports  uint32 `json:"reports"`
	Dropped  uint32 `json:"dropped"`  // keys refused by a full active set
	ScanErrs uint32 `json:"scan_errs"` // scanner I/O failures, if any
	TS       int64  `json:"ts_ms"`
}
