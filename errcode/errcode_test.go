package errcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	e := New(LayerRange, "layout.Validate", "layer 1 (3,4): MO(7)")
	want := "layout.Validate: layer_range: layer 1 (3,4): MO(7)"
	if e.Error() != want {
		t.Fatalf("got %q want %q", e.Error(), want)
	}
	w := Wrap(BusIO, "matrix.Scan", errors.New("nack"))
	if w.Error() != "matrix.Scan: bus_io: nack" {
		t.Fatalf("got %q", w.Error())
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(BusIO, "op", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
}

func TestOf(t *testing.T) {
	cause := errors.New("boom")
	cases := []struct {
		err  error
		want Code
	}{
		{nil, OK},
		{NotReady, NotReady},
		{New(UnknownMacro, "", ""), UnknownMacro},
		{fmt.Errorf("ctx: %w", New(NonASCII, "", "")), NonASCII},
		{cause, Error},
	}
	for _, tc := range cases {
		if got := Of(tc.err); got != tc.want {
			t.Errorf("Of(%v) = %q want %q", tc.err, got, tc.want)
		}
	}
	if !errors.Is(Wrap(BusIO, "op", cause), cause) {
		t.Fatal("Wrap should unwrap to cause")
	}
}
