// Package macro compiles `name:literal` text into keystroke sequences and
// renders them as Go source for the keymap packages.
//
// Compilation happens on the host at build time. Any character the
// compiler cannot type is an error; nothing is deferred to the device.
package macro

import (
	"io"
	"strconv"

	"keycore-go/errcode"
	"keycore-go/types"
)

// Shift is the modifier used for uppercase letters and shifted symbols.
const Shift = types.KeyLShift

// Compile expands a literal into press/release steps, one character at a
// time, in order.
func Compile(text string) ([]types.Step, error) {
	steps := make([]types.Step, 0, 2*len(text))
	col := 0
	for _, r := range text {
		col++
		switch {
		case r >= '0' && r <= '9':
			steps = tap(steps, digitKey(r), false)
		case r >= 'a' && r <= 'z':
			steps = tap(steps, types.KeyA+types.KeyCode(r-'a'), false)
		case r >= 'A' && r <= 'Z':
			steps = tap(steps, types.KeyA+types.KeyCode(r-'A'), true)
		case r > 0x7F:
			return nil, errcode.New(errcode.NonASCII, "macro.Compile",
				strconv.QuoteRune(r)+" at column "+strconv.Itoa(col))
		default:
			sym, ok := Symbols[r]
			if !ok {
				return nil, errcode.New(errcode.UnmappedChar, "macro.Compile",
					strconv.QuoteRune(r)+" at column "+strconv.Itoa(col))
			}
			steps = tap(steps, sym.Key, sym.Shift)
		}
	}
	return steps, nil
}

// digitKey maps '1'..'9','0' onto the HID digit row, where 0 comes last.
func digitKey(r rune) types.KeyCode {
	if r == '0' {
		return types.Key0
	}
	return types.Key1 + types.KeyCode(r-'1')
}

func tap(steps []types.Step, k types.KeyCode, shift bool) []types.Step {
	if shift {
		steps = append(steps, types.PressKey(Shift))
	}
	steps = append(steps, types.PressKey(k), types.ReleaseKey(k))
	if shift {
		steps = append(steps, types.ReleaseKey(Shift))
	}
	return steps
}

// CompileSource parses and compiles a whole macro file. Errors name the
// offending line and macro.
func CompileSource(r io.Reader) ([]types.Sequence, error) {
	defs, err := Parse(r)
	if err != nil {
		return nil, err
	}
	out := make([]types.Sequence, 0, len(defs))
	for _, d := range defs {
		steps, err := Compile(d.Text)
		if err != nil {
			if e, ok := err.(*errcode.E); ok {
				e.Op = "macro.CompileSource"
				e.Msg = "line " + strconv.Itoa(d.Line) + " " + d.Name + ": " + e.Msg
			}
			return nil, err
		}
		out = append(out, types.NewSequence(d.Name, d.Text, steps...))
	}
	return out, nil
}
