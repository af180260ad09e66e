// Package clueboard is the keymap for the Clueboard 66% hotswap PCB: a
// 10×8 switch matrix with three layers (base, function and macros).
//
// Layers are written in keyboard order, five physical rows left to right,
// and remapped onto the electrical matrix. Matrix positions with no switch
// are NoOp.
package clueboard

//go:generate go run keycore-go/cmd/keytool macro compile --pkg clueboard -o macros_gen.go macros.txt

import (
	"keycore-go/layout"
	"keycore-go/types"
)

const (
	Rows = 10
	Cols = 8
)

// Layer indices.
const (
	Base = iota
	Function
	Macro
)

// matrixPos lists, in keyboard order, the matrix position of every switch
// as row*10+col.
var matrixPos = [...]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 50, 51, 52, 53, 54, 55, 57,
	10, 11, 12, 13, 14, 15, 16, 17, 60, 61, 62, 63, 64, 65, 67,
	20, 21, 22, 23, 24, 25, 26, 27, 70, 71, 72, 73, 75,
	30, 32, 33, 34, 35, 36, 37, 80, 81, 82, 83, 85, 86,
	40, 41, 42, 45, 46, 90, 92, 93, 94, 95, 96, 97,
}

// Switches is the number of physical keys.
const Switches = len(matrixPos)

// Position returns the matrix coordinate of the i-th key in keyboard order.
func Position(i int) types.Coord {
	p := matrixPos[i]
	return types.Coord{Row: p / 10, Col: p % 10}
}

// remap places keyboard-order actions onto the matrix. It panics on a
// wrong count; the tables below are static.
func remap(keys ...types.Action) layout.Layer {
	if len(keys) != Switches {
		panic("clueboard: layer needs one action per switch")
	}
	l := make(layout.Layer, Rows)
	for r := range l {
		l[r] = make([]types.Action, Cols) // zero Action is NoOp
	}
	for i, a := range keys {
		c := Position(i)
		l[c.Row][c.Col] = a
	}
	return l
}

var (
	__ = types.Trans
	xx = types.NoOp
)

func k(c types.KeyCode) types.Action { return types.K(c) }

// Layers returns fresh layer tables.
func Layers() []layout.Layer {
	return []layout.Layer{
		Base: remap(
			k(types.KeyEscape), k(types.Key1), k(types.Key2), k(types.Key3), k(types.Key4), k(types.Key5), k(types.Key6), k(types.Key7), k(types.Key8), k(types.Key9), k(types.Key0), k(types.KeyMinus), k(types.KeyEqual), k(types.KeyBackspace), k(types.KeyPgUp),
			k(types.KeyTab), k(types.KeyQ), k(types.KeyW), k(types.KeyE), k(types.KeyR), k(types.KeyT), k(types.KeyY), k(types.KeyU), k(types.KeyI), k(types.KeyO), k(types.KeyP), k(types.KeyLBracket), k(types.KeyRBracket), k(types.KeyBackslash), k(types.KeyPgDown),
			k(types.KeyLCtrl), k(types.KeyA), k(types.KeyS), k(types.KeyD), k(types.KeyF), k(types.KeyG), k(types.KeyH), k(types.KeyJ), k(types.KeyK), k(types.KeyL), k(types.KeySemicolon), k(types.KeyQuote), k(types.KeyEnter),
			k(types.KeyLShift), k(types.KeyZ), k(types.KeyX), k(types.KeyC), k(types.KeyV), k(types.KeyB), k(types.KeyN), k(types.KeyM), k(types.KeyComma), k(types.KeyDot), k(types.KeySlash), k(types.KeyRShift), k(types.KeyUp),
			types.MO(Function), k(types.KeyLAlt), k(types.KeyLGui), k(types.KeySpace), k(types.KeySpace), xx, k(types.KeyRGui), types.MO(Macro), k(types.KeyApplication), k(types.KeyLeft), k(types.KeyDown), k(types.KeyRight),
		),
		Function: remap(
			k(types.KeyGrave), k(types.KeyF1), k(types.KeyF2), k(types.KeyF3), k(types.KeyF4), k(types.KeyF5), k(types.KeyF6), k(types.KeyF7), k(types.KeyF8), k(types.KeyF9), k(types.KeyF10), k(types.KeyF11), k(types.KeyF12), k(types.KeyDelete), k(types.KeyVolUp),
			__, __, __, __, __, __, __, __, __, k(types.KeyMediaPreviousSong), k(types.KeyMediaPlayPause), k(types.KeyMediaNextSong), k(types.KeyMute), k(types.KeyInsert), k(types.KeyVolDown),
			__, __, __, __, __, __, k(types.KeyLeft), k(types.KeyDown), k(types.KeyUp), k(types.KeyRight), __, __, __,
			__, __, __, __, __, __, __, __, __, __, __, __, k(types.KeyPgUp),
			__, __, __, __, __, __, __, __, __, k(types.KeyHome), k(types.KeyPgDown), k(types.KeyEnd),
		),
		Macro: remap(
			__, __, types.Play(EMAIL), __, __, __, __, __, __, __, __, __, __, k(types.KeyPrintScreen), __,
			__, __, types.Play(FNAME), __, __, __, __, types.Play(UNAME), __, __, types.Play(PHONE), __, __, __, __,
			__, types.Play(ADDR), __, __, __, __, __, __, __, __, __, __, __,
			__, __, __, __, __, types.Play(TOWN), __, types.Play(LNAME), __, __, __, __, __,
			__, __, __, __, __, __, __, __, __, __, __, __,
		),
	}
}
