package types

import "keycore-go/x/conv"

// KeyCode is a USB HID keyboard-page usage. Values from 0xE8 onward are the
// vendor media usages understood by common boot-keyboard hosts.
type KeyCode uint8

// ---- Keyboard page (0x07) ----

const (
	KeyNo            KeyCode = 0x00
	KeyErrorRollOver KeyCode = 0x01
	KeyPostFail      KeyCode = 0x02
	KeyErrorUndef    KeyCode = 0x03

	KeyA KeyCode = 0x04
	KeyB KeyCode = 0x05
	KeyC KeyCode = 0x06
	KeyD KeyCode = 0x07
	KeyE KeyCode = 0x08
	KeyF KeyCode = 0x09
	KeyG KeyCode = 0x0A
	KeyH KeyCode = 0x0B
	KeyI KeyCode = 0x0C
	KeyJ KeyCode = 0x0D
	KeyK KeyCode = 0x0E
	KeyL KeyCode = 0x0F
	KeyM KeyCode = 0x10
	KeyN KeyCode = 0x11
	KeyO KeyCode = 0x12
	KeyP KeyCode = 0x13
	KeyQ KeyCode = 0x14
	KeyR KeyCode = 0x15
	KeyS KeyCode = 0x16
	KeyT KeyCode = 0x17
	KeyU KeyCode = 0x18
	KeyV KeyCode = 0x19
	KeyW KeyCode = 0x1A
	KeyX KeyCode = 0x1B
	KeyY KeyCode = 0x1C
	KeyZ KeyCode = 0x1D

	Key1 KeyCode = 0x1E
	Key2 KeyCode = 0x1F
	Key3 KeyCode = 0x20
	Key4 KeyCode = 0x21
	Key5 KeyCode = 0x22
	Key6 KeyCode = 0x23
	Key7 KeyCode = 0x24
	Key8 KeyCode = 0x25
	Key9 KeyCode = 0x26
	Key0 KeyCode = 0x27

	KeyEnter     KeyCode = 0x28
	KeyEscape    KeyCode = 0x29
	KeyBackspace KeyCode = 0x2A
	KeyTab       KeyCode = 0x2B
	KeySpace     KeyCode = 0x2C
	KeyMinus     KeyCode = 0x2D
	KeyEqual     KeyCode = 0x2E
	KeyLBracket  KeyCode = 0x2F
	KeyRBracket  KeyCode = 0x30
	KeyBackslash KeyCode = 0x31
	KeyNonUSHash KeyCode = 0x32
	KeySemicolon KeyCode = 0x33
	KeyQuote     KeyCode = 0x34
	KeyGrave     KeyCode = 0x35
	KeyComma     KeyCode = 0x36
	KeyDot       KeyCode = 0x37
	KeySlash     KeyCode = 0x38
	KeyCapsLock  KeyCode = 0x39

	KeyF1  KeyCode = 0x3A
	KeyF2  KeyCode = 0x3B
	KeyF3  KeyCode = 0x3C
	KeyF4  KeyCode = 0x3D
	KeyF5  KeyCode = 0x3E
	KeyF6  KeyCode = 0x3F
	KeyF7  KeyCode = 0x40
	KeyF8  KeyCode = 0x41
	KeyF9  KeyCode = 0x42
	KeyF10 KeyCode = 0x43
	KeyF11 KeyCode = 0x44
	KeyF12 KeyCode = 0x45

	KeyPrintScreen KeyCode = 0x46
	KeyScrollLock  KeyCode = 0x47
	KeyPause       KeyCode = 0x48
	KeyInsert      KeyCode = 0x49
	KeyHome        KeyCode = 0x4A
	KeyPgUp        KeyCode = 0x4B
	KeyDelete      KeyCode = 0x4C
	KeyEnd         KeyCode = 0x4D
	KeyPgDown      KeyCode = 0x4E
	KeyRight       KeyCode = 0x4F
	KeyLeft        KeyCode = 0x50
	KeyDown        KeyCode = 0x51
	KeyUp          KeyCode = 0x52
	KeyNumLock     KeyCode = 0x53

	KeyNonUSBackslash KeyCode = 0x64
	KeyApplication    KeyCode = 0x65
	KeyPower          KeyCode = 0x66

	KeyMute    KeyCode = 0x7F
	KeyVolUp   KeyCode = 0x80
	KeyVolDown KeyCode = 0x81

	// Modifiers: reported as bits in the first report byte.
	KeyLCtrl  KeyCode = 0xE0
	KeyLShift KeyCode = 0xE1
	KeyLAlt   KeyCode = 0xE2
	KeyLGui   KeyCode = 0xE3
	KeyRCtrl  KeyCode = 0xE4
	KeyRShift KeyCode = 0xE5
	KeyRAlt   KeyCode = 0xE6
	KeyRGui   KeyCode = 0xE7

	// Media usages.
	KeyMediaPlayPause    KeyCode = 0xE8
	KeyMediaStopCD       KeyCode = 0xE9
	KeyMediaPreviousSong KeyCode = 0xEA
	KeyMediaNextSong     KeyCode = 0xEB
	KeyMediaEjectCD      KeyCode = 0xEC
	KeyMediaVolUp        KeyCode = 0xED
	KeyMediaVolDown      KeyCode = 0xEE
	KeyMediaMute         KeyCode = 0xEF
	KeyMediaWWW          KeyCode = 0xF0
	KeyMediaBack         KeyCode = 0xF1
	KeyMediaForward      KeyCode = 0xF2
	KeyMediaStop         KeyCode = 0xF3
	KeyMediaFind         KeyCode = 0xF4
	KeyMediaScrollUp     KeyCode = 0xF5
	KeyMediaScrollDown   KeyCode = 0xF6
	KeyMediaEdit         KeyCode = 0xF7
	KeyMediaSleep        KeyCode = 0xF8
	KeyMediaCoffee       KeyCode = 0xF9
	KeyMediaRefresh      KeyCode = 0xFA
	KeyMediaCalc         KeyCode = 0xFB
)

// IsModifier reports whether k is one of the eight modifier usages.
func (k KeyCode) IsModifier() bool { return k >= KeyLCtrl && k <= KeyRGui }

// ModifierBit returns the report bitmask for a modifier, 0 otherwise.
func (k KeyCode) ModifierBit() uint8 {
	if !k.IsModifier() {
		return 0
	}
	return 1 << (k - KeyLCtrl)
}

// String returns the short name used by keymaps and generated code ("A",
// "LShift", "MediaMute"). Unnamed usages render as hex.
func (k KeyCode) String() string {
	if n := keyNames[k]; n != "" {
		return n
	}
	return conv.Hex0x(uint64(k), 2)
}

// KeyByName is the inverse of String for named usages.
func KeyByName(name string) (KeyCode, bool) {
	for i, n := range keyNames {
		if n != "" && n == name {
			return KeyCode(i), true
		}
	}
	return KeyNo, false
}

// KeyNames returns every named usage in code order.
func KeyNames() []string {
	out := make([]string, 0, 160)
	for _, n := range keyNames {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

var keyNames = [256]string{
	KeyNo: "No", KeyErrorRollOver: "ErrorRollOver", KeyPostFail: "PostFail", KeyErrorUndef: "ErrorUndef",

	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	Key1: "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",

	KeyEnter: "Enter", KeyEscape: "Escape", KeyBackspace: "Backspace", KeyTab: "Tab",
	KeySpace: "Space", KeyMinus: "Minus", KeyEqual: "Equal", KeyLBracket: "LBracket",
	KeyRBracket: "RBracket", KeyBackslash: "Backslash", KeyNonUSHash: "NonUSHash",
	KeySemicolon: "Semicolon", KeyQuote: "Quote", KeyGrave: "Grave", KeyComma: "Comma",
	KeyDot: "Dot", KeySlash: "Slash", KeyCapsLock: "CapsLock",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",

	KeyPrintScreen: "PrintScreen", KeyScrollLock: "ScrollLock", KeyPause: "Pause",
	KeyInsert: "Insert", KeyHome: "Home", KeyPgUp: "PgUp", KeyDelete: "Delete",
	KeyEnd: "End", KeyPgDown: "PgDown", KeyRight: "Right", KeyLeft: "Left",
	KeyDown: "Down", KeyUp: "Up", KeyNumLock: "NumLock",

	KeyNonUSBackslash: "NonUSBackslash", KeyApplication: "Application", KeyPower: "Power",
	KeyMute: "Mute", KeyVolUp: "VolUp", KeyVolDown: "VolDown",

	KeyLCtrl: "LCtrl", KeyLShift: "LShift", KeyLAlt: "LAlt", KeyLGui: "LGui",
	KeyRCtrl: "RCtrl", KeyRShift: "RShift", KeyRAlt: "RAlt", KeyRGui: "RGui",

	KeyMediaPlayPause: "MediaPlayPause", KeyMediaStopCD: "MediaStopCD",
	KeyMediaPreviousSong: "MediaPreviousSong", KeyMediaNextSong: "MediaNextSong",
	KeyMediaEjectCD: "MediaEjectCD", KeyMediaVolUp: "MediaVolUp",
	KeyMediaVolDown: "MediaVolDown", KeyMediaMute: "MediaMute", KeyMediaWWW: "MediaWWW",
	KeyMediaBack: "MediaBack", KeyMediaForward: "MediaForward", KeyMediaStop: "MediaStop",
	KeyMediaFind: "MediaFind", KeyMediaScrollUp: "MediaScrollUp",
	KeyMediaScrollDown: "MediaScrollDown", KeyMediaEdit: "MediaEdit",
	KeyMediaSleep: "MediaSleep", KeyMediaCoffee: "MediaCoffee",
	KeyMediaRefresh: "MediaRefresh", KeyMediaCalc: "MediaCalc",
}
