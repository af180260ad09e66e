package macro

import "keycore-go/types"

// Symbol is the keystroke that types one punctuation character on a US
// layout.
type Symbol struct {
	Shift bool
	Key   types.KeyCode
}

// Symbols maps every printable non-alphanumeric ASCII character the
// compiler accepts.
var Symbols = map[rune]Symbol{
	'`':  {false, types.KeyGrave},
	'~':  {true, types.KeyGrave},
	'!':  {true, types.Key1},
	'@':  {true, types.Key2},
	'#':  {true, types.Key3},
	'$':  {true, types.Key4},
	'%':  {true, types.Key5},
	'^':  {true, types.Key6},
	'&':  {true, types.Key7},
	'*':  {true, types.Key8},
	'(':  {true, types.Key9},
	')':  {true, types.Key0},
	'-':  {false, types.KeyMinus},
	'_':  {true, types.KeyMinus},
	'=':  {false, types.KeyEqual},
	'+':  {true, types.KeyEqual},
	'[':  {false, types.KeyLBracket},
	'{':  {true, types.KeyLBracket},
	']':  {false, types.KeyRBracket},
	'}':  {true, types.KeyRBracket},
	'\\': {false, types.KeyBackslash},
	'|':  {true, types.KeyBackslash},
	';':  {false, types.KeySemicolon},
	':':  {true, types.KeySemicolon},
	'\'': {false, types.KeyQuote},
	'"':  {true, types.KeyQuote},
	',':  {false, types.KeyComma},
	'<':  {true, types.KeyComma},
	'.':  {false, types.KeyDot},
	'>':  {true, types.KeyDot},
	'/':  {false, types.KeySlash},
	'?':  {true, types.KeySlash},
	' ':  {false, types.KeySpace},
}
