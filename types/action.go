package types

import "strconv"

// ActionKind selects the Action variant.
type ActionKind uint8

const (
	// ActionBlocked resolves to no key and stops the layer walk. It is the
	// zero value so unfilled table cells behave like absent switches.
	ActionBlocked ActionKind = iota
	ActionEmit
	ActionTransparent
	ActionMomentary
	ActionMacro
)

// Action is what a key does when pressed on a given layer.
// Only the field matching Kind is meaningful.
type Action struct {
	Kind  ActionKind
	Key   KeyCode
	Layer int
	Macro SequenceID
}

var (
	// Trans defers to the next lower active layer.
	Trans = Action{Kind: ActionTransparent}
	// NoOp marks physically absent positions.
	NoOp = Action{Kind: ActionBlocked}
)

// K emits a key while held.
func K(k KeyCode) Action { return Action{Kind: ActionEmit, Key: k} }

// MO activates layer n while held.
func MO(n int) Action { return Action{Kind: ActionMomentary, Layer: n} }

// Play fires a compiled sequence on press.
func Play(id SequenceID) Action { return Action{Kind: ActionMacro, Macro: id} }

func (a Action) String() string {
	switch a.Kind {
	case ActionEmit:
		return "K(" + a.Key.String() + ")"
	case ActionTransparent:
		return "Trans"
	case ActionMomentary:
		return "MO(" + strconv.Itoa(a.Layer) + ")"
	case ActionMacro:
		return "Play(" + strconv.Itoa(int(a.Macro)) + ")"
	default:
		return "NoOp"
	}
}
