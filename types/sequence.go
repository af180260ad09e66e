package types

// SequenceID indexes a compiled macro table.
type SequenceID int

type StepKind uint8

const (
	StepPress StepKind = iota + 1
	StepRelease
)

// Step is one macro keystroke.
type Step struct {
	Kind StepKind
	Key  KeyCode
}

func PressKey(k KeyCode) Step   { return Step{Kind: StepPress, Key: k} }
func ReleaseKey(k KeyCode) Step { return Step{Kind: StepRelease, Key: k} }

func (s Step) String() string {
	if s.Kind == StepPress {
		return "+" + s.Key.String()
	}
	return "-" + s.Key.String()
}

// Sequence is an immutable compiled macro. Text is the source literal.
type Sequence struct {
	Name  string
	Text  string
	Steps []Step
}

// NewSequence is used by generated macro tables.
func NewSequence(name, text string, steps ...Step) Sequence {
	return Sequence{Name: name, Text: text, Steps: steps}
}
