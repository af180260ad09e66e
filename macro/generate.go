package macro

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"

	"keycore-go/types"
)

// Header marks generated files.
const Header = "// Code generated by keytool macro compile; DO NOT EDIT."

// Generate renders seqs as a Go file in package pkg declaring one
// types.SequenceID constant per sequence and the Macros table they index.
func Generate(pkg string, seqs []types.Sequence) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(Header + "\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import \"keycore-go/types\"\n\n")

	if len(seqs) > 0 {
		b.WriteString("const (\n")
		for i, s := range seqs {
			if i == 0 {
				fmt.Fprintf(&b, "\t%s types.SequenceID = iota\n", s.Name)
				continue
			}
			fmt.Fprintf(&b, "\t%s\n", s.Name)
		}
		b.WriteString(")\n\n")
	}

	b.WriteString("var Macros = []types.Sequence{\n")
	for _, s := range seqs {
		fmt.Fprintf(&b, "\ttypes.NewSequence(%s, %s", strconv.Quote(s.Name), strconv.Quote(s.Text))
		if len(s.Steps) == 0 {
			b.WriteString("),\n")
			continue
		}
		b.WriteString(",\n")
		for _, st := range s.Steps {
			fn := "PressKey"
			if st.Kind == types.StepRelease {
				fn = "ReleaseKey"
			}
			fmt.Fprintf(&b, "\t\ttypes.%s(%s),\n", fn, keyIdent(st.Key))
		}
		b.WriteString("\t),\n")
	}
	b.WriteString("}\n")

	out, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("macro.Generate: %w", err)
	}
	return out, nil
}

func keyIdent(k types.KeyCode) string {
	if _, ok := types.KeyByName(k.String()); ok {
		return "types.Key" + k.String()
	}
	return fmt.Sprintf("types.KeyCode(%#02x)", uint8(k))
}
