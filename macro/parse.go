package macro

import (
	"bufio"
	"go/token"
	"io"
	"strconv"
	"strings"

	"keycore-go/errcode"
)

// Definition is one parsed source line.
type Definition struct {
	Name string
	Text string
	Line int
}

// Parse reads `name:literal` lines. Blank lines and lines starting with '#'
// are skipped. The line splits at the first ':' and one space directly
// after it is dropped; the rest of the literal is kept verbatim. Names must
// be unique Go identifiers because they become constants.
func Parse(r io.Reader) ([]Definition, error) {
	const op = "macro.Parse"
	var defs []Definition
	seen := make(map[string]int)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(s) == "" || strings.HasPrefix(s, "#") {
			continue
		}
		at := "line " + strconv.Itoa(line)
		name, text, ok := strings.Cut(s, ":")
		if !ok {
			return nil, errcode.New(errcode.MacroSyntax, op, at+": missing ':'")
		}
		name = strings.TrimSpace(name)
		if !token.IsIdentifier(name) {
			return nil, errcode.New(errcode.MacroName, op, at+": "+strconv.Quote(name)+" is not an identifier")
		}
		if prev, dup := seen[name]; dup {
			return nil, errcode.New(errcode.MacroName, op,
				at+": "+name+" already defined on line "+strconv.Itoa(prev))
		}
		seen[name] = line
		defs = append(defs, Definition{Name: name, Text: strings.TrimPrefix(text, " "), Line: line})
	}
	if err := sc.Err(); err != nil {
		return nil, errcode.Wrap(errcode.Error, op, err)
	}
	return defs, nil
}
