// Package layout resolves debounced switch events into active key codes
// through a stack of momentary layers, and plays back compiled macros one
// step per tick.
package layout

import (
	"strconv"

	"keycore-go/errcode"
	"keycore-go/types"
)

// Layer is a complete rows × cols action table. Layer 0 is the base layer.
type Layer [][]types.Action

// Rows and Cols describe the table shape; Cols is taken from the first row.
func (l Layer) Rows() int { return len(l) }
func (l Layer) Cols() int {
	if len(l) == 0 {
		return 0
	}
	return len(l[0])
}

// At returns the action at c, or NoOp outside the table.
func (l Layer) At(c types.Coord) types.Action {
	r, col := int(c.Row), int(c.Col)
	if r >= len(l) || col >= len(l[r]) {
		return types.NoOp
	}
	return l[r][col]
}

const maxDim = 256

// Validate checks a layer set against a macro table:
//   - at least one layer, all with the same non-empty rectangular shape
//   - no Transparent on the base layer
//   - every MO(n) names a non-base layer that exists
//   - every Play(id) names an existing sequence
func Validate(layers []Layer, macros []types.Sequence) error {
	const op = "layout.Validate"
	if len(layers) == 0 {
		return errcode.New(errcode.NoLayers, op, "")
	}
	rows, cols := layers[0].Rows(), layers[0].Cols()
	if rows == 0 || cols == 0 || rows > maxDim || cols > maxDim {
		return errcode.New(errcode.LayerShape, op, "base layer is "+dims(rows, cols))
	}
	for li, l := range layers {
		if l.Rows() != rows {
			return errcode.New(errcode.LayerShape, op,
				"layer "+strconv.Itoa(li)+" has "+strconv.Itoa(l.Rows())+" rows, want "+strconv.Itoa(rows))
		}
		for r, row := range l {
			if len(row) != cols {
				return errcode.New(errcode.LayerShape, op,
					"layer "+strconv.Itoa(li)+" row "+strconv.Itoa(r)+" has "+strconv.Itoa(len(row))+" cols, want "+strconv.Itoa(cols))
			}
		}
	}
	// Cells are checked only once every layer has the base shape.
	for li, l := range layers {
		for r, row := range l {
			for c, a := range row {
				at := "layer " + strconv.Itoa(li) + " " + types.Coord{Row: uint8(r), Col: uint8(c)}.String()
				switch a.Kind {
				case types.ActionTransparent:
					if li == 0 {
						return errcode.New(errcode.TransparentBase, op, at)
					}
				case types.ActionMomentary:
					if a.Layer <= 0 || a.Layer >= len(layers) {
						return errcode.New(errcode.LayerRange, op, at+": "+a.String())
					}
				case types.ActionMacro:
					if a.Macro < 0 || int(a.Macro) >= len(macros) {
						return errcode.New(errcode.UnknownMacro, op, at+": "+a.String())
					}
				}
			}
		}
	}
	return nil
}

func dims(r, c int) string { return strconv.Itoa(r) + "x" + strconv.Itoa(c) }
