// Package layout maps between key indices and 2D grid coordinates, and
// builds rotation remaps so a keypad can be mounted in any orientation.
package layout

import (
	"errors"
	"fmt"
)

var (
	ErrBadRotation = errors.New("rotation must be a multiple of 90 degrees")
	ErrNotSquare   = errors.New("quarter-turn rotation requires a square grid")
)

// Grid describes a rectangular keypad, indexed row-major from the top left.
type Grid struct {
	Cols int
	Rows int
}

// Default is the 4x4 grid shared by the Keybow 2040 and the Pico RGB
// Keypad Base.
var Default = Grid{Cols: 4, Rows: 4}

// Count returns the number of keys in the grid.
func (g Grid) Count() int {
	return g.Cols * g.Rows
}

// XY converts a key index to its x/y coordinate.
func (g Grid) XY(index int) (x, y int) {
	return index % g.Cols, index / g.Cols
}

// Index converts an x/y coordinate to a key index.
func (g Grid) Index(x, y int) int {
	return x + y*g.Cols
}

// Contains reports whether the coordinate is inside the grid.
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.Cols && y >= 0 && y < g.Rows
}

// RotationMap returns a remap table m where m[i] is the index, in the
// unrotated grid, of the key that appears at logical index i after the
// grid is rotated clockwise by the given number of degrees. Negative
// angles rotate anti-clockwise. Quarter turns are only defined for
// square grids; 0 and 180 degrees work for any grid.
func (g Grid) RotationMap(degrees int) ([]int, error) {
	if degrees%90 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRotation, degrees)
	}

	turns := (degrees / 90) % 4
	if turns < 0 {
		turns += 4
	}
	if turns%2 == 1 && g.Cols != g.Rows {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, g.Cols, g.Rows)
	}

	m := make([]int, g.Count())
	for i := range m {
		m[i] = i
	}
	if turns == 2 {
		for i := range m {
			x, y := g.XY(i)
			m[i] = g.Index(g.Cols-1-x, g.Rows-1-y)
		}
		return m, nil
	}
	for t := 0; t < turns; t++ {
		next := make([]int, len(m))
		for i := range next {
			x, y := g.XY(i)
			// One clockwise quarter turn: the key shown at (x, y)
			// comes from (y, rows-1-x) in the previous orientation.
			next[i] = m[g.Index(y, g.Rows-1-x)]
		}
		m = next
	}
	return m, nil
}
