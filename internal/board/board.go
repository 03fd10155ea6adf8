// Package board provides the grid geometry for the game board: a 4-wide,
// 3-high grid of 12 cells numbered 0 through 11, left to right, top to bottom.
package board

// Board dimensions
const (
	Width  = 4
	Height = 3
	Cells  = Width * Height
)

// Cell is a board position in the range [0, Cells)
type Cell int

// Valid reports whether c is on the board
func Valid(c Cell) bool {
	return c >= 0 && c < Cells
}

// Row returns the zero-based row of c
func Row(c Cell) int {
	return int(c) / Width
}

// Col returns the zero-based column of c
func Col(c Cell) int {
	return int(c) % Width
}

// Distance returns the Manhattan distance between two cells
func Distance(a, b Cell) int {
	return abs(Row(a)-Row(b)) + abs(Col(a)-Col(b))
}

// Adjacent reports whether two cells are exactly one step apart
func Adjacent(a, b Cell) bool {
	return Distance(a, b) == 1
}

// SameRowOrColumn reports whether two cells are mutually visible.
// Visibility is pure row/column alignment with no obstruction.
func SameRowOrColumn(a, b Cell) bool {
	return Row(a) == Row(b) || Col(a) == Col(b)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
