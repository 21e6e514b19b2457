package primitives

// Cell is the content of one grid position: either empty or a single
// uppercase letter A-Z. The zero value is empty.
type Cell byte

// EmptyCell is the distinguished empty sentinel. It is not a space character.
const EmptyCell Cell = 0

func (c Cell) IsEmpty() bool {
	return c == EmptyCell
}

// Valid reports whether c is empty or an uppercase letter.
func (c Cell) Valid() bool {
	return c.IsEmpty() || (c >= 'A' && c <= 'Z')
}

// String renders the cell the way grids are printed: '-' for empty.
func (c Cell) String() string {
	if c.IsEmpty() {
		return "-"
	}
	return string(rune(c))
}
