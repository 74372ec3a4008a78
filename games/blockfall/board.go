package blockfall

const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Board is the playfield. Row 0 is the top.
type Board struct {
	cells [BoardHeight][BoardWidth]Color
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Occupied reports whether a cell blocks a piece. Cells past the sides or
// below the floor always block; cells above the top never do.
func (b *Board) Occupied(x, y int) bool {
	if x < 0 || x >= BoardWidth || y >= BoardHeight {
		return true
	}
	if y < 0 {
		return false
	}
	return b.cells[y][x] != Empty
}

// Cell returns the color at (x, y), or Empty outside the grid.
func (b *Board) Cell(x, y int) Color {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
		return Empty
	}
	return b.cells[y][x]
}

// SetCell writes a color. Writes outside the visible grid are dropped.
func (b *Board) SetCell(x, y int, c Color) {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
		return
	}
	b.cells[y][x] = c
}

// RowFull reports whether every cell in row y is filled.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= BoardHeight {
		return false
	}
	for _, c := range b.cells[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// RemoveRow deletes row y, shifts every row above it down by one and
// inserts an empty row at the top.
func (b *Board) RemoveRow(y int) {
	if y < 0 || y >= BoardHeight {
		return
	}
	copy(b.cells[1:y+1], b.cells[0:y])
	b.cells[0] = [BoardWidth]Color{}
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = [BoardHeight][BoardWidth]Color{}
}

// Rows returns a copy of the grid, top row first.
func (b *Board) Rows() [][]Color {
	rows := make([][]Color, BoardHeight)
	for y := range b.cells {
		rows[y] = make([]Color, BoardWidth)
		copy(rows[y], b.cells[y][:])
	}
	return rows
}
