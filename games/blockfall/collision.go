package blockfall

// Piece is a pose: a kind in one orientation with the board position of
// the top-left corner of its 4x4 box. The shape is derived, never stored.
type Piece struct {
	Kind     Kind
	Rotation Rotation
	X, Y     int
}

// Shape returns the matrix for the piece's current orientation.
func (p Piece) Shape() Shape {
	return p.Kind.Shape(p.Rotation)
}

// Cells calls fn with the board coordinates of each filled cell.
func (p Piece) Cells(fn func(x, y int)) {
	s := p.Shape()
	for py := range s {
		for px, filled := range s[py] {
			if filled {
				fn(p.X+px, p.Y+py)
			}
		}
	}
}

// Collides reports whether p translated by (dx, dy) would leave the field
// sideways, reach the floor, or overlap a locked cell. Cells above the top
// are never checked against occupancy.
func Collides(b *Board, p Piece, dx, dy int) bool {
	s := p.Shape()
	for py := range s {
		for px, filled := range s[py] {
			if !filled {
				continue
			}
			x := p.X + px + dx
			y := p.Y + py + dy
			if x < 0 || x >= BoardWidth || y >= BoardHeight {
				return true
			}
			if y >= 0 && b.Occupied(x, y) {
				return true
			}
		}
	}
	return false
}
