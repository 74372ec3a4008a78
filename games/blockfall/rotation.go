package blockfall

// TryRotate turns p a quarter turn and resolves wall kicks. Offsets are
// tried in table order and the first legal pose wins. When none fits, p is
// returned unchanged with ok=false.
func TryRotate(b *Board, p Piece, clockwise bool) (Piece, bool) {
	to := p.Rotation.Next(clockwise)
	for _, kick := range Kicks(p.Kind, p.Rotation, to) {
		candidate := Piece{
			Kind:     p.Kind,
			Rotation: to,
			X:        p.X + kick.X,
			Y:        p.Y + kick.Y,
		}
		if !Collides(b, candidate, 0, 0) {
			return candidate, true
		}
	}
	return p, false
}
