package blockfall

// ClearLines removes every full row, scanning from the bottom. After a
// removal the same index is tested again because the row above has moved
// into it. The returned slice lists the index of each removal.
func ClearLines(b *Board) []int {
	var cleared []int
	for y := BoardHeight - 1; y >= 0; {
		if b.RowFull(y) {
			cleared = append(cleared, y)
			b.RemoveRow(y)
			continue
		}
		y--
	}
	return cleared
}
