package blockfall

// seqRand replays a fixed sequence of draws, cycling when exhausted.
type seqRand struct {
	seq []int
	i   int
}

func (r *seqRand) Intn(n int) int {
	v := r.seq[r.i%len(r.seq)]
	r.i++
	return v % n
}

// only returns a randomizer that always draws k.
func only(k Kind) *seqRand {
	return &seqRand{seq: []int{int(k)}}
}

func fillRow(b *Board, y int, except ...int) {
	skip := map[int]bool{}
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < BoardWidth; x++ {
		if !skip[x] {
			b.SetCell(x, y, 0x808080)
		}
	}
}

func cellsOf(p Piece) [][2]int {
	var out [][2]int
	p.Cells(func(x, y int) { out = append(out, [2]int{x, y}) })
	return out
}
