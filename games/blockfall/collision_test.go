package blockfall

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// referenceCollides is the collision rule written out cell by cell.
func referenceCollides(b *Board, p Piece, dx, dy int) bool {
	for _, c := range cellsOf(p) {
		x, y := c[0]+dx, c[1]+dy
		if x < 0 || x >= BoardWidth || y >= BoardHeight {
			return true
		}
		if y >= 0 && b.Cell(x, y) != Empty {
			return true
		}
	}
	return false
}

func TestCollidesMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewBoard()
	for i := 0; i < 60; i++ {
		b.SetCell(rng.Intn(BoardWidth), 8+rng.Intn(BoardHeight-8), 0x0f0f0f)
	}

	for _, k := range Kinds {
		for r := Spawn; r <= Left; r++ {
			for x := -4; x <= BoardWidth; x++ {
				for y := -5; y <= BoardHeight; y++ {
					p := Piece{Kind: k, Rotation: r, X: x, Y: y}
					for _, d := range []Offset{{0, 0}, {-1, 0}, {1, 0}, {0, 1}} {
						if got, want := Collides(b, p, d.X, d.Y), referenceCollides(b, p, d.X, d.Y); got != want {
							t.Fatalf("%v rot=%d at (%d,%d) delta %v: got %v want %v", k, r, x, y, d, got, want)
						}
					}
				}
			}
		}
	}
}

func TestCollidesCases(t *testing.T) {
	b := NewBoard()
	b.SetCell(4, 10, 0xff)
	// T spawn cells relative to box: (1,0) (0,1) (1,1) (2,1)
	tee := Piece{Kind: T, X: 3, Y: 8}

	tests := []struct {
		name   string
		p      Piece
		dx, dy int
		want   bool
	}{
		{"free", tee, 0, 0, false},
		{"onto locked cell", tee, 0, 1, true},
		{"left wall", Piece{Kind: T, X: 0, Y: 3}, -1, 0, true},
		{"right wall", Piece{Kind: T, X: 7, Y: 3}, 1, 0, true},
		{"floor", Piece{Kind: T, X: 3, Y: 18}, 0, 1, true},
		{"resting on floor", Piece{Kind: T, X: 3, Y: 18}, 0, 0, false},
		{"above the top is free", Piece{Kind: T, X: 3, Y: -2}, 0, 0, false},
		{"empty box columns may hang past the wall", Piece{Kind: I, Rotation: Right, X: -2, Y: 0}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collides(b, tt.p, tt.dx, tt.dy))
		})
	}
}
