package blockfall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKicksTables(t *testing.T) {
	for _, k := range Kinds {
		for from := Spawn; from <= Left; from++ {
			for _, cw := range []bool{true, false} {
				offsets := Kicks(k, from, from.Next(cw))
				require.Len(t, offsets, 5, "%v %d cw=%v", k, from, cw)
				assert.Equal(t, Offset{0, 0}, offsets[0], "naive rotation is tried first")
			}
		}
	}

	assert.Equal(t, Offset{-2, 0}, Kicks(I, Spawn, Right)[1], "I uses its own table")
	assert.Equal(t, Offset{-1, 0}, Kicks(T, Spawn, Right)[1])
	assert.Equal(t, Kicks(T, Spawn, Right), Kicks(O, Spawn, Right), "O shares the standard table")
	assert.Equal(t, []Offset{{0, 0}}, Kicks(T, Spawn, Flip), "non-adjacent transitions fall back to (0,0)")
}

func TestRotationNext(t *testing.T) {
	assert.Equal(t, Right, Spawn.Next(true))
	assert.Equal(t, Spawn, Left.Next(true))
	assert.Equal(t, Left, Spawn.Next(false))
	assert.Equal(t, Flip, Left.Next(false))
}

func TestTryRotateNaive(t *testing.T) {
	b := NewBoard()
	p := Piece{Kind: T, X: 3, Y: 5}

	got, ok := TryRotate(b, p, true)
	require.True(t, ok)
	assert.Equal(t, Piece{Kind: T, Rotation: Right, X: 3, Y: 5}, got)

	got, ok = TryRotate(b, p, false)
	require.True(t, ok)
	assert.Equal(t, Piece{Kind: T, Rotation: Left, X: 3, Y: 5}, got)
}

func TestTryRotateTakesThirdKick(t *testing.T) {
	// L at (3,5) occupies (5,5) (3,6) (4,6) (5,6). Rotating to Right tries
	// (0,0) (-1,0) (-1,1) (0,-2) (-1,-2). Blocking (4,5) rules out offsets
	// 1 and 4, blocking (3,5) rules out offsets 2 and 5.
	b := NewBoard()
	b.SetCell(4, 5, 0xff)
	b.SetCell(3, 5, 0xff)
	p := Piece{Kind: L, X: 3, Y: 5}
	require.False(t, Collides(b, p, 0, 0))

	got, ok := TryRotate(b, p, true)
	require.True(t, ok)

	kick := Kicks(L, Spawn, Right)[2]
	assert.Equal(t, Piece{Kind: L, Rotation: Right, X: 3 + kick.X, Y: 5 + kick.Y}, got)
	assert.Equal(t, Piece{Kind: L, Rotation: Right, X: 2, Y: 6}, got)
}

func TestTryRotateWallKickI(t *testing.T) {
	// Vertical I hugging the left wall: its Flip shape would poke out at
	// x=-2, so 1->2 resolves with the third I offset (2,0).
	b := NewBoard()
	p := Piece{Kind: I, Rotation: Right, X: -2, Y: 5}
	require.False(t, Collides(b, p, 0, 0))

	got, ok := TryRotate(b, p, true)
	require.True(t, ok)
	assert.Equal(t, Piece{Kind: I, Rotation: Flip, X: 0, Y: 5}, got)
}

func TestTryRotateRejectedLeavesPieceUnchanged(t *testing.T) {
	b := NewBoard()
	p := Piece{Kind: L, X: 3, Y: 5}
	own := map[[2]int]bool{}
	for _, c := range cellsOf(p) {
		own[c] = true
	}
	for y := 0; y < BoardHeight; y++ {
		for x := 0; x < BoardWidth; x++ {
			if !own[[2]int{x, y}] {
				b.SetCell(x, y, 0xff)
			}
		}
	}

	for _, cw := range []bool{true, false} {
		got, ok := TryRotate(b, p, cw)
		assert.False(t, ok)
		assert.Equal(t, p, got)
	}
}

func TestTryRotateO(t *testing.T) {
	b := NewBoard()
	p := Piece{Kind: O, X: 3, Y: 0}
	got, ok := TryRotate(b, p, true)
	require.True(t, ok)
	assert.Equal(t, Right, got.Rotation)
	assert.Equal(t, p.X, got.X)
	assert.Equal(t, p.Y, got.Y)
	assert.Equal(t, p.Shape(), got.Shape())
}
