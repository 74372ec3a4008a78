package blockfall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(k Kind) (*Controller, *Board) {
	b := NewBoard()
	return NewController(b, NewNextQueue(3, only(k))), b
}

func TestSpawnPosition(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			c, _ := newController(k)
			require.True(t, c.Spawn())

			p, ok := c.Active()
			require.True(t, ok)
			assert.Equal(t, Piece{Kind: k, Rotation: Spawn, X: 3, Y: 0}, p)
		})
	}
}

func TestMoveRejectedIsNoOp(t *testing.T) {
	c, _ := newController(T)
	require.True(t, c.Spawn())
	for c.Move(-1, 0) {
	}
	before, _ := c.Active()
	ghostBefore, _ := c.Ghost()

	assert.False(t, c.Move(-1, 0))
	after, _ := c.Active()
	ghostAfter, _ := c.Ghost()
	assert.Equal(t, before, after)
	assert.Equal(t, before.Shape(), after.Shape())
	assert.Equal(t, ghostBefore, ghostAfter)
	assert.Equal(t, 0, after.X)
}

func TestGhostFollowsMoves(t *testing.T) {
	c, b := newController(T)
	require.True(t, c.Spawn())

	ghost, ok := c.Ghost()
	require.True(t, ok)
	assert.Equal(t, Piece{Kind: T, X: 3, Y: 18}, ghost)

	// a ledge under columns 0-2
	for x := 0; x < 3; x++ {
		b.SetCell(x, 10, 0xff)
	}
	require.True(t, c.Move(-3, 0))
	ghost, _ = c.Ghost()
	assert.Equal(t, 0, ghost.X)
	assert.Equal(t, 8, ghost.Y)

	require.True(t, c.Rotate(true))
	ghost, _ = c.Ghost()
	active, _ := c.Active()
	assert.Equal(t, active.Rotation, ghost.Rotation)
	assert.Equal(t, active.X, ghost.X)
	assert.True(t, Collides(b, ghost, 0, 1))
	assert.False(t, Collides(b, ghost, 0, 0))
}

func TestHardDropLocksAndSpawns(t *testing.T) {
	c, b := newController(O)
	require.True(t, c.Spawn())

	res := c.HardDrop()
	require.NotNil(t, res)
	assert.Empty(t, res.Rows)
	assert.False(t, res.ToppedOut)

	// O fills columns 4-5 of its box
	for _, xy := range [][2]int{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, O.Color(), b.Cell(xy[0], xy[1]))
	}
	p, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, 0, p.Y, "next piece spawned at the top")
}

func TestStepMovesOrLocks(t *testing.T) {
	c, b := newController(I)
	require.True(t, c.Spawn())

	assert.Nil(t, c.Step())
	p, _ := c.Active()
	assert.Equal(t, 1, p.Y)

	for c.Move(0, 1) {
	}
	res := c.Step()
	require.NotNil(t, res, "a blocked step locks at once")
	assert.True(t, b.Occupied(3, 19))
	assert.True(t, b.Occupied(6, 19))
}

func TestLockAboveTopDoesNotEndGame(t *testing.T) {
	c, b := newController(T)
	require.True(t, c.Spawn())

	// vertical I in column 2 with half of it above the field
	c.active = Piece{Kind: I, Rotation: Right, X: 0, Y: -2}
	res := c.lock()

	assert.False(t, res.ToppedOut)
	assert.True(t, b.Occupied(2, 0))
	assert.True(t, b.Occupied(2, 1))
	assert.False(t, b.Occupied(2, 2))
	_, live := c.Active()
	assert.True(t, live)
}

func TestSpawnCollisionLeavesBoard(t *testing.T) {
	c, b := newController(T)
	b.SetCell(4, 1, 0xabcdef)
	before := b.Rows()

	assert.False(t, c.Spawn())
	assert.Equal(t, before, b.Rows())

	_, live := c.Active()
	assert.False(t, live)
	assert.False(t, c.Move(1, 0))
	assert.False(t, c.Rotate(true))
	assert.Nil(t, c.HardDrop())
	assert.Nil(t, c.Step())
}
