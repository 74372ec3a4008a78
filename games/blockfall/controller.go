package blockfall

// SpawnX is the column of the 4x4 box for a new piece.
const SpawnX = BoardWidth/2 - 2

// LockResult describes what happened when a piece locked.
type LockResult struct {
	// Rows holds the row index of every clear, in detection order.
	Rows []int
	// ToppedOut is set when the following spawn collided.
	ToppedOut bool
}

// Controller owns the falling piece and its ghost. It is the only writer
// of piece cells into the board.
type Controller struct {
	board  *Board
	queue  *NextQueue
	active Piece
	ghost  Piece
	live   bool
}

// NewController returns a controller with no active piece.
func NewController(board *Board, queue *NextQueue) *Controller {
	return &Controller{board: board, queue: queue}
}

// Spawn takes the next kind from the queue and places it at the spawn
// pose. It returns false when the pose already collides; the board is not
// touched in that case.
func (c *Controller) Spawn() bool {
	c.active = Piece{Kind: c.queue.Dequeue(), Rotation: Spawn, X: SpawnX, Y: 0}
	if Collides(c.board, c.active, 0, 0) {
		c.live = false
		return false
	}
	c.live = true
	c.updateGhost()
	return true
}

// Move translates the active piece. Nothing changes when the target collides.
func (c *Controller) Move(dx, dy int) bool {
	if !c.live || Collides(c.board, c.active, dx, dy) {
		return false
	}
	c.active.X += dx
	c.active.Y += dy
	c.updateGhost()
	return true
}

// Rotate turns the active piece with SRS kicks.
func (c *Controller) Rotate(clockwise bool) bool {
	if !c.live {
		return false
	}
	p, ok := TryRotate(c.board, c.active, clockwise)
	if !ok {
		return false
	}
	c.active = p
	c.updateGhost()
	return true
}

// Step is one gravity descent. When the piece cannot move down it locks
// immediately and the returned result is non-nil.
func (c *Controller) Step() *LockResult {
	if !c.live || c.Move(0, 1) {
		return nil
	}
	return c.lock()
}

// HardDrop drops the piece as far as it goes and locks it.
func (c *Controller) HardDrop() *LockResult {
	if !c.live {
		return nil
	}
	for c.Move(0, 1) {
	}
	return c.lock()
}

// lock writes the piece into the board, clears lines and spawns the next
// piece. Cells above the top are skipped; that alone never ends the game.
func (c *Controller) lock() *LockResult {
	color := c.active.Kind.Color()
	c.active.Cells(func(x, y int) {
		if y >= 0 {
			c.board.SetCell(x, y, color)
		}
	})
	res := &LockResult{Rows: ClearLines(c.board)}
	res.ToppedOut = !c.Spawn()
	return res
}

func (c *Controller) updateGhost() {
	g := c.active
	for !Collides(c.board, g, 0, 1) {
		g.Y++
	}
	c.ghost = g
}

// Active returns the falling piece. ok is false after a failed spawn; the
// returned piece is then the pose that collided.
func (c *Controller) Active() (p Piece, ok bool) {
	return c.active, c.live
}

// Ghost returns the landing projection of the active piece.
func (c *Controller) Ghost() (p Piece, ok bool) {
	return c.ghost, c.live
}
