package blockfall

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// RunState is the session's top-level state.
type RunState int

const (
	Active RunState = iota
	GameOver
)

func (s RunState) String() string {
	switch s {
	case Active:
		return "ACTIVE"
	case GameOver:
		return "GAME_OVER"
	}
	return fmt.Sprintf("RunState(%d)", int(s))
}

func (s RunState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *RunState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "ACTIVE":
		*s = Active
	case "GAME_OVER":
		*s = GameOver
	default:
		return fmt.Errorf("unknown run state %q", b)
	}
	return nil
}

// Session composes board, queue, controller and stats into one game. It is
// not safe for concurrent use; a single goroutine drives ticks and commands.
type Session struct {
	rules   Rules
	rng     Randomizer
	logger  *log.Logger
	board   *Board
	queue   *NextQueue
	ctrl    *Controller
	stats   Stats
	state   RunState
	elapsed time.Duration
	cleared []int
}

// Option configures a Session.
type Option func(*Session)

// WithRules replaces the default tunables.
func WithRules(r Rules) Option {
	return func(s *Session) { s.rules = r }
}

// WithRandomizer sets the source of piece draws.
func WithRandomizer(r Randomizer) Option {
	return func(s *Session) { s.rng = r }
}

// WithLogger enables debug logging of game-over and restart.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession starts a game with a piece already spawned.
func NewSession(opts ...Option) *Session {
	s := &Session{rules: DefaultRules()}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.board = NewBoard()
	s.queue = NewNextQueue(s.rules.QueueLength, s.rng)
	s.ctrl = NewController(s.board, s.queue)
	s.reset()
	return s
}

func (s *Session) reset() {
	s.board.Reset()
	s.queue.Reset()
	s.stats = NewStats(s.rules)
	s.elapsed = 0
	s.cleared = nil
	s.state = Active
	if !s.ctrl.Spawn() {
		s.endGame()
	}
}

func (s *Session) endGame() {
	s.state = GameOver
	if s.logger != nil {
		s.logger.Printf("[DEBUG] game over: score=%d lines=%d level=%d",
			s.stats.Score, s.stats.Lines, s.stats.Level)
	}
}

// Tick advances gravity by dt. At most one gravity step happens per tick
// and the accumulator restarts from zero after it.
func (s *Session) Tick(dt time.Duration) {
	if s.state != Active {
		return
	}
	s.elapsed += dt
	if s.elapsed >= s.stats.DropInterval {
		s.settle(s.ctrl.Step())
		s.elapsed = 0
	}
}

// Apply executes one command and reports whether it changed anything.
// Gameplay commands are ignored after game over; Restart always resets.
func (s *Session) Apply(cmd Command) bool {
	if cmd == Restart {
		s.Restart()
		return true
	}
	if s.state != Active {
		return false
	}
	switch cmd {
	case MoveLeft:
		return s.ctrl.Move(-1, 0)
	case MoveRight:
		return s.ctrl.Move(1, 0)
	case SoftDropStep:
		s.settle(s.ctrl.Step())
		return true
	case HardDrop:
		s.settle(s.ctrl.HardDrop())
		return true
	case RotateCW:
		return s.ctrl.Rotate(true)
	case RotateCCW:
		return s.ctrl.Rotate(false)
	}
	return false
}

// settle scores a lock and handles a failed spawn.
func (s *Session) settle(res *LockResult) {
	if res == nil {
		return
	}
	s.cleared = res.Rows
	s.stats.Apply(len(res.Rows), s.rules)
	if res.ToppedOut {
		s.endGame()
	}
}

// Restart clears the board, resets stats and the queue and spawns a piece.
func (s *Session) Restart() {
	if s.logger != nil {
		s.logger.Printf("[DEBUG] restart after score=%d", s.stats.Score)
	}
	s.reset()
}

func (s *Session) State() RunState {
	return s.state
}

func (s *Session) Stats() Stats {
	return s.stats
}

// Board exposes the grid for inspection. Callers must not mutate it.
func (s *Session) Board() *Board {
	return s.board
}

// Active returns the falling piece while the game is running.
func (s *Session) Active() (Piece, bool) {
	return s.ctrl.Active()
}

// Snapshot copies the state a renderer needs. After game over the piece
// that failed to spawn is still reported as active and the ghost is absent.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Board:          s.board.Rows(),
		Score:          s.stats.Score,
		Level:          s.stats.Level,
		Lines:          s.stats.Lines,
		DropIntervalMS: s.stats.DropInterval.Milliseconds(),
		State:          s.state,
	}
	if len(s.cleared) > 0 {
		snap.LastCleared = append([]int(nil), s.cleared...)
	}
	active, live := s.ctrl.Active()
	snap.Active = viewOf(active)
	if live {
		ghost, _ := s.ctrl.Ghost()
		snap.Ghost = viewOf(ghost)
	}
	for _, k := range s.queue.Peek() {
		snap.Next = append(snap.Next, nextViewOf(k))
	}
	return snap
}
