package blockfall

// PieceView is the render-facing description of a piece.
type PieceView struct {
	Kind      string  `json:"kind"`
	Shape     [][]int `json:"shape"`
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Rotation  int     `json:"rotation"`
	Color     Color   `json:"color"`
	GlowColor Color   `json:"glowColor"`
}

// NextView is one entry of the preview queue.
type NextView struct {
	Kind      string  `json:"kind"`
	Shape     [][]int `json:"shape"`
	Color     Color   `json:"color"`
	GlowColor Color   `json:"glowColor"`
}

// Snapshot is the read-only state a renderer polls each frame.
type Snapshot struct {
	Board          [][]Color  `json:"board"`
	Active         *PieceView `json:"active,omitempty"`
	Ghost          *PieceView `json:"ghost,omitempty"`
	Next           []NextView `json:"next"`
	Score          int        `json:"score"`
	Level          int        `json:"level"`
	Lines          int        `json:"lines"`
	DropIntervalMS int64      `json:"dropIntervalMs"`
	State          RunState   `json:"state"`
	LastCleared    []int      `json:"lastCleared,omitempty"`
}

// GameOver reports whether the snapshot was taken after a top-out.
func (s Snapshot) GameOver() bool {
	return s.State == GameOver
}

func shapeGrid(s Shape) [][]int {
	grid := make([][]int, len(s))
	for y := range s {
		grid[y] = make([]int, len(s[y]))
		for x, filled := range s[y] {
			if filled {
				grid[y][x] = 1
			}
		}
	}
	return grid
}

func viewOf(p Piece) *PieceView {
	return &PieceView{
		Kind:      p.Kind.String(),
		Shape:     shapeGrid(p.Shape()),
		X:         p.X,
		Y:         p.Y,
		Rotation:  int(p.Rotation),
		Color:     p.Kind.Color(),
		GlowColor: p.Kind.GlowColor(),
	}
}

func nextViewOf(k Kind) NextView {
	return NextView{
		Kind:      k.String(),
		Shape:     shapeGrid(k.Shape(Spawn)),
		Color:     k.Color(),
		GlowColor: k.GlowColor(),
	}
}
