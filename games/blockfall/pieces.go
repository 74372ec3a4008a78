package blockfall

// Kind identifies one of the 7 tetrominoes.
type Kind int

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
)

// Kinds lists every tetromino in catalog order.
var Kinds = [...]Kind{I, O, T, S, Z, J, L}

// Rotation is an SRS orientation: 0=spawn, 1=right, 2=180, 3=left.
type Rotation int

const (
	Spawn Rotation = iota
	Right
	Flip
	Left
)

// Next returns the orientation reached by a quarter turn.
func (r Rotation) Next(clockwise bool) Rotation {
	if clockwise {
		return (r + 1) % 4
	}
	return (r + 3) % 4
}

// Color is an opaque 0xRRGGBB value. Zero means an empty cell.
type Color uint32

// Empty is the color of an unoccupied cell.
const Empty Color = 0

// Shape is the occupancy of a piece inside its 4x4 bounding box, indexed [row][col].
type Shape [4][4]bool

type tetromino struct {
	name   string
	shapes [4]Shape
	color  Color
	glow   Color
}

// shape builds a Shape from four rows written as strings, '#' marking a filled cell.
func shape(rows ...string) Shape {
	var s Shape
	for y, row := range rows {
		for x, c := range row {
			s[y][x] = c == '#'
		}
	}
	return s
}

// All four orientations are stored because SRS pivots are not pure
// rotations of one base matrix (the I piece in particular).
var catalog = [...]tetromino{
	I: {
		name: "I",
		shapes: [4]Shape{
			shape("....", "####", "....", "...."),
			shape("..#.", "..#.", "..#.", "..#."),
			shape("....", "....", "####", "...."),
			shape(".#..", ".#..", ".#..", ".#.."),
		},
		color: 0x00ffff,
		glow:  0x66ffff,
	},
	O: {
		name: "O",
		shapes: [4]Shape{
			shape(".##.", ".##.", "....", "...."),
			shape(".##.", ".##.", "....", "...."),
			shape(".##.", ".##.", "....", "...."),
			shape(".##.", ".##.", "....", "...."),
		},
		color: 0xffff00,
		glow:  0xffff66,
	},
	T: {
		name: "T",
		shapes: [4]Shape{
			shape(".#..", "###.", "....", "...."),
			shape(".#..", ".##.", ".#..", "...."),
			shape("....", "###.", ".#..", "...."),
			shape(".#..", "##..", ".#..", "...."),
		},
		color: 0xff00ff,
		glow:  0xff66ff,
	},
	S: {
		name: "S",
		shapes: [4]Shape{
			shape(".##.", "##..", "....", "...."),
			shape(".#..", ".##.", "..#.", "...."),
			shape("....", ".##.", "##..", "...."),
			shape("#...", "##..", ".#..", "...."),
		},
		color: 0x00ff00,
		glow:  0x66ff66,
	},
	Z: {
		name: "Z",
		shapes: [4]Shape{
			shape("##..", ".##.", "....", "...."),
			shape("..#.", ".##.", ".#..", "...."),
			shape("....", "##..", ".##.", "...."),
			shape(".#..", "##..", "#...", "...."),
		},
		color: 0xff0000,
		glow:  0xff6666,
	},
	J: {
		name: "J",
		shapes: [4]Shape{
			shape("#...", "###.", "....", "...."),
			shape(".##.", ".#..", ".#..", "...."),
			shape("....", "###.", "..#.", "...."),
			shape(".#..", ".#..", "##..", "...."),
		},
		color: 0x0000ff,
		glow:  0x6666ff,
	},
	L: {
		name: "L",
		shapes: [4]Shape{
			shape("..#.", "###.", "....", "...."),
			shape(".#..", ".#..", ".##.", "...."),
			shape("....", "###.", "#...", "...."),
			shape("##..", ".#..", ".#..", "...."),
		},
		color: 0xff8000,
		glow:  0xffaa66,
	},
}

// Shape returns the precomputed matrix for the given orientation.
func (k Kind) Shape(r Rotation) Shape {
	return catalog[k].shapes[r&3]
}

// Color returns the primary color written into the board on lock.
func (k Kind) Color() Color {
	return catalog[k].color
}

// GlowColor returns the cosmetic secondary color. The engine never reads it.
func (k Kind) GlowColor() Color {
	return catalog[k].glow
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(catalog) {
		return "?"
	}
	return catalog[k].name
}

// KindOf maps a locked cell color back to its kind.
func KindOf(c Color) (Kind, bool) {
	for _, k := range Kinds {
		if catalog[k].color == c {
			return k, true
		}
	}
	return 0, false
}
