package blockfall

// Offset is a kick translation in board cells, y growing downward.
type Offset struct {
	X, Y int
}

// kickTable is indexed [from][to]. Only the 8 adjacent transitions are
// populated; every list starts with the naive (0,0) placement.
type kickTable [4][4][]Offset

var standardKicks = kickTable{
	Spawn: {
		Right: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		Left:  {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	},
	Right: {
		Spawn: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		Flip:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	},
	Flip: {
		Right: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		Left:  {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	},
	Left: {
		Spawn: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		Flip:  {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	},
}

var iKicks = kickTable{
	Spawn: {
		Right: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		Left:  {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	},
	Right: {
		Spawn: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		Flip:  {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	},
	Flip: {
		Right: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		Left:  {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	},
	Left: {
		Spawn: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		Flip:  {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	},
}

var noKick = []Offset{{0, 0}}

// Kicks returns the ordered offsets to try when rotating kind from one
// orientation to another. O goes through the standard table like the
// other five pieces. Non-adjacent transitions only try (0,0).
func Kicks(k Kind, from, to Rotation) []Offset {
	table := &standardKicks
	if k == I {
		table = &iKicks
	}
	if offsets := table[from&3][to&3]; len(offsets) > 0 {
		return offsets
	}
	return noKick
}
