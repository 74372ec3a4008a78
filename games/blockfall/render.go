package blockfall

import (
	"fmt"
	"strings"
)

const (
	cellEmptyASCII = ".."
	cellGhostASCII = "[]"
)

// cellString draws one board cell two columns wide. With color on, cells
// use 24-bit ANSI backgrounds; otherwise each kind gets its own glyph pair.
func cellString(c Color, color bool) string {
	if c == Empty {
		if color {
			return "  "
		}
		return cellEmptyASCII
	}
	if color {
		return fmt.Sprintf("\033[48;2;%d;%d;%dm  \033[0m", (c>>16)&0xff, (c>>8)&0xff, c&0xff)
	}
	if k, ok := KindOf(c); ok {
		return asciiGlyphs[k]
	}
	return "##"
}

var asciiGlyphs = [...]string{
	I: "##",
	O: "@@",
	T: "**",
	S: "%%",
	Z: "&&",
	J: "++",
	L: "==",
}

func ghostString(c Color, color bool) string {
	if color {
		return fmt.Sprintf("\033[38;2;%d;%d;%dm[]\033[0m", (c>>16)&0xff, (c>>8)&0xff, c&0xff)
	}
	return cellGhostASCII
}

func overlay(grid [][]string, v *PieceView, cell string) {
	if v == nil {
		return
	}
	for py, row := range v.Shape {
		for px, filled := range row {
			x, y := v.X+px, v.Y+py
			if filled == 1 && y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
				grid[y][x] = cell
			}
		}
	}
}

// Render draws a snapshot as terminal text: the board with the ghost and
// active piece, followed by stats and the next queue.
func Render(snap Snapshot, color bool) string {
	grid := make([][]string, len(snap.Board))
	for y, row := range snap.Board {
		grid[y] = make([]string, len(row))
		for x, c := range row {
			grid[y][x] = cellString(c, color)
		}
	}
	if snap.Ghost != nil {
		overlay(grid, snap.Ghost, ghostString(snap.Ghost.Color, color))
	}
	if snap.Active != nil {
		overlay(grid, snap.Active, cellString(snap.Active.Color, color))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "BLOCKFALL | Score: %d | Lines: %d | Level: %d\n", snap.Score, snap.Lines, snap.Level)
	sb.WriteString("╔" + strings.Repeat("═", BoardWidth*2) + "╗\n")
	for _, row := range grid {
		sb.WriteString("║")
		for _, cell := range row {
			sb.WriteString(cell)
		}
		sb.WriteString("║\n")
	}
	sb.WriteString("╚" + strings.Repeat("═", BoardWidth*2) + "╝\n")

	sb.WriteString("\nNext:\n")
	for _, n := range snap.Next {
		for _, row := range n.Shape[:2] {
			sb.WriteString("  ")
			for _, filled := range row {
				if filled == 1 {
					sb.WriteString(cellString(n.Color, color))
				} else {
					sb.WriteString("  ")
				}
			}
			sb.WriteString("\n")
		}
	}

	if snap.GameOver() {
		sb.WriteString("\nGAME OVER - press R to restart, Q to quit\n")
	}
	return sb.String()
}
