package domain

// axis pairs checked for a winning run through the anchor cell
var axes = [4][2][2]int{
	{{0, -1}, {0, 1}},  // horizontal
	{{-1, 0}, {1, 0}},  // vertical
	{{-1, -1}, {1, 1}}, // diagonal \
	{{-1, 1}, {1, -1}}, // diagonal /
}

// CountInDirection counts consecutive cells owned by player starting next to
// (row, col) and walking by (deltaRow, deltaCol). The anchor is not counted.
func CountInDirection(b *Board, row, col, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, col+deltaCol
	for {
		owner, ok := b.CellOwner(r, c)
		if !ok || owner != player {
			return count
		}
		count++
		r += deltaRow
		c += deltaCol
	}
}

// CheckWin reports whether the piece at (row, col) is part of ToWin or more
// same-owner cells along any axis. An empty anchor never wins.
func CheckWin(b *Board, row, col int) bool {
	owner, ok := b.CellOwner(row, col)
	if !ok {
		return false
	}

	for _, axis := range axes {
		c1 := CountInDirection(b, row, col, axis[0][0], axis[0][1], owner)
		c2 := CountInDirection(b, row, col, axis[1][0], axis[1][1], owner)
		if 1+c1+c2 >= ToWin {
			return true
		}
	}

	return false
}
