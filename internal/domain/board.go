package domain

// Board is the ownership grid. Row 0 is the top row, pieces settle toward
// the last row.
type Board struct {
	rows    int
	columns int
	cells   [][]PlayerID
}

func NewBoard(rows, columns int) (*Board, error) {
	if rows < 1 || columns < 1 || rows > MaxDimension || columns > MaxDimension {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]PlayerID, rows)
	for i := range cells {
		cells[i] = make([]PlayerID, columns)
	}
	return &Board{rows: rows, columns: columns, cells: cells}, nil
}

func (b *Board) Rows() int    { return b.rows }
func (b *Board) Columns() int { return b.columns }

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.columns
}

// CellOwner returns the owner of (row, col). Coordinates outside the grid
// and empty cells both report no owner.
func (b *Board) CellOwner(row, col int) (PlayerID, bool) {
	if !b.InBounds(row, col) {
		return Empty, false
	}
	owner := b.cells[row][col]
	return owner, owner != Empty
}

// DropDisk places the disk of player on the lowest empty row of column
// and returns that row.
func (b *Board) DropDisk(column int, player PlayerID) (int, error) {
	if column < 0 || column >= b.columns {
		return -1, ErrColumnOutOfRange
	}

	for row := b.rows - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			b.cells[row][column] = player
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// IsFull reports whether no empty cell is left. Gravity keeps the top row
// the last one to fill, so scanning it is enough.
func (b *Board) IsFull() bool {
	for c := 0; c < b.columns; c++ {
		if b.cells[0][c] == Empty {
			return false
		}
	}
	return true
}

func (b *Board) IsEmpty() bool {
	for c := 0; c < b.columns; c++ {
		if b.cells[b.rows-1][c] != Empty {
			return false
		}
	}
	return true
}

func (b *Board) Clear() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = Empty
		}
	}
}

// this creates a deep copy of the grid
func (b *Board) Cells() [][]PlayerID {
	out := make([][]PlayerID, len(b.cells))
	for i := range b.cells {
		out[i] = make([]PlayerID, len(b.cells[i]))
		copy(out[i], b.cells[i])
	}
	return out
}
