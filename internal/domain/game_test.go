package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStandardGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(Rows, Columns, Player1)
	require.NoError(t, err)
	return g
}

func TestNewGame_RejectsBadInput(t *testing.T) {
	_, err := NewGame(0, 7, Player1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewGame(6, MaxDimension+1, Player1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewGame(6, 7, Empty)
	assert.ErrorIs(t, err, ErrInvalidPlayer)
}

func TestDrop_GravityStacksFromBottom(t *testing.T) {
	g := newStandardGame(t)

	for i := 0; i < Rows; i++ {
		res, err := g.Drop(2)
		require.NoError(t, err)
		assert.Equal(t, OutcomeContinue, res.Outcome)
		assert.Equal(t, Rows-1-i, res.Row)
		assert.Equal(t, 2, res.Column)

		owner, ok := g.CellOwner(res.Row, 2)
		assert.True(t, ok)
		assert.Equal(t, res.Player, owner)
	}
	assert.Equal(t, Rows, g.MoveCount)
}

func TestDrop_FullColumnIsNoOp(t *testing.T) {
	g := newStandardGame(t)
	for i := 0; i < Rows; i++ {
		_, err := g.Drop(0)
		require.NoError(t, err)
	}

	before := g.Board.Cells()
	turn := g.CurrentPlayer
	moves := g.MoveCount

	res, err := g.Drop(0)
	require.NoError(t, err)
	assert.Equal(t, OutcomeColumnFull, res.Outcome)
	assert.Equal(t, -1, res.Row)
	assert.Equal(t, before, g.Board.Cells())
	assert.Equal(t, turn, g.CurrentPlayer)
	assert.Equal(t, moves, g.MoveCount)
}

func TestDrop_OutOfRangeColumn(t *testing.T) {
	g := newStandardGame(t)

	for _, col := range []int{-1, Columns, 100} {
		_, err := g.Drop(col)
		assert.ErrorIs(t, err, ErrColumnOutOfRange)
	}
	assert.Equal(t, Player1, g.CurrentPlayer)
	assert.Equal(t, StatusEmpty, g.Status)
	assert.True(t, g.Board.IsEmpty())
}

func TestDrop_TurnAlternatesOnContinue(t *testing.T) {
	g := newStandardGame(t)

	expected := Player1
	for _, col := range []int{0, 1, 2, 3, 4, 5} {
		res, err := g.Drop(col)
		require.NoError(t, err)
		require.Equal(t, OutcomeContinue, res.Outcome)
		assert.Equal(t, expected, res.Player)
		assert.Equal(t, expected.Other(), res.Next)
		assert.Equal(t, expected.Other(), g.CurrentPlayer)
		expected = expected.Other()
	}
	assert.Equal(t, StatusActive, g.Status)
}

func TestDrop_VerticalWin(t *testing.T) {
	g := newStandardGame(t)

	// Player1 stacks column 3, Player2 answers in column 0
	moves := []int{3, 0, 3, 0, 3, 0}
	for _, col := range moves {
		res, err := g.Drop(col)
		require.NoError(t, err)
		require.Equal(t, OutcomeContinue, res.Outcome)
	}

	res, err := g.Drop(3)
	require.NoError(t, err)
	assert.Equal(t, DropResult{Outcome: OutcomeWin, Player: Player1, Row: 2, Column: 3}, res)
	assert.Equal(t, StatusWon, g.Status)
	assert.Equal(t, Player1, g.Winner)
	assert.Equal(t, Player1, g.CurrentPlayer, "turn must not flip after a win")
}

func TestDrop_RejectedAfterRoundOver(t *testing.T) {
	g := newStandardGame(t)
	for _, col := range []int{3, 0, 3, 0, 3, 0, 3} {
		_, err := g.Drop(col)
		require.NoError(t, err)
	}
	require.True(t, g.IsFinished())

	before := g.Board.Cells()
	_, err := g.Drop(5)
	assert.ErrorIs(t, err, ErrRoundOver)
	assert.Equal(t, before, g.Board.Cells())
}

// a full 6x7 game where no four ever line up
var drawSequence = []int{
	5, 3, 2, 3, 1, 5, 3, 1, 0, 1, 4, 1, 2, 5, 0, 5, 6, 6, 2, 0, 6,
	0, 4, 2, 3, 0, 3, 4, 2, 3, 2, 6, 1, 1, 5, 4, 6, 6, 0, 4, 4, 5,
}

func TestDrop_DrawOnLastCell(t *testing.T) {
	g := newStandardGame(t)
	require.Len(t, drawSequence, Rows*Columns)

	for i, col := range drawSequence[:len(drawSequence)-1] {
		res, err := g.Drop(col)
		require.NoError(t, err)
		require.Equal(t, OutcomeContinue, res.Outcome, "move %d", i)
	}
	require.False(t, g.Board.IsFull())

	res, err := g.Drop(drawSequence[len(drawSequence)-1])
	require.NoError(t, err)
	assert.Equal(t, OutcomeDraw, res.Outcome)
	assert.Equal(t, Empty, res.Next)
	assert.Equal(t, StatusDraw, g.Status)
	assert.Equal(t, Empty, g.Winner)
	assert.True(t, g.Board.IsFull())
	assert.Equal(t, Rows*Columns, g.MoveCount)
}

func TestDrop_WinOnLastCellIsNotDraw(t *testing.T) {
	g, err := NewGame(1, 4, Player1)
	require.NoError(t, err)

	// a 1x4 board: fill by hand so the last drop completes a row
	g.Board.cells[0] = []PlayerID{Player1, Player1, Player1, Empty}
	g.Status = StatusActive

	res, err := g.Drop(3)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWin, res.Outcome)
	assert.True(t, g.Board.IsFull())
	assert.Equal(t, StatusWon, g.Status)
}

func TestReset_ClearsEveryCell(t *testing.T) {
	g := newStandardGame(t)
	for _, col := range drawSequence[:20] {
		_, err := g.Drop(col)
		require.NoError(t, err)
	}

	g.Reset(Player2)

	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			owner, ok := g.CellOwner(r, c)
			assert.False(t, ok)
			assert.Equal(t, Empty, owner)
		}
	}
	assert.Equal(t, Player2, g.CurrentPlayer)
	assert.Equal(t, StatusEmpty, g.Status)
	assert.Equal(t, 0, g.MoveCount)
}
