package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatch(t *testing.T) *Match {
	t.Helper()
	m, err := NewMatch(NewPlayer("Red"), NewPlayer("Yellow"), Rows, Columns)
	require.NoError(t, err)
	return m
}

// playVerticalWin lets the current player win in column 3 while the other
// answers in column 0.
func playVerticalWin(t *testing.T, m *Match) DropResult {
	t.Helper()
	var res DropResult
	for _, col := range []int{3, 0, 3, 0, 3, 0, 3} {
		var err error
		res, err = m.Drop(col)
		require.NoError(t, err)
	}
	require.Equal(t, OutcomeWin, res.Outcome)
	return res
}

func TestStartingPlayer(t *testing.T) {
	assert.Equal(t, Player1, StartingPlayer(0))
	assert.Equal(t, Player2, StartingPlayer(1))
	assert.Equal(t, Player1, StartingPlayer(2))
	assert.Equal(t, Player2, StartingPlayer(7))
}

func TestMatch_WinCreditsScoreAndParityPicksStarter(t *testing.T) {
	m := newMatch(t)
	assert.Equal(t, Player1, m.Game.CurrentPlayer)

	res := playVerticalWin(t, m)
	assert.Equal(t, Player1, res.Player)
	assert.Equal(t, 1, m.Player1.Score)
	assert.Equal(t, 0, m.Player2.Score)

	// one decided round: Player2 opens the next
	assert.Equal(t, Player2, m.ResetBoard())
	assert.Equal(t, Player2, m.Game.CurrentPlayer)
	assert.True(t, m.Game.Board.IsEmpty())

	res = playVerticalWin(t, m)
	assert.Equal(t, Player2, res.Player)
	assert.Equal(t, 1, m.Player2.Score)

	assert.Equal(t, Player1, m.ResetBoard())
	assert.Equal(t, 2, m.Rounds())
}

func TestMatch_DrawKeepsScores(t *testing.T) {
	m := newMatch(t)
	var res DropResult
	for _, col := range drawSequence {
		var err error
		res, err = m.Drop(col)
		require.NoError(t, err)
	}
	assert.Equal(t, OutcomeDraw, res.Outcome)
	assert.Equal(t, 0, m.Player1.Score)
	assert.Equal(t, 0, m.Player2.Score)
	assert.Equal(t, 1, m.Draws)

	// draws do not change score parity
	assert.Equal(t, Player1, m.ResetBoard())
}

func TestMatch_ErrorsPassThrough(t *testing.T) {
	m := newMatch(t)
	_, err := m.Drop(Columns)
	assert.ErrorIs(t, err, ErrColumnOutOfRange)

	playVerticalWin(t, m)
	_, err = m.Drop(1)
	assert.ErrorIs(t, err, ErrRoundOver)
	assert.Equal(t, 1, m.Player1.Score)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, MatchSummary{Winner: Player1}, Summarize(3, 1))
	assert.Equal(t, MatchSummary{Winner: Player2}, Summarize(0, 2))
	assert.Equal(t, MatchSummary{Winner: Empty, IsDraw: true}, Summarize(2, 2))
}

func TestMatch_Summary(t *testing.T) {
	m := newMatch(t)
	playVerticalWin(t, m)

	final := m.Summary()
	assert.Equal(t, "Red", final.WinnerName)
	assert.Equal(t, 1, final.Player1.Score)
	assert.False(t, final.Summary.IsDraw)

	m.ResetBoard()
	playVerticalWin(t, m)
	final = m.Summary()
	assert.True(t, final.Summary.IsDraw)
	assert.Empty(t, final.WinnerName)
}

func TestThemes(t *testing.T) {
	list := Themes()
	require.Len(t, list, 5)
	assert.Equal(t, "cars", list[0].Code)

	theme, err := LookupTheme("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, theme.Code)

	_, err = LookupTheme("chess")
	assert.ErrorIs(t, err, ErrUnknownTheme)

	theme, err = LookupTheme("stalker")
	require.NoError(t, err)
	p1, p2 := theme.PlayerNames("  ", "Strelok")
	assert.Equal(t, "Duty", p1)
	assert.Equal(t, "Strelok", p2)
}
