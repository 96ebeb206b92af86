package domain

// Game is one round of play: the board plus whose turn it is.
// It is not safe for concurrent use.
type Game struct {
	Board         *Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
}

// NewGame starts a round on an empty rows x columns board.
func NewGame(rows, columns int, startingPlayer PlayerID) (*Game, error) {
	if startingPlayer != Player1 && startingPlayer != Player2 {
		return nil, ErrInvalidPlayer
	}

	board, err := NewBoard(rows, columns)
	if err != nil {
		return nil, err
	}

	return &Game{
		Board:         board,
		CurrentPlayer: startingPlayer,
		Status:        StatusEmpty,
		Winner:        Empty,
	}, nil
}

// Drop places a piece for the current player in column.
//
// A column outside the board returns ErrColumnOutOfRange and a finished
// round returns ErrRoundOver; neither changes any state. A full column is
// not an error: it reports OutcomeColumnFull and leaves the turn as is.
func (g *Game) Drop(column int) (DropResult, error) {
	if g.IsFinished() {
		return DropResult{}, ErrRoundOver
	}

	if column < 0 || column >= g.Board.Columns() {
		return DropResult{}, ErrColumnOutOfRange
	}

	player := g.CurrentPlayer
	row, err := g.Board.DropDisk(column, player)
	if err == ErrColumnFull {
		return DropResult{Outcome: OutcomeColumnFull, Player: player, Row: -1, Column: -1}, nil
	}
	if err != nil {
		return DropResult{}, err
	}

	g.MoveCount++
	result := DropResult{Player: player, Row: row, Column: column}

	if g.CheckWin(row, column) {
		g.Status = StatusWon
		g.Winner = player
		result.Outcome = OutcomeWin
		return result, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		result.Outcome = OutcomeDraw
		return result, nil
	}

	g.Status = StatusActive
	g.CurrentPlayer = player.Other()
	result.Outcome = OutcomeContinue
	result.Next = g.CurrentPlayer
	return result, nil
}

func (g *Game) CellOwner(row, col int) (PlayerID, bool) {
	return g.Board.CellOwner(row, col)
}

func (g *Game) CheckWin(row, col int) bool {
	return CheckWin(g.Board, row, col)
}

// Reset clears every cell and starts a new round with startingPlayer.
func (g *Game) Reset(startingPlayer PlayerID) {
	g.Board.Clear()
	g.CurrentPlayer = startingPlayer
	g.Status = StatusEmpty
	g.Winner = Empty
	g.MoveCount = 0
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
