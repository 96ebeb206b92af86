package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// Other returns the opponent of p. Empty has no opponent.
func (p PlayerID) Other() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "empty"
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4

	// MaxDimension bounds rows and columns of a custom board
	MaxDimension = 32
)

// to represent the round status
type GameStatus string

const (
	StatusEmpty  GameStatus = "empty"
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Outcome is what a single drop produced
type Outcome string

const (
	OutcomeContinue   Outcome = "continue"
	OutcomeWin        Outcome = "win"
	OutcomeDraw       Outcome = "draw"
	OutcomeColumnFull Outcome = "column_full"
)

// DropResult reports the effect of Game.Drop.
// Row and Column locate the placed piece; both are -1 for OutcomeColumnFull.
// Next is the player to move after OutcomeContinue, Empty otherwise.
type DropResult struct {
	Outcome Outcome  `json:"outcome"`
	Player  PlayerID `json:"player"`
	Row     int      `json:"row"`
	Column  int      `json:"column"`
	Next    PlayerID `json:"next"`
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnOutOfRange  Error = "column out of range"
	ErrColumnFull        Error = "column is full"
	ErrRoundOver         Error = "round is over"
	ErrInvalidDimensions Error = "invalid board dimensions"
	ErrInvalidPlayer     Error = "invalid player"
	ErrUnknownTheme      Error = "unknown theme"
)
