package domain

// message types pushed to the view of a match
const (
	MessageMatchStarted = "match_started"
	MessageMoveMade     = "move_made"
	MessageColumnFull   = "column_full"
	MessageRoundOver    = "round_over"
	MessageRoundStarted = "round_started"
	MessageMatchOver    = "match_over"
)

type ServerMessage struct {
	Type        string       `json:"type"`
	MatchID     string       `json:"matchId,omitempty"`
	Result      *DropResult  `json:"result,omitempty"`
	CurrentTurn PlayerID     `json:"currentTurn,omitempty"`
	Board       [][]PlayerID `json:"board,omitempty"`
	Player1     *Player      `json:"player1,omitempty"`
	Player2     *Player      `json:"player2,omitempty"`
	Final       *FinalScore  `json:"final,omitempty"`
}
