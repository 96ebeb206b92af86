package domain

type Player struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// Match is a sequence of rounds between the same two players. Scores
// survive board resets.
type Match struct {
	Player1 *Player
	Player2 *Player
	Game    *Game
	Draws   int
}

func NewMatch(player1, player2 *Player, rows, columns int) (*Match, error) {
	game, err := NewGame(rows, columns, StartingPlayer(player1.Score+player2.Score))
	if err != nil {
		return nil, err
	}

	return &Match{
		Player1: player1,
		Player2: player2,
		Game:    game,
	}, nil
}

// StartingPlayer picks who opens the next round: Player1 after an even
// number of decided rounds, Player2 after an odd one.
func StartingPlayer(rounds int) PlayerID {
	if rounds%2 == 0 {
		return Player1
	}
	return Player2
}

func (m *Match) Player(id PlayerID) *Player {
	switch id {
	case Player1:
		return m.Player1
	case Player2:
		return m.Player2
	}
	return nil
}

// Drop plays column for the current player and credits the winner.
func (m *Match) Drop(column int) (DropResult, error) {
	result, err := m.Game.Drop(column)
	if err != nil {
		return result, err
	}

	switch result.Outcome {
	case OutcomeWin:
		m.Player(result.Player).Score++
	case OutcomeDraw:
		m.Draws++
	}

	return result, nil
}

// ResetBoard clears the board. Score parity decides who starts.
func (m *Match) ResetBoard() PlayerID {
	starting := StartingPlayer(m.Player1.Score + m.Player2.Score)
	m.Game.Reset(starting)
	return starting
}

// Rounds counts the rounds decided so far.
func (m *Match) Rounds() int {
	return m.Player1.Score + m.Player2.Score + m.Draws
}

type MatchSummary struct {
	Winner PlayerID `json:"winner"`
	IsDraw bool     `json:"isDraw"`
}

// Summarize compares the final scores. Equal scores are a draw.
func Summarize(player1Score, player2Score int) MatchSummary {
	switch {
	case player1Score > player2Score:
		return MatchSummary{Winner: Player1}
	case player2Score > player1Score:
		return MatchSummary{Winner: Player2}
	}
	return MatchSummary{Winner: Empty, IsDraw: true}
}

type FinalScore struct {
	Player1    Player       `json:"player1"`
	Player2    Player       `json:"player2"`
	WinnerName string       `json:"winnerName,omitempty"`
	Summary    MatchSummary `json:"summary"`
}

func (m *Match) Summary() FinalScore {
	summary := Summarize(m.Player1.Score, m.Player2.Score)
	final := FinalScore{
		Player1: *m.Player1,
		Player2: *m.Player2,
		Summary: summary,
	}
	if p := m.Player(summary.Winner); p != nil {
		final.WinnerName = p.Name
	}
	return final
}
