package domain

import (
	"sort"
	"strings"
)

// Theme only carries the default player names; artwork belongs to the client.
type Theme struct {
	Code    string `json:"code"`
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

const DefaultTheme = "classic"

var themes = map[string]Theme{
	"classic":  {Code: "classic", Player1: "Red", Player2: "Yellow"},
	"poker":    {Code: "poker", Player1: "Black", Player2: "Blue"},
	"stalker":  {Code: "stalker", Player1: "Duty", Player2: "Freedom"},
	"cars":     {Code: "cars", Player1: "Mercedes", Player2: "BMW"},
	"football": {Code: "football", Player1: "Girona", Player2: "PSG"},
}

func LookupTheme(code string) (Theme, error) {
	if code == "" {
		code = DefaultTheme
	}
	theme, ok := themes[code]
	if !ok {
		return Theme{}, ErrUnknownTheme
	}
	return theme, nil
}

func Themes() []Theme {
	list := make([]Theme, 0, len(themes))
	for _, t := range themes {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list
}

// PlayerNames falls back to the theme defaults for blank names.
func (t Theme) PlayerNames(name1, name2 string) (string, string) {
	name1 = strings.TrimSpace(name1)
	name2 = strings.TrimSpace(name2)
	if name1 == "" {
		name1 = t.Player1
	}
	if name2 == "" {
		name2 = t.Player2
	}
	return name1, name2
}
