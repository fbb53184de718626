package models

// Game is a compact scoreboard entry for one event.
type Game struct {
	EventID      string    `json:"eventId"`
	HomeTeam     string    `json:"homeTeam"`
	AwayTeam     string    `json:"awayTeam"`
	HomeScore    string    `json:"homeScore"`
	AwayScore    string    `json:"awayScore"`
	Status       string    `json:"status"`
	State        string    `json:"state"`
	Completed    bool      `json:"completed"`
	Date         string    `json:"date"`
	Period       int       `json:"period"`
	DisplayClock string    `json:"displayClock"`
	Odds         *GameOdds `json:"odds,omitempty"`
}

type GameOdds struct {
	Details       string  `json:"details"`
	OverUnder     float64 `json:"overUnder"`
	Spread        float64 `json:"spread"`
	HomeMoneyline string  `json:"homeMoneyline,omitempty"`
	AwayMoneyline string  `json:"awayMoneyline,omitempty"`
}

type NewsItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Published   string `json:"published"`
	Source      string `json:"source,omitempty"`
}

// PlayerMatch is a player located inside a game's boxscore or roster.
type PlayerMatch struct {
	DisplayName string `json:"displayName"`
	TeamName    string `json:"teamName"`
}

// StandingsRow is one team's line in a conference or league table.
type StandingsRow struct {
	Rank      int    `json:"rank"`
	Team      string `json:"team"`
	Wins      string `json:"wins"`
	Losses    string `json:"losses"`
	WinPct    string `json:"winPct"`
	GamesBack string `json:"gamesBack"`
	Streak    string `json:"streak"`
	Note      string `json:"note,omitempty"`
	Played    string `json:"played,omitempty"`
	Draws     string `json:"draws,omitempty"`
	Points    string `json:"points,omitempty"`
	GoalDiff  string `json:"goalDiff,omitempty"`
}

// DriverStanding is one row of the F1 championship table.
type DriverStanding struct {
	Position string `json:"position"`
	Driver   string `json:"driver"`
	Team     string `json:"team"`
	Points   string `json:"points"`
	Wins     string `json:"wins"`
}

// RaceInfo is one grand prix on the F1 calendar, with the winner once run.
type RaceInfo struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	Location  string `json:"location"`
	Status    string `json:"status"`
	Completed bool   `json:"completed"`
	Winner    string `json:"winner"`
}
