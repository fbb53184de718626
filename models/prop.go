package models

// Game lifecycle phases as reported by the snapshot provider.
const (
	GameStatePre     = "pre"
	GameStateIn      = "in"
	GameStatePost    = "post"
	GameStateUnknown = "unknown"
)

// Prop settlement statuses. The live_* values apply while a game is in
// progress, the rest are terminal.
const (
	PropStatusPending     = "pending"
	PropStatusLiveHit     = "live_hit"
	PropStatusLiveMiss    = "live_miss"
	PropStatusLivePush    = "live_push"
	PropStatusWon         = "won"
	PropStatusLost        = "lost"
	PropStatusPush        = "push"
	PropStatusUnavailable = "unavailable"
)

// Team-level market types. Player props use a statistic kind
// (e.g. "rushing_yards") as their market type instead.
const (
	MarketMoneyline      = "moneyline"
	MarketSpread         = "spread"
	MarketTotalScore     = "total_score"
	MarketHomeTeamPoints = "home_team_points"
	MarketAwayTeamPoints = "away_team_points"
)

// PlayerProp is a single tracked prop for the current session or refresh
// batch. Bets and parlay legs are converted into PlayerProps before being
// run through the refresher, and the derived block is copied back out.
type PlayerProp struct {
	ID         string
	Sport      string
	GameID     string
	GameLabel  string
	PlayerName string
	TeamName   string
	MarketType string
	Line       float64
	Side       string // over/under, or a team name for moneyline/spread
	Stake      float64
	Odds       float64

	IsCombined      bool
	CombinedPlayers []CombinedPlayer

	// Derived fields, overwritten on every refresh
	CurrentValue    *float64
	CurrentValueStr *string
	GameState       string
	GameStatusText  string
	PropStatus      string
}

// IsTeamMarket reports whether a market type reads game scores instead of a
// player statistic. Period-scoped variants carry a "1h_" or "1q_" prefix.
func IsTeamMarket(marketType string) bool {
	switch StripPeriodPrefix(marketType) {
	case MarketMoneyline, MarketSpread, MarketTotalScore, MarketHomeTeamPoints, MarketAwayTeamPoints:
		return true
	}
	return false
}

// StripPeriodPrefix removes a leading period scope tag from a market type.
func StripPeriodPrefix(marketType string) string {
	if len(marketType) > 3 && (marketType[:3] == "1h_" || marketType[:3] == "1q_") {
		return marketType[3:]
	}
	return marketType
}

// PeriodScope returns "1h", "1q" or "" for a market type.
func PeriodScope(marketType string) string {
	if len(marketType) > 3 && (marketType[:3] == "1h_" || marketType[:3] == "1q_") {
		return marketType[:2]
	}
	return ""
}
