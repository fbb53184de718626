package models

import (
	"time"
)

// TrackableBetTypes are the bet types that support live prop tracking.
// Parlays are tracked per-leg instead.
var TrackableBetTypes = []string{"Prop", "1st Half", "1st Quarter", "Team Total", "Moneyline", "Spread", "Total"}

type Bet struct {
	ID              string  `gorm:"primaryKey;size:36" json:"id"`
	UserID          string  `gorm:"index;size:64" json:"userId"`
	Sport           string  `json:"sport"`
	Type            string  `json:"type"` // Prop, Moneyline, Spread, Total, Team Total, 1st Half, 1st Quarter, Parlay
	Matchup         string  `json:"matchup"`
	Selection       string  `json:"selection"`
	Odds            float64 `json:"odds"`
	Stake           float64 `json:"stake"`
	Status          string  `json:"status"` // Pending, Won, Lost, Pushed
	Date            string  `json:"date"`
	Book            *string `json:"book,omitempty"`
	PotentialPayout float64 `json:"potentialPayout"`

	// Prop tracking fields, fixed once the bet is placed
	EventID    *string  `json:"eventId,omitempty"`
	PlayerName *string  `json:"playerName,omitempty"`
	TeamName   *string  `json:"teamName,omitempty"`
	MarketType *string  `json:"marketType,omitempty"`
	Line       *float64 `json:"line,omitempty"`
	Side       *string  `json:"side,omitempty"`

	// Combined prop fields
	IsCombined      bool             `json:"isCombined"`
	CombinedPlayers []CombinedPlayer `gorm:"serializer:json" json:"combinedPlayers,omitempty"`

	Legs []BetLeg `gorm:"foreignKey:BetID" json:"legs,omitempty"`

	// Live tracking data, overwritten on every refresh
	CurrentValue    *float64 `json:"currentValue,omitempty"`
	CurrentValueStr *string  `json:"currentValueStr,omitempty"`
	GameState       string   `json:"gameState,omitempty"`
	GameStatusText  string   `json:"gameStatusText,omitempty"`
	PropStatus      string   `json:"propStatus,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BetLeg struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	BetID     string  `gorm:"index;size:36" json:"betId"`
	LegOrder  int     `json:"legOrder"`
	Sport     string  `json:"sport"`
	Matchup   string  `json:"matchup"`
	Selection string  `json:"selection"`
	Odds      float64 `json:"odds"`

	EventID    *string  `json:"eventId,omitempty"`
	PlayerName *string  `json:"playerName,omitempty"`
	TeamName   *string  `json:"teamName,omitempty"`
	MarketType *string  `json:"marketType,omitempty"`
	Line       *float64 `json:"line,omitempty"`
	Side       *string  `json:"side,omitempty"`

	IsCombined      bool             `json:"isCombined"`
	CombinedPlayers []CombinedPlayer `gorm:"serializer:json" json:"combinedPlayers,omitempty"`

	CurrentValue    *float64 `json:"currentValue,omitempty"`
	CurrentValueStr *string  `json:"currentValueStr,omitempty"`
	GameState       string   `json:"gameState,omitempty"`
	GameStatusText  string   `json:"gameStatusText,omitempty"`
	PropStatus      string   `json:"propStatus,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CombinedPlayer is one sub-subject of a combined (multi-player) prop.
// Stored inline on the owning bet or leg as JSON.
type CombinedPlayer struct {
	PlayerName   string   `json:"player_name"`
	TeamName     string   `json:"team_name,omitempty"`
	CurrentValue *float64 `json:"current_value,omitempty"`
	GameState    string   `json:"game_state,omitempty"`
}

// UserStats is computed from a user's bets on demand, never stored.
type UserStats struct {
	TotalBets int     `json:"totalBets"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	Pushes    int     `json:"pushes"`
	Pending   int     `json:"pending"`
	WinRate   float64 `json:"winRate"`
	Profit    float64 `json:"profit"`
	ROI       float64 `json:"roi"`
}
