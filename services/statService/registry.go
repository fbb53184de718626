package statService

import (
	"strings"

	"propsTracker/models"
)

// StatResult is a resolved stat for one player in one game. Player and Team
// carry the canonical names found in the boxscore so callers can backfill
// short or partial names the user entered.
type StatResult struct {
	Value   float64
	Player  string
	Team    string
	Display string
}

// SportAdapter resolves a player market against a normalized game snapshot.
// Resolve returns nil when the stat is not available, which the valuation
// engine treats differently from a zero value.
type SportAdapter interface {
	Sport() string
	Resolve(snapshot *models.GameSnapshot, playerName string, marketType string) *StatResult
}

type Registry struct {
	adapters map[string]SportAdapter
}

func New() *Registry {
	r := &Registry{adapters: make(map[string]SportAdapter)}
	r.Register(&NFLAdapter{})
	r.Register(&NBAAdapter{})
	r.Register(&MLBAdapter{})
	return r
}

func (r *Registry) Register(adapter SportAdapter) {
	r.adapters[adapter.Sport()] = adapter
}

func (r *Registry) Get(sport string) (SportAdapter, bool) {
	adapter, ok := r.adapters[strings.ToLower(sport)]
	return adapter, ok
}

// Resolve dispatches to the adapter for the snapshot's sport. Football
// adapters also serve the college variants since the payload shape matches.
func (r *Registry) Resolve(snapshot *models.GameSnapshot, playerName string, marketType string) *StatResult {
	sport := strings.ToLower(snapshot.Sport)
	adapter, ok := r.adapters[sport]
	if !ok {
		switch sport {
		case "ncaaf":
			adapter, ok = r.adapters["nfl"]
		case "ncaab", "wnba":
			adapter, ok = r.adapters["nba"]
		}
	}
	if !ok {
		return nil
	}
	return adapter.Resolve(snapshot, playerName, marketType)
}

// findColumn returns the index of the first matching column name, checking
// keys before labels the way the provider documents them.
func findColumn(category models.StatCategory, targets []string) int {
	for i, key := range category.Keys {
		for _, target := range targets {
			if key == target {
				return i
			}
		}
	}
	for i, label := range category.Labels {
		for _, target := range targets {
			if label == target {
				return i
			}
		}
	}
	return -1
}

// findPlayerInSnapshot scans every stat table for a name match, returning
// canonical player and team names.
func findPlayerInSnapshot(snapshot *models.GameSnapshot, playerName string) (string, string, bool) {
	target := strings.ToLower(playerName)
	if target == "" {
		return "", "", false
	}
	for _, team := range snapshot.Teams {
		for _, category := range team.Categories {
			for _, athlete := range category.Athletes {
				if strings.Contains(strings.ToLower(athlete.Player), target) {
					return athlete.Player, team.Name, true
				}
			}
		}
	}
	return "", "", false
}
