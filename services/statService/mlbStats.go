package statService

import (
	"strings"

	"propsTracker/models"
	"propsTracker/services/common"
)

type mlbMapping struct {
	category string
	columns  []string
}

var mlbStatMappings = map[string]mlbMapping{
	"hits":        {"batting", []string{"hits", "H"}},
	"runs":        {"batting", []string{"runs", "R"}},
	"rbi":         {"batting", []string{"RBIs", "RBI"}},
	"home_runs":   {"batting", []string{"homeRuns", "HR"}},
	"total_bases": {"batting", []string{"totalBases", "TB"}},

	"strikeouts_pitching": {"pitching", []string{"strikeouts", "K"}},
	"earned_runs":         {"pitching", []string{"earnedRuns", "ER"}},
	"innings_pitched":     {"pitching", []string{"fullInnings.partInnings", "IP"}},
}

type MLBAdapter struct{}

func (a *MLBAdapter) Sport() string { return "mlb" }

func (a *MLBAdapter) Resolve(snapshot *models.GameSnapshot, playerName string, marketType string) *StatResult {
	mapping, ok := mlbStatMappings[marketType]
	if !ok {
		return nil
	}

	target := strings.ToLower(playerName)

	for _, team := range snapshot.Teams {
		for _, category := range team.Categories {
			// Baseball categories often come unnamed, so classify by the
			// keys present instead of the category name.
			if classifyMLBCategory(category.Keys) != mapping.category {
				continue
			}

			index := findColumn(category, mapping.columns)
			if index < 0 {
				continue
			}

			for _, athlete := range category.Athletes {
				if !strings.Contains(strings.ToLower(athlete.Player), target) {
					continue
				}
				if index >= len(athlete.Stats) {
					continue
				}

				if value, ok := common.ParseStatValue(athlete.Stats[index]); ok {
					return &StatResult{Value: value, Player: athlete.Player, Team: team.Name}
				}
			}
		}
	}
	return nil
}

func classifyMLBCategory(keys []string) string {
	hasAtBats := common.Contains(keys, "atBats") || common.Contains(keys, "plateAppearances")
	if hasAtBats {
		return "batting"
	}

	hasPitches := common.Contains(keys, "pitches")
	hasInnings := common.Contains(keys, "fullInnings.partInnings") || common.Contains(keys, "inningsPitched")
	if hasPitches && hasInnings {
		return "pitching"
	}
	return "unknown"
}
