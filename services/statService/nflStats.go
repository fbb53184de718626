package statService

import (
	"strings"

	"propsTracker/models"
	"propsTracker/services/common"
)

type nflMapping struct {
	category string
	columns  []string
}

// Column keys and header labels both appear here because payloads are not
// consistent about which one they populate.
var nflStatMappings = map[string]nflMapping{
	"passing_yards":              {"passing", []string{"passingYards", "passYds"}},
	"passing_completions":        {"passing", []string{"completions/passingAttempts", "C/ATT"}},
	"passing_attempts":           {"passing", []string{"completions/passingAttempts", "C/ATT"}},
	"passing_touchdowns":         {"passing", []string{"passingTouchdowns", "TD"}},
	"passing_interceptions":      {"passing", []string{"interceptions", "INT"}},
	"longest_passing_completion": {"passing", []string{"longPassing", "LNG"}},

	"rushing_yards":      {"rushing", []string{"rushingYards", "rushYds"}},
	"rushing_attempts":   {"rushing", []string{"rushingAttempts", "CAR"}},
	"rushing_touchdowns": {"rushing", []string{"rushingTouchdowns", "TD"}},
	"longest_rush":       {"rushing", []string{"longRushing", "LNG"}},

	"receiving_yards":      {"receiving", []string{"receivingYards", "recYds"}},
	"receptions":           {"receiving", []string{"receptions", "REC"}},
	"receiving_touchdowns": {"receiving", []string{"receivingTouchdowns", "TD"}},
	"longest_reception":    {"receiving", []string{"longReception", "LNG"}},

	"sacks":           {"defensive", []string{"sacks", "SACK"}},
	"tackles_assists": {"defensive", []string{"totalTackles", "TOT"}},
	"tackle_assists":  {"defensive", []string{"assists", "AST"}},

	"field_goals_made":  {"kicking", []string{"fieldGoalsMade", "FG"}},
	"extra_points_made": {"kicking", []string{"extraPointsMade", "XP"}},
	"kicking_points":    {"kicking", []string{"points", "PTS"}},
}

// splitNumeratorMarkets read the left side of compound cells like "21/25"
// (completions) or "1/2" (field goals made).
var splitNumeratorMarkets = map[string]bool{
	"passing_completions": true,
	"field_goals_made":    true,
	"extra_points_made":   true,
}

type NFLAdapter struct{}

func (a *NFLAdapter) Sport() string { return "nfl" }

func (a *NFLAdapter) Resolve(snapshot *models.GameSnapshot, playerName string, marketType string) *StatResult {
	switch marketType {
	case "rushing_receiving_yards":
		return a.sumMarkets(snapshot, playerName, "rushing_yards", "receiving_yards")
	case "passing_rushing_yards":
		return a.sumMarkets(snapshot, playerName, "passing_yards", "rushing_yards")
	case "anytime_touchdowns":
		return a.anytimeTouchdowns(snapshot, playerName)
	case "first_touchdown", "last_touchdown":
		return a.touchdownEvent(snapshot, playerName, marketType)
	}

	mapping, ok := nflStatMappings[marketType]
	if !ok {
		return nil
	}
	return a.resolveColumn(snapshot, playerName, marketType, mapping)
}

func (a *NFLAdapter) resolveColumn(snapshot *models.GameSnapshot, playerName string, marketType string, mapping nflMapping) *StatResult {
	target := strings.ToLower(playerName)

	for _, team := range snapshot.Teams {
		for _, category := range team.Categories {
			if category.Name != mapping.category {
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

				raw := athlete.Stats[index]
				if splitNumeratorMarkets[marketType] {
					if num, _, ok := common.SplitPair(raw, "/"); ok {
						return &StatResult{Value: num, Player: athlete.Player, Team: team.Name}
					}
				}
				if marketType == "passing_attempts" {
					if _, den, ok := common.SplitPair(raw, "/"); ok {
						return &StatResult{Value: den, Player: athlete.Player, Team: team.Name}
					}
				}

				if value, ok := common.ParseStatValue(raw); ok {
					return &StatResult{Value: value, Player: athlete.Player, Team: team.Name}
				}
			}
		}
	}
	return nil
}

// sumMarkets adds two component stats. A player with only one of the two
// (a quarterback with no receptions) still resolves with the other at zero.
func (a *NFLAdapter) sumMarkets(snapshot *models.GameSnapshot, playerName string, firstMarket string, secondMarket string) *StatResult {
	first := a.Resolve(snapshot, playerName, firstMarket)
	second := a.Resolve(snapshot, playerName, secondMarket)
	if first == nil && second == nil {
		return nil
	}

	base := first
	if base == nil {
		base = second
	}

	total := 0.0
	if first != nil {
		total += first.Value
	}
	if second != nil {
		total += second.Value
	}
	return &StatResult{Value: total, Player: base.Player, Team: base.Team}
}

// anytimeTouchdowns sums rushing and receiving touchdowns. Return and
// defensive touchdowns are not counted; the boxscore has no reliable column
// for them.
func (a *NFLAdapter) anytimeTouchdowns(snapshot *models.GameSnapshot, playerName string) *StatResult {
	result := a.sumMarkets(snapshot, playerName, "rushing_touchdowns", "receiving_touchdowns")
	if result != nil {
		return result
	}

	// Player has no rushing or receiving line yet. If they are in the game
	// at all, report zero rather than unknown.
	if player, team, ok := findPlayerInSnapshot(snapshot, playerName); ok {
		return &StatResult{Value: 0.0, Player: player, Team: team}
	}
	return nil
}

// touchdownEvent resolves first/last touchdown markets from the ordered
// scoring log. Value is 1 when the player scored the relevant touchdown.
func (a *NFLAdapter) touchdownEvent(snapshot *models.GameSnapshot, playerName string, marketType string) *StatResult {
	player, team, found := findPlayerInSnapshot(snapshot, playerName)
	if !found {
		return nil
	}

	var touchdowns []models.ScoringPlay
	for _, play := range snapshot.ScoringPlays {
		scoringType := strings.ToLower(play.ScoringTypeName)
		typeText := strings.ToLower(play.TypeText)
		if strings.Contains(scoringType, "touchdown") || strings.Contains(typeText, "td") {
			touchdowns = append(touchdowns, play)
		}
	}

	if len(touchdowns) == 0 {
		return &StatResult{Value: 0.0, Player: player, Team: team}
	}

	target := touchdowns[0]
	if marketType == "last_touchdown" {
		target = touchdowns[len(touchdowns)-1]
	}

	text := strings.ToLower(target.Text)
	nameLower := strings.ToLower(player)
	parts := strings.Fields(nameLower)
	lastName := nameLower
	if len(parts) > 0 {
		lastName = parts[len(parts)-1]
	}

	value := 0.0
	if strings.Contains(text, nameLower) || strings.Contains(text, lastName) {
		value = 1.0
	}
	return &StatResult{Value: value, Player: player, Team: team}
}
