package statService

import (
	"fmt"
	"sort"
	"strings"

	"propsTracker/models"
	"propsTracker/services/common"
)

// Basketball boxscores label columns with short names in a single player
// table per team: MIN, PTS, FG, 3PT, FT, REB, AST, TO, STL, BLK, ...
var nbaMarketColumns = map[string]string{
	"points":              "PTS",
	"rebounds":            "REB",
	"assists":             "AST",
	"three_pointers_made": "3PT",
	"blocks":              "BLK",
	"steals":              "STL",
}

var doubleDoubleColumns = []string{"PTS", "REB", "AST", "BLK", "STL"}

type NBAAdapter struct{}

func (a *NBAAdapter) Sport() string { return "nba" }

func (a *NBAAdapter) Resolve(snapshot *models.GameSnapshot, playerName string, marketType string) *StatResult {
	if marketType == "double_double" {
		return a.doubleDouble(snapshot, playerName)
	}

	column, ok := nbaMarketColumns[marketType]
	if !ok {
		return nil
	}

	target := strings.ToLower(playerName)
	for _, team := range snapshot.Teams {
		for _, category := range team.Categories {
			index := columnIndex(category.Columns, column)
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
				// 3PT comes as "made-attempted", e.g. "4-9".
				if column == "3PT" && strings.Contains(raw, "-") {
					if made, _, ok := common.SplitPair(raw, "-"); ok {
						return &StatResult{Value: made, Player: athlete.Player, Team: team.Name}
					}
					continue
				}

				if value, ok := common.ParseStatValue(raw); ok {
					return &StatResult{Value: value, Player: athlete.Player, Team: team.Name}
				}
			}
		}
	}
	return nil
}

// doubleDouble counts categories at ten or more. Value is 1.0 when at least
// two qualify. Display carries the top two lines, e.g. "24 PTS, 11 REB".
func (a *NBAAdapter) doubleDouble(snapshot *models.GameSnapshot, playerName string) *StatResult {
	target := strings.ToLower(playerName)

	for _, team := range snapshot.Teams {
		for _, category := range team.Categories {
			if len(category.Columns) == 0 {
				continue
			}

			for _, athlete := range category.Athletes {
				if !strings.Contains(strings.ToLower(athlete.Player), target) {
					continue
				}

				type statLine struct {
					value float64
					label string
				}
				var found []statLine
				doubleDigits := 0

				for _, column := range doubleDoubleColumns {
					index := columnIndex(category.Columns, column)
					if index < 0 || index >= len(athlete.Stats) {
						continue
					}
					value, ok := common.ParseStatValue(athlete.Stats[index])
					if !ok {
						continue
					}
					found = append(found, statLine{value, column})
					if value >= 10 {
						doubleDigits++
					}
				}

				sort.SliceStable(found, func(i, j int) bool {
					return found[i].value > found[j].value
				})

				display := "0 PTS, 0 REB"
				if len(found) > 0 {
					var parts []string
					for i, line := range found {
						if i >= 2 {
							break
						}
						parts = append(parts, fmt.Sprintf("%s %s", common.FormatValue(line.value), line.label))
					}
					display = strings.Join(parts, ", ")
				}

				value := 0.0
				if doubleDigits >= 2 {
					value = 1.0
				}
				return &StatResult{
					Value:   value,
					Player:  athlete.Player,
					Team:    team.Name,
					Display: display,
				}
			}
		}
	}
	return nil
}

func columnIndex(columns []string, target string) int {
	for i, column := range columns {
		if column == target {
			return i
		}
	}
	return -1
}
