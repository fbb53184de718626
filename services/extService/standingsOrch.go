package extService

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"propsTracker/models"
	"propsTracker/models/external"
	"propsTracker/services/common"
)

const espnStandingsBaseUrl = "https://site.api.espn.com/apis/v2/sports"

var soccerLeaguePaths = map[string]string{
	"soccer": "eng.1",
	"epl":    "eng.1",
	"laliga": "esp.1",
	"ucl":    "uefa.champions",
	"europa": "uefa.europa",
}

// GetNBAStandings returns both conference tables, best record first.
func GetNBAStandings(db *gorm.DB, season int) (map[string][]models.StandingsRow, error) {
	standingsUrl := fmt.Sprintf("%s/basketball/nba/standings?season=%d", espnStandingsBaseUrl, season)

	payload, err := fetchStandings(db, standingsUrl)
	if err != nil {
		return nil, err
	}

	standings := map[string][]models.StandingsRow{}
	for _, group := range payload.Children {
		if !group.IsConference {
			continue
		}
		standings[group.Name] = recordRows(group, true)
	}
	return standings, nil
}

// GetMLBStandings returns both league tables, best record first.
func GetMLBStandings(db *gorm.DB, season int) (map[string][]models.StandingsRow, error) {
	standingsUrl := fmt.Sprintf("%s/baseball/mlb/standings?season=%d", espnStandingsBaseUrl, season)

	payload, err := fetchStandings(db, standingsUrl)
	if err != nil {
		return nil, err
	}

	standings := map[string][]models.StandingsRow{}
	for _, group := range payload.Children {
		standings[group.Name] = recordRows(group, true)
	}
	return standings, nil
}

// GetSoccerStandings returns the league table for a soccer league code.
func GetSoccerStandings(db *gorm.DB, league string, season int) ([]models.StandingsRow, error) {
	leaguePath, ok := soccerLeaguePaths[league]
	if !ok {
		leaguePath = "eng.1"
	}
	standingsUrl := fmt.Sprintf("%s/soccer/%s/standings?season=%d", espnStandingsBaseUrl, leaguePath, season)

	payload, err := fetchStandings(db, standingsUrl)
	if err != nil {
		return nil, err
	}

	var rows []models.StandingsRow
	if len(payload.Children) == 0 {
		return rows, nil
	}

	for _, entry := range payload.Children[0].Standings.Entries {
		row := models.StandingsRow{
			Team:     entry.Team.DisplayName,
			Wins:     statValue(entry.Stats, "wins", "0"),
			Losses:   statValue(entry.Stats, "losses", "0"),
			Played:   statValue(entry.Stats, "gamesPlayed", "0"),
			Draws:    statValue(entry.Stats, "ties", "0"),
			Points:   statValue(entry.Stats, "points", "0"),
			GoalDiff: statValue(entry.Stats, "pointDifferential", "0"),
			Note:     entry.Note.Description,
		}
		rank := statValue(entry.Stats, "rank", "")
		if rank != "" {
			fmt.Sscanf(rank, "%d", &row.Rank)
		} else {
			row.Rank = len(rows) + 1
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func fetchStandings(db *gorm.DB, standingsUrl string) (*external.ESPN_Standings, error) {
	resp, err := common.ESPNWrapper(standingsUrl)
	if err != nil {
		common.LogError(db, "extService.fetchStandings", err)
		return nil, err
	}
	defer resp.Body.Close()

	var payload external.ESPN_Standings
	err = json.NewDecoder(resp.Body).Decode(&payload)
	if err != nil {
		common.LogError(db, "extService.fetchStandings", err)
		return nil, err
	}
	return &payload, nil
}

// recordRows converts one standings group into rows. ESPN serves worst
// record first, so reverse puts the leaders on top.
func recordRows(group external.ESPN_StandingsGroup, reverse bool) []models.StandingsRow {
	entries := group.Standings.Entries
	rows := make([]models.StandingsRow, 0, len(entries))

	for i := range entries {
		entry := entries[i]
		if reverse {
			entry = entries[len(entries)-1-i]
		}
		rows = append(rows, models.StandingsRow{
			Rank:      len(rows) + 1,
			Team:      entry.Team.DisplayName,
			Wins:      statValue(entry.Stats, "wins", "0"),
			Losses:    statValue(entry.Stats, "losses", "0"),
			WinPct:    statValue(entry.Stats, "winPercent", ".000"),
			GamesBack: statValue(entry.Stats, "gamesBehind", "-"),
			Streak:    statValue(entry.Stats, "streak", "-"),
		})
	}
	return rows
}

func statValue(stats []external.ESPN_StandingsStat, name string, fallback string) string {
	for _, stat := range stats {
		if stat.Name == name {
			return stat.DisplayValue
		}
	}
	return fallback
}
