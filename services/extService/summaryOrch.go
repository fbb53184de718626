package extService

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"propsTracker/models"
	"propsTracker/models/external"
	"propsTracker/services/common"
)

// GetGameSnapshot fetches one event summary and normalizes it into the shape
// the stat resolvers work against. One snapshot serves every prop on the game.
func GetGameSnapshot(db *gorm.DB, sport string, eventID string) (*models.GameSnapshot, error) {
	path, err := SportPath(sport)
	if err != nil {
		return nil, err
	}

	summaryUrl := fmt.Sprintf("%s/%s/summary?event=%s", espnBaseUrl, path, eventID)
	resp, err := common.ESPNWrapper(summaryUrl)
	if err != nil {
		common.LogError(db, "extService.GetGameSnapshot", err)
		return nil, err
	}
	defer resp.Body.Close()

	var summary external.ESPN_Summary
	err = json.NewDecoder(resp.Body).Decode(&summary)
	if err != nil {
		common.LogError(db, "extService.GetGameSnapshot", err)
		return nil, err
	}

	return buildSnapshot(sport, eventID, &summary), nil
}

// buildSnapshot is the pure normalization step, separated so tests can feed
// fabricated summaries through it.
func buildSnapshot(sport string, eventID string, summary *external.ESPN_Summary) *models.GameSnapshot {
	snapshot := &models.GameSnapshot{
		GameID: eventID,
		Sport:  sport,
		Phase:  models.GameStateUnknown,
	}

	status := summary.Header.Status
	if status.Type.State == "" && len(summary.Header.Competitions) > 0 {
		status = summary.Header.Competitions[0].Status
	}

	if state := strings.ToLower(status.Type.State); state != "" {
		snapshot.Phase = state
	}

	snapshot.StatusText = status.Type.ShortDetail
	if snapshot.StatusText == "" && snapshot.Phase == models.GameStateIn {
		if status.DisplayClock != "" && status.Period > 0 {
			snapshot.StatusText = fmt.Sprintf("Q%d %s", status.Period, status.DisplayClock)
		}
	}
	if snapshot.StatusText == "" {
		snapshot.StatusText = snapshot.Phase
	}

	if len(summary.Header.Competitions) > 0 {
		for _, competitor := range summary.Header.Competitions[0].Competitors {
			score, _ := common.ParseStatValue(competitor.Score)
			periods := make([]float64, 0, len(competitor.Linescores))
			for _, ls := range competitor.Linescores {
				periods = append(periods, ls.Value)
			}

			if competitor.HomeAway == "home" {
				snapshot.HomeTeam = competitor.Team.DisplayName
				snapshot.HomeScore = score
				snapshot.HomePeriods = periods
			} else {
				snapshot.AwayTeam = competitor.Team.DisplayName
				snapshot.AwayScore = score
				snapshot.AwayPeriods = periods
			}
		}
	}

	for _, teamBlock := range summary.Boxscore.Players {
		team := models.SnapshotTeam{Name: teamBlock.Team.DisplayName}
		if team.Name == "" {
			team.Name = teamBlock.Team.Name
		}

		for _, category := range teamBlock.Statistics {
			statCat := models.StatCategory{
				Name:    category.Name,
				Keys:    category.Keys,
				Labels:  category.Labels,
				Columns: category.Names,
			}
			for _, athlete := range category.Athletes {
				statCat.Athletes = append(statCat.Athletes, models.AthleteLine{
					Player: athlete.Athlete.DisplayName,
					Stats:  athlete.Stats,
				})
			}
			team.Categories = append(team.Categories, statCat)
		}

		snapshot.Teams = append(snapshot.Teams, team)
	}

	for _, play := range summary.ScoringPlays {
		snapshot.ScoringPlays = append(snapshot.ScoringPlays, models.ScoringPlay{
			TypeText:        play.Type.Text,
			ScoringTypeName: play.ScoringType.DisplayName,
			Text:            play.Text,
		})
	}

	return snapshot
}

// FindPlayer locates a player inside a game by name fragment, checking the
// boxscore first and falling back to team rosters when the game has not
// started or the player has no stat line yet.
func FindPlayer(db *gorm.DB, sport string, eventID string, playerName string) (*models.PlayerMatch, error) {
	path, err := SportPath(sport)
	if err != nil {
		return nil, err
	}

	summaryUrl := fmt.Sprintf("%s/%s/summary?event=%s", espnBaseUrl, path, eventID)
	resp, err := common.ESPNWrapper(summaryUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var summary external.ESPN_Summary
	err = json.NewDecoder(resp.Body).Decode(&summary)
	if err != nil {
		return nil, err
	}

	for _, teamBlock := range summary.Boxscore.Players {
		teamName := teamBlock.Team.DisplayName
		if teamName == "" {
			teamName = teamBlock.Team.Name
		}
		for _, category := range teamBlock.Statistics {
			for _, athlete := range category.Athletes {
				if common.MatchesSubject(athlete.Athlete.DisplayName, playerName) {
					return &models.PlayerMatch{
						DisplayName: athlete.Athlete.DisplayName,
						TeamName:    teamName,
					}, nil
				}
			}
		}
	}

	// Roster fallback covers pre-game and DNP cases.
	if len(summary.Header.Competitions) > 0 {
		for _, competitor := range summary.Header.Competitions[0].Competitors {
			teamName := competitor.Team.DisplayName
			if teamName == "" {
				teamName = competitor.Team.Name
			}
			roster, err := GetTeamRoster(db, sport, competitor.Team.ID)
			if err != nil {
				continue
			}
			for _, athlete := range roster {
				if common.MatchesSubject(athlete, playerName) {
					return &models.PlayerMatch{
						DisplayName: athlete,
						TeamName:    teamName,
					}, nil
				}
			}
		}
	}

	return nil, nil
}

// SearchPlayers returns players in a game whose names match the query,
// prefix matches ranked ahead of substring matches.
func SearchPlayers(db *gorm.DB, sport string, eventID string, query string, limit int) ([]models.PlayerMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.PlayerMatch{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	path, err := SportPath(sport)
	if err != nil {
		return nil, err
	}

	summaryUrl := fmt.Sprintf("%s/%s/summary?event=%s", espnBaseUrl, path, eventID)
	resp, err := common.ESPNWrapper(summaryUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var summary external.ESPN_Summary
	err = json.NewDecoder(resp.Body).Decode(&summary)
	if err != nil {
		return nil, err
	}

	type rankedMatch struct {
		match     models.PlayerMatch
		relevance int
	}

	queryLower := strings.ToLower(query)
	seen := make(map[string]bool)
	var matches []rankedMatch

	addMatch := func(displayName string, teamName string) {
		if displayName == "" || len(matches) >= limit {
			return
		}
		key := displayName + "|" + teamName
		if seen[key] {
			return
		}

		nameLower := strings.ToLower(displayName)
		if strings.HasPrefix(nameLower, queryLower) {
			matches = append(matches, rankedMatch{models.PlayerMatch{DisplayName: displayName, TeamName: teamName}, 1})
			seen[key] = true
		} else if strings.Contains(nameLower, queryLower) {
			matches = append(matches, rankedMatch{models.PlayerMatch{DisplayName: displayName, TeamName: teamName}, 2})
			seen[key] = true
		}
	}

	for _, teamBlock := range summary.Boxscore.Players {
		teamName := teamBlock.Team.DisplayName
		if teamName == "" {
			teamName = teamBlock.Team.Name
		}
		for _, category := range teamBlock.Statistics {
			for _, athlete := range category.Athletes {
				addMatch(athlete.Athlete.DisplayName, teamName)
			}
		}
	}

	if len(matches) < limit && len(summary.Header.Competitions) > 0 {
		for _, competitor := range summary.Header.Competitions[0].Competitors {
			teamName := competitor.Team.DisplayName
			if teamName == "" {
				teamName = competitor.Team.Name
			}
			roster, err := GetTeamRoster(db, sport, competitor.Team.ID)
			if err != nil {
				continue
			}
			for _, athlete := range roster {
				addMatch(athlete, teamName)
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].relevance != matches[j].relevance {
			return matches[i].relevance < matches[j].relevance
		}
		return matches[i].match.DisplayName < matches[j].match.DisplayName
	})

	results := make([]models.PlayerMatch, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.match)
	}
	return results, nil
}

// GetTeamRoster returns athlete display names for a team, flattening the
// position-grouped shape football rosters use.
func GetTeamRoster(db *gorm.DB, sport string, teamID string) ([]string, error) {
	path, err := SportPath(sport)
	if err != nil {
		return nil, err
	}

	rosterUrl := fmt.Sprintf("%s/%s/teams/%s/roster", espnBaseUrl, path, teamID)
	resp, err := common.ESPNWrapper(rosterUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var roster external.ESPN_Roster
	err = json.NewDecoder(resp.Body).Decode(&roster)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range roster.Athletes {
		if len(entry.Items) > 0 {
			for _, athlete := range entry.Items {
				if athlete.DisplayName != "" {
					names = append(names, athlete.DisplayName)
				} else if athlete.FullName != "" {
					names = append(names, athlete.FullName)
				}
			}
			continue
		}
		if entry.DisplayName != "" {
			names = append(names, entry.DisplayName)
		} else if entry.FullName != "" {
			names = append(names, entry.FullName)
		}
	}
	return names, nil
}
