package extService

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"propsTracker/models"
	"propsTracker/models/external"
	"propsTracker/services/common"
)

const espnBaseUrl = "https://site.api.espn.com/apis/site/v2/sports"

var sportPaths = map[string]string{
	"nfl":    "football/nfl",
	"nba":    "basketball/nba",
	"mlb":    "baseball/mlb",
	"nhl":    "hockey/nhl",
	"soccer": "soccer/eng.1",
	"epl":    "soccer/eng.1",
	"laliga": "soccer/esp.1",
	"ucl":    "soccer/uefa.champions",
	"europa": "soccer/uefa.europa",
	"ncaaf":  "football/college-football",
	"ncaab":  "basketball/mens-college-basketball",
}

func SportPath(sport string) (string, error) {
	path, ok := sportPaths[sport]
	if !ok {
		return "", fmt.Errorf("unknown sport: %s", sport)
	}
	return path, nil
}

// GetScores returns the most recent scoreboard entries for a sport.
func GetScores(db *gorm.DB, sport string, limit int) ([]models.Game, error) {
	events, err := fetchScoreboard(db, sport, "")
	if err != nil {
		return nil, err
	}

	var games []models.Game
	for _, event := range events {
		if game := parseGame(event); game != nil {
			games = append(games, *game)
		}
		if len(games) >= limit {
			break
		}
	}
	return games, nil
}

// GetLiveGames returns only in-progress games.
func GetLiveGames(db *gorm.DB, sport string, limit int) ([]models.Game, error) {
	events, err := fetchScoreboard(db, sport, "")
	if err != nil {
		return nil, err
	}

	var games []models.Game
	for _, event := range events {
		if event.Status.Type.State != "in" {
			continue
		}
		if game := parseGame(event); game != nil {
			games = append(games, *game)
		}
		if len(games) >= limit {
			break
		}
	}
	return games, nil
}

// GetSchedule returns upcoming games. When today's scoreboard has nothing
// scheduled it walks forward: daily for a week, then weekly out to 60 days,
// which covers tournaments with long gaps between rounds.
func GetSchedule(db *gorm.DB, sport string, limit int) ([]models.Game, error) {
	events, err := fetchScoreboard(db, sport, "")
	if err != nil {
		return nil, err
	}

	games := collectUpcoming(events, limit)
	if len(games) > 0 {
		return games, nil
	}

	daysAhead := []int{1, 2, 3, 4, 5, 6, 7, 14, 21, 28, 35, 42, 49, 56}
	for _, days := range daysAhead {
		date := time.Now().AddDate(0, 0, days).Format("20060102")
		futureEvents, err := fetchScoreboard(db, sport, date)
		if err != nil {
			continue
		}
		games = collectUpcoming(futureEvents, limit)
		if len(games) > 0 {
			return games, nil
		}
	}

	return []models.Game{}, nil
}

func collectUpcoming(events []external.ESPN_Event, limit int) []models.Game {
	var games []models.Game
	for _, event := range events {
		if event.Status.Type.State != "pre" {
			continue
		}
		if game := parseGame(event); game != nil {
			games = append(games, *game)
		}
		if len(games) >= limit {
			break
		}
	}
	return games
}

func fetchScoreboard(db *gorm.DB, sport string, date string) ([]external.ESPN_Event, error) {
	path, err := SportPath(sport)
	if err != nil {
		return nil, err
	}

	scoreboardUrl := fmt.Sprintf("%s/%s/scoreboard", espnBaseUrl, path)
	if date != "" {
		scoreboardUrl = fmt.Sprintf("%s?dates=%s", scoreboardUrl, date)
	}

	resp, err := common.ESPNWrapper(scoreboardUrl)
	if err != nil {
		common.LogError(db, "extService.fetchScoreboard", err)
		return nil, err
	}
	defer resp.Body.Close()

	var scoreboard external.ESPN_Scoreboard
	err = json.NewDecoder(resp.Body).Decode(&scoreboard)
	if err != nil {
		common.LogError(db, "extService.fetchScoreboard", err)
		return nil, err
	}

	return scoreboard.Events, nil
}

func parseGame(event external.ESPN_Event) *models.Game {
	if len(event.Competitions) == 0 {
		return nil
	}
	comp := event.Competitions[0]
	if len(comp.Competitors) < 2 {
		return nil
	}

	var home, away external.ESPN_Competitor
	for _, c := range comp.Competitors {
		if c.HomeAway == "home" {
			home = c
		} else {
			away = c
		}
	}

	state := event.Status.Type.State
	if state == "" {
		state = "pre"
	}

	homeScore, awayScore := home.Score, away.Score
	if state == "pre" {
		homeScore, awayScore = "TBD", "TBD"
	}

	game := models.Game{
		EventID:      event.ID,
		HomeTeam:     home.Team.DisplayName,
		AwayTeam:     away.Team.DisplayName,
		HomeScore:    homeScore,
		AwayScore:    awayScore,
		Status:       event.Status.Type.ShortDetail,
		State:        state,
		Completed:    event.Status.Type.Completed,
		Date:         event.Date,
		Period:       event.Status.Period,
		DisplayClock: event.Status.DisplayClock,
	}

	if len(comp.Odds) > 0 {
		odds := comp.Odds[0]
		game.Odds = &models.GameOdds{
			Details:   odds.Details,
			OverUnder: odds.OverUnder,
			Spread:    odds.Spread,
		}
		if odds.HomeTeamOdds.MoneyLine != 0 {
			game.Odds.HomeMoneyline = common.FormatOdds(odds.HomeTeamOdds.MoneyLine)
		}
		if odds.AwayTeamOdds.MoneyLine != 0 {
			game.Odds.AwayMoneyline = common.FormatOdds(odds.AwayTeamOdds.MoneyLine)
		}
	}

	return &game
}

// GetGameLabel formats a matchup string like "Packers @ Bears" for an event.
func GetGameLabel(game models.Game) string {
	return fmt.Sprintf("%s @ %s", game.AwayTeam, game.HomeTeam)
}
