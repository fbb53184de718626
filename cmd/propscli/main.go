package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"gorm.io/gorm"

	"propsTracker/models"
	"propsTracker/services/betService"
	"propsTracker/services/common"
	"propsTracker/services/extService"
	"propsTracker/services/propService"
)

type session struct {
	dashboard *propService.Dashboard
	refresher *propService.Refresher
	scanner   *bufio.Scanner
	lastGames []models.Game
}

func main() {
	s := &session{
		dashboard: propService.NewDashboard("nfl"),
		refresher: betService.NewRefresher(nil),
		scanner:   bufio.NewScanner(os.Stdin),
	}

	fmt.Println("Props tracker. Type 'help' for commands.")
	for {
		fmt.Printf("[%s] > ", s.dashboard.Sport)
		if !s.scanner.Scan() {
			return
		}
		fields := strings.Fields(s.scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			printHelp()
		case "sport":
			if len(fields) < 2 {
				fmt.Println("usage: sport <nfl|nba|mlb|nhl|...>")
				continue
			}
			s.switchSport(fields[1])
		case "scores":
			s.showGames(extService.GetScores)
		case "live":
			s.showGames(extService.GetLiveGames)
		case "schedule":
			s.showGames(extService.GetSchedule)
		case "add":
			s.addProp()
		case "remove":
			s.removeProp(fields)
		case "list":
			s.renderProps()
		case "refresh":
			s.dashboard.Refresh(s.refresher)
			s.renderProps()
		case "watch":
			s.watch(fields)
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q, type 'help'\n", fields[0])
		}
	}
}

func printHelp() {
	fmt.Println(`commands:
  sport <name>      switch sport (nfl, nba, mlb, nhl, soccer, ...)
  scores            today's scoreboard
  live              in-progress games only
  schedule          upcoming games
  add               add a prop to the dashboard
  remove <#>        remove a prop by row number
  list              show the dashboard
  refresh           refresh every prop once
  watch [n]         refresh n times at 15s intervals (default 20)
  quit`)
}

func (s *session) switchSport(sport string) {
	if _, err := extService.SportPath(sport); err != nil {
		fmt.Println(err)
		return
	}
	s.dashboard = propService.NewDashboard(sport)
	s.lastGames = nil
	fmt.Printf("switched to %s, dashboard cleared\n", strings.ToLower(sport))
}

func (s *session) showGames(fetch func(db *gorm.DB, sport string, limit int) ([]models.Game, error)) {
	games, err := fetch(nil, s.dashboard.Sport, 20)
	if err != nil {
		fmt.Println(err)
		return
	}
	if len(games) == 0 {
		fmt.Println("no games found")
		return
	}
	s.lastGames = games

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Matchup", "Score", "Status"})
	for i, game := range games {
		score := "-"
		if game.State != models.GameStatePre {
			score = fmt.Sprintf("%s-%s", game.AwayScore, game.HomeScore)
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			extService.GetGameLabel(game),
			score,
			game.Status,
		})
	}
	table.Render()
}

func (s *session) addProp() {
	if len(s.lastGames) == 0 {
		fmt.Println("list games first with 'scores', 'live' or 'schedule'")
		return
	}

	index, ok := s.promptInt(fmt.Sprintf("game # (1-%d)", len(s.lastGames)))
	if !ok || index < 1 || index > len(s.lastGames) {
		fmt.Println("invalid game")
		return
	}
	game := s.lastGames[index-1]

	player := s.prompt("player name (blank for a team market)")
	market := s.prompt("market (rushing_yards, points, total_score, spread, ...)")
	if market == "" {
		fmt.Println("market required")
		return
	}

	var line float64
	if models.StripPeriodPrefix(market) != models.MarketMoneyline {
		value, ok := s.promptFloat("line")
		if !ok {
			fmt.Println("invalid line")
			return
		}
		line = value
	}

	side := s.prompt("side (over/under, or team name for moneyline/spread)")
	stake, _ := s.promptFloat("stake (optional)")
	odds, _ := s.promptFloat("odds (optional, american)")

	prop := s.dashboard.AddProp(game.EventID, extService.GetGameLabel(game), player, "", market, line, side, stake, odds)
	fmt.Printf("added %s\n", describeProp(prop))
}

func (s *session) removeProp(fields []string) {
	if len(fields) < 2 {
		fmt.Println("usage: remove <#>")
		return
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil || index < 1 || index > len(s.dashboard.Props) {
		fmt.Println("invalid row number")
		return
	}
	prop := s.dashboard.Props[index-1]
	s.dashboard.RemoveProp(prop.ID)
	fmt.Printf("removed %s\n", describeProp(prop))
}

func (s *session) watch(fields []string) {
	iterations := 20
	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[1]); err == nil && n > 0 {
			iterations = n
		}
	}
	if len(s.dashboard.Props) == 0 {
		fmt.Println("dashboard is empty")
		return
	}

	for i := 0; i < iterations; i++ {
		s.dashboard.Refresh(s.refresher)
		s.renderProps()

		if allSettled(s.dashboard.Props) {
			fmt.Println("all props settled")
			return
		}
		if i < iterations-1 {
			time.Sleep(15 * time.Second)
		}
	}
}

func (s *session) renderProps() {
	if len(s.dashboard.Props) == 0 {
		fmt.Println("dashboard is empty, use 'add'")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Subject", "Market", "Line", "Side", "Value", "Status", "Game"})
	for i, prop := range s.dashboard.Props {
		subject := prop.PlayerName
		if subject == "" {
			subject = prop.TeamName
		}
		if subject == "" {
			subject = "-"
		}

		value := "-"
		if prop.CurrentValueStr != nil {
			value = *prop.CurrentValueStr
		} else if prop.CurrentValue != nil {
			value = common.FormatValue(*prop.CurrentValue)
		}

		game := prop.GameLabel
		if prop.GameStatusText != "" {
			game = fmt.Sprintf("%s (%s)", prop.GameLabel, prop.GameStatusText)
		}

		table.Append([]string{
			strconv.Itoa(i + 1),
			subject,
			prop.MarketType,
			common.FormatValue(prop.Line),
			prop.Side,
			value,
			prop.PropStatus,
			game,
		})
	}
	table.Render()
}

func allSettled(props []*models.PlayerProp) bool {
	for _, prop := range props {
		switch prop.PropStatus {
		case models.PropStatusWon, models.PropStatusLost, models.PropStatusPush, models.PropStatusUnavailable:
		default:
			return false
		}
	}
	return true
}

func describeProp(prop *models.PlayerProp) string {
	subject := prop.PlayerName
	if subject == "" {
		subject = prop.MarketType
	}
	if models.StripPeriodPrefix(prop.MarketType) == models.MarketMoneyline {
		return fmt.Sprintf("%s %s", subject, prop.Side)
	}
	return fmt.Sprintf("%s %s %s %s", subject, prop.Side, common.FormatValue(prop.Line), prop.MarketType)
}

func (s *session) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !s.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(s.scanner.Text())
}

func (s *session) promptInt(label string) (int, bool) {
	value, err := strconv.Atoi(s.prompt(label))
	if err != nil {
		return 0, false
	}
	return value, true
}

func (s *session) promptFloat(label string) (float64, bool) {
	raw := s.prompt(label)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
