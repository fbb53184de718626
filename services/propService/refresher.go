package propService

import (
	"fmt"
	"strings"

	"propsTracker/models"
	"propsTracker/services/common"
	"propsTracker/services/statService"
)

// SnapshotProvider is the single suspension point of a refresh. The live
// implementation wraps the summary endpoint; tests substitute fixed
// snapshots.
type SnapshotProvider interface {
	GetGameSnapshot(sport string, gameID string) (*models.GameSnapshot, error)
}

type Refresher struct {
	provider SnapshotProvider
	registry *statService.Registry
}

func NewRefresher(provider SnapshotProvider, registry *statService.Registry) *Refresher {
	return &Refresher{provider: provider, registry: registry}
}

// RefreshProps updates every prop's derived fields in place. Props are
// partitioned by game so each game's snapshot is fetched exactly once no
// matter how many props ride on it. A fetch failure downgrades that game's
// props to unavailable and never aborts the rest of the batch.
func (r *Refresher) RefreshProps(props []*models.PlayerProp) {
	type partitionKey struct {
		sport  string
		gameID string
	}

	partitions := make(map[partitionKey][]*models.PlayerProp)
	var order []partitionKey
	for _, prop := range props {
		key := partitionKey{strings.ToLower(prop.Sport), prop.GameID}
		if _, seen := partitions[key]; !seen {
			order = append(order, key)
		}
		partitions[key] = append(partitions[key], prop)
	}

	for _, key := range order {
		group := partitions[key]

		snapshot, err := r.provider.GetGameSnapshot(key.sport, key.gameID)
		if err != nil || snapshot == nil {
			for _, prop := range group {
				prop.GameState = models.GameStateUnknown
				prop.PropStatus = models.PropStatusUnavailable
			}
			continue
		}

		for _, prop := range group {
			r.refreshOne(prop, snapshot)
		}
	}
}

func (r *Refresher) refreshOne(prop *models.PlayerProp, snapshot *models.GameSnapshot) {
	if prop.IsCombined && len(prop.CombinedPlayers) > 0 {
		r.refreshCombined(prop, snapshot)
		return
	}

	var value *float64

	if models.IsTeamMarket(prop.MarketType) {
		value = r.resolveTeamMarket(prop, snapshot)
	} else {
		result := r.registry.Resolve(snapshot, prop.PlayerName, models.StripPeriodPrefix(prop.MarketType))
		if result != nil {
			v := result.Value
			value = &v

			if result.Team != "" && (prop.TeamName == "" || prop.TeamName == "-") {
				prop.TeamName = result.Team
			}
			if result.Player != "" {
				prop.PlayerName = result.Player
			}
			if result.Display != "" {
				display := result.Display
				prop.CurrentValueStr = &display
			} else {
				prop.CurrentValueStr = nil
			}
		} else {
			prop.CurrentValueStr = nil
		}
	}

	prop.CurrentValue = value

	// Football boxscores omit players with no touches in a category, so a
	// missing stat mid-game reads as zero for display. The status still
	// comes from the unresolved value and stays pending.
	if value == nil && isFootball(prop.Sport) && snapshot.Phase == models.GameStateIn && !models.IsTeamMarket(prop.MarketType) {
		zero := 0.0
		prop.CurrentValue = &zero
	}

	prop.GameState = snapshot.Phase
	prop.GameStatusText = snapshot.StatusText
	prop.PropStatus = ComputePropStatus(prop, value, snapshot.Phase)
}

// resolveTeamMarket reads scores straight off the snapshot, honoring the
// market's period scope ("1h_"/"1q_" prefixes).
func (r *Refresher) resolveTeamMarket(prop *models.PlayerProp, snapshot *models.GameSnapshot) *float64 {
	scope := models.PeriodScope(prop.MarketType)
	homeScore := snapshot.PeriodScore(true, scope)
	awayScore := snapshot.PeriodScore(false, scope)
	scoreline := fmt.Sprintf("(%s-%s)", common.FormatValue(awayScore), common.FormatValue(homeScore))

	var value float64
	var display string

	switch models.StripPeriodPrefix(prop.MarketType) {
	case models.MarketTotalScore:
		value = homeScore + awayScore
		display = fmt.Sprintf("%s %s", common.FormatValue(value), scoreline)

	case models.MarketHomeTeamPoints:
		value = homeScore
		display = fmt.Sprintf("%s %s", common.FormatValue(value), scoreline)

	case models.MarketAwayTeamPoints:
		value = awayScore
		display = fmt.Sprintf("%s %s", common.FormatValue(value), scoreline)

	case models.MarketMoneyline, models.MarketSpread:
		// The side string names the picked team; decide home or away by the
		// same permissive substring rule used for players.
		if common.MatchesSubject(snapshot.AwayTeam, prop.Side) {
			value = awayScore - homeScore
		} else {
			value = homeScore - awayScore
		}
		display = fmt.Sprintf("%s %s", common.FormatSigned(value), scoreline)

	default:
		return nil
	}

	prop.CurrentValueStr = &display
	return &value
}

// refreshCombined resolves each listed player against the shared snapshot,
// sums their values, and settles the prop on the total. Players the
// resolver cannot find count as zero rather than blocking the whole prop.
func (r *Refresher) refreshCombined(prop *models.PlayerProp, snapshot *models.GameSnapshot) {
	marketType := models.StripPeriodPrefix(prop.MarketType)
	if marketType == "" {
		marketType = "anytime_touchdowns"
	}

	total := 0.0
	updated := make([]models.CombinedPlayer, 0, len(prop.CombinedPlayers))
	var parts []string

	for _, player := range prop.CombinedPlayers {
		if player.PlayerName == "" {
			continue
		}

		playerValue := 0.0
		playerName := player.PlayerName
		if result := r.registry.Resolve(snapshot, player.PlayerName, marketType); result != nil {
			playerValue = result.Value
			if result.Player != "" {
				playerName = result.Player
			}
		}

		total += playerValue
		v := playerValue
		updated = append(updated, models.CombinedPlayer{
			PlayerName:   playerName,
			TeamName:     player.TeamName,
			CurrentValue: &v,
			GameState:    snapshot.Phase,
		})

		nameParts := strings.Fields(playerName)
		shortName := playerName
		if len(nameParts) > 0 {
			shortName = nameParts[len(nameParts)-1]
		}
		parts = append(parts, fmt.Sprintf("%s: %s", shortName, common.FormatValue(playerValue)))
	}

	isHit := total < prop.Line
	if strings.ToLower(prop.Side) == "over" || prop.Side == "" {
		isHit = total > prop.Line
	}

	status := models.PropStatusPending
	switch {
	case isFinal(snapshot.Phase):
		status = models.PropStatusLost
		if isHit {
			status = models.PropStatusWon
		}
	case snapshot.Phase == models.GameStateIn:
		status = models.PropStatusLiveMiss
		if isHit {
			status = models.PropStatusLiveHit
		}
	}

	display := fmt.Sprintf("%s TDs (%s)", common.FormatValue(total), strings.Join(parts, ", "))

	prop.CombinedPlayers = updated
	prop.CurrentValue = &total
	prop.CurrentValueStr = &display
	prop.GameState = snapshot.Phase
	prop.GameStatusText = snapshot.StatusText
	prop.PropStatus = status
}

func isFootball(sport string) bool {
	switch strings.ToLower(sport) {
	case "nfl", "ncaaf":
		return true
	}
	return false
}
