package betService

import (
	"gorm.io/gorm"

	"propsTracker/models"
	"propsTracker/services/common"
	"propsTracker/services/extService"
	"propsTracker/services/propService"
	"propsTracker/services/statService"
)

// liveProvider adapts the summary endpoint to the refresher's provider
// interface.
type liveProvider struct {
	db *gorm.DB
}

func (p *liveProvider) GetGameSnapshot(sport string, gameID string) (*models.GameSnapshot, error) {
	return extService.GetGameSnapshot(p.db, sport, gameID)
}

func NewRefresher(db *gorm.DB) *propService.Refresher {
	return propService.NewRefresher(&liveProvider{db: db}, statService.New())
}

// RefreshBets refreshes live tracking data for the given bet IDs and
// persists the derived fields. Bets without an event id or with a type
// that does not support tracking are skipped.
func RefreshBets(db *gorm.DB, refresher *propService.Refresher, userID string, betIDs []string) ([]models.Bet, error) {
	var bets []models.Bet
	result := db.
		Where("user_id = ? AND id IN ? AND type IN ?", userID, betIDs, models.TrackableBetTypes).
		Find(&bets)
	if result.Error != nil {
		return nil, result.Error
	}

	var props []*models.PlayerProp
	propToBet := make(map[*models.PlayerProp]*models.Bet)

	for i := range bets {
		bet := &bets[i]
		if bet.EventID == nil || *bet.EventID == "" {
			continue
		}
		prop := betToProp(bet)
		props = append(props, prop)
		propToBet[prop] = bet
	}

	if len(props) == 0 {
		return []models.Bet{}, nil
	}

	refresher.RefreshProps(props)

	var updated []models.Bet
	for _, prop := range props {
		bet := propToBet[prop]
		bet.CurrentValue = prop.CurrentValue
		bet.CurrentValueStr = prop.CurrentValueStr
		bet.GameState = prop.GameState
		bet.GameStatusText = prop.GameStatusText
		bet.PropStatus = prop.PropStatus
		if bet.IsCombined {
			bet.CombinedPlayers = prop.CombinedPlayers
		}

		if err := persistBetTracking(db, bet); err != nil {
			common.LogError(db, "betService.RefreshBets", err)
			continue
		}
		updated = append(updated, *bet)
	}
	return updated, nil
}

// RefreshParlayLegs refreshes every leg of the given parlays. Legs across
// all requested parlays go through one batch so parlays sharing a game
// still share its snapshot fetch, and each parlay's leg order is kept.
func RefreshParlayLegs(db *gorm.DB, refresher *propService.Refresher, userID string, betIDs []string) ([]models.Bet, error) {
	var parlays []models.Bet
	result := db.
		Preload("Legs", func(db *gorm.DB) *gorm.DB {
			return db.Order("leg_order ASC")
		}).
		Where("user_id = ? AND id IN ? AND type = ?", userID, betIDs, "Parlay").
		Find(&parlays)
	if result.Error != nil {
		return nil, result.Error
	}

	var props []*models.PlayerProp
	propToLeg := make(map[*models.PlayerProp]*models.BetLeg)

	for i := range parlays {
		for j := range parlays[i].Legs {
			leg := &parlays[i].Legs[j]
			if leg.EventID == nil || *leg.EventID == "" {
				continue
			}
			prop := legToProp(leg)
			props = append(props, prop)
			propToLeg[prop] = leg
		}
	}

	if len(props) > 0 {
		refresher.RefreshProps(props)
	}

	for _, prop := range props {
		leg := propToLeg[prop]
		leg.CurrentValue = prop.CurrentValue
		leg.CurrentValueStr = prop.CurrentValueStr
		leg.GameState = prop.GameState
		leg.GameStatusText = prop.GameStatusText
		leg.PropStatus = prop.PropStatus
		if leg.IsCombined {
			leg.CombinedPlayers = prop.CombinedPlayers
		}

		if err := persistLegTracking(db, leg); err != nil {
			common.LogError(db, "betService.RefreshParlayLegs", err)
		}
	}
	return parlays, nil
}

func betToProp(bet *models.Bet) *models.PlayerProp {
	sport := bet.Sport
	if sport == "" {
		sport = "nfl"
	}
	return &models.PlayerProp{
		ID:              bet.ID,
		Sport:           sport,
		GameID:          derefString(bet.EventID),
		GameLabel:       bet.Matchup,
		PlayerName:      derefString(bet.PlayerName),
		TeamName:        derefString(bet.TeamName),
		MarketType:      derefString(bet.MarketType),
		Line:            derefFloat(bet.Line),
		Side:            derefStringOr(bet.Side, "over"),
		Stake:           bet.Stake,
		Odds:            bet.Odds,
		IsCombined:      bet.IsCombined,
		CombinedPlayers: bet.CombinedPlayers,
	}
}

func legToProp(leg *models.BetLeg) *models.PlayerProp {
	sport := leg.Sport
	if sport == "" {
		sport = "nba"
	}
	return &models.PlayerProp{
		Sport:           sport,
		GameID:          derefString(leg.EventID),
		GameLabel:       leg.Matchup,
		PlayerName:      derefString(leg.PlayerName),
		TeamName:        derefString(leg.TeamName),
		MarketType:      derefString(leg.MarketType),
		Line:            derefFloat(leg.Line),
		Side:            derefStringOr(leg.Side, "over"),
		IsCombined:      leg.IsCombined,
		CombinedPlayers: leg.CombinedPlayers,
	}
}

func persistBetTracking(db *gorm.DB, bet *models.Bet) error {
	updates := map[string]interface{}{
		"current_value":     bet.CurrentValue,
		"current_value_str": bet.CurrentValueStr,
		"game_state":        bet.GameState,
		"game_status_text":  bet.GameStatusText,
		"prop_status":       bet.PropStatus,
	}
	if bet.IsCombined {
		updates["combined_players"] = bet.CombinedPlayers
	}
	return db.Model(&models.Bet{}).Where("id = ?", bet.ID).Updates(updates).Error
}

func persistLegTracking(db *gorm.DB, leg *models.BetLeg) error {
	updates := map[string]interface{}{
		"current_value":     leg.CurrentValue,
		"current_value_str": leg.CurrentValueStr,
		"game_state":        leg.GameState,
		"game_status_text":  leg.GameStatusText,
		"prop_status":       leg.PropStatus,
	}
	if leg.IsCombined {
		updates["combined_players"] = leg.CombinedPlayers
	}
	return db.Model(&models.BetLeg{}).Where("id = ?", leg.ID).Updates(updates).Error
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefStringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
