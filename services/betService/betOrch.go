package betService

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"propsTracker/models"
)

var ErrBetNotFound = errors.New("bet not found")

// GetBets returns all of a user's bets, newest first, with parlay legs in
// their original order.
func GetBets(db *gorm.DB, userID string) ([]models.Bet, error) {
	var bets []models.Bet
	result := db.
		Preload("Legs", func(db *gorm.DB) *gorm.DB {
			return db.Order("leg_order ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bets)
	if result.Error != nil {
		return nil, result.Error
	}
	return bets, nil
}

func GetBet(db *gorm.DB, userID string, betID string) (*models.Bet, error) {
	var bet models.Bet
	result := db.
		Preload("Legs", func(db *gorm.DB) *gorm.DB {
			return db.Order("leg_order ASC")
		}).
		First(&bet, "id = ? AND user_id = ?", betID, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBetNotFound
		}
		return nil, result.Error
	}
	return &bet, nil
}

func CreateBet(db *gorm.DB, userID string, bet *models.Bet) error {
	if bet.ID == "" {
		bet.ID = uuid.NewString()
	}
	bet.UserID = userID
	if bet.Status == "" {
		bet.Status = "Pending"
	}
	if bet.Date == "" {
		bet.Date = time.Now().Format("2006-01-02")
	}
	for i := range bet.Legs {
		bet.Legs[i].BetID = bet.ID
		bet.Legs[i].LegOrder = i
	}
	return db.Create(bet).Error
}

// UpdateBet applies partial updates to a bet the user owns. The column set
// is restricted so a client cannot move a bet to another user or rewrite
// its identifiers.
func UpdateBet(db *gorm.DB, userID string, betID string, updates map[string]interface{}) (*models.Bet, error) {
	bet, err := GetBet(db, userID, betID)
	if err != nil {
		return nil, err
	}

	allowed := map[string]bool{
		"status": true, "stake": true, "odds": true, "book": true,
		"potential_payout": true, "selection": true, "date": true,
		"current_value": true, "current_value_str": true,
		"game_state": true, "game_status_text": true, "prop_status": true,
	}
	filtered := make(map[string]interface{}, len(updates))
	for column, value := range updates {
		if allowed[column] {
			filtered[column] = value
		}
	}
	if len(filtered) == 0 {
		return bet, nil
	}

	result := db.Model(&models.Bet{}).
		Where("id = ? AND user_id = ?", betID, userID).
		Updates(filtered)
	if result.Error != nil {
		return nil, result.Error
	}
	return GetBet(db, userID, betID)
}

func DeleteBet(db *gorm.DB, userID string, betID string) error {
	var bet models.Bet
	result := db.First(&bet, "id = ? AND user_id = ?", betID, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrBetNotFound
		}
		return result.Error
	}

	if err := db.Where("bet_id = ?", betID).Delete(&models.BetLeg{}).Error; err != nil {
		return err
	}
	return db.Delete(&bet).Error
}

// GetUserStats recomputes a user's record from their bets. Pending only
// counts bets dated today or later; stale pendings from past days are
// treated as abandoned. Profit counts the stored payout for wins and the
// lost stake for losses; pushes are flat.
func GetUserStats(db *gorm.DB, userID string) (models.UserStats, error) {
	var bets []models.Bet
	if err := db.Where("user_id = ?", userID).Find(&bets).Error; err != nil {
		return models.UserStats{}, err
	}

	today := time.Now().Format("2006-01-02")
	stats := models.UserStats{TotalBets: len(bets)}
	totalStaked := 0.0

	for _, bet := range bets {
		switch bet.Status {
		case "Won":
			stats.Wins++
			stats.Profit += bet.PotentialPayout
			totalStaked += bet.Stake
		case "Lost":
			stats.Losses++
			stats.Profit -= bet.Stake
			totalStaked += bet.Stake
		case "Pushed":
			stats.Pushes++
		case "Pending":
			if bet.Date >= today {
				stats.Pending++
			}
		}
	}

	completed := stats.Wins + stats.Losses
	if completed > 0 {
		stats.WinRate = float64(stats.Wins) / float64(completed) * 100
	}
	if totalStaked > 0 {
		stats.ROI = stats.Profit / totalStaked * 100
	}
	return stats, nil
}
