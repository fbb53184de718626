package scheduler_jobs

import (
	"fmt"
	"log"
	"runtime/debug"

	"gorm.io/gorm"

	"propsTracker/models"
	"propsTracker/services/betService"
	"propsTracker/services/common"
	"propsTracker/services/propService"
)

// RefreshPendingBets refreshes live tracking data for every user's pending
// bets. Bets are refreshed per user so one user's bad data cannot stall the
// rest, and each batch is handed to notify as it lands.
func RefreshPendingBets(db *gorm.DB, refresher *propService.Refresher, notify func(bets []models.Bet)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("Recovered in RefreshPendingBets", r)
			debug.PrintStack()
			err = fmt.Errorf("panic recovered in RefreshPendingBets: %v", r)
		}
	}()

	var userIDs []string
	result := db.Model(&models.Bet{}).
		Where("status = ?", "Pending").
		Distinct().
		Pluck("user_id", &userIDs)
	if result.Error != nil {
		return result.Error
	}

	for _, userID := range userIDs {
		var betIDs []string
		db.Model(&models.Bet{}).
			Where("user_id = ? AND status = ? AND type IN ? AND event_id IS NOT NULL", userID, "Pending", models.TrackableBetTypes).
			Pluck("id", &betIDs)
		if len(betIDs) > 0 {
			refreshed, err := betService.RefreshBets(db, refresher, userID, betIDs)
			if err != nil {
				common.LogError(db, "scheduler.RefreshPendingBets", err)
			} else if notify != nil && len(refreshed) > 0 {
				notify(refreshed)
			}
		}

		var parlayIDs []string
		db.Model(&models.Bet{}).
			Where("user_id = ? AND status = ? AND type = ?", userID, "Pending", "Parlay").
			Pluck("id", &parlayIDs)
		if len(parlayIDs) > 0 {
			refreshed, err := betService.RefreshParlayLegs(db, refresher, userID, parlayIDs)
			if err != nil {
				common.LogError(db, "scheduler.RefreshPendingBets", err)
			} else if notify != nil && len(refreshed) > 0 {
				notify(refreshed)
			}
		}
	}

	return nil
}
