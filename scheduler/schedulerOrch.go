package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"propsTracker/config"
	"propsTracker/models"
	"propsTracker/scheduler/scheduler_jobs"
	"propsTracker/services/propService"
)

// SetupCron starts the periodic refresh of pending trackable bets. The
// notify callback receives each batch of refreshed bets; pass nil when
// nothing listens.
func SetupCron(db *gorm.DB, cfg *config.Config, refresher *propService.Refresher, notify func(bets []models.Bet)) *cron.Cron {
	cronService := cron.New(cron.WithSeconds())

	if cfg.RefreshEnabled {
		_, err := cronService.AddFunc(cfg.RefreshSpec, func() {
			err := scheduler_jobs.RefreshPendingBets(db, refresher, notify)
			if err != nil {
				fmt.Println(err)
			}
		})
		if err != nil {
			errLog := models.ErrorLog{
				Source:  "CRON ERR",
				Message: fmt.Sprintf("%v", err),
			}
			db.Create(&errLog)
		}
	}

	cronService.Start()
	return cronService
}
