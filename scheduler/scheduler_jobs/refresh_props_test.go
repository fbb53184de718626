package scheduler_jobs

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"propsTracker/models"
	"propsTracker/services/betService"
	"propsTracker/services/propService"
	"propsTracker/services/statService"
)

type fixedProvider struct {
	snapshot *models.GameSnapshot
}

func (f *fixedProvider) GetGameSnapshot(sport string, gameID string) (*models.GameSnapshot, error) {
	if f.snapshot == nil || f.snapshot.GameID != gameID {
		return nil, errors.New("no such game")
	}
	return f.snapshot, nil
}

func jobTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Bet{}, &models.BetLeg{}, &models.ErrorLog{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func TestRefreshPendingBets(t *testing.T) {
	db := jobTestDB(t)

	eventID := "401"
	player := "McCaffrey"
	market := "rushing_yards"
	line := 71.5
	side := "over"

	pending := &models.Bet{
		Sport:      "nfl",
		Type:       "Prop",
		EventID:    &eventID,
		PlayerName: &player,
		MarketType: &market,
		Line:       &line,
		Side:       &side,
	}
	settled := &models.Bet{Sport: "nfl", Type: "Prop", Status: "Won", EventID: &eventID}
	if err := betService.CreateBet(db, "user-1", pending); err != nil {
		t.Fatalf("CreateBet: %v", err)
	}
	if err := betService.CreateBet(db, "user-1", settled); err != nil {
		t.Fatalf("CreateBet: %v", err)
	}

	provider := &fixedProvider{snapshot: &models.GameSnapshot{
		GameID:     "401",
		Sport:      "nfl",
		Phase:      models.GameStateIn,
		StatusText: "5:09 - 2nd",
		HomeTeam:   "Seattle Seahawks",
		AwayTeam:   "San Francisco 49ers",
		Teams: []models.SnapshotTeam{
			{
				Name: "San Francisco 49ers",
				Categories: []models.StatCategory{
					{
						Name:   "rushing",
						Keys:   []string{"rushingAttempts", "rushingYards"},
						Labels: []string{"CAR", "YDS"},
						Athletes: []models.AthleteLine{
							{Player: "Christian McCaffrey", Stats: []string{"18", "85"}},
						},
					},
				},
			},
		},
	}}
	refresher := propService.NewRefresher(provider, statService.New())

	var notified []models.Bet
	err := RefreshPendingBets(db, refresher, func(bets []models.Bet) {
		notified = append(notified, bets...)
	})
	if err != nil {
		t.Fatalf("RefreshPendingBets: %v", err)
	}

	loaded, err := betService.GetBet(db, "user-1", pending.ID)
	if err != nil {
		t.Fatalf("GetBet: %v", err)
	}
	if loaded.CurrentValue == nil || *loaded.CurrentValue != 85 {
		t.Errorf("expected current value 85, got %v", loaded.CurrentValue)
	}
	if loaded.PropStatus != models.PropStatusLiveHit {
		t.Errorf("expected live_hit, got %s", loaded.PropStatus)
	}

	// Settled bets stay out of the refresh.
	if len(notified) != 1 {
		t.Fatalf("expected 1 notified bet, got %d", len(notified))
	}
	if notified[0].ID != pending.ID {
		t.Errorf("notified the wrong bet: %s", notified[0].ID)
	}
}
