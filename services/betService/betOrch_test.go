package betService

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"propsTracker/models"
)

func testDB(t *testing.T) *gorm.DB {
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

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }

func TestCreateBetDefaults(t *testing.T) {
	db := testDB(t)

	bet := &models.Bet{
		Sport:     "nfl",
		Type:      "Prop",
		Matchup:   "49ers @ Seahawks",
		Selection: "McCaffrey Over 71.5 Rush Yds",
		Odds:      -110,
		Stake:     50,
	}
	if err := CreateBet(db, "user-1", bet); err != nil {
		t.Fatalf("CreateBet: %v", err)
	}

	if bet.ID == "" {
		t.Error("expected a generated id")
	}
	if bet.UserID != "user-1" {
		t.Errorf("expected user-1, got %s", bet.UserID)
	}
	if bet.Status != "Pending" {
		t.Errorf("expected Pending status, got %s", bet.Status)
	}
	if bet.Date != time.Now().Format("2006-01-02") {
		t.Errorf("expected today's date, got %s", bet.Date)
	}
}

func TestCreateParlayAssignsLegOrder(t *testing.T) {
	db := testDB(t)

	bet := &models.Bet{
		Type: "Parlay",
		Legs: []models.BetLeg{
			{Sport: "nba", Selection: "Jokic Over 24.5 Pts"},
			{Sport: "nba", Selection: "Murray Over 5.5 Ast"},
			{Sport: "nfl", Selection: "Chiefs -3.5"},
		},
	}
	if err := CreateBet(db, "user-1", bet); err != nil {
		t.Fatalf("CreateBet: %v", err)
	}

	loaded, err := GetBet(db, "user-1", bet.ID)
	if err != nil {
		t.Fatalf("GetBet: %v", err)
	}
	if len(loaded.Legs) != 3 {
		t.Fatalf("expected 3 legs, got %d", len(loaded.Legs))
	}
	for i, leg := range loaded.Legs {
		if leg.LegOrder != i {
			t.Errorf("leg %d has order %d", i, leg.LegOrder)
		}
		if leg.BetID != bet.ID {
			t.Errorf("leg %d not attached to parlay", i)
		}
	}
}

func TestGetBetsNewestFirst(t *testing.T) {
	db := testDB(t)

	older := &models.Bet{Type: "Prop", Selection: "first"}
	older.CreatedAt = time.Now().Add(-time.Hour)
	if err := CreateBet(db, "user-1", older); err != nil {
		t.Fatalf("CreateBet: %v", err)
	}
	newer := &models.Bet{Type: "Prop", Selection: "second"}
	if err := CreateBet(db, "user-1", newer); err != nil {
		t.Fatalf("CreateBet: %v", err)
	}
	if err := CreateBet(db, "someone-else", &models.Bet{Type: "Prop"}); err != nil {
		t.Fatalf("CreateBet: %v", err)
	}

	bets, err := GetBets(db, "user-1")
	if err != nil {
		t.Fatalf("GetBets: %v", err)
	}
	if len(bets) != 2 {
		t.Fatalf("expected 2 bets, got %d", len(bets))
	}
	if bets[0].Selection != "second" || bets[1].Selection != "first" {
		t.Errorf("bets out of order: %s, %s", bets[0].Selection, bets[1].Selection)
	}
}

func TestGetBetNotFound(t *testing.T) {
	db := testDB(t)

	bet := &models.Bet{Type: "Prop"}
	if err := CreateBet(db, "user-1", bet); err != nil {
		t.Fatalf("CreateBet: %v", err)
	}

	if _, err := GetBet(db, "user-1", "no-such-id"); err != ErrBetNotFound {
		t.Errorf("expected ErrBetNotFound, got %v", err)
	}
	// Another user's bet must look like it does not exist.
	if _, err := GetBet(db, "user-2", bet.ID); err != ErrBetNotFound {
		t.Errorf("expected ErrBetNotFound for wrong user, got %v", err)
	}
}

func TestUpdateBetFiltersColumns(t *testing.T) {
	db := testDB(t)

	bet := &models.Bet{Type: "Prop", Stake: 50}
	if err := CreateBet(db, "user-1", bet); err != nil {
		t.Fatalf("CreateBet: %v", err)
	}

	updated, err := UpdateBet(db, "user-1", bet.ID, map[string]interface{}{
		"status":  "Won",
		"stake":   75.0,
		"user_id": "attacker",
		"id":      "new-id",
	})
	if err != nil {
		t.Fatalf("UpdateBet: %v", err)
	}

	if updated.Status != "Won" {
		t.Errorf("expected Won, got %s", updated.Status)
	}
	if updated.Stake != 75 {
		t.Errorf("expected stake 75, got %v", updated.Stake)
	}
	if updated.UserID != "user-1" {
		t.Errorf("user id must not change, got %s", updated.UserID)
	}
	if updated.ID != bet.ID {
		t.Errorf("id must not change, got %s", updated.ID)
	}
}

func TestDeleteBetRemovesLegs(t *testing.T) {
	db := testDB(t)

	bet := &models.Bet{
		Type: "Parlay",
		Legs: []models.BetLeg{{Selection: "leg one"}, {Selection: "leg two"}},
	}
	if err := CreateBet(db, "user-1", bet); err != nil {
		t.Fatalf("CreateBet: %v", err)
	}

	if err := DeleteBet(db, "user-2", bet.ID); err != ErrBetNotFound {
		t.Fatalf("expected ErrBetNotFound for wrong user, got %v", err)
	}
	if err := DeleteBet(db, "user-1", bet.ID); err != nil {
		t.Fatalf("DeleteBet: %v", err)
	}

	var legCount int64
	db.Model(&models.BetLeg{}).Where("bet_id = ?", bet.ID).Count(&legCount)
	if legCount != 0 {
		t.Errorf("expected legs removed, found %d", legCount)
	}
}

func TestGetUserStats(t *testing.T) {
	db := testDB(t)
	today := time.Now().Format("2006-01-02")

	seed := []*models.Bet{
		{Type: "Prop", Status: "Won", Stake: 50, PotentialPayout: 95, Date: today},
		{Type: "Spread", Status: "Lost", Stake: 30, Date: today},
		{Type: "Total", Status: "Pushed", Stake: 20, Date: today},
		{Type: "Prop", Status: "Pending", Stake: 25, Date: today},
		{Type: "Prop", Status: "Pending", Stake: 25, Date: "2020-01-01"},
	}
	for _, bet := range seed {
		if err := CreateBet(db, "user-1", bet); err != nil {
			t.Fatalf("CreateBet: %v", err)
		}
	}

	stats, err := GetUserStats(db, "user-1")
	if err != nil {
		t.Fatalf("GetUserStats: %v", err)
	}

	if stats.TotalBets != 5 {
		t.Errorf("expected 5 total bets, got %d", stats.TotalBets)
	}
	if stats.Wins != 1 || stats.Losses != 1 || stats.Pushes != 1 {
		t.Errorf("unexpected record: %d-%d-%d", stats.Wins, stats.Losses, stats.Pushes)
	}
	// Stale pending bets from past days do not count.
	if stats.Pending != 1 {
		t.Errorf("expected 1 pending, got %d", stats.Pending)
	}
	if stats.Profit != 65 {
		t.Errorf("expected profit 65, got %v", stats.Profit)
	}
	if stats.WinRate != 50 {
		t.Errorf("expected 50%% win rate, got %v", stats.WinRate)
	}
	// 65 profit on 80 staked.
	if stats.ROI != 81.25 {
		t.Errorf("expected ROI 81.25, got %v", stats.ROI)
	}
}

func TestGetUserStatsEmpty(t *testing.T) {
	db := testDB(t)

	stats, err := GetUserStats(db, "user-1")
	if err != nil {
		t.Fatalf("GetUserStats: %v", err)
	}
	if stats.TotalBets != 0 || stats.WinRate != 0 || stats.ROI != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
}
