package propService

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propsTracker/models"
	"propsTracker/services/statService"
)

// fakeProvider serves canned snapshots and counts fetches per game.
type fakeProvider struct {
	snapshots map[string]*models.GameSnapshot
	failures  map[string]bool
	fetches   map[string]int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		snapshots: make(map[string]*models.GameSnapshot),
		failures:  make(map[string]bool),
		fetches:   make(map[string]int),
	}
}

func (f *fakeProvider) GetGameSnapshot(sport string, gameID string) (*models.GameSnapshot, error) {
	f.fetches[gameID]++
	if f.failures[gameID] {
		return nil, errors.New("provider unavailable")
	}
	snapshot, ok := f.snapshots[gameID]
	if !ok {
		return nil, errors.New("no such game")
	}
	return snapshot, nil
}

func liveNFLSnapshot(gameID string) *models.GameSnapshot {
	return &models.GameSnapshot{
		GameID:      gameID,
		Sport:       "nfl",
		Phase:       models.GameStateIn,
		StatusText:  "5:09 - 2nd",
		HomeTeam:    "Seattle Seahawks",
		AwayTeam:    "San Francisco 49ers",
		HomeScore:   21,
		AwayScore:   25,
		HomePeriods: []float64{14, 7},
		AwayPeriods: []float64{10, 15},
		Teams: []models.SnapshotTeam{
			{
				Name: "San Francisco 49ers",
				Categories: []models.StatCategory{
					{
						Name:   "rushing",
						Keys:   []string{"rushingAttempts", "rushingYards", "rushingTouchdowns"},
						Labels: []string{"CAR", "YDS", "TD"},
						Athletes: []models.AthleteLine{
							{Player: "Christian McCaffrey", Stats: []string{"18", "85", "1"}},
						},
					},
					{
						Name:   "receiving",
						Keys:   []string{"receptions", "receivingYards", "receivingTouchdowns"},
						Labels: []string{"REC", "YDS", "TD"},
						Athletes: []models.AthleteLine{
							{Player: "Deebo Samuel", Stats: []string{"6", "89", "1"}},
						},
					},
				},
			},
		},
	}
}

func newTestRefresher(provider SnapshotProvider) *Refresher {
	return NewRefresher(provider, statService.New())
}

func TestRefreshPlayerPropEndToEnd(t *testing.T) {
	provider := newFakeProvider()
	provider.snapshots["401"] = liveNFLSnapshot("401")
	refresher := newTestRefresher(provider)

	p := &models.PlayerProp{
		Sport:      "nfl",
		GameID:     "401",
		PlayerName: "McCaffrey",
		MarketType: "rushing_yards",
		Line:       71.5,
		Side:       "over",
	}
	refresher.RefreshProps([]*models.PlayerProp{p})

	require.NotNil(t, p.CurrentValue)
	assert.Equal(t, 85.0, *p.CurrentValue)
	assert.Equal(t, models.PropStatusLiveHit, p.PropStatus)
	assert.Equal(t, models.GameStateIn, p.GameState)
	assert.Equal(t, "5:09 - 2nd", p.GameStatusText)
	assert.Equal(t, "Christian McCaffrey", p.PlayerName)
	assert.Equal(t, "San Francisco 49ers", p.TeamName)
}

func TestRefreshAmortizesFetchesPerGame(t *testing.T) {
	provider := newFakeProvider()
	provider.snapshots["401"] = liveNFLSnapshot("401")
	provider.snapshots["402"] = liveNFLSnapshot("402")
	refresher := newTestRefresher(provider)

	props := []*models.PlayerProp{
		{Sport: "nfl", GameID: "401", PlayerName: "McCaffrey", MarketType: "rushing_yards", Line: 71.5, Side: "over"},
		{Sport: "nfl", GameID: "401", PlayerName: "Deebo", MarketType: "receiving_yards", Line: 60.5, Side: "over"},
		{Sport: "nfl", GameID: "401", MarketType: "total_score", Line: 44.5, Side: "over"},
		{Sport: "nfl", GameID: "402", PlayerName: "McCaffrey", MarketType: "rushing_yards", Line: 100.5, Side: "under"},
	}
	refresher.RefreshProps(props)

	assert.Equal(t, 1, provider.fetches["401"])
	assert.Equal(t, 1, provider.fetches["402"])
}

func TestRefreshPartitionFailureIsolation(t *testing.T) {
	provider := newFakeProvider()
	provider.snapshots["401"] = liveNFLSnapshot("401")
	provider.failures["999"] = true
	refresher := newTestRefresher(provider)

	healthy := &models.PlayerProp{Sport: "nfl", GameID: "401", PlayerName: "McCaffrey", MarketType: "rushing_yards", Line: 71.5, Side: "over"}
	broken := &models.PlayerProp{Sport: "nfl", GameID: "999", PlayerName: "McCaffrey", MarketType: "rushing_yards", Line: 71.5, Side: "over"}
	refresher.RefreshProps([]*models.PlayerProp{broken, healthy})

	assert.Equal(t, models.GameStateUnknown, broken.GameState)
	assert.Equal(t, models.PropStatusUnavailable, broken.PropStatus)

	assert.Equal(t, models.PropStatusLiveHit, healthy.PropStatus)
}

func TestRefreshTeamMarkets(t *testing.T) {
	provider := newFakeProvider()
	provider.snapshots["401"] = liveNFLSnapshot("401")
	refresher := newTestRefresher(provider)

	total := &models.PlayerProp{Sport: "nfl", GameID: "401", MarketType: "total_score", Line: 44.5, Side: "over"}
	moneyline := &models.PlayerProp{Sport: "nfl", GameID: "401", MarketType: "moneyline", Side: "49ers"}
	spread := &models.PlayerProp{Sport: "nfl", GameID: "401", MarketType: "spread", Line: -3.5, Side: "Seahawks"}
	firstHalf := &models.PlayerProp{Sport: "nfl", GameID: "401", MarketType: "1h_total_score", Line: 45.5, Side: "under"}
	teamTotal := &models.PlayerProp{Sport: "nfl", GameID: "401", MarketType: "1q_away_team_points", Line: 9.5, Side: "over"}

	refresher.RefreshProps([]*models.PlayerProp{total, moneyline, spread, firstHalf, teamTotal})

	require.NotNil(t, total.CurrentValue)
	assert.Equal(t, 46.0, *total.CurrentValue)
	assert.Equal(t, models.PropStatusWon, total.PropStatus)
	require.NotNil(t, total.CurrentValueStr)
	assert.Equal(t, "46 (25-21)", *total.CurrentValueStr)

	// 49ers are the away team and lead by 4.
	require.NotNil(t, moneyline.CurrentValue)
	assert.Equal(t, 4.0, *moneyline.CurrentValue)
	assert.Equal(t, models.PropStatusLiveHit, moneyline.PropStatus)
	require.NotNil(t, moneyline.CurrentValueStr)
	assert.Equal(t, "+4 (25-21)", *moneyline.CurrentValueStr)

	// Seahawks trail by 4 and laid 3.5.
	require.NotNil(t, spread.CurrentValue)
	assert.Equal(t, -4.0, *spread.CurrentValue)
	assert.Equal(t, models.PropStatusLiveMiss, spread.PropStatus)

	// First half total is 46, already past the 45.5 under.
	require.NotNil(t, firstHalf.CurrentValue)
	assert.Equal(t, 46.0, *firstHalf.CurrentValue)
	assert.Equal(t, models.PropStatusLost, firstHalf.PropStatus)

	// Away first quarter was 10.
	require.NotNil(t, teamTotal.CurrentValue)
	assert.Equal(t, 10.0, *teamTotal.CurrentValue)
	assert.Equal(t, models.PropStatusWon, teamTotal.PropStatus)
}

func TestRefreshMissingFootballPlayerDefaultsToZeroDisplay(t *testing.T) {
	provider := newFakeProvider()
	provider.snapshots["401"] = liveNFLSnapshot("401")
	refresher := newTestRefresher(provider)

	p := &models.PlayerProp{
		Sport:      "nfl",
		GameID:     "401",
		PlayerName: "George Kittle",
		MarketType: "receiving_yards",
		Line:       40.5,
		Side:       "over",
	}
	refresher.RefreshProps([]*models.PlayerProp{p})

	// Display shows zero, but settlement still treats the stat as missing.
	require.NotNil(t, p.CurrentValue)
	assert.Equal(t, 0.0, *p.CurrentValue)
	assert.Equal(t, models.PropStatusPending, p.PropStatus)
}

func TestRefreshCombinedProp(t *testing.T) {
	provider := newFakeProvider()
	provider.snapshots["401"] = liveNFLSnapshot("401")
	refresher := newTestRefresher(provider)

	p := &models.PlayerProp{
		Sport:      "nfl",
		GameID:     "401",
		MarketType: "anytime_touchdowns",
		Line:       2.5,
		Side:       "over",
		IsCombined: true,
		CombinedPlayers: []models.CombinedPlayer{
			{PlayerName: "McCaffrey"},
			{PlayerName: "Deebo"},
		},
	}
	refresher.RefreshProps([]*models.PlayerProp{p})

	require.NotNil(t, p.CurrentValue)
	assert.Equal(t, 2.0, *p.CurrentValue)
	assert.Equal(t, models.PropStatusLiveMiss, p.PropStatus)
	require.NotNil(t, p.CurrentValueStr)
	assert.Equal(t, "2 TDs (McCaffrey: 1, Samuel: 1)", *p.CurrentValueStr)

	require.Len(t, p.CombinedPlayers, 2)
	assert.Equal(t, "Christian McCaffrey", p.CombinedPlayers[0].PlayerName)
	require.NotNil(t, p.CombinedPlayers[0].CurrentValue)
	assert.Equal(t, 1.0, *p.CombinedPlayers[0].CurrentValue)

	assert.Equal(t, 1, provider.fetches["401"])
}

func TestRefreshIdempotence(t *testing.T) {
	provider := newFakeProvider()
	provider.snapshots["401"] = liveNFLSnapshot("401")
	refresher := newTestRefresher(provider)

	p := &models.PlayerProp{Sport: "nfl", GameID: "401", PlayerName: "McCaffrey", MarketType: "rushing_yards", Line: 71.5, Side: "over"}

	refresher.RefreshProps([]*models.PlayerProp{p})
	firstStatus := p.PropStatus
	firstValue := *p.CurrentValue

	refresher.RefreshProps([]*models.PlayerProp{p})
	assert.Equal(t, firstStatus, p.PropStatus)
	assert.Equal(t, firstValue, *p.CurrentValue)
}

func TestDashboardAddRemove(t *testing.T) {
	dashboard := NewDashboard("NFL")
	p := dashboard.AddProp("401", "49ers @ Seahawks", "McCaffrey", "", "rushing_yards", 71.5, "Over", 50, -110)

	assert.Equal(t, "nfl", dashboard.Sport)
	assert.Equal(t, "over", p.Side)
	assert.Equal(t, models.PropStatusPending, p.PropStatus)
	assert.Len(t, dashboard.Props, 1)

	assert.False(t, dashboard.RemoveProp("missing"))
	assert.True(t, dashboard.RemoveProp(p.ID))
	assert.Empty(t, dashboard.Props)
}
