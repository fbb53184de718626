package statService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propsTracker/models"
)

func mlbSnapshot() *models.GameSnapshot {
	return &models.GameSnapshot{
		GameID:   "401581132",
		Sport:    "mlb",
		Phase:    models.GameStateIn,
		HomeTeam: "Los Angeles Dodgers",
		AwayTeam: "San Diego Padres",
		Teams: []models.SnapshotTeam{
			{
				Name: "Los Angeles Dodgers",
				Categories: []models.StatCategory{
					{
						// MLB batting tables often arrive with no name; the
						// keys are the only reliable signal.
						Keys:   []string{"atBats", "runs", "hits", "RBIs", "homeRuns", "walks", "strikeouts"},
						Labels: []string{"AB", "R", "H", "RBI", "HR", "BB", "K"},
						Athletes: []models.AthleteLine{
							{Player: "Shohei Ohtani", Stats: []string{"4", "2", "3", "2", "1", "0", "1"}},
						},
					},
					{
						Keys:   []string{"fullInnings.partInnings", "hits", "runs", "earnedRuns", "walks", "strikeouts", "pitches"},
						Labels: []string{"IP", "H", "R", "ER", "BB", "K", "PC"},
						Athletes: []models.AthleteLine{
							{Player: "Yoshinobu Yamamoto", Stats: []string{"6.2", "5", "2", "2", "1", "8", "98"}},
						},
					},
				},
			},
		},
	}
}

func TestMLBBattingStats(t *testing.T) {
	adapter := &MLBAdapter{}
	snapshot := mlbSnapshot()

	tests := []struct {
		name       string
		marketType string
		expected   float64
	}{
		{"hits", "hits", 3},
		{"runs", "runs", 2},
		{"rbi", "rbi", 2},
		{"home runs", "home_runs", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := adapter.Resolve(snapshot, "Ohtani", tc.marketType)
			require.NotNil(t, result)
			assert.Equal(t, tc.expected, result.Value)
		})
	}
}

func TestMLBPitchingStats(t *testing.T) {
	adapter := &MLBAdapter{}
	snapshot := mlbSnapshot()

	strikeouts := adapter.Resolve(snapshot, "Yamamoto", "strikeouts_pitching")
	require.NotNil(t, strikeouts)
	assert.Equal(t, 8.0, strikeouts.Value)

	earnedRuns := adapter.Resolve(snapshot, "Yamamoto", "earned_runs")
	require.NotNil(t, earnedRuns)
	assert.Equal(t, 2.0, earnedRuns.Value)

	innings := adapter.Resolve(snapshot, "Yamamoto", "innings_pitched")
	require.NotNil(t, innings)
	assert.Equal(t, 6.2, innings.Value)
}

func TestMLBCategoryInference(t *testing.T) {
	// A batter's strikeouts must not satisfy a pitching market even though
	// both tables carry a strikeouts column.
	adapter := &MLBAdapter{}
	snapshot := mlbSnapshot()

	assert.Nil(t, adapter.Resolve(snapshot, "Ohtani", "strikeouts_pitching"))
	assert.Nil(t, adapter.Resolve(snapshot, "Yamamoto", "hits"))

	assert.Equal(t, "batting", classifyMLBCategory([]string{"atBats", "hits"}))
	assert.Equal(t, "batting", classifyMLBCategory([]string{"plateAppearances"}))
	assert.Equal(t, "pitching", classifyMLBCategory([]string{"pitches", "inningsPitched"}))
	assert.Equal(t, "unknown", classifyMLBCategory([]string{"saves"}))
}
