package models

// GameSnapshot is the normalized state of one game at the moment of a
// refresh. Sport adapters build it from provider JSON; the resolver and the
// valuation engine only ever see this type, never raw payloads.
type GameSnapshot struct {
	GameID     string
	Sport      string
	Phase      string // pre / in / post / unknown
	StatusText string // e.g. "5:09 - 2nd" or "Final"

	HomeTeam  string
	AwayTeam  string
	HomeScore float64
	AwayScore float64

	// Per-period (quarter/inning) scores in game order. First half is the
	// sum of the first two entries, first quarter is the first entry.
	HomePeriods []float64
	AwayPeriods []float64

	Teams        []SnapshotTeam
	ScoringPlays []ScoringPlay
}

// SnapshotTeam holds one team's player stat table, organized the way the
// provider groups it (passing/rushing/receiving, batting/pitching, or a
// single block for basketball).
type SnapshotTeam struct {
	Name       string
	Categories []StatCategory
}

// StatCategory is one stat table: column metadata plus one row per athlete.
// Providers label columns three different ways (keys, labels, names), so all
// three are kept and the resolver tries them in order.
type StatCategory struct {
	Name     string
	Keys     []string
	Labels   []string
	Columns  []string // ESPN "names" field, used by basketball payloads
	Athletes []AthleteLine
}

// AthleteLine is one player's row of raw stat values. Values stay as strings
// because providers mix plain numbers with composites like "20/30" or "4-9".
type AthleteLine struct {
	Player string
	Stats  []string
}

// ScoringPlay is one entry of a game's ordered scoring log.
type ScoringPlay struct {
	TypeText        string // e.g. "Touchdown" or "Field Goal"
	ScoringTypeName string // scoring type display name, e.g. "Touchdown"
	Text            string // play description, e.g. "Christian McCaffrey 6 Yd Run"
}

// FirstHalfScore and FirstQuarterScore read period-scoped team totals from
// the linescores. They return 0 when the breakdown is not available yet.
func (s *GameSnapshot) FirstHalfScore(home bool) float64 {
	periods := s.AwayPeriods
	if home {
		periods = s.HomePeriods
	}
	total := 0.0
	for i, v := range periods {
		if i >= 2 {
			break
		}
		total += v
	}
	return total
}

func (s *GameSnapshot) FirstQuarterScore(home bool) float64 {
	periods := s.AwayPeriods
	if home {
		periods = s.HomePeriods
	}
	if len(periods) == 0 {
		return 0
	}
	return periods[0]
}

// PeriodScore returns a team's score for the given scope ("1h", "1q" or ""
// for full game).
func (s *GameSnapshot) PeriodScore(home bool, scope string) float64 {
	switch scope {
	case "1h":
		return s.FirstHalfScore(home)
	case "1q":
		return s.FirstQuarterScore(home)
	}
	if home {
		return s.HomeScore
	}
	return s.AwayScore
}
