package external

type ESPN_Summary struct {
	Header       ESPN_SummaryHeader `json:"header"`
	Boxscore     ESPN_Boxscore      `json:"boxscore"`
	ScoringPlays []ESPN_ScoringPlay `json:"scoringPlays"`
}

type ESPN_SummaryHeader struct {
	ID           string             `json:"id"`
	Competitions []ESPN_SummaryComp `json:"competitions"`
	Status       ESPN_SummaryStatus `json:"status"`
}

// ESPN_SummaryStatus appears both on the header and on the competition;
// some sports only populate one of the two.
type ESPN_SummaryStatus struct {
	Clock        float64 `json:"clock"`
	DisplayClock string  `json:"displayClock"`
	Period       int     `json:"period"`
	Type         struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		State       string `json:"state"`
		Completed   bool   `json:"completed"`
		Description string `json:"description"`
		Detail      string `json:"detail"`
		ShortDetail string `json:"shortDetail"`
	} `json:"type"`
}

type ESPN_SummaryComp struct {
	ID          string                   `json:"id"`
	Date        string                   `json:"date"`
	Competitors []ESPN_SummaryCompetitor `json:"competitors"`
	Status      ESPN_SummaryStatus       `json:"status"`
}

type ESPN_SummaryCompetitor struct {
	ID         string    `json:"id"`
	HomeAway   string    `json:"homeAway"`
	Team       ESPN_Team `json:"team"`
	Score      string    `json:"score"`
	Linescores []struct {
		Value float64 `json:"value"`
	} `json:"linescores"`
}

type ESPN_Boxscore struct {
	Players []ESPN_BoxscoreTeam `json:"players"`
}

type ESPN_BoxscoreTeam struct {
	Team       ESPN_Team               `json:"team"`
	Statistics []ESPN_BoxscoreCategory `json:"statistics"`
}

// ESPN_BoxscoreCategory is one stat table. Football and baseball payloads
// label columns via keys/labels, basketball uses names.
type ESPN_BoxscoreCategory struct {
	Name     string                 `json:"name"`
	Keys     []string               `json:"keys"`
	Labels   []string               `json:"labels"`
	Names    []string               `json:"names"`
	Athletes []ESPN_BoxscoreAthlete `json:"athletes"`
}

type ESPN_BoxscoreAthlete struct {
	Athlete struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
		Jersey      string `json:"jersey"`
	} `json:"athlete"`
	Starter bool     `json:"starter"`
	Stats   []string `json:"stats"`
}

type ESPN_ScoringPlay struct {
	Text string `json:"text"`
	Type struct {
		ID           string `json:"id"`
		Text         string `json:"text"`
		Abbreviation string `json:"abbreviation"`
	} `json:"type"`
	ScoringType struct {
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
	} `json:"scoringType"`
	Period struct {
		Number int `json:"number"`
	} `json:"period"`
	Clock struct {
		DisplayValue string `json:"displayValue"`
	} `json:"clock"`
}
