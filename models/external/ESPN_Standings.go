package external

type ESPN_Standings struct {
	Name     string                `json:"name"`
	Children []ESPN_StandingsGroup `json:"children"`
}

type ESPN_StandingsGroup struct {
	Name         string `json:"name"`
	IsConference bool   `json:"isConference"`
	Standings    struct {
		Entries []ESPN_StandingsEntry `json:"entries"`
	} `json:"standings"`
}

type ESPN_StandingsEntry struct {
	Team  ESPN_Team            `json:"team"`
	Note  ESPN_StandingsNote   `json:"note"`
	Stats []ESPN_StandingsStat `json:"stats"`
}

type ESPN_StandingsNote struct {
	Description string `json:"description"`
}

type ESPN_StandingsStat struct {
	Name         string `json:"name"`
	DisplayValue string `json:"displayValue"`
}
