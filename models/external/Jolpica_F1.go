package external

// Jolpica is the community-maintained Ergast-compatible F1 stats mirror.

type Jolpica_Response struct {
	MRData Jolpica_MRData `json:"MRData"`
}

type Jolpica_MRData struct {
	StandingsTable Jolpica_StandingsTable `json:"StandingsTable"`
	RaceTable      Jolpica_RaceTable      `json:"RaceTable"`
}

type Jolpica_StandingsTable struct {
	Season         string                  `json:"season"`
	StandingsLists []Jolpica_StandingsList `json:"StandingsLists"`
}

type Jolpica_StandingsList struct {
	Round           string                   `json:"round"`
	DriverStandings []Jolpica_DriverStanding `json:"DriverStandings"`
}

type Jolpica_DriverStanding struct {
	Position     string                `json:"position"`
	Points       string                `json:"points"`
	Wins         string                `json:"wins"`
	Driver       Jolpica_Driver        `json:"Driver"`
	Constructors []Jolpica_Constructor `json:"Constructors"`
}

type Jolpica_Driver struct {
	DriverID    string `json:"driverId"`
	GivenName   string `json:"givenName"`
	FamilyName  string `json:"familyName"`
	Nationality string `json:"nationality"`
}

type Jolpica_Constructor struct {
	ConstructorID string `json:"constructorId"`
	Name          string `json:"name"`
}

type Jolpica_RaceTable struct {
	Season string         `json:"season"`
	Races  []Jolpica_Race `json:"Races"`
}

type Jolpica_Race struct {
	Round    string           `json:"round"`
	RaceName string           `json:"raceName"`
	Date     string           `json:"date"`
	Time     string           `json:"time"`
	Circuit  Jolpica_Circuit  `json:"Circuit"`
	Results  []Jolpica_Result `json:"Results"`
}

type Jolpica_Circuit struct {
	CircuitName string `json:"circuitName"`
	Location    struct {
		Locality string `json:"locality"`
		Country  string `json:"country"`
	} `json:"Location"`
}

type Jolpica_Result struct {
	Position    string              `json:"position"`
	Grid        string              `json:"grid"`
	Status      string              `json:"status"`
	Driver      Jolpica_Driver      `json:"Driver"`
	Constructor Jolpica_Constructor `json:"Constructor"`
	Time        struct {
		Time string `json:"time"`
	} `json:"Time"`
}
