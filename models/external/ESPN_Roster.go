package external

type ESPN_Roster struct {
	Athletes []ESPN_RosterEntry `json:"athletes"`
}

// ESPN_RosterEntry decodes both roster shapes: football groups athletes by
// position (Items populated), basketball and baseball return a flat list
// (DisplayName populated on the entry itself).
type ESPN_RosterEntry struct {
	Items       []ESPN_RosterAthlete `json:"items"`
	DisplayName string               `json:"displayName"`
	FullName    string               `json:"fullName"`
}

type ESPN_RosterAthlete struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	FullName    string `json:"fullName"`
}
