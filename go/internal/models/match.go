package models

// Match represents a fixture between a home and an away team.
type Match struct {
	ID         string  `json:"id"`
	Date       *string `json:"datum,omitempty"`
	Round      *int64  `json:"kolo,omitempty"`
	Stadium    *string `json:"stadion,omitempty"`
	Attendance *int64  `json:"broj_gledatelja,omitempty"`
	HomeTeam   *string `json:"domacin_naziv"`
	AwayTeam   *string `json:"gost_naziv"`
}
