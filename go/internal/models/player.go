package models

// Player represents a player, optionally playing for one team.
// Nationality, birth date and team name are always emitted, null when unset.
type Player struct {
	ID           string  `json:"id"`
	FirstName    *string `json:"ime,omitempty"`
	LastName     *string `json:"prezime,omitempty"`
	BirthDate    *string `json:"datum_rodenja"`
	Nationality  *string `json:"nacionalnost"`
	Position     *string `json:"pozicija,omitempty"`
	JerseyNumber *int64  `json:"broj_dresa,omitempty"`
	TeamName     *string `json:"tim_naziv"`
}
