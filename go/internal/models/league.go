package models

// League represents a competition.
type League struct {
	ID          string  `json:"id"`
	Name        *string `json:"naziv,omitempty"`
	Country     *string `json:"drzava,omitempty"`
	Level       *int64  `json:"razina,omitempty"`
	FoundedYear *int64  `json:"godina_osnivanja,omitempty"`
}

// Season represents one season, optionally belonging to a league.
type Season struct {
	ID         string  `json:"id"`
	Name       *string `json:"naziv,omitempty"`
	Rounds     *int64  `json:"broj_kola,omitempty"`
	Start      *string `json:"pocetak,omitempty"`
	End        *string `json:"kraj,omitempty"`
	LeagueID   *string `json:"liga_id"`
	LeagueName *string `json:"liga_naziv"`
}
