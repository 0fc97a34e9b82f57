package models

// Graph labels and relationship types as stored in the database.
const (
	LabelTeam   = "Tim"
	LabelPlayer = "Igrac"
	LabelMatch  = "Utakmica"
	LabelLeague = "Liga"
	LabelSeason = "Sezona"

	RelPlaysFor  = "IGRA_ZA"    // (Igrac)-[:IGRA_ZA]->(Tim)
	RelHomeOf    = "DOMACIN"    // (Tim)-[:DOMACIN]->(Utakmica)
	RelAwayOf    = "GOST"       // (Tim)-[:GOST]->(Utakmica)
	RelHasSeason = "IMA_SEZONU" // (Liga)-[:IMA_SEZONU]->(Sezona)
)

// Team represents a club. Its name is the external key used in URLs.
type Team struct {
	ID              string  `json:"_id"`
	Name            string  `json:"naziv"`
	City            *string `json:"grad,omitempty"`
	Stadium         *string `json:"stadion,omitempty"`
	StadiumCapacity *int64  `json:"kapacitet_stadiona,omitempty"`
	FoundedYear     *int64  `json:"godina_osnivanja,omitempty"`
}

// Link reports the outcome of an optional association: whether one was
// asked for and whether the target resolved.
type Link struct {
	Requested bool
	Linked    bool
}
