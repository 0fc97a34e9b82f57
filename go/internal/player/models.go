package player

import "github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"

const (
	msgNotFound = "Igrač nije pronađen"
	msgRequired = "Ime i prezime su obavezna polja"
)

// CreatePlayerRequest represents the data needed to create a new player.
// TeamName links the player to an existing team, if one has that name.
type CreatePlayerRequest struct {
	FirstName    neoutil.Field `json:"ime"`
	LastName     neoutil.Field `json:"prezime"`
	BirthDate    neoutil.Field `json:"datum_rodenja"`
	Nationality  neoutil.Field `json:"nacionalnost"`
	Position     neoutil.Field `json:"pozicija"`
	JerseyNumber neoutil.Field `json:"broj_dresa"`
	TeamName     neoutil.Field `json:"tim_naziv"`
}

// UpdatePlayerRequest represents the data that can be updated for a player.
// A present TeamName, null included, replaces the current team link.
type UpdatePlayerRequest struct {
	FirstName    neoutil.Field `json:"ime"`
	LastName     neoutil.Field `json:"prezime"`
	BirthDate    neoutil.Field `json:"datum_rodenja"`
	Nationality  neoutil.Field `json:"nacionalnost"`
	Position     neoutil.Field `json:"pozicija"`
	JerseyNumber neoutil.Field `json:"broj_dresa"`
	TeamName     neoutil.Field `json:"tim_naziv"`
}

func (req CreatePlayerRequest) params() map[string]any {
	return map[string]any{
		"ime":           neoutil.StringParam(req.FirstName),
		"prezime":       neoutil.StringParam(req.LastName),
		"datum_rodenja": neoutil.DateParam(req.BirthDate),
		"nacionalnost":  neoutil.StringParam(req.Nationality),
		"pozicija":      neoutil.StringParam(req.Position),
		"broj_dresa":    neoutil.IntParam(req.JerseyNumber),
		"tim_naziv":     neoutil.StringParam(req.TeamName),
	}
}

func (req UpdatePlayerRequest) props() neoutil.Props {
	props := neoutil.Props{}
	props.Set("ime", req.FirstName, neoutil.StringParam)
	props.Set("prezime", req.LastName, neoutil.StringParam)
	props.Set("datum_rodenja", req.BirthDate, neoutil.DateParam)
	props.Set("nacionalnost", req.Nationality, neoutil.StringParam)
	props.Set("pozicija", req.Position, neoutil.StringParam)
	props.Set("broj_dresa", req.JerseyNumber, neoutil.IntParam)
	return props
}
