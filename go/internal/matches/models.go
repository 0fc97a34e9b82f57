package matches

import "github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"

const (
	msgNotFound = "Utakmica nije pronađena"
	msgRequired = "Datum, domaćin i gost su obavezni."
)

// CreateMatchRequest represents the data needed to create a match. Both
// teams are referenced by name and must exist.
type CreateMatchRequest struct {
	Date       neoutil.Field `json:"datum"`
	Round      neoutil.Field `json:"kolo"`
	Stadium    neoutil.Field `json:"stadion"`
	Attendance neoutil.Field `json:"broj_gledatelja"`
	HomeTeam   neoutil.Field `json:"domacin_naziv"`
	AwayTeam   neoutil.Field `json:"gost_naziv"`
}

// UpdateMatchRequest represents the data that can be updated for a match.
// Teams are replaced only when both names are given.
type UpdateMatchRequest struct {
	Date       neoutil.Field `json:"datum"`
	Round      neoutil.Field `json:"kolo"`
	Stadium    neoutil.Field `json:"stadion"`
	Attendance neoutil.Field `json:"broj_gledatelja"`
	HomeTeam   neoutil.Field `json:"domacin_naziv"`
	AwayTeam   neoutil.Field `json:"gost_naziv"`
}

func (req CreateMatchRequest) params() map[string]any {
	return map[string]any{
		"datum":           neoutil.DateParam(req.Date),
		"kolo":            neoutil.IntParam(req.Round),
		"stadion":         neoutil.StringParam(req.Stadium),
		"broj_gledatelja": neoutil.IntParam(req.Attendance),
		"domacin_naziv":   neoutil.StringParam(req.HomeTeam),
		"gost_naziv":      neoutil.StringParam(req.AwayTeam),
	}
}

func (req UpdateMatchRequest) props() neoutil.Props {
	props := neoutil.Props{}
	props.Set("datum", req.Date, neoutil.DateParam)
	props.Set("kolo", req.Round, neoutil.IntParam)
	props.Set("stadion", req.Stadium, neoutil.StringParam)
	props.Set("broj_gledatelja", req.Attendance, neoutil.IntParam)
	return props
}

// rewiresTeams reports whether both team names were sent non-empty.
func (req UpdateMatchRequest) rewiresTeams() bool {
	return !req.HomeTeam.Blank() && !req.AwayTeam.Blank()
}
