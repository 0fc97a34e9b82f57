package teams

import "github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"

const (
	msgNotFound = "Tim nije pronađen"
	msgRequired = "Naziv i grad su obavezna polja"
	msgNoUpdate = "Nema podataka za ažuriranje"
)

// CreateTeamRequest represents the data needed to create a new team
type CreateTeamRequest struct {
	Name            neoutil.Field `json:"naziv"`
	City            neoutil.Field `json:"grad"`
	Stadium         neoutil.Field `json:"stadion"`
	StadiumCapacity neoutil.Field `json:"kapacitet_stadiona"`
	FoundedYear     neoutil.Field `json:"godina_osnivanja"`
}

// UpdateTeamRequest represents the data that can be updated for a team.
// NewName renames the team.
type UpdateTeamRequest struct {
	NewName         neoutil.Field `json:"novi_naziv"`
	City            neoutil.Field `json:"grad"`
	Stadium         neoutil.Field `json:"stadion"`
	StadiumCapacity neoutil.Field `json:"kapacitet_stadiona"`
	FoundedYear     neoutil.Field `json:"godina_osnivanja"`
}

func (req CreateTeamRequest) params() map[string]any {
	return map[string]any{
		"naziv":              neoutil.StringParam(req.Name),
		"grad":               neoutil.StringParam(req.City),
		"stadion":            neoutil.StringParam(req.Stadium),
		"kapacitet_stadiona": neoutil.IntParam(req.StadiumCapacity),
		"godina_osnivanja":   neoutil.IntParam(req.FoundedYear),
	}
}

func (req UpdateTeamRequest) props() neoutil.Props {
	props := neoutil.Props{}
	props.Set("naziv", req.NewName, neoutil.StringParam)
	props.Set("grad", req.City, neoutil.StringParam)
	props.Set("stadion", req.Stadium, neoutil.StringParam)
	props.Set("kapacitet_stadiona", req.StadiumCapacity, neoutil.IntParam)
	props.Set("godina_osnivanja", req.FoundedYear, neoutil.IntParam)
	return props
}
