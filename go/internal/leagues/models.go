package leagues

import "github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"

const (
	msgNotFound = "Liga nije pronađena."
	msgRequired = "Naziv lige je obavezan."
)

// CreateLeagueRequest represents the data needed to create a new league
type CreateLeagueRequest struct {
	Name        neoutil.Field `json:"naziv"`
	Country     neoutil.Field `json:"drzava"`
	Level       neoutil.Field `json:"razina"`
	FoundedYear neoutil.Field `json:"godina_osnivanja"`
}

// UpdateLeagueRequest represents the data that can be updated for a league
type UpdateLeagueRequest struct {
	Name        neoutil.Field `json:"naziv"`
	Country     neoutil.Field `json:"drzava"`
	Level       neoutil.Field `json:"razina"`
	FoundedYear neoutil.Field `json:"godina_osnivanja"`
}

func (req CreateLeagueRequest) params() map[string]any {
	return map[string]any{
		"naziv":            neoutil.TrimmedParam(req.Name),
		"drzava":           neoutil.StringParam(req.Country),
		"razina":           neoutil.IntParam(req.Level),
		"godina_osnivanja": neoutil.IntParam(req.FoundedYear),
	}
}

func (req UpdateLeagueRequest) props() neoutil.Props {
	props := neoutil.Props{}
	props.Set("naziv", req.Name, neoutil.StringParam)
	props.Set("drzava", req.Country, neoutil.StringParam)
	props.Set("razina", req.Level, neoutil.IntParam)
	props.Set("godina_osnivanja", req.FoundedYear, neoutil.IntParam)
	return props
}
