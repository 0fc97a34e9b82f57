package seasons

import "github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"

const (
	msgNotFound = "Sezona nije pronađena."
	msgRequired = "Naziv sezone je obavezan."
)

// CreateSeasonRequest represents the data needed to create a season.
// LeagueID is the element id of an existing league and is optional.
type CreateSeasonRequest struct {
	Name     neoutil.Field `json:"naziv"`
	Rounds   neoutil.Field `json:"broj_kola"`
	Start    neoutil.Field `json:"pocetak"`
	End      neoutil.Field `json:"kraj"`
	LeagueID neoutil.Field `json:"liga_id"`
}

// UpdateSeasonRequest represents the data that can be updated for a season.
// A present LeagueID replaces the league link; one that does not resolve
// leaves the season without a league.
type UpdateSeasonRequest struct {
	Name     neoutil.Field `json:"naziv"`
	Rounds   neoutil.Field `json:"broj_kola"`
	Start    neoutil.Field `json:"pocetak"`
	End      neoutil.Field `json:"kraj"`
	LeagueID neoutil.Field `json:"liga_id"`
}

func (req CreateSeasonRequest) params() map[string]any {
	return map[string]any{
		"naziv":     neoutil.TrimmedParam(req.Name),
		"broj_kola": neoutil.IntParam(req.Rounds),
		"pocetak":   neoutil.DateParam(req.Start),
		"kraj":      neoutil.DateParam(req.End),
		"liga_id":   neoutil.StringParam(req.LeagueID),
	}
}

func (req UpdateSeasonRequest) props() neoutil.Props {
	props := neoutil.Props{}
	props.Set("naziv", req.Name, neoutil.StringParam)
	props.Set("broj_kola", req.Rounds, neoutil.IntParam)
	props.Set("pocetak", req.Start, neoutil.DateParam)
	props.Set("kraj", req.End, neoutil.DateParam)
	return props
}
