package teams

import (
	"context"
	"net/http"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/httpapi"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
)

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, name string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	UpdateTeam(ctx context.Context, name string, req UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, name string) error
}

// Service exposes teams over /api/tim. Teams are addressed by name.
type Service struct {
	app TeamsApp
}

// NewService creates a new teams HTTP service
func NewService(app TeamsApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes registers the team routes with mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/tim", s.CreateTeam)
	mux.HandleFunc("POST /api/tim/{$}", s.CreateTeam)
	mux.HandleFunc("GET /api/tim", s.ListTeams)
	mux.HandleFunc("GET /api/tim/{$}", s.ListTeams)
	mux.HandleFunc("GET /api/tim/{naziv}", s.GetTeam)
	mux.HandleFunc("PUT /api/tim/{naziv}", s.UpdateTeam)
	mux.HandleFunc("DELETE /api/tim/{naziv}", s.DeleteTeam)
}

// CreateTeam creates a new team
func (s *Service) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	team, err := s.app.CreateTeam(r.Context(), req)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.WriteOK(w, r, http.StatusCreated, httpapi.Envelope{
		"message": "Tim uspješno kreiran",
		"tim":     team,
	})
}

// ListTeams returns all teams ordered by name
func (s *Service) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.app.ListTeams(r.Context())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteList(w, r, "timovi", teams)
}

// GetTeam returns one team by name
func (s *Service) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := s.app.GetTeam(r.Context(), r.PathValue("naziv"))
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{"tim": team})
}

// UpdateTeam partially updates a team; novi_naziv renames it
func (s *Service) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req UpdateTeamRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	team, err := s.app.UpdateTeam(r.Context(), r.PathValue("naziv"), req)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{
		"message": "Tim uspješno ažuriran",
		"tim":     team,
	})
}

// DeleteTeam removes a team and its relationships
func (s *Service) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteTeam(r.Context(), r.PathValue("naziv")); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{"message": "Tim uspješno obrisan"})
}
