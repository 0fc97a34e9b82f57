package leagues

import (
	"context"
	"net/http"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/httpapi"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
)

// LeaguesApp defines what the service layer needs from the leagues application
type LeaguesApp interface {
	CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error)
	GetLeague(ctx context.Context, id string) (*models.League, error)
	ListLeagues(ctx context.Context) ([]models.League, error)
	UpdateLeague(ctx context.Context, id string, req UpdateLeagueRequest) (*models.League, error)
	DeleteLeague(ctx context.Context, id string) error
}

// Service exposes leagues over /api/liga
type Service struct {
	app LeaguesApp
}

// NewService creates a new leagues service
func NewService(app LeaguesApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes mounts the league handlers on mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/liga", s.CreateLeague)
	mux.HandleFunc("POST /api/liga/{$}", s.CreateLeague)
	mux.HandleFunc("GET /api/liga", s.ListLeagues)
	mux.HandleFunc("GET /api/liga/{$}", s.ListLeagues)
	mux.HandleFunc("GET /api/liga/{id}", s.GetLeague)
	mux.HandleFunc("PUT /api/liga/{id}", s.UpdateLeague)
	mux.HandleFunc("DELETE /api/liga/{id}", s.DeleteLeague)
}

// CreateLeague handles POST /api/liga
func (s *Service) CreateLeague(w http.ResponseWriter, r *http.Request) {
	var req CreateLeagueRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	league, err := s.app.CreateLeague(r.Context(), req)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.WriteOK(w, r, http.StatusCreated, httpapi.Envelope{
		"message": "Liga uspješno dodana",
		"liga":    league,
	})
}

// ListLeagues handles GET /api/liga
func (s *Service) ListLeagues(w http.ResponseWriter, r *http.Request) {
	leagues, err := s.app.ListLeagues(r.Context())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteList(w, r, "lige", leagues)
}

// GetLeague handles GET /api/liga/{id}
func (s *Service) GetLeague(w http.ResponseWriter, r *http.Request) {
	league, err := s.app.GetLeague(r.Context(), r.PathValue("id"))
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{"liga": league})
}

// UpdateLeague handles PUT /api/liga/{id}
func (s *Service) UpdateLeague(w http.ResponseWriter, r *http.Request) {
	var req UpdateLeagueRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	league, err := s.app.UpdateLeague(r.Context(), r.PathValue("id"), req)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{
		"message": "Liga uspješno ažurirana",
		"liga":    league,
	})
}

// DeleteLeague handles DELETE /api/liga/{id}
func (s *Service) DeleteLeague(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteLeague(r.Context(), r.PathValue("id")); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{"message": "Liga uspješno obrisana"})
}
