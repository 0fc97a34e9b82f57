package seasons

import (
	"context"
	"net/http"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/httpapi"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
)

// SeasonsApp defines what the service layer needs from the seasons application
type SeasonsApp interface {
	CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error)
	GetSeason(ctx context.Context, id string) (*models.Season, error)
	ListSeasons(ctx context.Context) ([]models.Season, error)
	UpdateSeason(ctx context.Context, id string, req UpdateSeasonRequest) (*models.Season, error)
	DeleteSeason(ctx context.Context, id string) error
}

// Service exposes seasons over /api/sezona
type Service struct {
	app SeasonsApp
}

func NewService(app SeasonsApp) *Service {
	return &Service{app: app}
}

func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/sezona", s.CreateSeason)
	mux.HandleFunc("POST /api/sezona/{$}", s.CreateSeason)
	mux.HandleFunc("GET /api/sezona", s.ListSeasons)
	mux.HandleFunc("GET /api/sezona/{$}", s.ListSeasons)
	mux.HandleFunc("GET /api/sezona/{id}", s.GetSeason)
	mux.HandleFunc("PUT /api/sezona/{id}", s.UpdateSeason)
	mux.HandleFunc("DELETE /api/sezona/{id}", s.DeleteSeason)
}

func (s *Service) CreateSeason(w http.ResponseWriter, r *http.Request) {
	var req CreateSeasonRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	season, err := s.app.CreateSeason(r.Context(), req)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.WriteOK(w, r, http.StatusCreated, httpapi.Envelope{
		"message": "Sezona uspješno dodana",
		"sezona":  season,
	})
}

func (s *Service) ListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := s.app.ListSeasons(r.Context())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteList(w, r, "sezone", seasons)
}

func (s *Service) GetSeason(w http.ResponseWriter, r *http.Request) {
	season, err := s.app.GetSeason(r.Context(), r.PathValue("id"))
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{"sezona": season})
}

func (s *Service) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	var req UpdateSeasonRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	season, err := s.app.UpdateSeason(r.Context(), r.PathValue("id"), req)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{
		"message": "Sezona uspješno ažurirana",
		"sezona":  season,
	})
}

func (s *Service) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteSeason(r.Context(), r.PathValue("id")); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{"message": "Sezona uspješno obrisana"})
}
