package matches

import (
	"context"
	"net/http"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/httpapi"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
)

// MatchesApp defines what the service layer needs from the matches application
type MatchesApp interface {
	CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error)
	GetMatch(ctx context.Context, id string) (*models.Match, error)
	ListMatches(ctx context.Context) ([]models.Match, error)
	UpdateMatch(ctx context.Context, id string, req UpdateMatchRequest) (*models.Match, error)
	DeleteMatch(ctx context.Context, id string) error
}

// Service exposes matches over /api/utakmica
type Service struct {
	app MatchesApp
}

func NewService(app MatchesApp) *Service {
	return &Service{app: app}
}

func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/utakmica", s.CreateMatch)
	mux.HandleFunc("POST /api/utakmica/{$}", s.CreateMatch)
	mux.HandleFunc("GET /api/utakmica", s.ListMatches)
	mux.HandleFunc("GET /api/utakmica/{$}", s.ListMatches)
	mux.HandleFunc("GET /api/utakmica/{id}", s.GetMatch)
	mux.HandleFunc("PUT /api/utakmica/{id}", s.UpdateMatch)
	mux.HandleFunc("DELETE /api/utakmica/{id}", s.DeleteMatch)
}

func (s *Service) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req CreateMatchRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	match, err := s.app.CreateMatch(r.Context(), req)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.WriteOK(w, r, http.StatusCreated, httpapi.Envelope{
		"message":  "Utakmica uspješno kreirana",
		"utakmica": match,
	})
}

func (s *Service) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.app.ListMatches(r.Context())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteList(w, r, "utakmice", matches)
}

func (s *Service) GetMatch(w http.ResponseWriter, r *http.Request) {
	match, err := s.app.GetMatch(r.Context(), r.PathValue("id"))
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{"utakmica": match})
}

func (s *Service) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	var req UpdateMatchRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	match, err := s.app.UpdateMatch(r.Context(), r.PathValue("id"), req)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{
		"message":  "Utakmica uspješno ažurirana",
		"utakmica": match,
	})
}

func (s *Service) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteMatch(r.Context(), r.PathValue("id")); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{"message": "Utakmica uspješno obrisana"})
}
