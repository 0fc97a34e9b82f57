package player

import (
	"context"
	"net/http"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/httpapi"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
)

// PlayerApp defines what the service layer needs from the player application
type PlayerApp interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	GetPlayer(ctx context.Context, id string) (*models.Player, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id string, req UpdatePlayerRequest) (*models.Player, error)
	DeletePlayer(ctx context.Context, id string) error
}

// Service exposes players over /api/igrac
type Service struct {
	app PlayerApp
}

// NewService creates a new player HTTP service
func NewService(app PlayerApp) *Service {
	return &Service{
		app: app,
	}
}

// RegisterRoutes registers the player routes with mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/igrac", s.CreatePlayer)
	mux.HandleFunc("POST /api/igrac/{$}", s.CreatePlayer)
	mux.HandleFunc("GET /api/igrac", s.ListPlayers)
	mux.HandleFunc("GET /api/igrac/{$}", s.ListPlayers)
	mux.HandleFunc("GET /api/igrac/{id}", s.GetPlayer)
	mux.HandleFunc("PUT /api/igrac/{id}", s.UpdatePlayer)
	mux.HandleFunc("DELETE /api/igrac/{id}", s.DeletePlayer)
}

func (s *Service) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	player, err := s.app.CreatePlayer(r.Context(), req)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.WriteOK(w, r, http.StatusCreated, httpapi.Envelope{
		"message": "Igrač uspješno kreiran",
		"igrac":   player,
	})
}

func (s *Service) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.app.ListPlayers(r.Context())
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteList(w, r, "igraci", players)
}

func (s *Service) GetPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := s.app.GetPlayer(r.Context(), r.PathValue("id"))
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{"igrac": player})
}

func (s *Service) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var req UpdatePlayerRequest
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	player, err := s.app.UpdatePlayer(r.Context(), r.PathValue("id"), req)
	if err != nil {
		httpapi.WriteError(w, r, err)
		return
	}

	httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{
		"message": "Igrač uspješno ažuriran",
		"igrac":   player,
	})
}

func (s *Service) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeletePlayer(r.Context(), r.PathValue("id")); err != nil {
		httpapi.WriteError(w, r, err)
		return
	}
	httpapi.WriteOK(w, r, http.StatusOK, httpapi.Envelope{"message": "Igrač uspješno obrisan"})
}
