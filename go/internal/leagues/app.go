package leagues

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/events"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"
)

// LeaguesRepository defines what the app layer needs from the repository
type LeaguesRepository interface {
	CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error)
	GetLeague(ctx context.Context, id string) (*models.League, error)
	ListLeagues(ctx context.Context) ([]models.League, error)
	UpdateLeague(ctx context.Context, id string, props neoutil.Props) (*models.League, error)
	DeleteLeague(ctx context.Context, id string) error
}

// App handles leagues business logic
type App struct {
	repo   LeaguesRepository
	events *events.Emitter
}

// NewApp creates a new leagues App
func NewApp(repo LeaguesRepository, emitter *events.Emitter) *App {
	return &App{
		repo:   repo,
		events: emitter,
	}
}

// CreateLeague creates a new league with validation
func (a *App) CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error) {
	if err := a.validateCreateLeagueRequest(req); err != nil {
		return nil, err
	}

	league, err := a.repo.CreateLeague(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create league: %w", err)
	}

	log.Info().Str("id", league.ID).Str("name", req.Name.Text()).Msg("created league")
	a.events.Emit(ctx, events.EntityLeague, events.OpCreated, league.ID, league)
	return league, nil
}

// GetLeague retrieves a league by ID
func (a *App) GetLeague(ctx context.Context, id string) (*models.League, error) {
	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get league %s: %w", id, err)
	}
	return league, nil
}

// ListLeagues retrieves all leagues
func (a *App) ListLeagues(ctx context.Context) ([]models.League, error) {
	leagues, err := a.repo.ListLeagues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

// UpdateLeague updates an existing league with validation
func (a *App) UpdateLeague(ctx context.Context, id string, req UpdateLeagueRequest) (*models.League, error) {
	if err := a.validateUpdateLeagueRequest(req); err != nil {
		return nil, err
	}

	league, err := a.repo.UpdateLeague(ctx, id, req.props())
	if err != nil {
		return nil, fmt.Errorf("update league %s: %w", id, err)
	}

	log.Info().Str("id", id).Msg("updated league")
	a.events.Emit(ctx, events.EntityLeague, events.OpUpdated, id, league)
	return league, nil
}

// DeleteLeague deletes a league by ID
func (a *App) DeleteLeague(ctx context.Context, id string) error {
	if err := a.repo.DeleteLeague(ctx, id); err != nil {
		return fmt.Errorf("delete league %s: %w", id, err)
	}

	log.Info().Str("id", id).Msg("deleted league")
	a.events.Emit(ctx, events.EntityLeague, events.OpDeleted, id, nil)
	return nil
}

func (a *App) validateCreateLeagueRequest(req CreateLeagueRequest) error {
	if req.Name.Blank() {
		return models.Invalid(msgRequired)
	}
	return nil
}

func (a *App) validateUpdateLeagueRequest(req UpdateLeagueRequest) error {
	if req.Name.Present() && req.Name.Blank() {
		return models.Invalid(msgRequired)
	}
	return nil
}
