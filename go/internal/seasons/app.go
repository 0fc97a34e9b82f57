package seasons

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/events"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"
)

// SeasonsRepository defines what the app layer needs from the repository
type SeasonsRepository interface {
	CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, models.Link, error)
	GetSeason(ctx context.Context, id string) (*models.Season, error)
	ListSeasons(ctx context.Context) ([]models.Season, error)
	UpdateSeason(ctx context.Context, id string, props neoutil.Props, relink bool, leagueID any) (*models.Season, models.Link, error)
	DeleteSeason(ctx context.Context, id string) error
}

// App handles season business logic
type App struct {
	repo   SeasonsRepository
	events *events.Emitter
}

// NewApp creates a new seasons App
func NewApp(repo SeasonsRepository, emitter *events.Emitter) *App {
	return &App{
		repo:   repo,
		events: emitter,
	}
}

// CreateSeason creates a season, optionally under a league
func (a *App) CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error) {
	if req.Name.Blank() {
		return nil, models.Invalid(msgRequired)
	}

	season, link, err := a.repo.CreateSeason(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create season: %w", err)
	}

	logLink(season.ID, req.LeagueID, link)
	log.Info().Str("id", season.ID).Str("name", req.Name.Text()).Msg("created season")
	a.events.Emit(ctx, events.EntitySeason, events.OpCreated, season.ID, season)
	return season, nil
}

// GetSeason retrieves a season by ID
func (a *App) GetSeason(ctx context.Context, id string) (*models.Season, error) {
	season, err := a.repo.GetSeason(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get season %s: %w", id, err)
	}
	return season, nil
}

// ListSeasons retrieves all seasons
func (a *App) ListSeasons(ctx context.Context) ([]models.Season, error) {
	seasons, err := a.repo.ListSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return seasons, nil
}

// UpdateSeason applies the fields present in req
func (a *App) UpdateSeason(ctx context.Context, id string, req UpdateSeasonRequest) (*models.Season, error) {
	if req.Name.Present() && req.Name.Blank() {
		return nil, models.Invalid(msgRequired)
	}

	relink := req.LeagueID.Present()
	season, link, err := a.repo.UpdateSeason(ctx, id, req.props(), relink, neoutil.StringParam(req.LeagueID))
	if err != nil {
		return nil, fmt.Errorf("update season %s: %w", id, err)
	}

	if relink {
		logLink(id, req.LeagueID, link)
	}
	log.Info().Str("id", id).Msg("updated season")
	a.events.Emit(ctx, events.EntitySeason, events.OpUpdated, id, season)
	return season, nil
}

// DeleteSeason deletes a season by ID
func (a *App) DeleteSeason(ctx context.Context, id string) error {
	if err := a.repo.DeleteSeason(ctx, id); err != nil {
		return fmt.Errorf("delete season %s: %w", id, err)
	}

	log.Info().Str("id", id).Msg("deleted season")
	a.events.Emit(ctx, events.EntitySeason, events.OpDeleted, id, nil)
	return nil
}

func logLink(id string, league neoutil.Field, link models.Link) {
	switch {
	case link.Linked:
		log.Debug().Str("id", id).Str("league_id", league.Text()).Msg("season linked to league")
	case link.Requested:
		log.Warn().Str("id", id).Str("league_id", league.Text()).Msg("league not found, season left without league")
	}
}
