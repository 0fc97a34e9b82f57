package matches

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/events"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"
)

// MatchesRepository defines what the app layer needs from the repository
type MatchesRepository interface {
	CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error)
	GetMatch(ctx context.Context, id string) (*models.Match, error)
	ListMatches(ctx context.Context) ([]models.Match, error)
	UpdateMatch(ctx context.Context, id string, props neoutil.Props, home, away any) (*models.Match, models.Link, error)
	DeleteMatch(ctx context.Context, id string) error
}

// App handles match business logic
type App struct {
	repo   MatchesRepository
	events *events.Emitter
}

// NewApp creates a new matches App
func NewApp(repo MatchesRepository, emitter *events.Emitter) *App {
	return &App{
		repo:   repo,
		events: emitter,
	}
}

// CreateMatch validates and creates a match between two existing teams
func (a *App) CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error) {
	if req.Date.Blank() || req.HomeTeam.Blank() || req.AwayTeam.Blank() {
		return nil, models.Invalid(msgRequired)
	}

	match, err := a.repo.CreateMatch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create match %s vs %s: %w", req.HomeTeam.Text(), req.AwayTeam.Text(), err)
	}

	log.Info().Str("id", match.ID).Str("home", req.HomeTeam.Text()).Str("away", req.AwayTeam.Text()).Msg("created match")
	a.events.Emit(ctx, events.EntityMatch, events.OpCreated, match.ID, match)
	return match, nil
}

// GetMatch retrieves a match by ID
func (a *App) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	match, err := a.repo.GetMatch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get match %s: %w", id, err)
	}
	return match, nil
}

// ListMatches retrieves all matches
func (a *App) ListMatches(ctx context.Context) ([]models.Match, error) {
	matches, err := a.repo.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// UpdateMatch applies the fields present in req and replaces both teams when
// both names are given and resolve
func (a *App) UpdateMatch(ctx context.Context, id string, req UpdateMatchRequest) (*models.Match, error) {
	if req.Date.Present() && req.Date.Blank() {
		return nil, models.Invalid(msgRequired)
	}

	var home, away any
	if req.rewiresTeams() {
		home, away = neoutil.StringParam(req.HomeTeam), neoutil.StringParam(req.AwayTeam)
	}

	match, link, err := a.repo.UpdateMatch(ctx, id, req.props(), home, away)
	if err != nil {
		return nil, fmt.Errorf("update match %s: %w", id, err)
	}

	if link.Requested && !link.Linked {
		log.Warn().
			Str("id", id).
			Str("home", req.HomeTeam.Text()).
			Str("away", req.AwayTeam.Text()).
			Msg("team not found, match teams left unchanged")
	}
	log.Info().Str("id", id).Bool("teams_replaced", link.Linked).Msg("updated match")
	a.events.Emit(ctx, events.EntityMatch, events.OpUpdated, id, match)
	return match, nil
}

// DeleteMatch deletes a match by ID
func (a *App) DeleteMatch(ctx context.Context, id string) error {
	if err := a.repo.DeleteMatch(ctx, id); err != nil {
		return fmt.Errorf("delete match %s: %w", id, err)
	}

	log.Info().Str("id", id).Msg("deleted match")
	a.events.Emit(ctx, events.EntityMatch, events.OpDeleted, id, nil)
	return nil
}
