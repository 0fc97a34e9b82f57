package player

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/events"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"
)

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, models.Link, error)
	GetPlayer(ctx context.Context, id string) (*models.Player, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id string, props neoutil.Props, relink bool, teamName any) (*models.Player, models.Link, error)
	DeletePlayer(ctx context.Context, id string) error
}

// App handles player business logic
type App struct {
	repo   PlayerRepository
	events *events.Emitter
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository, emitter *events.Emitter) *App {
	return &App{
		repo:   repo,
		events: emitter,
	}
}

// CreatePlayer creates a new player with validation
func (a *App) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	if req.FirstName.Blank() || req.LastName.Blank() {
		return nil, models.Invalid(msgRequired)
	}

	player, link, err := a.repo.CreatePlayer(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	logLink(player.ID, req.TeamName, link)
	log.Info().Str("id", player.ID).Msg("created player")
	a.events.Emit(ctx, events.EntityPlayer, events.OpCreated, player.ID, player)
	return player, nil
}

// GetPlayer retrieves a player by ID
func (a *App) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	player, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get player %s: %w", id, err)
	}
	return player, nil
}

// ListPlayers retrieves all players
func (a *App) ListPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := a.repo.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

// UpdatePlayer applies the fields present in req
func (a *App) UpdatePlayer(ctx context.Context, id string, req UpdatePlayerRequest) (*models.Player, error) {
	if err := a.validateUpdatePlayerRequest(req); err != nil {
		return nil, err
	}

	relink := req.TeamName.Present()
	player, link, err := a.repo.UpdatePlayer(ctx, id, req.props(), relink, neoutil.StringParam(req.TeamName))
	if err != nil {
		return nil, fmt.Errorf("update player %s: %w", id, err)
	}

	if relink {
		logLink(id, req.TeamName, link)
	}
	log.Info().Str("id", id).Msg("updated player")
	a.events.Emit(ctx, events.EntityPlayer, events.OpUpdated, id, player)
	return player, nil
}

// DeletePlayer deletes a player by ID
func (a *App) DeletePlayer(ctx context.Context, id string) error {
	if err := a.repo.DeletePlayer(ctx, id); err != nil {
		return fmt.Errorf("delete player %s: %w", id, err)
	}

	log.Info().Str("id", id).Msg("deleted player")
	a.events.Emit(ctx, events.EntityPlayer, events.OpDeleted, id, nil)
	return nil
}

func (a *App) validateUpdatePlayerRequest(req UpdatePlayerRequest) error {
	if req.FirstName.Present() && req.FirstName.Blank() {
		return models.Invalid(msgRequired)
	}
	if req.LastName.Present() && req.LastName.Blank() {
		return models.Invalid(msgRequired)
	}
	return nil
}

func logLink(id string, team neoutil.Field, link models.Link) {
	switch {
	case link.Linked:
		log.Debug().Str("id", id).Str("team", team.Text()).Msg("player linked to team")
	case link.Requested:
		log.Warn().Str("id", id).Str("team", team.Text()).Msg("team not found, player left without team")
	default:
		log.Debug().Str("id", id).Msg("player has no team")
	}
}
