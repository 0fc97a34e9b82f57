package teams

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/events"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, name string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	UpdateTeam(ctx context.Context, name string, props neoutil.Props) (*models.Team, error)
	DeleteTeam(ctx context.Context, name string) error
}

// App handles teams business logic
type App struct {
	repo   TeamsRepository
	events *events.Emitter
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository, emitter *events.Emitter) *App {
	return &App{
		repo:   repo,
		events: emitter,
	}
}

// CreateTeam creates a new team with validation
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	if err := a.validateCreateTeamRequest(req); err != nil {
		return nil, err
	}

	team, err := a.repo.CreateTeam(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}

	log.Info().Str("team", team.Name).Str("id", team.ID).Msg("created team")
	a.events.Emit(ctx, events.EntityTeam, events.OpCreated, team.Name, team)
	return team, nil
}

// GetTeam retrieves a team by name
func (a *App) GetTeam(ctx context.Context, name string) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get team %q: %w", name, err)
	}
	return team, nil
}

// ListTeams retrieves all teams
func (a *App) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := a.repo.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// UpdateTeam applies the fields present in req to the team called name
func (a *App) UpdateTeam(ctx context.Context, name string, req UpdateTeamRequest) (*models.Team, error) {
	props := req.props()
	if err := a.validateUpdateTeamRequest(req, props); err != nil {
		return nil, err
	}

	team, err := a.repo.UpdateTeam(ctx, name, props)
	if err != nil {
		return nil, fmt.Errorf("update team %q: %w", name, err)
	}

	log.Info().Str("team", name).Str("now", team.Name).Int("fields", len(props)).Msg("updated team")
	a.events.Emit(ctx, events.EntityTeam, events.OpUpdated, name, team)
	return team, nil
}

// DeleteTeam deletes a team by name
func (a *App) DeleteTeam(ctx context.Context, name string) error {
	if err := a.repo.DeleteTeam(ctx, name); err != nil {
		return fmt.Errorf("delete team %q: %w", name, err)
	}

	log.Info().Str("team", name).Msg("deleted team")
	a.events.Emit(ctx, events.EntityTeam, events.OpDeleted, name, nil)
	return nil
}

func (a *App) validateCreateTeamRequest(req CreateTeamRequest) error {
	if req.Name.Blank() || req.City.Blank() {
		return models.Invalid(msgRequired)
	}
	return nil
}

func (a *App) validateUpdateTeamRequest(req UpdateTeamRequest, props neoutil.Props) error {
	if len(props) == 0 {
		return models.Invalid(msgNoUpdate)
	}
	if req.NewName.Present() && req.NewName.Blank() {
		return models.Invalid(msgRequired)
	}
	if req.City.Present() && req.City.Blank() {
		return models.Invalid(msgRequired)
	}
	return nil
}
