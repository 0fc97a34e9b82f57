package teams

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/saulfrancisco-ruizacevedo/gocypher"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/graphdb"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"
)

const (
	createTeamCypher = `CREATE (t:Tim {
  naziv: $naziv,
  grad: $grad,
  stadion: $stadion,
  kapacitet_stadiona: $kapacitet_stadiona,
  godina_osnivanja: $godina_osnivanja
})
RETURN t`

	listTeamsCypher = `MATCH (t:Tim) RETURN t ORDER BY t.naziv`

	updateTeamCypher = `MATCH (t:Tim {naziv: $naziv}) SET t += $props RETURN t`
)

// Repository implements team data access operations
type Repository struct {
	db graphdb.SessionProvider
}

// NewRepository creates a new teams repository
func NewRepository(db graphdb.SessionProvider) *Repository {
	return &Repository{db: db}
}

// CreateTeam creates a new team node. Names are not checked for uniqueness.
func (r *Repository) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeWrite, createTeamCypher, req.params())
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	node, ok := firstNode(records)
	if !ok {
		return nil, fmt.Errorf("failed to create team: no node returned")
	}
	return nodeToModel(node), nil
}

// GetTeam retrieves a team by name
func (r *Repository) GetTeam(ctx context.Context, name string) (*models.Team, error) {
	query, params, err := matchByName(name).Return("t").Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build team query: %w", err)
	}

	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeRead, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	node, ok := firstNode(records)
	if !ok {
		return nil, models.NotFound(msgNotFound)
	}
	return nodeToModel(node), nil
}

// ListTeams retrieves all teams ordered by name
func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeRead, listTeamsCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]models.Team, 0, len(records))
	for _, rec := range records {
		if node, ok := neoutil.NodeFrom(rec, "t"); ok {
			teams = append(teams, *nodeToModel(node))
		}
	}
	return teams, nil
}

// UpdateTeam merges props into the team called name
func (r *Repository) UpdateTeam(ctx context.Context, name string, props neoutil.Props) (*models.Team, error) {
	params := map[string]any{"naziv": name, "props": map[string]any(props)}

	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeWrite, updateTeamCypher, params)
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	node, ok := firstNode(records)
	if !ok {
		return nil, models.NotFound(msgNotFound)
	}
	return nodeToModel(node), nil
}

// DeleteTeam detach-deletes every team called name
func (r *Repository) DeleteTeam(ctx context.Context, name string) error {
	checkQuery, checkParams, err := matchByName(name).Return("t").Build()
	if err != nil {
		return fmt.Errorf("failed to build team query: %w", err)
	}
	deleteQuery, deleteParams, err := matchByName(name).DetachDelete("t").Build()
	if err != nil {
		return fmt.Errorf("failed to build team delete: %w", err)
	}

	sess, err := r.db.Session(ctx, neo4j.AccessModeWrite)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer graphdb.CloseSession(ctx, sess)

	records, err := sess.Run(ctx, checkQuery, checkParams)
	if err != nil {
		return fmt.Errorf("failed to get team: %w", err)
	}
	if len(records) == 0 {
		return models.NotFound(msgNotFound)
	}

	if _, err := sess.Run(ctx, deleteQuery, deleteParams); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func matchByName(name string) *gocypher.QueryBuilder {
	return gocypher.NewQueryBuilder().
		Match(gocypher.N("t", models.LabelTeam).WithProperties(map[string]interface{}{"naziv": name}))
}

func firstNode(records []*neo4j.Record) (dbtype.Node, bool) {
	if len(records) == 0 {
		return dbtype.Node{}, false
	}
	return neoutil.NodeFrom(records[0], "t")
}

// nodeToModel converts a team node to the domain model
func nodeToModel(node dbtype.Node) *models.Team {
	team := &models.Team{
		ID:              node.ElementId,
		City:            neoutil.String(node.Props, "grad"),
		Stadium:         neoutil.String(node.Props, "stadion"),
		StadiumCapacity: neoutil.Int(node.Props, "kapacitet_stadiona"),
		FoundedYear:     neoutil.Int(node.Props, "godina_osnivanja"),
	}
	if name := neoutil.String(node.Props, "naziv"); name != nil {
		team.Name = *name
	}
	return team
}
