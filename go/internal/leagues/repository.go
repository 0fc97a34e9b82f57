package leagues

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/graphdb"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"
)

const (
	createLeagueCypher = `CREATE (l:Liga {
  naziv: $naziv,
  drzava: $drzava,
  razina: $razina,
  godina_osnivanja: $godina_osnivanja
})
RETURN l`

	listLeaguesCypher = `MATCH (l:Liga)
RETURN l
ORDER BY l.naziv`

	getLeagueCypher = `MATCH (l:Liga)
WHERE elementId(l) = $id
RETURN l`

	updateLeagueCypher = `MATCH (l:Liga)
WHERE elementId(l) = $id
SET l += $props
RETURN l`

	deleteLeagueCypher = `MATCH (l:Liga)
WHERE elementId(l) = $id
DETACH DELETE l
RETURN count(*) AS deleted`
)

// Repository implements league data access operations
type Repository struct {
	db graphdb.SessionProvider
}

// NewRepository creates a new leagues repository
func NewRepository(db graphdb.SessionProvider) *Repository {
	return &Repository{
		db: db,
	}
}

// CreateLeague creates a new league
func (r *Repository) CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error) {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeWrite, createLeagueCypher, req.params())
	if err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	league, ok := firstNode(records)
	if !ok {
		return nil, fmt.Errorf("failed to create league: no node returned")
	}
	return league, nil
}

// GetLeague retrieves a league by element id
func (r *Repository) GetLeague(ctx context.Context, id string) (*models.League, error) {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeRead, getLeagueCypher, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	league, ok := firstNode(records)
	if !ok {
		return nil, models.NotFound(msgNotFound)
	}
	return league, nil
}

// ListLeagues retrieves all leagues ordered by name
func (r *Repository) ListLeagues(ctx context.Context) ([]models.League, error) {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeRead, listLeaguesCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	return r.nodesToModels(records), nil
}

// UpdateLeague merges props into an existing league
func (r *Repository) UpdateLeague(ctx context.Context, id string, props neoutil.Props) (*models.League, error) {
	params := map[string]any{"id": id, "props": map[string]any(props)}
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeWrite, updateLeagueCypher, params)
	if err != nil {
		return nil, fmt.Errorf("failed to update league: %w", err)
	}

	league, ok := firstNode(records)
	if !ok {
		return nil, models.NotFound(msgNotFound)
	}
	return league, nil
}

// DeleteLeague detach-deletes a league. Its seasons stay, unlinked.
func (r *Repository) DeleteLeague(ctx context.Context, id string) error {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeWrite, deleteLeagueCypher, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}
	if len(records) == 0 || neoutil.IntFrom(records[0], "deleted") == 0 {
		return models.NotFound(msgNotFound)
	}
	return nil
}

func firstNode(records []*neo4j.Record) (*models.League, bool) {
	if len(records) == 0 {
		return nil, false
	}
	return recordToModel(records[0])
}

func (r *Repository) nodesToModels(records []*neo4j.Record) []models.League {
	leagues := make([]models.League, 0, len(records))
	for _, rec := range records {
		if l, ok := recordToModel(rec); ok {
			leagues = append(leagues, *l)
		}
	}
	return leagues
}

func recordToModel(rec *neo4j.Record) (*models.League, bool) {
	node, ok := neoutil.NodeFrom(rec, "l")
	if !ok {
		return nil, false
	}
	return &models.League{
		ID:          node.ElementId,
		Name:        neoutil.String(node.Props, "naziv"),
		Country:     neoutil.String(node.Props, "drzava"),
		Level:       neoutil.Int(node.Props, "razina"),
		FoundedYear: neoutil.Int(node.Props, "godina_osnivanja"),
	}, true
}
