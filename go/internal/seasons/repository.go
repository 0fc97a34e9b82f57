package seasons

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/graphdb"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"
)

const (
	createSeasonCypher = `CREATE (s:Sezona {
  naziv: $naziv,
  broj_kola: $broj_kola,
  pocetak: $pocetak,
  kraj: $kraj
})
WITH s
OPTIONAL MATCH (l:Liga)
WHERE elementId(l) = $liga_id
WITH s, head(collect(l)) AS l
FOREACH (_ IN CASE WHEN l IS NULL THEN [] ELSE [1] END | MERGE (l)-[:IMA_SEZONU]->(s))
RETURN s, elementId(l) AS liga_id, l.naziv AS liga_naziv`

	withLeague = `OPTIONAL MATCH (l:Liga)-[:IMA_SEZONU]->(s)
WITH s, head(collect(l)) AS l
RETURN s, elementId(l) AS liga_id, l.naziv AS liga_naziv`

	listSeasonsCypher = `MATCH (s:Sezona)
` + withLeague + `
ORDER BY s.naziv DESC`

	getSeasonCypher = `MATCH (s:Sezona)
WHERE elementId(s) = $id
` + withLeague

	updateSeasonCypher = `MATCH (s:Sezona)
WHERE elementId(s) = $id
SET s += $props
WITH s
` + withLeague

	updateSeasonLeagueCypher = `MATCH (s:Sezona)
WHERE elementId(s) = $id
SET s += $props
WITH s
OPTIONAL MATCH (:Liga)-[r:IMA_SEZONU]->(s)
DELETE r
WITH DISTINCT s
OPTIONAL MATCH (l:Liga)
WHERE elementId(l) = $liga_id
WITH s, head(collect(l)) AS l
FOREACH (_ IN CASE WHEN l IS NULL THEN [] ELSE [1] END | MERGE (l)-[:IMA_SEZONU]->(s))
RETURN s, elementId(l) AS liga_id, l.naziv AS liga_naziv`

	deleteSeasonCypher = `MATCH (s:Sezona)
WHERE elementId(s) = $id
DETACH DELETE s
RETURN count(*) AS deleted`
)

// Repository implements season data access operations
type Repository struct {
	db graphdb.SessionProvider
}

// NewRepository creates a new seasons repository
func NewRepository(db graphdb.SessionProvider) *Repository {
	return &Repository{db: db}
}

// CreateSeason creates a season and links it to the league when liga_id resolves
func (r *Repository) CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, models.Link, error) {
	params := req.params()
	link := models.Link{Requested: params["liga_id"] != nil}

	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeWrite, createSeasonCypher, params)
	if err != nil {
		return nil, link, fmt.Errorf("failed to create season: %w", err)
	}
	if len(records) == 0 {
		return nil, link, fmt.Errorf("failed to create season: no node returned")
	}

	season, ok := recordToModel(records[0])
	if !ok {
		return nil, link, fmt.Errorf("failed to create season: no node returned")
	}
	link.Linked = season.LeagueID != nil
	return season, link, nil
}

// GetSeason retrieves a season with its league
func (r *Repository) GetSeason(ctx context.Context, id string) (*models.Season, error) {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeRead, getSeasonCypher, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	return firstSeason(records)
}

// ListSeasons retrieves all seasons, latest name first
func (r *Repository) ListSeasons(ctx context.Context) ([]models.Season, error) {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeRead, listSeasonsCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}

	seasons := make([]models.Season, 0, len(records))
	for _, rec := range records {
		if s, ok := recordToModel(rec); ok {
			seasons = append(seasons, *s)
		}
	}
	return seasons, nil
}

// UpdateSeason merges props into the season. When relink is set the current
// league link is removed and leagueID, if it resolves, becomes the new one.
func (r *Repository) UpdateSeason(ctx context.Context, id string, props neoutil.Props, relink bool, leagueID any) (*models.Season, models.Link, error) {
	link := models.Link{Requested: relink && leagueID != nil}

	cypher := updateSeasonCypher
	params := map[string]any{"id": id, "props": map[string]any(props)}
	if relink {
		cypher = updateSeasonLeagueCypher
		params["liga_id"] = leagueID
	}

	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeWrite, cypher, params)
	if err != nil {
		return nil, link, fmt.Errorf("failed to update season: %w", err)
	}

	season, err := firstSeason(records)
	if err != nil {
		return nil, link, err
	}
	link.Linked = relink && season.LeagueID != nil
	return season, link, nil
}

// DeleteSeason detach-deletes a season
func (r *Repository) DeleteSeason(ctx context.Context, id string) error {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeWrite, deleteSeasonCypher, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete season: %w", err)
	}
	if len(records) == 0 || neoutil.IntFrom(records[0], "deleted") == 0 {
		return models.NotFound(msgNotFound)
	}
	return nil
}

func firstSeason(records []*neo4j.Record) (*models.Season, error) {
	if len(records) == 0 {
		return nil, models.NotFound(msgNotFound)
	}
	season, ok := recordToModel(records[0])
	if !ok {
		return nil, models.NotFound(msgNotFound)
	}
	return season, nil
}

func recordToModel(rec *neo4j.Record) (*models.Season, bool) {
	node, ok := neoutil.NodeFrom(rec, "s")
	if !ok {
		return nil, false
	}
	return &models.Season{
		ID:         node.ElementId,
		Name:       neoutil.String(node.Props, "naziv"),
		Rounds:     neoutil.Int(node.Props, "broj_kola"),
		Start:      neoutil.Date(node.Props, "pocetak"),
		End:        neoutil.Date(node.Props, "kraj"),
		LeagueID:   neoutil.StringFrom(rec, "liga_id"),
		LeagueName: neoutil.StringFrom(rec, "liga_naziv"),
	}, true
}
