package matches

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/graphdb"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"
)

const (
	// teams are matched before CREATE so an unknown name creates nothing
	createMatchCypher = `MATCH (d:Tim {naziv: $domacin_naziv})
WITH d LIMIT 1
MATCH (g:Tim {naziv: $gost_naziv})
WITH d, g LIMIT 1
CREATE (u:Utakmica {
  datum: $datum,
  kolo: $kolo,
  stadion: $stadion,
  broj_gledatelja: $broj_gledatelja
})
MERGE (d)-[:DOMACIN]->(u)
MERGE (g)-[:GOST]->(u)
RETURN u, d.naziv AS domacin_naziv, g.naziv AS gost_naziv`

	withTeams = `OPTIONAL MATCH (d:Tim)-[:DOMACIN]->(u)
OPTIONAL MATCH (g:Tim)-[:GOST]->(u)
WITH u, head(collect(DISTINCT d)) AS d, head(collect(DISTINCT g)) AS g
`

	listMatchesCypher = `MATCH (u:Utakmica)
` + withTeams + `RETURN u, d.naziv AS domacin_naziv, g.naziv AS gost_naziv
ORDER BY u.datum DESC`

	getMatchCypher = `MATCH (u:Utakmica)
WHERE elementId(u) = $id
` + withTeams + `RETURN u, d.naziv AS domacin_naziv, g.naziv AS gost_naziv`

	updateMatchCypher = `MATCH (u:Utakmica)
WHERE elementId(u) = $id
SET u += $props
WITH u
` + withTeams + `RETURN u, d.naziv AS domacin_naziv, g.naziv AS gost_naziv, 0 AS rewired`

	// both edges are replaced together, and only when both new teams resolve
	updateMatchTeamsCypher = `MATCH (u:Utakmica)
WHERE elementId(u) = $id
SET u += $props
WITH u
CALL {
  WITH u
  OPTIONAL MATCH (dNew:Tim {naziv: $domacin_naziv})
  OPTIONAL MATCH (gNew:Tim {naziv: $gost_naziv})
  WITH u, head(collect(DISTINCT dNew)) AS dNew, head(collect(DISTINCT gNew)) AS gNew
  WHERE dNew IS NOT NULL AND gNew IS NOT NULL
  OPTIONAL MATCH (:Tim)-[rd:DOMACIN]->(u)
  DELETE rd
  WITH DISTINCT u, dNew, gNew
  OPTIONAL MATCH (:Tim)-[rg:GOST]->(u)
  DELETE rg
  WITH DISTINCT u, dNew, gNew
  MERGE (dNew)-[:DOMACIN]->(u)
  MERGE (gNew)-[:GOST]->(u)
  RETURN count(*) AS rewired
}
WITH u, rewired
OPTIONAL MATCH (d:Tim)-[:DOMACIN]->(u)
OPTIONAL MATCH (g:Tim)-[:GOST]->(u)
WITH u, rewired, head(collect(DISTINCT d)) AS d, head(collect(DISTINCT g)) AS g
RETURN u, d.naziv AS domacin_naziv, g.naziv AS gost_naziv, rewired`

	deleteMatchCypher = `MATCH (u:Utakmica)
WHERE elementId(u) = $id
DETACH DELETE u
RETURN count(*) AS deleted`
)

// Repository implements match data access operations
type Repository struct {
	db graphdb.SessionProvider
}

// NewRepository creates a new matches repository
func NewRepository(db graphdb.SessionProvider) *Repository {
	return &Repository{db: db}
}

// CreateMatch creates a match between two existing teams. It returns
// models.ErrTeamNotFound when either name does not resolve.
func (r *Repository) CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error) {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeWrite, createMatchCypher, req.params())
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	if len(records) == 0 {
		return nil, models.ErrTeamNotFound
	}

	match, ok := recordToModel(records[0])
	if !ok {
		return nil, fmt.Errorf("failed to create match: no node returned")
	}
	return match, nil
}

// GetMatch retrieves a match by element id
func (r *Repository) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeRead, getMatchCypher, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return firstMatch(records)
}

// ListMatches retrieves all matches, newest first
func (r *Repository) ListMatches(ctx context.Context) ([]models.Match, error) {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeRead, listMatchesCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	matches := make([]models.Match, 0, len(records))
	for _, rec := range records {
		if m, ok := recordToModel(rec); ok {
			matches = append(matches, *m)
		}
	}
	return matches, nil
}

// UpdateMatch merges props into the match. When home and away are both
// non-nil the team edges are replaced if both names resolve.
func (r *Repository) UpdateMatch(ctx context.Context, id string, props neoutil.Props, home, away any) (*models.Match, models.Link, error) {
	link := models.Link{Requested: home != nil && away != nil}

	cypher := updateMatchCypher
	params := map[string]any{"id": id, "props": map[string]any(props)}
	if link.Requested {
		cypher = updateMatchTeamsCypher
		params["domacin_naziv"] = home
		params["gost_naziv"] = away
	}

	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeWrite, cypher, params)
	if err != nil {
		return nil, link, fmt.Errorf("failed to update match: %w", err)
	}

	match, err := firstMatch(records)
	if err != nil {
		return nil, link, err
	}
	link.Linked = neoutil.IntFrom(records[0], "rewired") > 0
	return match, link, nil
}

// DeleteMatch detach-deletes a match
func (r *Repository) DeleteMatch(ctx context.Context, id string) error {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeWrite, deleteMatchCypher, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if len(records) == 0 || neoutil.IntFrom(records[0], "deleted") == 0 {
		return models.NotFound(msgNotFound)
	}
	return nil
}

func firstMatch(records []*neo4j.Record) (*models.Match, error) {
	if len(records) == 0 {
		return nil, models.NotFound(msgNotFound)
	}
	match, ok := recordToModel(records[0])
	if !ok {
		return nil, models.NotFound(msgNotFound)
	}
	return match, nil
}

func recordToModel(rec *neo4j.Record) (*models.Match, bool) {
	node, ok := neoutil.NodeFrom(rec, "u")
	if !ok {
		return nil, false
	}
	return &models.Match{
		ID:         node.ElementId,
		Date:       neoutil.Date(node.Props, "datum"),
		Round:      neoutil.Int(node.Props, "kolo"),
		Stadium:    neoutil.String(node.Props, "stadion"),
		Attendance: neoutil.Int(node.Props, "broj_gledatelja"),
		HomeTeam:   neoutil.StringFrom(rec, "domacin_naziv"),
		AwayTeam:   neoutil.StringFrom(rec, "gost_naziv"),
	}, true
}
