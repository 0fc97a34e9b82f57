package player

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/graphdb"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"
)

const (
	// the team link is optional: an unknown name leaves the player unlinked
	createPlayerCypher = `CREATE (i:Igrac {
  ime: $ime,
  prezime: $prezime,
  datum_rodenja: $datum_rodenja,
  nacionalnost: $nacionalnost,
  pozicija: $pozicija,
  broj_dresa: $broj_dresa
})
WITH i
OPTIONAL MATCH (t:Tim {naziv: $tim_naziv})
WITH i, head(collect(t)) AS t
FOREACH (_ IN CASE WHEN t IS NULL THEN [] ELSE [1] END | MERGE (i)-[:IGRA_ZA]->(t))
RETURN i, t.naziv AS tim_naziv`

	listPlayersCypher = `MATCH (i:Igrac)
OPTIONAL MATCH (i)-[:IGRA_ZA]->(t:Tim)
WITH i, head(collect(t)) AS t
RETURN i, t.naziv AS tim_naziv
ORDER BY i.prezime, i.ime`

	getPlayerCypher = `MATCH (i:Igrac)
WHERE elementId(i) = $id
OPTIONAL MATCH (i)-[:IGRA_ZA]->(t:Tim)
WITH i, head(collect(t)) AS t
RETURN i, t.naziv AS tim_naziv`

	updatePlayerCypher = `MATCH (i:Igrac)
WHERE elementId(i) = $id
SET i += $props
WITH i
OPTIONAL MATCH (i)-[:IGRA_ZA]->(t:Tim)
WITH i, head(collect(t)) AS t
RETURN i, t.naziv AS tim_naziv`

	// old link is removed first, then the new team is linked if it resolves
	updatePlayerTeamCypher = `MATCH (i:Igrac)
WHERE elementId(i) = $id
SET i += $props
WITH i
OPTIONAL MATCH (i)-[r:IGRA_ZA]->(:Tim)
DELETE r
WITH DISTINCT i
OPTIONAL MATCH (t:Tim {naziv: $tim_naziv})
WITH i, head(collect(t)) AS t
FOREACH (_ IN CASE WHEN t IS NULL THEN [] ELSE [1] END | MERGE (i)-[:IGRA_ZA]->(t))
RETURN i, t.naziv AS tim_naziv`

	deletePlayerCypher = `MATCH (i:Igrac)
WHERE elementId(i) = $id
DETACH DELETE i
RETURN count(*) AS deleted`
)

// Repository implements player data access operations
type Repository struct {
	db graphdb.SessionProvider
}

// NewRepository creates a new player repository
func NewRepository(db graphdb.SessionProvider) *Repository {
	return &Repository{db: db}
}

// CreatePlayer creates a player and links it to the named team when it exists
func (r *Repository) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, models.Link, error) {
	params := req.params()
	link := models.Link{Requested: params["tim_naziv"] != nil}

	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeWrite, createPlayerCypher, params)
	if err != nil {
		return nil, link, fmt.Errorf("failed to create player: %w", err)
	}
	if len(records) == 0 {
		return nil, link, fmt.Errorf("failed to create player: no node returned")
	}

	player, ok := recordToModel(records[0])
	if !ok {
		return nil, link, fmt.Errorf("failed to create player: no node returned")
	}
	link.Linked = player.TeamName != nil
	return player, link, nil
}

// GetPlayer retrieves a player by element id
func (r *Repository) GetPlayer(ctx context.Context, id string) (*models.Player, error) {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeRead, getPlayerCypher, map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return firstPlayer(records)
}

// ListPlayers retrieves all players ordered by last and first name
func (r *Repository) ListPlayers(ctx context.Context) ([]models.Player, error) {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeRead, listPlayersCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	players := make([]models.Player, 0, len(records))
	for _, rec := range records {
		if p, ok := recordToModel(rec); ok {
			players = append(players, *p)
		}
	}
	return players, nil
}

// UpdatePlayer merges props into the player. When relink is set the current
// team link is dropped and teamName, if it resolves, becomes the new one.
func (r *Repository) UpdatePlayer(ctx context.Context, id string, props neoutil.Props, relink bool, teamName any) (*models.Player, models.Link, error) {
	link := models.Link{Requested: relink && teamName != nil}

	cypher := updatePlayerCypher
	params := map[string]any{"id": id, "props": map[string]any(props)}
	if relink {
		cypher = updatePlayerTeamCypher
		params["tim_naziv"] = teamName
	}

	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeWrite, cypher, params)
	if err != nil {
		return nil, link, fmt.Errorf("failed to update player: %w", err)
	}

	player, err := firstPlayer(records)
	if err != nil {
		return nil, link, err
	}
	link.Linked = relink && player.TeamName != nil
	return player, link, nil
}

// DeletePlayer detach-deletes a player
func (r *Repository) DeletePlayer(ctx context.Context, id string) error {
	records, err := graphdb.Run(ctx, r.db, neo4j.AccessModeWrite, deletePlayerCypher, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if len(records) == 0 || neoutil.IntFrom(records[0], "deleted") == 0 {
		return models.NotFound(msgNotFound)
	}
	return nil
}

func firstPlayer(records []*neo4j.Record) (*models.Player, error) {
	if len(records) == 0 {
		return nil, models.NotFound(msgNotFound)
	}
	player, ok := recordToModel(records[0])
	if !ok {
		return nil, models.NotFound(msgNotFound)
	}
	return player, nil
}

// recordToModel converts an (i, tim_naziv) row to the domain model. Older
// data stored nationality and birth date under different keys.
func recordToModel(rec *neo4j.Record) (*models.Player, bool) {
	node, ok := neoutil.NodeFrom(rec, "i")
	if !ok {
		return nil, false
	}
	return &models.Player{
		ID:           node.ElementId,
		FirstName:    neoutil.String(node.Props, "ime"),
		LastName:     neoutil.String(node.Props, "prezime"),
		BirthDate:    neoutil.Date(node.Props, "datum_rodenja", "datum_rodjenja"),
		Nationality:  neoutil.String(node.Props, "nacionalnost", "drzavljanstvo"),
		Position:     neoutil.String(node.Props, "pozicija"),
		JerseyNumber: neoutil.Int(node.Props, "broj_dresa"),
		TeamName:     neoutil.StringFrom(rec, "tim_naziv"),
	}, true
}
