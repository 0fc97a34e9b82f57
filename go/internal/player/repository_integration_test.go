//go:build integration

package player

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/graphdb/graphdbtest"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"
)

func TestIntegration_UpdatePlayerRelinksTeam(t *testing.T) {
	db := graphdbtest.StartNeo4j(t)
	ctx := context.Background()
	repo := NewRepository(db)

	graphdbtest.CreateNode(t, db, models.LabelTeam, map[string]any{"naziv": "Dinamo"})
	graphdbtest.CreateNode(t, db, models.LabelTeam, map[string]any{"naziv": "Hajduk"})

	created, link, err := repo.CreatePlayer(ctx, CreatePlayerRequest{
		FirstName: neoutil.Value("Luka"),
		LastName:  neoutil.Value("Modric"),
		TeamName:  neoutil.Value("Dinamo"),
	})
	require.NoError(t, err)
	require.True(t, link.Linked)

	moved, link, err := repo.UpdatePlayer(ctx, created.ID, neoutil.Props{}, true, "Hajduk")
	require.NoError(t, err)
	assert.True(t, link.Linked)
	assert.Equal(t, "Hajduk", *moved.TeamName)

	links := graphdbtest.Exec(t, db, `MATCH (i:Igrac)-[:IGRA_ZA]->(t:Tim) WHERE elementId(i) = $id RETURN count(t) AS n`,
		map[string]any{"id": created.ID})
	assert.Equal(t, int64(1), neoutil.IntFrom(links[0], "n"))

	unlinked, link, err := repo.UpdatePlayer(ctx, created.ID, neoutil.Props{}, true, "Nepostojeci")
	require.NoError(t, err)
	assert.True(t, link.Requested)
	assert.False(t, link.Linked)
	assert.Nil(t, unlinked.TeamName)

	cleared, _, err := repo.UpdatePlayer(ctx, created.ID, neoutil.Props{}, true, nil)
	require.NoError(t, err)
	assert.Nil(t, cleared.TeamName)
}
