//go:build integration

package seasons

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/graphdb/graphdbtest"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"
)

func TestIntegration_UpdateSeasonMovesLeague(t *testing.T) {
	db := graphdbtest.StartNeo4j(t)
	ctx := context.Background()
	repo := NewRepository(db)

	hnl := graphdbtest.CreateNode(t, db, models.LabelLeague, map[string]any{"naziv": "HNL"})
	prva := graphdbtest.CreateNode(t, db, models.LabelLeague, map[string]any{"naziv": "Prva NL"})

	created, link, err := repo.CreateSeason(ctx, CreateSeasonRequest{
		Name:     neoutil.Value("2024/25"),
		LeagueID: neoutil.Value(hnl),
	})
	require.NoError(t, err)
	require.True(t, link.Linked)
	assert.Equal(t, hnl, *created.LeagueID)

	moved, link, err := repo.UpdateSeason(ctx, created.ID, neoutil.Props{"broj_kola": int64(33)}, true, prva)
	require.NoError(t, err)
	assert.True(t, link.Linked)
	assert.Equal(t, prva, *moved.LeagueID)
	assert.Equal(t, "Prva NL", *moved.LeagueName)

	owners := graphdbtest.Exec(t, db, `MATCH (l:Liga)-[:IMA_SEZONU]->(s:Sezona) WHERE elementId(s) = $id RETURN count(l) AS n`,
		map[string]any{"id": created.ID})
	assert.Equal(t, int64(1), neoutil.IntFrom(owners[0], "n"))

	orphaned, link, err := repo.UpdateSeason(ctx, created.ID, neoutil.Props{}, true, "4:missing:0")
	require.NoError(t, err)
	assert.False(t, link.Linked)
	assert.Nil(t, orphaned.LeagueID)
}
