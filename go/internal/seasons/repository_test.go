package seasons

import (
	"context"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/graphdb/graphdbtest"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/neoutil"
)

func seasonRow(id string, props map[string]any, leagueID, leagueName any) *neo4j.Record {
	return graphdbtest.Record(
		"s", graphdbtest.Node(id, models.LabelSeason, props),
		"liga_id", leagueID,
		"liga_naziv", leagueName,
	)
}

func TestCreateSeasonLinksLeague(t *testing.T) {
	db := graphdbtest.New().Push(seasonRow("4:s:1", map[string]any{
		"naziv": "2024/2025", "broj_kola": int64(36), "pocetak": "2024-07-20",
	}, "4:l:1", "Prva HNL"))
	repo := NewRepository(db)

	season, link, err := repo.CreateSeason(context.Background(), CreateSeasonRequest{
		Name:     neoutil.Value(" 2024/2025 "),
		Rounds:   neoutil.Value("36"),
		Start:    neoutil.Value("2024-07-20"),
		LeagueID: neoutil.Value("4:l:1"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.Link{Requested: true, Linked: true}, link)
	assert.Equal(t, "Prva HNL", *season.LeagueName)
	assert.Equal(t, int64(36), *season.Rounds)

	params := db.Calls()[0].Params
	assert.Equal(t, "2024/2025", params["naziv"])
	assert.Equal(t, int64(36), params["broj_kola"])
	assert.Equal(t, "4:l:1", params["liga_id"])
	assert.Nil(t, params["kraj"])
}

func TestCreateSeasonWithoutLeague(t *testing.T) {
	db := graphdbtest.New().Push(seasonRow("4:s:1", map[string]any{"naziv": "2023/2024"}, nil, nil))
	repo := NewRepository(db)

	season, link, err := repo.CreateSeason(context.Background(), CreateSeasonRequest{Name: neoutil.Value("2023/2024")})
	require.NoError(t, err)

	assert.Equal(t, models.Link{}, link)
	assert.Nil(t, season.LeagueID)
	assert.Nil(t, season.LeagueName)
}

func TestGetSeasonNormalizesDates(t *testing.T) {
	start := time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)
	db := graphdbtest.New().Push(seasonRow("4:s:1", map[string]any{
		"pocetak": dbtype.Date(start),
		"kraj":    "2025-05-25",
	}, nil, nil))
	repo := NewRepository(db)

	season, err := repo.GetSeason(context.Background(), "4:s:1")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-20", *season.Start)
	assert.Equal(t, "2025-05-25", *season.End)
}

func TestListSeasonsDescending(t *testing.T) {
	db := graphdbtest.New().Push(
		seasonRow("4:s:2", map[string]any{"naziv": "2024/2025"}, nil, nil),
		seasonRow("4:s:1", map[string]any{"naziv": "2023/2024"}, "4:l:1", "Prva HNL"),
	)
	repo := NewRepository(db)

	seasons, err := repo.ListSeasons(context.Background())
	require.NoError(t, err)
	require.Len(t, seasons, 2)
	assert.Equal(t, "Prva HNL", *seasons[1].LeagueName)
	assert.Contains(t, db.Calls()[0].Cypher, "ORDER BY s.naziv DESC")
}

func TestUpdateSeasonLeavesLeagueWhenAbsent(t *testing.T) {
	db := graphdbtest.New().Push(seasonRow("4:s:1", map[string]any{"broj_kola": int64(32)}, "4:l:1", "Prva HNL"))
	repo := NewRepository(db)

	season, link, err := repo.UpdateSeason(context.Background(), "4:s:1", neoutil.Props{"broj_kola": int64(32)}, false, nil)
	require.NoError(t, err)

	assert.Equal(t, models.Link{}, link)
	assert.Equal(t, "Prva HNL", *season.LeagueName)
	call := db.Calls()[0]
	assert.Equal(t, updateSeasonCypher, call.Cypher)
	assert.NotContains(t, call.Params, "liga_id")
}

func TestUpdateSeasonUnknownLeagueRemovesLink(t *testing.T) {
	db := graphdbtest.New().Push(seasonRow("4:s:1", nil, nil, nil))
	repo := NewRepository(db)

	season, link, err := repo.UpdateSeason(context.Background(), "4:s:1", neoutil.Props{}, true, "4:l:missing")
	require.NoError(t, err)

	assert.Equal(t, models.Link{Requested: true, Linked: false}, link)
	assert.Nil(t, season.LeagueName)
	call := db.Calls()[0]
	assert.Equal(t, updateSeasonLeagueCypher, call.Cypher)
	assert.Equal(t, "4:l:missing", call.Params["liga_id"])
}

func TestSeasonNotFound(t *testing.T) {
	repo := NewRepository(graphdbtest.New())
	ctx := context.Background()

	_, err := repo.GetSeason(ctx, "4:s:404")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, _, err = repo.UpdateSeason(ctx, "4:s:404", neoutil.Props{}, true, nil)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.EqualError(t, repo.DeleteSeason(ctx, "4:s:404"), msgNotFound)
}
