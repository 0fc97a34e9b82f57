package matches

import (
	"context"
	"encoding/json"
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

func matchRow(id string, props map[string]any, home, away any, extra ...any) *neo4j.Record {
	kv := []any{
		"u", graphdbtest.Node(id, models.LabelMatch, props),
		"domacin_naziv", home,
		"gost_naziv", away,
	}
	return graphdbtest.Record(append(kv, extra...)...)
}

func TestCreateMatch(t *testing.T) {
	db := graphdbtest.New().Push(matchRow("4:u:1", map[string]any{
		"datum": "2024-08-24T20:00:00Z", "kolo": int64(3), "broj_gledatelja": int64(18750),
	}, "Dinamo Zagreb", "Osijek"))
	repo := NewRepository(db)

	var req CreateMatchRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"datum": "2024-08-24T20:00:00Z",
		"kolo": 3,
		"stadion": "Maksimir",
		"broj_gledatelja": 18750.0,
		"domacin_naziv": "Dinamo Zagreb",
		"gost_naziv": "Osijek"
	}`), &req))

	match, err := repo.CreateMatch(context.Background(), req)
	require.NoError(t, err)

	call := db.Calls()[0]
	assert.Equal(t, neo4j.AccessModeWrite, call.Mode)
	assert.Equal(t, int64(3), call.Params["kolo"])
	assert.Equal(t, int64(18750), call.Params["broj_gledatelja"])
	assert.Equal(t, "2024-08-24T20:00:00Z", call.Params["datum"])

	assert.Equal(t, "Dinamo Zagreb", *match.HomeTeam)
	assert.Equal(t, "Osijek", *match.AwayTeam)
	assert.Equal(t, int64(3), *match.Round)
}

func TestCreateMatchUnknownTeam(t *testing.T) {
	repo := NewRepository(graphdbtest.New())

	req := CreateMatchRequest{
		Date:     neoutil.Value("2024-08-24"),
		HomeTeam: neoutil.Value("Dinamo"),
		AwayTeam: neoutil.Value("Nepostojeći"),
	}
	_, err := repo.CreateMatch(context.Background(), req)

	assert.ErrorIs(t, err, models.ErrTeamNotFound)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetMatchNormalizesDates(t *testing.T) {
	kickoff := time.Date(2024, 8, 24, 20, 0, 0, 0, time.UTC)
	db := graphdbtest.New().Push(matchRow("4:u:1", map[string]any{
		"datum": dbtype.LocalDateTime(kickoff),
	}, "Hajduk", nil))
	repo := NewRepository(db)

	match, err := repo.GetMatch(context.Background(), "4:u:1")
	require.NoError(t, err)
	assert.Equal(t, "2024-08-24T20:00:00Z", *match.Date)
	assert.Nil(t, match.AwayTeam)
}

func TestListMatchesNewestFirst(t *testing.T) {
	db := graphdbtest.New().Push(
		matchRow("4:u:2", map[string]any{"datum": "2024-09-01"}, "Rijeka", "Hajduk"),
		matchRow("4:u:1", map[string]any{"datum": "2024-08-24"}, "Dinamo", "Osijek"),
	)
	repo := NewRepository(db)

	matches, err := repo.ListMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "4:u:2", matches[0].ID)
	assert.Contains(t, db.Calls()[0].Cypher, "ORDER BY u.datum DESC")
}

func TestUpdateMatchWithoutTeams(t *testing.T) {
	db := graphdbtest.New().Push(matchRow("4:u:1", map[string]any{"broj_gledatelja": int64(20000)}, "Dinamo", "Osijek", "rewired", int64(0)))
	repo := NewRepository(db)

	match, link, err := repo.UpdateMatch(context.Background(), "4:u:1", neoutil.Props{"broj_gledatelja": int64(20000)}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, models.Link{}, link)
	assert.Equal(t, int64(20000), *match.Attendance)
	call := db.Calls()[0]
	assert.Equal(t, updateMatchCypher, call.Cypher)
	assert.NotContains(t, call.Params, "domacin_naziv")
}

func TestUpdateMatchReplacesTeams(t *testing.T) {
	db := graphdbtest.New().Push(matchRow("4:u:1", nil, "Rijeka", "Hajduk", "rewired", int64(1)))
	repo := NewRepository(db)

	match, link, err := repo.UpdateMatch(context.Background(), "4:u:1", neoutil.Props{}, "Rijeka", "Hajduk")
	require.NoError(t, err)

	assert.Equal(t, models.Link{Requested: true, Linked: true}, link)
	assert.Equal(t, "Rijeka", *match.HomeTeam)
	call := db.Calls()[0]
	assert.Equal(t, updateMatchTeamsCypher, call.Cypher)
	assert.Equal(t, "Rijeka", call.Params["domacin_naziv"])
	assert.Equal(t, "Hajduk", call.Params["gost_naziv"])
}

func TestUpdateMatchUnresolvedTeamKeepsEdges(t *testing.T) {
	db := graphdbtest.New().Push(matchRow("4:u:1", nil, "Dinamo", "Osijek", "rewired", int64(0)))
	repo := NewRepository(db)

	match, link, err := repo.UpdateMatch(context.Background(), "4:u:1", neoutil.Props{}, "Dinamo", "Nema")
	require.NoError(t, err)

	assert.Equal(t, models.Link{Requested: true, Linked: false}, link)
	assert.Equal(t, "Osijek", *match.AwayTeam)
}

func TestUpdateMatchNotFound(t *testing.T) {
	repo := NewRepository(graphdbtest.New())

	_, _, err := repo.UpdateMatch(context.Background(), "4:u:404", neoutil.Props{}, nil, nil)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.EqualError(t, err, msgNotFound)
}

func TestDeleteMatch(t *testing.T) {
	db := graphdbtest.New().Push(graphdbtest.Record("deleted", int64(1)))
	repo := NewRepository(db)

	require.NoError(t, repo.DeleteMatch(context.Background(), "4:u:1"))
	assert.ErrorIs(t, repo.DeleteMatch(context.Background(), "4:u:1"), models.ErrNotFound)
}
