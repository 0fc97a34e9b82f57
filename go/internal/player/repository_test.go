package player

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

func playerRow(id string, props map[string]any, team any) *neo4j.Record {
	return graphdbtest.Record(
		"i", graphdbtest.Node(id, models.LabelPlayer, props),
		"tim_naziv", team,
	)
}

func TestCreatePlayerLinksExistingTeam(t *testing.T) {
	db := graphdbtest.New().Push(playerRow("4:p:1", map[string]any{
		"ime": "Luka", "prezime": "Modrić", "broj_dresa": int64(10),
	}, "Dinamo"))
	repo := NewRepository(db)

	var req CreatePlayerRequest
	require.NoError(t, json.Unmarshal([]byte(`{"ime":"Luka","prezime":"Modrić","broj_dresa":10,"tim_naziv":"Dinamo"}`), &req))

	player, link, err := repo.CreatePlayer(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, models.Link{Requested: true, Linked: true}, link)
	require.NotNil(t, player.TeamName)
	assert.Equal(t, "Dinamo", *player.TeamName)
	assert.Equal(t, int64(10), *player.JerseyNumber)

	call := db.Calls()[0]
	assert.Equal(t, neo4j.AccessModeWrite, call.Mode)
	assert.Equal(t, int64(10), call.Params["broj_dresa"])
	assert.Equal(t, "Dinamo", call.Params["tim_naziv"])
	assert.Nil(t, call.Params["datum_rodenja"])
}

func TestCreatePlayerUnknownTeamStaysUnlinked(t *testing.T) {
	db := graphdbtest.New().Push(playerRow("4:p:2", map[string]any{"ime": "Ivan", "prezime": "Perišić"}, nil))
	repo := NewRepository(db)

	req := CreatePlayerRequest{
		FirstName: neoutil.Value("Ivan"),
		LastName:  neoutil.Value("Perišić"),
		TeamName:  neoutil.Value("Nepostojeći"),
	}
	player, link, err := repo.CreatePlayer(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, models.Link{Requested: true, Linked: false}, link)
	assert.Nil(t, player.TeamName)
}

func TestGetPlayerReadsLegacyKeys(t *testing.T) {
	born := dbtype.Date(time.Date(1985, 9, 9, 0, 0, 0, 0, time.UTC))
	db := graphdbtest.New().Push(playerRow("4:p:3", map[string]any{
		"ime":            "Luka",
		"prezime":        "Modrić",
		"drzavljanstvo":  "Hrvatska",
		"datum_rodjenja": born,
	}, nil))
	repo := NewRepository(db)

	player, err := repo.GetPlayer(context.Background(), "4:p:3")
	require.NoError(t, err)

	require.NotNil(t, player.Nationality)
	assert.Equal(t, "Hrvatska", *player.Nationality)
	require.NotNil(t, player.BirthDate)
	assert.Equal(t, "1985-09-09", *player.BirthDate)
	assert.Equal(t, "4:p:3", db.Calls()[0].Params["id"])
	assert.Equal(t, neo4j.AccessModeRead, db.Calls()[0].Mode)
}

func TestGetPlayerDropsUnlistedProperties(t *testing.T) {
	db := graphdbtest.New().Push(playerRow("4:p:5", map[string]any{
		"ime":            "Luka",
		"prezime":        "Modrić",
		"nacionalnost":   "Hrvatska",
		"drzavljanstvo":  "Hrvatska",
		"datum_rodjenja": "1985-09-09",
		"nadimak":        "Maestro",
	}, nil))

	player, err := NewRepository(db).GetPlayer(context.Background(), "4:p:5")
	require.NoError(t, err)

	data, err := json.Marshal(player)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, "Hrvatska", out["nacionalnost"])
	assert.Equal(t, "1985-09-09", out["datum_rodenja"])
	assert.NotContains(t, out, "nadimak")
	assert.NotContains(t, out, "drzavljanstvo")
	assert.NotContains(t, out, "datum_rodjenja")
}

func TestGetPlayerNotFound(t *testing.T) {
	repo := NewRepository(graphdbtest.New())

	_, err := repo.GetPlayer(context.Background(), "4:p:404")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.EqualError(t, err, msgNotFound)
}

func TestListPlayersOrder(t *testing.T) {
	db := graphdbtest.New().Push(
		playerRow("4:p:1", map[string]any{"ime": "Ante", "prezime": "Budimir"}, "Osijek"),
		playerRow("4:p:2", map[string]any{"ime": "Luka", "prezime": "Modrić"}, nil),
	)
	repo := NewRepository(db)

	players, err := repo.ListPlayers(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Osijek", *players[0].TeamName)
	assert.Nil(t, players[1].TeamName)
	assert.Contains(t, db.Calls()[0].Cypher, "ORDER BY i.prezime, i.ime")
}

func TestUpdatePlayerWithoutRelinkKeepsTeam(t *testing.T) {
	db := graphdbtest.New().Push(playerRow("4:p:1", map[string]any{"ime": "Luka"}, "Dinamo"))
	repo := NewRepository(db)

	player, link, err := repo.UpdatePlayer(context.Background(), "4:p:1", neoutil.Props{"pozicija": "MF"}, false, nil)
	require.NoError(t, err)

	assert.Equal(t, models.Link{}, link)
	assert.Equal(t, "Dinamo", *player.TeamName)

	call := db.Calls()[0]
	assert.Equal(t, updatePlayerCypher, call.Cypher)
	assert.NotContains(t, call.Params, "tim_naziv")
}

func TestUpdatePlayerRelink(t *testing.T) {
	db := graphdbtest.New().Push(playerRow("4:p:1", map[string]any{"ime": "Luka"}, "Hajduk"))
	repo := NewRepository(db)

	_, link, err := repo.UpdatePlayer(context.Background(), "4:p:1", neoutil.Props{}, true, "Hajduk")
	require.NoError(t, err)

	assert.Equal(t, models.Link{Requested: true, Linked: true}, link)
	call := db.Calls()[0]
	assert.Equal(t, updatePlayerTeamCypher, call.Cypher)
	assert.Equal(t, "Hajduk", call.Params["tim_naziv"])
}

func TestUpdatePlayerUnlink(t *testing.T) {
	db := graphdbtest.New().Push(playerRow("4:p:1", map[string]any{"ime": "Luka"}, nil))
	repo := NewRepository(db)

	player, link, err := repo.UpdatePlayer(context.Background(), "4:p:1", neoutil.Props{}, true, nil)
	require.NoError(t, err)

	assert.Equal(t, models.Link{}, link)
	assert.Nil(t, player.TeamName)
	assert.Equal(t, updatePlayerTeamCypher, db.Calls()[0].Cypher)
}

func TestUpdatePlayerNotFound(t *testing.T) {
	repo := NewRepository(graphdbtest.New())

	_, _, err := repo.UpdatePlayer(context.Background(), "4:p:404", neoutil.Props{"ime": "X"}, false, nil)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeletePlayer(t *testing.T) {
	db := graphdbtest.New().
		Push(graphdbtest.Record("deleted", int64(1))).
		Push(graphdbtest.Record("deleted", int64(0)))
	repo := NewRepository(db)

	require.NoError(t, repo.DeletePlayer(context.Background(), "4:p:1"))

	err := repo.DeletePlayer(context.Background(), "4:p:1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
