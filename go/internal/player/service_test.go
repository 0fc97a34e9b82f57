package player

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/events"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/graphdb/graphdbtest"
)

type capturePublisher struct {
	mu      sync.Mutex
	events  []events.ChangeEvent
	emitter *events.Emitter
}

func (p *capturePublisher) Publish(_ context.Context, e events.ChangeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

// flush waits for events emitted so far to reach the publisher.
func (p *capturePublisher) flush(t *testing.T) {
	t.Helper()
	require.NoError(t, p.emitter.Flush(context.Background()))
}

func newTestServer(db *graphdbtest.Provider) (*http.ServeMux, *capturePublisher) {
	pub := &capturePublisher{}
	pub.emitter = events.NewEmitter(pub, clockwork.NewFakeClock(), nil)
	app := NewApp(NewRepository(db), pub.emitter)
	mux := http.NewServeMux()
	NewService(app).RegisterRoutes(mux)
	return mux, pub
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestCreatePlayerHandler(t *testing.T) {
	db := graphdbtest.New().Push(playerRow("4:p:1", map[string]any{"ime": "Luka", "prezime": "Modrić"}, nil))
	mux, pub := newTestServer(db)

	status, body := do(t, mux, http.MethodPost, "/api/igrac", `{"ime":"Luka","prezime":"Modrić","tim_naziv":"Nema"}`)

	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Igrač uspješno kreiran", body["message"])
	igrac := body["igrac"].(map[string]any)
	assert.Equal(t, "4:p:1", igrac["id"])
	v, ok := igrac["tim_naziv"]
	assert.True(t, ok)
	assert.Nil(t, v)
	_, ok = igrac["nacionalnost"]
	assert.True(t, ok)
	_, ok = igrac["datum_rodenja"]
	assert.True(t, ok)
	pub.flush(t)
	require.Len(t, pub.events, 1)
	assert.Equal(t, "4:p:1", pub.events[0].Key)
}

func TestCreatePlayerValidation(t *testing.T) {
	db := graphdbtest.New()
	mux, _ := newTestServer(db)

	status, body := do(t, mux, http.MethodPost, "/api/igrac", `{"ime":"Luka"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Ime i prezime su obavezna polja", body["message"])
	assert.Zero(t, db.Opened())
}

func TestListPlayersHandler(t *testing.T) {
	db := graphdbtest.New().Push(playerRow("4:p:1", map[string]any{"ime": "Luka", "prezime": "Modrić"}, "Dinamo"))
	mux, _ := newTestServer(db)

	status, body := do(t, mux, http.MethodGet, "/api/igrac/", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])
	first := body["igraci"].([]any)[0].(map[string]any)
	assert.Equal(t, "Dinamo", first["tim_naziv"])
}

func TestUpdatePlayerHandlerNullTeamUnlinks(t *testing.T) {
	db := graphdbtest.New().Push(playerRow("4:p:1", map[string]any{"ime": "Luka"}, nil))
	mux, _ := newTestServer(db)

	status, body := do(t, mux, http.MethodPut, "/api/igrac/4:p:1", `{"tim_naziv":null,"broj_dresa":""}`)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Igrač uspješno ažuriran", body["message"])

	call := db.Calls()[0]
	assert.Equal(t, updatePlayerTeamCypher, call.Cypher)
	assert.Nil(t, call.Params["tim_naziv"])
	props := call.Params["props"].(map[string]any)
	v, ok := props["broj_dresa"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestUpdatePlayerHandlerBlankName(t *testing.T) {
	db := graphdbtest.New()
	mux, _ := newTestServer(db)

	status, _ := do(t, mux, http.MethodPut, "/api/igrac/4:p:1", `{"prezime":""}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Empty(t, db.Calls())
}

func TestGetAndDeletePlayerNotFound(t *testing.T) {
	mux, pub := newTestServer(graphdbtest.New())

	status, body := do(t, mux, http.MethodGet, "/api/igrac/4:p:9", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Igrač nije pronađen", body["message"])

	status, _ = do(t, mux, http.MethodDelete, "/api/igrac/4:p:9", "")
	assert.Equal(t, http.StatusNotFound, status)
	pub.flush(t)
	assert.Empty(t, pub.events)
}
