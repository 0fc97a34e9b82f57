package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/events"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/graphdb/graphdbtest"
	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/httpapi"
)

type fakeVerifier struct {
	err error
}

func (f fakeVerifier) Verify(context.Context) error { return f.err }

type routeRecorder struct {
	routes []string
}

func (r *routeRecorder) RecordRequest(_, route string, _ int, _ time.Duration) {
	r.routes = append(r.routes, route)
}

func newTestHandler(db *graphdbtest.Provider, verifier Verifier) (http.Handler, *routeRecorder) {
	rec := &routeRecorder{}
	emitter := events.NewEmitter(events.Nop{}, clockwork.NewFakeClock(), nil)
	return newHandler(serverDeps{
		services: setupServices(db, emitter),
		db:       verifier,
		recorder: rec,
		clock:    clockwork.NewFakeClock(),
	}), rec
}

func TestRootDescribesAPI(t *testing.T) {
	h, _ := newTestHandler(graphdbtest.New(), fakeVerifier{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, apiVersion, body["version"])
	assert.Equal(t, "/api/sezona", body["endpoints"].(map[string]any)["sezone"])
	assert.NotEmpty(t, rec.Header().Get(httpapi.RequestIDHeader))
}

func TestHealthAndReady(t *testing.T) {
	h, _ := newTestHandler(graphdbtest.New(), fakeVerifier{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyReportsUnreachableDatabase(t *testing.T) {
	h, _ := newTestHandler(graphdbtest.New(), fakeVerifier{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestEveryResourceIsMounted(t *testing.T) {
	h, routes := newTestHandler(graphdbtest.New(), fakeVerifier{})

	for _, prefix := range []string{"/api/tim", "/api/igrac", "/api/utakmica", "/api/liga", "/api/sezona"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, prefix, nil))
		assert.Equal(t, http.StatusOK, rec.Code, prefix)
		assert.Contains(t, rec.Body.String(), `"count":0`, prefix)
	}

	assert.Equal(t, []string{
		"GET /api/tim",
		"GET /api/igrac",
		"GET /api/utakmica",
		"GET /api/liga",
		"GET /api/sezona",
	}, routes.routes)
}

func TestUnknownPathIsNotFound(t *testing.T) {
	h, routes := newTestHandler(graphdbtest.New(), fakeVerifier{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nepostojece", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []string{"unmatched"}, routes.routes)
}
