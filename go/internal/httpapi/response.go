// Package httpapi holds the JSON envelope shared by every resource and the
// HTTP middleware of the API.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AntonioEreiz332/sportska-natjecanja-app/go/internal/models"
)

// Envelope is a response body. Every body carries "ok".
type Envelope map[string]any

// WriteJSON sends v with the given status.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger(r).Error().Err(err).Msg("failed to encode response")
	}
}

// WriteOK sends {"ok": true, ...fields}.
func WriteOK(w http.ResponseWriter, r *http.Request, status int, fields Envelope) {
	body := Envelope{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	WriteJSON(w, r, status, body)
}

// WriteList sends {"ok": true, "count": n, key: items}.
func WriteList[T any](w http.ResponseWriter, r *http.Request, key string, items []T) {
	if items == nil {
		items = []T{}
	}
	WriteOK(w, r, http.StatusOK, Envelope{"count": len(items), key: items})
}

// WriteError maps err onto the API taxonomy: validation 400, not found 404,
// anything else 500 with the backend message passed through.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		WriteJSON(w, r, http.StatusBadRequest, Envelope{"ok": false, "message": ve.Message})
		return
	}

	var nf *models.NotFoundError
	if errors.As(err, &nf) {
		WriteJSON(w, r, http.StatusNotFound, Envelope{"ok": false, "message": nf.Message})
		return
	}

	logger(r).Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
	WriteJSON(w, r, http.StatusInternalServerError, Envelope{"ok": false, "error": rootCause(err).Error()})
}

// rootCause strips the wrapping added on the way up so clients see the
// database's own message.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// Decode reads a JSON request body into dst. An empty body decodes as {}.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return models.Invalid("Neispravan JSON u tijelu zahtjeva")
	}
	return nil
}

func logger(r *http.Request) *zerolog.Logger {
	if r == nil {
		return &log.Logger
	}
	l := zerolog.Ctx(r.Context())
	if l.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}
	return l
}
