package web

// handlers_common.go holds request parsing and response helpers shared by
// every handler.

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxJSONBody caps request bodies of the JSON endpoints.
const maxJSONBody = 1 << 20

var errEmptyBody = &core.DomainError{Kind: core.ErrInvalidInput, Msg: "Request body is required"}

// writeJSON encodes v as a 200 JSON response.
func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

// writeJSONStatus encodes v as JSON with the given status. Encoding errors
// are only logged since the header is already sent.
func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}

// decodeJSON reads a JSON request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return badRequest("Invalid request body: " + err.Error())
	}
	return nil
}

// currentUser returns the id RequireUser stored in the context.
func currentUser(r *http.Request) uuid.UUID {
	id, _ := core.UserIDFromContext(r.Context())
	return id
}

// pathUUID parses a uuid path parameter. A malformed id cannot name an
// existing record, so it fails with notFound.
func pathUUID(r *http.Request, name string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}

// queryUUID parses an optional uuid query parameter.
func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, badRequest("Invalid " + name)
	}
	return &id, nil
}

// queryDate parses an optional YYYY-MM-DD query parameter.
func queryDate(r *http.Request, name string) (*core.Date, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil, nil
	}
	d, err := core.ParseISODate(v)
	if err != nil {
		return nil, badRequest("Invalid " + name + ", expected YYYY-MM-DD")
	}
	return &d, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(r *http.Request, name string) (*bool, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, badRequest("Invalid " + name + ", expected true or false")
	}
	return &b, nil
}

// queryInt parses an integer query parameter with a default value.
func queryInt(r *http.Request, name string, defaultVal int) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, badRequest("Invalid " + name + ", expected an integer")
	}
	return i, nil
}

// formBool reads a multipart form checkbox. Absent means false.
func formBool(r *http.Request, name string) (bool, error) {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, badRequest("Invalid " + name + ", expected true or false")
	}
	return b, nil
}
