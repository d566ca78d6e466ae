package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/woodmeone/Buddy/pkg/domain"
	"github.com/woodmeone/Buddy/pkg/persona"
	"github.com/woodmeone/Buddy/pkg/remote"
	"github.com/woodmeone/Buddy/pkg/store"
)

var errBadRequest = errors.New("bad request")

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":          "ok",
		"version":         s.version,
		"time":            time.Now().UTC(),
		"personas_loaded": s.personas.Loaded(),
		"personas":        len(s.personas.Personas()),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listPersonasHandler returns all personas, loading them on the first call.
// An empty list is a valid result, failures are reported as errors.
func (s *Server) listPersonasHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.ensureLoaded(r.Context()); err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, s.personaList())
}

func (s *Server) reloadPersonasHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.personas.Reload(r.Context()); err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, s.personaList())
}

// personaList returns stored personas, never nil so an empty list is rendered as []
func (s *Server) personaList() []domain.Persona {
	list := s.personas.Personas()
	if list == nil {
		return []domain.Persona{}
	}
	return list
}

func (s *Server) currentPersonaHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.ensureLoaded(r.Context()); err != nil {
		renderFailure(w, r, err)
		return
	}
	p, ok := s.personas.Current()
	if !ok {
		renderError(w, r, errors.New("no persona selected"), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, p)
}

func (s *Server) createPersonaHandler(w http.ResponseWriter, r *http.Request) {
	var p domain.Persona
	if err := decodeJSON(r, &p); err != nil {
		renderFailure(w, r, err)
		return
	}
	if err := s.ensureLoaded(r.Context()); err != nil {
		renderFailure(w, r, err)
		return
	}
	p.ID = 0
	created, err := s.personas.Create(r.Context(), p)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, created)
}

// savePersonaHandler writes the whole persona, scalar fields and all subscriptions.
// Response is the persona as stored by the remote service, with new subscription ids.
func (s *Server) savePersonaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	var p domain.Persona
	if err = decodeJSON(r, &p); err != nil {
		renderFailure(w, r, err)
		return
	}
	if p.ID != 0 && p.ID != id {
		renderFailure(w, r, fmt.Errorf("%w: persona id %d doesn't match path id %d", errBadRequest, p.ID, id))
		return
	}
	p.ID = id

	saved, err := s.personas.Save(r.Context(), p)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, saved)
}

func (s *Server) deletePersonaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	if err := s.personas.Delete(r.Context(), id); err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int64{"deleted": id})
}

func (s *Server) selectPersonaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	if err = s.ensureLoaded(r.Context()); err != nil {
		renderFailure(w, r, err)
		return
	}
	p, err := s.personas.Switch(r.Context(), id)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, p)
}

// checkFeedsHandler fetches enabled rss subscriptions of the persona and returns previews
func (s *Server) checkFeedsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	if err = s.ensureLoaded(r.Context()); err != nil {
		renderFailure(w, r, err)
		return
	}
	p, err := s.personas.Get(id)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, s.feeds.CheckPersona(r.Context(), p))
}

func (s *Server) ensureLoaded(ctx context.Context) error {
	if s.personas.Loaded() {
		return nil
	}
	return s.personas.Load(ctx)
}

// errorResponse is the json body of a failed request
type errorResponse struct {
	Error   string `json:"error"`
	Partial bool   `json:"partial,omitempty"`
	Stage   string `json:"stage,omitempty"`
}

// renderFailure maps err to a status code and sends it as json
func renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Error: err.Error()}
	code := errorCode(err)

	var se *persona.SaveError
	if errors.As(err, &se) {
		resp.Stage = string(se.Stage)
		resp.Partial = se.Committed()
	}
	if code >= http.StatusInternalServerError {
		lgr.Printf("[WARN] %s %s failed: %v", r.Method, r.URL.Path, err)
	}
	renderJSON(w, r, code, resp)
}

func errorCode(err error) int {
	var statusErr *remote.StatusError
	switch {
	// partially committed save is reported as a gateway failure whatever the remote status was
	case errors.Is(err, persona.ErrPartialSave), errors.Is(err, persona.ErrStaleSnapshot):
		return http.StatusBadGateway
	case errors.Is(err, errBadRequest), errors.Is(err, domain.ErrNameRequired), errors.Is(err, persona.ErrNoID):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound), errors.Is(err, remote.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrSaveInProgress), errors.Is(err, remote.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, store.ErrNotLoaded):
		return http.StatusServiceUnavailable
	case errors.As(err, &statusErr) && (statusErr.Code == http.StatusBadRequest || statusErr.Code == http.StatusUnprocessableEntity):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", errBadRequest, r.PathValue("id"))
	}
	return id, nil
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: can't decode json: %w", errBadRequest, err)
	}
	return nil
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, errorResponse{Error: errMsg})
}
