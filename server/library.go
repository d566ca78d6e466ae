package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/woodmeone/Buddy/pkg/domain"
)

func (s *Server) listTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	templates, err := s.library.ListTemplates(r.Context())
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, templates)
}

func (s *Server) createTemplateHandler(w http.ResponseWriter, r *http.Request) {
	var t domain.ScriptTemplate
	if err := decodeJSON(r, &t); err != nil {
		renderFailure(w, r, err)
		return
	}
	if err := validateTemplate(&t); err != nil {
		renderFailure(w, r, err)
		return
	}
	t.ID = 0
	created, err := s.library.CreateTemplate(r.Context(), t)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updateTemplateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	var t domain.ScriptTemplate
	if err = decodeJSON(r, &t); err != nil {
		renderFailure(w, r, err)
		return
	}
	if err = validateTemplate(&t); err != nil {
		renderFailure(w, r, err)
		return
	}
	t.ID = id
	updated, err := s.library.UpdateTemplate(r.Context(), t)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteTemplateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	if err := s.library.DeleteTemplate(r.Context(), id); err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int64{"deleted": id})
}

func (s *Server) listTopicsHandler(w http.ResponseWriter, r *http.Request) {
	topics, err := s.library.ListTopics(r.Context())
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, topics)
}

// saveTopicHandler adds a topic to the library, a topic already saved is reported with 409
func (s *Server) saveTopicHandler(w http.ResponseWriter, r *http.Request) {
	var t domain.Topic
	if err := decodeJSON(r, &t); err != nil {
		renderFailure(w, r, err)
		return
	}
	if strings.TrimSpace(t.Title) == "" {
		renderFailure(w, r, fmt.Errorf("%w: topic title is required", errBadRequest))
		return
	}
	t.ID = 0
	saved, err := s.library.SaveTopic(r.Context(), t)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, saved)
}

func (s *Server) deleteTopicHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	if err := s.library.DeleteTopic(r.Context(), id); err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int64{"deleted": id})
}

func (s *Server) deleteTopicsHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []int64 `json:"ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		renderFailure(w, r, err)
		return
	}
	if len(req.IDs) == 0 {
		renderFailure(w, r, fmt.Errorf("%w: no topic ids", errBadRequest))
		return
	}
	deleted, err := s.library.DeleteTopics(r.Context(), req.IDs)
	if err != nil {
		renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]int{"deleted": deleted})
}

// validateTemplate requires a name and a body, empty type is set to the default one
func validateTemplate(t *domain.ScriptTemplate) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: template name is required", errBadRequest)
	}
	if strings.TrimSpace(t.Template) == "" {
		return fmt.Errorf("%w: template body is required", errBadRequest)
	}
	if t.Type == "" {
		t.Type = domain.DefaultTemplateType
	}
	return nil
}
