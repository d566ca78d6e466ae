// Package remote is a JSON over HTTP client of the buddy service storing personas, their source configs,
// script templates and the topics library.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/woodmeone/Buddy/pkg/sourcecfg"
)

const maxErrorBody = 4096

// Client talks to the remote service
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// Config defines remote service location and request settings
type Config struct {
	BaseURL   string // including api prefix, e.g. http://localhost:8000/api/v1
	Timeout   time.Duration
	UserAgent string
}

// New makes a client for the remote service
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 2 * time.Minute
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "buddy"
	}
	return &Client{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: cfg.Timeout},
	}
}

// ListPersonas returns all personas with their source configs
func (c *Client) ListPersonas(ctx context.Context) ([]PersonaRecord, error) {
	var res []PersonaRecord
	if err := c.do(ctx, http.MethodGet, "/personas", nil, &res); err != nil {
		return nil, err
	}
	if res == nil {
		res = []PersonaRecord{}
	}
	return res, nil
}

// GetPersona returns a single persona
func (c *Client) GetPersona(ctx context.Context, id int64) (PersonaRecord, error) {
	var res PersonaRecord
	err := c.do(ctx, http.MethodGet, personaPath(id), nil, &res)
	return res, err
}

// CreatePersona creates a persona without source configs
func (c *Client) CreatePersona(ctx context.Context, fields PersonaFields) (PersonaRecord, error) {
	var res PersonaRecord
	err := c.do(ctx, http.MethodPost, "/personas", fields, &res)
	return res, err
}

// UpdatePersona overwrites all scalar fields of a persona
func (c *Client) UpdatePersona(ctx context.Context, id int64, fields PersonaFields) (PersonaRecord, error) {
	var res PersonaRecord
	err := c.do(ctx, http.MethodPut, personaPath(id), fields, &res)
	return res, err
}

// ReplaceSources replaces the whole source config collection of a persona with envs.
// Previous configs are deleted by the service and every written config gets a new id.
func (c *Client) ReplaceSources(ctx context.Context, id int64, envs []sourcecfg.Envelope) ([]sourcecfg.Envelope, error) {
	if envs == nil {
		envs = []sourcecfg.Envelope{}
	}
	var res []sourcecfg.Envelope
	if err := c.do(ctx, http.MethodPut, personaPath(id)+"/sources", envs, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// DeletePersona removes a persona
func (c *Client) DeletePersona(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, personaPath(id), nil, nil)
}

// ListTemplates returns all script templates
func (c *Client) ListTemplates(ctx context.Context) ([]TemplateRecord, error) {
	var res []TemplateRecord
	if err := c.do(ctx, http.MethodGet, "/script-templates", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// CreateTemplate adds a script template
func (c *Client) CreateTemplate(ctx context.Context, tmpl TemplateRecord) (TemplateRecord, error) {
	var res TemplateRecord
	err := c.do(ctx, http.MethodPost, "/script-templates", tmpl, &res)
	return res, err
}

// UpdateTemplate overwrites a script template
func (c *Client) UpdateTemplate(ctx context.Context, id int64, tmpl TemplateRecord) (TemplateRecord, error) {
	var res TemplateRecord
	err := c.do(ctx, http.MethodPut, "/script-templates/"+strconv.FormatInt(id, 10), tmpl, &res)
	return res, err
}

// DeleteTemplate removes a script template
func (c *Client) DeleteTemplate(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/script-templates/"+strconv.FormatInt(id, 10), nil, nil)
}

// ListTopics returns the saved topics library
func (c *Client) ListTopics(ctx context.Context) ([]TopicRecord, error) {
	var res []TopicRecord
	if err := c.do(ctx, http.MethodGet, "/topics", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// SaveTopic adds a topic to the library, ErrConflict if it is already there
func (c *Client) SaveTopic(ctx context.Context, topic TopicRecord) (TopicRecord, error) {
	var res TopicRecord
	err := c.do(ctx, http.MethodPost, "/topics", topic, &res)
	return res, err
}

// DeleteTopic removes a topic from the library
func (c *Client) DeleteTopic(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/topics/"+strconv.FormatInt(id, 10), nil, nil)
}

// DeleteTopics removes topics in one call and returns the number of deleted topics.
// The service may answer with a bare {"ok": true}, in this case all ids are counted as deleted.
func (c *Client) DeleteTopics(ctx context.Context, ids []int64) (int, error) {
	req := struct {
		IDs []int64 `json:"ids"`
	}{IDs: ids}
	var res struct {
		Deleted *int `json:"deleted"`
		OK      bool `json:"ok"`
	}
	if err := c.do(ctx, http.MethodPost, "/topics/batch-delete", req, &res); err != nil {
		return 0, err
	}
	switch {
	case res.Deleted != nil:
		return *res.Deleted, nil
	case res.OK:
		return len(ids), nil
	default:
		return 0, nil
	}
}

// do sends a json request and decodes json response into result if result is not nil
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	st := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	lgr.Printf("[DEBUG] %s %s -> %d in %v, request id %s", method, path, resp.StatusCode, time.Since(st), reqID)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// errorMessage extracts error details from a response body. Understands {"detail": ...},
// {"message": ...} and {"error": ...}, falls back to the trimmed body text.
func errorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	var msg struct {
		Detail  any    `json:"detail"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &msg) == nil {
		switch {
		case msg.Message != "":
			return msg.Message
		case msg.Error != "":
			return msg.Error
		}
		if s, ok := msg.Detail.(string); ok && s != "" {
			return s
		}
		if msg.Detail != nil {
			if d, err := json.Marshal(msg.Detail); err == nil {
				return string(d)
			}
		}
	}
	return strings.TrimSpace(string(data))
}

func personaPath(id int64) string {
	return "/personas/" + strconv.FormatInt(id, 10)
}
