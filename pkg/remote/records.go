package remote

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/woodmeone/Buddy/pkg/sourcecfg"
)

// PersonaFields is the scalar part of a persona, body of create and update requests
type PersonaFields struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Depth        int      `json:"depth"`
	CustomPrompt string   `json:"custom_prompt"`
	Interests    []string `json:"interests"`
}

// PersonaRecord is a persona as returned by the remote service, with all its source configs
type PersonaRecord struct {
	ID int64 `json:"id"`
	PersonaFields
	SourceConfigs []sourcecfg.Envelope `json:"source_configs"`
	CreatedAt     Timestamp            `json:"created_at"`
	UpdatedAt     Timestamp            `json:"updated_at"`
}

// TemplateRecord is a script template in the remote service format
type TemplateRecord struct {
	ID              int64  `json:"id,omitempty"`
	Name            string `json:"name"`
	ContentTemplate string `json:"content_template"`
	Type            string `json:"type"`
}

// TopicRecord is a saved topic in the remote service format
type TopicRecord struct {
	ID         int64     `json:"id,omitempty"`
	Title      string    `json:"title"`
	Source     string    `json:"source"`
	Summary    string    `json:"summary"`
	URL        string    `json:"url"`
	OriginalID string    `json:"original_id"`
	SavedAt    Timestamp `json:"saved_at"`
}

// Timestamp accepts RFC3339 as well as naive ISO timestamps without zone, treated as UTC.
// Unparseable values are left zero, timestamps are informational only.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// UnmarshalJSON parses a json string in one of the supported layouts
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil || strings.TrimSpace(s) == "" {
		t.Time = time.Time{}
		return nil //nolint:nilerr // null or non-string timestamp is treated as absent
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			t.Time = ts.UTC()
			return nil
		}
	}
	t.Time = time.Time{}
	return nil
}

// MarshalJSON writes RFC3339 timestamp or null for zero time
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
