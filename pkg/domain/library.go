package domain

import "time"

// DefaultTemplateType used when a template has no type set
const DefaultTemplateType = "fast_paced"

// ScriptTemplate is a markdown script template with {{placeholders}}
type ScriptTemplate struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Template string `json:"template"`
	Type     string `json:"type"`
}

// Topic is an entry of the saved topics library
type Topic struct {
	ID         int64     `json:"id,omitempty"`
	Title      string    `json:"title"`
	Source     string    `json:"source"`
	Summary    string    `json:"summary"`
	URL        string    `json:"url"`
	OriginalID string    `json:"originalId"`
	SavedAt    time.Time `json:"savedAt"`
}
