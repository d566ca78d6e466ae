package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrNameRequired returned when a persona has no name
var ErrNameRequired = errors.New("persona name is required")

// Persona is a named content-style profile with its source subscriptions grouped by kind.
// Field names follow the UI shape; the remote service uses snake case and a flat source list.
type Persona struct {
	ID           int64          `json:"id,omitempty"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Depth        int            `json:"depth"` // analysis depth, 1-10
	CustomPrompt string         `json:"customPrompt"`
	Interests    []string       `json:"interests"`
	BilibiliList []Subscription `json:"bilibiliList"`
	RSSList      []Subscription `json:"rssList"`
	HotSources   []Subscription `json:"hotSources"`
	CreatedAt    time.Time      `json:"createdAt,omitzero"`
	UpdatedAt    time.Time      `json:"updatedAt,omitzero"`
}

// Validate checks the only rule enforced client side, the rest is up to the remote service
func (p *Persona) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// IsNew returns true for personas not saved to the remote service yet
func (p *Persona) IsNew() bool {
	return p.ID == 0
}

// SubscriptionCount returns the number of subscriptions across all kinds
func (p *Persona) SubscriptionCount() int {
	return len(p.BilibiliList) + len(p.RSSList) + len(p.HotSources)
}

// List returns subscriptions of the given kind, nil for unrecognized kinds
func (p *Persona) List(kind SourceKind) []Subscription {
	switch kind {
	case KindBilibiliUser:
		return p.BilibiliList
	case KindRSSFeed:
		return p.RSSList
	case KindHotList:
		return p.HotSources
	default:
		return nil
	}
}
