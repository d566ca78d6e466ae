package feed

import (
	"time"

	"github.com/woodmeone/Buddy/pkg/domain"
)

// Metrics are engagement counters published by video feed proxies in item descriptions
type Metrics struct {
	Views    int `json:"views,omitempty"`
	Likes    int `json:"likes,omitempty"`
	Comments int `json:"comments,omitempty"`
	Coins    int `json:"coins,omitempty"`
	Stars    int `json:"stars,omitempty"`
}

// Item is a single feed entry, shaped like a topic candidate
type Item struct {
	OriginalID string    `json:"originalId"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	Summary    string    `json:"summary"`
	Thumbnail  string    `json:"thumbnail,omitempty"`
	Author     string    `json:"author,omitempty"`
	Source     string    `json:"source"`
	Metrics    Metrics   `json:"metrics"`
	Published  time.Time `json:"publishedAt,omitzero"`
}

// Preview is the result of a feed check
type Preview struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Total   int    `json:"total"`   // entries in the feed
	Skipped int    `json:"skipped"` // entries below the views threshold
	Items   []Item `json:"items"`
}

// Result is a check of a single subscription. Err is set when the feed can't be fetched or parsed.
type Result struct {
	Subscription domain.Subscription `json:"subscription"`
	Preview      *Preview            `json:"preview,omitempty"`
	Err          error               `json:"-"`
	Error        string              `json:"error,omitempty"`
}
