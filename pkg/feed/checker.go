// Package feed checks rss subscriptions: fetches a feed and builds a short preview of its latest entries.
package feed

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/woodmeone/Buddy/pkg/domain"
)

const defaultSource = "RSS Source"

// Options for the checker
type Options struct {
	Timeout       time.Duration
	UserAgent     string
	MaxConcurrent int
	PreviewItems  int
}

// Checker fetches and parses feeds
type Checker struct {
	client        *http.Client
	userAgent     string
	policy        *bluemonday.Policy
	maxConcurrent int
	previewItems  int
}

// NewChecker creates a feed checker
func NewChecker(opts Options) *Checker {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 4
	}
	if opts.PreviewItems <= 0 {
		opts.PreviewItems = 5
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "buddy"
	}
	return &Checker{
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:     opts.UserAgent,
		policy:        bluemonday.StrictPolicy(),
		maxConcurrent: opts.MaxConcurrent,
		previewItems:  opts.PreviewItems,
	}
}

// Check fetches the feed and returns its newest entries with at least minViews views.
// Entries are sorted by publish time, newest first, entries without a time keep feed order at the end.
func (c *Checker) Check(ctx context.Context, feedURL string, minViews int) (Preview, error) {
	body, err := c.fetch(ctx, feedURL)
	if err != nil {
		return Preview{}, fmt.Errorf("fetch feed %s: %w", feedURL, err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return Preview{}, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	source := parsed.Title
	if source == "" {
		source = defaultSource
	}
	res := Preview{Title: parsed.Title, URL: feedURL, Total: len(parsed.Items), Items: []Item{}}
	items := make([]Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		item := c.item(entry, source)
		if item.Metrics.Views < minViews {
			res.Skipped++
			continue
		}
		items = append(items, item)
	}

	slices.SortStableFunc(items, func(a, b Item) int {
		switch {
		case a.Published.IsZero() && b.Published.IsZero():
			return 0
		case a.Published.IsZero():
			return 1
		case b.Published.IsZero():
			return -1
		}
		return cmp.Compare(b.Published.UnixNano(), a.Published.UnixNano())
	})
	if len(items) > c.previewItems {
		items = items[:c.previewItems]
	}
	res.Items = append(res.Items, items...)
	return res, nil
}

// CheckPersona checks all enabled rss subscriptions of the persona concurrently.
// Results are in subscription list order, a failed feed is reported in its result and doesn't stop others.
func (c *Checker) CheckPersona(ctx context.Context, p domain.Persona) []Result {
	subs := make([]domain.Subscription, 0, len(p.RSSList))
	for _, s := range p.RSSList {
		if s.Enabled && s.URL != "" {
			subs = append(subs, s)
		}
	}

	results := make([]Result, len(subs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrent)
	for i, s := range subs {
		g.Go(func() error {
			results[i].Subscription = s
			preview, err := c.Check(gctx, s.URL, int(s.ViewsThreshold))
			if err != nil {
				lgr.Printf("[WARN] feed %q of persona %d: %v", s.Name, p.ID, err)
				results[i].Err, results[i].Error = err, err.Error()
				return nil
			}
			for j := range preview.Items {
				if s.Name != "" {
					preview.Items[j].Author = s.Name
				}
			}
			results[i].Preview = &preview
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
	lgr.Printf("[DEBUG] checked %d feeds of persona %d", len(subs), p.ID)
	return results
}

func (c *Checker) item(entry *gofeed.Item, source string) Item {
	description := entry.Description
	if description == "" {
		description = entry.Content
	}
	item := Item{
		OriginalID: cmp.Or(entry.GUID, entry.Link),
		Title:      entry.Title,
		URL:        entry.Link,
		Summary:    cleanDescription(c.policy, description),
		Thumbnail:  extractThumbnail(description),
		Source:     source,
		Metrics:    extractMetrics(description),
	}
	if entry.Image != nil && item.Thumbnail == "" {
		item.Thumbnail = entry.Image.URL
	}
	if entry.Author != nil {
		item.Author = entry.Author.Name
	}
	if entry.PublishedParsed != nil {
		item.Published = *entry.PublishedParsed
	} else if entry.UpdatedParsed != nil {
		item.Published = *entry.UpdatedParsed
	}
	return item
}

// fetch retrieves content from a URL
func (c *Checker) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	addBrowserHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}
