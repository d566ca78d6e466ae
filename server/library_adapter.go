package server

import (
	"context"
	"fmt"
	"time"

	"github.com/woodmeone/Buddy/pkg/domain"
	"github.com/woodmeone/Buddy/pkg/remote"
)

// LibraryRemote is the part of the remote client serving templates and topics
type LibraryRemote interface {
	ListTemplates(ctx context.Context) ([]remote.TemplateRecord, error)
	CreateTemplate(ctx context.Context, tmpl remote.TemplateRecord) (remote.TemplateRecord, error)
	UpdateTemplate(ctx context.Context, id int64, tmpl remote.TemplateRecord) (remote.TemplateRecord, error)
	DeleteTemplate(ctx context.Context, id int64) error
	ListTopics(ctx context.Context) ([]remote.TopicRecord, error)
	SaveTopic(ctx context.Context, topic remote.TopicRecord) (remote.TopicRecord, error)
	DeleteTopic(ctx context.Context, id int64) error
	DeleteTopics(ctx context.Context, ids []int64) (int, error)
}

// LibraryAdapter adapts the remote client to the Library interface, converting wire records to domain types
type LibraryAdapter struct {
	remote LibraryRemote
}

// NewLibraryAdapter creates a new library adapter
func NewLibraryAdapter(r LibraryRemote) *LibraryAdapter {
	return &LibraryAdapter{remote: r}
}

// ListTemplates returns all script templates, never nil
func (a *LibraryAdapter) ListTemplates(ctx context.Context) ([]domain.ScriptTemplate, error) {
	recs, err := a.remote.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	res := make([]domain.ScriptTemplate, 0, len(recs))
	for _, rec := range recs {
		res = append(res, templateFromRecord(rec))
	}
	return res, nil
}

// CreateTemplate adds a script template
func (a *LibraryAdapter) CreateTemplate(ctx context.Context, t domain.ScriptTemplate) (domain.ScriptTemplate, error) {
	rec, err := a.remote.CreateTemplate(ctx, templateToRecord(t))
	if err != nil {
		return domain.ScriptTemplate{}, fmt.Errorf("create template %q: %w", t.Name, err)
	}
	return templateFromRecord(rec), nil
}

// UpdateTemplate overwrites the template with t.ID
func (a *LibraryAdapter) UpdateTemplate(ctx context.Context, t domain.ScriptTemplate) (domain.ScriptTemplate, error) {
	rec, err := a.remote.UpdateTemplate(ctx, t.ID, templateToRecord(t))
	if err != nil {
		return domain.ScriptTemplate{}, fmt.Errorf("update template %d: %w", t.ID, err)
	}
	return templateFromRecord(rec), nil
}

// DeleteTemplate removes a script template
func (a *LibraryAdapter) DeleteTemplate(ctx context.Context, id int64) error {
	if err := a.remote.DeleteTemplate(ctx, id); err != nil {
		return fmt.Errorf("delete template %d: %w", id, err)
	}
	return nil
}

// ListTopics returns saved topics, never nil
func (a *LibraryAdapter) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	recs, err := a.remote.ListTopics(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	res := make([]domain.Topic, 0, len(recs))
	for _, rec := range recs {
		res = append(res, topicFromRecord(rec))
	}
	return res, nil
}

// SaveTopic adds a topic to the library. SavedAt is set to now if empty.
func (a *LibraryAdapter) SaveTopic(ctx context.Context, t domain.Topic) (domain.Topic, error) {
	if t.SavedAt.IsZero() {
		t.SavedAt = time.Now().UTC()
	}
	rec, err := a.remote.SaveTopic(ctx, remote.TopicRecord{
		Title: t.Title, Source: t.Source, Summary: t.Summary, URL: t.URL, OriginalID: t.OriginalID,
		SavedAt: remote.Timestamp{Time: t.SavedAt},
	})
	if err != nil {
		return domain.Topic{}, fmt.Errorf("save topic %q: %w", t.Title, err)
	}
	return topicFromRecord(rec), nil
}

// DeleteTopic removes a topic from the library
func (a *LibraryAdapter) DeleteTopic(ctx context.Context, id int64) error {
	if err := a.remote.DeleteTopic(ctx, id); err != nil {
		return fmt.Errorf("delete topic %d: %w", id, err)
	}
	return nil
}

// DeleteTopics removes topics by ids and returns how many were deleted
func (a *LibraryAdapter) DeleteTopics(ctx context.Context, ids []int64) (int, error) {
	n, err := a.remote.DeleteTopics(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("delete %d topics: %w", len(ids), err)
	}
	return n, nil
}

func templateFromRecord(rec remote.TemplateRecord) domain.ScriptTemplate {
	t := domain.ScriptTemplate{ID: rec.ID, Name: rec.Name, Template: rec.ContentTemplate, Type: rec.Type}
	if t.Type == "" {
		t.Type = domain.DefaultTemplateType
	}
	return t
}

func templateToRecord(t domain.ScriptTemplate) remote.TemplateRecord {
	return remote.TemplateRecord{Name: t.Name, ContentTemplate: t.Template, Type: t.Type}
}

func topicFromRecord(rec remote.TopicRecord) domain.Topic {
	return domain.Topic{ID: rec.ID, Title: rec.Title, Source: rec.Source, Summary: rec.Summary, URL: rec.URL,
		OriginalID: rec.OriginalID, SavedAt: rec.SavedAt.Time}
}
