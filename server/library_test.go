package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodmeone/Buddy/pkg/domain"
	"github.com/woodmeone/Buddy/pkg/remote"
	"github.com/woodmeone/Buddy/server/mocks"
)

func TestServer_templates(t *testing.T) {
	lib := &mocks.LibraryMock{
		ListTemplatesFunc: func(context.Context) ([]domain.ScriptTemplate, error) {
			return []domain.ScriptTemplate{{ID: 1, Name: "fast", Template: "# {{title}}", Type: "fast_paced"}}, nil
		},
		CreateTemplateFunc: func(_ context.Context, tmpl domain.ScriptTemplate) (domain.ScriptTemplate, error) {
			tmpl.ID = 2
			return tmpl, nil
		},
		UpdateTemplateFunc: func(_ context.Context, tmpl domain.ScriptTemplate) (domain.ScriptTemplate, error) {
			return tmpl, nil
		},
		DeleteTemplateFunc: func(context.Context, int64) error { return nil },
	}
	srv := testServer(t, nil, lib, nil)

	t.Run("list", func(t *testing.T) {
		w := call(t, srv, http.MethodGet, "/api/v1/templates", "")
		require.Equal(t, http.StatusOK, w.Code)
		list := decode[[]domain.ScriptTemplate](t, w)
		require.Len(t, list, 1)
		assert.Equal(t, "# {{title}}", list[0].Template)
	})

	t.Run("create with default type", func(t *testing.T) {
		w := call(t, srv, http.MethodPost, "/api/v1/templates", `{"name":"deep","template":"## {{topic}}"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created := decode[domain.ScriptTemplate](t, w)
		assert.Equal(t, int64(2), created.ID)
		assert.Equal(t, domain.DefaultTemplateType, created.Type)
	})

	t.Run("create invalid", func(t *testing.T) {
		w := call(t, srv, http.MethodPost, "/api/v1/templates", `{"name":"","template":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		w = call(t, srv, http.MethodPost, "/api/v1/templates", `{"name":"x","template":" "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update", func(t *testing.T) {
		w := call(t, srv, http.MethodPut, "/api/v1/templates/7", `{"name":"n","template":"t","type":"story"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(7), lib.UpdateTemplateCalls()[0].T.ID)
		assert.Equal(t, "story", decode[domain.ScriptTemplate](t, w).Type)
	})

	t.Run("delete", func(t *testing.T) {
		w := call(t, srv, http.MethodDelete, "/api/v1/templates/7", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(7), lib.DeleteTemplateCalls()[0].ID)
	})
}

func TestServer_topics(t *testing.T) {
	savedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	lib := &mocks.LibraryMock{
		ListTopicsFunc: func(context.Context) ([]domain.Topic, error) {
			return []domain.Topic{}, nil
		},
		SaveTopicFunc: func(_ context.Context, topic domain.Topic) (domain.Topic, error) {
			if topic.OriginalID == "dup" {
				return domain.Topic{}, fmt.Errorf("save topic: %w", &remote.StatusError{Code: http.StatusConflict, Message: "already saved"})
			}
			topic.ID, topic.SavedAt = 11, savedAt
			return topic, nil
		},
		DeleteTopicFunc:  func(context.Context, int64) error { return nil },
		DeleteTopicsFunc: func(_ context.Context, ids []int64) (int, error) { return len(ids) - 1, nil },
	}
	srv := testServer(t, nil, lib, nil)

	w := call(t, srv, http.MethodGet, "/api/v1/topics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = call(t, srv, http.MethodPost, "/api/v1/topics", `{"title":"AI news","originalId":"BV1","url":"http://v"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	topic := decode[domain.Topic](t, w)
	assert.Equal(t, int64(11), topic.ID)
	assert.Equal(t, savedAt, topic.SavedAt)

	w = call(t, srv, http.MethodPost, "/api/v1/topics", `{"title":"again","originalId":"dup"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(t, srv, http.MethodPost, "/api/v1/topics", `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, srv, http.MethodDelete, "/api/v1/topics/11", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = call(t, srv, http.MethodPost, "/api/v1/topics/batch-delete", `{"ids":[1,2,3]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":2}`, w.Body.String())
	assert.Equal(t, []int64{1, 2, 3}, lib.DeleteTopicsCalls()[0].IDs)

	w = call(t, srv, http.MethodPost, "/api/v1/topics/batch-delete", `{"ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
