package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodmeone/Buddy/pkg/domain"
	"github.com/woodmeone/Buddy/pkg/feed"
	"github.com/woodmeone/Buddy/pkg/persona"
	"github.com/woodmeone/Buddy/pkg/remote"
	"github.com/woodmeone/Buddy/pkg/store"
	"github.com/woodmeone/Buddy/server/mocks"
)

func loadedStore(list ...domain.Persona) *mocks.PersonaStoreMock {
	return &mocks.PersonaStoreMock{
		LoadedFunc:   func() bool { return true },
		PersonasFunc: func() []domain.Persona { return list },
		CurrentFunc: func() (domain.Persona, bool) {
			if len(list) == 0 {
				return domain.Persona{}, false
			}
			return list[0], true
		},
		GetFunc: func(id int64) (domain.Persona, error) {
			for _, p := range list {
				if p.ID == id {
					return p, nil
				}
			}
			return domain.Persona{}, fmt.Errorf("persona %d: %w", id, store.ErrNotFound)
		},
	}
}

func TestServer_listPersonas(t *testing.T) {
	t.Run("loads on first call", func(t *testing.T) {
		loaded := false
		personas := &mocks.PersonaStoreMock{
			LoadedFunc: func() bool { return loaded },
			LoadFunc: func(context.Context) error {
				loaded = true
				return nil
			},
			PersonasFunc: func() []domain.Persona { return []domain.Persona{{ID: 1, Name: "tech"}} },
		}
		srv := testServer(t, personas, nil, nil)

		w := call(t, srv, http.MethodGet, "/api/v1/personas", "")
		require.Equal(t, http.StatusOK, w.Code)
		list := decode[[]domain.Persona](t, w)
		require.Len(t, list, 1)
		assert.Equal(t, "tech", list[0].Name)

		call(t, srv, http.MethodGet, "/api/v1/personas", "")
		assert.Len(t, personas.LoadCalls(), 1)
	})

	t.Run("empty list is not an error", func(t *testing.T) {
		srv := testServer(t, loadedStore(), nil, nil)
		w := call(t, srv, http.MethodGet, "/api/v1/personas", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("load failure", func(t *testing.T) {
		personas := &mocks.PersonaStoreMock{
			LoadedFunc: func() bool { return false },
			LoadFunc:   func(context.Context) error { return errors.New("connection refused") },
		}
		srv := testServer(t, personas, nil, nil)
		w := call(t, srv, http.MethodGet, "/api/v1/personas", "")
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, decode[errorResponse](t, w).Error, "connection refused")
	})
}

func TestServer_currentPersona(t *testing.T) {
	srv := testServer(t, loadedStore(domain.Persona{ID: 3, Name: "a"}), nil, nil)
	w := call(t, srv, http.MethodGet, "/api/v1/personas/current", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(3), decode[domain.Persona](t, w).ID)

	srv = testServer(t, loadedStore(), nil, nil)
	w = call(t, srv, http.MethodGet, "/api/v1/personas/current", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_reloadPersonas(t *testing.T) {
	personas := loadedStore(domain.Persona{ID: 1, Name: "a"})
	personas.ReloadFunc = func(context.Context) error { return nil }
	srv := testServer(t, personas, nil, nil)

	w := call(t, srv, http.MethodPost, "/api/v1/personas/reload", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, personas.ReloadCalls(), 1)

	empty := loadedStore()
	empty.ReloadFunc = func(context.Context) error { return nil }
	w = call(t, testServer(t, empty, nil, nil), http.MethodPost, "/api/v1/personas/reload", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestServer_createPersona(t *testing.T) {
	personas := loadedStore()
	personas.CreateFunc = func(_ context.Context, p domain.Persona) (domain.Persona, error) {
		if p.Name == "" {
			return domain.Persona{}, domain.ErrNameRequired
		}
		p.ID = 9
		return p, nil
	}
	srv := testServer(t, personas, nil, nil)

	w := call(t, srv, http.MethodPost, "/api/v1/personas",
		`{"id":100,"name":"new","rssList":[{"name":"f","url":"http://f","viewsThreshold":"12"}]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, int64(9), decode[domain.Persona](t, w).ID)
	created := personas.CreateCalls()[0].P
	assert.Zero(t, created.ID, "client supplied id ignored")
	assert.Equal(t, domain.Threshold(12), created.RSSList[0].ViewsThreshold)

	w = call(t, srv, http.MethodPost, "/api/v1/personas", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, srv, http.MethodPost, "/api/v1/personas", `{bad json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_savePersona(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		saveErr  error
		wantCode int
		check    func(t *testing.T, resp errorResponse)
	}{
		{name: "ok", path: "/api/v1/personas/5", body: `{"name":"x"}`, wantCode: http.StatusOK},
		{name: "bad id", path: "/api/v1/personas/abc", body: `{"name":"x"}`, wantCode: http.StatusBadRequest},
		{name: "mismatched id", path: "/api/v1/personas/5", body: `{"id":6,"name":"x"}`, wantCode: http.StatusBadRequest},
		{name: "not found", path: "/api/v1/personas/5", body: `{"name":"x"}`,
			saveErr: &persona.SaveError{Stage: persona.StageScalars, PersonaID: 5, Err: &remote.StatusError{Code: 404}},
			wantCode: http.StatusNotFound},
		{name: "in progress", path: "/api/v1/personas/5", body: `{"name":"x"}`,
			saveErr: fmt.Errorf("persona 5: %w", store.ErrSaveInProgress), wantCode: http.StatusConflict},
		{name: "partial save", path: "/api/v1/personas/5", body: `{"name":"x"}`,
			saveErr:  &persona.SaveError{Stage: persona.StageSources, PersonaID: 5, Err: &remote.StatusError{Code: 500}},
			wantCode: http.StatusBadGateway,
			check: func(t *testing.T, resp errorResponse) {
				assert.True(t, resp.Partial)
				assert.Equal(t, "sources", resp.Stage)
			}},
		{name: "partial save on remote conflict", path: "/api/v1/personas/5", body: `{"name":"x"}`,
			saveErr:  &persona.SaveError{Stage: persona.StageSources, PersonaID: 5, Err: &remote.StatusError{Code: 409}},
			wantCode: http.StatusBadGateway,
			check: func(t *testing.T, resp errorResponse) {
				assert.True(t, resp.Partial)
				assert.Equal(t, "sources", resp.Stage)
			}},
		{name: "scalars failed", path: "/api/v1/personas/5", body: `{"name":"x"}`,
			saveErr:  &persona.SaveError{Stage: persona.StageScalars, PersonaID: 5, Err: errors.New("timeout")},
			wantCode: http.StatusBadGateway,
			check: func(t *testing.T, resp errorResponse) {
				assert.False(t, resp.Partial)
				assert.Equal(t, "scalars", resp.Stage)
			}},
		{name: "remote validation", path: "/api/v1/personas/5", body: `{"name":"x"}`,
			saveErr: &persona.SaveError{Stage: persona.StageScalars, PersonaID: 5, Err: &remote.StatusError{Code: 422}},
			wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			personas := loadedStore()
			personas.SaveFunc = func(_ context.Context, p domain.Persona) (domain.Persona, error) {
				if tt.saveErr != nil {
					return domain.Persona{}, tt.saveErr
				}
				return p, nil
			}
			srv := testServer(t, personas, nil, nil)

			w := call(t, srv, http.MethodPut, tt.path, tt.body)
			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, int64(5), personas.SaveCalls()[0].P.ID, "id taken from the path")
			}
			if tt.check != nil {
				tt.check(t, decode[errorResponse](t, w))
			}
		})
	}
}

func TestServer_selectPersona(t *testing.T) {
	personas := loadedStore(domain.Persona{ID: 1}, domain.Persona{ID: 2, Name: "two"})
	personas.SwitchFunc = func(_ context.Context, id int64) (domain.Persona, error) {
		if id != 2 {
			return domain.Persona{}, store.ErrNotFound
		}
		return domain.Persona{ID: 2, Name: "two"}, nil
	}
	srv := testServer(t, personas, nil, nil)

	w := call(t, srv, http.MethodPost, "/api/v1/personas/2/select", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "two", decode[domain.Persona](t, w).Name)

	w = call(t, srv, http.MethodPost, "/api/v1/personas/7/select", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_deletePersona(t *testing.T) {
	personas := loadedStore()
	personas.DeleteFunc = func(_ context.Context, id int64) error {
		if id == 4 {
			return fmt.Errorf("delete persona 4: %w", remote.ErrNotFound)
		}
		return nil
	}
	srv := testServer(t, personas, nil, nil)

	w := call(t, srv, http.MethodDelete, "/api/v1/personas/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":3}`, w.Body.String())

	w = call(t, srv, http.MethodDelete, "/api/v1/personas/4", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_checkFeeds(t *testing.T) {
	p := domain.Persona{ID: 1, RSSList: []domain.Subscription{{ID: 5, URL: "http://f", Enabled: true}}}
	feeds := &mocks.FeedCheckerMock{CheckPersonaFunc: func(_ context.Context, p domain.Persona) []feed.Result {
		return []feed.Result{{Subscription: p.RSSList[0], Preview: &feed.Preview{Title: "feed", Items: []feed.Item{}}}}
	}}
	srv := testServer(t, loadedStore(p), nil, feeds)

	w := call(t, srv, http.MethodGet, "/api/v1/personas/1/feeds", "")
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[[]feed.Result](t, w)
	require.Len(t, res, 1)
	assert.Equal(t, "feed", res[0].Preview.Title)
	assert.Equal(t, int64(1), feeds.CheckPersonaCalls()[0].P.ID)

	w = call(t, srv, http.MethodGet, "/api/v1/personas/2/feeds", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: x", errBadRequest), http.StatusBadRequest},
		{domain.ErrNameRequired, http.StatusBadRequest},
		{persona.ErrNoID, http.StatusBadRequest},
		{store.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("get: %w", &remote.StatusError{Code: 404}), http.StatusNotFound},
		{&remote.StatusError{Code: 409}, http.StatusConflict},
		{store.ErrSaveInProgress, http.StatusConflict},
		{store.ErrNotLoaded, http.StatusServiceUnavailable},
		{&remote.StatusError{Code: 400}, http.StatusBadRequest},
		{&remote.StatusError{Code: 503}, http.StatusBadGateway},
		{errors.New("dial tcp: connection refused"), http.StatusBadGateway},
		{&persona.SaveError{Stage: persona.StageSources, PersonaID: 1, Err: &remote.StatusError{Code: 409}},
			http.StatusBadGateway},
		{&persona.SaveError{Stage: persona.StageSources, PersonaID: 1, Err: &remote.StatusError{Code: 422}},
			http.StatusBadGateway},
		{&persona.SaveError{Stage: persona.StageRefetch, PersonaID: 1, Err: &remote.StatusError{Code: 404}},
			http.StatusBadGateway},
		{&persona.SaveError{Stage: persona.StageScalars, PersonaID: 1, Err: &remote.StatusError{Code: 422}},
			http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.code, errorCode(tt.err))
		})
	}
}
