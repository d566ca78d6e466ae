package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodmeone/Buddy/pkg/domain"
	"github.com/woodmeone/Buddy/server/mocks"
)

func testConfig(listen string) *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return listen, 30 * time.Second },
	}
}

// testServer creates a server with the given mocks, nil mocks are replaced by empty ones
func testServer(t *testing.T, personas *mocks.PersonaStoreMock, library *mocks.LibraryMock, feeds *mocks.FeedCheckerMock) *Server {
	t.Helper()
	if personas == nil {
		personas = &mocks.PersonaStoreMock{}
	}
	if library == nil {
		library = &mocks.LibraryMock{}
	}
	if feeds == nil {
		feeds = &mocks.FeedCheckerMock{}
	}
	return New(testConfig(":8080"), personas, feeds, library, "test", false)
}

// call sends a request through the router and returns the recorder
func call(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(":8080"), &mocks.PersonaStoreMock{}, &mocks.FeedCheckerMock{}, &mocks.LibraryMock{}, "1.0.0", true)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.True(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	srv := New(testConfig(fmt.Sprintf("127.0.0.1:%d", port)), &mocks.PersonaStoreMock{}, &mocks.FeedCheckerMock{},
		&mocks.LibraryMock{}, "1.0.0", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server didn't stop")
	}
}

func TestServer_statusHandler(t *testing.T) {
	personas := &mocks.PersonaStoreMock{
		LoadedFunc:   func() bool { return true },
		PersonasFunc: func() []domain.Persona { return []domain.Persona{{ID: 1}, {ID: 2}} },
	}
	srv := testServer(t, personas, nil, nil)

	w := call(t, srv, http.MethodGet, "/api/v1/status", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "buddy", w.Header().Get("App-Name"))

	resp := decode[map[string]any](t, w)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "test", resp["version"])
	assert.Equal(t, true, resp["personas_loaded"])
	assert.InDelta(t, 2, resp["personas"], 0)
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := testServer(t, nil, nil, nil)
	w := call(t, srv, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
