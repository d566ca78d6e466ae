// Package server implements the local JSON API used by the buddy UI.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/woodmeone/Buddy/pkg/domain"
	"github.com/woodmeone/Buddy/pkg/feed"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/personas.go -pkg mocks -skip-ensure -fmt goimports . PersonaStore
//go:generate moq -out mocks/feeds.go -pkg mocks -skip-ensure -fmt goimports . FeedChecker
//go:generate moq -out mocks/library.go -pkg mocks -skip-ensure -fmt goimports . Library

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	personas PersonaStore
	feeds    FeedChecker
	library  Library
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// PersonaStore keeps personas and the current selection
type PersonaStore interface {
	Loaded() bool
	Load(ctx context.Context) error
	Reload(ctx context.Context) error
	Personas() []domain.Persona
	Current() (domain.Persona, bool)
	Get(id int64) (domain.Persona, error)
	Switch(ctx context.Context, id int64) (domain.Persona, error)
	Save(ctx context.Context, p domain.Persona) (domain.Persona, error)
	Create(ctx context.Context, p domain.Persona) (domain.Persona, error)
	Delete(ctx context.Context, id int64) error
}

// FeedChecker checks rss subscriptions of a persona
type FeedChecker interface {
	CheckPersona(ctx context.Context, p domain.Persona) []feed.Result
}

// Library provides script templates and saved topics
type Library interface {
	ListTemplates(ctx context.Context) ([]domain.ScriptTemplate, error)
	CreateTemplate(ctx context.Context, t domain.ScriptTemplate) (domain.ScriptTemplate, error)
	UpdateTemplate(ctx context.Context, t domain.ScriptTemplate) (domain.ScriptTemplate, error)
	DeleteTemplate(ctx context.Context, id int64) error
	ListTopics(ctx context.Context) ([]domain.Topic, error)
	SaveTopic(ctx context.Context, t domain.Topic) (domain.Topic, error)
	DeleteTopic(ctx context.Context, id int64) error
	DeleteTopics(ctx context.Context, ids []int64) (int, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, personas PersonaStore, feeds FeedChecker, library Library, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		personas: personas,
		feeds:    feeds,
		library:  library,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		WriteTimeout:      timeout * 5, // feed checks and saves talk to slow remotes
		IdleTimeout:       timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("buddy", "woodmeone", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /personas", s.listPersonasHandler)
		r.HandleFunc("POST /personas", s.createPersonaHandler)
		r.HandleFunc("GET /personas/current", s.currentPersonaHandler)
		r.HandleFunc("POST /personas/reload", s.reloadPersonasHandler)
		r.HandleFunc("PUT /personas/{id}", s.savePersonaHandler)
		r.HandleFunc("DELETE /personas/{id}", s.deletePersonaHandler)
		r.HandleFunc("POST /personas/{id}/select", s.selectPersonaHandler)
		r.HandleFunc("GET /personas/{id}/feeds", s.checkFeedsHandler)

		r.HandleFunc("GET /templates", s.listTemplatesHandler)
		r.HandleFunc("POST /templates", s.createTemplateHandler)
		r.HandleFunc("PUT /templates/{id}", s.updateTemplateHandler)
		r.HandleFunc("DELETE /templates/{id}", s.deleteTemplateHandler)

		r.HandleFunc("GET /topics", s.listTopicsHandler)
		r.HandleFunc("POST /topics", s.saveTopicHandler)
		r.HandleFunc("POST /topics/batch-delete", s.deleteTopicsHandler)
		r.HandleFunc("DELETE /topics/{id}", s.deleteTopicHandler)
	})
}
