// Package store keeps the personas known to the client and the currently selected one.
// Store is created once and shared, all state changes go through its methods.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/woodmeone/Buddy/pkg/domain"
	"github.com/woodmeone/Buddy/pkg/persona"
)

//go:generate moq -out mocks/syncer.go -pkg mocks -skip-ensure -fmt goimports . Syncer
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . Settings

var (
	// ErrNotFound returned for a persona id not in the store
	ErrNotFound = errors.New("persona not found")
	// ErrSaveInProgress returned when the same persona is already being saved
	ErrSaveInProgress = errors.New("persona save already in progress")
	// ErrNotLoaded returned by operations requiring a loaded store
	ErrNotLoaded = errors.New("personas not loaded")
)

// errPermanent is matched by permanentError and stops load retries
var errPermanent = errors.New("permanent error")

// permanentError wraps a failure not worth another attempt, like a client side http status
type permanentError struct {
	err error
}

func (e *permanentError) Error() string        { return e.err.Error() }
func (e *permanentError) Unwrap() error        { return e.err }
func (e *permanentError) Is(target error) bool { return target == errPermanent }

// Syncer persists personas on the remote service
type Syncer interface {
	List(ctx context.Context) ([]domain.Persona, error)
	Get(ctx context.Context, id int64) (domain.Persona, error)
	Save(ctx context.Context, p domain.Persona) (domain.Persona, error)
	Create(ctx context.Context, p domain.Persona) (domain.Persona, error)
	Delete(ctx context.Context, id int64) error
}

// Settings is a local storage for numeric settings
type Settings interface {
	GetInt64(ctx context.Context, key string) (int64, error)
	SetInt64(ctx context.Context, key string, v int64) error
}

// Options defines retries of the initial load
type Options struct {
	LoadRetries int
	RetryDelay  time.Duration
}

// Store is the in-memory persona list with the current selection
type Store struct {
	syncer   Syncer
	settings Settings
	opts     Options

	loadMu sync.Mutex // serializes Load and Reload

	mu        sync.RWMutex
	personas  []domain.Persona
	currentID int64
	loaded    bool
	saving    map[int64]struct{}
}

// New makes an empty, not loaded store
func New(syncer Syncer, settings Settings, opts Options) *Store {
	if opts.LoadRetries <= 0 {
		opts.LoadRetries = 1
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 500 * time.Millisecond
	}
	return &Store{syncer: syncer, settings: settings, opts: opts, saving: map[int64]struct{}{}}
}

// Load fetches personas once. Does nothing if already loaded. On failure the store stays not loaded.
func (s *Store) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if s.Loaded() {
		return nil
	}
	return s.fetch(ctx)
}

// Reload re-fetches personas regardless of the loaded state
func (s *Store) Reload(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	return s.fetch(ctx)
}

func (s *Store) fetch(ctx context.Context) error {
	var list []domain.Persona
	retrier := repeater.NewBackoff(s.opts.LoadRetries, s.opts.RetryDelay, repeater.WithMaxDelay(10*time.Second))
	err := retrier.Do(ctx, func() error {
		var e error
		list, e = s.syncer.List(ctx)
		if e == nil {
			return nil
		}
		lgr.Printf("[WARN] can't list personas: %v", e)
		var t interface{ Temporary() bool }
		if errors.As(e, &t) && !t.Temporary() {
			return &permanentError{err: e}
		}
		return e
	}, errPermanent)
	if err != nil {
		return fmt.Errorf("load personas: %w", err)
	}

	s.mu.RLock()
	prevID := s.currentID
	s.mu.RUnlock()

	if prevID == 0 {
		if prevID, err = s.settings.GetInt64(ctx, domain.SettingLastPersonaID); err != nil {
			lgr.Printf("[WARN] can't read last persona id: %v", err)
		}
	}

	s.mu.Lock()
	s.personas = list
	s.currentID = pickCurrent(list, prevID)
	s.loaded = true
	currentID := s.currentID
	s.mu.Unlock()

	lgr.Printf("[INFO] loaded %d personas, current %d", len(list), currentID)
	if currentID != prevID && currentID != 0 {
		s.persistCurrent(ctx, currentID)
	}
	return nil
}

// pickCurrent keeps id if it's in the list, otherwise selects the first persona, 0 for an empty list
func pickCurrent(list []domain.Persona, id int64) int64 {
	if len(list) == 0 {
		return 0
	}
	if id != 0 && indexOf(list, id) >= 0 {
		return id
	}
	return list[0].ID
}

func indexOf(list []domain.Persona, id int64) int {
	return slices.IndexFunc(list, func(p domain.Persona) bool { return p.ID == id })
}

// Loaded reports whether personas were fetched at least once
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Personas returns a copy of the persona list
func (s *Store) Personas() []domain.Persona {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.Persona, len(s.personas))
	copy(res, s.personas)
	return res
}

// Get returns a persona by id
func (s *Store) Get(id int64) (domain.Persona, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.personas, id); i >= 0 {
		return s.personas[i], nil
	}
	return domain.Persona{}, fmt.Errorf("persona %d: %w", id, ErrNotFound)
}

// Current returns the selected persona, false if nothing is selected
func (s *Store) Current() (domain.Persona, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.personas, s.currentID); i >= 0 && s.currentID != 0 {
		return s.personas[i], true
	}
	return domain.Persona{}, false
}

// Switch selects persona id and remembers it locally
func (s *Store) Switch(ctx context.Context, id int64) (domain.Persona, error) {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return domain.Persona{}, ErrNotLoaded
	}
	i := indexOf(s.personas, id)
	if i < 0 {
		s.mu.Unlock()
		return domain.Persona{}, fmt.Errorf("switch to persona %d: %w", id, ErrNotFound)
	}
	s.currentID = id
	p := s.personas[i]
	s.mu.Unlock()

	s.persistCurrent(ctx, id)
	return p, nil
}

// Save writes the persona to the remote service and replaces the stored entry with the saved state.
// Saves of the same persona are not allowed to overlap.
func (s *Store) Save(ctx context.Context, p domain.Persona) (domain.Persona, error) {
	if err := s.begin(p.ID); err != nil {
		return domain.Persona{}, err
	}
	defer s.end(p.ID)

	saved, err := s.syncer.Save(ctx, p)
	if err != nil {
		if errors.Is(err, persona.ErrPartialSave) || errors.Is(err, persona.ErrStaleSnapshot) {
			s.refresh(ctx, p.ID)
		}
		return domain.Persona{}, err
	}
	s.put(saved)
	return saved, nil
}

// Create makes a new persona and adds it to the store. The first persona becomes the current one.
func (s *Store) Create(ctx context.Context, p domain.Persona) (domain.Persona, error) {
	created, err := s.syncer.Create(ctx, p)
	if err != nil {
		var se *persona.SaveError
		if errors.As(err, &se) && se.Committed() {
			s.refresh(ctx, se.PersonaID)
		}
		return domain.Persona{}, err
	}
	s.put(created)
	return created, nil
}

// Delete removes a persona. When the current persona is deleted the first remaining one is selected.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.begin(id); err != nil {
		return err
	}
	defer s.end(id)

	if err := s.syncer.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.personas = slices.DeleteFunc(slices.Clone(s.personas), func(p domain.Persona) bool { return p.ID == id })
	changed := false
	if s.currentID == id {
		s.currentID = pickCurrent(s.personas, 0)
		changed = true
	}
	currentID := s.currentID
	s.mu.Unlock()

	if changed && currentID != 0 {
		s.persistCurrent(ctx, currentID)
	}
	lgr.Printf("[INFO] persona %d deleted", id)
	return nil
}

// refresh re-reads a single persona after a failed save, best effort
func (s *Store) refresh(ctx context.Context, id int64) {
	fresh, err := s.syncer.Get(ctx, id)
	if err != nil {
		lgr.Printf("[WARN] can't refresh persona %d after failed save: %v", id, err)
		return
	}
	s.put(fresh)
}

// put replaces the entry with the same id or appends a new one
func (s *Store) put(p domain.Persona) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := slices.Clone(s.personas)
	if i := indexOf(list, p.ID); i >= 0 {
		list[i] = p
	} else {
		list = append(list, p)
	}
	s.personas = list
	if s.currentID == 0 {
		s.currentID = p.ID
	}
}

func (s *Store) begin(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.saving[id]; busy {
		return fmt.Errorf("persona %d: %w", id, ErrSaveInProgress)
	}
	s.saving[id] = struct{}{}
	return nil
}

func (s *Store) end(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saving, id)
}

func (s *Store) persistCurrent(ctx context.Context, id int64) {
	if err := s.settings.SetInt64(ctx, domain.SettingLastPersonaID, id); err != nil {
		lgr.Printf("[WARN] can't save last persona id %d: %v", id, err)
	}
}
