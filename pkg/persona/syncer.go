package persona

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/woodmeone/Buddy/pkg/domain"
	"github.com/woodmeone/Buddy/pkg/remote"
	"github.com/woodmeone/Buddy/pkg/sourcecfg"
)

//go:generate moq -out mocks/remote.go -pkg mocks -skip-ensure -fmt goimports . Remote

// Remote is the remote service api used by Syncer
type Remote interface {
	ListPersonas(ctx context.Context) ([]remote.PersonaRecord, error)
	GetPersona(ctx context.Context, id int64) (remote.PersonaRecord, error)
	CreatePersona(ctx context.Context, fields remote.PersonaFields) (remote.PersonaRecord, error)
	UpdatePersona(ctx context.Context, id int64, fields remote.PersonaFields) (remote.PersonaRecord, error)
	ReplaceSources(ctx context.Context, id int64, envs []sourcecfg.Envelope) ([]sourcecfg.Envelope, error)
	DeletePersona(ctx context.Context, id int64) error
}

// Syncer persists personas to the remote service. Saving is not atomic and not retried, failures are
// reported with SaveError. Syncer doesn't serialize concurrent saves of the same persona, callers should.
type Syncer struct {
	remote Remote
}

// NewSyncer makes a syncer on top of the remote service api
func NewSyncer(r Remote) *Syncer {
	return &Syncer{remote: r}
}

// List returns all personas in the UI shape
func (s *Syncer) List(ctx context.Context) ([]domain.Persona, error) {
	recs, err := s.remote.ListPersonas(ctx)
	if err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}
	return FromRecords(recs), nil
}

// Get returns a single persona in the UI shape
func (s *Syncer) Get(ctx context.Context, id int64) (domain.Persona, error) {
	rec, err := s.remote.GetPersona(ctx, id)
	if err != nil {
		return domain.Persona{}, fmt.Errorf("get persona %d: %w", id, err)
	}
	return FromRecord(rec), nil
}

// Save writes scalar fields, then replaces all subscriptions, then reads the persona back.
// The returned persona is the canonical state with new subscription ids, ids of p are stale after
// a successful save.
func (s *Syncer) Save(ctx context.Context, p domain.Persona) (domain.Persona, error) {
	if p.IsNew() {
		return domain.Persona{}, ErrNoID
	}
	if err := p.Validate(); err != nil {
		return domain.Persona{}, err
	}

	if _, err := s.remote.UpdatePersona(ctx, p.ID, ScalarsToBackend(p)); err != nil {
		return domain.Persona{}, &SaveError{Stage: StageScalars, PersonaID: p.ID, Err: err}
	}
	return s.syncSources(ctx, p.ID, p)
}

// Create makes a new persona and attaches its subscriptions, if any. The remote service creates personas
// without subscriptions, so they are written by a separate replace-all call.
func (s *Syncer) Create(ctx context.Context, p domain.Persona) (domain.Persona, error) {
	if err := p.Validate(); err != nil {
		return domain.Persona{}, err
	}

	rec, err := s.remote.CreatePersona(ctx, ScalarsToBackend(p))
	if err != nil {
		return domain.Persona{}, &SaveError{Stage: StageCreate, Err: err}
	}
	lgr.Printf("[INFO] persona %q created with id %d", rec.Name, rec.ID)

	if p.SubscriptionCount() == 0 {
		return FromRecord(rec), nil
	}
	return s.syncSources(ctx, rec.ID, p)
}

// ReplaceSubscriptions overwrites the whole subscription collection of persona id with all subscriptions
// of p. Ids of p's subscriptions are never sent, every subscription is written as a new one.
// Returns subscriptions as written by the remote service, with their new ids.
func (s *Syncer) ReplaceSubscriptions(ctx context.Context, id int64, p domain.Persona) (Groups, error) {
	envs := EncodeSubscriptions(p)
	written, err := s.remote.ReplaceSources(ctx, id, envs)
	if err != nil {
		return Groups{}, fmt.Errorf("replace %d subscriptions of persona %d: %w", len(envs), id, err)
	}
	lgr.Printf("[DEBUG] persona %d subscriptions replaced, sent %d, written %d", id, len(envs), len(written))
	return FromFlatCollection(written), nil
}

// Delete removes a persona with all its subscriptions
func (s *Syncer) Delete(ctx context.Context, id int64) error {
	if err := s.remote.DeletePersona(ctx, id); err != nil {
		return fmt.Errorf("delete persona %d: %w", id, err)
	}
	return nil
}

// syncSources runs replace-all and refetch steps
func (s *Syncer) syncSources(ctx context.Context, id int64, p domain.Persona) (domain.Persona, error) {
	if _, err := s.ReplaceSubscriptions(ctx, id, p); err != nil {
		lgr.Printf("[WARN] persona %d fields saved, subscriptions not: %v", id, err)
		return domain.Persona{}, &SaveError{Stage: StageSources, PersonaID: id, Err: err}
	}

	rec, err := s.remote.GetPersona(ctx, id)
	if err != nil {
		return domain.Persona{}, &SaveError{Stage: StageRefetch, PersonaID: id, Err: err}
	}
	res := FromRecord(rec)
	lgr.Printf("[INFO] persona %d saved, %d subscriptions", id, res.SubscriptionCount())
	return res, nil
}
