package persona

import (
	"errors"
	"fmt"
)

var (
	// ErrNoID returned when saving a persona never created on the remote service
	ErrNoID = errors.New("persona has no id")
	// ErrPartialSave matches SaveError of sources stage: scalar fields were written, subscriptions were not
	ErrPartialSave = errors.New("partial save, persona fields updated but subscriptions are stale")
	// ErrStaleSnapshot matches SaveError of refetch stage: everything was written, but the canonical
	// state wasn't read back
	ErrStaleSnapshot = errors.New("persona saved but not re-fetched")
)

// Stage is a step of the save protocol
type Stage string

// save protocol steps, in order
const (
	StageCreate  Stage = "create"
	StageScalars Stage = "scalars"
	StageSources Stage = "sources"
	StageRefetch Stage = "refetch"
)

// SaveError reports the step a save failed on. Err is the error of the remote call, as is.
type SaveError struct {
	Stage     Stage
	PersonaID int64
	Err       error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save persona %d, %s stage: %v", e.PersonaID, e.Stage, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// Is matches ErrPartialSave and ErrStaleSnapshot by stage
func (e *SaveError) Is(target error) bool {
	switch target {
	case ErrPartialSave:
		return e.Stage == StageSources
	case ErrStaleSnapshot:
		return e.Stage == StageRefetch
	default:
		return false
	}
}

// Committed reports whether anything was written before the failure
func (e *SaveError) Committed() bool {
	return e.Stage == StageSources || e.Stage == StageRefetch
}
