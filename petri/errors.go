package petri

import "errors"

// Sentinel errors for PetriNet construction, returned so the caller
// decides whether to abort or retry the build.
var (
	ErrDuplicateNode       = errors.New("petri: duplicate node id")
	ErrDuplicateConnection = errors.New("petri: duplicate connection")
	ErrSameKindConnection  = errors.New("petri: connection endpoints must be one place and one transition")
	ErrUnknownNode         = errors.New("petri: unknown node id")
	ErrNilDuration         = errors.New("petri: transition duration function must not be nil")
)
