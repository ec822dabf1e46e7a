package service

import "errors"

var (
	// ErrGeneration wraps every failed generate attempt. The source's own
	// error stays in the chain.
	ErrGeneration = errors.New("generation error")

	// ErrSuperseded is returned by a generate call whose result was discarded
	// because a newer call started while it was in flight.
	ErrSuperseded = errors.New("generation superseded by a newer request")

	// ErrNoCurriculum is returned when an operation needs a stored
	// curriculum and none exists.
	ErrNoCurriculum = errors.New("no curriculum")

	// ErrActiveCurriculum is returned when deleting the curriculum in use.
	ErrActiveCurriculum = errors.New("curriculum is active")
)
