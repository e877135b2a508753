package model

import "errors"

// Sentinel errors returned by model construction and accessor operations.
// Errors raised inside user-supplied getter, setter, producer, or setup
// functions are never wrapped; they propagate to the caller as-is.
var (
	// ErrInvalidRecord reports a construction attempt without a usable record.
	ErrInvalidRecord = errors.New("model: record must be a non-nil map")

	// ErrNilProducer reports a producing write without a producer function.
	ErrNilProducer = errors.New("model: producer must be non-nil")

	// ErrUnknownProperty reports a write to a name with no installed accessor.
	ErrUnknownProperty = errors.New("model: unknown property")

	// ErrReadOnlyProperty reports a write to an accessor without a setter.
	ErrReadOnlyProperty = errors.New("model: property is read-only")
)
