package sentinel

import (
	"context"
	"errors"
)

// Sentinel errors for infrastructure facts. Clients and stores return these
// (optionally wrapped) so the validation engine can translate them into
// business outcomes without inspecting transport details.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in the backing service
// - ErrConflict: the request lost a concurrency race in the collaborator
// - ErrInvalidState: entity in wrong state for the requested operation
// - ErrBadRequest: the collaborator rejected the request as malformed
// - ErrUnavailable: collaborator temporarily unavailable
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrBadRequest   = errors.New("bad request")
	ErrUnavailable  = errors.New("unavailable")
)

// IsTransient reports whether err describes a failure that is expected to
// clear on its own. Transient failures flag a claim for retry instead of
// recording a validation error against it.
func IsTransient(err error) bool {
	return errors.Is(err, ErrUnavailable) ||
		errors.Is(err, context.DeadlineExceeded)
}
