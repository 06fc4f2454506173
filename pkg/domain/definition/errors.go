package definition

import (
	"fmt"

	"github.com/pkg/errors"
)

// Every failure in the pipeline is terminal for the run; nothing here is
// retried. The types below only exist so the caller can tell the classes
// apart and print enough context to diagnose without re-running.
var (
	ErrMissingCredentialSource = errors.New("no credential source: supply --keeper-uid, or both --username and --keychain-service")
	ErrCredentialNotFound      = errors.New("credential not found")
	ErrVaultUnavailable        = errors.New("vault unavailable")
	ErrAuthenticationFailed    = errors.New("vault authentication failed")
	ErrNoRouteFound            = errors.New("no routes found")
)

// NoRouteError keeps the raw directions response for diagnosis. It matches
// ErrNoRouteFound under errors.Is.
type NoRouteError struct {
	Body string
}

func (e *NoRouteError) Error() string {
	return fmt.Sprintf("no routes found, response: %s", e.Body)
}

func (e *NoRouteError) Unwrap() error { return ErrNoRouteFound }

// ServiceError is any non-success answer from an HTTP collaborator.
// Timeouts use Status 0 since no status line was received.
type ServiceError struct {
	Status int
	Body   string
}

func (e *ServiceError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("service error: %s", e.Body)
	}
	return fmt.Sprintf("service error: status %d: %s", e.Status, e.Body)
}

// DocumentWriteError wraps image-decoding and file-write failures from the
// report stage.
type DocumentWriteError struct {
	Err error
}

func (e *DocumentWriteError) Error() string {
	return fmt.Sprintf("document write failed: %v", e.Err)
}

func (e *DocumentWriteError) Unwrap() error { return e.Err }
