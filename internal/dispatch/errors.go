package dispatch

import (
	"fmt"

	"pricealert/internal/domain/entity"
	"pricealert/internal/domain/service"
	"pricealert/internal/errors"
)

var (
	// ErrAlertNotFound is returned when an alert does not exist or is not visible to the caller.
	ErrAlertNotFound = errors.New("alert not found")
	// ErrAlertInFlight is returned when another pass holds the alert lock.
	ErrAlertInFlight = errors.New("alert is already being dispatched")
	// ErrAlertNotDispatchable is returned for alerts that are terminal, exhausted or expired.
	ErrAlertNotDispatchable = errors.New("alert is not dispatchable")

	errNoDestination = errors.New(entity.DeliveryErrNoDestination)
	errRejected      = service.ErrRejected
)

// TransportError is a transient gateway failure. It is eligible for retry.
type TransportError struct {
	Channel entity.NotificationChannel
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s transport: %v", e.Channel, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// permanentError marks a transport failure that retrying cannot fix.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() error {
	return e.err
}

// Permanent wraps err so the retry controller gives up immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return &permanentError{err: err}
}

func isPermanent(err error) bool {
	var pe *permanentError

	return errors.As(err, &pe)
}

// TerminalDeliveryError is returned by the retry controller once the retry budget is spent.
type TerminalDeliveryError struct {
	Channel  entity.NotificationChannel
	Attempts int
	LastErr  string
}

func (e *TerminalDeliveryError) Error() string {
	return fmt.Sprintf("%s delivery gave up after %d attempts: %s", e.Channel, e.Attempts, e.LastErr)
}

// RepositoryError means persistence was unavailable. The pass for that alert is aborted
// and left for the next scheduled pass.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}
