package watchdog

import "errors"

// Sentinel errors returned by the watchdog package.
var (
	// ErrNonPositiveUnits indicates Schedule was called with units <= 0.
	ErrNonPositiveUnits = errors.New("watchdog: units must be positive")

	// ErrAlreadyExpired indicates Cancel was called on an event that has
	// already fired; cancelling a fired event is a no-op, but Cancel
	// reports it so callers can distinguish the two cases if they care to.
	ErrAlreadyExpired = errors.New("watchdog: event already expired")

	// ErrUnknownEvent indicates Cancel was given an event this Scheduler
	// did not create.
	ErrUnknownEvent = errors.New("watchdog: event not owned by this scheduler")
)
