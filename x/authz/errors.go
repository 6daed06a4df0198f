package authz

import "quorumgate/errors"

// Error codes: the authorization engine takes 1100-1106.
var (
	// ErrInvalidOwners is returned when an engine is constructed with an
	// empty owner list, a nil owner or duplicate owner entries.
	ErrInvalidOwners = errors.Register(1100, "invalid owners")

	// ErrInvalidThreshold is returned when the threshold is zero or
	// greater than the number of owners.
	ErrInvalidThreshold = errors.Register(1101, "invalid threshold")

	// ErrDeadlineMissed is returned when a transaction is submitted for
	// execution after its deadline.
	ErrDeadlineMissed = errors.Register(1102, "deadline missed")

	// ErrCannotReplayTransaction is returned when the transaction nonce
	// was already consumed by a successful execution.
	ErrCannotReplayTransaction = errors.Register(1103, "cannot replay transaction")

	// ErrFailedToQuorum is returned when the accepted vote tally is below
	// the threshold.
	ErrFailedToQuorum = errors.Register(1104, "failed to reach quorum")

	// ErrNotAuthorized is returned when anyone but a registered owner
	// records a manual decision.
	ErrNotAuthorized = errors.Register(1105, "not authorized")

	// ErrConcreteDecisionRequired is returned when a manual decision is
	// not one of the concrete values. Undecided is a sentinel owned by
	// the engine and can never be assigned by a caller.
	ErrConcreteDecisionRequired = errors.Register(1106, "concrete decision required")
)
