package authz

import (
	"quorumgate"
	"quorumgate/errors"
)

// Tx describes the action that the owners vote on: dispatch the payload to
// the target, transferring the given value. The engine never persists a Tx,
// only its digest.
type Tx struct {
	// Target is the identity the Executor dispatches to.
	Target quorumgate.Identity

	// Payload is an opaque blob interpreted by the Executor.
	Payload []byte

	// Value is the amount transferred alongside the dispatch.
	Value uint64

	// Nonce makes the transaction single use. Each nonce can enable at
	// most one successful execution per engine instance.
	Nonce uint64

	// Deadline is the last moment at which execution is still allowed.
	Deadline quorumgate.UnixTime
}

// Validate returns an error unless the transaction can be canonically
// encoded and executed.
func (tx Tx) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Target", tx.Target.Validate())
	errs = errors.AppendField(errs, "Deadline", tx.Deadline.Validate())
	if tx.Deadline.IsZero() {
		errs = errors.AppendField(errs, "Deadline", errors.ErrEmpty)
	}
	return errs
}
