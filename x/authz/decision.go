package authz

import (
	"fmt"

	"quorumgate/errors"
)

// Decision is the stance of a single owner on a single digest.
type Decision uint8

const (
	// Undecided is the implicit default for every (digest, owner) pair
	// that was never voted on. It is a sentinel held by the engine and is
	// never written to the ledger nor assignable by a caller.
	Undecided Decision = iota

	// Accepted counts towards the quorum.
	Accepted

	// Rejected blocks the owner's acceptance signature from ever being
	// counted for this digest.
	Rejected
)

// Validate returns an error unless the decision is a concrete, caller
// assignable value.
func (d Decision) Validate() error {
	switch d {
	case Accepted, Rejected:
		return nil
	case Undecided:
		return errors.Wrap(ErrConcreteDecisionRequired, "undecided")
	default:
		return errors.ErrInput.Newf("unknown decision %d", d)
	}
}

func (d Decision) String() string {
	switch d {
	case Undecided:
		return "undecided"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("invalid(%d)", d)
	}
}
