package authz

import (
	"quorumgate"
	"quorumgate/errors"
)

// To avoid burning CPU, this is the maximum number of owners allowed to be
// registered with a single engine.
const maxOwnersAllowed = 100

// Engine gates execution of transactions behind a quorum of owner votes.
//
// The owner set and threshold are fixed at construction. All mutable state
// lives in the store, never in the struct, so an engine can be recreated
// over an existing store without losing collected votes or consumed nonces.
type Engine struct {
	db        quorumgate.CacheableKVStore
	domain    string
	owners    []quorumgate.Identity
	index     map[string]struct{}
	threshold uint32
	executor  Executor
}

// NewEngine validates the owner configuration and returns a ready engine.
// The domain separator must be unique per engine instance; it is mixed into
// every transaction digest to stop cross-instance signature replay.
func NewEngine(db quorumgate.CacheableKVStore, domain string, owners []quorumgate.Identity, threshold uint32, executor Executor) (*Engine, error) {
	if db == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "store")
	}
	if executor == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "executor")
	}
	if !quorumgate.IsValidDomain(domain) {
		return nil, errors.ErrInput.Newf("domain: %q", domain)
	}

	switch n := len(owners); {
	case n == 0:
		return nil, errors.Wrap(ErrInvalidOwners, "no owners")
	case n > maxOwnersAllowed:
		return nil, errors.Wrap(ErrInvalidOwners, "too many owners")
	}

	index := make(map[string]struct{}, len(owners))
	kept := make([]quorumgate.Identity, len(owners))
	for i, o := range owners {
		if err := o.Validate(); err != nil {
			return nil, errors.Wrapf(ErrInvalidOwners, "owner %d", i)
		}
		if _, ok := index[string(o)]; ok {
			return nil, errors.Wrapf(ErrInvalidOwners, "duplicate owner %s", o)
		}
		index[string(o)] = struct{}{}
		kept[i] = append(quorumgate.Identity{}, o...)
	}

	if threshold == 0 {
		return nil, errors.Wrap(ErrInvalidThreshold, "threshold must be greater than 0")
	}
	if threshold > uint32(len(owners)) {
		return nil, errors.Wrap(ErrInvalidThreshold, "threshold greater than the number of owners")
	}

	return &Engine{
		db:        db,
		domain:    domain,
		owners:    kept,
		index:     index,
		threshold: threshold,
		executor:  executor,
	}, nil
}

// IsOwner returns true iff the identity belongs to the owner set.
func (e *Engine) IsOwner(id quorumgate.Identity) bool {
	_, ok := e.index[string(id)]
	return ok
}

// Threshold returns the number of accepted votes required for execution.
func (e *Engine) Threshold() uint32 {
	return e.threshold
}

// Domain returns the domain separator bound into every digest.
func (e *Engine) Domain() string {
	return e.domain
}

// Owners returns a copy of the owner set in registration order.
func (e *Engine) Owners() []quorumgate.Identity {
	res := make([]quorumgate.Identity, len(e.owners))
	for i, o := range e.owners {
		res[i] = append(quorumgate.Identity{}, o...)
	}
	return res
}

// TxHash computes the canonical digest of the transaction for this engine
// instance. Pure query, no side effects.
func (e *Engine) TxHash(tx Tx) (Digest, error) {
	return TxHash(e.domain, tx)
}

// Decision returns the recorded stance of the owner on the digest,
// Undecided when no vote was ever recorded.
func (e *Engine) Decision(digest Digest, owner quorumgate.Identity) Decision {
	return loadDecision(e.db, digest, owner)
}

// Tally returns the number of owners that currently accept the digest.
func (e *Engine) Tally(digest Digest) uint32 {
	return loadTally(e.db, digest)
}

// NonceUsed returns true when the nonce was consumed by a successful
// execution.
func (e *Engine) NonceUsed(nonce uint64) bool {
	return nonceUsed(e.db, nonce)
}

// OwnerDecision is a single ledger entry as returned by Decisions.
type OwnerDecision struct {
	Owner    quorumgate.Identity
	Decision Decision
}

// Decisions lists every recorded decision for the digest in owner key
// order. Owners that never voted are not included.
func (e *Engine) Decisions(digest Digest) []OwnerDecision {
	prefix := append(append([]byte{}, decisionPrefix...), digest...)
	start, end := prefixRange(prefix)

	var res []OwnerDecision
	it := e.db.Iterator(start, end)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		owner := append(quorumgate.Identity{}, it.Key()[len(prefix):]...)
		res = append(res, OwnerDecision{
			Owner:    owner,
			Decision: Decision(it.Value()[0]),
		})
	}
	return res
}

// UpdateDecision records the calling owner's stance on the digest, replacing
// any previous one. The caller identity is taken from the context (see
// WithSigner) and must belong to the owner set.
//
// Flipping between Accepted and Rejected is allowed any number of times. A
// digest that was already executed can still have its votes changed, but
// re-execution is blocked by the consumed nonce, not by the ledger.
func (e *Engine) UpdateDecision(ctx quorumgate.Context, digest Digest, d Decision) error {
	signer := Signer(ctx)
	if signer == nil || !e.IsOwner(signer) {
		return errors.Wrap(ErrNotAuthorized, "signer is not an owner")
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if err := digest.Validate(); err != nil {
		return err
	}

	// A single setDecision cannot fail halfway, but every mutating
	// operation goes through the same transactional boundary.
	cache := e.db.CacheWrap()
	setDecision(cache, digest, signer, d)
	cache.Write()

	quorumgate.GetLogger(ctx).Debug("decision updated",
		"digest", digest, "owner", signer, "decision", d)
	return nil
}
