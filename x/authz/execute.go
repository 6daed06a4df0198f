package authz

import (
	"quorumgate"
	"quorumgate/crypto"
	"quorumgate/errors"
)

/*
Execute dispatches the transaction to the Executor, provided that a quorum
of owners accepts it. The checks run in a fixed order:

 1. the deadline must not have passed (execution exactly at the deadline is
    still allowed),
 2. the nonce must not have been consumed by an earlier execution,
 3. the presented signatures are applied as accepting votes (see
    applySignatureVotes for the skip rules),
 4. the accepted vote tally must reach the threshold,
 5. the nonce is consumed,
 6. the transaction is dispatched.

The nonce is consumed before dispatching so that a reentrant call from the
Executor cannot replay the same transaction mid-dispatch.

The whole operation is atomic: any failure, including a failed or panicking
Executor, discards every write made during this call. Votes committed by
earlier calls are not touched, so a transaction that failed to reach quorum
can be retried later with additional signatures.

The current time is read from the context (see quorumgate.WithBlockTime).
*/
func (e *Engine) Execute(ctx quorumgate.Context, tx Tx, sigs []*crypto.Signature) (data []byte, err error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	now, err := quorumgate.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	if now.After(tx.Deadline.Time()) {
		return nil, errors.Wrapf(ErrDeadlineMissed, "deadline %s", tx.Deadline)
	}

	digest, err := TxHash(e.domain, tx)
	if err != nil {
		return nil, errors.Wrap(err, "hash")
	}

	// All writes of this operation go through the cache. The wrap also
	// becomes the engine store for the duration of the dispatch, so a
	// reentrant call stacks another wrap on top and observes the consumed
	// nonce.
	cache := e.db.CacheWrap()
	prev := e.db
	e.db = cache
	defer func() {
		e.db = prev
		if err == nil {
			cache.Write()
		} else {
			cache.Discard()
		}
	}()

	if nonceUsed(cache, tx.Nonce) {
		return nil, errors.Wrapf(ErrCannotReplayTransaction, "nonce %d", tx.Nonce)
	}

	e.applySignatureVotes(cache, digest, sigs)

	if tally := loadTally(cache, digest); tally < e.threshold {
		return nil, errors.Wrapf(ErrFailedToQuorum, "have %d votes, need %d", tally, e.threshold)
	}

	consumeNonce(cache, tx.Nonce)

	data, err = e.dispatch(ctx, tx)
	if err != nil {
		return nil, errors.Wrap(err, "dispatch")
	}

	quorumgate.GetLogger(ctx).Info("transaction executed",
		"digest", digest, "target", tx.Target, "nonce", tx.Nonce)
	return data, nil
}

// dispatch shields the engine from a panicking Executor. A panic is
// converted into an error so that the surrounding transactional boundary
// rolls back as with any other dispatch failure.
func (e *Engine) dispatch(ctx quorumgate.Context, tx Tx) (data []byte, err error) {
	defer errors.Recover(&err)
	return e.executor.Execute(ctx, tx.Target, tx.Payload, tx.Value)
}
