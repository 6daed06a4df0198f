package authz

import (
	"testing"
	"time"

	"quorumgate/gatetest"
	"quorumgate/gatetest/assert"
)

func TestUpdateDecisionAuthorization(t *testing.T) {
	engine, _, keys := newTestEngine(t, 1, "alice")
	digest := testDigest(t, engine, 1)
	now := time.Now()

	// No signer on the context.
	err := engine.UpdateDecision(gatetest.Ctx(now), digest, Accepted)
	assert.IsErr(t, ErrNotAuthorized, err)

	// Signer that is not an owner.
	stranger := gatetest.IdentityFromSeed("stranger")
	err = engine.UpdateDecision(WithSigner(gatetest.Ctx(now), stranger), digest, Accepted)
	assert.IsErr(t, ErrNotAuthorized, err)

	assert.Equal(t, uint32(0), engine.Tally(digest))

	alice := keys[0].PublicKey().Identity()
	assert.Nil(t, engine.UpdateDecision(WithSigner(gatetest.Ctx(now), alice), digest, Accepted))
	assert.Equal(t, uint32(1), engine.Tally(digest))
}

func TestUpdateDecisionRequiresConcreteStance(t *testing.T) {
	engine, _, keys := newTestEngine(t, 1, "alice")
	digest := testDigest(t, engine, 1)
	ctx := WithSigner(gatetest.Ctx(time.Now()), keys[0].PublicKey().Identity())

	// An owner cannot reset their vote back to Undecided, nor record a
	// value outside the enum.
	err := engine.UpdateDecision(ctx, digest, Undecided)
	assert.IsErr(t, ErrConcreteDecisionRequired, err)

	if err := engine.UpdateDecision(ctx, digest, Decision(9)); err == nil {
		t.Fatal("an unknown decision value must be rejected")
	}
}

func TestUpdateDecisionRejectsBadDigest(t *testing.T) {
	engine, _, keys := newTestEngine(t, 1, "alice")
	ctx := WithSigner(gatetest.Ctx(time.Now()), keys[0].PublicKey().Identity())

	if err := engine.UpdateDecision(ctx, nil, Accepted); err == nil {
		t.Fatal("a nil digest must be rejected")
	}
	if err := engine.UpdateDecision(ctx, Digest([]byte("short")), Accepted); err == nil {
		t.Fatal("a truncated digest must be rejected")
	}
}

func TestUpdateDecisionCanFlipForever(t *testing.T) {
	engine, _, keys := newTestEngine(t, 1, "alice")
	alice := keys[0].PublicKey().Identity()
	digest := testDigest(t, engine, 1)
	ctx := WithSigner(gatetest.Ctx(time.Now()), alice)

	for i := 0; i < 3; i++ {
		assert.Nil(t, engine.UpdateDecision(ctx, digest, Accepted))
		assert.Equal(t, Accepted, engine.Decision(digest, alice))
		assert.Equal(t, uint32(1), engine.Tally(digest))

		assert.Nil(t, engine.UpdateDecision(ctx, digest, Rejected))
		assert.Equal(t, Rejected, engine.Decision(digest, alice))
		assert.Equal(t, uint32(0), engine.Tally(digest))
	}
}

func TestDecisionsSurviveExecution(t *testing.T) {
	engine, _, keys := newTestEngine(t, 1, "alice")
	alice := keys[0].PublicKey().Identity()
	now := time.Now()

	tx := testTx(now, 1)
	digest, err := engine.TxHash(tx)
	assert.Nil(t, err)

	ctx := WithSigner(gatetest.Ctx(now), alice)
	assert.Nil(t, engine.UpdateDecision(ctx, digest, Accepted))
	_, err = engine.Execute(gatetest.Ctx(now), tx, nil)
	assert.Nil(t, err)

	// Execution does not reset the ledger. The vote remains and can still
	// be flipped, but the consumed nonce keeps the transaction from running
	// again.
	assert.Equal(t, Accepted, engine.Decision(digest, alice))
	assert.Nil(t, engine.UpdateDecision(ctx, digest, Rejected))
	assert.Equal(t, Rejected, engine.Decision(digest, alice))

	assert.Nil(t, engine.UpdateDecision(ctx, digest, Accepted))
	_, err = engine.Execute(gatetest.Ctx(now), tx, nil)
	assert.IsErr(t, ErrCannotReplayTransaction, err)
}
