package authz

import (
	"testing"
	"time"

	"quorumgate"
	"quorumgate/crypto"
	"quorumgate/gatetest"
	"quorumgate/gatetest/assert"
	"quorumgate/store"
)

const testDomain = "gate-test-1"

// newTestEngine returns an engine over a fresh in-memory store with the
// named owners and a recording executor.
func newTestEngine(t testing.TB, threshold uint32, seeds ...string) (*Engine, *gatetest.Executor, []crypto.PrivateKey) {
	t.Helper()

	keys := make([]crypto.PrivateKey, len(seeds))
	owners := make([]quorumgate.Identity, len(seeds))
	for i, seed := range seeds {
		keys[i] = gatetest.KeyFromSeed(seed)
		owners[i] = keys[i].PublicKey().Identity()
	}

	executor := &gatetest.Executor{Data: []byte("ok")}
	engine, err := NewEngine(store.MemStore(), testDomain, owners, threshold, executor)
	if err != nil {
		t.Fatalf("cannot create engine: %+v", err)
	}
	return engine, executor, keys
}

// signAll produces an accepting signature over the digest for every key.
func signAll(t testing.TB, digest Digest, keys ...crypto.PrivateKey) []*crypto.Signature {
	t.Helper()

	sigs := make([]*crypto.Signature, len(keys))
	for i, key := range keys {
		sig, err := key.Sign(digest)
		if err != nil {
			t.Fatalf("cannot sign: %+v", err)
		}
		sigs[i] = sig
	}
	return sigs
}

func TestNewEngine(t *testing.T) {
	alice := gatetest.IdentityFromSeed("alice")
	bob := gatetest.IdentityFromSeed("bob")
	carol := gatetest.IdentityFromSeed("carol")
	executor := &gatetest.Executor{}

	cases := map[string]struct {
		owners    []quorumgate.Identity
		threshold uint32
		wantErr   error
	}{
		"minimal": {
			owners:    []quorumgate.Identity{alice},
			threshold: 1,
		},
		"full quorum": {
			owners:    []quorumgate.Identity{alice, bob, carol},
			threshold: 3,
		},
		"partial quorum": {
			owners:    []quorumgate.Identity{alice, bob, carol},
			threshold: 2,
		},
		"no owners": {
			owners:    nil,
			threshold: 1,
			wantErr:   ErrInvalidOwners,
		},
		"nil owner": {
			owners:    []quorumgate.Identity{alice, nil},
			threshold: 1,
			wantErr:   ErrInvalidOwners,
		},
		"truncated owner": {
			owners:    []quorumgate.Identity{alice, alice[:10]},
			threshold: 1,
			wantErr:   ErrInvalidOwners,
		},
		"duplicate owner": {
			owners:    []quorumgate.Identity{alice, bob, alice},
			threshold: 1,
			wantErr:   ErrInvalidOwners,
		},
		"zero threshold": {
			owners:    []quorumgate.Identity{alice, bob},
			threshold: 0,
			wantErr:   ErrInvalidThreshold,
		},
		"threshold above owner count": {
			owners:    []quorumgate.Identity{alice, bob},
			threshold: 3,
			wantErr:   ErrInvalidThreshold,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			engine, err := NewEngine(store.MemStore(), testDomain, tc.owners, tc.threshold, executor)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.threshold, engine.Threshold())
		})
	}
}

func TestNewEngineRejectsBrokenWiring(t *testing.T) {
	alice := gatetest.IdentityFromSeed("alice")
	owners := []quorumgate.Identity{alice}
	executor := &gatetest.Executor{}

	if _, err := NewEngine(nil, testDomain, owners, 1, executor); err == nil {
		t.Fatal("want an error for a nil store")
	}
	if _, err := NewEngine(store.MemStore(), testDomain, owners, 1, nil); err == nil {
		t.Fatal("want an error for a nil executor")
	}
	if _, err := NewEngine(store.MemStore(), "x", owners, 1, executor); err == nil {
		t.Fatal("want an error for an invalid domain")
	}
}

func TestEngineIntrospection(t *testing.T) {
	engine, _, keys := newTestEngine(t, 2, "alice", "bob", "carol")

	for _, key := range keys {
		if !engine.IsOwner(key.PublicKey().Identity()) {
			t.Fatal("every registered identity must be an owner")
		}
	}
	if engine.IsOwner(gatetest.RandIdentity()) {
		t.Fatal("a random identity must not be an owner")
	}
	if engine.IsOwner(nil) {
		t.Fatal("nil must not be an owner")
	}

	assert.Equal(t, uint32(2), engine.Threshold())
	assert.Equal(t, testDomain, engine.Domain())

	// Owners returns a copy, mutating it must not affect the engine.
	owners := engine.Owners()
	assert.Equal(t, 3, len(owners))
	copy(owners[0], gatetest.RandIdentity())
	if !engine.IsOwner(keys[0].PublicKey().Identity()) {
		t.Fatal("mutating the returned owner list must not affect the engine")
	}
}

func TestEngineDecisionsListing(t *testing.T) {
	engine, _, keys := newTestEngine(t, 2, "alice", "bob", "carol")
	alice := keys[0].PublicKey().Identity()
	bob := keys[1].PublicKey().Identity()

	digest := testDigest(t, engine, 1)
	if res := engine.Decisions(digest); res != nil {
		t.Fatalf("fresh digest must have no decisions, got %v", res)
	}

	now := time.Now()
	assert.Nil(t, engine.UpdateDecision(WithSigner(gatetest.Ctx(now), alice), digest, Accepted))
	assert.Nil(t, engine.UpdateDecision(WithSigner(gatetest.Ctx(now), bob), digest, Rejected))

	res := engine.Decisions(digest)
	assert.Equal(t, 2, len(res))
	for _, od := range res {
		switch {
		case od.Owner.Equals(alice):
			assert.Equal(t, Accepted, od.Decision)
		case od.Owner.Equals(bob):
			assert.Equal(t, Rejected, od.Decision)
		default:
			t.Fatalf("unexpected owner %s", od.Owner)
		}
	}
}

// testDigest returns the digest of a throwaway transaction with the given
// nonce.
func testDigest(t testing.TB, engine *Engine, nonce uint64) Digest {
	t.Helper()

	digest, err := engine.TxHash(Tx{
		Target:   gatetest.RandIdentity(),
		Payload:  []byte("payload"),
		Nonce:    nonce,
		Deadline: quorumgate.AsUnixTime(time.Now().Add(time.Hour)),
	})
	if err != nil {
		t.Fatalf("cannot hash: %+v", err)
	}
	return digest
}
