package authz

import (
	"encoding/binary"

	"quorumgate"
)

// Key layout in the engine store. All records are fixed width, which keeps
// the canonical state byte-for-byte reproducible.
//
//   decision:<digest><owner> -> [1]byte   one of Accepted, Rejected
//   tally:<digest>           -> uint32    big-endian accepted vote count
//   nonce:<uint64>           -> [1]byte   marker, present once consumed
var (
	decisionPrefix = []byte("decision:")
	tallyPrefix    = []byte("tally:")
	noncePrefix    = []byte("nonce:")
)

func decisionKey(digest Digest, owner quorumgate.Identity) []byte {
	key := make([]byte, 0, len(decisionPrefix)+len(digest)+len(owner))
	key = append(key, decisionPrefix...)
	key = append(key, digest...)
	key = append(key, owner...)
	return key
}

func tallyKey(digest Digest) []byte {
	return append(append([]byte{}, tallyPrefix...), digest...)
}

func nonceKey(nonce uint64) []byte {
	key := make([]byte, len(noncePrefix)+8)
	copy(key, noncePrefix)
	binary.BigEndian.PutUint64(key[len(noncePrefix):], nonce)
	return key
}

// loadDecision returns the recorded decision for the pair, falling back to
// Undecided for pairs never voted on.
func loadDecision(db quorumgate.ReadOnlyKVStore, digest Digest, owner quorumgate.Identity) Decision {
	raw := db.Get(decisionKey(digest, owner))
	if raw == nil {
		return Undecided
	}
	return Decision(raw[0])
}

// setDecision is the single primitive through which the ledger is mutated.
// It keeps the invariant that the tally equals the number of owners with an
// Accepted decision, no matter how many times the same owner's vote flips.
// The decision must be concrete, Undecided is never written.
func setDecision(db quorumgate.KVStore, digest Digest, owner quorumgate.Identity, d Decision) {
	prev := loadDecision(db, digest, owner)
	switch {
	case prev == Accepted && d != Accepted:
		storeTally(db, digest, loadTally(db, digest)-1)
	case prev != Accepted && d == Accepted:
		storeTally(db, digest, loadTally(db, digest)+1)
	}
	db.Set(decisionKey(digest, owner), []byte{byte(d)})
}

// loadTally returns the accepted vote count for the digest.
func loadTally(db quorumgate.ReadOnlyKVStore, digest Digest) uint32 {
	raw := db.Get(tallyKey(digest))
	if raw == nil {
		return 0
	}
	return binary.BigEndian.Uint32(raw)
}

func storeTally(db quorumgate.KVStore, digest Digest, count uint32) {
	raw := make([]byte, 4)
	binary.BigEndian.PutUint32(raw, count)
	db.Set(tallyKey(digest), raw)
}

func nonceUsed(db quorumgate.ReadOnlyKVStore, nonce uint64) bool {
	return db.Has(nonceKey(nonce))
}

func consumeNonce(db quorumgate.KVStore, nonce uint64) {
	db.Set(nonceKey(nonce), []byte{1})
}

// prefixRange turns a prefix into the (start, end) range covering all keys
// with that prefix. End is nil when the prefix is all 0xff.
func prefixRange(prefix []byte) ([]byte, []byte) {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return prefix, end
		}
	}
	return prefix, nil
}
