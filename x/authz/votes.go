package authz

import (
	"quorumgate"
	"quorumgate/crypto"
)

// applySignatureVotes records an accepting vote for every signature that
// recovers to an owner without a prior decision on this digest.
//
// A signature is skipped silently when it does not recover to a valid
// identity, when the recovered identity is not an owner, or when the owner
// already holds any explicit decision on the digest. The last rule is
// deliberate: once an owner has voted, by any means, a replayed historical
// signature can never override that vote. Signature bundles are gathered
// off-line and may legitimately contain noise, so none of this is an error.
func (e *Engine) applySignatureVotes(db quorumgate.KVStore, digest Digest, sigs []*crypto.Signature) {
	for _, sig := range sigs {
		signer := sig.Recover(digest)
		if signer == nil {
			continue
		}
		if !e.IsOwner(signer) {
			continue
		}
		if loadDecision(db, digest, signer) != Undecided {
			continue
		}
		setDecision(db, digest, signer, Accepted)
	}
}
