package crypto

import (
	"golang.org/x/crypto/ed25519"

	"quorumgate"
	"quorumgate/errors"
)

// Signature is a detached signature over some digest, carrying the public
// key that produced it. The key is needed so a verifier can map the
// signature back to an identity without any key registry.
type Signature struct {
	Pubkey PublicKey
	Sig    []byte
}

// Validate returns an error if the signature cannot possibly be valid for
// any message.
func (s *Signature) Validate() error {
	if s == nil {
		return errors.Wrap(errors.ErrEmpty, "signature")
	}
	var errs error
	if len(s.Pubkey) != ed25519.PublicKeySize {
		errs = errors.AppendField(errs, "Pubkey", errors.ErrInput)
	}
	if len(s.Sig) != ed25519.SignatureSize {
		errs = errors.AppendField(errs, "Sig", errors.ErrInput)
	}
	return errs
}

// Recover returns the identity of whoever signed the given digest, or nil
// when the signature does not verify. A nil result is the only failure
// signal, there is no error: bundles of gathered signatures may
// legitimately contain noise and the caller decides what to do with it.
func (s *Signature) Recover(digest []byte) quorumgate.Identity {
	if s == nil || s.Validate() != nil {
		return nil
	}
	if !s.Pubkey.Verify(digest, s.Sig) {
		return nil
	}
	return s.Pubkey.Identity()
}
