package authz

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strings"

	"quorumgate"
	"quorumgate/errors"
)

// hashCodeV1 is the current way to prefix the bytes we feed into the digest.
// Bumping the version changes every digest, which invalidates all
// collected signatures.
var hashCodeV1 = []byte{0, 0x9A, 0x7E, 0}

// DigestLength is the size of a transaction digest in bytes.
const DigestLength = sha256.Size

// Digest is the canonical fingerprint of a transaction, bound to a single
// engine instance through its domain separator. Owners sign this value.
type Digest []byte

// Validate returns an error if the digest is not the valid size.
func (d Digest) Validate() error {
	if len(d) != DigestLength {
		return errors.ErrInput.Newf("digest: %X", []byte(d))
	}
	return nil
}

// Equals checks if two digests are the same.
func (d Digest) Equals(o Digest) bool {
	return bytes.Equal(d, o)
}

// String returns a human readable hex representation.
func (d Digest) String() string {
	if len(d) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(d))
}

/*
TxHash computes the canonical digest of a transaction.

The digest covers every field of the transaction plus the engine domain
separator, so a signature collected for one engine instance can never be
replayed against another. The bytes are laid out as:

 version | len(domain) | domain       | target   | value  | nonce  | deadline | payload
 4 bytes | uint8       | ascii string | 20 bytes | uint64 | uint64 | int64    | raw bytes

with all integers big-endian, then hashed with sha256. The layout is
fixed-width up to the payload, so no two distinct transactions share an
encoding.

This function is public so that off-engine signers can compute the exact
value they must sign.
*/
func TxHash(domain string, tx Tx) (Digest, error) {
	if !quorumgate.IsValidDomain(domain) {
		return nil, errors.ErrInput.Newf("domain: %q", domain)
	}
	if err := tx.Target.Validate(); err != nil {
		return nil, errors.Wrap(err, "target")
	}

	out := make([]byte, 0, len(hashCodeV1)+1+len(domain)+quorumgate.IdentityLength+3*8+len(tx.Payload))
	out = append(out, hashCodeV1...)
	out = append(out, uint8(len(domain)))
	out = append(out, domain...)
	out = append(out, tx.Target...)

	var ints [3 * 8]byte
	binary.BigEndian.PutUint64(ints[0:8], tx.Value)
	binary.BigEndian.PutUint64(ints[8:16], tx.Nonce)
	binary.BigEndian.PutUint64(ints[16:24], uint64(tx.Deadline))
	out = append(out, ints[:]...)

	out = append(out, tx.Payload...)

	h := sha256.Sum256(out)
	return Digest(h[:]), nil
}
