package quorumgate

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"quorumgate/crypto/bech32"
	"quorumgate/errors"
)

// IdentityLength is the length of all identities in bytes.
// You can modify it in init() before any identities are calculated,
// but it must not change during the lifetime of the kvstore.
var IdentityLength = 20

// Identity represents a collision-free, one-way digest of whatever material
// authenticates a party (typically a public key). It is the only form in
// which the engine knows owners, signers and dispatch targets.
//
// It will be of size IdentityLength.
type Identity []byte

// NewIdentity hashes and truncates into the proper size.
func NewIdentity(data []byte) Identity {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:IdentityLength]
}

// Equals checks if two identities are the same.
func (a Identity) Equals(b Identity) bool {
	return bytes.Equal(a, b)
}

// Validate returns an error if the identity is not the valid size.
func (a Identity) Validate() error {
	if len(a) != IdentityLength {
		return errors.ErrInput.Newf("identity: %v", a)
	}
	return nil
}

// String returns a human readable string.
// Currently hex, may move to bech32.
func (a Identity) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// MarshalJSON provides a hex representation for JSON, to override the
// standard base64 []byte encoding.
func (a Identity) MarshalJSON() ([]byte, error) {
	s := strings.ToUpper(hex.EncodeToString(a))
	return json.Marshal(s)
}

func (a *Identity) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	id, err := ParseIdentity(enc)
	if err != nil {
		return err
	}
	*a = id
	return nil
}

// ParseIdentity decodes a human readable representation of an identity. If
// the encoded string starts with a prefix, cut it off and use the specified
// decoding method instead of the default one (hex).
func ParseIdentity(enc string) (Identity, error) {
	chunks := strings.SplitN(enc, ":", 2)
	format := chunks[0]
	if len(chunks) == 1 {
		format = "hex"
	} else {
		enc = chunks[1]
	}

	// No value means a nil identity.
	if len(enc) == 0 {
		return nil, nil
	}

	switch format {
	case "hex":
		val, err := hex.DecodeString(enc)
		if err != nil {
			return nil, errors.Wrap(err, "cannot decode hex")
		}
		id := Identity(val)
		if err := id.Validate(); err != nil {
			return nil, err
		}
		return id, nil
	case "bech32":
		_, payload, err := bech32.Decode(enc)
		if err != nil {
			return nil, errors.Wrapf(err, "deserialize bech32: %s", err)
		}
		id := Identity(payload)
		if err := id.Validate(); err != nil {
			return nil, err
		}
		return id, nil
	default:
		return nil, errors.ErrType.Newf("unknown format %q", chunks[0])
	}
}

// Bech32 returns the identity in bech32 encoding with the given human
// readable prefix.
func (a Identity) Bech32(hrp string) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	raw, err := bech32.Encode(hrp, a)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
