package crypto

import (
	"golang.org/x/crypto/ed25519"

	"quorumgate"
)

// ExtensionName is mixed into the identity derivation so that an identity
// produced from a signing key can never collide with one derived from other
// material.
const ExtensionName = "sigs"

// PublicKey is an ed25519 public key.
type PublicKey []byte

// Verify verifies the signature was created with this message and public key
func (p PublicKey) Verify(message []byte, sig []byte) bool {
	if len(p) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p), message, sig)
}

// Identity derives the engine identity of this key holder.
func (p PublicKey) Identity() quorumgate.Identity {
	if len(p) != ed25519.PublicKeySize {
		return nil
	}
	material := append([]byte(ExtensionName+"/ed25519/"), p...)
	return quorumgate.NewIdentity(material)
}

// PrivateKey is an ed25519 private key.
type PrivateKey []byte

var _ Signer = (PrivateKey)(nil)

// Sign returns a matching signature for this private key
func (p PrivateKey) Sign(message []byte) (*Signature, error) {
	bz := ed25519.Sign(ed25519.PrivateKey(p), message)
	return &Signature{
		Pubkey: p.PublicKey(),
		Sig:    bz,
	}, nil
}

// PublicKey returns the corresponding PublicKey
func (p PrivateKey) PublicKey() PublicKey {
	pub := ed25519.PrivateKey(p).Public().(ed25519.PublicKey)
	return PublicKey(pub)
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return PrivateKey(priv)
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) PrivateKey {
	return PrivateKey(ed25519.NewKeyFromSeed(seed))
}

// Signer is the functionality we use from a private key.
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() PublicKey
}
