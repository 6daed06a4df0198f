package gatetest

import (
	"context"
	"crypto/rand"
	"time"

	"quorumgate"
	"quorumgate/crypto"
)

// KeyFromSeed returns a deterministic private key for tests. The seed string
// is padded or truncated to the required seed size, so short readable names
// like "alice" work fine.
func KeyFromSeed(seed string) crypto.PrivateKey {
	material := make([]byte, 32)
	copy(material, seed)
	return crypto.PrivKeyEd25519FromSeed(material)
}

// IdentityFromSeed is a shortcut for the identity of KeyFromSeed.
func IdentityFromSeed(seed string) quorumgate.Identity {
	return KeyFromSeed(seed).PublicKey().Identity()
}

// RandIdentity returns a random identity that is not derived from any
// signing key known to the test.
func RandIdentity() quorumgate.Identity {
	material := make([]byte, 32)
	if _, err := rand.Read(material); err != nil {
		panic(err)
	}
	return quorumgate.NewIdentity(material)
}

// Ctx returns a context declaring the given moment as the current time, the
// way the surrounding environment would before running an operation.
func Ctx(now time.Time) quorumgate.Context {
	return quorumgate.WithBlockTime(context.Background(), now)
}
