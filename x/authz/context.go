package authz

import (
	"context"

	"quorumgate"
)

type contextKey int // local to the authz module

const (
	contextKeySigner contextKey = iota
)

// WithSigner declares the authenticated caller identity on the context. The
// surrounding environment is responsible for authenticating whoever it hands
// the context to; the engine only checks the identity against its owner set.
func WithSigner(ctx quorumgate.Context, id quorumgate.Identity) quorumgate.Context {
	return context.WithValue(ctx, contextKeySigner, id)
}

// Signer returns the caller identity previously set on this context, or nil
// when the context carries none.
func Signer(ctx quorumgate.Context) quorumgate.Identity {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeySigner).(quorumgate.Identity)
	return val
}
