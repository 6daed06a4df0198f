package authz

import "quorumgate"

// Executor performs the action once it was authorized. What target, payload
// and value mean operationally is entirely up to the implementation; the
// engine only decides whether the dispatch may happen.
//
// An Executor may re-enter the engine from within Execute. The engine
// consumes the transaction nonce before dispatching, so a reentrant replay
// of the same transaction is rejected while independent transactions
// proceed normally.
type Executor interface {
	Execute(ctx quorumgate.Context, target quorumgate.Identity, payload []byte, value uint64) ([]byte, error)
}

// ExecutorFunc turns a plain function into an Executor.
type ExecutorFunc func(ctx quorumgate.Context, target quorumgate.Identity, payload []byte, value uint64) ([]byte, error)

var _ Executor = (ExecutorFunc)(nil)

func (f ExecutorFunc) Execute(ctx quorumgate.Context, target quorumgate.Identity, payload []byte, value uint64) ([]byte, error) {
	return f(ctx, target, payload, value)
}
