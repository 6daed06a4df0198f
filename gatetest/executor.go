package gatetest

import (
	"quorumgate"
)

// Executor is a mock implementing the authz.Executor interface.
//
// Unless a custom Handle function is provided, every dispatch returns the
// configured Data and Err values. All calls are recorded so a test can
// assert what (and whether) the engine dispatched.
type Executor struct {
	// Data is returned on a successful dispatch.
	Data []byte

	// Err, when set, makes every dispatch fail.
	Err error

	// Handle, when set, overrides the canned Data/Err behaviour. Use it
	// for executors that must re-enter the engine.
	Handle func(ctx quorumgate.Context, target quorumgate.Identity, payload []byte, value uint64) ([]byte, error)

	callCount int
	// arguments of the most recent call
	target  quorumgate.Identity
	payload []byte
	value   uint64
}

func (ex *Executor) Execute(ctx quorumgate.Context, target quorumgate.Identity, payload []byte, value uint64) ([]byte, error) {
	ex.callCount++
	ex.target = target
	ex.payload = payload
	ex.value = value

	if ex.Handle != nil {
		return ex.Handle(ctx, target, payload, value)
	}
	if ex.Err != nil {
		return nil, ex.Err
	}
	return ex.Data, nil
}

// CallCount returns the number of dispatches so far.
func (ex *Executor) CallCount() int {
	return ex.callCount
}

// LastCall returns the arguments of the most recent dispatch.
func (ex *Executor) LastCall() (target quorumgate.Identity, payload []byte, value uint64) {
	return ex.target, ex.payload, ex.value
}
