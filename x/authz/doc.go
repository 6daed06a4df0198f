/*
Package authz implements a quorum based transaction authorization engine.

A transaction (Tx) describes an arbitrary action: a payload dispatched to a
target identity together with an optional value transfer. Before the engine
hands a transaction to the Executor, a threshold number of registered owners
must accept it. Owners accept either by signing the canonical transaction
digest off-engine, or by recording a decision directly through
UpdateDecision.

All engine state (per owner decisions, the accepted vote tally and the used
nonce set) lives in a key-value store. Every public operation runs inside a
cache wrap over that store and either commits completely or discards all its
writes, including signature votes applied earlier within the same failing
call. The engine assumes the serialized single writer model of the
surrounding environment and uses no locking of its own.
*/
package authz
