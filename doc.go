/*
Package quorumgate defines the common types shared by all packages of this
module, as well as implementations of some of the simpler components (when
interfaces would be too much overhead).

The authorization engine itself lives in x/authz. This root package holds
what every layer must agree on: identities, the key-value store interface
family, POSIX time handling, and context helpers for the current time and
the logger.

We pass context through context.Context between the caller and the engine.
There should exist two functions for every XYZ of type T that we want to
support in Context:

  WithXYZ(Context, T) Context
  XYZ(Context) (val T, err error)
*/
package quorumgate
