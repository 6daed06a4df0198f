/*
Package errors implements custom error interfaces for quorumgate.

The idea is to reuse as many errors from this package as possible and declare
a new error type only when necessary.

Each package should register its own error codes in a unique range so that a
failure can be identified across process boundaries without comparing error
messages. Use Register during the program startup phase only.

Use Wrap to add context to an error without losing the original cause, and
Error.Is to test what kind of error you are dealing with.
*/
package errors
