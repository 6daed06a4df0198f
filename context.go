package quorumgate

import (
	"context"
	"regexp"
	"time"

	"github.com/tendermint/tendermint/libs/log"

	"quorumgate/errors"
)

// Context is just a typedef to reduce the external dependencies of packages
// accepting one.
type Context = context.Context

var (
	// DefaultLogger is used for all context that have not
	// set anything themselves
	DefaultLogger = log.NewNopLogger()

	// IsValidDomain is the RegExp to ensure valid engine domain separators
	IsValidDomain = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

type contextKey int // local to this package

const (
	contextKeyTime contextKey = iota
	contextKeyLogger
)

// WithBlockTime sets the current time as seen by all operations run with this
// context. The surrounding environment decides what "now" is, the engine only
// reads it.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyTime, t)
}

// BlockTime returns the current time as declared on the context.
func BlockTime(ctx Context) (time.Time, error) {
	val, ok := ctx.Value(contextKeyTime).(time.Time)
	if !ok {
		return time.Time{}, errors.Wrap(errors.ErrEmpty, "block time not set")
	}
	return val, nil
}

// IsExpired returns true if given time is in the past as compared to the
// "now" as declared for this context. Expiration is exclusive, meaning that
// an operation run exactly at the expiration time is still within the limit.
func IsExpired(ctx Context, t UnixTime) bool {
	now, err := BlockTime(ctx)
	if err != nil {
		// This is a programmer error. The surrounding environment must
		// always declare the current time before running an operation.
		panic("block time not present in the context")
	}
	return t < AsUnixTime(now)
}

// WithLogger sets the logger to be returned by GetLogger.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger from the context, or DefaultLogger when none
// was set.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}
