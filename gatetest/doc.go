// Package gatetest provides mocks and helpers for testing code built around
// the authorization engine.
package gatetest
