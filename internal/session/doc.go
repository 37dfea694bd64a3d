// Package session owns the bearer token for one browser context.
//
// A Store keeps the token in an in-memory cell and writes it through to a
// Storage backend so it survives restarts. Readers must call Token on every
// use; a token read before a logout is stale once the store is cleared.
//
// Identity decoding trusts the token payload without verifying its signature.
// It is used for display only: the backend remains the authority and a 401
// response clears the store.
package session
