// Package repository defines the auth-token store interface and errors.
package repository

import "context"

// TokenStore provides access to the identifier -> auth token association
// used by claim verification. Implementations own their concurrency story;
// callers issue independent calls with no read-modify-write expectations.
type TokenStore interface {
	// Get returns the token stored for id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (string, error)

	// Put stores token under id, overwriting any previous value.
	Put(ctx context.Context, id, token string) error

	// Delete removes the association for id. Deleting an absent id is not
	// an error.
	Delete(ctx context.Context, id string) error
}
