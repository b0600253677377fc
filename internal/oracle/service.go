// Package oracle implements the foreign-call resolution pipeline: it
// validates the constrained wire encoding coming from the calling circuit,
// routes on the function discriminator, and drives the token store and the
// claim evaluator to produce a verdict.
package oracle

import (
	"context"

	"github.com/okian/soundproof/internal/adapters/repository"
	"github.com/okian/soundproof/internal/domain/claim"
)

// Evaluator is the external claim-evaluation collaborator. All three
// operations take the user's bearer token and return a verdict or an error
// whose text is surfaced verbatim to the caller.
type Evaluator interface {
	CanClaimTopTracks(ctx context.Context, token, track string, rng claim.TimeRange, limit uint8) (bool, error)
	CanClaimTopArtist(ctx context.Context, token, artist string, rng claim.TimeRange, limit uint8) (bool, error)
	CanClaimRecentlyPlayedTrack(ctx context.Context, token, track string, after uint64, limit uint8) (bool, error)
}

// Result is the success envelope for resolve_foreign_call.
type Result struct {
	Values []any `json:"values"`
}

// Service implements the oracle RPC methods. Per-call state lives entirely
// on the stack; the only shared components are the injected collaborators,
// which own their concurrency guarantees.
type Service struct {
	store     repository.TokenStore
	evaluator Evaluator
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the token store collaborator.
func WithStore(store repository.TokenStore) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithEvaluator sets the claim evaluator collaborator.
func WithEvaluator(e Evaluator) Option {
	return func(s *Service) {
		if e != nil {
			s.evaluator = e
		}
	}
}

// New constructs a Service. A token store and an evaluator must be
// provided; New defaults to an in-memory store so tests can omit it.
func New(opts ...Option) *Service {
	s := &Service{
		store: repository.NewMemStore(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
