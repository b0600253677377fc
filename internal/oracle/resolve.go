package oracle

import (
	"context"

	"github.com/okian/soundproof/internal/domain/claim"
	"github.com/okian/soundproof/internal/domain/field"
	"github.com/okian/soundproof/pkg/metrics"
)

// ResolveForeignCall handles the resolve_foreign_call method. params is the
// decoded JSON-RPC params value: a single-element array holding an object
// with a "function" discriminator and four "inputs" arrays. Every failure
// is reported through the invalid-params error channel; no separate
// internal-error class exists for this method.
func (s *Service) ResolveForeignCall(ctx context.Context, params any) (*Result, error) {
	items, ok := params.([]any)
	if !ok || len(items) != 1 {
		return nil, ErrNotSingleItemArray
	}
	obj, ok := items[0].(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}

	fn, present := obj["function"]
	if !present {
		return nil, ErrMissingFunction
	}
	name, _ := fn.(string)
	kind, known := claim.KindFromFunction(name)
	if !known {
		return nil, ErrInvalidMethod
	}

	result, err := s.resolve(ctx, kind, obj)
	metrics.RecordClaimResolved(kind.String(), err == nil)
	return result, err
}

// resolve routes a claim request to its handler. The switch is exhaustive
// over the closed Kind set; KindUnknown cannot reach here but is handled
// explicitly anyway.
func (s *Service) resolve(ctx context.Context, kind claim.Kind, obj map[string]any) (*Result, error) {
	switch kind {
	case claim.KindTopTracks:
		return s.handleTop(ctx, obj, s.evaluator.CanClaimTopTracks)
	case claim.KindTopArtists:
		return s.handleTop(ctx, obj, s.evaluator.CanClaimTopArtist)
	case claim.KindRecentlyPlayedTrack:
		return s.handleRecentlyPlayed(ctx, obj)
	case claim.KindUnknown:
		return nil, ErrInvalidMethod
	default:
		return nil, ErrInvalidMethod
	}
}

// topEvaluation is the shared signature of the two time-range claims.
type topEvaluation func(ctx context.Context, token, subject string, rng claim.TimeRange, limit uint8) (bool, error)

// handleTop serves the top-tracks and top-artists claims, which differ only
// in the evaluator operation they call. The first range byte must map to a
// TimeRange member; the list-range byte is an unvalidated passthrough to
// the evaluator.
func (s *Service) handleTop(ctx context.Context, obj map[string]any, evaluate topEvaluation) (*Result, error) {
	key, track, timeRange, listRange, err := extractInputs(obj)
	if err != nil {
		return nil, err
	}

	keyData := field.String(key)
	trackData := field.String(track)
	timeRangeData := field.Bytes(timeRange)
	listRangeData := field.Bytes(listRange)

	if len(timeRangeData) == 0 || len(listRangeData) == 0 {
		return nil, ErrEmptyRanges
	}

	rng, err := claim.TimeRangeFromByte(timeRangeData[0])
	if err != nil {
		return nil, err
	}

	token, err := s.store.Get(ctx, keyData)
	if err != nil {
		return nil, err
	}

	verdict, err := evaluate(ctx, token, trackData, rng, listRangeData[0])
	if err != nil {
		return nil, err
	}
	return &Result{Values: []any{verdict}}, nil
}

// handleRecentlyPlayed serves the recently-played-track claim. The third
// input carries a raw 64-bit "after" timestamp instead of a time-range
// enumeration; no closed-set validation applies to it.
func (s *Service) handleRecentlyPlayed(ctx context.Context, obj map[string]any) (*Result, error) {
	key, track, afterRange, playedRange, err := extractInputs(obj)
	if err != nil {
		return nil, err
	}

	keyData := field.String(key)
	trackData := field.String(track)
	afterData := field.Uint64s(afterRange)
	playedData := field.Bytes(playedRange)

	if len(afterData) == 0 || len(playedData) == 0 {
		return nil, ErrEmptyRanges
	}

	token, err := s.store.Get(ctx, keyData)
	if err != nil {
		return nil, err
	}

	verdict, err := s.evaluator.CanClaimRecentlyPlayedTrack(ctx, token, trackData, afterData[0], playedData[0])
	if err != nil {
		return nil, err
	}
	return &Result{Values: []any{verdict}}, nil
}
