package oracle

import (
	"context"
	"errors"
)

var (
	errStoreKeyShape  = errors.New("Invalid params; expected [id, token]")
	errDeleteKeyShape = errors.New("Invalid params; expected an id string")
)

// StoreKey handles the store_key method: params is a two-element array of
// non-empty strings [id, token]. On success the id is echoed back.
func (s *Service) StoreKey(ctx context.Context, params any) (string, error) {
	items, ok := params.([]any)
	if !ok || len(items) != 2 {
		return "", errStoreKeyShape
	}
	id, okID := items[0].(string)
	token, okToken := items[1].(string)
	if !okID || !okToken {
		return "", errStoreKeyShape
	}
	if id == "" || token == "" {
		return "", ErrEmptyIDOrToken
	}
	if err := s.store.Put(ctx, id, token); err != nil {
		return "", err
	}
	return id, nil
}

// DeleteKey handles the delete_key method: params is a non-empty id string,
// either bare or wrapped in a single-element array. Deleting an id that was
// never stored succeeds; the id is echoed back either way.
func (s *Service) DeleteKey(ctx context.Context, params any) (string, error) {
	id, ok := params.(string)
	if !ok {
		items, isArr := params.([]any)
		if !isArr || len(items) != 1 {
			return "", errDeleteKeyShape
		}
		if id, ok = items[0].(string); !ok {
			return "", errDeleteKeyShape
		}
	}
	if id == "" {
		return "", ErrEmptyIDOrToken
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return "", err
	}
	return id, nil
}
