package pantry

import (
	"context"
	"encoding/json"
	"fmt"
)

// Snapshot keys. One independently persisted snapshot per collection;
// every mutation rewrites the owning collection's snapshot in full.
const (
	KeyIngredients    = "ingredients"
	KeyGroceryList    = "groceryList"
	KeyRecentlyBought = "recentlyBought"
)

// SnapshotStore is the persistence collaborator: a key-value blob store
// holding one serialized snapshot per collection.
//
// Load returns (nil, nil) when the key has never been written - a fresh
// install is not an error. Save replaces the value for key atomically.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// encodeSnapshot serializes a collection as a plain JSON array.
func encodeSnapshot[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// decodeSnapshot parses a persisted JSON array. Empty input decodes to
// an empty collection.
func decodeSnapshot[T any](data []byte) ([]T, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return items, nil
}
