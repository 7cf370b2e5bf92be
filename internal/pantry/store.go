package pantry

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// Store owns the three ordered collections - ingredients, the active
// grocery list, and recently bought grocery items - and exposes the
// only sanctioned mutators over them.
//
// Thread-safety model:
//   - every method is safe from any goroutine
//   - one mutex is the single serialization point for all three
//     collections, so moves between lists are atomic to readers
//
// INVARIANTS:
//   - ingredient ids are unique for the lifetime of the collection
//   - names are never persisted blank
//   - a grocery item lives in exactly one of the two lists
//   - insertion order is preserved in all three collections
type Store struct {
	mu        sync.Mutex
	snapshots SnapshotStore
	clock     Clock
	ids       IDGenerator
	log       *slog.Logger

	ingredients    []Ingredient
	groceryList    []GroceryItem
	recentlyBought []GroceryItem
	loaded         bool
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for snapshot diagnostics.
// Default: slog.Default().
func WithLogger(log *slog.Logger) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

// NewStore creates a Store with injected persistence, clock and id
// collaborators. The store starts empty and unloaded; call Load before
// serving reads so persisted state is visible.
func NewStore(snapshots SnapshotStore, clock Clock, ids IDGenerator, opts ...StoreOption) *Store {
	s := &Store{
		snapshots: snapshots,
		clock:     clock,
		ids:       ids,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the three persisted snapshots into memory. Each collection
// loads independently: a failed or corrupt snapshot leaves that
// collection at its empty default and contributes a Persistence-kind
// error to the joined result, but never blocks the others.
//
// Loaded() reports true after Load returns, error or not - the store is
// usable either way.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error

	ingredients, err := loadCollection[Ingredient](ctx, s.snapshots, KeyIngredients)
	if err != nil {
		errs = append(errs, newPersistenceError("Load", "load ingredients snapshot", err))
	}
	grocery, err := loadCollection[GroceryItem](ctx, s.snapshots, KeyGroceryList)
	if err != nil {
		errs = append(errs, newPersistenceError("Load", "load grocery list snapshot", err))
	}
	bought, err := loadCollection[GroceryItem](ctx, s.snapshots, KeyRecentlyBought)
	if err != nil {
		errs = append(errs, newPersistenceError("Load", "load recently bought snapshot", err))
	}

	s.ingredients = ingredients
	s.groceryList = grocery
	s.recentlyBought = bought
	s.loaded = true

	s.log.Debug("snapshots loaded",
		"ingredients", len(s.ingredients),
		"grocery_list", len(s.groceryList),
		"recently_bought", len(s.recentlyBought),
	)

	return errors.Join(errs...)
}

func loadCollection[T any](ctx context.Context, snapshots SnapshotStore, key string) ([]T, error) {
	data, err := snapshots.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	return decodeSnapshot[T](data)
}

// Loaded reports whether the initial load of all three collections has
// completed. The presentation layer gates rendering on this flag.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Ingredients returns a copy of the ingredient collection in insertion
// order.
func (s *Store) Ingredients() []Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Ingredient, len(s.ingredients))
	for i, ing := range s.ingredients {
		out[i] = ing.clone()
	}
	return out
}

// GroceryList returns a copy of the active grocery list in insertion
// order.
func (s *Store) GroceryList() []GroceryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]GroceryItem, len(s.groceryList))
	copy(out, s.groceryList)
	return out
}

// RecentlyBought returns a copy of the recently bought list in
// insertion order.
func (s *Store) RecentlyBought() []GroceryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]GroceryItem, len(s.recentlyBought))
	copy(out, s.recentlyBought)
	return out
}

// Snapshot returns copies of all three collections taken under one
// lock. Readers that need cross-collection consistency (is this item
// on exactly one list?) must use Snapshot rather than the individual
// accessors, which each take the lock separately.
func (s *Store) Snapshot() (ingredients []Ingredient, groceryList, recentlyBought []GroceryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ingredients = make([]Ingredient, len(s.ingredients))
	for i, ing := range s.ingredients {
		ingredients[i] = ing.clone()
	}
	groceryList = make([]GroceryItem, len(s.groceryList))
	copy(groceryList, s.groceryList)
	recentlyBought = make([]GroceryItem, len(s.recentlyBought))
	copy(recentlyBought, s.recentlyBought)
	return ingredients, groceryList, recentlyBought
}

// FindIngredient returns the ingredient with the given id, if present.
func (s *Store) FindIngredient(id string) (Ingredient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ing := range s.ingredients {
		if ing.ID == id {
			return ing.clone(), true
		}
	}
	return Ingredient{}, false
}

// FindRecentlyBought returns the recently bought item with the given
// id, if present.
func (s *Store) FindRecentlyBought(id string) (GroceryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.recentlyBought {
		if item.ID == id {
			return item, true
		}
	}
	return GroceryItem{}, false
}

// AddIngredient creates an ingredient from the draft: a fresh unique id
// is assigned, AddedOn is stamped with the clock's now, and the result
// is appended to the ingredient collection.
//
// A blank name is rejected with an InvalidArgument error. A failed
// snapshot save returns a Persistence error; the ingredient is still in
// memory and authoritative for the rest of the session.
func (s *Store) AddIngredient(ctx context.Context, draft IngredientDraft) (Ingredient, error) {
	if isBlank(draft.Name) {
		return Ingredient{}, newInvalidArgument("AddIngredient", "ingredient name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ing := s.appendIngredientLocked(draft)
	return ing, s.saveIngredientsLocked(ctx, "AddIngredient")
}

// appendIngredientLocked materializes a draft and appends it. Caller
// holds s.mu.
func (s *Store) appendIngredientLocked(draft IngredientDraft) Ingredient {
	ing := Ingredient{
		ID:             s.ids.Generate(),
		Name:           draft.Name,
		Brand:          draft.Brand,
		AddedOn:        s.clock.Now(),
		Category:       draft.Category,
		Location:       draft.Location,
		ConfectionType: draft.ConfectionType,
		ExpirationDate: draft.ExpirationDate,
		IsFrozen:       draft.IsFrozen,
		Open:           draft.Open,
		Ripeness:       draft.Ripeness,
		Quantity:       draft.Quantity,
	}
	s.ingredients = append(s.ingredients, ing)
	return ing.clone()
}

// UpdateIngredient replaces the ingredient whose id matches
// updated.ID with the full new record. Silent no-op if no such
// ingredient exists; the caller held the only reference to that id, so
// a miss is a safe retry, not a failure.
func (s *Store) UpdateIngredient(ctx context.Context, updated Ingredient) error {
	if isBlank(updated.Name) {
		return newInvalidArgument("UpdateIngredient", "ingredient name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i, ing := range s.ingredients {
		if ing.ID == updated.ID {
			s.ingredients[i] = updated.clone()
			replaced = true
			break
		}
	}
	if !replaced {
		return nil
	}
	return s.saveIngredientsLocked(ctx, "UpdateIngredient")
}

// AddToGroceryList creates a grocery item with a fresh id and appends
// it to the active list. A duplicate quick-add - an active item whose
// name matches case-insensitively - is silently rejected, not merged.
func (s *Store) AddToGroceryList(ctx context.Context, name string) error {
	if isBlank(name) {
		return newInvalidArgument("AddToGroceryList", "item name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := canonicalName(name)
	for _, item := range s.groceryList {
		if canonicalName(item.Name) == key {
			return nil
		}
	}

	s.groceryList = append(s.groceryList, GroceryItem{
		ID:   s.ids.Generate(),
		Name: name,
	})
	return s.saveGroceryListLocked(ctx, "AddToGroceryList")
}

// BuyFromGroceryList moves the active item with the given id to the
// recently bought list. The move happens under the store lock, so no
// reader can observe the item absent from both lists or present in
// both. Silent no-op if the id is not on the active list.
func (s *Store) BuyFromGroceryList(ctx context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, item := range s.groceryList {
		if item.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	item := s.groceryList[idx]
	s.groceryList = append(s.groceryList[:idx], s.groceryList[idx+1:]...)
	s.recentlyBought = append(s.recentlyBought, item)

	// The two list snapshots persist independently (and may fail
	// independently); in-memory state is already consistent.
	return errors.Join(
		s.saveGroceryListLocked(ctx, "BuyFromGroceryList"),
		s.saveRecentlyBoughtLocked(ctx, "BuyFromGroceryList"),
	)
}

// AddIngredientFromBought composes ingredient creation with removal of
// the source item from the recently bought list, in one observable
// step. The ingredient is created even when the source id is no longer
// on the list (a retried call must not lose the kitchen entry).
func (s *Store) AddIngredientFromBought(ctx context.Context, source GroceryItem, draft IngredientDraft) (Ingredient, error) {
	if isBlank(draft.Name) {
		return Ingredient{}, newInvalidArgument("AddIngredientFromBought", "ingredient name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ing := s.appendIngredientLocked(draft)

	for i, item := range s.recentlyBought {
		if item.ID == source.ID {
			s.recentlyBought = append(s.recentlyBought[:i], s.recentlyBought[i+1:]...)
			break
		}
	}

	return ing, errors.Join(
		s.saveIngredientsLocked(ctx, "AddIngredientFromBought"),
		s.saveRecentlyBoughtLocked(ctx, "AddIngredientFromBought"),
	)
}

func (s *Store) saveIngredientsLocked(ctx context.Context, op string) error {
	return saveCollection(ctx, s.snapshots, KeyIngredients, s.ingredients, op)
}

func (s *Store) saveGroceryListLocked(ctx context.Context, op string) error {
	return saveCollection(ctx, s.snapshots, KeyGroceryList, s.groceryList, op)
}

func (s *Store) saveRecentlyBoughtLocked(ctx context.Context, op string) error {
	return saveCollection(ctx, s.snapshots, KeyRecentlyBought, s.recentlyBought, op)
}

func saveCollection[T any](ctx context.Context, snapshots SnapshotStore, key string, items []T, op string) error {
	data, err := encodeSnapshot(items)
	if err != nil {
		return newPersistenceError(op, "encode "+key+" snapshot", err)
	}
	if err := snapshots.Save(ctx, key, data); err != nil {
		return newPersistenceError(op, "save "+key+" snapshot", err)
	}
	return nil
}
