package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGroceryFlow walks an item through the full lifecycle: quick-add,
// buy, stock into the kitchen. Every step runs a fresh command against
// the same database file, so the flow also proves the snapshots
// survive process restarts.
func TestGroceryFlow(t *testing.T) {
	opts := testRootOptions(t, "g-1", "ing-1")

	out := run(t, NewGroceryCommand(opts), "add", "Olive Oil")
	assert.Contains(t, out, "Olive Oil was added to your grocery list.")

	out = run(t, NewGroceryCommand(opts), "list")
	assert.Contains(t, out, "Grocery List")
	assert.Contains(t, out, "g-1  Olive Oil")

	out = run(t, NewGroceryCommand(opts), "buy", "g-1")
	assert.Contains(t, out, "Olive Oil was marked as bought.")

	out = run(t, NewGroceryCommand(opts), "list")
	assert.Contains(t, out, "Your grocery list is empty.")

	out = run(t, NewGroceryCommand(opts), "list", "--bought")
	assert.Contains(t, out, "Recently Bought")
	assert.Contains(t, out, "g-1  Olive Oil")

	out = run(t, NewGroceryCommand(opts), "stock", "g-1",
		"--category", "Pantry", "--expires", "2025-06-01")
	assert.Contains(t, out, "Olive Oil was added to your kitchen! (id ing-1)")

	out = run(t, NewGroceryCommand(opts), "list", "--bought")
	assert.Contains(t, out, "Nothing has been bought recently.")

	out = run(t, NewListCommand(opts))
	assert.Contains(t, out, "ing-1  Olive Oil (No brand)")
}

func TestGroceryAddDuplicateIsSkipped(t *testing.T) {
	opts := testRootOptions(t, "g-1", "g-2")

	run(t, NewGroceryCommand(opts), "add", "Olive Oil")
	out := run(t, NewGroceryCommand(opts), "add", "  OLIVE oil ")
	assert.Contains(t, out, "is already on your grocery list.")

	out = run(t, NewGroceryCommand(opts), "list")
	assert.NotContains(t, out, "g-2", "duplicate must not create a second entry")
}

func TestGroceryBuyUnknownID(t *testing.T) {
	opts := testRootOptions(t)

	_, err := runE(t, NewGroceryCommand(opts), "buy", "missing")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "no active grocery item with id missing")
}

func TestGroceryStockUnknownID(t *testing.T) {
	opts := testRootOptions(t)

	_, err := runE(t, NewGroceryCommand(opts), "stock", "missing")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "no recently bought item with id missing")
}

func TestGroceryStockNameOverride(t *testing.T) {
	opts := testRootOptions(t, "g-1", "ing-1")

	run(t, NewGroceryCommand(opts), "add", "tomatoes")
	run(t, NewGroceryCommand(opts), "buy", "g-1")

	out := run(t, NewGroceryCommand(opts), "stock", "g-1", "--name", "Cherry Tomatoes")
	assert.Contains(t, out, "Cherry Tomatoes was added to your kitchen!")
}
