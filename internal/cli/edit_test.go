package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/larder/internal/pantry"
)

func TestEditFreezeExtendsExpiration(t *testing.T) {
	opts := testRootOptions(t, "ing-1")
	run(t, NewAddCommand(opts), "Chicken", "--expires", "2024-01-10")

	opts.Format = "json"
	out := run(t, NewEditCommand(opts), "ing-1", "--frozen=true")

	var ing pantry.Ingredient
	decodeData(t, out, &ing)
	assert.True(t, ing.IsFrozen)
	require.NotNil(t, ing.ExpirationDate)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), *ing.ExpirationDate)
}

func TestEditFreezeDoesNotReExtend(t *testing.T) {
	opts := testRootOptions(t, "ing-1")
	run(t, NewAddCommand(opts), "Chicken", "--expires", "2024-01-10")
	run(t, NewEditCommand(opts), "ing-1", "--frozen=true")

	opts.Format = "json"
	out := run(t, NewEditCommand(opts), "ing-1", "--frozen=true", "--location", "Freezer")

	var ing pantry.Ingredient
	decodeData(t, out, &ing)
	assert.Equal(t, "Freezer", ing.Location)
	require.NotNil(t, ing.ExpirationDate)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), *ing.ExpirationDate,
		"saving an already frozen ingredient must not move the date again")
}

func TestEditOpenStampsOpenedOnOnce(t *testing.T) {
	opts := testRootOptions(t, "ing-1")
	run(t, NewAddCommand(opts), "Passata")

	opts.Format = "json"
	out := run(t, NewEditCommand(opts), "ing-1", "--open=true")

	var ing pantry.Ingredient
	decodeData(t, out, &ing)
	require.NotNil(t, ing.Open)
	assert.True(t, ing.Open.Status)
	require.NotNil(t, ing.Open.OpenedOn)
	assert.Equal(t, testNow, *ing.Open.OpenedOn)

	// Closing keeps the original stamp.
	out = run(t, NewEditCommand(opts), "ing-1", "--open=false")
	decodeData(t, out, &ing)
	assert.False(t, ing.Open.Status)
	require.NotNil(t, ing.Open.OpenedOn)
	assert.Equal(t, testNow, *ing.Open.OpenedOn)
}

func TestEditRipenessStampsLastChecked(t *testing.T) {
	opts := testRootOptions(t, "ing-1")
	run(t, NewAddCommand(opts), "Avocado")

	opts.Format = "json"
	out := run(t, NewEditCommand(opts), "ing-1", "--ripeness", "green")

	var ing pantry.Ingredient
	decodeData(t, out, &ing)
	require.NotNil(t, ing.Ripeness)
	assert.Equal(t, pantry.RipenessGreen, ing.Ripeness.Status)
	assert.Equal(t, testNow, ing.Ripeness.LastChecked)
}

func TestEditInvalidRipeness(t *testing.T) {
	opts := testRootOptions(t, "ing-1")
	run(t, NewAddCommand(opts), "Avocado")

	_, err := runE(t, NewEditCommand(opts), "ing-1", "--ripeness", "mushy")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid ripeness")
}

func TestEditUnknownID(t *testing.T) {
	opts := testRootOptions(t)

	_, err := runE(t, NewEditCommand(opts), "missing", "--name", "X")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "no ingredient with id missing")
}

func TestEditUnsetFlagsPreserveFields(t *testing.T) {
	opts := testRootOptions(t, "ing-1")
	run(t, NewAddCommand(opts), "Milk", "--brand", "Granarolo", "--category", "Dairy")

	opts.Format = "json"
	out := run(t, NewEditCommand(opts), "ing-1", "--location", "Fridge")

	var ing pantry.Ingredient
	decodeData(t, out, &ing)
	assert.Equal(t, "Milk", ing.Name)
	assert.Equal(t, "Granarolo", ing.Brand)
	assert.Equal(t, "Dairy", ing.Category)
	assert.Equal(t, "Fridge", ing.Location)
}
