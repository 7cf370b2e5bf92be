package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/larder/internal/pantry"
)

var now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func named(items []ExpiringItem) map[string]ExpiringItem {
	out := make(map[string]ExpiringItem, len(items))
	for _, item := range items {
		out[item.Ingredient.Name] = item
	}
	return out
}

func TestExpiringSoon_DateWindow(t *testing.T) {
	ingredients := []pantry.Ingredient{
		{ID: "1", Name: "Milk", ExpirationDate: date(2024, 1, 5)},
		{ID: "2", Name: "Old Yogurt", ExpirationDate: date(2023, 12, 20)},
		{ID: "3", Name: "Jam", ExpirationDate: date(2024, 2, 1)},
		{ID: "4", Name: "Salt"}, // no expiration, nothing else either
	}

	items := ExpiringSoon(ingredients, now, DefaultDaysThreshold)
	require.Len(t, items, 2)
	byName := named(items)

	milk := byName["Milk"]
	assert.Equal(t, ReasonExpires, milk.Reason)
	assert.Equal(t, "Expires in 4 day(s)", milk.Detail)
	assert.False(t, milk.Urgent)

	yogurt := byName["Old Yogurt"]
	assert.Equal(t, "Expired!", yogurt.Detail, "past-due items stay in the set")
	assert.True(t, yogurt.Urgent)

	assert.NotContains(t, byName, "Jam", "beyond the window")
	assert.NotContains(t, byName, "Salt")
}

func TestExpiringSoon_UrgencyCutoff(t *testing.T) {
	ingredients := []pantry.Ingredient{
		{ID: "1", Name: "Three", ExpirationDate: date(2024, 1, 4)},
		{ID: "2", Name: "Four", ExpirationDate: date(2024, 1, 5)},
	}

	byName := named(ExpiringSoon(ingredients, now, 7))
	assert.True(t, byName["Three"].Urgent, "3 days left is urgent")
	assert.Equal(t, "Expires in 3 day(s)", byName["Three"].Detail)
	assert.False(t, byName["Four"].Urgent, "4 days left is not")
}

func TestExpiringSoon_RipeAndOpenedOverrideDates(t *testing.T) {
	ingredients := []pantry.Ingredient{
		{
			ID: "1", Name: "Avocado",
			Ripeness: &pantry.Ripeness{Status: pantry.RipenessRipe, LastChecked: now},
		},
		{
			ID: "2", Name: "Passata",
			Open:           &pantry.Open{Status: true},
			ExpirationDate: date(2025, 6, 1), // far out, opened wins anyway
		},
		{
			ID: "3", Name: "Green Banana",
			Ripeness: &pantry.Ripeness{Status: pantry.RipenessGreen, LastChecked: now},
		},
	}

	items := ExpiringSoon(ingredients, now, 7)
	require.Len(t, items, 2)
	byName := named(items)

	assert.Equal(t, "Ripe", byName["Avocado"].Detail)
	assert.Equal(t, ReasonRipe, byName["Avocado"].Reason)
	assert.Equal(t, "Opened", byName["Passata"].Detail)
	assert.Equal(t, ReasonOpened, byName["Passata"].Reason)
	assert.NotContains(t, byName, "Green Banana", "only ripe/mature overrides")
}

func TestExpiringSoon_ReasonPrecedence(t *testing.T) {
	// Ripe beats opened beats the date math.
	ing := pantry.Ingredient{
		ID: "1", Name: "Brie",
		Ripeness:       &pantry.Ripeness{Status: pantry.RipenessRipe, LastChecked: now},
		Open:           &pantry.Open{Status: true},
		ExpirationDate: date(2024, 1, 2),
	}

	items := ExpiringSoon([]pantry.Ingredient{ing}, now, 7)
	require.Len(t, items, 1)
	assert.Equal(t, "Ripe", items[0].Detail)
}

func TestExpiringSoon_FrozenJudgedByWindowOnly(t *testing.T) {
	ingredients := []pantry.Ingredient{
		{ID: "1", Name: "Frozen In Window", IsFrozen: true, ExpirationDate: date(2024, 1, 3)},
		{ID: "2", Name: "Frozen No Date", IsFrozen: true},
		{ID: "3", Name: "Frozen Expired", IsFrozen: true, ExpirationDate: date(2023, 12, 20)},
		{
			// Frozen short-circuits the ripe/opened overrides for
			// membership; spoilage is paused.
			ID: "4", Name: "Frozen But Opened", IsFrozen: true,
			Open: &pantry.Open{Status: true},
		},
		{ID: "5", Name: "Frozen Far Out", IsFrozen: true, ExpirationDate: date(2024, 6, 1)},
	}

	items := ExpiringSoon(ingredients, now, 7)
	require.Len(t, items, 1)
	assert.Equal(t, "Frozen In Window", items[0].Ingredient.Name)
	assert.Equal(t, "Expires in 2 day(s)", items[0].Detail)
	assert.True(t, items[0].Urgent)
}

func TestExpiringSoon_BoundaryDates(t *testing.T) {
	ingredients := []pantry.Ingredient{
		{ID: "1", Name: "Today", ExpirationDate: date(2024, 1, 1)},
		{ID: "2", Name: "Last Day", ExpirationDate: date(2024, 1, 8)},
		{ID: "3", Name: "One Past", ExpirationDate: date(2024, 1, 9)},
	}

	byName := named(ExpiringSoon(ingredients, now, 7))
	require.Len(t, byName, 2)
	assert.Equal(t, "Expired!", byName["Today"].Detail, "zero days left reads as expired")
	assert.Equal(t, "Expires in 7 day(s)", byName["Last Day"].Detail)
	assert.NotContains(t, byName, "One Past")
}

func TestExpiringSoon_PreservesCollectionOrder(t *testing.T) {
	ingredients := []pantry.Ingredient{
		{ID: "1", Name: "B", ExpirationDate: date(2024, 1, 6)},
		{ID: "2", Name: "A", ExpirationDate: date(2024, 1, 2)},
	}

	items := ExpiringSoon(ingredients, now, 7)
	require.Len(t, items, 2)
	assert.Equal(t, "B", items[0].Ingredient.Name)
	assert.Equal(t, "A", items[1].Ingredient.Name)
}

func TestDaysLeft_RoundsUp(t *testing.T) {
	assert.Equal(t, 4, DaysLeft(now, now.AddDate(0, 0, 4)))
	assert.Equal(t, 1, DaysLeft(now, now.Add(6*time.Hour)), "partial day rounds up")
	assert.Equal(t, 0, DaysLeft(now, now))
	assert.Equal(t, -11, DaysLeft(now, now.AddDate(0, 0, -11)))
}
