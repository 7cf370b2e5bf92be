package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/roach88/larder/internal/derive"
)

// TestExpiringReport pins the text report byte for byte: dated rows
// inside the window, an expired row flagged urgent, a ripe row, and an
// item outside the window left out.
func TestExpiringReport(t *testing.T) {
	opts := testRootOptions(t, "ing-1", "ing-2", "ing-3", "ing-4")

	run(t, NewAddCommand(opts), "Milk", "--expires", "2024-01-05")
	run(t, NewAddCommand(opts), "Old Yogurt", "--expires", "2023-12-20")
	run(t, NewAddCommand(opts), "Jam", "--expires", "2024-02-01")
	run(t, NewAddCommand(opts), "Avocado")
	run(t, NewEditCommand(opts), "ing-4", "--ripeness", "ripe/mature")

	out := run(t, NewExpiringCommand(opts))

	g := goldie.New(t)
	g.Assert(t, "expiring_report", []byte(out))
}

func TestExpiringEmpty(t *testing.T) {
	opts := testRootOptions(t)

	out := run(t, NewExpiringCommand(opts))
	assert.Contains(t, out, "Expiring in Next 7 Days")
	assert.Contains(t, out, "Nothing is expiring soon.")
}

func TestExpiringDaysFlagWidensWindow(t *testing.T) {
	opts := testRootOptions(t, "ing-1")
	run(t, NewAddCommand(opts), "Jam", "--expires", "2024-02-01")

	out := run(t, NewExpiringCommand(opts))
	assert.NotContains(t, out, "Jam")

	out = run(t, NewExpiringCommand(opts), "--days", "45")
	assert.Contains(t, out, "Expiring in Next 45 Days")
	assert.Contains(t, out, "Jam")
}

func TestExpiringJSON(t *testing.T) {
	opts := testRootOptions(t, "ing-1")
	run(t, NewAddCommand(opts), "Milk", "--expires", "2024-01-05")

	opts.Format = "json"
	out := run(t, NewExpiringCommand(opts))

	var items []derive.ExpiringItem
	decodeData(t, out, &items)
	assert.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Ingredient.Name)
	assert.Equal(t, derive.ReasonExpires, items[0].Reason)
	assert.Equal(t, "Expires in 4 day(s)", items[0].Detail)
	assert.False(t, items[0].Urgent)
}
