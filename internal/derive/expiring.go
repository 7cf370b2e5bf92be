package derive

import (
	"fmt"
	"math"
	"time"

	"github.com/roach88/larder/internal/pantry"
)

// DefaultDaysThreshold is the default expiring-soon window.
const DefaultDaysThreshold = 7

// urgentDays is the cutoff at or below which a dated item is urgent.
const urgentDays = 3

// Reason says why an ingredient landed in the expiring-soon set. When
// several apply, the displayed reason follows fixed precedence:
// Ripe, then Opened, then the expiration date.
type Reason string

const (
	ReasonRipe    Reason = "ripe"
	ReasonOpened  Reason = "opened"
	ReasonExpires Reason = "expires"
)

// ExpiringItem is one row of the expiring-soon view.
type ExpiringItem struct {
	Ingredient pantry.Ingredient `json:"ingredient"`
	Reason     Reason            `json:"reason"`
	// Detail is the display line for the row: "Ripe", "Opened",
	// "Expired!" or "Expires in N day(s)".
	Detail string `json:"detail"`
	// Urgent marks dated rows with three or fewer days left (or
	// already expired).
	Urgent bool `json:"urgent"`
}

// ExpiringSoon returns the ingredients needing imminent attention
// within the next daysThreshold days of now, in collection order.
//
// Membership:
//   - frozen: included only when the expiration date falls inside
//     [now, now+threshold]; freezing is assumed to have paused spoilage
//     outside that window, so frozen items with no expiration, or
//     already expired, are excluded even if also open or ripe
//   - ripeness "ripe/mature": included unconditionally
//   - opened: included unconditionally
//   - otherwise: included when the expiration date is at or before
//     now+threshold; a past-due date stays in the set and reads
//     "Expired!" - an item does not stop needing attention the day
//     after its date passes
func ExpiringSoon(ingredients []pantry.Ingredient, now time.Time, daysThreshold int) []ExpiringItem {
	threshold := now.AddDate(0, 0, daysThreshold)

	var out []ExpiringItem
	for _, ing := range ingredients {
		if !expiresSoon(ing, now, threshold) {
			continue
		}
		out = append(out, describe(ing, now))
	}
	return out
}

func expiresSoon(ing pantry.Ingredient, now, threshold time.Time) bool {
	if ing.IsFrozen {
		return inWindow(ing.ExpirationDate, now, threshold)
	}
	if ing.Ripeness != nil && ing.Ripeness.Status == pantry.RipenessRipe {
		return true
	}
	if ing.Open != nil && ing.Open.Status {
		return true
	}
	return ing.ExpirationDate != nil && !ing.ExpirationDate.After(threshold)
}

// inWindow reports whether expiration exists and lies in [now, threshold].
func inWindow(expiration *time.Time, now, threshold time.Time) bool {
	if expiration == nil {
		return false
	}
	return !expiration.Before(now) && !expiration.After(threshold)
}

// describe computes the display detail for a qualifying ingredient.
// Reason precedence is fixed: ripe, opened, then the date math.
func describe(ing pantry.Ingredient, now time.Time) ExpiringItem {
	item := ExpiringItem{Ingredient: ing}

	switch {
	case ing.Ripeness != nil && ing.Ripeness.Status == pantry.RipenessRipe:
		item.Reason = ReasonRipe
		item.Detail = "Ripe"
	case ing.Open != nil && ing.Open.Status:
		item.Reason = ReasonOpened
		item.Detail = "Opened"
	case ing.ExpirationDate != nil:
		item.Reason = ReasonExpires
		days := DaysLeft(now, *ing.ExpirationDate)
		if days <= 0 {
			item.Detail = "Expired!"
			item.Urgent = true
		} else {
			item.Detail = fmt.Sprintf("Expires in %d day(s)", days)
			item.Urgent = days <= urgentDays
		}
	}
	return item
}

// DaysLeft is the number of days until expiration, rounded up:
// ceil((expiration - now) / 24h). Zero or negative means expired.
func DaysLeft(now, expiration time.Time) int {
	return int(math.Ceil(expiration.Sub(now).Hours() / 24))
}
