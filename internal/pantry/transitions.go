package pantry

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// frozenShelfLifeMonths is how many calendar months freezing pushes an
// expiration date out from the moment of freezing.
const frozenShelfLifeMonths = 6

// ExtendExpirationOnFreeze applies the freeze side effect to an
// expiration date. It must be called only when IsFrozen flips false to
// true; re-saving an already frozen ingredient, or thawing it, must not
// re-extend.
//
// If the current expiration is absent or earlier than now + 6 months,
// the returned expiration is now + 6 months. A later expiration is
// returned unchanged - freezing never shortens shelf life.
func ExtendExpirationOnFreeze(now time.Time, expiration *time.Time) *time.Time {
	frozenUntil := now.AddDate(0, frozenShelfLifeMonths, 0)
	if expiration == nil || expiration.Before(frozenUntil) {
		return &frozenUntil
	}
	t := *expiration
	return &t
}

// MarkOpened transitions an ingredient's open state. OpenedOn is
// stamped with now on the false-to-true transition and preserved on
// every later call; it is never reset once set.
func MarkOpened(now time.Time, prev *Open, status bool) *Open {
	next := &Open{Status: status}
	if prev != nil && prev.OpenedOn != nil {
		t := *prev.OpenedOn
		next.OpenedOn = &t
		return next
	}
	if status {
		next.OpenedOn = &now
	}
	return next
}

// SetRipeness returns a ripeness assessment stamped at now. Every
// (re)assignment of the status refreshes LastChecked, which is what the
// recheck derivation keys off.
func SetRipeness(now time.Time, status RipenessStatus) *Ripeness {
	return &Ripeness{Status: status, LastChecked: now}
}

// isBlank reports whether a name is empty after trimming whitespace.
// Blank names are rejected at the store boundary so they are never
// persisted.
func isBlank(name string) bool {
	return strings.TrimSpace(name) == ""
}

// canonicalName is the comparison key for grocery-item names: NFC
// normalized, case folded, surrounding whitespace dropped. Two names
// with the same key are duplicates for quick-add purposes.
func canonicalName(name string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(name)))
}
