package pantry

import "time"

// RipenessStatus is the coarse ripeness scale an ingredient can be
// assessed at. The values are persisted verbatim, so they must not be
// renamed.
type RipenessStatus string

const (
	RipenessNone     RipenessStatus = "none"
	RipenessGreen    RipenessStatus = "green"
	RipenessRipe     RipenessStatus = "ripe/mature"
	RipenessAdvanced RipenessStatus = "advanced"
	RipenessTooRipe  RipenessStatus = "too ripe"
)

// ValidRipenessStatuses lists the accepted ripeness values in display order.
var ValidRipenessStatuses = []RipenessStatus{
	RipenessNone,
	RipenessGreen,
	RipenessRipe,
	RipenessAdvanced,
	RipenessTooRipe,
}

// Valid reports whether s is one of the known ripeness values.
func (s RipenessStatus) Valid() bool {
	for _, v := range ValidRipenessStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Open records whether an ingredient's packaging has been opened.
// OpenedOn is stamped the instant Status transitions false to true and
// is never reset afterwards.
type Open struct {
	Status   bool       `json:"status"`
	OpenedOn *time.Time `json:"openedOn,omitempty"`
}

// Ripeness is an ingredient's latest ripeness assessment. LastChecked
// is re-stamped every time Status is (re)assigned.
type Ripeness struct {
	Status      RipenessStatus `json:"status"`
	LastChecked time.Time      `json:"lastChecked"`
}

// Quantity is how much of an ingredient remains, in caller-chosen units.
type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Ingredient is a tracked perishable kitchen item. ID and AddedOn are
// assigned by the store at creation and never reassigned.
type Ingredient struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Brand          string     `json:"brand,omitempty"`
	AddedOn        time.Time  `json:"addedOn"`
	Category       string     `json:"category,omitempty"`
	Location       string     `json:"location,omitempty"`
	ConfectionType string     `json:"confectionType,omitempty"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	IsFrozen       bool       `json:"isFrozen"`
	Open           *Open      `json:"open,omitempty"`
	Ripeness       *Ripeness  `json:"ripeness,omitempty"`
	Quantity       *Quantity  `json:"quantity,omitempty"`
}

// IngredientDraft is the full Ingredient shape minus the store-assigned
// ID and AddedOn fields. Drafts are what callers (and the barcode
// prefill path) hand to AddIngredient.
type IngredientDraft struct {
	Name           string     `json:"name"`
	Brand          string     `json:"brand,omitempty"`
	Category       string     `json:"category,omitempty"`
	Location       string     `json:"location,omitempty"`
	ConfectionType string     `json:"confectionType,omitempty"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	IsFrozen       bool       `json:"isFrozen"`
	Open           *Open      `json:"open,omitempty"`
	Ripeness       *Ripeness  `json:"ripeness,omitempty"`
	Quantity       *Quantity  `json:"quantity,omitempty"`
}

// GroceryItem is a to-buy entry. It lives in exactly one of the two
// grocery collections (active or recently bought) at any time.
type GroceryItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// clone returns a deep copy of the ingredient so accessors never leak
// aliases to the store's internal state.
func (i Ingredient) clone() Ingredient {
	out := i
	if i.ExpirationDate != nil {
		t := *i.ExpirationDate
		out.ExpirationDate = &t
	}
	if i.Open != nil {
		o := *i.Open
		if i.Open.OpenedOn != nil {
			t := *i.Open.OpenedOn
			o.OpenedOn = &t
		}
		out.Open = &o
	}
	if i.Ripeness != nil {
		r := *i.Ripeness
		out.Ripeness = &r
	}
	if i.Quantity != nil {
		q := *i.Quantity
		out.Quantity = &q
	}
	return out
}
