package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType is how a deal's DiscountAmount is interpreted.
type DiscountType string

const (
	// DiscountPercentage takes DiscountAmount percent (0-100) off each eligible line.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed subtracts DiscountAmount once from the order sum.
	DiscountFixed DiscountType = "fixed"
)

// AppliesTo selects which catalog items a deal can be used with.
type AppliesTo string

const (
	AppliesToAll      AppliesTo = "all"
	AppliesToCategory AppliesTo = "category"
	AppliesToSpecific AppliesTo = "specific"
)

// RuleKind discriminates the DealRule variants.
type RuleKind string

const (
	// RuleUncapped allows any number of eligible items.
	RuleUncapped RuleKind = "uncapped"
	// RuleSingleSlot allows exactly one item; selecting another replaces it.
	RuleSingleSlot RuleKind = "single_slot"
	// RuleSlotted assigns items to named slots, one occupant per slot.
	RuleSlotted RuleKind = "slotted"
)

// SlotRule describes one named role within a slotted deal.
type SlotRule struct {
	// Name is shown to users, e.g. "sandwich".
	Name string `json:"name"`

	// Category is matched against MenuItem.SlotCategories.
	Category string `json:"category"`

	// Required slots must be occupied for the selection to be complete.
	Required bool `json:"required"`

	// Free slots price their occupant at zero once every other required
	// slot is occupied.
	Free bool `json:"free"`
}

// DealRule is the declarative selection rule attached to a Deal.
type DealRule struct {
	Kind  RuleKind   `json:"kind"`
	Slots []SlotRule `json:"slots,omitempty"`
}

// Deal represents a promotional offer.
type Deal struct {
	// ID is the unique identifier (e.g. "lunch-special").
	ID string `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description"`

	DiscountType   DiscountType    `json:"discount_type"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`

	AppliesTo AppliesTo `json:"applies_to"`

	// Categories is used when AppliesTo is "category".
	Categories []string `json:"categories,omitempty"`

	// Items is used when AppliesTo is "specific".
	Items []string `json:"items,omitempty"`

	ValidUntil time.Time `json:"valid_until"`

	Rule DealRule `json:"rule"`
}

// Expired reports whether the deal is no longer redeemable at now.
func (d Deal) Expired(now time.Time) bool {
	return !d.ValidUntil.IsZero() && now.After(d.ValidUntil)
}
