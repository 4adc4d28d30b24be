// Package redemption implements the deal redemption engine: slot
// assignment, pricing, completeness checks and the commit into a cart.
//
// Deal-specific behavior comes entirely from the deal's DealRule; the
// engine never switches on deal IDs.
package redemption

import (
	"errors"
	"slices"

	"github.com/mmynk/tastyhub/internal/catalog"
	"github.com/mmynk/tastyhub/internal/models"
)

var (
	ErrNotEligible    = errors.New("item is not eligible for this deal")
	ErrEmptySelection = errors.New("no items selected")
	ErrIncomplete     = errors.New("selection does not satisfy the deal")
	ErrSessionClosed  = errors.New("redemption session has ended")
	ErrDealExpired    = errors.New("deal has expired")
)

// bonus marks a selected item that occupies no slot.
const bonus = -1

// Toggle returns the selection after the user taps item. An item already
// selected is removed; otherwise it is placed according to the deal rule.
// The input slice is never modified.
func Toggle(deal models.Deal, selection []models.MenuItem, item models.MenuItem) ([]models.MenuItem, error) {
	if i := indexOf(selection, item.ID); i >= 0 {
		return slices.Delete(slices.Clone(selection), i, i+1), nil
	}
	if !catalog.EligibleFor(deal, item) {
		return nil, ErrNotEligible
	}

	switch deal.Rule.Kind {
	case models.RuleSingleSlot:
		return []models.MenuItem{item}, nil
	case models.RuleSlotted:
		return placeInSlot(deal.Rule.Slots, selection, item), nil
	default:
		return append(slices.Clone(selection), item), nil
	}
}

// placeInSlot puts item in the first free slot it matches, or replaces the
// occupant of the first matching slot when all are taken. Items matching no
// slot are appended as bonus items.
func placeInSlot(slots []models.SlotRule, selection []models.MenuItem, item models.MenuItem) []models.MenuItem {
	next := slices.Clone(selection)
	matching := matchingSlots(slots, item)
	if len(matching) == 0 {
		return append(next, item)
	}

	occupant := occupants(slots, selection)
	for _, slot := range matching {
		if occupant[slot] < 0 {
			return append(next, item)
		}
	}

	old := occupant[matching[0]]
	next = slices.Delete(next, old, old+1)
	return append(next, item)
}

// assign maps each selected item to its slot index, or bonus. Items are
// placed in selection order into the first free slot they match.
func assign(slots []models.SlotRule, selection []models.MenuItem) []int {
	taken := make([]bool, len(slots))
	out := make([]int, len(selection))
	for i, item := range selection {
		out[i] = bonus
		for _, slot := range matchingSlots(slots, item) {
			if !taken[slot] {
				taken[slot] = true
				out[i] = slot
				break
			}
		}
	}
	return out
}

// occupants returns, per slot, the selection index occupying it or -1.
func occupants(slots []models.SlotRule, selection []models.MenuItem) []int {
	occ := make([]int, len(slots))
	for i := range occ {
		occ[i] = -1
	}
	for i, slot := range assign(slots, selection) {
		if slot != bonus {
			occ[slot] = i
		}
	}
	return occ
}

func matchingSlots(slots []models.SlotRule, item models.MenuItem) []int {
	var out []int
	for i, s := range slots {
		if item.HasSlot(s.Category) {
			out = append(out, i)
		}
	}
	return out
}

func indexOf(items []models.MenuItem, id string) int {
	return slices.IndexFunc(items, func(m models.MenuItem) bool { return m.ID == id })
}
