package catalog

import (
	"slices"
	"strings"

	"github.com/mmynk/tastyhub/internal/models"
)

// FilterByDeal returns the items a deal can be redeemed with, preserving
// input order. Unknown AppliesTo values match nothing.
func FilterByDeal(deal models.Deal, items []models.MenuItem) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if EligibleFor(deal, item) {
			out = append(out, item)
		}
	}
	return out
}

// EligibleFor reports whether item passes the deal's AppliesTo scope.
func EligibleFor(deal models.Deal, item models.MenuItem) bool {
	switch deal.AppliesTo {
	case models.AppliesToAll:
		return true
	case models.AppliesToCategory:
		return slices.ContainsFunc(deal.Categories, func(c string) bool {
			return strings.EqualFold(c, item.Category)
		})
	case models.AppliesToSpecific:
		return slices.Contains(deal.Items, item.ID)
	default:
		return false
	}
}

// IsSandwich reports whether item can fill a sandwich slot.
func IsSandwich(item models.MenuItem) bool { return item.HasSlot(models.SlotSandwich) }

// IsSide reports whether item can fill a side slot.
func IsSide(item models.MenuItem) bool { return item.HasSlot(models.SlotSide) }

// IsBreakfast reports whether item can fill a breakfast slot.
func IsBreakfast(item models.MenuItem) bool { return item.HasSlot(models.SlotBreakfast) }

// IsCoffee reports whether item can fill a coffee slot. Tea and other
// beverages do not qualify.
func IsCoffee(item models.MenuItem) bool { return item.HasSlot(models.SlotCoffee) }
