package redemption

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/money"
)

// Line is one priced item of a selection.
type Line struct {
	Item models.MenuItem `json:"item"`

	// Slot is the slot name the item occupies, empty for bonus items.
	Slot string `json:"slot,omitempty"`

	Price decimal.Decimal `json:"price"`
}

// Quote is the priced view of a selection.
type Quote struct {
	Lines    []Line          `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// LinePrice is the price of item as one line of a complete redemption of
// deal. Fixed discounts are floored at zero.
//
// Slotted deals price item by the first slot it can fill: a free slot costs
// nothing, and with a free slot present every other slot pays catalog price.
// Items that fill no slot pay catalog price.
func LinePrice(item models.MenuItem, deal models.Deal) decimal.Decimal {
	if deal.Rule.Kind == models.RuleSlotted {
		slots := deal.Rule.Slots
		match := matchingSlots(slots, item)
		switch {
		case len(match) == 0:
			return item.Price
		case slots[match[0]].Free:
			return decimal.Zero
		case hasFreeSlot(slots):
			return item.Price
		}
	}
	return discounted(item.Price, deal)
}

func discounted(price decimal.Decimal, deal models.Deal) decimal.Decimal {
	switch deal.DiscountType {
	case models.DiscountPercentage:
		return money.PercentOff(price, deal.DiscountAmount)
	case models.DiscountFixed:
		return money.Clamp(price.Sub(deal.DiscountAmount))
	default:
		return price
	}
}

// Price computes line prices and totals for selection under deal.
//
// Percentage deals discount every discountable line. Fixed deals subtract
// the amount once, taking it from discountable lines in selection order so
// that line prices always sum to the total and never go negative.
//
// For slotted deals with a free slot, the free occupant costs nothing once
// every other required slot is filled; all other lines pay catalog price.
// Slotted deals without a free slot discount slot occupants only. Bonus
// items always pay catalog price.
func Price(deal models.Deal, selection []models.MenuItem) Quote {
	q := Quote{Lines: make([]Line, len(selection)), Subtotal: decimal.Zero}
	discountable := make([]bool, len(selection))

	for i, item := range selection {
		q.Lines[i] = Line{Item: item, Price: item.Price}
		q.Subtotal = q.Subtotal.Add(item.Price)
	}

	if deal.Rule.Kind == models.RuleSlotted {
		slots := deal.Rule.Slots
		assigned := assign(slots, selection)
		free := hasFreeSlot(slots)
		paired := requiredFilled(slots, assigned, true)

		for i, slot := range assigned {
			if slot == bonus {
				continue
			}
			q.Lines[i].Slot = slots[slot].Name
			switch {
			case slots[slot].Free:
				if paired {
					q.Lines[i].Price = decimal.Zero
				}
			case !free:
				discountable[i] = true
			}
		}
	} else {
		for i := range discountable {
			discountable[i] = true
		}
	}

	switch deal.DiscountType {
	case models.DiscountPercentage:
		for i := range q.Lines {
			if discountable[i] {
				q.Lines[i].Price = money.PercentOff(q.Lines[i].Price, deal.DiscountAmount)
			}
		}
	case models.DiscountFixed:
		remaining := money.Clamp(deal.DiscountAmount)
		for i := range q.Lines {
			if !discountable[i] || !remaining.IsPositive() {
				continue
			}
			cut := decimal.Min(remaining, q.Lines[i].Price)
			q.Lines[i].Price = q.Lines[i].Price.Sub(cut)
			remaining = remaining.Sub(cut)
		}
	}

	prices := make([]decimal.Decimal, len(q.Lines))
	for i, l := range q.Lines {
		prices[i] = l.Price
	}
	q.Total = money.Sum(prices...)
	q.Discount = q.Subtotal.Sub(q.Total)
	return q
}

func hasFreeSlot(slots []models.SlotRule) bool {
	for _, s := range slots {
		if s.Free {
			return true
		}
	}
	return false
}

// requiredFilled reports whether every required slot is occupied. With
// skipFree set, free slots are ignored.
func requiredFilled(slots []models.SlotRule, assigned []int, skipFree bool) bool {
	filled := make([]bool, len(slots))
	for _, slot := range assigned {
		if slot != bonus {
			filled[slot] = true
		}
	}
	for i, s := range slots {
		if !s.Required || (skipFree && s.Free) {
			continue
		}
		if !filled[i] {
			return false
		}
	}
	return true
}
