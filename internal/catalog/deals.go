package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tastyhub/internal/models"
)

// Deals is an immutable collection of promotional offers.
type Deals struct {
	deals []models.Deal
	byID  map[string]int
}

// NewDeals builds a deal catalog. Later duplicates of an ID are dropped.
func NewDeals(deals []models.Deal) *Deals {
	d := &Deals{byID: make(map[string]int, len(deals))}
	for _, deal := range deals {
		if _, dup := d.byID[deal.ID]; dup {
			continue
		}
		d.byID[deal.ID] = len(d.deals)
		d.deals = append(d.deals, deal)
	}
	return d
}

// DefaultDeals returns the built-in TastyHub promotions.
func DefaultDeals() *Deals {
	return NewDeals(defaultDeals())
}

// All returns every deal, including expired ones.
func (d *Deals) All() []models.Deal {
	out := make([]models.Deal, len(d.deals))
	copy(out, d.deals)
	return out
}

// ByID looks up a deal.
func (d *Deals) ByID(id string) (models.Deal, bool) {
	i, ok := d.byID[id]
	if !ok {
		return models.Deal{}, false
	}
	return d.deals[i], true
}

// Active returns the deals still redeemable at now.
func (d *Deals) Active(now time.Time) []models.Deal {
	var out []models.Deal
	for _, deal := range d.deals {
		if !deal.Expired(now) {
			out = append(out, deal)
		}
	}
	return out
}

var dealsValidUntil = time.Date(2027, time.December, 31, 23, 59, 59, 0, time.UTC)

func defaultDeals() []models.Deal {
	return []models.Deal{
		{
			ID:             "lunch-special",
			Title:          "Lunch Special",
			Description:    "Get a free side with any sandwich.",
			DiscountType:   models.DiscountPercentage,
			DiscountAmount: decimal.NewFromInt(100),
			AppliesTo:      models.AppliesToCategory,
			Categories:     []string{models.CategoryLunch, models.CategorySides},
			ValidUntil:     dealsValidUntil,
			Rule: models.DealRule{
				Kind: models.RuleSlotted,
				Slots: []models.SlotRule{
					{Name: "sandwich", Category: models.SlotSandwich, Required: true},
					{Name: "side", Category: models.SlotSide, Required: true, Free: true},
				},
			},
		},
		{
			ID:             "happy-hour",
			Title:          "Happy Hour",
			Description:    "20% off any one beverage.",
			DiscountType:   models.DiscountPercentage,
			DiscountAmount: decimal.NewFromInt(20),
			AppliesTo:      models.AppliesToCategory,
			Categories:     []string{models.CategoryBeverages},
			ValidUntil:     dealsValidUntil,
			Rule:           models.DealRule{Kind: models.RuleSingleSlot},
		},
		{
			ID:             "breakfast-bundle",
			Title:          "Breakfast Bundle",
			Description:    "Any breakfast plate plus a coffee, 15% off.",
			DiscountType:   models.DiscountPercentage,
			DiscountAmount: decimal.NewFromInt(15),
			AppliesTo:      models.AppliesToCategory,
			Categories:     []string{models.CategoryBreakfast, models.CategoryBeverages},
			ValidUntil:     dealsValidUntil,
			Rule: models.DealRule{
				Kind: models.RuleSlotted,
				Slots: []models.SlotRule{
					{Name: "breakfast item", Category: models.SlotBreakfast, Required: true},
					{Name: "coffee", Category: models.SlotCoffee, Required: true},
				},
			},
		},
		{
			ID:             "sweet-weekend",
			Title:          "Sweet Weekend",
			Description:    "25% off every dessert.",
			DiscountType:   models.DiscountPercentage,
			DiscountAmount: decimal.NewFromInt(25),
			AppliesTo:      models.AppliesToCategory,
			Categories:     []string{models.CategoryDesserts},
			ValidUntil:     dealsValidUntil,
			Rule:           models.DealRule{Kind: models.RuleUncapped},
		},
		{
			ID:             "family-feast",
			Title:          "Family Feast",
			Description:    "$10 off your dinner order.",
			DiscountType:   models.DiscountFixed,
			DiscountAmount: decimal.NewFromInt(10),
			AppliesTo:      models.AppliesToSpecific,
			Items:          []string{"grilled-salmon", "chicken-parmesan", "mushroom-risotto", "side-salad", "lava-cake"},
			ValidUntil:     dealsValidUntil,
			Rule:           models.DealRule{Kind: models.RuleUncapped},
		},
	}
}
