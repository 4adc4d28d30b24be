package catalog

import (
	"testing"
	"time"

	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/money"
)

func testItems() []models.MenuItem {
	return []models.MenuItem{
		{ID: "a", Name: "Turkey Club", Category: "lunch", Price: money.MustParse("9.99")},
		{ID: "b", Name: "Iced Tea", Category: "beverages", Price: money.MustParse("2.49")},
		{ID: "c", Name: "Side Salad", Category: "sides", Price: money.MustParse("3.99")},
		{ID: "d", Name: "Lemonade", Category: "Beverages", Price: money.MustParse("3.49")},
		{ID: "e", Name: "Cheesecake", Category: "desserts", Price: money.MustParse("6.99")},
	}
}

func TestFilterByDeal(t *testing.T) {
	items := testItems()

	tests := []struct {
		name    string
		deal    models.Deal
		wantIDs []string
	}{
		{
			name:    "all returns full catalog",
			deal:    models.Deal{AppliesTo: models.AppliesToAll},
			wantIDs: []string{"a", "b", "c", "d", "e"},
		},
		{
			name:    "category is case-insensitive and keeps order",
			deal:    models.Deal{AppliesTo: models.AppliesToCategory, Categories: []string{"beverages"}},
			wantIDs: []string{"b", "d"},
		},
		{
			name:    "specific matches by id",
			deal:    models.Deal{AppliesTo: models.AppliesToSpecific, Items: []string{"e", "a", "missing"}},
			wantIDs: []string{"a", "e"},
		},
		{
			name:    "unknown scope matches nothing",
			deal:    models.Deal{AppliesTo: "bogus"},
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByDeal(tt.deal, items)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("FilterByDeal returned %d items, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("item %d = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestCatalogQueries(t *testing.T) {
	c := Default()

	t.Run("ByID", func(t *testing.T) {
		item, ok := c.ByID("turkey-club")
		if !ok {
			t.Fatal("expected turkey-club in catalog")
		}
		if money.Format(item.Price) != "$9.99" {
			t.Errorf("turkey-club price = %s, want $9.99", money.Format(item.Price))
		}
		if _, ok := c.ByID("nope"); ok {
			t.Error("expected missing item to be absent")
		}
	})

	t.Run("returned items are copies", func(t *testing.T) {
		item, _ := c.ByID("turkey-club")
		item.Tags[0] = "mutated"
		again, _ := c.ByID("turkey-club")
		if again.Tags[0] == "mutated" {
			t.Error("catalog data was mutated through a returned item")
		}
	})

	t.Run("ByCategory ignores case", func(t *testing.T) {
		if got := len(c.ByCategory("SIDES")); got != 3 {
			t.Errorf("ByCategory(SIDES) = %d items, want 3", got)
		}
	})

	t.Run("ByTag ignores case", func(t *testing.T) {
		got := c.ByTag("Sandwich")
		if len(got) != 3 {
			t.Fatalf("ByTag(Sandwich) = %d items, want 3", len(got))
		}
		for _, m := range got {
			if !IsSandwich(m) {
				t.Errorf("item %s tagged sandwich but cannot fill a sandwich slot", m.ID)
			}
		}
		if got := len(c.Filter(MenuFilter{Tag: "chicken", Category: models.CategoryLunch})); got != 1 {
			t.Errorf("Filter(chicken, lunch) = %d items, want 1", got)
		}
	})

	t.Run("Search matches name and tags", func(t *testing.T) {
		if got := len(c.Search("coffee")); got != 2 {
			t.Errorf("Search(coffee) = %d items, want 2", got)
		}
		if got := len(c.Search("sandwich")); got != 3 {
			t.Errorf("Search(sandwich) = %d items, want 3", got)
		}
	})

	t.Run("Filter combines dietary flags and price", func(t *testing.T) {
		got := c.Filter(MenuFilter{Vegan: true, GlutenFree: true, MaxPrice: money.MustParse("3.00")})
		for _, m := range got {
			if !m.Dietary.Vegan || !m.Dietary.GlutenFree || m.Price.GreaterThan(money.MustParse("3.00")) {
				t.Errorf("item %s does not satisfy filter", m.ID)
			}
		}
		if len(got) != 2 {
			t.Errorf("Filter returned %d items, want 2 (house coffee, iced tea)", len(got))
		}
	})

	t.Run("Categories in first-seen order", func(t *testing.T) {
		cats := c.Categories()
		if len(cats) != 6 || cats[0] != models.CategoryBreakfast {
			t.Errorf("Categories() = %v", cats)
		}
	})
}

func TestSlotPredicates(t *testing.T) {
	c := Default()
	club, _ := c.ByID("turkey-club")
	wrap, _ := c.ByID("caesar-wrap")
	coffee, _ := c.ByID("house-coffee")
	tea, _ := c.ByID("iced-tea")

	if !IsSandwich(club) || IsSandwich(wrap) {
		t.Error("sandwich predicate mismatch")
	}
	if !IsCoffee(coffee) || IsCoffee(tea) {
		t.Error("coffee predicate mismatch")
	}
	if IsSide(club) {
		t.Error("sandwich classified as side")
	}

	pancakes, _ := c.ByID("pancake-stack")
	if !IsBreakfast(pancakes) || IsBreakfast(club) || IsBreakfast(coffee) {
		t.Error("breakfast predicate mismatch")
	}
}

func TestDeals(t *testing.T) {
	deals := NewDeals([]models.Deal{
		{ID: "current", ValidUntil: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "expired", ValidUntil: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "forever"},
	})

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	active := deals.Active(now)
	if len(active) != 2 {
		t.Fatalf("Active returned %d deals, want 2", len(active))
	}
	for _, d := range active {
		if d.ID == "expired" {
			t.Error("expired deal reported as active")
		}
	}

	if _, ok := DefaultDeals().ByID("lunch-special"); !ok {
		t.Error("lunch-special missing from default deals")
	}
}

func TestLocationsSearch(t *testing.T) {
	l := DefaultLocations()

	if got := len(l.Search("springfield")); got != 2 {
		t.Errorf("Search(springfield) = %d, want 2", got)
	}
	if got := len(l.Search("62629")); got != 1 {
		t.Errorf("Search(62629) = %d, want 1", got)
	}
	if got := len(l.Search("")); got != 3 {
		t.Errorf("Search(\"\") = %d, want 3", got)
	}
	if _, ok := l.ByID("riverside"); !ok {
		t.Error("riverside location missing")
	}
}
