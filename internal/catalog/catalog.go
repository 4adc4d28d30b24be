// Package catalog holds the static menu, deal and location data and the
// pure query helpers over it.
package catalog

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tastyhub/internal/models"
)

// Catalog is an immutable collection of menu items.
// Every accessor returns copies, so callers cannot mutate catalog data.
type Catalog struct {
	items []models.MenuItem
	byID  map[string]int
}

// MenuFilter narrows a menu listing. Zero-valued fields match everything.
type MenuFilter struct {
	Category   string
	Tag        string
	Query      string
	Vegetarian bool
	Vegan      bool
	GlutenFree bool

	// MaxPrice excludes items priced above it when non-zero.
	MaxPrice decimal.Decimal
}

// New builds a catalog from items. Later duplicates of an ID are dropped.
func New(items []models.MenuItem) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(items))}
	for _, item := range items {
		if _, dup := c.byID[item.ID]; dup {
			continue
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, cloneItem(item))
	}
	return c
}

// Default returns the built-in TastyHub menu.
func Default() *Catalog {
	return New(defaultMenu())
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// All returns every item in catalog order.
func (c *Catalog) All() []models.MenuItem {
	return c.collect(func(models.MenuItem) bool { return true })
}

// ByID looks up a single item.
func (c *Catalog) ByID(id string) (models.MenuItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.MenuItem{}, false
	}
	return cloneItem(c.items[i]), true
}

// ByCategory returns items whose category matches, ignoring case.
func (c *Catalog) ByCategory(category string) []models.MenuItem {
	return c.collect(func(m models.MenuItem) bool {
		return strings.EqualFold(m.Category, category)
	})
}

// ByTag returns items carrying tag, ignoring case.
func (c *Catalog) ByTag(tag string) []models.MenuItem {
	return c.Filter(MenuFilter{Tag: tag})
}

// Search matches query against names, descriptions and tags, ignoring case.
func (c *Catalog) Search(query string) []models.MenuItem {
	return c.Filter(MenuFilter{Query: query})
}

// Filter applies every non-zero field of f.
func (c *Catalog) Filter(f MenuFilter) []models.MenuItem {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	return c.collect(func(m models.MenuItem) bool {
		if f.Category != "" && !strings.EqualFold(m.Category, f.Category) {
			return false
		}
		if f.Tag != "" && !m.HasTag(f.Tag) {
			return false
		}
		if f.Vegetarian && !m.Dietary.Vegetarian {
			return false
		}
		if f.Vegan && !m.Dietary.Vegan {
			return false
		}
		if f.GlutenFree && !m.Dietary.GlutenFree {
			return false
		}
		if !f.MaxPrice.IsZero() && m.Price.GreaterThan(f.MaxPrice) {
			return false
		}
		if q != "" && !matchesQuery(m, q) {
			return false
		}
		return true
	})
}

// Categories lists the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	var out []string
	for _, m := range c.items {
		if !slices.Contains(out, m.Category) {
			out = append(out, m.Category)
		}
	}
	return out
}

func (c *Catalog) collect(keep func(models.MenuItem) bool) []models.MenuItem {
	out := make([]models.MenuItem, 0, len(c.items))
	for _, m := range c.items {
		if keep(m) {
			out = append(out, cloneItem(m))
		}
	}
	return out
}

func matchesQuery(m models.MenuItem, q string) bool {
	if strings.Contains(strings.ToLower(m.Name), q) ||
		strings.Contains(strings.ToLower(m.Description), q) {
		return true
	}
	return m.HasTag(q)
}

func cloneItem(m models.MenuItem) models.MenuItem {
	m.Tags = slices.Clone(m.Tags)
	m.SlotCategories = slices.Clone(m.SlotCategories)
	return m
}
