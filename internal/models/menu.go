package models

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Menu categories used by the built-in catalog.
const (
	CategoryEntrees   = "entrees"
	CategorySides     = "sides"
	CategoryDesserts  = "desserts"
	CategoryBeverages = "beverages"
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
)

// Slot categories assigned to items at catalog-authoring time.
// Deal slot rules match against these instead of item names.
const (
	SlotSandwich  = "sandwich"
	SlotSide      = "side"
	SlotBreakfast = "breakfast"
	SlotCoffee    = "coffee"
	SlotBeverage  = "beverage"
)

// MenuItem represents a single orderable item on the menu.
// Items are created with the catalog and never mutated at runtime.
type MenuItem struct {
	// ID is the unique, stable identifier (e.g. "turkey-club").
	ID string `json:"id"`

	Name        string `json:"name"`
	Description string `json:"description"`

	// Price is the non-negative catalog price.
	Price decimal.Decimal `json:"price"`

	// Category is a lowercase category name (see Category* constants).
	Category string `json:"category"`

	// Tags are free-form labels used for search and deal eligibility.
	Tags []string `json:"tags,omitempty"`

	// SlotCategories names the deal slots this item may fill.
	SlotCategories []string `json:"slot_categories,omitempty"`

	Image string `json:"image,omitempty"`

	Dietary   Dietary   `json:"dietary"`
	Nutrition Nutrition `json:"nutrition"`
}

// Dietary holds the dietary flags of a menu item.
type Dietary struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"gluten_free"`
}

// Nutrition holds per-serving nutrition facts.
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein_g"`
	Carbs    int `json:"carbs_g"`
	Fat      int `json:"fat_g"`
}

// HasTag reports whether the item carries the tag (case-insensitive).
func (m MenuItem) HasTag(tag string) bool {
	return slices.ContainsFunc(m.Tags, func(t string) bool {
		return strings.EqualFold(t, tag)
	})
}

// HasSlot reports whether the item may occupy the named slot category.
func (m MenuItem) HasSlot(slot string) bool {
	return slices.Contains(m.SlotCategories, slot)
}
