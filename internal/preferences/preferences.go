// Package preferences keeps a user's favorites and display settings.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/mmynk/tastyhub/internal/storage"
)

// Themes.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Font sizes.
const (
	FontSmall  = "small"
	FontMedium = "medium"
	FontLarge  = "large"
)

var (
	ErrInvalidTheme    = errors.New("theme must be light, dark or system")
	ErrInvalidFontSize = errors.New("font size must be small, medium or large")
)

// Notifications are the user's opt-ins.
type Notifications struct {
	OrderUpdates bool `json:"order_updates"`
	Promotions   bool `json:"promotions"`
	Reservations bool `json:"reservations"`
}

// Appearance holds display options other than the theme.
type Appearance struct {
	FontSize      string `json:"font_size"`
	ReducedMotion bool   `json:"reduced_motion"`
}

// Settings is the persisted preferences document.
type Settings struct {
	Theme         string        `json:"theme"`
	Notifications Notifications `json:"notifications"`
	Appearance    Appearance    `json:"appearance"`
}

// DefaultSettings are used when nothing valid is stored.
func DefaultSettings() Settings {
	return Settings{
		Theme: ThemeSystem,
		Notifications: Notifications{
			OrderUpdates: true,
			Promotions:   true,
			Reservations: true,
		},
		Appearance: Appearance{FontSize: FontMedium},
	}
}

// Validate reports the first invalid field.
func (s Settings) Validate() error {
	switch s.Theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		return ErrInvalidTheme
	}
	switch s.Appearance.FontSize {
	case FontSmall, FontMedium, FontLarge:
	default:
		return ErrInvalidFontSize
	}
	return nil
}

// LoadSettings returns the stored settings, or defaults when absent,
// corrupted or invalid.
func LoadSettings(ctx context.Context, blob storage.Blob) (Settings, error) {
	s := DefaultSettings()
	ok, err := storage.LoadJSON(ctx, blob, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if !ok || s.Validate() != nil {
		return DefaultSettings(), nil
	}
	return s, nil
}

// SaveSettings validates and stores s.
func SaveSettings(ctx context.Context, blob storage.Blob, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := storage.SaveJSON(ctx, blob, s); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Favorites is an ordered set of ids, most recently added last.
type Favorites struct {
	blob storage.Blob
	ids  []string
}

// LoadFavorites reads the set stored in blob. A corrupted value yields an empty set.
func LoadFavorites(ctx context.Context, blob storage.Blob) (*Favorites, error) {
	f := &Favorites{blob: blob}
	var ids []string
	ok, err := storage.LoadJSON(ctx, blob, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	if ok {
		for _, id := range ids {
			if id != "" && !slices.Contains(f.ids, id) {
				f.ids = append(f.ids, id)
			}
		}
	}
	return f, nil
}

// Toggle adds id if absent, otherwise removes it, and reports whether id
// is a favorite afterwards.
func (f *Favorites) Toggle(ctx context.Context, id string) (bool, error) {
	next := slices.Clone(f.ids)
	added := false
	if i := slices.Index(next, id); i >= 0 {
		next = slices.Delete(next, i, i+1)
	} else {
		next = append(next, id)
		added = true
	}
	if err := storage.SaveJSON(ctx, f.blob, next); err != nil {
		return false, fmt.Errorf("failed to save favorites: %w", err)
	}
	f.ids = next
	return added, nil
}

// Contains reports whether id is a favorite.
func (f *Favorites) Contains(id string) bool {
	return slices.Contains(f.ids, id)
}

// IDs returns the favorites in insertion order.
func (f *Favorites) IDs() []string {
	return slices.Clone(f.ids)
}
