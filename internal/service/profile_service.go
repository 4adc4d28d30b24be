package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tastyhub/internal/catalog"
	"github.com/mmynk/tastyhub/internal/middleware"
	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/preferences"
	"github.com/mmynk/tastyhub/internal/storage"
)

// ProfileService manages the caller's profile, settings and favorites.
type ProfileService struct {
	store     storage.Store
	menu      *catalog.Catalog
	locations *catalog.Locations
	sessions  *Sessions
}

// NewProfileService creates a ProfileService.
func NewProfileService(store storage.Store, menu *catalog.Catalog, locations *catalog.Locations, sessions *Sessions) *ProfileService {
	return &ProfileService{store: store, menu: menu, locations: locations, sessions: sessions}
}

// GetProfile returns the caller's profile, or a nil user if the account
// is gone.
func (s *ProfileService) GetProfile(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ProfileResponse], error) {
	user, err := s.store.GetUserByID(ctx, middleware.GetUserID(ctx))
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ProfileResponse{User: user}), nil
}

// UpdateProfile applies a partial update to the caller's profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, req *connect.Request[UpdateProfileRequest]) (*connect.Response[AuthResult], error) {
	userID := middleware.GetUserID(ctx)
	slog.Info("UpdateProfile request received", "user_id", userID)

	update := req.Msg.Update
	if update.DisplayName != nil {
		name := strings.TrimSpace(*update.DisplayName)
		if name == "" {
			return connect.NewResponse(&AuthResult{Message: "Name cannot be empty"}), nil
		}
		update.DisplayName = &name
	}

	var user *models.User
	err := s.sessions.With(ctx, userID, func(*userState) error {
		var err error
		user, err = s.store.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user %s: %w", userID, storage.ErrNotFound)
		}
		update.Apply(user)
		return s.store.UpdateUser(ctx, user)
	})
	if err != nil {
		slog.Error("UpdateProfile failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&AuthResult{Success: true, Message: "Profile updated", User: user}), nil
}

// GetPreferences returns the caller's settings, defaults if none are stored.
func (s *ProfileService) GetPreferences(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[PreferencesResponse], error) {
	settings, err := preferences.LoadSettings(ctx, s.blob(ctx, storage.KeyPreferences))
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&PreferencesResponse{Settings: settings}), nil
}

// UpdatePreferences replaces the caller's settings.
func (s *ProfileService) UpdatePreferences(ctx context.Context, req *connect.Request[UpdatePreferencesRequest]) (*connect.Response[PreferencesResponse], error) {
	err := s.sessions.With(ctx, middleware.GetUserID(ctx), func(*userState) error {
		return preferences.SaveSettings(ctx, s.blob(ctx, storage.KeyPreferences), req.Msg.Settings)
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&PreferencesResponse{Settings: req.Msg.Settings}), nil
}

// ListFavorites resolves the caller's favorite locations and meals.
// IDs no longer in the catalogs are skipped.
func (s *ProfileService) ListFavorites(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[FavoritesResponse], error) {
	locs, err := preferences.LoadFavorites(ctx, s.blob(ctx, storage.KeyFavoriteLocations))
	if err != nil {
		return nil, toConnectError(err)
	}
	meals, err := preferences.LoadFavorites(ctx, s.blob(ctx, storage.KeyFavoriteMeals))
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &FavoritesResponse{Locations: []models.Location{}, Meals: []models.MenuItem{}}
	for _, id := range locs.IDs() {
		if l, ok := s.locations.ByID(id); ok {
			resp.Locations = append(resp.Locations, l)
		}
	}
	for _, id := range meals.IDs() {
		if m, ok := s.menu.ByID(id); ok {
			resp.Meals = append(resp.Meals, m)
		}
	}
	return connect.NewResponse(resp), nil
}

// ToggleFavoriteLocation adds or removes a location from the favorites.
func (s *ProfileService) ToggleFavoriteLocation(ctx context.Context, req *connect.Request[ToggleFavoriteRequest]) (*connect.Response[ToggleFavoriteResponse], error) {
	if _, ok := s.locations.ByID(req.Msg.ID); !ok {
		return nil, toConnectError(fmt.Errorf("%w: %s", errUnknownLocation, req.Msg.ID))
	}
	return s.toggle(ctx, storage.KeyFavoriteLocations, req.Msg.ID)
}

// ToggleFavoriteMeal adds or removes a menu item from the favorites.
func (s *ProfileService) ToggleFavoriteMeal(ctx context.Context, req *connect.Request[ToggleFavoriteRequest]) (*connect.Response[ToggleFavoriteResponse], error) {
	if _, ok := s.menu.ByID(req.Msg.ID); !ok {
		return nil, toConnectError(fmt.Errorf("%w: %s", errUnknownItem, req.Msg.ID))
	}
	return s.toggle(ctx, storage.KeyFavoriteMeals, req.Msg.ID)
}

func (s *ProfileService) toggle(ctx context.Context, key, id string) (*connect.Response[ToggleFavoriteResponse], error) {
	var resp ToggleFavoriteResponse
	err := s.sessions.With(ctx, middleware.GetUserID(ctx), func(*userState) error {
		favs, err := preferences.LoadFavorites(ctx, s.blob(ctx, key))
		if err != nil {
			return err
		}
		added, err := favs.Toggle(ctx, id)
		if err != nil {
			return err
		}
		resp = ToggleFavoriteResponse{Favorite: added, IDs: favs.IDs()}
		return nil
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&resp), nil
}

func (s *ProfileService) blob(ctx context.Context, key string) storage.Blob {
	return storage.UserBlob{Store: s.store, UserID: middleware.GetUserID(ctx), Key: key}
}
