package service

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/preferences"
	"github.com/mmynk/tastyhub/internal/redemption"
	"github.com/mmynk/tastyhub/internal/reservation"
)

// Empty is used by procedures that take or return nothing.
type Empty struct{}

// Menu

type ListMenuRequest struct {
	Category   string `json:"category,omitempty"`
	Tag        string `json:"tag,omitempty"`
	Query      string `json:"query,omitempty"`
	Vegetarian bool   `json:"vegetarian,omitempty"`
	Vegan      bool   `json:"vegan,omitempty"`
	GlutenFree bool   `json:"gluten_free,omitempty"`
	// MaxPrice like "9.99" or "$9.99"; empty means no limit.
	MaxPrice string `json:"max_price,omitempty"`
}

type ListMenuResponse struct {
	Items      []models.MenuItem `json:"items"`
	Categories []string          `json:"categories"`
}

type GetMenuItemRequest struct {
	ID string `json:"id"`
}

type GetMenuItemResponse struct {
	Item models.MenuItem `json:"item"`
}

type ListLocationsRequest struct {
	Query string `json:"query,omitempty"`
}

type ListLocationsResponse struct {
	Locations []models.Location `json:"locations"`
}

// Deals

type ListDealsResponse struct {
	Deals []models.Deal `json:"deals"`
}

type GetDealRequest struct {
	ID string `json:"id"`
}

type GetDealResponse struct {
	Deal     models.Deal       `json:"deal"`
	Eligible []models.MenuItem `json:"eligible"`
}

type ActivateDealRequest struct {
	DealID string `json:"deal_id"`
}

type ToggleItemRequest struct {
	ItemID string `json:"item_id"`
}

// RedemptionView is the state of the open redemption session.
type RedemptionView struct {
	Deal       models.Deal           `json:"deal"`
	Eligible   []models.MenuItem     `json:"eligible"`
	Selected   []string              `json:"selected"`
	Quote      redemption.Quote      `json:"quote"`
	Validation redemption.Validation `json:"validation"`
	State      string                `json:"state"`
}

type CommitDealResponse struct {
	Added []models.CartItem `json:"added"`
	Cart  CartView          `json:"cart"`
}

// Cart

// CartView is the cart with its derived totals.
type CartView struct {
	Items              []models.CartItem `json:"items"`
	ItemCount          int               `json:"item_count"`
	Total              decimal.Decimal   `json:"total"`
	TotalDisplay       string            `json:"total_display"`
	HasDiscountedItems bool              `json:"has_discounted_items"`
}

type AddItemRequest struct {
	ItemID string `json:"item_id"`
}

type RemoveItemRequest struct {
	ItemID string `json:"item_id"`
}

type UpdateQuantityRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type CheckoutResponse struct {
	Order models.Order `json:"order"`
}

type ListOrdersResponse struct {
	Orders []*models.Order `json:"orders"`
}

// Auth

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult reports the outcome of an identity operation. Expected
// failures such as a wrong password come back with Success false.
type AuthResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}

// SessionResponse has a nil Session when the caller is signed out.
type SessionResponse struct {
	Session *Session `json:"session"`
}

type Session struct {
	User      *models.User `json:"user"`
	ExpiresAt int64        `json:"expires_at"`
}

// Profile

type ProfileResponse struct {
	User *models.User `json:"user"`
}

type UpdateProfileRequest struct {
	Update models.ProfileUpdate `json:"update"`
}

type PreferencesResponse struct {
	Settings preferences.Settings `json:"settings"`
}

type UpdatePreferencesRequest struct {
	Settings preferences.Settings `json:"settings"`
}

type ToggleFavoriteRequest struct {
	ID string `json:"id"`
}

type ToggleFavoriteResponse struct {
	Favorite bool     `json:"favorite"`
	IDs      []string `json:"ids"`
}

type FavoritesResponse struct {
	Locations []models.Location `json:"locations"`
	Meals     []models.MenuItem `json:"meals"`
}

// Reservations

type CreateReservationRequest struct {
	Reservation reservation.Request `json:"reservation"`
}

type ReservationResponse struct {
	Reservation *models.Reservation `json:"reservation"`
}

type ListReservationsResponse struct {
	Reservations []*models.Reservation `json:"reservations"`
}

type CancelReservationRequest struct {
	ID string `json:"id"`
}
