package models

// Reservation statuses.
const (
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Reservation represents a table booking at a location.
type Reservation struct {
	// ID is the unique identifier (UUID format).
	ID string `json:"id"`

	// UserID is the owner of the reservation.
	UserID string `json:"user_id"`

	LocationID string `json:"location_id"`

	// ReservedAt is the Unix timestamp of the booked table time.
	ReservedAt int64 `json:"reserved_at"`

	PartySize int `json:"party_size"`

	// Contact details, defaulted from the profile when empty.
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`

	SpecialRequests string `json:"special_requests,omitempty"`

	Status string `json:"status"`

	CreatedAt int64 `json:"created_at"`
}

// Location is a restaurant location.
type Location struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Zip     string  `json:"zip"`
	Phone   string  `json:"phone"`
	Hours   string  `json:"hours"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}
