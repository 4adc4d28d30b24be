package catalog

import (
	"strings"

	"github.com/mmynk/tastyhub/internal/models"
)

// Locations is the static directory of restaurant locations.
type Locations struct {
	list []models.Location
}

// NewLocations builds a directory.
func NewLocations(list []models.Location) *Locations {
	l := &Locations{list: make([]models.Location, len(list))}
	copy(l.list, list)
	return l
}

// DefaultLocations returns the TastyHub locations.
func DefaultLocations() *Locations {
	return NewLocations([]models.Location{
		{ID: "downtown", Name: "TastyHub Downtown", Address: "120 Main St", City: "Springfield", Zip: "62701",
			Phone: "(217) 555-0110", Hours: "Mon-Sun 7am-10pm", Lat: 39.8017, Lng: -89.6436},
		{ID: "riverside", Name: "TastyHub Riverside", Address: "45 River Rd", City: "Springfield", Zip: "62702",
			Phone: "(217) 555-0145", Hours: "Mon-Sat 8am-9pm", Lat: 39.8150, Lng: -89.6601},
		{ID: "uptown", Name: "TastyHub Uptown", Address: "900 Lake Ave", City: "Chatham", Zip: "62629",
			Phone: "(217) 555-0190", Hours: "Tue-Sun 11am-11pm", Lat: 39.6761, Lng: -89.7043},
	})
}

// All returns every location.
func (l *Locations) All() []models.Location {
	out := make([]models.Location, len(l.list))
	copy(out, l.list)
	return out
}

// ByID looks up a location.
func (l *Locations) ByID(id string) (models.Location, bool) {
	for _, loc := range l.list {
		if loc.ID == id {
			return loc, true
		}
	}
	return models.Location{}, false
}

// Search matches query against name, address, city and zip, ignoring case.
// An empty query returns everything.
func (l *Locations) Search(query string) []models.Location {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []models.Location
	for _, loc := range l.list {
		if q == "" ||
			strings.Contains(strings.ToLower(loc.Name), q) ||
			strings.Contains(strings.ToLower(loc.Address), q) ||
			strings.Contains(strings.ToLower(loc.City), q) ||
			strings.HasPrefix(loc.Zip, q) {
			out = append(out, loc)
		}
	}
	return out
}
