// Package venues holds the venue list view: summaries built from API venues, the
// search/filter/sort/"load more" pipeline over them, and the manager-side venue operations.
package venues

import (
	"strings"

	"holidaze/internal/models"
)

const PlaceholderImage = "https://via.placeholder.com/600x400?text=No+Image"

const (
	AmenityWiFi      = "WiFi"
	AmenityParking   = "Parking"
	AmenityBreakfast = "Breakfast"
	AmenityPets      = "Pet Friendly"
)

type Summary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
	Price       float64  `json:"price"`
	MaxGuests   int      `json:"maxGuests"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images"`
	Description string   `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
}

func Summarize(v models.Venue) Summary {
	return Summary{
		ID:          v.ID,
		Name:        v.Name,
		Location:    locationLabel(v.Location),
		City:        v.Location.City,
		Country:     v.Location.Country,
		Price:       v.Price,
		MaxGuests:   v.MaxGuests,
		Rating:      v.Rating,
		Images:      images(v.Media),
		Description: v.Description,
		Amenities:   amenities(v.Meta),
	}
}

func SummarizeAll(vs []models.Venue) []Summary {
	out := make([]Summary, 0, len(vs))
	for _, v := range vs {
		out = append(out, Summarize(v))
	}

	return out
}

// locationLabel prefers "city, country", then the street address.
func locationLabel(l models.Location) string {
	var parts []string
	if l.City != "" {
		parts = append(parts, l.City)
	}
	if l.Country != "" {
		parts = append(parts, l.Country)
	}

	switch {
	case len(parts) > 0:
		return strings.Join(parts, ", ")
	case l.Address != "":
		return l.Address
	default:
		return "Unknown Location"
	}
}

func images(media []models.Media) []string {
	var out []string
	for _, m := range media {
		if m.URL != "" {
			out = append(out, m.URL)
		}
	}

	if len(out) == 0 {
		return []string{PlaceholderImage}
	}

	return out
}

func amenities(a models.Amenities) []string {
	var out []string
	if a.WiFi {
		out = append(out, AmenityWiFi)
	}
	if a.Parking {
		out = append(out, AmenityParking)
	}
	if a.Breakfast {
		out = append(out, AmenityBreakfast)
	}
	if a.Pets {
		out = append(out, AmenityPets)
	}

	return out
}
