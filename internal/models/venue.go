package models

import "time"

type Venue struct {
	ID          string    `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Media       []Media   `json:"media"`
	Price       float64   `json:"price"`
	MaxGuests   int       `json:"maxGuests"`
	Rating      float64   `json:"rating"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
	Meta        Amenities `json:"meta"`
	Location    Location  `json:"location"`
	Owner       *Profile  `json:"owner,omitempty"`
	Bookings    []Booking `json:"bookings,omitempty"`
}

type Amenities struct {
	WiFi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

type Location struct {
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	Zip       string  `json:"zip,omitempty"`
	Country   string  `json:"country,omitempty"`
	Continent string  `json:"continent,omitempty"`
	Lat       float64 `json:"lat,omitempty"`
	Lng       float64 `json:"lng,omitempty"`
}

// VenueInput is the body for creating or replacing a venue.
type VenueInput struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Media       []Media   `json:"media" validate:"required,min=1,max=5,dive"`
	Price       float64   `json:"price" validate:"gte=0"`
	MaxGuests   int       `json:"maxGuests" validate:"required,min=1"`
	Rating      float64   `json:"rating" validate:"gte=0,lte=5"`
	Meta        Amenities `json:"meta"`
	Location    Location  `json:"location"`
}

func (v *Venue) OwnedBy(name string) bool {
	return v.Owner != nil && name != "" && v.Owner.Name == name
}
