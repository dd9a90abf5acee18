package models

import "time"

const (
	BookingConfirmed = "confirmed"
	BookingPending   = "pending"
	BookingCancelled = "cancelled"
)

type Booking struct {
	ID           string    `json:"id" validate:"required"`
	DateFrom     time.Time `json:"dateFrom" validate:"required"`
	DateTo       time.Time `json:"dateTo" validate:"required"`
	Guests       int       `json:"guests"`
	Status       string    `json:"status,omitempty"`
	Created      time.Time `json:"created"`
	Updated      time.Time `json:"updated"`
	VenueID      string    `json:"venueId,omitempty"`
	Venue        *Venue    `json:"venue,omitempty"`
	Customer     *Profile  `json:"customer,omitempty"`
	CustomerName string    `json:"customerName,omitempty"`
}

// State reports the booking status. The external API carries none, so an empty status reads as confirmed.
func (b *Booking) State() string {
	if b.Status == "" {
		return BookingConfirmed
	}

	return b.Status
}

func (b *Booking) Cancelled() bool {
	return b.State() == BookingCancelled
}

func (b *Booking) CustomerDisplayName() string {
	if b.Customer != nil && b.Customer.Name != "" {
		return b.Customer.Name
	}

	return b.CustomerName
}

func (b *Booking) VenueRef() string {
	if b.VenueID != "" {
		return b.VenueID
	}
	if b.Venue != nil {
		return b.Venue.ID
	}

	return ""
}

// BookingInput is the body for creating or updating a booking.
type BookingInput struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	VenueID  string    `json:"venueId,omitempty"`
}
