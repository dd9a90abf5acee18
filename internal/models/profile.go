package models

type Profile struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email"`
	Bio          string `json:"bio,omitempty"`
	Avatar       *Media `json:"avatar,omitempty"`
	Banner       *Media `json:"banner,omitempty"`
	VenueManager bool   `json:"venueManager"`
	Count        *Count `json:"_count,omitempty"`
}

type Count struct {
	Venues   int `json:"venues"`
	Bookings int `json:"bookings"`
}

type ProfileUpdate struct {
	Bio          *string `json:"bio,omitempty" validate:"omitempty,max=160"`
	Avatar       *Media  `json:"avatar,omitempty"`
	Banner       *Media  `json:"banner,omitempty"`
	VenueManager *bool   `json:"venueManager,omitempty"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type Registration struct {
	Name         string `json:"name" validate:"required,max=20"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Bio          string `json:"bio,omitempty"`
	Avatar       *Media `json:"avatar,omitempty"`
	Banner       *Media `json:"banner,omitempty"`
	VenueManager bool   `json:"venueManager"`
}

// AuthResult is the login payload: the profile plus its access token.
type AuthResult struct {
	Profile
	AccessToken string `json:"accessToken"`
}
