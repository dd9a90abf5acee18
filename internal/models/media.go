package models

// Media is an image reference. Only HTTP/HTTPS URLs are accepted; embedded data URIs are rejected.
type Media struct {
	URL string `json:"url" validate:"required,http_url"`
	Alt string `json:"alt,omitempty"`
}
