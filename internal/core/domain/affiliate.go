package domain

import "time"

// AffiliateResource is a recommended tool listed on the resources page.
type AffiliateResource struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	Featured    bool      `json:"featured"`
	Rating      float64   `json:"rating,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}
