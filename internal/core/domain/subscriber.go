package domain

import "time"

// Subscriber is a newsletter signup. Outbound email delivery is handled by an
// external service; this record is only the source list.
type Subscriber struct {
	ID           string    `json:"id,omitempty"`
	Email        string    `json:"email"`
	Source       string    `json:"source,omitempty"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
