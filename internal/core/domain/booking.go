package domain

import "time"

// Booking is a stay request against a listing. The subtotal is copied from
// the listing price at booking time and never recomputed afterwards. A
// booking is immutable once created.
type Booking struct {
	ID           string    `json:"id"`
	ListingID    string    `json:"listing_id"`
	ListingTitle string    `json:"listing_title"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	NumGuests    int       `json:"num_guests"`
	Subtotal     float64   `json:"subtotal"`
	UserEmail    string    `json:"user_email"`
	CreatedAt    time.Time `json:"created_at"`
}
