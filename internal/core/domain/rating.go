package domain

import "time"

// Rating is a single user's score and review for a listing. Immutable.
type Rating struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listing_id"`
	Score     float64   `json:"rating"`
	Review    string    `json:"review"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingSummary is the aggregate shown next to a listing. Average is the
// arithmetic mean of all scores; an empty rating set yields 0, not NaN.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Summarize computes the aggregate for a set of ratings.
func Summarize(ratings []Rating) RatingSummary {
	if len(ratings) == 0 {
		return RatingSummary{}
	}
	var sum float64
	for _, r := range ratings {
		sum += r.Score
	}
	return RatingSummary{
		Average: sum / float64(len(ratings)),
		Count:   len(ratings),
	}
}
