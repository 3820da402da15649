package ports

import (
	"context"
	"time"

	"github.com/wanderhub/travel-listings/internal/core/domain"
)

// CreateBookingInput carries the fields a user submits when booking a
// listing. The subtotal is not part of the input: it is copied from the
// listing price at booking time.
type CreateBookingInput struct {
	ListingID string
	From      time.Time
	To        time.Time
	NumGuests int
	UserEmail string
}

// BookingService defines the booking flow.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	ListForUser(ctx context.Context, email string) ([]domain.Booking, error)
}

// CreateRatingInput carries a user's score and review for a listing.
type CreateRatingInput struct {
	ListingID string
	Score     float64
	Review    string
	UserEmail string
}

// RatingService defines rating submission and retrieval.
type RatingService interface {
	Create(ctx context.Context, input CreateRatingInput) (*domain.Rating, error)
	ListForListing(ctx context.Context, listingID string) ([]domain.Rating, domain.RatingSummary, error)
	ListAll(ctx context.Context) ([]domain.Rating, error)
}
