package ports

import (
	"context"

	"github.com/wanderhub/travel-listings/internal/core/domain"
)

// ListingRepository defines persistence for the listing collection.
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	FindByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context) ([]domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id string) error
}

// BookingRepository defines persistence for the booking collection. Bookings
// are append-only; there is no update operation by design.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Booking, error)
	CountPerDay(ctx context.Context) ([]CountPerDay, error)
}

// RatingRepository defines persistence for the rating collection.
type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) (*domain.Rating, error)
	ListByListing(ctx context.Context, listingID string) ([]domain.Rating, error)
	List(ctx context.Context) ([]domain.Rating, error)
	CountPerDay(ctx context.Context) ([]CountPerDay, error)
}
