package ports

import (
	"context"

	"github.com/wanderhub/travel-listings/internal/core/domain"
)

// CreateListingInput carries the fields required to create a listing.
type CreateListingInput struct {
	Title       string
	Description string
	Price       float64
	Img         string
}

// UpdateListingInput carries a full replacement of a listing's fields.
type UpdateListingInput struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Img         string
}

// ListingService defines catalog operations.
type ListingService interface {
	Create(ctx context.Context, input CreateListingInput) (*domain.Listing, error)
	Get(ctx context.Context, id string) (*domain.ListingDetail, error)
	List(ctx context.Context) ([]domain.Listing, error)
	Update(ctx context.Context, input UpdateListingInput) (*domain.Listing, error)
	Delete(ctx context.Context, id string) error
}
