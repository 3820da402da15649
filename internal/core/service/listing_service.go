package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wanderhub/travel-listings/internal/core/domain"
	"github.com/wanderhub/travel-listings/internal/core/ports"
)

type ListingService struct {
	listings ports.ListingRepository
	ratings  ports.RatingRepository
	log      zerolog.Logger
}

func NewListingService(listings ports.ListingRepository, ratings ports.RatingRepository, log zerolog.Logger) *ListingService {
	return &ListingService{listings: listings, ratings: ratings, log: log}
}

func (s *ListingService) Create(ctx context.Context, input ports.CreateListingInput) (*domain.Listing, error) {
	if input.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	listing := &domain.Listing{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Img:         input.Img,
	}

	created, err := s.listings.Create(ctx, listing)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create listing")
		return nil, err
	}

	s.log.Info().Str("listing_id", created.ID).Msg("listing created")
	return created, nil
}

// Get returns a listing together with its rating aggregate. A failure to
// load ratings degrades to an empty aggregate rather than failing the read.
func (s *ListingService) Get(ctx context.Context, id string) (*domain.ListingDetail, error) {
	listing, err := s.listings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := domain.RatingSummary{}
	ratings, err := s.ratings.ListByListing(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("listing_id", id).Msg("failed to load ratings for listing")
	} else {
		summary = domain.Summarize(ratings)
	}

	return &domain.ListingDetail{
		Listing:       *listing,
		RatingAverage: summary.Average,
		RatingCount:   summary.Count,
	}, nil
}

func (s *ListingService) List(ctx context.Context) ([]domain.Listing, error) {
	return s.listings.List(ctx)
}

func (s *ListingService) Update(ctx context.Context, input ports.UpdateListingInput) (*domain.Listing, error) {
	if input.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	listing := &domain.Listing{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Img:         input.Img,
	}

	if err := s.listings.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *ListingService) Delete(ctx context.Context, id string) error {
	if err := s.listings.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("listing_id", id).Msg("listing deleted")
	return nil
}
