package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanderhub/travel-listings/internal/core/domain"
	"github.com/wanderhub/travel-listings/internal/core/ports"
)

type RatingService struct {
	ratings  ports.RatingRepository
	listings ports.ListingRepository
	log      zerolog.Logger
}

func NewRatingService(ratings ports.RatingRepository, listings ports.ListingRepository, log zerolog.Logger) *RatingService {
	return &RatingService{ratings: ratings, listings: listings, log: log}
}

func (s *RatingService) Create(ctx context.Context, input ports.CreateRatingInput) (*domain.Rating, error) {
	if input.Score < 0 || input.Score > 5 {
		return nil, domain.ErrInvalidRatingScore
	}

	if _, err := s.listings.FindByID(ctx, input.ListingID); err != nil {
		return nil, err
	}

	rating := &domain.Rating{
		ListingID: input.ListingID,
		Score:     input.Score,
		Review:    input.Review,
		UserEmail: input.UserEmail,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.ratings.Create(ctx, rating)
	if err != nil {
		s.log.Error().Err(err).Str("listing_id", input.ListingID).Msg("failed to create rating")
		return nil, err
	}

	return created, nil
}

// ListForListing returns all ratings for a listing and their aggregate. The
// average is computed here from every row; no ratings means an average of 0.
func (s *RatingService) ListForListing(ctx context.Context, listingID string) ([]domain.Rating, domain.RatingSummary, error) {
	ratings, err := s.ratings.ListByListing(ctx, listingID)
	if err != nil {
		return nil, domain.RatingSummary{}, err
	}
	return ratings, domain.Summarize(ratings), nil
}

func (s *RatingService) ListAll(ctx context.Context) ([]domain.Rating, error) {
	return s.ratings.List(ctx)
}
