package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanderhub/travel-listings/internal/core/domain"
	"github.com/wanderhub/travel-listings/internal/core/ports"
)

type BookingService struct {
	bookings ports.BookingRepository
	listings ports.ListingRepository
	log      zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, listings ports.ListingRepository, log zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, listings: listings, log: log}
}

// Create books a listing for a user. The subtotal is copied from the listing
// price at this moment; later price changes do not touch existing bookings.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if input.To.Before(input.From) {
		return nil, domain.ErrInvalidDateRange
	}
	if input.NumGuests < 0 {
		return nil, domain.ErrInvalidGuestCount
	}

	listing, err := s.listings.FindByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ListingID:    listing.ID,
		ListingTitle: listing.Title,
		From:         input.From,
		To:           input.To,
		NumGuests:    input.NumGuests,
		Subtotal:     listing.Price,
		UserEmail:    input.UserEmail,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.log.Error().Err(err).Str("listing_id", listing.ID).Msg("failed to create booking")
		return nil, err
	}

	s.log.Info().
		Str("booking_id", created.ID).
		Str("listing_id", listing.ID).
		Str("user_email", input.UserEmail).
		Msg("booking created")

	return created, nil
}

func (s *BookingService) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) ListForUser(ctx context.Context, email string) ([]domain.Booking, error) {
	return s.bookings.ListByEmail(ctx, email)
}
