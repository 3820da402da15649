package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wanderhub/travel-listings/internal/core/ports"
)

type AnalyticsService struct {
	users    ports.UserRepository
	bookings ports.BookingRepository
	ratings  ports.RatingRepository
	log      zerolog.Logger
}

func NewAnalyticsService(users ports.UserRepository, bookings ports.BookingRepository, ratings ports.RatingRepository, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{users: users, bookings: bookings, ratings: ratings, log: log}
}

// Overview fetches the three chart series concurrently. The series are
// independent, so completion order is irrelevant; the first error wins.
func (s *AnalyticsService) Overview(ctx context.Context) (*ports.AnalyticsResult, error) {
	var (
		wg     sync.WaitGroup
		result ports.AnalyticsResult

		usersErr    error
		bookingsErr error
		ratingsErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		result.UsersByRole, usersErr = s.users.CountByRolePerDay(ctx)
	}()
	go func() {
		defer wg.Done()
		result.Bookings, bookingsErr = s.bookings.CountPerDay(ctx)
	}()
	go func() {
		defer wg.Done()
		result.Ratings, ratingsErr = s.ratings.CountPerDay(ctx)
	}()
	wg.Wait()

	for _, err := range []error{usersErr, bookingsErr, ratingsErr} {
		if err != nil {
			s.log.Error().Err(err).Msg("analytics fetch failed")
			return nil, err
		}
	}

	return &result, nil
}
