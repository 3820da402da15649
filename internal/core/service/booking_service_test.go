package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/wanderhub/travel-listings/internal/core/domain"
	"github.com/wanderhub/travel-listings/internal/core/ports"
)

type stubListingRepo struct {
	listings map[string]*domain.Listing
}

func newStubListingRepo(listings ...*domain.Listing) *stubListingRepo {
	r := &stubListingRepo{listings: make(map[string]*domain.Listing)}
	for _, l := range listings {
		r.listings[l.ID] = l
	}
	return r
}

func (r *stubListingRepo) Create(_ context.Context, listing *domain.Listing) (*domain.Listing, error) {
	r.listings[listing.ID] = listing
	return listing, nil
}

func (r *stubListingRepo) FindByID(_ context.Context, id string) (*domain.Listing, error) {
	if l, ok := r.listings[id]; ok {
		clone := *l
		return &clone, nil
	}
	return nil, domain.ErrListingNotFound
}

func (r *stubListingRepo) List(context.Context) ([]domain.Listing, error) {
	var out []domain.Listing
	for _, l := range r.listings {
		out = append(out, *l)
	}
	return out, nil
}

func (r *stubListingRepo) Update(_ context.Context, listing *domain.Listing) error {
	if _, ok := r.listings[listing.ID]; !ok {
		return domain.ErrListingNotFound
	}
	r.listings[listing.ID] = listing
	return nil
}

func (r *stubListingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.listings[id]; !ok {
		return domain.ErrListingNotFound
	}
	delete(r.listings, id)
	return nil
}

type stubBookingRepo struct {
	bookings []domain.Booking
	err      error

	perDay    []ports.CountPerDay
	perDayErr error
}

func (r *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	created := *booking
	created.ID = "b1"
	r.bookings = append(r.bookings, created)
	return &created, nil
}

func (r *stubBookingRepo) List(context.Context) ([]domain.Booking, error) {
	return r.bookings, nil
}

func (r *stubBookingRepo) ListByEmail(_ context.Context, email string) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range r.bookings {
		if b.UserEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) CountPerDay(context.Context) ([]ports.CountPerDay, error) {
	return r.perDay, r.perDayErr
}

func TestBookingService_Create_CopiesListingPrice(t *testing.T) {
	listings := newStubListingRepo(&domain.Listing{ID: "l1", Title: "Beach House", Price: 120.50})
	bookings := &stubBookingRepo{}
	svc := NewBookingService(bookings, listings, zerolog.Nop())

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	booking, err := svc.Create(context.Background(), ports.CreateBookingInput{
		ListingID: "l1",
		From:      from,
		To:        from.AddDate(0, 0, 3),
		NumGuests: 2,
		UserEmail: "guest@example.com",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if booking.Subtotal != 120.50 {
		t.Fatalf("subtotal not copied from listing price: %v", booking.Subtotal)
	}
	if booking.ListingTitle != "Beach House" {
		t.Fatalf("listing title not denormalized: %q", booking.ListingTitle)
	}

	// A later price change must not touch the existing booking.
	listings.listings["l1"].Price = 999
	stored, _ := bookings.ListByEmail(context.Background(), "guest@example.com")
	if len(stored) != 1 || stored[0].Subtotal != 120.50 {
		t.Fatalf("booking subtotal changed after listing price update: %+v", stored)
	}
}

func TestBookingService_Create_InvalidDateRange(t *testing.T) {
	listings := newStubListingRepo(&domain.Listing{ID: "l1", Price: 100})
	svc := NewBookingService(&stubBookingRepo{}, listings, zerolog.Nop())

	from := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), ports.CreateBookingInput{
		ListingID: "l1",
		From:      from,
		To:        from.AddDate(0, 0, -1),
	})
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestBookingService_Create_NegativeGuests(t *testing.T) {
	listings := newStubListingRepo(&domain.Listing{ID: "l1", Price: 100})
	svc := NewBookingService(&stubBookingRepo{}, listings, zerolog.Nop())

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), ports.CreateBookingInput{
		ListingID: "l1",
		From:      from,
		To:        from.AddDate(0, 0, 2),
		NumGuests: -1,
	})
	if !errors.Is(err, domain.ErrInvalidGuestCount) {
		t.Fatalf("expected ErrInvalidGuestCount, got %v", err)
	}
}

func TestBookingService_Create_ListingNotFound(t *testing.T) {
	svc := NewBookingService(&stubBookingRepo{}, newStubListingRepo(), zerolog.Nop())

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), ports.CreateBookingInput{
		ListingID: "missing",
		From:      from,
		To:        from.AddDate(0, 0, 2),
	})
	if !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}
