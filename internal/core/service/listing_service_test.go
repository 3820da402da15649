package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wanderhub/travel-listings/internal/core/domain"
	"github.com/wanderhub/travel-listings/internal/core/ports"
)

func TestListingService_Create_NegativePrice(t *testing.T) {
	svc := NewListingService(newStubListingRepo(), &stubRatingRepo{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateListingInput{Title: "Cabin", Price: -1})
	if !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestListingService_Get_WithRatingAggregate(t *testing.T) {
	listings := newStubListingRepo(&domain.Listing{ID: "l1", Title: "Cabin", Price: 80})
	ratings := &stubRatingRepo{ratings: []domain.Rating{
		{ListingID: "l1", Score: 5},
		{ListingID: "l1", Score: 4},
	}}
	svc := NewListingService(listings, ratings, zerolog.Nop())

	detail, err := svc.Get(context.Background(), "l1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if detail.RatingAverage != 4.5 || detail.RatingCount != 2 {
		t.Fatalf("unexpected aggregate: %+v", detail)
	}
}

func TestListingService_Get_RatingFailureDegrades(t *testing.T) {
	listings := newStubListingRepo(&domain.Listing{ID: "l1", Title: "Cabin"})
	ratings := &stubRatingRepo{err: errors.New("db down")}
	svc := NewListingService(listings, ratings, zerolog.Nop())

	detail, err := svc.Get(context.Background(), "l1")
	if err != nil {
		t.Fatalf("rating failure must not fail the read: %v", err)
	}
	if detail.RatingAverage != 0 || detail.RatingCount != 0 {
		t.Fatalf("expected empty aggregate, got %+v", detail)
	}
}

func TestListingService_Get_NotFound(t *testing.T) {
	svc := NewListingService(newStubListingRepo(), &stubRatingRepo{}, zerolog.Nop())

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}

func TestListingService_Update_NotFound(t *testing.T) {
	svc := NewListingService(newStubListingRepo(), &stubRatingRepo{}, zerolog.Nop())

	_, err := svc.Update(context.Background(), ports.UpdateListingInput{ID: "missing", Title: "X", Price: 10})
	if !errors.Is(err, domain.ErrListingNotFound) {
		t.Fatalf("expected ErrListingNotFound, got %v", err)
	}
}
