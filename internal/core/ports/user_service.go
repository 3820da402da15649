package ports

import (
	"context"

	"github.com/wanderhub/travel-listings/internal/core/domain"
)

// UserService defines the admin user-management operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	UpdateName(ctx context.Context, id, name string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// AnalyticsResult groups the three independent chart series shown on the
// admin analysis page. The series are fetched concurrently; their relative
// completion order carries no meaning.
type AnalyticsResult struct {
	UsersByRole []RoleCountPerDay `json:"users_by_role"`
	Bookings    []CountPerDay     `json:"bookings"`
	Ratings     []CountPerDay     `json:"ratings"`
}

// AnalyticsService aggregates per-day counts for the admin console.
type AnalyticsService interface {
	Overview(ctx context.Context) (*AnalyticsResult, error)
}
