package ports

import (
	"context"

	"github.com/wanderhub/travel-listings/internal/core/domain"
)

// UserRepository defines persistence for the users collection.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateName(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
	CountByRolePerDay(ctx context.Context) ([]RoleCountPerDay, error)
}

// RoleCountPerDay is one point of the admin user chart: how many accounts of
// each role were created on a given day.
type RoleCountPerDay struct {
	Date   string `json:"date"`
	Admins int    `json:"admins"`
	Users  int    `json:"users"`
}

// CountPerDay is a generic daily count used by the booking and rating charts.
type CountPerDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
