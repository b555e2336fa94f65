package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
)

// OutletRepository defines the interface for outlet data operations
type OutletRepository interface {
	Create(ctx context.Context, outlet *entity.Outlet) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Outlet, error)
	GetByName(ctx context.Context, name string) (*entity.Outlet, error)
	Update(ctx context.Context, outlet *entity.Outlet) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Outlet, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOutlet(ctx context.Context, outletID uuid.UUID) ([]entity.User, error)
}

// IdempotencyRepository defines the interface for idempotency key storage
type IdempotencyRepository interface {
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	DeleteExpired(ctx context.Context) error
}
