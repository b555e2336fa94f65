package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	domainRepo "github.com/restopos/restopos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type outletRepository struct {
	db *gorm.DB
}

// NewOutletRepository creates a new outlet repository
func NewOutletRepository(db *gorm.DB) domainRepo.OutletRepository {
	return &outletRepository{db: db}
}

func (r *outletRepository) Create(ctx context.Context, outlet *entity.Outlet) error {
	return dbFrom(ctx, r.db).Create(outlet).Error
}

func (r *outletRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Outlet, error) {
	var outlet entity.Outlet
	err := dbFrom(ctx, r.db).First(&outlet, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &outlet, err
}

func (r *outletRepository) GetByName(ctx context.Context, name string) (*entity.Outlet, error) {
	var outlet entity.Outlet
	err := dbFrom(ctx, r.db).First(&outlet, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &outlet, err
}

func (r *outletRepository) Update(ctx context.Context, outlet *entity.Outlet) error {
	return dbFrom(ctx, r.db).Save(outlet).Error
}

func (r *outletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Outlet{}, "id = ?", id).Error
}

func (r *outletRepository) List(ctx context.Context) ([]entity.Outlet, error) {
	var outlets []entity.Outlet
	err := dbFrom(ctx, r.db).Order("name ASC").Find(&outlets).Error
	return outlets, err
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return dbFrom(ctx, r.db).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := dbFrom(ctx, r.db).Preload("Outlet").First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := dbFrom(ctx, r.db).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	var user entity.User
	err := dbFrom(ctx, r.db).First(&user, "google_id = ?", googleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return dbFrom(ctx, r.db).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.User{}, "id = ?", id).Error
}

func (r *userRepository) ListByOutlet(ctx context.Context, outletID uuid.UUID) ([]entity.User, error) {
	var users []entity.User
	err := dbFrom(ctx, r.db).
		Where("outlet_id = ?", outletID).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository creates a new idempotency key repository
func NewIdempotencyRepository(db *gorm.DB) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (r *idempotencyRepository) Create(ctx context.Context, key *entity.IdempotencyKey) error {
	return dbFrom(ctx, r.db).Create(key).Error
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	var ikey entity.IdempotencyKey
	err := dbFrom(ctx, r.db).First(&ikey, "key = ? AND user_id = ?", key, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ikey, err
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) error {
	return dbFrom(ctx, r.db).
		Where("expires_at < NOW()").
		Delete(&entity.IdempotencyKey{}).Error
}
