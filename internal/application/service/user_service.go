package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"github.com/restopos/restopos-api/internal/domain/repository"
	"github.com/restopos/restopos-api/pkg/apperror"
	"github.com/restopos/restopos-api/pkg/utils"
)

// UserService handles staff account management
type UserService struct {
	userRepo   repository.UserRepository
	outletRepo repository.OutletRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, outletRepo repository.OutletRepository) *UserService {
	return &UserService{userRepo: userRepo, outletRepo: outletRepo}
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     enum.Role
	OutletID *uuid.UUID
}

// CreateUser provisions a staff account. Every role except SUPERUSER must
// be bound to an outlet.
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown role")
	}
	if input.Role == enum.RoleSuperuser {
		return nil, apperror.NewForbiddenError("Superuser accounts cannot be provisioned through the API")
	}
	if input.OutletID == nil {
		return nil, apperror.NewBadRequestError("Staff accounts must be bound to an outlet")
	}

	outlet, err := s.outletRepo.GetByID(ctx, *input.OutletID)
	if err != nil {
		return nil, err
	}
	if outlet == nil {
		return nil, apperror.NewNotFoundError("Outlet")
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     input.Role,
		OutletID: input.OutletID,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserInput represents the update user input
type UpdateUserInput struct {
	Name     *string
	Role     *enum.Role
	OutletID *uuid.UUID
	IsActive *bool
	Password *string
}

// UpdateUser changes a staff account's details
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	if user.Role == enum.RoleSuperuser {
		return nil, apperror.NewForbiddenError("Superuser accounts cannot be modified through the API")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Role != nil {
		if !input.Role.IsValid() || *input.Role == enum.RoleSuperuser {
			return nil, apperror.NewBadRequestError("Unknown role")
		}
		user.Role = *input.Role
	}
	if input.OutletID != nil {
		outlet, err := s.outletRepo.GetByID(ctx, *input.OutletID)
		if err != nil {
			return nil, err
		}
		if outlet == nil {
			return nil, apperror.NewNotFoundError("Outlet")
		}
		user.OutletID = input.OutletID
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Password != nil {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser soft-deletes a staff account
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	if user.Role == enum.RoleSuperuser {
		return apperror.NewForbiddenError("Superuser accounts cannot be deleted")
	}
	return s.userRepo.Delete(ctx, id)
}

// GetUser returns one staff account
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ListUsersByOutlet returns the staff accounts of one outlet
func (s *UserService) ListUsersByOutlet(ctx context.Context, outletID uuid.UUID) ([]entity.User, error) {
	return s.userRepo.ListByOutlet(ctx, outletID)
}
