package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/repository"
	"github.com/restopos/restopos-api/pkg/apperror"
)

// OutletService handles outlet and dining table management
type OutletService struct {
	outletRepo repository.OutletRepository
	tableRepo  repository.DiningTableRepository
}

// NewOutletService creates a new outlet service
func NewOutletService(outletRepo repository.OutletRepository, tableRepo repository.DiningTableRepository) *OutletService {
	return &OutletService{outletRepo: outletRepo, tableRepo: tableRepo}
}

// CreateOutletInput represents the create outlet input
type CreateOutletInput struct {
	Name    string
	Address string
	Phone   string
}

// CreateOutlet registers a new branch. Outlet names are globally unique.
func (s *OutletService) CreateOutlet(ctx context.Context, input *CreateOutletInput) (*entity.Outlet, error) {
	existing, err := s.outletRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An outlet with this name already exists")
	}

	outlet := &entity.Outlet{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
	}
	if err := s.outletRepo.Create(ctx, outlet); err != nil {
		return nil, err
	}
	return outlet, nil
}

// UpdateOutletInput represents the update outlet input
type UpdateOutletInput struct {
	Name    *string
	Address *string
	Phone   *string
}

// UpdateOutlet updates an outlet's details
func (s *OutletService) UpdateOutlet(ctx context.Context, id uuid.UUID, input *UpdateOutletInput) (*entity.Outlet, error) {
	outlet, err := s.outletRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if outlet == nil {
		return nil, apperror.NewNotFoundError("Outlet")
	}

	if input.Name != nil && *input.Name != outlet.Name {
		existing, err := s.outletRepo.GetByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("An outlet with this name already exists")
		}
		outlet.Name = *input.Name
	}
	if input.Address != nil {
		outlet.Address = *input.Address
	}
	if input.Phone != nil {
		outlet.Phone = *input.Phone
	}

	if err := s.outletRepo.Update(ctx, outlet); err != nil {
		return nil, err
	}
	return outlet, nil
}

// GetOutlet returns one outlet
func (s *OutletService) GetOutlet(ctx context.Context, id uuid.UUID) (*entity.Outlet, error) {
	outlet, err := s.outletRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if outlet == nil {
		return nil, apperror.NewNotFoundError("Outlet")
	}
	return outlet, nil
}

// ListOutlets returns all outlets
func (s *OutletService) ListOutlets(ctx context.Context) ([]entity.Outlet, error) {
	return s.outletRepo.List(ctx)
}

// CreateDiningTableInput represents the create dining table input
type CreateDiningTableInput struct {
	OutletID uuid.UUID
	Name     string
	Capacity int
}

// CreateDiningTable adds a table to an outlet
func (s *OutletService) CreateDiningTable(ctx context.Context, input *CreateDiningTableInput) (*entity.DiningTable, error) {
	outlet, err := s.outletRepo.GetByID(ctx, input.OutletID)
	if err != nil {
		return nil, err
	}
	if outlet == nil {
		return nil, apperror.NewNotFoundError("Outlet")
	}

	table := &entity.DiningTable{
		OutletID: input.OutletID,
		Name:     input.Name,
		Capacity: input.Capacity,
	}
	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// UpdateDiningTableInput represents the update dining table input
type UpdateDiningTableInput struct {
	Name     *string
	Capacity *int
}

// UpdateDiningTable updates a table's details
func (s *OutletService) UpdateDiningTable(ctx context.Context, id uuid.UUID, input *UpdateDiningTableInput) (*entity.DiningTable, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Dining table")
	}
	if input.Name != nil {
		table.Name = *input.Name
	}
	if input.Capacity != nil {
		table.Capacity = *input.Capacity
	}
	if err := s.tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// DeleteDiningTable soft-deletes a table
func (s *OutletService) DeleteDiningTable(ctx context.Context, id uuid.UUID) error {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if table == nil {
		return apperror.NewNotFoundError("Dining table")
	}
	return s.tableRepo.Delete(ctx, id)
}

// ListDiningTables returns an outlet's tables
func (s *OutletService) ListDiningTables(ctx context.Context, outletID uuid.UUID) ([]entity.DiningTable, error) {
	return s.tableRepo.List(ctx, outletID)
}
