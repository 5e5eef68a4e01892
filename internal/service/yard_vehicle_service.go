package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"autoinsight/yardhub/internal/model"
	"autoinsight/yardhub/internal/repository"
)

// CreateYardVehicleInput carries everything needed to link a vehicle to a
// yard, including the link-or-create vehicle reference.
type CreateYardVehicleInput struct {
	Status    model.YardVehicleStatus
	EnteredAt *time.Time
	LeftAt    *time.Time
	Vehicle   VehicleRef
}

type YardVehicleService interface {
	Create(ctx context.Context, yardID uuid.UUID, in CreateYardVehicleInput) (*model.YardVehicle, error)
	Get(ctx context.Context, yardID, yardVehicleID uuid.UUID) (*model.YardVehicle, error)
	ListByYard(ctx context.Context, yardID uuid.UUID, req repository.PageRequest) (repository.Page[model.YardVehicle], error)
	Update(ctx context.Context, yardID, yardVehicleID uuid.UUID, status model.YardVehicleStatus, enteredAt, leftAt *time.Time) (*model.YardVehicle, error)
}

type yardVehicleService struct {
	yardRepo        repository.YardRepository
	yardVehicleRepo repository.YardVehicleRepository
	vehicleRepo     repository.VehicleRepository
	modelRepo       repository.VehicleModelRepository
}

func NewYardVehicleService(
	yardRepo repository.YardRepository,
	yardVehicleRepo repository.YardVehicleRepository,
	vehicleRepo repository.VehicleRepository,
	modelRepo repository.VehicleModelRepository,
) YardVehicleService {
	return &yardVehicleService{
		yardRepo:        yardRepo,
		yardVehicleRepo: yardVehicleRepo,
		vehicleRepo:     vehicleRepo,
		modelRepo:       modelRepo,
	}
}

// Create resolves the three-level link-or-create cascade. Lookups run before
// any write; the writes themselves happen in one transaction inside the
// repository, so a failed step leaves zero rows behind.
func (s *yardVehicleService) Create(ctx context.Context, yardID uuid.UUID, in CreateYardVehicleInput) (*model.YardVehicle, error) {
	if !in.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if _, err := s.yardRepo.FindByID(ctx, yardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrYardNotFound
		}
		return nil, fmt.Errorf("find yard: %w", err)
	}

	yv := &model.YardVehicle{
		Status:    in.Status,
		EnteredAt: in.EnteredAt,
		LeftAt:    in.LeftAt,
		YardID:    yardID,
	}
	if yv.EnteredAt == nil {
		now := time.Now().UTC()
		yv.EnteredAt = &now
	}

	var newVehicle *model.Vehicle
	var newModel *model.VehicleModel

	switch ref := in.Vehicle.(type) {
	case ExistingVehicle:
		vehicle, err := s.vehicleRepo.FindByID(ctx, ref.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVehicleNotFound
			}
			return nil, fmt.Errorf("find vehicle: %w", err)
		}
		yv.VehicleID = vehicle.ID
		yv.Vehicle = *vehicle

	case NewVehicle:
		newVehicle = &model.Vehicle{Plate: ref.Plate, UserID: ref.UserID}
		switch mref := ref.Model.(type) {
		case ExistingModel:
			m, err := s.modelRepo.FindByID(ctx, mref.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrModelNotFound
				}
				return nil, fmt.Errorf("find model: %w", err)
			}
			newVehicle.ModelID = m.ID
			newVehicle.Model = *m
		case NewModel:
			newModel = &model.VehicleModel{Name: mref.Name, Year: mref.Year}
		default:
			// Unreachable from the HTTP boundary; guarded anyway.
			return nil, ErrInvalidModelRef
		}

	default:
		return nil, ErrInvalidVehicleRef
	}

	if err := s.yardVehicleRepo.Create(ctx, yv, newVehicle, newModel); err != nil {
		return nil, fmt.Errorf("create yard vehicle: %w", err)
	}
	return yv, nil
}

func (s *yardVehicleService) Get(ctx context.Context, yardID, yardVehicleID uuid.UUID) (*model.YardVehicle, error) {
	if _, err := s.yardRepo.FindByID(ctx, yardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrYardNotFound
		}
		return nil, fmt.Errorf("find yard: %w", err)
	}
	yv, err := s.yardVehicleRepo.FindByID(ctx, yardVehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrYardVehicleNotFound
		}
		return nil, fmt.Errorf("find yard vehicle: %w", err)
	}
	if yv.YardID != yardID {
		return nil, ErrYardVehicleNotFound
	}
	return yv, nil
}

func (s *yardVehicleService) ListByYard(ctx context.Context, yardID uuid.UUID, req repository.PageRequest) (repository.Page[model.YardVehicle], error) {
	if !req.Valid() {
		return repository.Page[model.YardVehicle]{}, ErrInvalidPagination
	}
	if _, err := s.yardRepo.FindByID(ctx, yardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.Page[model.YardVehicle]{}, ErrYardNotFound
		}
		return repository.Page[model.YardVehicle]{}, fmt.Errorf("find yard: %w", err)
	}
	return s.yardVehicleRepo.ListPagedByYard(ctx, req, yardID)
}

func (s *yardVehicleService) Update(ctx context.Context, yardID, yardVehicleID uuid.UUID, status model.YardVehicleStatus, enteredAt, leftAt *time.Time) (*model.YardVehicle, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	yv, err := s.Get(ctx, yardID, yardVehicleID)
	if err != nil {
		return nil, err
	}
	yv.Update(status, enteredAt, leftAt)
	if err := s.yardVehicleRepo.Update(ctx, yv); err != nil {
		return nil, fmt.Errorf("update yard vehicle: %w", err)
	}
	return yv, nil
}
