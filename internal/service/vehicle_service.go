package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"autoinsight/yardhub/internal/model"
	"autoinsight/yardhub/internal/repository"
)

type VehicleService interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	GetByQRCode(ctx context.Context, qrCodeID uuid.UUID) (*model.Vehicle, error)
	// Create reuses the one-level link-or-create pattern for the model ref.
	Create(ctx context.Context, plate, userID string, ref ModelRef) (*model.Vehicle, error)
	CreateQRCode(ctx context.Context, vehicleID *uuid.UUID) (*model.QRCode, error)
	GetQRCode(ctx context.Context, id uuid.UUID) (*model.QRCode, error)
}

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	modelRepo   repository.VehicleModelRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, modelRepo repository.VehicleModelRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo, modelRepo: modelRepo}
}

func (s *vehicleService) Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *vehicleService) GetByQRCode(ctx context.Context, qrCodeID uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByQRCode(ctx, qrCodeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle by qr code: %w", err)
	}
	return vehicle, nil
}

func (s *vehicleService) Create(ctx context.Context, plate, userID string, ref ModelRef) (*model.Vehicle, error) {
	vehicle := &model.Vehicle{Plate: plate, UserID: userID}
	var newModel *model.VehicleModel

	switch mref := ref.(type) {
	case ExistingModel:
		m, err := s.modelRepo.FindByID(ctx, mref.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrModelNotFound
			}
			return nil, fmt.Errorf("find model: %w", err)
		}
		vehicle.ModelID = m.ID
		vehicle.Model = *m
	case NewModel:
		newModel = &model.VehicleModel{Name: mref.Name, Year: mref.Year}
	default:
		return nil, ErrInvalidModelRef
	}

	if err := s.vehicleRepo.Create(ctx, vehicle, newModel); err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *vehicleService) CreateQRCode(ctx context.Context, vehicleID *uuid.UUID) (*model.QRCode, error) {
	code := &model.QRCode{VehicleID: vehicleID}
	if vehicleID != nil {
		vehicle, err := s.Get(ctx, *vehicleID)
		if err != nil {
			return nil, err
		}
		code.Vehicle = vehicle
	}
	if err := s.vehicleRepo.CreateQRCode(ctx, code); err != nil {
		return nil, fmt.Errorf("create qr code: %w", err)
	}
	return code, nil
}

func (s *vehicleService) GetQRCode(ctx context.Context, id uuid.UUID) (*model.QRCode, error) {
	code, err := s.vehicleRepo.FindQRCodeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQRCodeNotFound
		}
		return nil, fmt.Errorf("find qr code: %w", err)
	}
	return code, nil
}
