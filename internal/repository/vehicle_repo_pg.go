package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"autoinsight/yardhub/internal/model"
)

type pgVehicleRepository struct {
	db *gorm.DB
}

func NewPGVehicleRepository(db *gorm.DB) VehicleRepository {
	return &pgVehicleRepository{db: db}
}

func (r *pgVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).Preload("Model").First(&vehicle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *pgVehicleRepository) FindByQRCode(ctx context.Context, qrCodeID uuid.UUID) (*model.Vehicle, error) {
	var code model.QRCode
	err := r.db.WithContext(ctx).
		Preload("Vehicle").Preload("Vehicle.Model").
		First(&code, "id = ?", qrCodeID).Error
	if err != nil {
		return nil, err
	}
	if code.Vehicle == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return code.Vehicle, nil
}

func (r *pgVehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle, newModel *model.VehicleModel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if newModel != nil {
			if err := tx.Create(newModel).Error; err != nil {
				return err
			}
			vehicle.ModelID = newModel.ID
			vehicle.Model = *newModel
		}
		return tx.Omit(clause.Associations).Create(vehicle).Error
	})
}

func (r *pgVehicleRepository) CreateQRCode(ctx context.Context, code *model.QRCode) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(code).Error
}

func (r *pgVehicleRepository) FindQRCodeByID(ctx context.Context, id uuid.UUID) (*model.QRCode, error) {
	var code model.QRCode
	err := r.db.WithContext(ctx).
		Preload("Vehicle").Preload("Vehicle.Model").
		First(&code, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &code, nil
}

type pgVehicleModelRepository struct {
	db *gorm.DB
}

func NewPGVehicleModelRepository(db *gorm.DB) VehicleModelRepository {
	return &pgVehicleModelRepository{db: db}
}

func (r *pgVehicleModelRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.VehicleModel, error) {
	var m model.VehicleModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *pgVehicleModelRepository) Create(ctx context.Context, m *model.VehicleModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}
