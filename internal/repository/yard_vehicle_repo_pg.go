package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"autoinsight/yardhub/internal/model"
)

type pgYardVehicleRepository struct {
	db *gorm.DB
}

func NewPGYardVehicleRepository(db *gorm.DB) YardVehicleRepository {
	return &pgYardVehicleRepository{db: db}
}

func (r *pgYardVehicleRepository) Create(ctx context.Context, yv *model.YardVehicle, newVehicle *model.Vehicle, newModel *model.VehicleModel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if newVehicle != nil {
			if newModel != nil {
				if err := tx.Create(newModel).Error; err != nil {
					return err
				}
				newVehicle.ModelID = newModel.ID
				newVehicle.Model = *newModel
			}
			if err := tx.Omit(clause.Associations).Create(newVehicle).Error; err != nil {
				return err
			}
			yv.VehicleID = newVehicle.ID
			yv.Vehicle = *newVehicle
		}
		return tx.Omit(clause.Associations).Create(yv).Error
	})
}

func (r *pgYardVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.YardVehicle, error) {
	var yv model.YardVehicle
	err := r.db.WithContext(ctx).
		Preload("Vehicle").Preload("Vehicle.Model").
		First(&yv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &yv, nil
}

func (r *pgYardVehicleRepository) ListPagedByYard(ctx context.Context, req PageRequest, yardID uuid.UUID) (Page[model.YardVehicle], error) {
	q := r.db.WithContext(ctx).Model(&model.YardVehicle{}).Where("yard_id = ?", yardID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return Page[model.YardVehicle]{}, err
	}

	var vehicles []model.YardVehicle
	if err := q.Preload("Vehicle").Preload("Vehicle.Model").
		Order("id asc").
		Offset(req.Offset()).Limit(req.Size).
		Find(&vehicles).Error; err != nil {
		return Page[model.YardVehicle]{}, err
	}
	return NewPage(vehicles, req, total), nil
}

func (r *pgYardVehicleRepository) Update(ctx context.Context, yv *model.YardVehicle) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(yv).Error
}
