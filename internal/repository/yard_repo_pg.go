package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"autoinsight/yardhub/internal/model"
)

type pgYardRepository struct {
	db *gorm.DB
}

func NewPGYardRepository(db *gorm.DB) YardRepository {
	return &pgYardRepository{db: db}
}

func (r *pgYardRepository) Create(ctx context.Context, yard *model.Yard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&yard.Address).Error; err != nil {
			return err
		}
		yard.AddressID = yard.Address.ID
		return tx.Omit(clause.Associations).Create(yard).Error
	})
}

func (r *pgYardRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Yard, error) {
	var yard model.Yard
	if err := r.db.WithContext(ctx).Preload("Address").First(&yard, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &yard, nil
}

func (r *pgYardRepository) ListPaged(ctx context.Context, req PageRequest) (Page[model.Yard], error) {
	q := r.db.WithContext(ctx).Model(&model.Yard{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return Page[model.Yard]{}, err
	}

	var yards []model.Yard
	if err := q.Preload("Address").
		Order("id asc").
		Offset(req.Offset()).Limit(req.Size).
		Find(&yards).Error; err != nil {
		return Page[model.Yard]{}, err
	}
	return NewPage(yards, req, total), nil
}

func (r *pgYardRepository) Update(ctx context.Context, yard *model.Yard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&yard.Address).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Save(yard).Error
	})
}

func (r *pgYardRepository) Delete(ctx context.Context, yard *model.Yard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(yard).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Address{}, "id = ?", yard.AddressID).Error
	})
}
