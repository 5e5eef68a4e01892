package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"autoinsight/yardhub/internal/model"
)

type pgEmployeeRepository struct {
	db *gorm.DB
}

func NewPGEmployeeRepository(db *gorm.DB) YardEmployeeRepository {
	return &pgEmployeeRepository{db: db}
}

func (r *pgEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.YardEmployee, error) {
	var employee model.YardEmployee
	if err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *pgEmployeeRepository) ListPagedByYard(ctx context.Context, req PageRequest, yardID uuid.UUID) (Page[model.YardEmployee], error) {
	q := r.db.WithContext(ctx).Model(&model.YardEmployee{}).Where("yard_id = ?", yardID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return Page[model.YardEmployee]{}, err
	}

	var employees []model.YardEmployee
	if err := q.Order("id asc").
		Offset(req.Offset()).Limit(req.Size).
		Find(&employees).Error; err != nil {
		return Page[model.YardEmployee]{}, err
	}
	return NewPage(employees, req, total), nil
}

func (r *pgEmployeeRepository) Update(ctx context.Context, employee *model.YardEmployee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *pgEmployeeRepository) Delete(ctx context.Context, employee *model.YardEmployee) error {
	return r.db.WithContext(ctx).Delete(employee).Error
}
