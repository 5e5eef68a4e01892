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

// EmployeeService manages yard employees. There is deliberately no Create:
// employees only come into existence when an invite is accepted.
type EmployeeService interface {
	Get(ctx context.Context, yardID, employeeID uuid.UUID) (*model.YardEmployee, error)
	ListByYard(ctx context.Context, yardID uuid.UUID, req repository.PageRequest) (repository.Page[model.YardEmployee], error)
	Update(ctx context.Context, yardID, employeeID uuid.UUID, name string, imageURL *string, role model.EmployeeRole, userID string) (*model.YardEmployee, error)
	Delete(ctx context.Context, yardID, employeeID uuid.UUID) error
}

type employeeService struct {
	employeeRepo repository.YardEmployeeRepository
	yardRepo     repository.YardRepository
}

func NewEmployeeService(employeeRepo repository.YardEmployeeRepository, yardRepo repository.YardRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo, yardRepo: yardRepo}
}

func (s *employeeService) Get(ctx context.Context, yardID, employeeID uuid.UUID) (*model.YardEmployee, error) {
	if err := s.requireYard(ctx, yardID); err != nil {
		return nil, err
	}
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	if employee.YardID != yardID {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}

func (s *employeeService) ListByYard(ctx context.Context, yardID uuid.UUID, req repository.PageRequest) (repository.Page[model.YardEmployee], error) {
	if !req.Valid() {
		return repository.Page[model.YardEmployee]{}, ErrInvalidPagination
	}
	if err := s.requireYard(ctx, yardID); err != nil {
		return repository.Page[model.YardEmployee]{}, err
	}
	return s.employeeRepo.ListPagedByYard(ctx, req, yardID)
}

func (s *employeeService) Update(ctx context.Context, yardID, employeeID uuid.UUID, name string, imageURL *string, role model.EmployeeRole, userID string) (*model.YardEmployee, error) {
	employee, err := s.Get(ctx, yardID, employeeID)
	if err != nil {
		return nil, err
	}
	employee.Update(name, imageURL, role, userID)
	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) Delete(ctx context.Context, yardID, employeeID uuid.UUID) error {
	employee, err := s.Get(ctx, yardID, employeeID)
	if err != nil {
		return err
	}
	if err := s.employeeRepo.Delete(ctx, employee); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func (s *employeeService) requireYard(ctx context.Context, yardID uuid.UUID) error {
	if _, err := s.yardRepo.FindByID(ctx, yardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrYardNotFound
		}
		return fmt.Errorf("find yard: %w", err)
	}
	return nil
}
