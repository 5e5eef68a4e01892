package repository

import (
	"context"

	"github.com/google/uuid"

	"autoinsight/yardhub/internal/model"
)

// YardEmployeeRepository has no Create: employees only materialize through
// EmployeeInviteRepository.Accept.
type YardEmployeeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.YardEmployee, error)
	ListPagedByYard(ctx context.Context, req PageRequest, yardID uuid.UUID) (Page[model.YardEmployee], error)
	Update(ctx context.Context, employee *model.YardEmployee) error
	Delete(ctx context.Context, employee *model.YardEmployee) error
}
