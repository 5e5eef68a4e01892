package repository

import (
	"context"

	"github.com/google/uuid"

	"autoinsight/yardhub/internal/model"
)

type EmployeeInviteRepository interface {
	Create(ctx context.Context, invite *model.EmployeeInvite) error
	FindByToken(ctx context.Context, token string) (*model.EmployeeInvite, error)
	// FindPendingByEmailAndYard returns the PENDING invite for the pair, or
	// gorm.ErrRecordNotFound when none exists. Resolved invites never match.
	FindPendingByEmailAndYard(ctx context.Context, email string, yardID uuid.UUID) (*model.EmployeeInvite, error)
	// Accept persists the invite's ACCEPTED transition and the materialized
	// employee as one atomic unit.
	Accept(ctx context.Context, invite *model.EmployeeInvite, employee *model.YardEmployee) error
	Update(ctx context.Context, invite *model.EmployeeInvite) error
	ListByYard(ctx context.Context, req PageRequest, yardID uuid.UUID) (Page[model.EmployeeInvite], error)
	ListByAcceptedUser(ctx context.Context, req PageRequest, userID string) (Page[model.EmployeeInvite], error)
	ListPendingByEmail(ctx context.Context, req PageRequest, email string) (Page[model.EmployeeInvite], error)
}
