package repository

import (
	"context"

	"github.com/google/uuid"

	"autoinsight/yardhub/internal/model"
)

type YardRepository interface {
	// Create persists the yard together with its owned address as one unit.
	Create(ctx context.Context, yard *model.Yard) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Yard, error)
	ListPaged(ctx context.Context, req PageRequest) (Page[model.Yard], error)
	Update(ctx context.Context, yard *model.Yard) error
	// Delete removes the yard and its address; dependent rows cascade.
	Delete(ctx context.Context, yard *model.Yard) error
}
