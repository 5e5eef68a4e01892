package repository

import (
	"context"

	"github.com/google/uuid"

	"autoinsight/yardhub/internal/model"
)

type YardVehicleRepository interface {
	// Create persists the association. When newVehicle (and, transitively,
	// newModel) is non-nil, the cascade-created rows are written in the same
	// transaction as the association: a failure at any step writes nothing.
	Create(ctx context.Context, yv *model.YardVehicle, newVehicle *model.Vehicle, newModel *model.VehicleModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.YardVehicle, error)
	ListPagedByYard(ctx context.Context, req PageRequest, yardID uuid.UUID) (Page[model.YardVehicle], error)
	Update(ctx context.Context, yv *model.YardVehicle) error
}
