package repository

import (
	"context"

	"github.com/google/uuid"

	"autoinsight/yardhub/internal/model"
)

type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	// FindByQRCode resolves a vehicle through its QR code id.
	FindByQRCode(ctx context.Context, qrCodeID uuid.UUID) (*model.Vehicle, error)
	// Create persists the vehicle; when newModel is non-nil it is created
	// first, in the same transaction, and the vehicle is bound to it.
	Create(ctx context.Context, vehicle *model.Vehicle, newModel *model.VehicleModel) error
	CreateQRCode(ctx context.Context, code *model.QRCode) error
	FindQRCodeByID(ctx context.Context, id uuid.UUID) (*model.QRCode, error)
}

type VehicleModelRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.VehicleModel, error)
	Create(ctx context.Context, m *model.VehicleModel) error
}
