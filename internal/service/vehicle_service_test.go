package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoinsight/yardhub/internal/model"
)

func newTestVehicleService() (VehicleService, *fakeVehicleRepo, *fakeModelRepo) {
	vehicles := newFakeVehicleRepo()
	models := newFakeModelRepo()
	vehicles.models = models
	return NewVehicleService(vehicles, models), vehicles, models
}

func TestVehicleCreateWithExistingModel(t *testing.T) {
	svc, _, models := newTestVehicleService()
	m := &model.VehicleModel{ID: uuid.New(), Name: "Civic", Year: 2022}
	models.models[m.ID] = m

	vehicle, err := svc.Create(context.Background(), "ABC1D23", "user-1", ExistingModel{ID: m.ID})
	require.NoError(t, err)
	assert.Equal(t, m.ID, vehicle.ModelID)
	assert.Equal(t, "Civic", vehicle.Model.Name)
}

func TestVehicleCreateWithNewModel(t *testing.T) {
	svc, _, models := newTestVehicleService()

	vehicle, err := svc.Create(context.Background(), "ABC1D23", "user-1", NewModel{Name: "Onix", Year: 2023})
	require.NoError(t, err)
	assert.Equal(t, "Onix", vehicle.Model.Name)
	assert.Len(t, models.models, 1)
}

func TestVehicleCreateModelNotFound(t *testing.T) {
	svc, vehicles, _ := newTestVehicleService()

	_, err := svc.Create(context.Background(), "ABC1D23", "user-1", ExistingModel{ID: uuid.New()})
	assert.ErrorIs(t, err, ErrModelNotFound)
	assert.Empty(t, vehicles.vehicles)
}

func TestVehicleGetNotFound(t *testing.T) {
	svc, _, _ := newTestVehicleService()

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestVehicleQRCodeLifecycle(t *testing.T) {
	svc, vehicles, _ := newTestVehicleService()
	vehicle := &model.Vehicle{ID: uuid.New(), Plate: "ABC1D23", UserID: "user-1"}
	vehicles.vehicles[vehicle.ID] = vehicle

	code, err := svc.CreateQRCode(context.Background(), &vehicle.ID)
	require.NoError(t, err)
	require.NotNil(t, code.Vehicle)

	got, err := svc.GetByQRCode(context.Background(), code.ID)
	require.NoError(t, err)
	assert.Equal(t, vehicle.ID, got.ID)

	fetched, err := svc.GetQRCode(context.Background(), code.ID)
	require.NoError(t, err)
	assert.Equal(t, code.ID, fetched.ID)
}

func TestVehicleCreateQRCodeUnbound(t *testing.T) {
	svc, _, _ := newTestVehicleService()

	code, err := svc.CreateQRCode(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, code.Vehicle)

	// An unbound code resolves no vehicle.
	_, err = svc.GetByQRCode(context.Background(), code.ID)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestVehicleCreateQRCodeVehicleMissing(t *testing.T) {
	svc, _, _ := newTestVehicleService()
	missing := uuid.New()

	_, err := svc.CreateQRCode(context.Background(), &missing)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestVehicleGetQRCodeNotFound(t *testing.T) {
	svc, _, _ := newTestVehicleService()

	_, err := svc.GetQRCode(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrQRCodeNotFound)
}
