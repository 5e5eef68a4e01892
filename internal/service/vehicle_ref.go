package service

import "github.com/google/uuid"

// VehicleRef is the link-or-create choice for a vehicle: either a reference
// to an existing row or an inline payload to create one. Modeling it as a
// sealed sum type makes "both set" and "neither set" unrepresentable past the
// HTTP boundary.
type VehicleRef interface {
	isVehicleRef()
}

// ExistingVehicle references a vehicle already in the store.
type ExistingVehicle struct {
	ID uuid.UUID
}

// NewVehicle is an inline creation payload. Its model reference is itself a
// link-or-create choice.
type NewVehicle struct {
	Plate  string
	UserID string
	Model  ModelRef
}

func (ExistingVehicle) isVehicleRef() {}
func (NewVehicle) isVehicleRef()      {}

// ModelRef is the one-level link-or-create choice for a vehicle model.
type ModelRef interface {
	isModelRef()
}

type ExistingModel struct {
	ID uuid.UUID
}

type NewModel struct {
	Name string
	Year int
}

func (ExistingModel) isModelRef() {}
func (NewModel) isModelRef()      {}
