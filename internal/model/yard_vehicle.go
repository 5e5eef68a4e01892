package model

import (
	"time"

	"github.com/google/uuid"
)

// YardVehicleStatus tracks a vehicle's presence at a yard.
type YardVehicleStatus string

const (
	StatusScheduled YardVehicleStatus = "SCHEDULED"
	StatusWaiting   YardVehicleStatus = "WAITING"
	StatusOnService YardVehicleStatus = "ON_SERVICE"
	StatusFinished  YardVehicleStatus = "FINISHED"
	StatusCancelled YardVehicleStatus = "CANCELLED"
)

// Valid reports whether s is one of the known statuses.
func (s YardVehicleStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusWaiting, StatusOnService, StatusFinished, StatusCancelled:
		return true
	}
	return false
}

// YardVehicle is a time-bounded record of a vehicle's visit to a yard. A
// vehicle can accumulate many of these over time.
type YardVehicle struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Status    YardVehicleStatus `gorm:"type:varchar(16);not null" json:"status"`
	EnteredAt *time.Time        `json:"entered_at,omitempty"`
	LeftAt    *time.Time        `json:"left_at,omitempty"`
	VehicleID uuid.UUID         `gorm:"type:uuid;not null" json:"vehicle_id"`
	Vehicle   Vehicle           `gorm:"foreignKey:VehicleID" json:"vehicle"`
	YardID    uuid.UUID         `gorm:"type:uuid;not null" json:"yard_id"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (YardVehicle) TableName() string { return "yard_vehicles" }

func (yv *YardVehicle) Update(status YardVehicleStatus, enteredAt, leftAt *time.Time) {
	yv.Status = status
	yv.EnteredAt = enteredAt
	yv.LeftAt = leftAt
}
