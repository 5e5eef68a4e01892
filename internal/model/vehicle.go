package model

import (
	"github.com/google/uuid"
)

// VehicleModel is a make/year combination shared by reference: many vehicles
// may point at the same model row. Immutable after creation.
type VehicleModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"type:varchar(128);not null" json:"name"`
	Year int       `gorm:"not null" json:"year"`
}

func (VehicleModel) TableName() string { return "vehicle_models" }

type Vehicle struct {
	ID      uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Plate   string       `gorm:"type:varchar(16);not null" json:"plate"`
	ModelID uuid.UUID    `gorm:"type:uuid;not null" json:"model_id"`
	Model   VehicleModel `gorm:"foreignKey:ModelID" json:"model"`
	UserID  string       `gorm:"type:varchar(64);not null" json:"user_id"`
}

func (Vehicle) TableName() string { return "vehicles" }

// QRCode is an alternate lookup key for a vehicle. The vehicle reference is
// optional so codes can be printed before being bound.
type QRCode struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VehicleID *uuid.UUID `gorm:"type:uuid" json:"vehicle_id,omitempty"`
	Vehicle   *Vehicle   `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (QRCode) TableName() string { return "qr_codes" }
