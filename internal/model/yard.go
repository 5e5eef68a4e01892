package model

import (
	"time"

	"github.com/google/uuid"
)

// Yard is a physical lot where vehicles are stored and serviced. Every yard
// owns exactly one Address; the address row lives and dies with the yard.
type Yard struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AddressID uuid.UUID `gorm:"type:uuid;not null" json:"address_id"`
	Address   Address   `gorm:"foreignKey:AddressID" json:"address"`
	OwnerID   string    `gorm:"type:varchar(64);not null" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	YardEmployees []YardEmployee `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	YardVehicles  []YardVehicle  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Yard) TableName() string { return "yards" }

// Update mutates the yard's owner reference. The address is updated in place
// through its own Update method.
func (y *Yard) Update(ownerID string) {
	y.OwnerID = ownerID
}

type Address struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Country      string    `gorm:"type:varchar(64);not null" json:"country"`
	State        string    `gorm:"type:varchar(64);not null" json:"state"`
	City         string    `gorm:"type:varchar(128);not null" json:"city"`
	ZipCode      string    `gorm:"type:varchar(32);not null" json:"zip_code"`
	Neighborhood string    `gorm:"type:varchar(128);not null" json:"neighborhood"`
	Complement   *string   `gorm:"type:varchar(256)" json:"complement,omitempty"`
}

func (Address) TableName() string { return "addresses" }

func (a *Address) Update(country, state, city, zipCode, neighborhood string, complement *string) {
	a.Country = country
	a.State = state
	a.City = city
	a.ZipCode = zipCode
	a.Neighborhood = neighborhood
	a.Complement = complement
}
