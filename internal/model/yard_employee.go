package model

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeRole string

const (
	RoleAdmin  EmployeeRole = "ADMIN"
	RoleMember EmployeeRole = "MEMBER"
)

func (r EmployeeRole) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// YardEmployee belongs to exactly one yard. Rows are only ever created by
// accepting an employee invite; there is no direct-create path.
type YardEmployee struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string       `gorm:"type:varchar(128);not null" json:"name"`
	ImageURL  *string      `gorm:"type:varchar(512)" json:"image_url,omitempty"`
	Role      EmployeeRole `gorm:"type:varchar(16);not null" json:"role"`
	UserID    string       `gorm:"type:varchar(64);not null" json:"user_id"`
	YardID    uuid.UUID    `gorm:"type:uuid;not null" json:"yard_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (YardEmployee) TableName() string { return "yard_employees" }

func (e *YardEmployee) Update(name string, imageURL *string, role EmployeeRole, userID string) {
	e.Name = name
	e.ImageURL = imageURL
	e.Role = role
	e.UserID = userID
}
