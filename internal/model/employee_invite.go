package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type InviteStatus string

const (
	InvitePending  InviteStatus = "PENDING"
	InviteAccepted InviteStatus = "ACCEPTED"
	InviteRejected InviteStatus = "REJECTED"
)

// ErrInviteNotPending is returned by Accept and Reject when the invite has
// already reached a terminal state. ACCEPTED and REJECTED are both terminal.
var ErrInviteNotPending = errors.New("invite is not pending")

// EmployeeInvite is a pending offer for a person, addressed by email, to join
// a yard as an employee. The token is the public lookup key; the internal id
// is never exposed for accept/reject.
type EmployeeInvite struct {
	ID               uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email            string       `gorm:"type:varchar(256);not null;index" json:"email"`
	Name             string       `gorm:"type:varchar(128);not null" json:"name"`
	Role             EmployeeRole `gorm:"type:varchar(16);not null" json:"role"`
	Status           InviteStatus `gorm:"type:varchar(16);not null" json:"status"`
	Token            string       `gorm:"type:varchar(64);uniqueIndex;not null" json:"token"`
	CreatedAt        time.Time    `json:"created_at"`
	AcceptedAt       *time.Time   `json:"accepted_at,omitempty"`
	AcceptedByUserID *string      `gorm:"type:varchar(64)" json:"accepted_by_user_id,omitempty"`
	YardID           uuid.UUID    `gorm:"type:uuid;not null" json:"yard_id"`
	Yard             Yard         `gorm:"foreignKey:YardID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EmployeeInvite) TableName() string { return "employee_invites" }

// NewEmployeeInvite builds a PENDING invite bound to the given yard.
func NewEmployeeInvite(email, name string, role EmployeeRole, token string, yardID uuid.UUID) *EmployeeInvite {
	return &EmployeeInvite{
		Email:     email,
		Name:      name,
		Role:      role,
		Status:    InvitePending,
		Token:     token,
		CreatedAt: time.Now().UTC(),
		YardID:    yardID,
	}
}

// Accept transitions the invite to ACCEPTED, stamping who accepted and when.
// Fails once the invite has left PENDING; the transition is one-shot.
func (i *EmployeeInvite) Accept(userID string, now time.Time) error {
	if i.Status != InvitePending {
		return ErrInviteNotPending
	}
	i.Status = InviteAccepted
	i.AcceptedAt = &now
	i.AcceptedByUserID = &userID
	return nil
}

// Reject transitions the invite to REJECTED. Terminal: a rejected invite can
// never be accepted afterwards.
func (i *EmployeeInvite) Reject() error {
	if i.Status != InvitePending {
		return ErrInviteNotPending
	}
	i.Status = InviteRejected
	return nil
}
