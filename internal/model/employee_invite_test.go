package model

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestInviteAccept(t *testing.T) {
	invite := NewEmployeeInvite("ana@example.com", "Ana", RoleMember, "tok123", uuid.New())
	if invite.Status != InvitePending {
		t.Fatalf("expected new invite to be PENDING, got %s", invite.Status)
	}

	now := time.Now().UTC()
	if err := invite.Accept("user-1", now); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if invite.Status != InviteAccepted {
		t.Fatalf("expected ACCEPTED, got %s", invite.Status)
	}
	if invite.AcceptedAt == nil || !invite.AcceptedAt.Equal(now) {
		t.Fatalf("expected AcceptedAt to be stamped")
	}
	if invite.AcceptedByUserID == nil || *invite.AcceptedByUserID != "user-1" {
		t.Fatalf("expected AcceptedByUserID to be user-1")
	}

	// Accepted is terminal.
	if err := invite.Accept("user-2", now); !errors.Is(err, ErrInviteNotPending) {
		t.Fatalf("expected second accept to fail with ErrInviteNotPending, got %v", err)
	}
	if err := invite.Reject(); !errors.Is(err, ErrInviteNotPending) {
		t.Fatalf("expected reject after accept to fail, got %v", err)
	}
	if *invite.AcceptedByUserID != "user-1" {
		t.Fatalf("failed transition must not mutate the invite")
	}
}

func TestInviteReject(t *testing.T) {
	invite := NewEmployeeInvite("ana@example.com", "Ana", RoleAdmin, "tok456", uuid.New())
	if err := invite.Reject(); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if invite.Status != InviteRejected {
		t.Fatalf("expected REJECTED, got %s", invite.Status)
	}
	if invite.AcceptedAt != nil || invite.AcceptedByUserID != nil {
		t.Fatalf("rejected invite must not carry acceptance fields")
	}

	// Rejected is terminal too.
	if err := invite.Accept("user-1", time.Now()); !errors.Is(err, ErrInviteNotPending) {
		t.Fatalf("expected accept after reject to fail, got %v", err)
	}
	if err := invite.Reject(); !errors.Is(err, ErrInviteNotPending) {
		t.Fatalf("expected second reject to fail, got %v", err)
	}
}

func TestYardVehicleStatusValid(t *testing.T) {
	for _, s := range []YardVehicleStatus{StatusScheduled, StatusWaiting, StatusOnService, StatusFinished, StatusCancelled} {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if YardVehicleStatus("PARKED").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}

func TestEmployeeRoleValid(t *testing.T) {
	if !RoleAdmin.Valid() || !RoleMember.Valid() {
		t.Fatalf("expected known roles to be valid")
	}
	if EmployeeRole("OWNER").Valid() {
		t.Fatalf("expected unknown role to be invalid")
	}
}
