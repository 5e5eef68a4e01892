package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"autoinsight/yardhub/internal/model"
	"autoinsight/yardhub/internal/repository"
)

// fakeYardRepo keeps yards in a map; only FindByID matters for these tests.
type fakeYardRepo struct {
	yards map[uuid.UUID]*model.Yard
}

func newFakeYardRepo(yards ...*model.Yard) *fakeYardRepo {
	r := &fakeYardRepo{yards: make(map[uuid.UUID]*model.Yard)}
	for _, y := range yards {
		r.yards[y.ID] = y
	}
	return r
}

func (r *fakeYardRepo) Create(_ context.Context, yard *model.Yard) error {
	if yard.ID == uuid.Nil {
		yard.ID = uuid.New()
	}
	r.yards[yard.ID] = yard
	return nil
}

func (r *fakeYardRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Yard, error) {
	yard, ok := r.yards[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return yard, nil
}

func (r *fakeYardRepo) ListPaged(_ context.Context, req repository.PageRequest) (repository.Page[model.Yard], error) {
	all := make([]model.Yard, 0, len(r.yards))
	for _, y := range r.yards {
		all = append(all, *y)
	}
	return repository.NewPage(all, req, int64(len(all))), nil
}

func (r *fakeYardRepo) Update(_ context.Context, yard *model.Yard) error {
	r.yards[yard.ID] = yard
	return nil
}

func (r *fakeYardRepo) Delete(_ context.Context, yard *model.Yard) error {
	delete(r.yards, yard.ID)
	return nil
}

// fakeInviteRepo mirrors the postgres implementation's contract, including
// the atomic accept that persists the invite and employee together.
type fakeInviteRepo struct {
	invites   map[uuid.UUID]*model.EmployeeInvite
	employees []*model.YardEmployee
}

func newFakeInviteRepo() *fakeInviteRepo {
	return &fakeInviteRepo{invites: make(map[uuid.UUID]*model.EmployeeInvite)}
}

func (r *fakeInviteRepo) Create(_ context.Context, invite *model.EmployeeInvite) error {
	if invite.ID == uuid.Nil {
		invite.ID = uuid.New()
	}
	cp := *invite
	r.invites[invite.ID] = &cp
	return nil
}

func (r *fakeInviteRepo) FindByToken(_ context.Context, token string) (*model.EmployeeInvite, error) {
	for _, inv := range r.invites {
		if inv.Token == token {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInviteRepo) FindPendingByEmailAndYard(_ context.Context, email string, yardID uuid.UUID) (*model.EmployeeInvite, error) {
	for _, inv := range r.invites {
		if inv.Email == email && inv.YardID == yardID && inv.Status == model.InvitePending {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInviteRepo) Accept(_ context.Context, invite *model.EmployeeInvite, employee *model.YardEmployee) error {
	cp := *invite
	r.invites[invite.ID] = &cp
	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	r.employees = append(r.employees, employee)
	return nil
}

func (r *fakeInviteRepo) Update(_ context.Context, invite *model.EmployeeInvite) error {
	cp := *invite
	r.invites[invite.ID] = &cp
	return nil
}

func (r *fakeInviteRepo) ListByYard(_ context.Context, req repository.PageRequest, yardID uuid.UUID) (repository.Page[model.EmployeeInvite], error) {
	return r.list(req, func(i *model.EmployeeInvite) bool { return i.YardID == yardID })
}

func (r *fakeInviteRepo) ListByAcceptedUser(_ context.Context, req repository.PageRequest, userID string) (repository.Page[model.EmployeeInvite], error) {
	return r.list(req, func(i *model.EmployeeInvite) bool {
		return i.AcceptedByUserID != nil && *i.AcceptedByUserID == userID
	})
}

func (r *fakeInviteRepo) ListPendingByEmail(_ context.Context, req repository.PageRequest, email string) (repository.Page[model.EmployeeInvite], error) {
	return r.list(req, func(i *model.EmployeeInvite) bool {
		return i.Email == email && i.Status == model.InvitePending
	})
}

func (r *fakeInviteRepo) list(req repository.PageRequest, keep func(*model.EmployeeInvite) bool) (repository.Page[model.EmployeeInvite], error) {
	var matched []model.EmployeeInvite
	for _, inv := range r.invites {
		if keep(inv) {
			matched = append(matched, *inv)
		}
	}
	total := int64(len(matched))
	start := req.Offset()
	if start > len(matched) {
		matched = nil
	} else {
		end := start + req.Size
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return repository.NewPage(matched, req, total), nil
}

func newTestInviteService(t *testing.T) (InviteService, *fakeInviteRepo, *model.Yard) {
	t.Helper()
	yard := &model.Yard{ID: uuid.New(), OwnerID: "owner-1"}
	inviteRepo := newFakeInviteRepo()
	return NewInviteService(inviteRepo, newFakeYardRepo(yard)), inviteRepo, yard
}

func TestInviteCreate(t *testing.T) {
	svc, _, yard := newTestInviteService(t)

	invite, err := svc.Create(context.Background(), yard.ID, "ana@example.com", "Ana", model.RoleMember)
	require.NoError(t, err)
	assert.Equal(t, model.InvitePending, invite.Status)
	assert.Len(t, invite.Token, 32)
	assert.Equal(t, yard.ID, invite.YardID)
}

func TestInviteCreateYardNotFound(t *testing.T) {
	svc, _, _ := newTestInviteService(t)

	_, err := svc.Create(context.Background(), uuid.New(), "ana@example.com", "Ana", model.RoleMember)
	assert.ErrorIs(t, err, ErrYardNotFound)
}

func TestInviteCreateDuplicatePending(t *testing.T) {
	svc, _, yard := newTestInviteService(t)

	_, err := svc.Create(context.Background(), yard.ID, "ana@example.com", "Ana", model.RoleMember)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), yard.ID, "ana@example.com", "Ana", model.RoleMember)
	assert.ErrorIs(t, err, ErrDuplicatePendingInvite)
}

func TestInviteCreateAllowedAfterRejection(t *testing.T) {
	svc, _, yard := newTestInviteService(t)

	first, err := svc.Create(context.Background(), yard.ID, "ana@example.com", "Ana", model.RoleMember)
	require.NoError(t, err)
	require.NoError(t, svc.Reject(context.Background(), first.Token))

	// Only PENDING invites block re-inviting the same email.
	second, err := svc.Create(context.Background(), yard.ID, "ana@example.com", "Ana", model.RoleMember)
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)
}

func TestInviteAcceptCreatesEmployee(t *testing.T) {
	svc, inviteRepo, yard := newTestInviteService(t)

	invite, err := svc.Create(context.Background(), yard.ID, "ana@example.com", "Ana", model.RoleAdmin)
	require.NoError(t, err)

	img := "https://cdn.example.com/ana.png"
	employee, err := svc.Accept(context.Background(), invite.Token, "user-7", &img)
	require.NoError(t, err)

	assert.Equal(t, "Ana", employee.Name)
	assert.Equal(t, model.RoleAdmin, employee.Role)
	assert.Equal(t, "user-7", employee.UserID)
	assert.Equal(t, yard.ID, employee.YardID)
	require.NotNil(t, employee.ImageURL)
	assert.Equal(t, img, *employee.ImageURL)

	stored, err := inviteRepo.FindByToken(context.Background(), invite.Token)
	require.NoError(t, err)
	assert.Equal(t, model.InviteAccepted, stored.Status)
	require.NotNil(t, stored.AcceptedByUserID)
	assert.Equal(t, "user-7", *stored.AcceptedByUserID)
	assert.NotNil(t, stored.AcceptedAt)
	assert.Len(t, inviteRepo.employees, 1)
}

func TestInviteAcceptTwiceConflicts(t *testing.T) {
	svc, inviteRepo, yard := newTestInviteService(t)

	invite, err := svc.Create(context.Background(), yard.ID, "ana@example.com", "Ana", model.RoleMember)
	require.NoError(t, err)

	_, err = svc.Accept(context.Background(), invite.Token, "user-1", nil)
	require.NoError(t, err)

	_, err = svc.Accept(context.Background(), invite.Token, "user-2", nil)
	assert.ErrorIs(t, err, ErrInviteNotPending)
	// No second employee appears from the failed accept.
	assert.Len(t, inviteRepo.employees, 1)
}

func TestInviteAcceptAfterReject(t *testing.T) {
	svc, inviteRepo, yard := newTestInviteService(t)

	invite, err := svc.Create(context.Background(), yard.ID, "ana@example.com", "Ana", model.RoleMember)
	require.NoError(t, err)
	require.NoError(t, svc.Reject(context.Background(), invite.Token))

	_, err = svc.Accept(context.Background(), invite.Token, "user-1", nil)
	assert.ErrorIs(t, err, ErrInviteNotPending)
	assert.Empty(t, inviteRepo.employees)
}

func TestInviteUnknownToken(t *testing.T) {
	svc, _, _ := newTestInviteService(t)

	_, err := svc.Accept(context.Background(), "no-such-token", "user-1", nil)
	assert.ErrorIs(t, err, ErrInviteNotFound)

	err = svc.Reject(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrInviteNotFound)
}

func TestInviteRejectTwiceConflicts(t *testing.T) {
	svc, _, yard := newTestInviteService(t)

	invite, err := svc.Create(context.Background(), yard.ID, "ana@example.com", "Ana", model.RoleMember)
	require.NoError(t, err)
	require.NoError(t, svc.Reject(context.Background(), invite.Token))

	err = svc.Reject(context.Background(), invite.Token)
	assert.ErrorIs(t, err, ErrInviteNotPending)
}

func TestInviteListValidation(t *testing.T) {
	svc, _, yard := newTestInviteService(t)

	_, err := svc.ListByYard(context.Background(), yard.ID, repository.PageRequest{Number: 0, Size: 10})
	assert.ErrorIs(t, err, ErrInvalidPagination)

	_, err = svc.ListAcceptedByUser(context.Background(), "user-1", repository.PageRequest{Number: 1, Size: -1})
	assert.ErrorIs(t, err, ErrInvalidPagination)

	_, err = svc.ListByYard(context.Background(), uuid.New(), repository.PageRequest{Number: 1, Size: 10})
	assert.ErrorIs(t, err, ErrYardNotFound)
}

func TestInviteListBeyondLastPage(t *testing.T) {
	svc, _, yard := newTestInviteService(t)

	_, err := svc.Create(context.Background(), yard.ID, "ana@example.com", "Ana", model.RoleMember)
	require.NoError(t, err)

	page, err := svc.ListByYard(context.Background(), yard.ID, repository.PageRequest{Number: 9, Size: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.NotNil(t, page.Data)
	assert.Equal(t, int64(1), page.TotalRecords)
	assert.Equal(t, 1, page.TotalPages)
}

// Full lifecycle: invite appears in the pending-by-email listing, acceptance
// materializes the employee, and the pending listing drains to empty.
func TestInviteLifecycle(t *testing.T) {
	svc, inviteRepo, yard := newTestInviteService(t)
	ctx := context.Background()
	page := repository.PageRequest{Number: 1, Size: 10}

	invite, err := svc.Create(ctx, yard.ID, "jane@example.com", "Jane", model.RoleAdmin)
	require.NoError(t, err)

	pending, err := svc.ListPendingByEmail(ctx, "jane@example.com", page)
	require.NoError(t, err)
	require.Len(t, pending.Data, 1)
	assert.Equal(t, model.InvitePending, pending.Data[0].Status)
	assert.Equal(t, invite.Token, pending.Data[0].Token)

	employee, err := svc.Accept(ctx, invite.Token, "u2", nil)
	require.NoError(t, err)
	assert.Equal(t, "Jane", employee.Name)
	assert.Equal(t, model.RoleAdmin, employee.Role)
	assert.Equal(t, "u2", employee.UserID)
	assert.Equal(t, yard.ID, employee.YardID)

	pending, err = svc.ListPendingByEmail(ctx, "jane@example.com", page)
	require.NoError(t, err)
	assert.Empty(t, pending.Data)

	accepted, err := svc.ListAcceptedByUser(ctx, "u2", page)
	require.NoError(t, err)
	require.Len(t, accepted.Data, 1)
	assert.Equal(t, model.InviteAccepted, accepted.Data[0].Status)

	require.Len(t, inviteRepo.employees, 1)
	assert.Equal(t, "Jane", inviteRepo.employees[0].Name)
}

func TestInviteTokensAreUnique(t *testing.T) {
	svc, _, yard := newTestInviteService(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		invite, err := svc.Create(context.Background(), yard.ID, uuid.NewString()+"@example.com", "Someone", model.RoleMember)
		require.NoError(t, err)
		assert.False(t, seen[invite.Token], "duplicate token generated")
		seen[invite.Token] = true
	}
}
