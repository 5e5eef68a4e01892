package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"autoinsight/yardhub/internal/model"
)

type pgInviteRepository struct {
	db *gorm.DB
}

func NewPGInviteRepository(db *gorm.DB) EmployeeInviteRepository {
	return &pgInviteRepository{db: db}
}

func (r *pgInviteRepository) Create(ctx context.Context, invite *model.EmployeeInvite) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(invite).Error
}

func (r *pgInviteRepository) FindByToken(ctx context.Context, token string) (*model.EmployeeInvite, error) {
	var invite model.EmployeeInvite
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *pgInviteRepository) FindPendingByEmailAndYard(ctx context.Context, email string, yardID uuid.UUID) (*model.EmployeeInvite, error) {
	var invite model.EmployeeInvite
	err := r.db.WithContext(ctx).
		Where("email = ? AND yard_id = ? AND status = ?", email, yardID, model.InvitePending).
		First(&invite).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *pgInviteRepository) Accept(ctx context.Context, invite *model.EmployeeInvite, employee *model.YardEmployee) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(invite).Error; err != nil {
			return err
		}
		return tx.Create(employee).Error
	})
}

func (r *pgInviteRepository) Update(ctx context.Context, invite *model.EmployeeInvite) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(invite).Error
}

func (r *pgInviteRepository) ListByYard(ctx context.Context, req PageRequest, yardID uuid.UUID) (Page[model.EmployeeInvite], error) {
	return r.listPaged(ctx, req, "yard_id = ?", yardID)
}

func (r *pgInviteRepository) ListByAcceptedUser(ctx context.Context, req PageRequest, userID string) (Page[model.EmployeeInvite], error) {
	return r.listPaged(ctx, req, "accepted_by_user_id = ?", userID)
}

func (r *pgInviteRepository) ListPendingByEmail(ctx context.Context, req PageRequest, email string) (Page[model.EmployeeInvite], error) {
	return r.listPaged(ctx, req, "email = ? AND status = ?", email, model.InvitePending)
}

// Invite listings order by creation time descending: most recent first.
func (r *pgInviteRepository) listPaged(ctx context.Context, req PageRequest, cond string, args ...any) (Page[model.EmployeeInvite], error) {
	q := r.db.WithContext(ctx).Model(&model.EmployeeInvite{}).Where(cond, args...)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return Page[model.EmployeeInvite]{}, err
	}

	var invites []model.EmployeeInvite
	if err := q.Order("created_at desc").
		Offset(req.Offset()).Limit(req.Size).
		Find(&invites).Error; err != nil {
		return Page[model.EmployeeInvite]{}, err
	}
	return NewPage(invites, req, total), nil
}
