package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"autoinsight/yardhub/internal/model"
	"autoinsight/yardhub/internal/repository"
)

type InviteService interface {
	Create(ctx context.Context, yardID uuid.UUID, email, name string, role model.EmployeeRole) (*model.EmployeeInvite, error)
	Accept(ctx context.Context, token, userID string, imageURL *string) (*model.YardEmployee, error)
	Reject(ctx context.Context, token string) error
	ListByYard(ctx context.Context, yardID uuid.UUID, req repository.PageRequest) (repository.Page[model.EmployeeInvite], error)
	ListAcceptedByUser(ctx context.Context, userID string, req repository.PageRequest) (repository.Page[model.EmployeeInvite], error)
	ListPendingByEmail(ctx context.Context, email string, req repository.PageRequest) (repository.Page[model.EmployeeInvite], error)
}

type inviteService struct {
	inviteRepo repository.EmployeeInviteRepository
	yardRepo   repository.YardRepository
}

func NewInviteService(inviteRepo repository.EmployeeInviteRepository, yardRepo repository.YardRepository) InviteService {
	return &inviteService{inviteRepo: inviteRepo, yardRepo: yardRepo}
}

func (s *inviteService) Create(ctx context.Context, yardID uuid.UUID, email, name string, role model.EmployeeRole) (*model.EmployeeInvite, error) {
	if _, err := s.yardRepo.FindByID(ctx, yardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrYardNotFound
		}
		return nil, fmt.Errorf("find yard: %w", err)
	}

	_, err := s.inviteRepo.FindPendingByEmailAndYard(ctx, email, yardID)
	if err == nil {
		return nil, ErrDuplicatePendingInvite
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check pending invite: %w", err)
	}

	token, err := generateInviteToken()
	if err != nil {
		return nil, fmt.Errorf("generate invite token: %w", err)
	}

	invite := model.NewEmployeeInvite(email, name, role, token, yardID)
	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		return nil, fmt.Errorf("create invite: %w", err)
	}
	return invite, nil
}

func (s *inviteService) Accept(ctx context.Context, token, userID string, imageURL *string) (*model.YardEmployee, error) {
	invite, err := s.inviteRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("find invite: %w", err)
	}

	if err := invite.Accept(userID, time.Now().UTC()); err != nil {
		return nil, ErrInviteNotPending
	}

	employee := &model.YardEmployee{
		Name:     invite.Name,
		ImageURL: imageURL,
		Role:     invite.Role,
		UserID:   userID,
		YardID:   invite.YardID,
	}

	// Transition and employee creation commit together or not at all.
	if err := s.inviteRepo.Accept(ctx, invite, employee); err != nil {
		return nil, fmt.Errorf("accept invite: %w", err)
	}
	return employee, nil
}

func (s *inviteService) Reject(ctx context.Context, token string) error {
	invite, err := s.inviteRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInviteNotFound
		}
		return fmt.Errorf("find invite: %w", err)
	}

	if err := invite.Reject(); err != nil {
		return ErrInviteNotPending
	}

	if err := s.inviteRepo.Update(ctx, invite); err != nil {
		return fmt.Errorf("reject invite: %w", err)
	}
	return nil
}

func (s *inviteService) ListByYard(ctx context.Context, yardID uuid.UUID, req repository.PageRequest) (repository.Page[model.EmployeeInvite], error) {
	if !req.Valid() {
		return repository.Page[model.EmployeeInvite]{}, ErrInvalidPagination
	}
	if _, err := s.yardRepo.FindByID(ctx, yardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.Page[model.EmployeeInvite]{}, ErrYardNotFound
		}
		return repository.Page[model.EmployeeInvite]{}, fmt.Errorf("find yard: %w", err)
	}
	return s.inviteRepo.ListByYard(ctx, req, yardID)
}

func (s *inviteService) ListAcceptedByUser(ctx context.Context, userID string, req repository.PageRequest) (repository.Page[model.EmployeeInvite], error) {
	if !req.Valid() {
		return repository.Page[model.EmployeeInvite]{}, ErrInvalidPagination
	}
	return s.inviteRepo.ListByAcceptedUser(ctx, req, userID)
}

func (s *inviteService) ListPendingByEmail(ctx context.Context, email string, req repository.PageRequest) (repository.Page[model.EmployeeInvite], error) {
	if !req.Valid() {
		return repository.Page[model.EmployeeInvite]{}, ErrInvalidPagination
	}
	return s.inviteRepo.ListPendingByEmail(ctx, req, email)
}

// generateInviteToken creates a random 128-bit token rendered as 32 hex chars.
func generateInviteToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
