package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"autoinsight/yardhub/internal/model"
	"autoinsight/yardhub/internal/repository"
)

type YardService interface {
	Create(ctx context.Context, ownerID string, address model.Address) (*model.Yard, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Yard, error)
	List(ctx context.Context, req repository.PageRequest) (repository.Page[model.Yard], error)
	Update(ctx context.Context, id uuid.UUID, ownerID string, address model.Address) (*model.Yard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type yardService struct {
	yardRepo repository.YardRepository
}

func NewYardService(yardRepo repository.YardRepository) YardService {
	return &yardService{yardRepo: yardRepo}
}

func (s *yardService) Create(ctx context.Context, ownerID string, address model.Address) (*model.Yard, error) {
	yard := &model.Yard{
		Address: address,
		OwnerID: ownerID,
	}
	if err := s.yardRepo.Create(ctx, yard); err != nil {
		return nil, fmt.Errorf("create yard: %w", err)
	}
	return yard, nil
}

func (s *yardService) Get(ctx context.Context, id uuid.UUID) (*model.Yard, error) {
	yard, err := s.yardRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrYardNotFound
		}
		return nil, fmt.Errorf("find yard: %w", err)
	}
	return yard, nil
}

func (s *yardService) List(ctx context.Context, req repository.PageRequest) (repository.Page[model.Yard], error) {
	if !req.Valid() {
		return repository.Page[model.Yard]{}, ErrInvalidPagination
	}
	return s.yardRepo.ListPaged(ctx, req)
}

func (s *yardService) Update(ctx context.Context, id uuid.UUID, ownerID string, address model.Address) (*model.Yard, error) {
	yard, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	yard.Address.Update(address.Country, address.State, address.City, address.ZipCode, address.Neighborhood, address.Complement)
	yard.Update(ownerID)

	if err := s.yardRepo.Update(ctx, yard); err != nil {
		return nil, fmt.Errorf("update yard: %w", err)
	}
	return yard, nil
}

func (s *yardService) Delete(ctx context.Context, id uuid.UUID) error {
	yard, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.yardRepo.Delete(ctx, yard); err != nil {
		return fmt.Errorf("delete yard: %w", err)
	}
	return nil
}
