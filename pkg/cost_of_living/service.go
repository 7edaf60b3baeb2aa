package cost_of_living

import (
	"context"
	"fmt"

	"github.com/balanco/balanco/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	GetAll(ctx context.Context) ([]LineItem, error)
	Create(ctx context.Context, item LineItem) (LineItem, error)
	Update(ctx context.Context, item LineItem) (bool, error)
	Delete(ctx context.Context, itemId string) (bool, error)
}

// Reader is the narrow read surface other packages depend on.
type Reader interface {
	GetAll(ctx context.Context) ([]LineItem, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]LineItem, error) {
	userId, err := user.EffectiveId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) Create(ctx context.Context, item LineItem) (LineItem, error) {
	userId, err := user.EffectiveId(ctx)
	if err != nil {
		return LineItem{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if item.Id == "" {
		item.Id = uuid.New().String()
	}
	return s.repo.Store(ctx, userId, item)
}

func (s *ServiceImpl) Update(ctx context.Context, item LineItem) (bool, error) {
	userId, err := user.EffectiveId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	updated, err := s.repo.Update(ctx, userId, item)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("cost of living item not updated, probably because it does not exist (%s) or the user (%d) is not the owner", item.Id, userId)
	}
	return updated, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, itemId string) (bool, error) {
	userId, err := user.EffectiveId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	deleted, err := s.repo.Delete(ctx, userId, itemId)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("cost of living item not deleted, probably because it does not exist (%s) or the user (%d) is not the owner", itemId, userId)
	}
	return deleted, nil
}
