package service

import (
	"context"

	"github.com/deppfellow/phonecustody/internal/model"
)

type OwnerStore interface {
	Create(ctx context.Context, fields model.OwnerFields) (*model.Owner, error)
	FindAll(ctx context.Context) ([]model.Owner, error)
	FindOne(ctx context.Context, id int64) (*model.Owner, error)
	Update(ctx context.Context, id int64, fields model.OwnerFields) (int64, error)
	Remove(ctx context.Context, id int64) (int64, error)
}

type OwnerService struct {
	repo OwnerStore
}

func NewOwnerService(repo OwnerStore) *OwnerService {
	return &OwnerService{repo: repo}
}

func (s *OwnerService) Create(ctx context.Context, fields model.OwnerFields) (*model.Owner, error) {
	return s.repo.Create(ctx, fields)
}

func (s *OwnerService) FindAll(ctx context.Context) ([]model.Owner, error) {
	return s.repo.FindAll(ctx)
}

func (s *OwnerService) FindOne(ctx context.Context, id int64) (*model.Owner, error) {
	return s.repo.FindOne(ctx, id)
}

func (s *OwnerService) Update(ctx context.Context, id int64, fields model.OwnerFields) (int64, error) {
	return s.repo.Update(ctx, id, fields)
}

func (s *OwnerService) Remove(ctx context.Context, id int64) (int64, error) {
	return s.repo.Remove(ctx, id)
}
