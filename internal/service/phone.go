package service

import (
	"context"

	"github.com/deppfellow/phonecustody/internal/model"
)

// PhoneStore is the persistence PhoneService needs.
type PhoneStore interface {
	Create(ctx context.Context, fields model.PhoneFields) (*model.Phone, error)
	FindAll(ctx context.Context) ([]model.Phone, error)
	FindOne(ctx context.Context, id int64) (*model.Phone, error)
	Update(ctx context.Context, id int64, fields model.PhoneFields) (int64, error)
	Remove(ctx context.Context, id int64) (int64, error)
}

type PhoneService struct {
	repo PhoneStore
}

func NewPhoneService(repo PhoneStore) *PhoneService {
	return &PhoneService{repo: repo}
}

func (s *PhoneService) Create(ctx context.Context, fields model.PhoneFields) (*model.Phone, error) {
	return s.repo.Create(ctx, fields)
}

func (s *PhoneService) FindAll(ctx context.Context) ([]model.Phone, error) {
	return s.repo.FindAll(ctx)
}

// FindOne returns nil without error when the phone does not exist.
func (s *PhoneService) FindOne(ctx context.Context, id int64) (*model.Phone, error) {
	return s.repo.FindOne(ctx, id)
}

func (s *PhoneService) Update(ctx context.Context, id int64, fields model.PhoneFields) (int64, error) {
	return s.repo.Update(ctx, id, fields)
}

func (s *PhoneService) Remove(ctx context.Context, id int64) (int64, error) {
	return s.repo.Remove(ctx, id)
}
