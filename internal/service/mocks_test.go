package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/deppfellow/phonecustody/internal/lib/email"
	"github.com/deppfellow/phonecustody/internal/model"
)

type mockPhoneStore struct {
	mock.Mock
}

func (m *mockPhoneStore) Create(ctx context.Context, fields model.PhoneFields) (*model.Phone, error) {
	args := m.Called(ctx, fields)
	phone, _ := args.Get(0).(*model.Phone)
	return phone, args.Error(1)
}

func (m *mockPhoneStore) FindAll(ctx context.Context) ([]model.Phone, error) {
	args := m.Called(ctx)
	phones, _ := args.Get(0).([]model.Phone)
	return phones, args.Error(1)
}

func (m *mockPhoneStore) FindOne(ctx context.Context, id int64) (*model.Phone, error) {
	args := m.Called(ctx, id)
	phone, _ := args.Get(0).(*model.Phone)
	return phone, args.Error(1)
}

func (m *mockPhoneStore) Update(ctx context.Context, id int64, fields model.PhoneFields) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPhoneStore) Remove(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockRecordStore struct {
	mock.Mock
}

func (m *mockRecordStore) Create(ctx context.Context, req model.CreateOwnershipRecordRequest) (*model.OwnershipRecord, error) {
	args := m.Called(ctx, req)
	rec, _ := args.Get(0).(*model.OwnershipRecord)
	return rec, args.Error(1)
}

func (m *mockRecordStore) FindAll(ctx context.Context) ([]model.OwnershipRecord, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]model.OwnershipRecord)
	return records, args.Error(1)
}

func (m *mockRecordStore) FindOne(ctx context.Context, id int64) (*model.OwnershipRecord, error) {
	args := m.Called(ctx, id)
	rec, _ := args.Get(0).(*model.OwnershipRecord)
	return rec, args.Error(1)
}

func (m *mockRecordStore) FindByPhone(ctx context.Context, phoneID int64) ([]model.OwnershipRecord, error) {
	args := m.Called(ctx, phoneID)
	records, _ := args.Get(0).([]model.OwnershipRecord)
	return records, args.Error(1)
}

func (m *mockRecordStore) FindByOwner(ctx context.Context, ownerID int64) ([]model.OwnershipRecord, error) {
	args := m.Called(ctx, ownerID)
	records, _ := args.Get(0).([]model.OwnershipRecord)
	return records, args.Error(1)
}

func (m *mockRecordStore) Update(ctx context.Context, id int64, req model.UpdateOwnershipRecordRequest) (int64, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRecordStore) Remove(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) EnqueueCustodyRecorded(ctx context.Context, n email.CustodyRecorded) error {
	return m.Called(ctx, n).Error(0)
}
