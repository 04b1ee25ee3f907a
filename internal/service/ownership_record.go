package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/phonecustody/internal/lib/email"
	"github.com/deppfellow/phonecustody/internal/model"
)

type OwnershipRecordStore interface {
	Create(ctx context.Context, req model.CreateOwnershipRecordRequest) (*model.OwnershipRecord, error)
	FindAll(ctx context.Context) ([]model.OwnershipRecord, error)
	FindOne(ctx context.Context, id int64) (*model.OwnershipRecord, error)
	FindByPhone(ctx context.Context, phoneID int64) ([]model.OwnershipRecord, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]model.OwnershipRecord, error)
	Update(ctx context.Context, id int64, req model.UpdateOwnershipRecordRequest) (int64, error)
	Remove(ctx context.Context, id int64) (int64, error)
}

// CustodyNotifier queues the "you now hold this phone" email.
type CustodyNotifier interface {
	EnqueueCustodyRecorded(ctx context.Context, n email.CustodyRecorded) error
}

type OwnershipRecordService struct {
	repo     OwnershipRecordStore
	notifier CustodyNotifier
}

// NewOwnershipRecordService builds the service. notifier may be nil.
func NewOwnershipRecordService(repo OwnershipRecordStore, notifier CustodyNotifier) *OwnershipRecordService {
	return &OwnershipRecordService{repo: repo, notifier: notifier}
}

// Create persists the record and, when it makes the owner current, queues a
// notification. Queueing failures are logged and never fail the request.
func (s *OwnershipRecordService) Create(ctx context.Context, req model.CreateOwnershipRecordRequest) (*model.OwnershipRecord, error) {
	rec, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.notifyCustody(ctx, rec)
	return rec, nil
}

func (s *OwnershipRecordService) notifyCustody(ctx context.Context, rec *model.OwnershipRecord) {
	if s.notifier == nil || !rec.CurrentOwner || rec.Owner == nil || rec.Phone == nil {
		return
	}
	if rec.Owner.Email == nil || *rec.Owner.Email == "" {
		return
	}

	n := email.CustodyRecorded{
		To:                *rec.Owner.Email,
		OwnerFirstName:    rec.Owner.FirstName,
		PhoneBrand:        rec.Phone.Brand,
		PhoneModel:        rec.Phone.Model,
		PhoneImei:         rec.Phone.Imei,
		DateAcquired:      rec.DateAcquired,
		OwnershipRecordID: rec.OwnershipRecordID,
	}

	if err := s.notifier.EnqueueCustodyRecorded(ctx, n); err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Int64("ownership_record_id", rec.OwnershipRecordID).
			Msg("failed to enqueue custody notification")
	}
}

func (s *OwnershipRecordService) FindAll(ctx context.Context) ([]model.OwnershipRecord, error) {
	return s.repo.FindAll(ctx)
}

func (s *OwnershipRecordService) FindOne(ctx context.Context, id int64) (*model.OwnershipRecord, error) {
	return s.repo.FindOne(ctx, id)
}

func (s *OwnershipRecordService) FindByPhone(ctx context.Context, phoneID int64) ([]model.OwnershipRecord, error) {
	return s.repo.FindByPhone(ctx, phoneID)
}

func (s *OwnershipRecordService) FindByOwner(ctx context.Context, ownerID int64) ([]model.OwnershipRecord, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *OwnershipRecordService) Update(ctx context.Context, id int64, req model.UpdateOwnershipRecordRequest) (int64, error) {
	return s.repo.Update(ctx, id, req)
}

func (s *OwnershipRecordService) Remove(ctx context.Context, id int64) (int64, error) {
	return s.repo.Remove(ctx, id)
}
