package service

import (
	"github.com/deppfellow/phonecustody/internal/lib/job"
	"github.com/deppfellow/phonecustody/internal/repository"
	"github.com/deppfellow/phonecustody/internal/server"
)

type Services struct {
	Phone           *PhoneService
	Owner           *OwnerService
	OwnershipRecord *OwnershipRecordService
	Job             *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var notifier CustodyNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Phone:           NewPhoneService(repos.Phone),
		Owner:           NewOwnerService(repos.Owner),
		OwnershipRecord: NewOwnershipRecordService(repos.OwnershipRecord, notifier),
		Job:             s.Job,
	}, nil
}
