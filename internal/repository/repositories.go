package repository

import (
	"github.com/deppfellow/phonecustody/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Phone           *PhoneRepository
	Owner           *OwnerRepository
	OwnershipRecord *OwnershipRecordRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	pool := s.DB.Pool

	return &Repositories{
		Phone:           NewPhoneRepository(pool),
		Owner:           NewOwnerRepository(pool),
		OwnershipRecord: NewOwnershipRecordRepository(pool),
	}
}
