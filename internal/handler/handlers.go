package handler

import (
	"github.com/deppfellow/phonecustody/internal/server"
	"github.com/deppfellow/phonecustody/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single value.
type Handlers struct {
	Health          *HealthHandler
	OpenAPI         *OpenAPIHandler
	Phone           *PhoneHandler
	Owner           *OwnerHandler
	OwnershipRecord *OwnershipRecordHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:          NewHealthHandler(s),
		OpenAPI:         NewOpenAPIHandler(s),
		Phone:           NewPhoneHandler(s, services.Phone),
		Owner:           NewOwnerHandler(s, services.Owner),
		OwnershipRecord: NewOwnershipRecordHandler(s, services.OwnershipRecord),
	}
}
