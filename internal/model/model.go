// Package model holds the records persisted by the service and the payloads
// accepted by its HTTP endpoints.
//
// JSON keys are PascalCase (PhoneId, OwnershipRecords, ...) to match the wire
// format existing clients already speak.
package model

import (
	"github.com/go-playground/validator/v10"
)

// validate is shared by every payload; validator caches struct metadata.
var validate = validator.New()

// IDRequest carries a numeric path identifier.
type IDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (r *IDRequest) Validate() error {
	return validate.Struct(r)
}

// ListRequest is the empty payload of list endpoints.
type ListRequest struct{}

func (r *ListRequest) Validate() error {
	return nil
}

// AffectedResponse reports how many rows an update or delete touched.
type AffectedResponse struct {
	Affected int64 `json:"affected"`
}
