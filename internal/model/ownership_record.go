package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/phonecustody/internal/validation"
)

// OwnershipRecord asserts that an Owner possessed a Phone between
// DateAcquired and DateRelinquished.
type OwnershipRecord struct {
	OwnershipRecordID int64      `json:"OwnershipRecordId"`
	OwnerID           int64      `json:"-"`
	PhoneID           int64      `json:"-"`
	DateAcquired      time.Time  `json:"DateAcquired"`
	DateRelinquished  *time.Time `json:"DateRelinquished"`
	CurrentOwner      bool       `json:"CurrentOwner"`

	Owner *Owner `json:"Owner,omitempty"`
	Phone *Phone `json:"Phone,omitempty"`
}

var (
	errRefMalformed = errors.New("must be an id or an object")
	errRefMixed     = errors.New("must be either a reference by id or a new row, not both")
)

// OwnerRef references an owner in a record payload. It accepts a bare id
// (1), a reference object ({"OwnerId": 1}) or a new owner without an id.
type OwnerRef struct {
	ID  int64
	New *OwnerFields
}

func (r *OwnerRef) UnmarshalJSON(data []byte) error {
	id, obj, err := decodeRef(data, "OwnerId")
	if err != nil {
		return fmt.Errorf("Owner %w", err)
	}
	if obj == nil {
		r.ID, r.New = id, nil
		return nil
	}

	var fields OwnerFields
	if err := json.Unmarshal(obj, &fields); err != nil {
		return fmt.Errorf("Owner: %w", err)
	}
	r.ID, r.New = 0, &fields
	return nil
}

// PhoneRef is the phone counterpart of OwnerRef.
type PhoneRef struct {
	ID  int64
	New *PhoneFields
}

func (r *PhoneRef) UnmarshalJSON(data []byte) error {
	id, obj, err := decodeRef(data, "PhoneId")
	if err != nil {
		return fmt.Errorf("Phone %w", err)
	}
	if obj == nil {
		r.ID, r.New = id, nil
		return nil
	}

	var fields PhoneFields
	if err := json.Unmarshal(obj, &fields); err != nil {
		return fmt.Errorf("Phone: %w", err)
	}
	r.ID, r.New = 0, &fields
	return nil
}

// decodeRef returns the referenced id, or the raw object when it describes a
// new row (no id key). An object with an id and other columns is rejected:
// references never update the referenced row.
func decodeRef(data []byte, idKey string) (int64, []byte, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0, nil, errRefMalformed
	}

	switch data[0] {
	case '{':
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(data, &keys); err != nil {
			return 0, nil, err
		}
		raw, ok := keys[idKey]
		if !ok || string(raw) == "null" {
			return 0, data, nil
		}
		if len(keys) > 1 {
			return 0, nil, errRefMixed
		}
		var id int64
		if err := json.Unmarshal(raw, &id); err != nil {
			return 0, nil, fmt.Errorf("%s must be an integer", idKey)
		}
		return id, nil, nil
	default:
		var id int64
		if err := json.Unmarshal(data, &id); err != nil {
			return 0, nil, errRefMalformed
		}
		return id, nil, nil
	}
}

// OwnershipRecordFields are the scalar columns of a record.
type OwnershipRecordFields struct {
	DateAcquired     *time.Time          `json:"DateAcquired"`
	DateRelinquished Optional[time.Time] `json:"DateRelinquished"`
	CurrentOwner     *bool               `json:"CurrentOwner"`
}

type CreateOwnershipRecordRequest struct {
	Owner *OwnerRef `json:"Owner"`
	Phone *PhoneRef `json:"Phone"`
	OwnershipRecordFields
}

func (r *CreateOwnershipRecordRequest) Validate() error {
	return nil
}

type UpdateOwnershipRecordRequest struct {
	ID    int64     `param:"id" json:"-" validate:"required,gt=0"`
	Owner *OwnerRef `json:"Owner"`
	Phone *PhoneRef `json:"Phone"`
	OwnershipRecordFields
}

// Validate rejects nested new rows: updates only re-point references.
func (r *UpdateOwnershipRecordRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}

	var problems validation.CustomValidationErrors
	if r.Owner != nil && r.Owner.New != nil {
		problems = append(problems, validation.CustomValidationError{Field: "Owner", Message: "must reference an existing owner by id"})
	}
	if r.Phone != nil && r.Phone.New != nil {
		problems = append(problems, validation.CustomValidationError{Field: "Phone", Message: "must reference an existing phone by id"})
	}
	if len(problems) > 0 {
		return problems
	}
	return nil
}

// IsEmpty reports whether the update carries no column at all.
func (r *UpdateOwnershipRecordRequest) IsEmpty() bool {
	return r.Owner == nil && r.Phone == nil &&
		r.DateAcquired == nil && !r.DateRelinquished.Set && r.CurrentOwner == nil
}
