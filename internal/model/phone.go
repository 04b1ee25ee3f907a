package model

import "time"

// Phone is a physical device.
type Phone struct {
	PhoneID      int64      `json:"PhoneId"`
	Brand        string     `json:"Brand"`
	Model        string     `json:"Model"`
	Imei         string     `json:"Imei"`
	PurchaseDate *time.Time `json:"PurchaseDate"`
	Origin       *string    `json:"Origin"`
	Status       *string    `json:"Status"`

	// OwnershipRecords is populated on reads; each record carries its Owner.
	OwnershipRecords []OwnershipRecord `json:"OwnershipRecords,omitempty"`
}

// PhoneFields are the writable columns of a phone. A nil pointer is absent
// from the payload; the nullable columns also carry an explicit null.
type PhoneFields struct {
	Brand        *string             `json:"Brand"`
	Model        *string             `json:"Model"`
	Imei         *string             `json:"Imei"`
	PurchaseDate Optional[time.Time] `json:"PurchaseDate"`
	Origin       Optional[string]    `json:"Origin"`
	Status       Optional[string]    `json:"Status"`
}

// IsEmpty reports whether no field was supplied.
func (f PhoneFields) IsEmpty() bool {
	return f.Brand == nil && f.Model == nil && f.Imei == nil &&
		!f.PurchaseDate.Set && !f.Origin.Set && !f.Status.Set
}

type CreatePhoneRequest struct {
	PhoneFields
}

func (r *CreatePhoneRequest) Validate() error {
	return nil
}

type UpdatePhoneRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
	PhoneFields
}

func (r *UpdatePhoneRequest) Validate() error {
	return validate.Struct(r)
}
