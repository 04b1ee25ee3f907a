package model

// Owner is a person or organization that can hold phones.
type Owner struct {
	OwnerID   int64   `json:"OwnerId"`
	FirstName string  `json:"FirstName"`
	LastName  string  `json:"LastName"`
	Email     *string `json:"Email"`
	Country   *string `json:"Country"`
	Address   *string `json:"Address"`
	Passport  *string `json:"Passport"`
	Nid       *string `json:"Nid"`
	City      *string `json:"City"`
	State     *string `json:"State"`
	Zip       *string `json:"Zip"`
	Phone     *string `json:"Phone"`
	OwnerType *string `json:"OwnerType"`

	// OwnershipRecords is populated on reads; each record carries its Phone.
	OwnershipRecords []OwnershipRecord `json:"OwnershipRecords,omitempty"`
}

// OwnerFields are the writable columns of an owner. Every column but the
// names is nullable and can be cleared with an explicit null.
type OwnerFields struct {
	FirstName *string          `json:"FirstName"`
	LastName  *string          `json:"LastName"`
	Email     Optional[string] `json:"Email"`
	Country   Optional[string] `json:"Country"`
	Address   Optional[string] `json:"Address"`
	Passport  Optional[string] `json:"Passport"`
	Nid       Optional[string] `json:"Nid"`
	City      Optional[string] `json:"City"`
	State     Optional[string] `json:"State"`
	Zip       Optional[string] `json:"Zip"`
	Phone     Optional[string] `json:"Phone"`
	OwnerType Optional[string] `json:"OwnerType"`
}

func (f OwnerFields) IsEmpty() bool {
	return f.FirstName == nil && f.LastName == nil && !f.Email.Set &&
		!f.Country.Set && !f.Address.Set && !f.Passport.Set &&
		!f.Nid.Set && !f.City.Set && !f.State.Set &&
		!f.Zip.Set && !f.Phone.Set && !f.OwnerType.Set
}

type CreateOwnerRequest struct {
	OwnerFields
}

func (r *CreateOwnerRequest) Validate() error {
	return nil
}

type UpdateOwnerRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
	OwnerFields
}

func (r *UpdateOwnerRequest) Validate() error {
	return validate.Struct(r)
}
