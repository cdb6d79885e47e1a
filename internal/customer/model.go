package customer

import (
	"time"

	"github.com/MikeMC777/ordenes-backoffice/internal/validate"
)

// Customer is a persisted customer. ID is 0 until the store assigns one.
type Customer struct {
	ID          int64     `json:"id,omitempty"`
	Name        string    `json:"name,omitempty"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}

// DisplayName is the name when present, otherwise the phone number.
func (c Customer) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.PhoneNumber
}

// Form is the create/edit payload.
// swagger:model CustomerForm
type Form struct {
	Name        string `json:"name"         validate:"max=80"            example:"Ana Pérez"`
	PhoneNumber string `json:"phone_number" validate:"required,min=6,max=20" example:"+34 600 123 456"`
	Address     string `json:"address"      validate:"max=255"           example:"Calle Mayor 1"`
	Notes       string `json:"notes"`
}

// Validate checks the form; an empty result means it can be submitted.
func (f Form) Validate() validate.Errors {
	return validate.Struct(f)
}

// ToCustomer converts the form into an unpersisted entity.
func (f Form) ToCustomer() Customer {
	return Customer{
		Name:        f.Name,
		PhoneNumber: f.PhoneNumber,
		Address:     f.Address,
		Notes:       f.Notes,
	}
}

// FromCustomer builds an edit form from c.
func FromCustomer(c Customer) Form {
	return Form{
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		Notes:       c.Notes,
	}
}
