package product

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-backoffice/internal/validate"
)

type Product struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
	// Price is NUMERIC in Postgres; decimal avoids float rounding.
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	PictureURL  string          `json:"picture_url,omitempty"`
	// Inactive products stay valid in historical orders but are hidden from new ones.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// Form is the create/edit payload of a product.
// swagger:model ProductForm
type Form struct {
	Name        string          `json:"name"        validate:"required,notblank,max=80" example:"Café con leche"`
	Price       decimal.Decimal `json:"price"       validate:"gte=0,amount"             example:"2.50" swaggertype:"string"`
	Description string          `json:"description" validate:"max=255"                  example:"Taza grande"`
	PictureURL  string          `json:"picture_url" validate:"max=255"`
	IsActive    bool            `json:"is_active"                                       example:"true"`
}

// NewForm returns an empty form; new products are active by default.
func NewForm() Form {
	return Form{IsActive: true}
}

func (f Form) Validate() validate.Errors {
	return validate.Struct(f)
}

func (f Form) ToProduct() Product {
	return Product{
		Name:        f.Name,
		Price:       f.Price,
		Description: f.Description,
		PictureURL:  f.PictureURL,
		IsActive:    f.IsActive,
	}
}

func FromProduct(p Product) Form {
	return Form{
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		PictureURL:  p.PictureURL,
		IsActive:    p.IsActive,
	}
}
