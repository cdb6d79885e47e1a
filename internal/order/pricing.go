package order

import (
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-backoffice/internal/product"
)

// UnknownProductName labels a line whose product is missing from the catalog.
const UnknownProductName = "Unknown product"

// Catalog resolves product ids to the current product data.
type Catalog struct {
	byID map[int64]product.Product
}

// NewCatalog indexes products by id. A later duplicate id wins.
func NewCatalog(products []product.Product) Catalog {
	c := Catalog{byID: make(map[int64]product.Product, len(products))}
	for _, p := range products {
		c.byID[p.ID] = p
	}
	return c
}

func (c Catalog) Lookup(id int64) (product.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c Catalog) Len() int { return len(c.byID) }

// Subtotal is price * quantity, or zero when the product cannot be resolved.
func Subtotal(it Item, c Catalog) decimal.Decimal {
	p, ok := c.Lookup(it.ProductID)
	if !ok {
		return decimal.Zero
	}
	return p.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Total sums the subtotals of the order's items. No items means zero.
func Total(o Order, c Catalog) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(Subtotal(it, c))
	}
	return sum
}

// Line is an item priced against a catalog, ready for display.
type Line struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Known     bool            `json:"known"`
}

func Lines(items []Item, c Catalog) []Line {
	out := make([]Line, 0, len(items))
	for _, it := range items {
		l := Line{ProductID: it.ProductID, Quantity: it.Quantity, Name: UnknownProductName, UnitPrice: decimal.Zero}
		if p, ok := c.Lookup(it.ProductID); ok {
			l.Name = p.Name
			l.UnitPrice = p.Price
			l.Known = true
		}
		l.Subtotal = l.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		out = append(out, l)
	}
	return out
}
