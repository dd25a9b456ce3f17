package domain

import (
	"math"
	"strings"
	"time"
)

// UnnamedProduct is stored in place of a blank product name.
const UnnamedProduct = "Unnamed Item"

// ShoppingList is a named, ordered collection of products.
type ShoppingList struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Products  []Product `json:"products"`
	CreatedAt time.Time `json:"createdAt"`
}

// Product is a priced, quantified line item belonging to exactly one list.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Price     float64   `json:"price"`
	Purchased bool      `json:"purchased"`
	CreatedAt time.Time `json:"createdAt"`
}

// UnpurchasedTotal sums quantity*price over products not yet marked purchased.
// It reflects money still to spend, not the basket's full value.
func (l *ShoppingList) UnpurchasedTotal() float64 {
	if l == nil {
		return 0
	}
	var total float64
	for _, p := range l.Products {
		if !p.Purchased {
			total += p.Quantity * p.Price
		}
	}
	return total
}

// PurchasedCount returns how many products are already marked purchased.
func (l *ShoppingList) PurchasedCount() int {
	if l == nil {
		return 0
	}
	var n int
	for _, p := range l.Products {
		if p.Purchased {
			n++
		}
	}
	return n
}

// ProductInput carries caller-supplied fields for a new product. Quantity and
// Price are optional; absent or degenerate values fall back to defaults.
type ProductInput struct {
	Name     string
	Quantity *float64
	Price    *float64
}

// NewProduct builds a normalized product from raw input. Blank names become
// UnnamedProduct, quantity defaults to 1 and price to 0 so the result is
// always well-formed.
func NewProduct(id string, input ProductInput, now time.Time) Product {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = UnnamedProduct
	}
	return Product{
		ID:        id,
		Name:      name,
		Quantity:  normalizeQuantity(input.Quantity),
		Price:     normalizePrice(input.Price),
		Purchased: false,
		CreatedAt: now,
	}
}

// ProductPatch is a partial update: nil fields are left untouched, set fields
// overwrite after the same normalization applied at creation.
type ProductPatch struct {
	Name      *string
	Quantity  *float64
	Price     *float64
	Purchased *bool
}

// Apply merges the patch into the product field-wise.
func (p ProductPatch) Apply(product *Product) {
	if product == nil {
		return
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			name = UnnamedProduct
		}
		product.Name = name
	}
	if p.Quantity != nil {
		product.Quantity = normalizeQuantity(p.Quantity)
	}
	if p.Price != nil {
		product.Price = normalizePrice(p.Price)
	}
	if p.Purchased != nil {
		product.Purchased = *p.Purchased
	}
}

func normalizeQuantity(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return 1
	}
	return *v
}

func normalizePrice(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return 0
	}
	return *v
}
