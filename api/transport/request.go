package transport

// ListRequest carries a list name for create and rename.
type ListRequest struct {
	Name string `json:"name"`
}

// CurrentListRequest selects the current list; a null or absent id clears the
// selection.
type CurrentListRequest struct {
	ID *string `json:"id"`
}

// ProductCreateRequest carries fields for a new product. Quantity and price
// are optional and fall back to the store defaults when absent.
type ProductCreateRequest struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity"`
	Price    *float64 `json:"price"`
}

// ProductUpdateRequest is a partial update: only fields present in the body
// are applied.
type ProductUpdateRequest struct {
	Name      *string  `json:"name"`
	Quantity  *float64 `json:"quantity"`
	Price     *float64 `json:"price"`
	Purchased *bool    `json:"purchased"`
}

// CurrencyRequest selects the display currency by ISO code.
type CurrencyRequest struct {
	Code string `json:"code"`
}
