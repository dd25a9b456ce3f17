package transport

import "github.com/shoplist/backend/domain"

// ListView decorates a list with its derived stats for API consumers.
type ListView struct {
	domain.ShoppingList
	ItemCount      int     `json:"itemCount"`
	PurchasedCount int     `json:"purchasedCount"`
	Total          float64 `json:"total"`
	FormattedTotal string  `json:"formattedTotal"`
}

// NewListView computes the derived fields for one list.
func NewListView(list domain.ShoppingList, formatted string) ListView {
	return ListView{
		ShoppingList:   list,
		ItemCount:      len(list.Products),
		PurchasedCount: list.PurchasedCount(),
		Total:          list.UnpurchasedTotal(),
		FormattedTotal: formatted,
	}
}

// TotalView is the payload of the list total endpoint.
type TotalView struct {
	ListID    string  `json:"listId"`
	Total     float64 `json:"total"`
	Formatted string  `json:"formatted"`
}

// ShareView is the payload of the share endpoint.
type ShareView struct {
	ListID string `json:"listId"`
	Text   string `json:"text"`
}

// CurrencyView pairs the static currency table with the current selection.
type CurrencyView struct {
	Selected   domain.Currency   `json:"selected"`
	Currencies []domain.Currency `json:"currencies"`
}
