package store

import (
	"fmt"
	"strings"

	"github.com/shoplist/backend/domain"
	"github.com/shoplist/backend/pkg/currencyfmt"
)

// ShareText builds a plain-text summary of a list suitable for pasting into a
// messenger: pending items with quantities, purchased items, and the
// formatted unpurchased total. The second return is false when the list does
// not exist.
func (s *Store) ShareText(listID string) (string, bool) {
	s.mu.Lock()
	l := s.findListLocked(listID)
	if l == nil {
		s.mu.Unlock()
		return "", false
	}
	list := copyList(*l)
	symbol := ""
	if cur, ok := domain.CurrencyByCode(s.state.SelectedCurrency); ok {
		symbol = cur.Symbol
	}
	locale := s.state.SelectedLocale
	s.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "🛒 %s\n", list.Name)

	var pending, done []domain.Product
	for _, p := range list.Products {
		if p.Purchased {
			done = append(done, p)
		} else {
			pending = append(pending, p)
		}
	}

	if len(pending) > 0 {
		b.WriteString("\nTo buy:\n")
		for _, p := range pending {
			fmt.Fprintf(&b, "⬜ %s (x%v)\n", p.Name, p.Quantity)
		}
	}
	if len(done) > 0 {
		b.WriteString("\nPurchased:\n")
		for _, p := range done {
			fmt.Fprintf(&b, "✅ %s\n", p.Name)
		}
	}

	fmt.Fprintf(&b, "\nTotal: %s", currencyfmt.Format(list.UnpurchasedTotal(), symbol, locale))
	return b.String(), true
}
