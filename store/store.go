// Package store holds the single authoritative in-memory state tree for the
// application: every read and write of list or product data goes through it,
// and every mutation re-persists the full tree through the durable backing.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shoplist/backend/domain"
	"github.com/shoplist/backend/pkg/currencyfmt"
)

// Backing is the durable medium the store serializes to. Load returns nil
// when no usable prior state exists.
type Backing interface {
	Load() (*domain.State, error)
	Save(state domain.State) error
}

// Store is the domain store. All operations are total: missing entities are
// silent no-ops for mutations and absent results for reads, degenerate numeric
// input is normalized, and persistence failures degrade durability only.
//
// The source state is addressed from concurrent HTTP handlers, so a single
// mutex serializes every operation; each one runs to completion before the
// next begins.
type Store struct {
	mu      sync.Mutex
	state   domain.State
	backing Backing
	logger  *zap.Logger
}

// New builds a store seeded from the backing's persisted state, or from the
// default empty state when nothing usable is stored. A failed load is treated
// the same as no prior state.
func New(backing Backing, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		backing: backing,
		logger:  logger,
		state:   domain.DefaultState(),
	}

	if backing == nil {
		return s
	}

	prior, err := backing.Load()
	if err != nil {
		logger.Warn("state load failed, starting from defaults", zap.Error(err))
		return s
	}
	if prior == nil {
		logger.Info("no persisted state, starting from defaults")
		return s
	}

	s.state = *prior
	if s.state.Lists == nil {
		s.state.Lists = []domain.ShoppingList{}
	}
	if _, ok := domain.CurrencyByCode(s.state.SelectedCurrency); !ok {
		s.state.SelectedCurrency = "USD"
		s.state.SelectedLocale = "en-US"
	}
	logger.Info("state restored",
		zap.Int("lists", len(s.state.Lists)),
		zap.String("currency", s.state.SelectedCurrency),
	)
	return s
}

// CreateList appends a new empty list and returns its id.
func (s *Store) CreateList(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := domain.ShoppingList{
		ID:        uuid.NewString(),
		Name:      name,
		Products:  []domain.Product{},
		CreatedAt: time.Now().UTC(),
	}
	s.state.Lists = append(s.state.Lists, list)
	s.persistLocked()
	return list.ID
}

// DeleteList removes the list with the given id. Deleting the current list
// clears the current selection; deleting an unknown id is a no-op.
func (s *Store) DeleteList(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Lists[:0]
	for _, l := range s.state.Lists {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	s.state.Lists = kept
	if s.state.CurrentListID != nil && *s.state.CurrentListID == id {
		s.state.CurrentListID = nil
	}
	s.persistLocked()
}

// UpdateListName replaces the list's display name. Callers are expected to
// reject blank names before calling; unknown ids are a no-op.
func (s *Store) UpdateListName(id, newName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l := s.findListLocked(id); l != nil {
		l.Name = newName
	}
	s.persistLocked()
}

// SetCurrentList records the current list selection. The id is not checked
// for existence: selecting an unknown id just makes GetCurrentList come back
// empty. An empty id clears the selection.
func (s *Store) SetCurrentList(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.state.CurrentListID = nil
	} else {
		s.state.CurrentListID = &id
	}
	s.persistLocked()
}

// AddProduct appends a normalized product to the given list and returns it.
// The second return is false when the list does not exist.
func (s *Store) AddProduct(listID string, input domain.ProductInput) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.findListLocked(listID)
	if l == nil {
		return domain.Product{}, false
	}
	product := domain.NewProduct(uuid.NewString(), input, time.Now().UTC())
	l.Products = append(l.Products, product)
	s.persistLocked()
	return product, true
}

// UpdateProduct merges the patch into the matching product. A missing list or
// product is a silent no-op.
func (s *Store) UpdateProduct(listID, productID string, patch domain.ProductPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l := s.findListLocked(listID); l != nil {
		for i := range l.Products {
			if l.Products[i].ID == productID {
				patch.Apply(&l.Products[i])
				break
			}
		}
	}
	s.persistLocked()
}

// DeleteProduct removes the matching product. Idempotent: a second call with
// the same arguments leaves the state unchanged.
func (s *Store) DeleteProduct(listID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l := s.findListLocked(listID); l != nil {
		kept := l.Products[:0]
		for _, p := range l.Products {
			if p.ID != productID {
				kept = append(kept, p)
			}
		}
		l.Products = kept
	}
	s.persistLocked()
}

// SetCurrency switches the selected currency and its paired locale together.
// An unknown code is ignored and the prior selection retained.
func (s *Store) SetCurrency(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := domain.CurrencyByCode(code)
	if !ok {
		return
	}
	s.state.SelectedCurrency = cur.Code
	s.state.SelectedLocale = cur.Locale
	s.persistLocked()
}

// Lists returns a snapshot copy of all lists in display order.
func (s *Store) Lists() []domain.ShoppingList {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ShoppingList, len(s.state.Lists))
	for i, l := range s.state.Lists {
		out[i] = copyList(l)
	}
	return out
}

// List returns a snapshot copy of one list.
func (s *Store) List(id string) (domain.ShoppingList, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l := s.findListLocked(id); l != nil {
		return copyList(*l), true
	}
	return domain.ShoppingList{}, false
}

// GetCurrentList resolves the current selection. The second return is false
// when nothing is selected or the selected list no longer exists.
func (s *Store) GetCurrentList() (domain.ShoppingList, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentListID == nil {
		return domain.ShoppingList{}, false
	}
	if l := s.findListLocked(*s.state.CurrentListID); l != nil {
		return copyList(*l), true
	}
	return domain.ShoppingList{}, false
}

// ListTotal recomputes the unpurchased total of the given list from scratch.
// Absent lists total 0.
func (s *Store) ListTotal(listID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findListLocked(listID).UnpurchasedTotal()
}

// SelectedCurrency returns the descriptor of the currently selected currency.
func (s *Store) SelectedCurrency() domain.Currency {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, _ := domain.CurrencyByCode(s.state.SelectedCurrency)
	return cur
}

// FormatCurrency renders the amount under the selected currency and locale
// with at least two fraction digits.
func (s *Store) FormatCurrency(amount float64) string {
	s.mu.Lock()
	symbol := ""
	if cur, ok := domain.CurrencyByCode(s.state.SelectedCurrency); ok {
		symbol = cur.Symbol
	}
	locale := s.state.SelectedLocale
	s.mu.Unlock()

	return currencyfmt.Format(amount, symbol, locale)
}

// Counts reports how many lists and products the store currently holds.
func (s *Store) Counts() (lists, products int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.state.Lists {
		products += len(l.Products)
	}
	return len(s.state.Lists), products
}

// Flush persists the current state unconditionally. Used as a shutdown hook
// so the final write always follows the most recent mutation.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backing == nil {
		return nil
	}
	return s.backing.Save(s.state)
}

// persistLocked writes the full state tree through the backing. A failed
// write is logged and swallowed: the in-memory mutation has already succeeded
// and remains the source of truth for the rest of the process.
func (s *Store) persistLocked() {
	if s.backing == nil {
		return
	}
	if err := s.backing.Save(s.state); err != nil {
		s.logger.Warn("state persistence failed", zap.Error(err))
	}
}

func (s *Store) findListLocked(id string) *domain.ShoppingList {
	for i := range s.state.Lists {
		if s.state.Lists[i].ID == id {
			return &s.state.Lists[i]
		}
	}
	return nil
}

func copyList(l domain.ShoppingList) domain.ShoppingList {
	products := make([]domain.Product, len(l.Products))
	copy(products, l.Products)
	l.Products = products
	return l
}
