package domain

// State is the root aggregate held by the store and serialized as a whole on
// every mutation. CurrentListID is a weak back-reference: deleting the list it
// points at must clear it, and it may name a list that no longer exists after
// a stale selection, in which case lookups simply come back empty.
type State struct {
	Lists            []ShoppingList `json:"lists"`
	CurrentListID    *string        `json:"currentListId"`
	SelectedCurrency string         `json:"selectedCurrency"`
	SelectedLocale   string         `json:"selectedLocale"`
}

// DefaultState returns the empty state a fresh process starts from when the
// backing has nothing usable.
func DefaultState() State {
	return State{
		Lists:            []ShoppingList{},
		SelectedCurrency: "USD",
		SelectedLocale:   "en-US",
	}
}
