package storage

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplist/backend/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "shopping.db"), "shopping")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleState() domain.State {
	createdAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	listID := "list-1"
	return domain.State{
		Lists: []domain.ShoppingList{
			{
				ID:   listID,
				Name: "Groceries",
				Products: []domain.Product{
					{ID: "p1", Name: "Milk", Quantity: 2, Price: 1.5, CreatedAt: createdAt},
					{ID: "p2", Name: "Bread", Quantity: 1, Price: 3, Purchased: true, CreatedAt: createdAt},
				},
				CreatedAt: createdAt,
			},
		},
		CurrentListID:    &listID,
		SelectedCurrency: "EUR",
		SelectedLocale:   "de-DE",
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	state := sampleState()

	require.NoError(t, s.Save(state))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, state, *loaded)
}

func TestLoad_NoPriorState(t *testing.T) {
	s := openTestStore(t)

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoad_VersionMismatchIsAbsent(t *testing.T) {
	s := openTestStore(t)

	payload, err := json.Marshal(snapshot{Version: 99, State: sampleState()})
	require.NoError(t, err)
	require.NoError(t, s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(stateKey), payload)
	}))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoad_CorruptBlobIsAbsent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(stateKey), []byte("{not json"))
	}))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSave_OverwritesPriorValue(t *testing.T) {
	s := openTestStore(t)

	first := sampleState()
	require.NoError(t, s.Save(first))

	second := first
	second.Lists = []domain.ShoppingList{}
	second.CurrentListID = nil
	require.NoError(t, s.Save(second))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.Lists)
	assert.Nil(t, loaded.CurrentListID)
}

func TestReopen_SeesPersistedState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shopping.db")

	s, err := Open(path, "shopping")
	require.NoError(t, err)
	require.NoError(t, s.Save(sampleState()))
	require.NoError(t, s.Close())

	reopened, err := Open(path, "shopping")
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Groceries", loaded.Lists[0].Name)
}

func TestPing(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.Ping())

	require.NoError(t, s.Close())
	assert.Error(t, s.Ping())
}
