package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/shoplist/backend/domain"
)

// SchemaVersion tags the persisted blob. A blob recorded under any other
// version is ignored on load; there is no migration path.
const SchemaVersion = 1

const stateKey = "state"

// snapshot is the envelope written to the fixed key: the full state tree plus
// the schema version stamp.
type snapshot struct {
	Version int          `json:"version"`
	State   domain.State `json:"state"`
}

// Store persists the full application state as one JSON blob under a fixed
// key in a BoltDB bucket.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Open initializes the BoltDB file and ensures the bucket exists.
func Open(path string, bucket string) (*Store, error) {
	if bucket == "" {
		bucket = "shopping"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		bucket: []byte(bucket),
	}, nil
}

// Load reads the persisted state. It returns nil without error when no blob
// exists, when the blob cannot be decoded, or when its version stamp does not
// match SchemaVersion; all three mean "start from defaults".
func (s *Store) Load() (*domain.State, error) {
	if s == nil || s.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}

	var state *domain.State
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(s.bucket).Get([]byte(stateKey))
		if raw == nil {
			return nil
		}
		var snap snapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			return nil
		}
		if snap.Version != SchemaVersion {
			return nil
		}
		state = &snap.State
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Save serializes the full state tree plus version stamp and overwrites any
// prior value under the fixed key in a single transaction.
func (s *Store) Save(state domain.State) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}

	payload, err := json.Marshal(snapshot{
		Version: SchemaVersion,
		State:   state,
	})
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(stateKey), payload)
	})
}

// Ping verifies the database file is still readable.
func (s *Store) Ping() error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(s.bucket) == nil {
			return bolt.ErrBucketNotFound
		}
		return nil
	})
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Stats exposes Bolt statistics for monitoring endpoints.
func (s *Store) Stats() bolt.Stats {
	if s == nil || s.db == nil {
		return bolt.Stats{}
	}
	return s.db.Stats()
}
