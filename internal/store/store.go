// Package store keeps in-progress plugin definitions ("drafts") in a local
// bbolt database. Saving a draft under an existing name replaces it.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	oerrors "github.com/wpforge/cli/internal/errors"
	"github.com/wpforge/cli/internal/plugin"
)

const draftsBucket = "drafts"

// ErrEmptyName is returned when a draft name is blank.
var ErrEmptyName = errors.New("draft name must not be empty")

// Draft is a saved definition.
type Draft struct {
	Name      string        `json:"name"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Config    plugin.Config `json:"config"`
}

// Store is a draft database. It holds an exclusive file lock until Close.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating drafts directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening drafts database %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(draftsBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialising drafts database: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put saves cfg under name.
func (s *Store) Put(name string, cfg plugin.Config) error {
	key, err := draftKey(name)
	if err != nil {
		return err
	}

	value, err := json.Marshal(Draft{Name: key, UpdatedAt: s.now().UTC(), Config: cfg})
	if err != nil {
		return fmt.Errorf("encoding draft %q: %w", key, err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(draftsBucket)).Put([]byte(key), value)
	})
}

// Get loads the draft saved under name.
func (s *Store) Get(name string) (Draft, error) {
	key, err := draftKey(name)
	if err != nil {
		return Draft{}, err
	}

	var d Draft
	err = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(draftsBucket)).Get([]byte(key))
		if v == nil {
			return notFound(key)
		}
		return json.Unmarshal(v, &d)
	})
	if err != nil {
		return Draft{}, err
	}
	return d, nil
}

// List returns every draft ordered by name.
func (s *Store) List() ([]Draft, error) {
	var drafts []Draft
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(draftsBucket)).ForEach(func(k, v []byte) error {
			var d Draft
			if err := json.Unmarshal(v, &d); err != nil {
				return fmt.Errorf("decoding draft %q: %w", k, err)
			}
			drafts = append(drafts, d)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return drafts, nil
}

// Delete removes the draft saved under name.
func (s *Store) Delete(name string) error {
	key, err := draftKey(name)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(draftsBucket))
		if b.Get([]byte(key)) == nil {
			return notFound(key)
		}
		return b.Delete([]byte(key))
	})
}

func draftKey(name string) (string, error) {
	key := strings.TrimSpace(name)
	if key == "" {
		return "", ErrEmptyName
	}
	return key, nil
}

func notFound(name string) error {
	return oerrors.NewNotFoundError(
		fmt.Sprintf("no draft named %q", name),
		"",
		"Run 'wpforge draft list' to see saved drafts",
	)
}
