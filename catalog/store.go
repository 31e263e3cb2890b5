package catalog

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	bucketLists   = "lists"
	bucketHistory = "input-history"
)

// Store persists reading lists and input history in a bolt database.
type Store struct {
	db *bolt.DB
}

// OpenStore opens or creates the database at path.
func OpenStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening library %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{bucketLists, bucketHistory} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing library: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append adds e to the end of the list at location.
func (s *Store) Append(location string, e Entry) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket([]byte(bucketLists)).CreateBucketIfNotExists([]byte(location))
		if err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		if e.Location == "" {
			e.Location = location
		}
		e.Added = int(seq) - 1
		v, err := json.Marshal(e)
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), v)
	})
}

// Remove deletes the entry with id from the list at location. Removing an
// absent entry is not an error.
func (s *Store) Remove(location, id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketLists)).Bucket([]byte(location))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return err
			}
			if e.ID == id {
				return c.Delete()
			}
		}
		return nil
	})
}

func (s *Store) Entries(ctx context.Context, location string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketLists)).Bucket([]byte(location))
		if b == nil {
			return fmt.Errorf("%w %q", ErrUnknownLocation, location)
		}
		return b.ForEach(func(k, v []byte) error {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("entry %d of %q: %w", unmarshalSeq(k), location, err)
			}
			out = append(out, e)
			return nil
		})
	})
	return out, err
}

func (s *Store) Locations() []string {
	var locs []string
	s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketLists)).ForEach(func(k, v []byte) error {
			if v == nil {
				locs = append(locs, string(k))
			}
			return nil
		})
	})
	return locs
}

// AddInput records text as the most recent input submitted under key,
// dropping the oldest records beyond limit. Repeats of the latest record
// are ignored.
func (s *Store) AddInput(key, text string, limit int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket([]byte(bucketHistory)).CreateBucketIfNotExists([]byte(key))
		if err != nil {
			return err
		}
		if _, last := b.Cursor().Last(); last != nil && string(last) == text {
			return nil
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		if err := b.Put(marshalSeq(seq), []byte(text)); err != nil {
			return err
		}
		if limit <= 0 {
			return nil
		}
		c := b.Cursor()
		n := 0
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			n++
		}
		for ; n > limit; n-- {
			c.First()
			if err := c.Delete(); err != nil {
				return err
			}
		}
		return nil
	})
}

// Inputs returns the input history for key, most recent first.
func (s *Store) Inputs(key string) ([]string, error) {
	var out []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory)).Bucket([]byte(key))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			out = append(out, string(v))
		}
		return nil
	})
	return out, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
