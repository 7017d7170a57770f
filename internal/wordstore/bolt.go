package wordstore

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	bolt "go.etcd.io/bbolt"
)

var listsBucket = []byte("wordlists")

// BoltStore keeps word lists in a bbolt database.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens or creates the database at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(listsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create %s bucket: %w", listsBucket, err)
	}

	return &BoltStore{db: db}, nil
}

// Put stores words under list, replacing any previous content.
func (b *BoltStore) Put(_ context.Context, list string, words []string) error {
	if err := ValidateName(list); err != nil {
		return err
	}
	if len(words) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyList, list)
	}

	data, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(listsBucket).Put([]byte(list), data)
	})
}

// Import reads one word per line from r and stores them under list. Blank
// lines and lines starting with '#' are skipped. It returns the number of
// words stored.
func (b *BoltStore) Import(ctx context.Context, list string, r io.Reader) (int, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read word list %q: %w", list, err)
	}

	if err := b.Put(ctx, list, words); err != nil {
		return 0, err
	}
	return len(words), nil
}

// Words implements Store.
func (b *BoltStore) Words(_ context.Context, list string) ([]string, error) {
	var words []string
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(listsBucket).Get([]byte(list))
		if v == nil {
			return fmt.Errorf("%w: %q", ErrListNotFound, list)
		}
		// v is only valid inside the transaction; Unmarshal copies it.
		if err := json.Unmarshal(v, &words); err != nil {
			return fmt.Errorf("failed to decode JSON for list %q: %w", list, err)
		}
		return nil
	})
	return words, err
}

// Lists implements Store. bbolt iterates keys in byte order, so the result
// is sorted.
func (b *BoltStore) Lists(_ context.Context) ([]string, error) {
	var names []string
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(listsBucket).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// Close closes the database.
func (b *BoltStore) Close() error {
	return b.db.Close()
}
