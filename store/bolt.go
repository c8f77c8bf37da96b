package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

const documentsBucket = "documents"

// BoltStore is the default DocumentStore: an embedded bbolt database with
// a single bucket mapping collection names to JSON bodies. Every Put runs
// in its own write transaction, so a document is either fully replaced or
// untouched.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database at %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(documentsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create documents bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(_ context.Context, collection string) ([]byte, error) {
	var body []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(documentsBucket)).Get([]byte(collection))
		if data == nil {
			return ErrCollectionNotFound
		}
		body = make([]byte, len(data))
		copy(body, data)
		return nil
	})
	if err != nil {
		if err == ErrCollectionNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	return body, nil
}

func (s *BoltStore) Put(_ context.Context, collection string, body []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(documentsBucket)).Put([]byte(collection), body)
	})
	if err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	return nil
}

func (s *BoltStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
