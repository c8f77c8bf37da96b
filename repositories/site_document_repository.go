package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/passa-a-bola/platform/store"
)

// SiteDocumentRepository stores one opaque JSON site document (copa
// standings, encontro details, peneiras listings). The backend never
// interprets the body beyond what the owning service validates: admins
// write it and the site renders whatever is there.
type SiteDocumentRepository interface {
	Get(ctx context.Context) (json.RawMessage, error)
	Put(ctx context.Context, body json.RawMessage) error
}

type siteDocumentRepository struct {
	store      store.DocumentStore
	collection string
	missing    json.RawMessage
}

// NewSiteDocumentRepository binds one collection. missing is what Get
// returns before the document has ever been written (an empty object or
// an empty list, depending on the document's shape).
func NewSiteDocumentRepository(s store.DocumentStore, collection string, missing json.RawMessage) SiteDocumentRepository {
	return &siteDocumentRepository{store: s, collection: collection, missing: missing}
}

func (r *siteDocumentRepository) Get(ctx context.Context) (json.RawMessage, error) {
	body, err := r.store.Get(ctx, r.collection)
	if err != nil {
		if errors.Is(err, store.ErrCollectionNotFound) {
			return r.missing, nil
		}
		return nil, fmt.Errorf("failed to load %s document: %w", r.collection, err)
	}
	return body, nil
}

func (r *siteDocumentRepository) Put(ctx context.Context, body json.RawMessage) error {
	if err := r.store.Put(ctx, r.collection, body); err != nil {
		return fmt.Errorf("failed to persist %s document: %w", r.collection, err)
	}
	return nil
}
