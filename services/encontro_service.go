package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/passa-a-bola/platform/repositories"
)

// EncontroService exposes the weekly meetup document. Unlike the copa
// document it is updated by merging: an admin sends only the keys that
// changed (local, data, horario) and the rest of the document survives.
type EncontroService struct {
	repo repositories.SiteDocumentRepository
}

func NewEncontroService(repo repositories.SiteDocumentRepository) *EncontroService {
	return &EncontroService{repo: repo}
}

func (s *EncontroService) Get(ctx context.Context) (json.RawMessage, error) {
	return s.repo.Get(ctx)
}

// MergeUpdate overlays patch onto the stored document key by key and
// persists the result. Both must be JSON objects.
func (s *EncontroService) MergeUpdate(ctx context.Context, patch json.RawMessage) (json.RawMessage, error) {
	var updates map[string]json.RawMessage
	if err := json.Unmarshal(patch, &updates); err != nil {
		return nil, fmt.Errorf("%w: encontro update must be a JSON object", ErrValidationFailed)
	}

	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(current, &doc); err != nil {
		return nil, fmt.Errorf("stored encontro document is not a JSON object: %w", err)
	}
	for key, value := range updates {
		doc[key] = value
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode encontro document: %w", err)
	}
	if err := s.repo.Put(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}
