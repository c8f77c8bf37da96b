package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/passa-a-bola/platform/repositories"
)

// CopaService exposes the copa standings document: read by everyone,
// replaced wholesale by admins.
type CopaService struct {
	repo repositories.SiteDocumentRepository
}

func NewCopaService(repo repositories.SiteDocumentRepository) *CopaService {
	return &CopaService{repo: repo}
}

func (s *CopaService) Get(ctx context.Context) (json.RawMessage, error) {
	return s.repo.Get(ctx)
}

func (s *CopaService) Replace(ctx context.Context, body json.RawMessage) error {
	if !json.Valid(body) {
		return fmt.Errorf("%w: copa document must be valid JSON", ErrValidationFailed)
	}
	return s.repo.Put(ctx, body)
}
