package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/passa-a-bola/platform/repositories"
)

// PeneirasService exposes the tryout listings: a JSON array read by
// everyone and replaced wholesale by admins.
type PeneirasService struct {
	repo repositories.SiteDocumentRepository
}

func NewPeneirasService(repo repositories.SiteDocumentRepository) *PeneirasService {
	return &PeneirasService{repo: repo}
}

func (s *PeneirasService) List(ctx context.Context) (json.RawMessage, error) {
	return s.repo.Get(ctx)
}

func (s *PeneirasService) Replace(ctx context.Context, body json.RawMessage) error {
	if !json.Valid(body) || !bytes.HasPrefix(bytes.TrimSpace(body), []byte("[")) {
		return fmt.Errorf("%w: peneiras document must be a JSON array", ErrValidationFailed)
	}
	return s.repo.Put(ctx, body)
}
