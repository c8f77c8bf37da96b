package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/passa-a-bola/platform/models"
	"github.com/passa-a-bola/platform/store"
)

var ErrJogadoraNotFound = errors.New("jogadora not found")

type JogadoraRepository interface {
	List(ctx context.Context) ([]models.Jogadora, error)
	FindByID(ctx context.Context, id string) (*models.Jogadora, error)
	FindByUserID(ctx context.Context, userID string) (*models.Jogadora, error)
	Create(ctx context.Context, jogadora *models.Jogadora) error
	Update(ctx context.Context, jogadora *models.Jogadora) error
	Delete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type documentJogadoraRepository struct {
	store store.DocumentStore
}

func NewDocumentJogadoraRepository(s store.DocumentStore) JogadoraRepository {
	return &documentJogadoraRepository{store: s}
}

func (r *documentJogadoraRepository) List(ctx context.Context) ([]models.Jogadora, error) {
	body, err := r.store.Get(ctx, store.CollectionJogadoras)
	if err != nil {
		if errors.Is(err, store.ErrCollectionNotFound) {
			return []models.Jogadora{}, nil
		}
		return nil, fmt.Errorf("failed to load jogadoras: %w", err)
	}
	var jogadoras []models.Jogadora
	if err := json.Unmarshal(body, &jogadoras); err != nil {
		return nil, fmt.Errorf("failed to decode jogadoras: %w", err)
	}
	if jogadoras == nil {
		jogadoras = []models.Jogadora{}
	}
	return jogadoras, nil
}

func (r *documentJogadoraRepository) FindByID(ctx context.Context, id string) (*models.Jogadora, error) {
	jogadoras, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jogadoras {
		if jogadoras[i].ID == id {
			return &jogadoras[i], nil
		}
	}
	return nil, ErrJogadoraNotFound
}

func (r *documentJogadoraRepository) FindByUserID(ctx context.Context, userID string) (*models.Jogadora, error) {
	jogadoras, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jogadoras {
		if jogadoras[i].UserID == userID {
			return &jogadoras[i], nil
		}
	}
	return nil, ErrJogadoraNotFound
}

func (r *documentJogadoraRepository) Create(ctx context.Context, jogadora *models.Jogadora) error {
	jogadoras, err := r.List(ctx)
	if err != nil {
		return err
	}
	jogadora.ID = uuid.NewString()
	jogadora.CreatedAt = time.Now().UTC()
	jogadoras = append(jogadoras, *jogadora)
	return r.save(ctx, jogadoras)
}

func (r *documentJogadoraRepository) Update(ctx context.Context, jogadora *models.Jogadora) error {
	jogadoras, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range jogadoras {
		if jogadoras[i].ID == jogadora.ID {
			jogadora.CreatedAt = jogadoras[i].CreatedAt
			jogadoras[i] = *jogadora
			return r.save(ctx, jogadoras)
		}
	}
	return ErrJogadoraNotFound
}

func (r *documentJogadoraRepository) Delete(ctx context.Context, id string) error {
	jogadoras, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range jogadoras {
		if jogadoras[i].ID == id {
			jogadoras = append(jogadoras[:i], jogadoras[i+1:]...)
			return r.save(ctx, jogadoras)
		}
	}
	return ErrJogadoraNotFound
}

// DeleteByUserID removes any profile linked to the account. Absence is
// not an error: most accounts never had a profile.
func (r *documentJogadoraRepository) DeleteByUserID(ctx context.Context, userID string) error {
	jogadoras, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := jogadoras[:0]
	removed := false
	for _, j := range jogadoras {
		if j.UserID != "" && j.UserID == userID {
			removed = true
			continue
		}
		kept = append(kept, j)
	}
	if !removed {
		return nil
	}
	return r.save(ctx, kept)
}

func (r *documentJogadoraRepository) save(ctx context.Context, jogadoras []models.Jogadora) error {
	body, err := json.Marshal(jogadoras)
	if err != nil {
		return fmt.Errorf("failed to encode jogadoras: %w", err)
	}
	if err := r.store.Put(ctx, store.CollectionJogadoras, body); err != nil {
		return fmt.Errorf("failed to persist jogadoras: %w", err)
	}
	return nil
}
