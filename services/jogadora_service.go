package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/passa-a-bola/platform/models"
	"github.com/passa-a-bola/platform/repositories"
)

type JogadoraInput struct {
	Name     string          `json:"nome"`
	Position models.Position `json:"posicao"`
	Age      int             `json:"idade"`
	Team     string          `json:"time"`
	PhotoURL string          `json:"foto"`
	Bio      string          `json:"bio"`
}

// JogadoraService manages the published player profiles shown on the site.
type JogadoraService struct {
	repo repositories.JogadoraRepository
}

func NewJogadoraService(repo repositories.JogadoraRepository) *JogadoraService {
	return &JogadoraService{repo: repo}
}

func (s *JogadoraService) List(ctx context.Context) ([]models.Jogadora, error) {
	return s.repo.List(ctx)
}

func (s *JogadoraService) GetByID(ctx context.Context, id string) (*models.Jogadora, error) {
	jogadora, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJogadoraNotFound) {
			return nil, ErrJogadoraNotFound
		}
		return nil, err
	}
	return jogadora, nil
}

func (s *JogadoraService) Create(ctx context.Context, input JogadoraInput) (*models.Jogadora, error) {
	if err := validateJogadoraInput(input); err != nil {
		return nil, err
	}
	jogadora := &models.Jogadora{
		Name:     input.Name,
		Position: input.Position,
		Age:      input.Age,
		Team:     input.Team,
		PhotoURL: input.PhotoURL,
		Bio:      input.Bio,
	}
	if err := s.repo.Create(ctx, jogadora); err != nil {
		return nil, err
	}
	return jogadora, nil
}

func (s *JogadoraService) Update(ctx context.Context, id string, input JogadoraInput) (*models.Jogadora, error) {
	if err := validateJogadoraInput(input); err != nil {
		return nil, err
	}
	jogadora := &models.Jogadora{
		ID:       id,
		Name:     input.Name,
		Position: input.Position,
		Age:      input.Age,
		Team:     input.Team,
		PhotoURL: input.PhotoURL,
		Bio:      input.Bio,
	}
	if err := s.repo.Update(ctx, jogadora); err != nil {
		if errors.Is(err, repositories.ErrJogadoraNotFound) {
			return nil, ErrJogadoraNotFound
		}
		return nil, err
	}
	return jogadora, nil
}

func (s *JogadoraService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrJogadoraNotFound) {
			return ErrJogadoraNotFound
		}
		return err
	}
	return nil
}

func validateJogadoraInput(input JogadoraInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: nome is required", ErrValidationFailed)
	}
	if !input.Position.Valid() {
		return fmt.Errorf("%w: unknown position %q", ErrValidationFailed, input.Position)
	}
	return nil
}
