package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/passa-a-bola/platform/models"
	"github.com/passa-a-bola/platform/store"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserEmailConflict = errors.New("email address is already in use")
)

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

type documentUserRepository struct {
	store store.DocumentStore
}

func NewDocumentUserRepository(s store.DocumentStore) UserRepository {
	return &documentUserRepository{store: s}
}

func (r *documentUserRepository) List(ctx context.Context) ([]models.User, error) {
	return r.list(ctx)
}

func (r *documentUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *documentUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *documentUserRepository) Create(ctx context.Context, user *models.User) error {
	users, err := r.list(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, user.Email) {
			return ErrUserEmailConflict
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	users = append(users, *user)
	return r.save(ctx, users)
}

func (r *documentUserRepository) Update(ctx context.Context, user *models.User) error {
	users, err := r.list(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			user.CreatedAt = users[i].CreatedAt
			users[i] = *user
			return r.save(ctx, users)
		}
	}
	return ErrUserNotFound
}

func (r *documentUserRepository) Delete(ctx context.Context, id string) error {
	users, err := r.list(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users = append(users[:i], users[i+1:]...)
			return r.save(ctx, users)
		}
	}
	return ErrUserNotFound
}

func (r *documentUserRepository) list(ctx context.Context) ([]models.User, error) {
	body, err := r.store.Get(ctx, store.CollectionUsers)
	if err != nil {
		if errors.Is(err, store.ErrCollectionNotFound) {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	var users []models.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (r *documentUserRepository) save(ctx context.Context, users []models.User) error {
	body, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := r.store.Put(ctx, store.CollectionUsers, body); err != nil {
		return fmt.Errorf("failed to persist users: %w", err)
	}
	return nil
}
