package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/passa-a-bola/platform/models"
	"github.com/passa-a-bola/platform/repositories"
)

// UserService covers account administration and the authenticated user's
// own profile. Role changes and deletions keep the jogadora profiles in
// step: promoting an account creates its profile, deleting an account
// removes it.
type UserService struct {
	users     repositories.UserRepository
	jogadoras repositories.JogadoraRepository
}

func NewUserService(users repositories.UserRepository, jogadoras repositories.JogadoraRepository) *UserService {
	return &UserService{users: users, jogadoras: jogadoras}
}

// ListNonJogadoras returns every account without a jogadora role, which
// is the pool an admin promotes from. Password hashes are blanked.
func (s *UserService) ListNonJogadoras(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.User, 0, len(users))
	for _, user := range users {
		if user.Role == models.RoleJogadora {
			continue
		}
		user.PasswordHash = ""
		result = append(result, user)
	}
	return result, nil
}

// PromoteToJogadora switches the account's role and creates the linked
// profile, carrying over the account name. The profile starts otherwise
// empty; the admin fills it in afterwards.
func (s *UserService) PromoteToJogadora(ctx context.Context, userID string) (*models.Jogadora, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == models.RoleJogadora {
		return nil, fmt.Errorf("%w: user is already a jogadora", ErrValidationFailed)
	}

	jogadora := &models.Jogadora{
		Name:   user.Name,
		UserID: user.ID,
	}
	if err := s.jogadoras.Create(ctx, jogadora); err != nil {
		return nil, err
	}

	user.Role = models.RoleJogadora
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return jogadora, nil
}

// PromoteToAdmin switches the account's role to admin.
func (s *UserService) PromoteToAdmin(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role == models.RoleAdmin {
		return nil, fmt.Errorf("%w: user is already an admin", ErrValidationFailed)
	}

	user.Role = models.RoleAdmin
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// Delete removes the account and any jogadora profile linked to it.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.jogadoras.DeleteByUserID(ctx, userID)
}

// Profile returns the authenticated user's own account, hash blanked.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfileName renames the account and, when the account is a
// jogadora, renames the linked profile as well.
func (s *UserService) UpdateProfileName(ctx context.Context, userID, name string) (*models.User, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: nome is required", ErrValidationFailed)
	}

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Name = name
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	if user.Role == models.RoleJogadora {
		jogadora, err := s.jogadoras.FindByUserID(ctx, userID)
		switch {
		case err == nil:
			jogadora.Name = name
			if err := s.jogadoras.Update(ctx, jogadora); err != nil {
				return nil, err
			}
		case errors.Is(err, repositories.ErrJogadoraNotFound):
			// Role says jogadora but no profile exists; nothing to rename.
		default:
			return nil, err
		}
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *UserService) getUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
