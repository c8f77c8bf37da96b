package services

import (
	"context"
	"errors"
	"testing"

	"github.com/passa-a-bola/platform/models"
	"github.com/passa-a-bola/platform/repositories"
	"github.com/passa-a-bola/platform/store"
)

func newUserTestService(t *testing.T) (*UserService, repositories.UserRepository, repositories.JogadoraRepository) {
	t.Helper()
	s := store.NewMemoryStore()
	users := repositories.NewDocumentUserRepository(s)
	jogadoras := repositories.NewDocumentJogadoraRepository(s)
	return NewUserService(users, jogadoras), users, jogadoras
}

func seedUser(t *testing.T, users repositories.UserRepository, name, email, role string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Role: role, PasswordHash: "x"}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("Create(%s) error = %v", email, err)
	}
	return user
}

func TestListNonJogadoras(t *testing.T) {
	svc, users, _ := newUserTestService(t)
	ctx := context.Background()

	seedUser(t, users, "Ana", "ana@passabola.com.br", models.RoleUser)
	seedUser(t, users, "Bia", "bia@passabola.com.br", models.RoleAdmin)
	seedUser(t, users, "Clara", "clara@passabola.com.br", models.RoleJogadora)

	listed, err := svc.ListNonJogadoras(ctx)
	if err != nil {
		t.Fatalf("ListNonJogadoras() error = %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("ListNonJogadoras() = %d users, want 2", len(listed))
	}
	for _, user := range listed {
		if user.Role == models.RoleJogadora {
			t.Errorf("jogadora %q leaked into the listing", user.Name)
		}
		if user.PasswordHash != "" {
			t.Errorf("password hash leaked for %q", user.Name)
		}
	}
}

func TestPromoteToJogadora(t *testing.T) {
	svc, users, jogadoras := newUserTestService(t)
	ctx := context.Background()

	user := seedUser(t, users, "Ana", "ana@passabola.com.br", models.RoleUser)

	jogadora, err := svc.PromoteToJogadora(ctx, user.ID)
	if err != nil {
		t.Fatalf("PromoteToJogadora() error = %v", err)
	}
	if jogadora.Name != "Ana" || jogadora.UserID != user.ID {
		t.Errorf("profile = %+v, want name and userId carried over", jogadora)
	}

	updated, err := users.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if updated.Role != models.RoleJogadora {
		t.Errorf("role = %q, want %q", updated.Role, models.RoleJogadora)
	}

	linked, err := jogadoras.FindByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByUserID() error = %v", err)
	}
	if linked.ID != jogadora.ID {
		t.Errorf("linked profile id = %q, want %q", linked.ID, jogadora.ID)
	}

	if _, err := svc.PromoteToJogadora(ctx, user.ID); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("second promotion error = %v, want ErrValidationFailed", err)
	}
}

func TestPromoteToAdmin(t *testing.T) {
	svc, users, _ := newUserTestService(t)
	ctx := context.Background()

	user := seedUser(t, users, "Bia", "bia@passabola.com.br", models.RoleUser)

	promoted, err := svc.PromoteToAdmin(ctx, user.ID)
	if err != nil {
		t.Fatalf("PromoteToAdmin() error = %v", err)
	}
	if promoted.Role != models.RoleAdmin {
		t.Errorf("role = %q, want %q", promoted.Role, models.RoleAdmin)
	}
	if promoted.PasswordHash != "" {
		t.Error("password hash leaked in promotion response")
	}

	if _, err := svc.PromoteToAdmin(ctx, user.ID); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("second promotion error = %v, want ErrValidationFailed", err)
	}
	if _, err := svc.PromoteToAdmin(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown id error = %v, want ErrUserNotFound", err)
	}
}

func TestDeleteUserRemovesLinkedProfile(t *testing.T) {
	svc, users, jogadoras := newUserTestService(t)
	ctx := context.Background()

	user := seedUser(t, users, "Ana", "ana@passabola.com.br", models.RoleUser)
	if _, err := svc.PromoteToJogadora(ctx, user.ID); err != nil {
		t.Fatalf("PromoteToJogadora() error = %v", err)
	}

	if err := svc.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := users.GetByID(ctx, user.ID); !errors.Is(err, repositories.ErrUserNotFound) {
		t.Errorf("GetByID() error = %v, want ErrUserNotFound", err)
	}
	if _, err := jogadoras.FindByUserID(ctx, user.ID); !errors.Is(err, repositories.ErrJogadoraNotFound) {
		t.Errorf("FindByUserID() error = %v, want ErrJogadoraNotFound", err)
	}

	if err := svc.Delete(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("second Delete() error = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateProfileName(t *testing.T) {
	svc, users, jogadoras := newUserTestService(t)
	ctx := context.Background()

	user := seedUser(t, users, "Ana", "ana@passabola.com.br", models.RoleUser)
	if _, err := svc.PromoteToJogadora(ctx, user.ID); err != nil {
		t.Fatalf("PromoteToJogadora() error = %v", err)
	}

	updated, err := svc.UpdateProfileName(ctx, user.ID, "Ana Clara")
	if err != nil {
		t.Fatalf("UpdateProfileName() error = %v", err)
	}
	if updated.Name != "Ana Clara" {
		t.Errorf("name = %q, want %q", updated.Name, "Ana Clara")
	}

	// The linked profile is renamed with the account.
	jogadora, err := jogadoras.FindByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByUserID() error = %v", err)
	}
	if jogadora.Name != "Ana Clara" {
		t.Errorf("profile name = %q, want %q", jogadora.Name, "Ana Clara")
	}

	if _, err := svc.UpdateProfileName(ctx, user.ID, ""); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("empty name error = %v, want ErrValidationFailed", err)
	}
}

func TestProfile(t *testing.T) {
	svc, users, _ := newUserTestService(t)
	ctx := context.Background()

	user := seedUser(t, users, "Ana", "ana@passabola.com.br", models.RoleUser)

	profile, err := svc.Profile(ctx, user.ID)
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if profile.Email != "ana@passabola.com.br" || profile.PasswordHash != "" {
		t.Errorf("Profile() = %+v, want own account without hash", profile)
	}

	if _, err := svc.Profile(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown id error = %v, want ErrUserNotFound", err)
	}
}
