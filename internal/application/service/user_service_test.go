package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"github.com/restopos/restopos-api/pkg/utils"
)

func TestCreateUser(t *testing.T) {
	outlet := &entity.Outlet{ID: uuid.New(), Name: "Central"}
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo, newFakeOutletRepo(outlet))

	t.Run("cashier bound to outlet", func(t *testing.T) {
		user, err := svc.CreateUser(context.Background(), &CreateUserInput{
			Name:     "Sari",
			Email:    "sari@example.com",
			Password: "secret-pass",
			Role:     enum.RoleCashier,
			OutletID: &outlet.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Role != enum.RoleCashier {
			t.Fatalf("expected role CASHIER, got %s", user.Role)
		}
		if !user.IsActive {
			t.Fatal("expected new account active")
		}
		if user.Password == "secret-pass" {
			t.Fatal("expected password to be hashed")
		}
		if !utils.CheckPasswordHash("secret-pass", user.Password) {
			t.Fatal("expected hash to verify")
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.CreateUser(context.Background(), &CreateUserInput{
			Name:     "Other",
			Email:    "sari@example.com",
			Password: "x",
			Role:     enum.RoleWaiter,
			OutletID: &outlet.ID,
		})
		if got := errorCode(t, err); got != http.StatusConflict {
			t.Fatalf("expected code 409, got %d", got)
		}
	})

	t.Run("superuser not provisionable", func(t *testing.T) {
		_, err := svc.CreateUser(context.Background(), &CreateUserInput{
			Name:     "Root",
			Email:    "root@example.com",
			Password: "x",
			Role:     enum.RoleSuperuser,
			OutletID: &outlet.ID,
		})
		if got := errorCode(t, err); got != http.StatusForbidden {
			t.Fatalf("expected code 403, got %d", got)
		}
	})

	t.Run("outlet required", func(t *testing.T) {
		_, err := svc.CreateUser(context.Background(), &CreateUserInput{
			Name:     "Nobody",
			Email:    "nobody@example.com",
			Password: "x",
			Role:     enum.RoleChef,
		})
		if got := errorCode(t, err); got != http.StatusBadRequest {
			t.Fatalf("expected code 400, got %d", got)
		}
	})

	t.Run("unknown outlet", func(t *testing.T) {
		other := uuid.New()
		_, err := svc.CreateUser(context.Background(), &CreateUserInput{
			Name:     "Lost",
			Email:    "lost@example.com",
			Password: "x",
			Role:     enum.RoleChef,
			OutletID: &other,
		})
		if got := errorCode(t, err); got != http.StatusNotFound {
			t.Fatalf("expected code 404, got %d", got)
		}
	})
}

func TestUpdateUserSuperuserUntouchable(t *testing.T) {
	root := &entity.User{ID: uuid.New(), Email: "root@example.com", Role: enum.RoleSuperuser, IsActive: true}
	svc := NewUserService(newFakeUserRepo(root), newFakeOutletRepo())

	name := "New Name"
	_, err := svc.UpdateUser(context.Background(), root.ID, &UpdateUserInput{Name: &name})
	if got := errorCode(t, err); got != http.StatusForbidden {
		t.Fatalf("expected code 403, got %d", got)
	}
}

func TestAuthLogin(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	outletID := uuid.New()
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "cashier@example.com",
		Password: hash,
		Role:     enum.RoleCashier,
		OutletID: &outletID,
		IsActive: true,
	}
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	svc := NewAuthService(newFakeUserRepo(user), jwtManager, nil)

	t.Run("valid credentials", func(t *testing.T) {
		out, err := svc.Login(context.Background(), &LoginInput{Email: "cashier@example.com", Password: "correct-horse"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		claims, err := jwtManager.ValidateAccessToken(out.AccessToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != user.ID || claims.Role != "CASHIER" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
		if claims.OutletID == nil || *claims.OutletID != outletID {
			t.Fatal("expected outlet claim")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &LoginInput{Email: "cashier@example.com", Password: "nope"})
		if got := errorCode(t, err); got != http.StatusUnauthorized {
			t.Fatalf("expected code 401, got %d", got)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &LoginInput{Email: "ghost@example.com", Password: "x"})
		if got := errorCode(t, err); got != http.StatusUnauthorized {
			t.Fatalf("expected code 401, got %d", got)
		}
	})

	t.Run("deactivated account", func(t *testing.T) {
		user.IsActive = false
		defer func() { user.IsActive = true }()
		_, err := svc.Login(context.Background(), &LoginInput{Email: "cashier@example.com", Password: "correct-horse"})
		if got := errorCode(t, err); got != http.StatusForbidden {
			t.Fatalf("expected code 403, got %d", got)
		}
	})
}

func TestAuthRefreshToken(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "a@b.c", Role: enum.RoleAdmin, IsActive: true}
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	svc := NewAuthService(newFakeUserRepo(user), jwtManager, nil)

	refresh, err := jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := svc.RefreshToken(context.Background(), refresh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, out.User.ID)
	}

	if _, err := svc.RefreshToken(context.Background(), "garbage"); err == nil {
		t.Fatal("expected invalid token to be rejected")
	}
}

func TestAuthChangePassword(t *testing.T) {
	hash, err := utils.HashPassword("old-secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &entity.User{ID: uuid.New(), Email: "a@b.c", Password: hash, Role: enum.RoleAdmin, IsActive: true}
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	svc := NewAuthService(newFakeUserRepo(user), jwtManager, nil)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), &ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: "nope",
			NewPassword: "new-secret-123",
		})
		if got := errorCode(t, err); got != http.StatusBadRequest {
			t.Fatalf("expected code 400, got %d", got)
		}
	})

	t.Run("valid change", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), &ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: "old-secret",
			NewPassword: "new-secret-123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !utils.CheckPasswordHash("new-secret-123", user.Password) {
			t.Fatal("expected new password to verify")
		}
		if utils.CheckPasswordHash("old-secret", user.Password) {
			t.Fatal("expected old password to stop working")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), &ChangePasswordInput{
			UserID:      uuid.New(),
			OldPassword: "old-secret",
			NewPassword: "new-secret-123",
		})
		if got := errorCode(t, err); got != http.StatusNotFound {
			t.Fatalf("expected code 404, got %d", got)
		}
	})
}
