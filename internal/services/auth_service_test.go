package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"employee-admin/internal/config"
	"employee-admin/internal/database"
	"employee-admin/internal/repositories"
	"go.uber.org/zap"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()

	cfg := &config.Config{
		SQLiteDBPath: filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := database.InitSQLite(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("init sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	userRepo := repositories.NewSQLiteUserRepository(db, zap.NewNop())
	return NewAuthService(userRepo, zap.NewNop())
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "Ann", "ann@example.com", "555-0100", "secret-pass"); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.Login(ctx, "ann@example.com", "secret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Name != "Ann" {
		t.Fatalf("expected Ann, got %q", user.Name)
	}
	if user.PasswordHash == "secret-pass" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "Ann", "ann@example.com", "555-0100", "secret-pass"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, "ann@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Login(context.Background(), "nobody@example.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// A store failure during login must surface as its own error, not as a
// rejected credential.
func TestLoginStoreFailure(t *testing.T) {
	cfg := &config.Config{
		SQLiteDBPath: filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := database.InitSQLite(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("init sqlite: %v", err)
	}
	userRepo := repositories.NewSQLiteUserRepository(db, zap.NewNop())
	svc := NewAuthService(userRepo, zap.NewNop())

	db.Close()

	_, err = svc.Login(context.Background(), "ann@example.com", "secret-pass")
	if err == nil {
		t.Fatalf("expected an error from a closed store")
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("store failure reported as invalid credentials: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, "Ann", "ann@example.com", "555-0100", "secret-pass"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Register(ctx, "Other Ann", "ann@example.com", "555-0200", "other-pass"); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}
