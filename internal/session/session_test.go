package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/givehope/givehope/internal/adapter/repo"
	"github.com/givehope/givehope/internal/domain"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager("test-secret", time.Hour, repo.NewUserRepository(nil))
}

func TestSignupLoginRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	user, token, err := m.Signup(ctx, "Jane@Example.com", "hunter2", "Jane Doe", domain.UserRoleDonor)
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	if user.Email != "jane@example.com" {
		t.Fatalf("email not normalized: got %q", user.Email)
	}
	if token == "" {
		t.Fatal("Signup returned empty token")
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.Subject != user.ID {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, user.ID)
	}
	if claims.Role != "donor" {
		t.Fatalf("role claim mismatch: got %q want donor", claims.Role)
	}

	loggedIn, _, err := m.Login(ctx, "jane@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Fatalf("Login returned wrong user: got %q want %q", loggedIn.ID, user.ID)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	if _, _, err := m.Signup(ctx, "jane@example.com", "hunter2", "Jane", domain.UserRoleDonor); err != nil {
		t.Fatalf("first Signup error: %v", err)
	}
	_, _, err := m.Signup(ctx, "jane@example.com", "other", "Jane Again", domain.UserRoleDonor)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("duplicate signup error mismatch: got %v want ErrEmailTaken", err)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	if _, _, err := m.Signup(ctx, "jane@example.com", "hunter2", "Jane", domain.UserRoleDonor); err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	_, _, err := m.Login(ctx, "jane@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password error mismatch: got %v want ErrInvalidCredentials", err)
	}
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	m := newTestManager(t)
	_, _, err := m.Login(context.Background(), "nobody@example.com", "hunter2")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email error mismatch: got %v want ErrInvalidCredentials", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	_, token, err := m.Signup(ctx, "jane@example.com", "hunter2", "Jane", domain.UserRoleDonor)
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	if _, err := m.Verify(token); err != nil {
		t.Fatalf("Verify before logout error: %v", err)
	}

	m.Logout(token)

	if _, err := m.Verify(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("Verify after logout mismatch: got %v want ErrUnauthorized", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t)

	_, token, err := m.Signup(ctx, "jane@example.com", "hunter2", "Jane", domain.UserRoleDonor)
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	if _, err := m.Verify(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expired token mismatch: got %v want ErrUnauthorized", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Verify("not.a.token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("garbage token mismatch: got %v want ErrUnauthorized", err)
	}
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	ctx := context.Background()
	users := repo.NewUserRepository(nil)
	issuer := NewManager("secret-a", time.Hour, users)
	verifier := NewManager("secret-b", time.Hour, users)

	_, token, err := issuer.Signup(ctx, "jane@example.com", "hunter2", "Jane", domain.UserRoleDonor)
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("foreign secret mismatch: got %v want ErrUnauthorized", err)
	}
}
