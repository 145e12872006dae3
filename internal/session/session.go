// Package session owns the authenticated-user context: signup, login, token
// verification, and logout. Credentials are checked against the in-memory
// user store; tokens are HS256 JWTs.
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/givehope/givehope/internal/domain"
)

// Claims are the token claims carried by a session JWT.
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies session tokens. Logout revokes a token by its
// id; the revocation set is memory-only, like every other piece of state here.
type Manager struct {
	secret []byte
	ttl    time.Duration
	users  domain.UserRepository
	now    func() time.Time

	mu      sync.Mutex
	revoked map[string]struct{}
}

// NewManager creates a session manager backed by the given user store.
func NewManager(secret string, ttl time.Duration, users domain.UserRepository) *Manager {
	return &Manager{
		secret:  []byte(secret),
		ttl:     ttl,
		users:   users,
		now:     time.Now,
		revoked: make(map[string]struct{}),
	}
}

// Signup registers a new account and returns it with a fresh session token.
func (m *Manager) Signup(ctx context.Context, email, password, name string, role domain.UserRole) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" || name == "" {
		return nil, "", fmt.Errorf("%w: email, password and name are required", domain.ErrInvalidCredentials)
	}
	if role != domain.UserRoleDonor && role != domain.UserRoleOrganization {
		return nil, "", fmt.Errorf("%w: unknown role %q", domain.ErrInvalidCredentials, role)
	}
	if _, err := m.users.GetByEmail(ctx, email); err == nil {
		return nil, "", domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", fmt.Errorf("lookup email: %w", err)
	}

	salt := uuid.NewString()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: hashPassword(password, salt),
		PasswordSalt: salt,
		CreatedAt:    m.now().UTC(),
		UpdatedAt:    m.now().UTC(),
	}
	if err := m.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := m.issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the account with a session token.
func (m *Manager) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := m.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("lookup email: %w", err)
	}
	if hashPassword(password, user.PasswordSalt) != user.PasswordHash {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := m.issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Verify parses and validates a session token, rejecting revoked ones.
func (m *Manager) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}

	m.mu.Lock()
	_, revoked := m.revoked[claims.ID]
	m.mu.Unlock()
	if revoked {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

// Logout revokes the token. The caller's session is gone as soon as this
// returns; subsequent Verify calls with the same token fail.
func (m *Manager) Logout(token string) {
	claims, err := m.Verify(token)
	if err != nil {
		return
	}
	m.mu.Lock()
	m.revoked[claims.ID] = struct{}{}
	m.mu.Unlock()
}

// CurrentUser resolves the account behind a verified token.
func (m *Manager) CurrentUser(ctx context.Context, claims *Claims) (*domain.User, error) {
	return m.users.GetByID(ctx, claims.Subject)
}

func (m *Manager) issue(user *domain.User) (string, error) {
	now := m.now()
	claims := Claims{
		Name: user.Name,
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			Issuer:    "givehope",
			Audience:  jwt.ClaimStrings{"givehope-web"},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// HashPassword derives the stored hash for a password and salt. Exposed for
// the seed loader, which provisions demo accounts with known passwords.
func HashPassword(password, salt string) string {
	return hashPassword(password, salt)
}

func hashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + ":" + password))
	return hex.EncodeToString(sum[:])
}
